package email

import (
	"context"
	"errors"
	"net/mail"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/resend/resend-go/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/config"
)

func contactEmail(t *testing.T) *Email {
	t.Helper()
	e, err := NewContactEmail("me@gmail.com", "inbox@example.com", ContactEmailData{
		SenderName:  "Ada",
		SenderEmail: "ada@example.com",
		Message:     "<b>hi</b>",
	})
	require.NoError(t, err)
	return e
}

func TestNewContactEmail(t *testing.T) {
	e := contactEmail(t)

	assert.Equal(t, "Portfolio Contact: Ada", e.Subject)
	assert.Equal(t, "ada@example.com", e.ReplyTo)
	assert.Equal(t, []string{"inbox@example.com"}, e.To)
	assert.Equal(t, mail.Address{Name: "Ada", Address: "me@gmail.com"}, e.From)
	assert.Equal(t, "Name: Ada\nEmail: ada@example.com\nMessage: <b>hi</b>", e.Text)
	assert.Contains(t, e.HTML, "&lt;b&gt;hi&lt;/b&gt;", "html body is escaped")
}

type capturedMail struct {
	addr string
	from string
	to   []string
	msg  string
}

func TestSMTPSenderSend(t *testing.T) {
	var got capturedMail
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s := NewSMTPSender("smtp.gmail.com", "587", "me@gmail.com", "pw",
		WithClock(func() time.Time { return fixed }),
		WithSendMail(func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
			got = capturedMail{addr: addr, from: from, to: to, msg: string(msg)}
			return nil
		}))

	id, err := s.Send(context.Background(), contactEmail(t))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(id, "<") && strings.HasSuffix(id, "@gmail.com>"), id)
	assert.Equal(t, "smtp.gmail.com:587", got.addr)
	assert.Equal(t, "me@gmail.com", got.from)
	assert.Equal(t, []string{"inbox@example.com"}, got.to)
	assert.Contains(t, got.msg, "From: \"Ada\" <me@gmail.com>\r\n")
	assert.Contains(t, got.msg, "Reply-To: ada@example.com\r\n")
	assert.Contains(t, got.msg, "Subject: Portfolio Contact: Ada\r\n")
	assert.Contains(t, got.msg, "Message-ID: "+id+"\r\n")
	assert.Contains(t, got.msg, "Date: "+fixed.Format(time.RFC1123Z))
	assert.Contains(t, got.msg, "multipart/alternative; boundary=")
	assert.Contains(t, got.msg, "Message: <b>hi</b>")
}

func TestSMTPSenderFailure(t *testing.T) {
	s := NewSMTPSender("h", "25", "u@x", "p", WithSendMail(func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("535 auth failed")
	}))

	id, err := s.Send(context.Background(), contactEmail(t))
	assert.Empty(t, id)
	assert.EqualError(t, err, "failed to send email: 535 auth failed")
}

func TestSMTPSenderContextDone(t *testing.T) {
	block := make(chan struct{})
	defer close(block)
	s := NewSMTPSender("h", "25", "u@x", "p", WithSendMail(func(string, smtp.Auth, string, []string, []byte) error {
		<-block
		return nil
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.Send(ctx, contactEmail(t))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSendRejectsIncompleteEmail(t *testing.T) {
	s := NewSMTPSender("h", "25", "u", "p")
	_, err := s.Send(context.Background(), &Email{From: mail.Address{Address: "a@b"}})
	assert.ErrorIs(t, err, ErrNoRecipients)
	_, err = s.Send(context.Background(), &Email{To: []string{"a@b"}})
	assert.ErrorIs(t, err, ErrNoSender)
}

func TestSendRejectsLineBreakInAddresses(t *testing.T) {
	called := false
	s := NewSMTPSender("h", "25", "u", "p", WithSendMail(func(string, smtp.Auth, string, []string, []byte) error {
		called = true
		return nil
	}))

	e, err := NewContactEmail("me@gmail.com", "inbox@example.com", ContactEmailData{
		SenderName:  "Ada",
		SenderEmail: "a@x.com\r\nBcc: victim@evil.com",
		Message:     "hi",
	})
	require.NoError(t, err)

	_, err = s.Send(context.Background(), e)
	assert.ErrorIs(t, err, ErrHeaderValue)
	assert.False(t, called, "nothing is handed to the server")

	_, err = s.Send(context.Background(), &Email{From: mail.Address{Address: "a@b"}, To: []string{"x@y\nBcc: z@w"}})
	assert.ErrorIs(t, err, ErrHeaderValue)

	fake := &fakeResend{resp: &resend.SendEmailResponse{Id: "re_1"}}
	_, err = (&ResendSender{emails: fake}).Send(context.Background(), e)
	assert.ErrorIs(t, err, ErrHeaderValue)
	assert.Nil(t, fake.req)
}

func TestSMTPSenderQuotedPrintableBody(t *testing.T) {
	var raw string
	s := NewSMTPSender("h", "25", "u", "p", WithSendMail(func(_ string, _ smtp.Auth, _ string, _ []string, msg []byte) error {
		raw = string(msg)
		return nil
	}))

	e, err := NewContactEmail("me@gmail.com", "inbox@example.com", ContactEmailData{
		SenderName:  "Ada",
		SenderEmail: "ada@example.com",
		Message:     "café " + strings.Repeat("x", 2000),
	})
	require.NoError(t, err)
	_, err = s.Send(context.Background(), e)
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(raw, "Content-Transfer-Encoding: quoted-printable\r\n"))
	assert.Contains(t, raw, "caf=C3=A9")
	assert.NotContains(t, raw, "café")
	for _, line := range strings.Split(raw, "\r\n") {
		assert.LessOrEqual(t, len(line), 998)
		assert.NotContains(t, line, "\n", "every line ends in CRLF")
		if strings.Contains(line, "xxxx") {
			assert.LessOrEqual(t, len(line), 76, "qp soft-wraps long body lines")
		}
	}
}

type fakeResend struct {
	req  *resend.SendEmailRequest
	resp *resend.SendEmailResponse
	err  error
}

func (f *fakeResend) SendWithContext(_ context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	f.req = params
	return f.resp, f.err
}

func TestResendSender(t *testing.T) {
	fake := &fakeResend{resp: &resend.SendEmailResponse{Id: "re_123"}}
	s := &ResendSender{emails: fake}

	id, err := s.Send(context.Background(), contactEmail(t))
	require.NoError(t, err)
	assert.Equal(t, "re_123", id)
	assert.Equal(t, "\"Ada\" <me@gmail.com>", fake.req.From)
	assert.Equal(t, "ada@example.com", fake.req.ReplyTo)
	assert.Equal(t, "Portfolio Contact: Ada", fake.req.Subject)

	fake.err = errors.New("rate limited")
	_, err = s.Send(context.Background(), contactEmail(t))
	assert.EqualError(t, err, "resend: failed to send email: rate limited")

	fake.err, fake.resp = nil, &resend.SendEmailResponse{}
	id, err = s.Send(context.Background(), contactEmail(t))
	assert.Error(t, err, "a success without an id is not reported as sent")
	assert.Empty(t, id)
}

func TestNewSender(t *testing.T) {
	assert.Nil(t, NewSender(config.MailConfig{User: "u"}))

	smtpSender := NewSender(config.MailConfig{Provider: config.ProviderSMTP, User: "u", Password: "p"})
	assert.IsType(t, &SMTPSender{}, smtpSender)

	resendSender := NewSender(config.MailConfig{Provider: config.ProviderResend, User: "u", Password: "key"})
	assert.IsType(t, &ResendSender{}, resendSender)
}
