package email

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net"
	"net/smtp"
	"net/textproto"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SendMailFunc matches smtp.SendMail.
type SendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPSender handles sending emails via SMTP with PLAIN auth. smtp.SendMail
// upgrades to STARTTLS when the server offers it.
type SMTPSender struct {
	host     string
	port     string
	username string
	password string
	sendMail SendMailFunc
	now      func() time.Time
}

type SMTPOption func(*SMTPSender)

// WithSendMail swaps the function used to hand the message to the server.
func WithSendMail(fn SendMailFunc) SMTPOption {
	return func(s *SMTPSender) {
		if fn != nil {
			s.sendMail = fn
		}
	}
}

// WithClock replaces the clock used for the Date header.
func WithClock(now func() time.Time) SMTPOption {
	return func(s *SMTPSender) {
		if now != nil {
			s.now = now
		}
	}
}

func NewSMTPSender(host, port, username, password string, opts ...SMTPOption) *SMTPSender {
	s := &SMTPSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
		sendMail: smtp.SendMail,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Send builds a multipart/alternative message and submits it. The returned
// id is the Message-ID header value.
func (s *SMTPSender) Send(ctx context.Context, email *Email) (string, error) {
	if err := email.validate(); err != nil {
		return "", err
	}

	messageID := s.newMessageID(email.From.Address)
	msg, err := s.buildMessage(email, messageID)
	if err != nil {
		return "", err
	}

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := net.JoinHostPort(s.host, s.port)

	// smtp.SendMail has no context; stop waiting once ctx is done.
	done := make(chan error, 1)
	go func() {
		done <- s.sendMail(addr, auth, email.From.Address, email.To, msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return "", fmt.Errorf("failed to send email: %w", err)
		}
	case <-ctx.Done():
		return "", fmt.Errorf("failed to send email: %w", ctx.Err())
	}

	return messageID, nil
}

func (s *SMTPSender) newMessageID(from string) string {
	domain := "localhost"
	if at := strings.LastIndexByte(from, '@'); at >= 0 && at < len(from)-1 {
		domain = from[at+1:]
	}
	return fmt.Sprintf("<%s@%s>", uuid.NewString(), domain)
}

func (s *SMTPSender) buildMessage(email *Email, messageID string) ([]byte, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := func(k, v string) {
		fmt.Fprintf(&buf, "%s: %s\r\n", k, v)
	}
	header("From", email.From.String())
	header("To", strings.Join(email.To, ", "))
	if email.ReplyTo != "" {
		header("Reply-To", email.ReplyTo)
	}
	header("Subject", mime.QEncoding.Encode("utf-8", email.Subject))
	header("Message-ID", messageID)
	header("Date", s.now().Format(time.RFC1123Z))
	header("MIME-Version", "1.0")
	header("Content-Type", "multipart/alternative; boundary="+mw.Boundary())
	buf.WriteString("\r\n")

	parts := []struct {
		contentType string
		body        string
	}{
		{"text/plain; charset=UTF-8", email.Text},
		{"text/html; charset=UTF-8", email.HTML},
	}
	for _, p := range parts {
		if p.body == "" {
			continue
		}
		w, err := mw.CreatePart(textproto.MIMEHeader{
			"Content-Type":              {p.contentType},
			"Content-Transfer-Encoding": {"quoted-printable"},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to build email: %w", err)
		}
		// Text mode qp turns bare \n into CRLF and soft-wraps long lines.
		qp := quotedprintable.NewWriter(w)
		if _, err := qp.Write([]byte(p.body)); err != nil {
			return nil, fmt.Errorf("failed to build email: %w", err)
		}
		if err := qp.Close(); err != nil {
			return nil, fmt.Errorf("failed to build email: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to build email: %w", err)
	}
	return buf.Bytes(), nil
}
