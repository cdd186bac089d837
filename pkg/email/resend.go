package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/resend/resend-go/v3"
)

// resendEmails is the part of the Resend client used here.
type resendEmails interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// ResendSender delivers through the Resend HTTP API. From must be a
// verified sender address on the Resend account.
type ResendSender struct {
	emails resendEmails
}

func NewResendSender(apiKey string) *ResendSender {
	return &ResendSender{emails: resend.NewClient(apiKey).Emails}
}

func (s *ResendSender) Send(ctx context.Context, email *Email) (string, error) {
	if err := email.validate(); err != nil {
		return "", err
	}

	req := &resend.SendEmailRequest{
		From:    email.From.String(),
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
		ReplyTo: email.ReplyTo,
	}

	resp, err := s.emails.SendWithContext(ctx, req)
	if err != nil {
		return "", fmt.Errorf("resend: failed to send email: %w", err)
	}
	if resp == nil || resp.Id == "" {
		return "", errors.New("resend: response carried no message id")
	}
	return resp.Id, nil
}
