package email

import (
	"context"
	"errors"
	"net/mail"
	"strings"
)

// Email is a fully prepared message ready for a transport.
type Email struct {
	From    mail.Address // Display name + envelope sender
	To      []string
	ReplyTo string
	Subject string
	Text    string
	HTML    string
}

// Sender delivers an Email and returns the message identifier assigned by
// the transport.
type Sender interface {
	Send(ctx context.Context, email *Email) (string, error)
}

var (
	ErrNoRecipients = errors.New("email: at least one recipient is required")
	ErrNoSender     = errors.New("email: sender address is required")
	ErrHeaderValue  = errors.New("email: address contains a line break")
)

func (e *Email) validate() error {
	if e.From.Address == "" {
		return ErrNoSender
	}
	if len(e.To) == 0 {
		return ErrNoRecipients
	}
	// Addresses are written into header lines verbatim.
	for _, addr := range append([]string{e.From.Address, e.ReplyTo}, e.To...) {
		if strings.ContainsAny(addr, "\r\n") {
			return ErrHeaderValue
		}
	}
	return nil
}
