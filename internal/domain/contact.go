package domain

import (
	"context"
	"errors"
	"strings"
)

// ContactMessage is one contact form submission. It is never stored.
type ContactMessage struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// DeliveryStatus classifies what happened to a validated message.
type DeliveryStatus string

const (
	DeliverySent    DeliveryStatus = "sent"
	DeliverySkipped DeliveryStatus = "skipped"
	DeliveryFailed  DeliveryStatus = "failed"
)

// DeliveryResult is the outcome of a relay attempt. MessageID is only set
// when Status is DeliverySent; Detail carries the skip reason or the
// transport failure.
type DeliveryResult struct {
	Status    DeliveryStatus
	MessageID string
	Detail    string
}

// Sent records a relayed message. Every Sender returns a non-empty id on
// success (SMTP its Message-ID header, Resend the provider id), so
// messageID is never empty here.
func Sent(messageID string) DeliveryResult {
	return DeliveryResult{Status: DeliverySent, MessageID: messageID}
}

func Skipped(reason string) DeliveryResult {
	return DeliveryResult{Status: DeliverySkipped, Detail: reason}
}

func Failed(detail string) DeliveryResult {
	return DeliveryResult{Status: DeliveryFailed, Detail: detail}
}

// MailEnvStatus reports which mail secrets are present, for the diagnostic probe.
type MailEnvStatus struct {
	UserSet     bool
	PasswordSet bool
}

var ErrMissingFields = errors.New("missing required fields")

// ValidationError lists the fields that failed presence checks.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return ErrMissingFields.Error() + ": " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrMissingFields
}

// ContactUsecase defines the contact form operations
type ContactUsecase interface {
	// Submit validates msg and relays it when mail is configured. The only
	// error returned is a *ValidationError; relay problems are reported
	// through the DeliveryResult.
	Submit(ctx context.Context, msg *ContactMessage) (DeliveryResult, error)
	// MailStatus reports which mail secrets are configured
	MailStatus() MailEnvStatus
}
