package usecase

import (
	"context"

	"portfolio-backend/config"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	mail config.MailConfig
}

func NewHealthUsecase(mail config.MailConfig) HealthUsecase {
	return &healthUsecase{mail: mail}
}

// Check never fails: missing mail configuration is reported as degraded,
// the contact form still accepts messages.
func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	mail := "degraded"
	if u.mail.Configured() {
		mail = "configured"
	}
	return map[string]string{
		"status": "ok",
		"mail":   mail,
	}
}
