package email

import "portfolio-backend/config"

// NewSender builds the transport selected by cfg.Provider. It returns nil
// when the mail secrets are missing; callers treat that as degraded mode.
func NewSender(cfg config.MailConfig) Sender {
	if !cfg.Configured() {
		return nil
	}
	switch cfg.Provider {
	case config.ProviderResend:
		return NewResendSender(cfg.Password)
	default:
		return NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.User, cfg.Password)
	}
}
