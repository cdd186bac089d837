package usecase

import (
	"context"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"portfolio-backend/config"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/validation"
)

const skippedReason = "Email credentials not set in environment variables"

type contactUsecase struct {
	mail     config.MailConfig
	sender   email.Sender
	validate *validator.Validate
	log      *slog.Logger
}

// NewContactUsecase creates a new contact usecase. sender may be nil when
// mail is not configured.
func NewContactUsecase(mail config.MailConfig, sender email.Sender, validate *validator.Validate, log *slog.Logger) domain.ContactUsecase {
	if log == nil {
		log = slog.Default()
	}
	return &contactUsecase{
		mail:     mail,
		sender:   sender,
		validate: validate,
		log:      log,
	}
}

func (uc *contactUsecase) Submit(ctx context.Context, msg *domain.ContactMessage) (domain.DeliveryResult, error) {
	if err := uc.validate.Struct(msg); err != nil {
		uc.log.Info("contact submission rejected", "errors", validation.FormatValidationErrors(err))
		return domain.DeliveryResult{}, &domain.ValidationError{Fields: validation.FailedFields(err)}
	}

	uc.log.Info("contact submission received", "name", msg.Name, "email", msg.Email, "message_length", len(msg.Message))
	uc.log.Debug("mail environment check", "EMAIL_USER", setOrNot(uc.mail.User != ""), "EMAIL_PASS", setOrNot(uc.mail.Password != ""))

	if !uc.mail.Configured() || uc.sender == nil {
		uc.log.Warn("email credentials not configured, accepting message without relay")
		return domain.Skipped(skippedReason), nil
	}

	outgoing, err := email.NewContactEmail(uc.mail.User, uc.mail.To, email.ContactEmailData{
		SenderName:  msg.Name,
		SenderEmail: msg.Email,
		Message:     msg.Message,
	})
	if err != nil {
		uc.log.Error("failed to build contact email", "error", err)
		return domain.Failed(err.Error()), nil
	}

	if uc.mail.SendTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.mail.SendTimeout)
		defer cancel()
	}

	messageID, err := uc.sender.Send(ctx, outgoing)
	if err != nil {
		uc.log.Error("error with email service", "provider", uc.mail.Provider, "error", err)
		return domain.Failed(err.Error()), nil
	}

	uc.log.Info("email sent successfully", "provider", uc.mail.Provider, "message_id", messageID)
	return domain.Sent(messageID), nil
}

func (uc *contactUsecase) MailStatus() domain.MailEnvStatus {
	return domain.MailEnvStatus{
		UserSet:     uc.mail.User != "",
		PasswordSet: uc.mail.Password != "",
	}
}

func setOrNot(ok bool) string {
	if ok {
		return "Set"
	}
	return "Not set"
}
