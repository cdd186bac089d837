package v1

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/domain"
)

// Response bodies of the contact routes. The frontend reads these shapes
// directly, so they do not use the standard envelope.
type ContactResponse struct {
	Message   string `json:"message"`
	MessageID string `json:"messageId,omitempty"`
	Warning   string `json:"warning,omitempty"`
	Error     string `json:"error,omitempty"`
}

type ContactErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type ContactDiagnostics struct {
	Status string            `json:"status"`
	Env    map[string]string `json:"env"`
}

const (
	msgSent          = "Email sent successfully"
	msgNotConfigured = "Message received (email service not configured)"
	msgRelayError    = "Message received (email service error)"
	msgMissingFields = "Missing required fields"
	msgInternal      = "Internal server error"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
	log       *slog.Logger
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(group *gin.RouterGroup, contactUC domain.ContactUsecase, log *slog.Logger) {
	handler := &ContactHandler{
		contactUC: contactUC,
		log:       log,
	}

	group.POST("/contact", handler.SubmitContact)
	group.GET("/contact/test", handler.Diagnose)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validates the message and relays it by email when mail is configured. Relay problems still answer 200 with a warning or error field.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactMessage  true  "Contact Form Data"
// @Success      200      {object}  ContactResponse
// @Failure      400      {object}  ContactErrorResponse
// @Failure      500      {object}  ContactErrorResponse
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var msg domain.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		h.log.Error("error in contact route", "error", err)
		c.JSON(http.StatusInternalServerError, ContactErrorResponse{Error: msgInternal, Details: err.Error()})
		return
	}

	result, err := h.contactUC.Submit(c.Request.Context(), &msg)
	if err != nil {
		if errors.Is(err, domain.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, ContactErrorResponse{Error: msgMissingFields})
			return
		}
		h.log.Error("error in contact route", "error", err)
		c.JSON(http.StatusInternalServerError, ContactErrorResponse{Error: msgInternal, Details: err.Error()})
		return
	}

	c.JSON(http.StatusOK, deliveryResponse(result))
}

func deliveryResponse(result domain.DeliveryResult) ContactResponse {
	switch result.Status {
	case domain.DeliverySent:
		return ContactResponse{Message: msgSent, MessageID: result.MessageID}
	case domain.DeliverySkipped:
		return ContactResponse{Message: msgNotConfigured, Warning: result.Detail}
	default:
		detail := result.Detail
		if detail == "" {
			detail = "Unknown error"
		}
		return ContactResponse{Message: msgRelayError, Error: detail}
	}
}

// Diagnose godoc
// @Summary      Contact configuration probe
// @Description  Reports whether the mail secrets are set. No side effects.
// @Tags         contact
// @Produce      json
// @Success      200  {object}  ContactDiagnostics
// @Router       /contact/test [get]
func (h *ContactHandler) Diagnose(c *gin.Context) {
	status := h.contactUC.MailStatus()
	c.JSON(http.StatusOK, ContactDiagnostics{
		Status: "API routes are working",
		Env: map[string]string{
			"EMAIL_USER": setOrNot(status.UserSet),
			"EMAIL_PASS": setOrNot(status.PasswordSet),
		},
	})
}

func setOrNot(ok bool) string {
	if ok {
		return "Set"
	}
	return "Not set"
}
