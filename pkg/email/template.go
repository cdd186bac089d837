package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/mail"
	textTemplate "text/template"
)

// ContactEmailData holds the data for contact form emails
type ContactEmailData struct {
	SenderName  string
	SenderEmail string
	Message     string
}

const contactEmailTemplate = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333; border-bottom: 2px solid #00d9ff; padding-bottom: 10px;">
    New Portfolio Contact
  </h2>
  <div style="padding: 20px 0;">
    <p><strong>Name:</strong> {{.SenderName}}</p>
    <p><strong>Email:</strong> {{.SenderEmail}}</p>
    <p><strong>Message:</strong></p>
    <div style="background-color: #f5f5f5; padding: 15px; border-radius: 5px; margin-top: 10px;">
      <p style="white-space: pre-wrap;">{{.Message}}</p>
    </div>
  </div>
</div>`

const contactTextTemplate = "Name: {{.SenderName}}\nEmail: {{.SenderEmail}}\nMessage: {{.Message}}"

var (
	contactHTML = template.Must(template.New("contact").Parse(contactEmailTemplate))
	contactText = textTemplate.Must(textTemplate.New("contact_text").Parse(contactTextTemplate))
)

// NewContactEmail renders a contact submission into an Email addressed to
// `to` and sent from `from` under the sender's display name.
func NewContactEmail(from, to string, data ContactEmailData) (*Email, error) {
	var html, text bytes.Buffer
	if err := contactHTML.Execute(&html, data); err != nil {
		return nil, fmt.Errorf("failed to execute email template: %w", err)
	}
	if err := contactText.Execute(&text, data); err != nil {
		return nil, fmt.Errorf("failed to execute text template: %w", err)
	}

	return &Email{
		From:    mail.Address{Name: data.SenderName, Address: from},
		To:      []string{to},
		ReplyTo: data.SenderEmail,
		Subject: "Portfolio Contact: " + data.SenderName,
		Text:    text.String(),
		HTML:    html.String(),
	}, nil
}
