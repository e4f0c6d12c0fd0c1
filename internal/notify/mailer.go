package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/shenikar/sos_intake_service/internal/config"
	"github.com/shenikar/sos_intake_service/internal/models"
)

// Mailer отправляет заявителю письмо-подтверждение
type Mailer interface {
	SendConfirmation(ctx context.Context, event Event) error
}

// SendGridMailer - реализация Mailer через SendGrid
type SendGridMailer struct {
	client *sendgrid.Client
	cfg    *config.Config
}

// NewSendGridMailer возвращает nil, если ключ SendGrid не задан
func NewSendGridMailer(cfg *config.Config) *SendGridMailer {
	if cfg.SendGridAPIKey == "" {
		return nil
	}
	return &SendGridMailer{
		client: sendgrid.NewSendClient(cfg.SendGridAPIKey),
		cfg:    cfg,
	}
}

func (m *SendGridMailer) SendConfirmation(ctx context.Context, event Event) error {
	if event.ContactEmail == "" {
		return fmt.Errorf("case %s has no contact email", event.CaseID)
	}

	message := buildConfirmationMail(m.cfg, event)
	response, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send confirmation for %s: %w", event.CaseID, err)
	}
	if response.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d for %s", response.StatusCode, event.CaseID)
	}
	return nil
}

func buildConfirmationMail(cfg *config.Config, event Event) *mail.SGMailV3 {
	from := mail.NewEmail(cfg.SendGridFromName, cfg.SendGridFromEmail)
	to := mail.NewEmail(event.ContactEmail, event.ContactEmail)

	message := mail.NewV3Mail()
	message.SetFrom(from)
	message.Subject = fmt.Sprintf("SOS case %s received", event.CaseID)

	p := mail.NewPersonalization()
	p.AddTos(to)
	message.AddPersonalizations(p)

	message.AddContent(mail.NewContent("text/plain", confirmationText(cfg, event)))
	return message
}

func confirmationText(cfg *config.Config, event Event) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Your case ID: %s\n", event.CaseID)
	fmt.Fprintf(&b, "Severity: %s\n", event.Severity)
	fmt.Fprintf(&b, "Response time (SLA): %s\n\n", event.SLA)
	b.WriteString("Our team will review your case and contact you within the SLA timeframe.\n")
	b.WriteString("You can track the case status in your dashboard.\n")
	if event.Severity == models.SeverityRed {
		fmt.Fprintf(&b, "\nEmergency response has been activated. If you need immediate assistance, call the 24/7 helpline: %s\n", cfg.HelplineNumber)
	}
	return b.String()
}
