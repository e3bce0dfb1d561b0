package registration

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	texttemplate "text/template"

	"github.com/International-Combat-Archery-Alliance/email"
	"github.com/divine-encounter/event-registration/events"
)

//go:embed templates
var templates embed.FS

const eventTimeLayout = "Monday, January 2, 2006 at 3:04 PM"

// SendRegistrationConfirmationEmail tells a registrant their payment went
// through, with the event's dates, venue and the amount they paid.
func SendRegistrationConfirmationEmail(ctx context.Context, emailSender email.Sender, fromAddress string, reg Registration, event events.Event) error {
	data := map[string]any{
		"Event":        event,
		"Registration": reg,
		"StartsAt":     event.StartTime.Format(eventTimeLayout),
		"EndsAt":       event.EndTime.Format(eventTimeLayout),
		"AmountPaid":   amountPaid(reg, event),
	}

	htmlBody, err := render(htmlConfirmation, data)
	if err != nil {
		return err
	}

	textOnlyBody, err := render(textConfirmation, data)
	if err != nil {
		return err
	}

	return emailSender.SendEmail(ctx, email.Email{
		FromAddress: fromAddress,
		ToAddresses: []string{reg.Email},
		Subject:     fmt.Sprintf("You're registered for %s", event.Name),
		HTMLBody:    htmlBody,
		TextBody:    textOnlyBody,
	})
}

func amountPaid(reg Registration, event events.Event) string {
	if reg.PaymentAmount != nil {
		return reg.PaymentAmount.Display()
	}
	if event.Price != nil {
		return event.Price.Display()
	}
	return ""
}

// renderer is satisfied by both html/template and text/template.
type renderer interface {
	Execute(w io.Writer, data any) error
}

var (
	htmlConfirmation = template.Must(template.ParseFS(templates, "templates/registration-confirmation.tmpl"))
	textConfirmation = texttemplate.Must(texttemplate.ParseFS(templates, "templates/registration-confirmation-textonly.tmpl"))
)

func render(tmpl renderer, data map[string]any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}
	return buf.String(), nil
}
