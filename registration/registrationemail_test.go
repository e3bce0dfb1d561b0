package registration

import (
	"context"
	"errors"
	"testing"

	"github.com/International-Combat-Archery-Alliance/email"
	"github.com/divine-encounter/event-registration/events"
	"github.com/divine-encounter/event-registration/ptr"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockEmailSender struct {
	SendEmailFunc func(ctx context.Context, email email.Email) error
}

func (m *mockEmailSender) SendEmail(ctx context.Context, email email.Email) error {
	return m.SendEmailFunc(ctx, email)
}

func TestSendRegistrationConfirmationEmail(t *testing.T) {
	event := events.DivineEncounter2026(uuid.New())
	reg := pendingRegistration(event.ID, "DE2026-ABCDEF123456", IN_PERSON)
	reg.FullName = "Ada <Obi>"
	reg.PaymentStatus = PAYMENT_PAID
	reg.PaymentAmount = ngn(500000)
	reg.Church = ptr.String("Grace")

	t.Run("renders both bodies", func(t *testing.T) {
		var sent email.Email
		sender := &mockEmailSender{
			SendEmailFunc: func(ctx context.Context, e email.Email) error {
				sent = e
				return nil
			},
		}

		err := SendRegistrationConfirmationEmail(context.Background(), sender, "info@divineencounter.ng", reg, event)
		require.NoError(t, err)

		assert.Equal(t, "info@divineencounter.ng", sent.FromAddress)
		assert.Equal(t, []string{"ada@example.com"}, sent.ToAddresses)
		assert.Equal(t, "You're registered for Divine Encounter 2026", sent.Subject)

		assert.Contains(t, sent.HTMLBody, "Ada &lt;Obi&gt;")
		assert.Contains(t, sent.HTMLBody, "DE2026-ABCDEF123456")
		assert.Contains(t, sent.HTMLBody, "Grace Convention Center, Lagos")

		assert.Contains(t, sent.TextBody, "Dear Ada <Obi>,")
		assert.Contains(t, sent.TextBody, "Reference:  DE2026-ABCDEF123456")
		assert.Contains(t, sent.TextBody, "Attendance: in-person")
		assert.Contains(t, sent.TextBody, "Starts:     Sunday, March 15, 2026 at 6:00 PM")
		assert.Contains(t, sent.TextBody, reg.PaymentAmount.Display())
	})

	t.Run("falls back to the event price", func(t *testing.T) {
		unpriced := reg
		unpriced.PaymentAmount = nil

		var sent email.Email
		sender := &mockEmailSender{
			SendEmailFunc: func(ctx context.Context, e email.Email) error {
				sent = e
				return nil
			},
		}

		err := SendRegistrationConfirmationEmail(context.Background(), sender, "info@divineencounter.ng", unpriced, event)
		require.NoError(t, err)
		assert.Contains(t, sent.TextBody, event.Price.Display())
	})

	t.Run("sender failure is returned", func(t *testing.T) {
		sender := &mockEmailSender{
			SendEmailFunc: func(ctx context.Context, e email.Email) error {
				return errors.New("ses down")
			},
		}

		err := SendRegistrationConfirmationEmail(context.Background(), sender, "info@divineencounter.ng", reg, event)
		assert.EqualError(t, err, "ses down")
	})
}
