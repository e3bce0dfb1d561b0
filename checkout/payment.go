package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/divine-encounter/event-registration/client"
)

type PaymentCallbacks struct {
	OnSuccess func(reference string)
	OnCancel  func()
}

// Orchestrator hands a payment session to the widget and reports back which
// way it ended. It never verifies anything itself.
type Orchestrator struct {
	widget     Widget
	publicKey  string
	price      *money.Money
	eventLabel string
}

func NewOrchestrator(widget Widget, publicKey string, price *money.Money, eventLabel string) (*Orchestrator, error) {
	if publicKey == "" {
		return nil, errors.New("payment public key is not configured")
	}
	if price == nil {
		return nil, errors.New("payment price is not configured")
	}

	return &Orchestrator{
		widget:     widget,
		publicKey:  publicKey,
		price:      price,
		eventLabel: eventLabel,
	}, nil
}

func (o *Orchestrator) WidgetConfig(session client.PaymentSession) WidgetConfig {
	return WidgetConfig{
		Key:       o.publicKey,
		Email:     session.PayerEmail,
		Amount:    o.price.Amount(),
		Currency:  o.price.Currency().Code,
		Reference: session.TransactionReference,
		Metadata: Metadata{
			CustomFields: []CustomField{
				{DisplayName: "Registration ID", VariableName: "registration_id", Value: session.RegistrationID},
				{DisplayName: "Full Name", VariableName: "full_name", Value: session.PayerName},
				{DisplayName: "Event", VariableName: "event", Value: o.eventLabel},
			},
		},
	}
}

// InitiatePayment opens the widget for session and calls exactly one of the
// callbacks once it closes. When the widget cannot be run the error is
// returned and neither callback fires.
func (o *Orchestrator) InitiatePayment(ctx context.Context, session client.PaymentSession, callbacks PaymentCallbacks) error {
	if callbacks.OnSuccess == nil || callbacks.OnCancel == nil {
		return errors.New("both payment callbacks are required")
	}

	outcome, err := o.widget.Open(ctx, o.WidgetConfig(session))
	if err != nil {
		return fmt.Errorf("failed to open payment widget: %w", err)
	}

	switch outcome.Kind {
	case OUTCOME_COMPLETED:
		reference := outcome.Reference
		if reference == "" {
			reference = session.TransactionReference
		}
		callbacks.OnSuccess(reference)
	default:
		callbacks.OnCancel()
	}

	return nil
}
