package checkout

import "context"

type CustomField struct {
	DisplayName  string `json:"display_name"`
	VariableName string `json:"variable_name"`
	Value        string `json:"value"`
}

type Metadata struct {
	CustomFields []CustomField `json:"custom_fields"`
}

// WidgetConfig is what the payment provider's inline widget is opened with.
// Amount is in the currency's minor unit.
type WidgetConfig struct {
	Key       string   `json:"key"`
	Email     string   `json:"email"`
	Amount    int64    `json:"amount"`
	Currency  string   `json:"currency"`
	Reference string   `json:"ref"`
	Metadata  Metadata `json:"metadata"`
}

type OutcomeKind int

// The zero OutcomeKind is OUTCOME_CLOSED, so an Outcome nobody filled in is
// never taken as a payment.
const (
	// The attendee dismissed the widget before paying.
	OUTCOME_CLOSED OutcomeKind = iota
	// The provider reported the charge as complete.
	OUTCOME_COMPLETED
)

type Outcome struct {
	Kind OutcomeKind
	// Reference the provider completed the charge under. Only set for
	// OUTCOME_COMPLETED and may be empty if the provider did not echo it.
	Reference string
}

// Widget is the external payment widget. Open blocks until the widget reaches
// one of its two terminal outcomes. An error means the widget could not be
// run at all.
type Widget interface {
	Open(ctx context.Context, cfg WidgetConfig) (Outcome, error)
}
