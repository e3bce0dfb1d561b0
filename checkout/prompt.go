package checkout

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Rhymond/go-money"
)

const promptConfirmWord = "paid"

var _ Widget = &PromptWidget{}

// PromptWidget stands in for the provider's inline widget on a terminal. It
// shows the charge and treats typing "paid" as a completed payment; anything
// else closes it.
type PromptWidget struct {
	in  *LineReader
	out io.Writer
}

// NewPromptWidget reads answers from in, which may be shared with other
// prompts on the same terminal.
func NewPromptWidget(in *LineReader, out io.Writer) *PromptWidget {
	return &PromptWidget{
		in:  in,
		out: out,
	}
}

func (w *PromptWidget) Open(ctx context.Context, cfg WidgetConfig) (Outcome, error) {
	amount := money.New(cfg.Amount, cfg.Currency)

	fmt.Fprintf(w.out, "\nPayment for %s\n", cfg.Email)
	for _, field := range cfg.Metadata.CustomFields {
		fmt.Fprintf(w.out, "  %-16s %s\n", field.DisplayName+":", field.Value)
	}
	fmt.Fprintf(w.out, "  %-16s %s\n", "Amount:", amount.Display())
	fmt.Fprintf(w.out, "  %-16s %s\n", "Reference:", cfg.Reference)
	fmt.Fprintf(w.out, "Type %q to complete the payment, anything else to close: ", promptConfirmWord)

	line, err := w.in.ReadLine(ctx)
	if errors.Is(err, io.EOF) {
		return Outcome{Kind: OUTCOME_CLOSED}, nil
	} else if err != nil {
		return Outcome{}, err
	}

	if strings.EqualFold(strings.TrimSpace(line), promptConfirmWord) {
		return Outcome{Kind: OUTCOME_COMPLETED, Reference: cfg.Reference}, nil
	}
	return Outcome{Kind: OUTCOME_CLOSED}, nil
}
