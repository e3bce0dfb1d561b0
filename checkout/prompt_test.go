package checkout

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptWidget(t *testing.T) {
	orchestrator := testOrchestrator(t, &mockWidget{})
	cfg := orchestrator.WidgetConfig(testSession())

	t.Run("typing paid completes the payment", func(t *testing.T) {
		var out bytes.Buffer
		widget := NewPromptWidget(NewLineReader(strings.NewReader(" PAID \n")), &out)

		outcome, err := widget.Open(context.Background(), cfg)
		require.NoError(t, err)
		assert.Equal(t, Outcome{Kind: OUTCOME_COMPLETED, Reference: "DE2026-ABCDEF123456"}, outcome)

		assert.Contains(t, out.String(), "ada@example.com")
		assert.Contains(t, out.String(), "₦5,000.00")
		assert.Contains(t, out.String(), "DE2026-ABCDEF123456")
		assert.Contains(t, out.String(), "Divine Encounter 2026")
	})

	t.Run("anything else closes the widget", func(t *testing.T) {
		widget := NewPromptWidget(NewLineReader(strings.NewReader("no\n")), io.Discard)

		outcome, err := widget.Open(context.Background(), cfg)
		require.NoError(t, err)
		assert.Equal(t, OUTCOME_CLOSED, outcome.Kind)
	})

	t.Run("end of input closes the widget", func(t *testing.T) {
		widget := NewPromptWidget(NewLineReader(strings.NewReader("")), io.Discard)

		outcome, err := widget.Open(context.Background(), cfg)
		require.NoError(t, err)
		assert.Equal(t, OUTCOME_CLOSED, outcome.Kind)
	})

	t.Run("cancelled context", func(t *testing.T) {
		reader, writer := io.Pipe()
		defer writer.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		_, err := NewPromptWidget(NewLineReader(reader), io.Discard).Open(ctx, cfg)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("answer after a cancelled open goes to the next open", func(t *testing.T) {
		reader, writer := io.Pipe()
		defer writer.Close()
		widget := NewPromptWidget(NewLineReader(reader), io.Discard)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := widget.Open(ctx, cfg)
		require.ErrorIs(t, err, context.Canceled)

		go writer.Write([]byte("paid\n"))

		outcome, err := widget.Open(context.Background(), cfg)
		require.NoError(t, err)
		assert.Equal(t, OUTCOME_COMPLETED, outcome.Kind)
	})
}
