package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/divine-encounter/event-registration/client"
	"github.com/divine-encounter/event-registration/registration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pageCall struct {
	Method string
	Arg    any
}

type fakePage struct {
	calls []pageCall
}

func (p *fakePage) SetLoading(loading bool) {
	p.calls = append(p.calls, pageCall{"SetLoading", loading})
}

func (p *fakePage) ShowError(message string) {
	p.calls = append(p.calls, pageCall{"ShowError", message})
}

func (p *fakePage) Navigate(path string) {
	p.calls = append(p.calls, pageCall{"Navigate", path})
}

func (p *fakePage) count(method string) int {
	n := 0
	for _, c := range p.calls {
		if c.Method == method {
			n++
		}
	}
	return n
}

func (p *fakePage) last() pageCall {
	return p.calls[len(p.calls)-1]
}

// backend is a stand-in for the registration API that counts calls.
type backend struct {
	registerStatus int
	verifyStatus   int
	verifyBody     string

	registerCalls atomic.Int32
	verifyCalls   atomic.Int32
	lastRegister  map[string]any
	lastReference string
}

func newBackend() *backend {
	return &backend{
		registerStatus: http.StatusOK,
		verifyStatus:   http.StatusOK,
		verifyBody:     `{"status":"success","message":"Payment verified successfully","data":{}}`,
	}
}

func (b *backend) start(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/register", func(w http.ResponseWriter, r *http.Request) {
		b.registerCalls.Add(1)
		json.NewDecoder(r.Body).Decode(&b.lastRegister)

		w.WriteHeader(b.registerStatus)
		if b.registerStatus == http.StatusOK {
			w.Write([]byte(`{"status":"success","registration_id":"reg-1","transaction_reference":"DE2026-ABCDEF123456"}`))
		}
	})
	mux.HandleFunc("POST /api/verify-payment", func(w http.ResponseWriter, r *http.Request) {
		b.verifyCalls.Add(1)
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		b.lastReference = body["reference"]

		w.WriteHeader(b.verifyStatus)
		w.Write([]byte(b.verifyBody))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func widgetReturning(kind OutcomeKind) *mockWidget {
	return &mockWidget{
		OpenFunc: func(ctx context.Context, cfg WidgetConfig) (Outcome, error) {
			if kind == OUTCOME_COMPLETED {
				return Outcome{Kind: kind, Reference: cfg.Reference}, nil
			}
			return Outcome{Kind: kind}, nil
		},
	}
}

func newTestFlow(t *testing.T, b *backend, widget Widget) (*Flow, *fakePage) {
	t.Helper()

	server := b.start(t)
	api := client.NewClient(server.Client(), server.URL)
	page := &fakePage{}

	return NewFlow(page, api, testOrchestrator(t, widget), api, nil), page
}

func validForm() registration.Form {
	return registration.Form{
		FullName:       "Ada Obi",
		Email:          "ada@example.com",
		Phone:          "+234 801 234 5678",
		AttendanceMode: registration.IN_PERSON,
		Church:         "Grace Chapel",
		SpecialNeeds:   "",
		Newsletter:     false,
		TermsAccepted:  true,
	}
}

func TestFlowSubmit(t *testing.T) {
	t.Run("invalid form never reaches the backend", func(t *testing.T) {
		b := newBackend()
		flow, page := newTestFlow(t, b, widgetReturning(OUTCOME_COMPLETED))

		form := validForm()
		form.FullName = "A"
		form.Email = "a@b"

		err := flow.Submit(context.Background(), form)

		var validationErr *registration.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, registration.REASON_NAME_TOO_SHORT, validationErr.Reason)
		assert.Equal(t, []pageCall{{"ShowError", "Please enter your full name"}}, page.calls)
		assert.Zero(t, b.registerCalls.Load())
		assert.Equal(t, IDLE, flow.State())
	})

	t.Run("valid form posts exactly once with the field mapping", func(t *testing.T) {
		b := newBackend()
		flow, _ := newTestFlow(t, b, widgetReturning(OUTCOME_COMPLETED))

		require.NoError(t, flow.Submit(context.Background(), validForm()))

		assert.Equal(t, int32(1), b.registerCalls.Load())
		assert.Equal(t, map[string]any{
			"full_name":       "Ada Obi",
			"email":           "ada@example.com",
			"phone":           "+234 801 234 5678",
			"attendance_mode": "in-person",
			"church":          "Grace Chapel",
			"special_needs":   "",
			"newsletter":      false,
		}, b.lastRegister)
	})

	t.Run("registration failure re-enables the control and skips payment", func(t *testing.T) {
		b := newBackend()
		b.registerStatus = http.StatusInternalServerError
		widget := &mockWidget{
			OpenFunc: func(ctx context.Context, cfg WidgetConfig) (Outcome, error) {
				t.Fatal("widget should not open")
				return Outcome{}, nil
			},
		}
		flow, page := newTestFlow(t, b, widget)

		err := flow.Submit(context.Background(), validForm())

		var clientErr *client.Error
		require.ErrorAs(t, err, &clientErr)
		assert.Equal(t, client.REASON_REGISTRATION_FAILED, clientErr.Reason)
		assert.Equal(t, []pageCall{
			{"SetLoading", true},
			{"ShowError", "An error occurred. Please try again."},
			{"SetLoading", false},
		}, page.calls)
		assert.Equal(t, IDLE, flow.State())
	})

	t.Run("cancelled payment makes no verification call", func(t *testing.T) {
		b := newBackend()
		flow, page := newTestFlow(t, b, widgetReturning(OUTCOME_CLOSED))

		err := flow.Submit(context.Background(), validForm())

		assert.ErrorIs(t, err, ErrPaymentCancelled)
		assert.Zero(t, b.verifyCalls.Load())
		assert.Equal(t, []pageCall{
			{"SetLoading", true},
			{"ShowError", "Payment was cancelled. Please try again."},
			{"SetLoading", false},
		}, page.calls)
		assert.Equal(t, IDLE, flow.State())
	})

	t.Run("widget failure re-enables the control", func(t *testing.T) {
		b := newBackend()
		widget := &mockWidget{
			OpenFunc: func(ctx context.Context, cfg WidgetConfig) (Outcome, error) {
				return Outcome{}, errors.New("script failed to load")
			},
		}
		flow, page := newTestFlow(t, b, widget)

		err := flow.Submit(context.Background(), validForm())

		assert.Error(t, err)
		assert.Zero(t, b.verifyCalls.Load())
		assert.Equal(t, pageCall{"SetLoading", false}, page.last())
		assert.Equal(t, IDLE, flow.State())
	})

	t.Run("verified payment navigates exactly once", func(t *testing.T) {
		b := newBackend()
		flow, page := newTestFlow(t, b, widgetReturning(OUTCOME_COMPLETED))

		require.NoError(t, flow.Submit(context.Background(), validForm()))

		assert.Equal(t, "DE2026-ABCDEF123456", b.lastReference)
		assert.Equal(t, int32(1), b.verifyCalls.Load())
		assert.Equal(t, 1, page.count("Navigate"))
		assert.Equal(t, pageCall{"Navigate", SuccessPath}, page.last())
		assert.Zero(t, page.count("ShowError"))
		assert.Equal(t, COMPLETED, flow.State())
	})

	t.Run("rejected verification shows the reference verbatim", func(t *testing.T) {
		for _, body := range []string{`{"status":"failed"}`, `{"status":"pending"}`, `{}`} {
			t.Run(body, func(t *testing.T) {
				b := newBackend()
				b.verifyBody = body
				flow, page := newTestFlow(t, b, widgetReturning(OUTCOME_COMPLETED))

				err := flow.Submit(context.Background(), validForm())

				var clientErr *client.Error
				require.ErrorAs(t, err, &clientErr)
				assert.Equal(t, client.REASON_VERIFICATION_REJECTED, clientErr.Reason)
				assert.Contains(t, page.calls, pageCall{"ShowError", "Payment verification failed. Please contact support with reference: DE2026-ABCDEF123456"})
				assert.Equal(t, pageCall{"SetLoading", false}, page.last())
				assert.Zero(t, page.count("Navigate"))
				assert.Equal(t, IDLE, flow.State())
			})
		}
	})

	t.Run("failed verification request shows the reference", func(t *testing.T) {
		b := newBackend()
		b.verifyStatus = http.StatusBadGateway
		flow, page := newTestFlow(t, b, widgetReturning(OUTCOME_COMPLETED))

		err := flow.Submit(context.Background(), validForm())

		var clientErr *client.Error
		require.ErrorAs(t, err, &clientErr)
		assert.Equal(t, client.REASON_VERIFICATION_REQUEST_FAILED, clientErr.Reason)
		assert.Contains(t, page.calls, pageCall{"ShowError", "Payment verification failed. Please contact support with reference: DE2026-ABCDEF123456"})
	})

	t.Run("failure allows resubmission", func(t *testing.T) {
		b := newBackend()
		b.registerStatus = http.StatusInternalServerError
		flow, _ := newTestFlow(t, b, widgetReturning(OUTCOME_COMPLETED))

		assert.Error(t, flow.Submit(context.Background(), validForm()))

		b.registerStatus = http.StatusOK
		assert.NoError(t, flow.Submit(context.Background(), validForm()))
		assert.Equal(t, int32(2), b.registerCalls.Load())
	})

	t.Run("completed is terminal", func(t *testing.T) {
		b := newBackend()
		flow, _ := newTestFlow(t, b, widgetReturning(OUTCOME_COMPLETED))

		require.NoError(t, flow.Submit(context.Background(), validForm()))
		assert.ErrorIs(t, flow.Submit(context.Background(), validForm()), ErrFlowCompleted)
		assert.Equal(t, int32(1), b.registerCalls.Load())
	})

	t.Run("second submit while in flight is refused", func(t *testing.T) {
		b := newBackend()
		opened := make(chan struct{})
		release := make(chan struct{})
		widget := &mockWidget{
			OpenFunc: func(ctx context.Context, cfg WidgetConfig) (Outcome, error) {
				close(opened)
				<-release
				return Outcome{Kind: OUTCOME_COMPLETED, Reference: cfg.Reference}, nil
			},
		}
		flow, _ := newTestFlow(t, b, widget)

		done := make(chan error, 1)
		go func() {
			done <- flow.Submit(context.Background(), validForm())
		}()

		<-opened
		assert.Equal(t, AWAITING_PAYMENT, flow.State())
		assert.ErrorIs(t, flow.Submit(context.Background(), validForm()), ErrFlowInProgress)

		close(release)
		assert.NoError(t, <-done)
		assert.Equal(t, int32(1), b.registerCalls.Load())
	})
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "AWAITING_PAYMENT", AWAITING_PAYMENT.String())
	assert.Equal(t, "COMPLETED", COMPLETED.String())
	assert.Equal(t, "State(42)", State(42).String())
}
