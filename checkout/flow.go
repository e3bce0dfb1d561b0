// Package checkout drives a signup from the submitted form through payment to
// the success page.
package checkout

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/divine-encounter/event-registration/client"
	"github.com/divine-encounter/event-registration/registration"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const SuccessPath = "/success"

const (
	submitFailedMessage       = "An error occurred. Please try again."
	paymentCancelledMessage   = "Payment was cancelled. Please try again."
	verificationFailedMessage = "Payment verification failed. Please contact support with reference: "
)

var (
	ErrPaymentCancelled = errors.New("payment was cancelled")
	ErrFlowInProgress   = errors.New("a registration is already in progress")
	ErrFlowCompleted    = errors.New("registration is already complete")
)

var tracer = otel.Tracer("github.com/divine-encounter/event-registration/checkout")

// Page is the part of the signup page the flow controls.
type Page interface {
	// SetLoading disables the submit control while true.
	SetLoading(loading bool)
	ShowError(message string)
	Navigate(path string)
}

type Submitter interface {
	SubmitRegistration(ctx context.Context, form registration.Form) (client.PaymentSession, error)
}

type Verifier interface {
	VerifyPayment(ctx context.Context, reference string) error
}

type PaymentInitiator interface {
	InitiatePayment(ctx context.Context, session client.PaymentSession, callbacks PaymentCallbacks) error
}

// Flow runs one signup at a time. A failed attempt returns to IDLE so the
// form can be submitted again; COMPLETED is final.
type Flow struct {
	page      Page
	submitter Submitter
	payments  PaymentInitiator
	verifier  Verifier
	logger    *slog.Logger

	mu    sync.Mutex
	state State
}

func NewFlow(page Page, submitter Submitter, payments PaymentInitiator, verifier Verifier, logger *slog.Logger) *Flow {
	return &Flow{
		page:      page,
		submitter: submitter,
		payments:  payments,
		verifier:  verifier,
		logger:    logger,
		state:     IDLE,
	}
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Submit runs the whole signup for form. The returned error is the same
// failure the page was shown.
func (f *Flow) Submit(ctx context.Context, form registration.Form) (err error) {
	if err := f.begin(); err != nil {
		return err
	}

	ctx, span := tracer.Start(ctx, "checkout.Submit")
	defer func() {
		if err != nil && !errors.Is(err, ErrPaymentCancelled) {
			span.RecordError(err)
			span.SetStatus(codes.Error, "signup failed")
		}
		span.End()
	}()

	err = registration.Validate(form)
	if err != nil {
		var validationErr *registration.ValidationError
		errors.As(err, &validationErr)
		f.fail(ctx, validationErr.Message(), false)
		return err
	}

	f.page.SetLoading(true)
	f.transition(ctx, SUBMITTING)

	session, err := f.submitter.SubmitRegistration(ctx, form)
	if err != nil {
		f.fail(ctx, submitFailedMessage, true)
		return err
	}
	span.SetAttributes(
		attribute.String("registration.id", session.RegistrationID),
		attribute.String("payment.reference", session.TransactionReference),
	)

	f.transition(ctx, AWAITING_PAYMENT)

	var paidReference string
	var cancelled bool
	err = f.payments.InitiatePayment(ctx, session, PaymentCallbacks{
		OnSuccess: func(reference string) { paidReference = reference },
		OnCancel:  func() { cancelled = true },
	})
	if err != nil {
		f.fail(ctx, submitFailedMessage, true)
		return err
	}
	if cancelled {
		f.fail(ctx, paymentCancelledMessage, true)
		return ErrPaymentCancelled
	}

	f.transition(ctx, VERIFYING)

	err = f.verifier.VerifyPayment(ctx, paidReference)
	if err != nil {
		f.fail(ctx, verificationFailedMessage+paidReference, true)
		return err
	}

	f.transition(ctx, COMPLETED)
	f.page.Navigate(SuccessPath)

	return nil
}

func (f *Flow) begin() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.state {
	case IDLE:
		f.setState(VALIDATING)
		return nil
	case COMPLETED:
		return ErrFlowCompleted
	default:
		return ErrFlowInProgress
	}
}

// transition moves to the next state and marks it on the signup span.
func (f *Flow) transition(ctx context.Context, to State) {
	trace.SpanFromContext(ctx).AddEvent("state changed", trace.WithAttributes(
		attribute.String("signup.state", to.String()),
	))

	f.mu.Lock()
	defer f.mu.Unlock()
	f.setState(to)
}

func (f *Flow) setState(to State) {
	if f.logger != nil {
		f.logger.Debug("signup state changed", slog.String("from", f.state.String()), slog.String("to", to.String()))
	}
	f.state = to
}

func (f *Flow) fail(ctx context.Context, message string, loading bool) {
	f.transition(ctx, IDLE)
	f.page.ShowError(message)
	if loading {
		f.page.SetLoading(false)
	}
}
