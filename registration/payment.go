package registration

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/divine-encounter/event-registration/events"
	"github.com/divine-encounter/event-registration/paystack"
	"github.com/divine-encounter/event-registration/ptr"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("github.com/divine-encounter/event-registration/registration")

type TransactionVerifier interface {
	VerifyTransaction(ctx context.Context, reference string) (paystack.Transaction, error)
}

type PaymentConfirmation struct {
	Registration Registration
	// NewlyPaid is false when the registration had already been marked paid,
	// e.g. by the webhook racing the browser's verify call.
	NewlyPaid bool
}

// ConfirmPayment checks with the payment provider that reference was charged
// in full and marks the matching registration as paid. Confirming the same
// reference twice is a no-op the second time.
func ConfirmPayment(ctx context.Context, reference string, verifier TransactionVerifier, eventRepo events.Repository, registrationRepo Repository) (result PaymentConfirmation, err error) {
	ctx, span := tracer.Start(ctx, "registration.ConfirmPayment")
	span.SetAttributes(attribute.String("payment.reference", reference))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "payment confirmation failed")
		}
		span.End()
	}()

	txn, err := verifier.VerifyTransaction(ctx, reference)
	if err != nil {
		return PaymentConfirmation{}, NewPaymentVerificationFailedError(reference, err)
	}

	if !txn.Successful() {
		return PaymentConfirmation{}, NewPaymentNotSuccessfulError(reference, txn.Status)
	}

	reg, err := registrationRepo.GetRegistrationByReference(ctx, reference)
	if err != nil {
		return PaymentConfirmation{}, err
	}

	if reg.Paid() {
		return PaymentConfirmation{Registration: reg, NewlyPaid: false}, nil
	}

	event, err := eventRepo.GetEvent(ctx, reg.EventID)
	if err != nil {
		return PaymentConfirmation{}, NewFailedToFetchError(fmt.Sprintf("Failed to fetch event with ID %q", reg.EventID), err)
	}

	paid := txn.Money()
	if !paid.SameCurrency(event.Price) {
		return PaymentConfirmation{}, NewPaymentAmountMismatchError(reference, paid.Display(), event.Price.Display())
	}
	short, err := paid.LessThan(event.Price)
	if err != nil || short {
		return PaymentConfirmation{}, NewPaymentAmountMismatchError(reference, paid.Display(), event.Price.Display())
	}

	paidAt := time.Now().UTC()
	if txn.PaidAt != nil {
		paidAt = txn.PaidAt.UTC()
	}

	reg.PaymentStatus = PAYMENT_PAID
	reg.PaidAt = ptr.Time(paidAt)
	reg.PaymentAmount = paid
	reg.Version++

	err = registrationRepo.UpdateRegistrationToPaid(ctx, reg)
	if err != nil {
		var regErr *Error
		if errors.As(err, &regErr) && regErr.Reason == REASON_VERSION_CONFLICT {
			// Only the registration is versioned, so this is another
			// confirmation of the same reference.
			current, getErr := registrationRepo.GetRegistrationByReference(ctx, reference)
			if getErr == nil && current.Paid() {
				return PaymentConfirmation{Registration: current, NewlyPaid: false}, nil
			}
		}
		return PaymentConfirmation{}, err
	}

	return PaymentConfirmation{Registration: reg, NewlyPaid: true}, nil
}
