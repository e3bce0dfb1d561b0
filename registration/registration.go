package registration

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/divine-encounter/event-registration/events"
	"github.com/divine-encounter/event-registration/ptr"
	"github.com/google/uuid"
)

const transactionReferencePrefix = "DE2026-"

type PaymentStatus string

const (
	PAYMENT_PENDING PaymentStatus = "pending"
	PAYMENT_PAID    PaymentStatus = "paid"
)

type Repository interface {
	CreateRegistration(ctx context.Context, registration Registration) error
	GetRegistration(ctx context.Context, eventId uuid.UUID, id uuid.UUID) (Registration, error)
	GetRegistrationByReference(ctx context.Context, reference string) (Registration, error)
	GetAllRegistrationsForEvent(ctx context.Context, eventId uuid.UUID, limit int32, cursor *string) (GetAllRegistrationsResponse, error)
	UpdateRegistrationToPaid(ctx context.Context, registration Registration) error
}

type GetAllRegistrationsResponse struct {
	Data        []Registration
	Cursor      *string
	HasNextPage bool
}

type Registration struct {
	ID             uuid.UUID
	Version        int
	EventID        uuid.UUID
	FullName       string
	Email          string
	Phone          string
	AttendanceMode AttendanceMode
	Church         *string
	SpecialNeeds   *string
	Newsletter     bool

	PaymentStatus        PaymentStatus
	TransactionReference string
	CreatedAt            time.Time
	PaidAt               *time.Time
	PaymentAmount        *money.Money
}

func (r Registration) Paid() bool {
	return r.PaymentStatus == PAYMENT_PAID
}

// NewTransactionReference issues the reference that ties a registration to a
// single payment attempt.
func NewTransactionReference() string {
	id := uuid.New()
	return transactionReferencePrefix + strings.ToUpper(hex.EncodeToString(id[:])[:12])
}

// AttemptRegistration validates the submitted form and stores a pending
// registration against the event. The repository counts it against the event
// in the same write.
func AttemptRegistration(ctx context.Context, form Form, eventId uuid.UUID, eventRepo events.Repository, registrationRepo Repository) (Registration, error) {
	form = form.Trimmed()

	err := ValidateSubmission(form)
	if err != nil {
		var validationErr *ValidationError
		errors.As(err, &validationErr)
		return Registration{}, NewInvalidSubmissionError(validationErr)
	}

	_, err = eventRepo.GetEvent(ctx, eventId)
	if err != nil {
		var eventErr *events.Error
		if errors.As(err, &eventErr) {
			switch eventErr.Reason {
			case events.REASON_EVENT_DOES_NOT_EXIST:
				return Registration{}, NewAssociatedEventDoesNotExistError(fmt.Sprintf("Event does not exist with ID %q", eventId), err)
			}
		}

		return Registration{}, NewFailedToFetchError(fmt.Sprintf("Failed to fetch event with ID %q", eventId), err)
	}

	reg := Registration{
		ID:                   uuid.New(),
		Version:              1,
		EventID:              eventId,
		FullName:             form.FullName,
		Email:                form.Email,
		Phone:                form.Phone,
		AttendanceMode:       form.AttendanceMode,
		Church:               ptr.StringOrNil(form.Church),
		SpecialNeeds:         ptr.StringOrNil(form.SpecialNeeds),
		Newsletter:           form.Newsletter,
		PaymentStatus:        PAYMENT_PENDING,
		TransactionReference: NewTransactionReference(),
		CreatedAt:            time.Now().UTC(),
	}

	err = registrationRepo.CreateRegistration(ctx, reg)
	if err != nil {
		return Registration{}, err
	}

	return reg, nil
}
