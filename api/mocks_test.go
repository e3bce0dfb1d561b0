package api

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"testing"

	"github.com/International-Combat-Archery-Alliance/email"
	"github.com/divine-encounter/event-registration/events"
	"github.com/divine-encounter/event-registration/paystack"
	"github.com/divine-encounter/event-registration/registration"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var noopLogger = slog.New(slog.DiscardHandler)

var testEventID = uuid.MustParse("6f1c2d0e-5b8a-4c59-9f3e-2a7d8c1b4e60")

const testSecretKey = "sk_test_webhook_secret"

func testSettings() Settings {
	return Settings{
		EventID:           testEventID,
		PaystackSecretKey: testSecretKey,
		EmailFromAddress:  "Divine Encounter <hello@divineencounter.org>",
		PublicOrigin:      "https://divineencounter.org",
		AllowedOrigins:    []string{"https://divineencounter.org"},
	}
}

func testEvent() events.Event {
	event := events.DivineEncounter2026(testEventID)
	event.TotalRegistrations = 12
	event.PaidRegistrations = 9
	event.InPersonAttendees = 6
	return event
}

func newTestHandler(t *testing.T, db *mockDB, verifier *mockVerifier, sender *mockEmailSender) http.Handler {
	t.Helper()

	api := NewAPI(db, noopLogger, LOCAL, testSettings(), verifier, sender)
	h, err := api.Handler()
	require.NoError(t, err)

	return h
}

var _ DB = &mockDB{}

type mockDB struct {
	GetEventFunc                    func(ctx context.Context, id uuid.UUID) (events.Event, error)
	CreateEventFunc                 func(ctx context.Context, event events.Event) error
	UpdateEventFunc                 func(ctx context.Context, event events.Event) error
	CreateRegistrationFunc          func(ctx context.Context, reg registration.Registration) error
	GetRegistrationFunc             func(ctx context.Context, eventId uuid.UUID, id uuid.UUID) (registration.Registration, error)
	GetRegistrationByReferenceFunc  func(ctx context.Context, reference string) (registration.Registration, error)
	GetAllRegistrationsForEventFunc func(ctx context.Context, eventId uuid.UUID, limit int32, cursor *string) (registration.GetAllRegistrationsResponse, error)
	UpdateRegistrationToPaidFunc    func(ctx context.Context, reg registration.Registration) error
}

func (m *mockDB) GetEvent(ctx context.Context, id uuid.UUID) (events.Event, error) {
	return m.GetEventFunc(ctx, id)
}

func (m *mockDB) CreateEvent(ctx context.Context, event events.Event) error {
	return m.CreateEventFunc(ctx, event)
}

func (m *mockDB) UpdateEvent(ctx context.Context, event events.Event) error {
	return m.UpdateEventFunc(ctx, event)
}

func (m *mockDB) CreateRegistration(ctx context.Context, reg registration.Registration) error {
	if m.CreateRegistrationFunc != nil {
		return m.CreateRegistrationFunc(ctx, reg)
	}
	return nil
}

func (m *mockDB) GetRegistration(ctx context.Context, eventId uuid.UUID, id uuid.UUID) (registration.Registration, error) {
	return m.GetRegistrationFunc(ctx, eventId, id)
}

func (m *mockDB) GetRegistrationByReference(ctx context.Context, reference string) (registration.Registration, error) {
	return m.GetRegistrationByReferenceFunc(ctx, reference)
}

func (m *mockDB) GetAllRegistrationsForEvent(ctx context.Context, eventId uuid.UUID, limit int32, cursor *string) (registration.GetAllRegistrationsResponse, error) {
	return m.GetAllRegistrationsForEventFunc(ctx, eventId, limit, cursor)
}

func (m *mockDB) UpdateRegistrationToPaid(ctx context.Context, reg registration.Registration) error {
	if m.UpdateRegistrationToPaidFunc != nil {
		return m.UpdateRegistrationToPaidFunc(ctx, reg)
	}
	return nil
}

type mockVerifier struct {
	VerifyTransactionFunc func(ctx context.Context, reference string) (paystack.Transaction, error)
}

func (m *mockVerifier) VerifyTransaction(ctx context.Context, reference string) (paystack.Transaction, error) {
	return m.VerifyTransactionFunc(ctx, reference)
}

type mockEmailSender struct {
	SendEmailFunc func(ctx context.Context, e email.Email) error

	mu   sync.Mutex
	sent []email.Email
}

func (m *mockEmailSender) SendEmail(ctx context.Context, e email.Email) error {
	m.mu.Lock()
	m.sent = append(m.sent, e)
	m.mu.Unlock()

	if m.SendEmailFunc != nil {
		return m.SendEmailFunc(ctx, e)
	}
	return nil
}

func (m *mockEmailSender) Sent() []email.Email {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]email.Email(nil), m.sent...)
}
