//go:generate go tool oapi-codegen --config openapi-codegen-config.yaml openapi.yaml
package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/International-Combat-Archery-Alliance/email"
	"github.com/divine-encounter/event-registration/events"
	"github.com/divine-encounter/event-registration/registration"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Environment int

const (
	LOCAL Environment = iota
	PROD
)

const paystackWebhookPath = "/api/webhook/paystack"

type DB interface {
	events.Repository
	registration.Repository
}

// Settings are the deployment specific values the handlers need.
type Settings struct {
	// The single event this site takes registrations for.
	EventID uuid.UUID
	// Paystack signs webhook deliveries with the account's secret key.
	PaystackSecretKey string
	EmailFromAddress  string
	// Origin of the public signup page, used to build share links.
	PublicOrigin   string
	AllowedOrigins []string
}

type API struct {
	db          DB
	logger      *slog.Logger
	env         Environment
	settings    Settings
	verifier    registration.TransactionVerifier
	emailSender email.Sender

	now func() time.Time
}

var _ StrictServerInterface = (*API)(nil)

func NewAPI(db DB, logger *slog.Logger, env Environment, settings Settings, verifier registration.TransactionVerifier, emailSender email.Sender) *API {
	return &API{
		db:          db,
		logger:      logger,
		env:         env,
		settings:    settings,
		verifier:    verifier,
		emailSender: emailSender,
		now:         time.Now,
	}
}

// Handler wires every route behind the shared middleware stack.
func (a *API) Handler() (http.Handler, error) {
	swagger, err := GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("failed to load openapi document: %w", err)
	}

	strictHandler := NewStrictHandlerWithOptions(a, []StrictMiddlewareFunc{}, StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  a.requestErrorHandler,
		ResponseErrorHandlerFunc: a.responseErrorHandler,
	})

	mux := http.NewServeMux()
	HandlerWithOptions(strictHandler, StdHTTPServerOptions{
		BaseRouter:       mux,
		ErrorHandlerFunc: a.requestErrorHandler,
	})

	return useMiddlewares(
		mux,
		a.openapiValidateMiddleware(swagger),
		middlewareFunc(a.paystackWebhookMiddleware(paystackWebhookPath)),
		a.corsMiddleware(),
		a.loggingMiddleware(),
		a.requestIdMiddleware(),
		func(next http.Handler) http.Handler {
			return otelhttp.NewHandler(next, "divine-encounter-api")
		},
	), nil
}
