package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/google/uuid"
	middleware "github.com/oapi-codegen/nethttp-middleware"
	"github.com/rs/cors"
)

const requestIdHeader = "X-Request-Id"

type middlewareFunc func(next http.Handler) http.Handler

func useMiddlewares(r *http.ServeMux, middlewares ...middlewareFunc) http.Handler {
	var s http.Handler
	s = r

	for _, mw := range middlewares {
		s = mw(s)
	}

	return s
}

// requestIdMiddleware tags every request with an id, echoed back in a header
// and attached to the request scoped logger.
func (a *API) requestIdMiddleware() middlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestId := uuid.New()

			ctx := ctxWithRequestId(r.Context(), requestId)
			ctx = ctxWithLogger(ctx, a.logger.With(slog.String("request-id", requestId.String())))

			w.Header().Set(requestIdHeader, requestId.String())

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// loggingMiddleware writes one access log line per request. Server errors are
// logged at error level so they stand out from routine traffic.
func (a *API) loggingMiddleware() middlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := recordStatus(w)

			next.ServeHTTP(rec, r)

			level := slog.LevelInfo
			if rec.Status() >= http.StatusInternalServerError {
				level = slog.LevelError
			}

			a.getLoggerOrBaseLogger(r.Context()).Log(r.Context(), level,
				"Access log",
				slog.String("latency", formatDuration(time.Since(start))),
				slog.Int64("request-content-length", r.ContentLength),
				slog.Int("resp-body-size", rec.written),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status-code", rec.Status()),
				slog.String("user-agent", r.UserAgent()),
			)
		})
	}
}

// openapiValidateMiddleware rejects requests that do not match the embedded
// OpenAPI document before they reach a handler.
func (a *API) openapiValidateMiddleware(swagger *openapi3.T) middlewareFunc {
	return middleware.OapiRequestValidatorWithOptions(swagger, &middleware.Options{
		ErrorHandlerWithOpts: func(ctx context.Context, err error, w http.ResponseWriter, r *http.Request, opts middleware.ErrorHandlerOpts) {
			var requestErr *openapi3filter.RequestError
			switch {
			case errors.As(err, &requestErr):
				a.writeError(w, r, opts.StatusCode, InputValidationError, requestErr.Error())
			case opts.StatusCode == http.StatusNotFound:
				a.writeError(w, r, http.StatusNotFound, NotFound, "No route matches the request")
			default:
				a.getLoggerOrBaseLogger(ctx).Error("request validation failed", slog.String("error", err.Error()))
				a.writeError(w, r, opts.StatusCode, InternalError, err.Error())
			}
		},
	})
}

func (a *API) corsMiddleware() middlewareFunc {
	if a.env == PROD {
		return cors.New(cors.Options{
			AllowedOrigins: a.settings.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost},
			AllowedHeaders: []string{"Content-Type"},
			ExposedHeaders: []string{requestIdHeader},
			MaxAge:         300,
		}).Handler
	}
	return cors.AllowAll().Handler
}

// formatDuration formats a duration to one decimal point.
func formatDuration(d time.Duration) string {
	div := time.Duration(10)
	switch {
	case d > time.Second:
		d = d.Round(time.Second / div)
	case d > time.Millisecond:
		d = d.Round(time.Millisecond / div)
	case d > time.Microsecond:
		d = d.Round(time.Microsecond / div)
	case d > time.Nanosecond:
		d = d.Round(time.Nanosecond / div)
	}
	return d.String()
}
