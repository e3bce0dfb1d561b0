package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/International-Combat-Archery-Alliance/middleware"
	"github.com/divine-encounter/event-registration/paystack"
	"github.com/divine-encounter/event-registration/ptr"
	"github.com/divine-encounter/event-registration/registration"
)

const maxWebhookBodyBytes = 65536

func (a *API) PostVerifyPayment(ctx context.Context, request PostVerifyPaymentRequestObject) (PostVerifyPaymentResponseObject, error) {
	logger := a.getLoggerOrBaseLogger(ctx)

	if request.Body == nil || request.Body.Reference == "" {
		logger.Warn("Invalid body for payment verification")

		return PostVerifyPayment400JSONResponse{
			Code:    InvalidBody,
			Message: "Must specify a transaction reference",
		}, nil
	}
	reference := request.Body.Reference

	confirmation, err := a.confirmPayment(ctx, logger, reference)
	if err != nil {
		var registrationErr *registration.Error
		if errors.As(err, &registrationErr) {
			switch registrationErr.Reason {
			case registration.REASON_PAYMENT_NOT_SUCCESSFUL:
				logger.Warn("Payment verification rejected", "error", err, "reference", reference)

				return PostVerifyPayment400JSONResponse{
					Code:    PaymentNotSuccessful,
					Message: "Payment was not successful",
				}, nil
			case registration.REASON_PAYMENT_AMOUNT_MISMATCH:
				logger.Warn("Payment verification rejected", "error", err, "reference", reference)

				return PostVerifyPayment400JSONResponse{
					Code:    PaymentAmountMismatch,
					Message: "Payment amount does not match the registration fee",
				}, nil
			case registration.REASON_REGISTRATION_DOES_NOT_EXIST:
				logger.Warn("Payment verification for unknown reference", "reference", reference)

				return PostVerifyPayment404JSONResponse{
					Code:    NotFound,
					Message: "Registration not found",
				}, nil
			case registration.REASON_PAYMENT_VERIFICATION_FAILED:
				logger.Error("Payment provider could not verify payment", "error", err, "reference", reference)

				return PostVerifyPayment502JSONResponse{
					Code:    ProviderError,
					Message: "Could not verify payment with the payment provider",
				}, nil
			}
		}

		logger.Error("Failed to verify payment", "error", err, "reference", reference)

		return PostVerifyPayment500JSONResponse{
			Code:    InternalError,
			Message: "Failed to verify payment",
		}, nil
	}

	return PostVerifyPayment200JSONResponse{
		Status:  "success",
		Message: "Payment verified successfully",
		Data:    registrationToApiRegistration(confirmation.Registration),
	}, nil
}

// paystackWebhookMiddleware serves Paystack's webhook deliveries ahead of
// request validation, since the raw body is needed to check the signature.
func (a *API) paystackWebhookMiddleware(path string) middleware.MiddlewareFunc {
	server := http.NewServeMux()

	server.HandleFunc("POST "+path, func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		logger := a.getLoggerOrBaseLogger(ctx)

		r.Body = http.MaxBytesReader(w, r.Body, maxWebhookBodyBytes)
		payload, err := io.ReadAll(r.Body)
		if err != nil {
			logger.Error("Failed to read paystack webhook body", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		event, err := paystack.ParseWebhook(a.settings.PaystackSecretKey, payload, r.Header.Get(paystack.SignatureHeader))
		if err != nil {
			var paystackErr *paystack.Error
			if errors.As(err, &paystackErr) && paystackErr.Reason == paystack.REASON_INVALID_SIGNATURE {
				logger.Warn("Rejected paystack webhook with a bad signature", slog.String("error", err.Error()))
				a.writeError(w, r, http.StatusUnauthorized, InvalidSignature, "Invalid signature")
				return
			}

			logger.Error("Failed to parse paystack webhook", slog.String("error", err.Error()))
			a.writeError(w, r, http.StatusBadRequest, InvalidBody, "Invalid webhook payload")
			return
		}

		if event.Event != paystack.EVENT_CHARGE_SUCCESS {
			logger.Info("Ignoring paystack webhook", slog.String("event", event.Event))
			a.writeJSON(w, r, http.StatusOK, StatusResponse{Status: "ignored"})
			return
		}

		_, err = a.confirmPayment(ctx, logger, event.Data.Reference)
		if err != nil {
			var registrationErr *registration.Error
			if errors.As(err, &registrationErr) && registrationErr.Reason == registration.REASON_REGISTRATION_DOES_NOT_EXIST {
				// Charges made outside this site share the account's webhook.
				logger.Warn("Paystack charge has no matching registration", slog.String("reference", event.Data.Reference))
				a.writeJSON(w, r, http.StatusOK, StatusResponse{Status: "ignored"})
				return
			}

			logger.Error("Failed to confirm registration payment from webhook", slog.String("error", err.Error()), slog.String("reference", event.Data.Reference))
			a.writeJSON(w, r, http.StatusInternalServerError, StatusResponse{Status: "error", Message: ptr.String("Failed to confirm payment")})
			return
		}

		a.writeJSON(w, r, http.StatusOK, StatusResponse{Status: "success"})
	})

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handler, matchedPath := server.Handler(r)

			if matchedPath == "" {
				next.ServeHTTP(w, r)
				return
			}

			handler.ServeHTTP(w, r)
		})
	}
}

// confirmPayment marks the registration paid and, the first time only, emails
// the attendee. Email failures do not fail the confirmation.
func (a *API) confirmPayment(ctx context.Context, logger *slog.Logger, reference string) (registration.PaymentConfirmation, error) {
	confirmation, err := registration.ConfirmPayment(ctx, reference, a.verifier, a.db, a.db)
	if err != nil {
		return registration.PaymentConfirmation{}, err
	}

	if !confirmation.NewlyPaid {
		return confirmation, nil
	}

	reg := confirmation.Registration
	logger.Info("Registration paid", slog.String("registrationId", reg.ID.String()), slog.String("reference", reference))

	event, err := a.db.GetEvent(ctx, reg.EventID)
	if err != nil {
		logger.Error("Failed to get event to send confirmation email with", slog.String("error", err.Error()))
		return confirmation, nil
	}

	err = registration.SendRegistrationConfirmationEmail(ctx, a.emailSender, a.settings.EmailFromAddress, reg, event)
	if err != nil {
		logger.Error("Failed to send confirmation email", slog.String("error", err.Error()), slog.String("email", reg.Email))
	}

	return confirmation, nil
}
