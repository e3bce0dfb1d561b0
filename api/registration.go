package api

import (
	"context"
	"errors"

	"github.com/divine-encounter/event-registration/ptr"
	"github.com/divine-encounter/event-registration/registration"
	"github.com/divine-encounter/event-registration/slices"
)

const (
	defaultRegistrationsLimit = 25
	maxRegistrationsLimit     = 100
)

func (a *API) PostRegister(ctx context.Context, request PostRegisterRequestObject) (PostRegisterResponseObject, error) {
	logger := a.getLoggerOrBaseLogger(ctx)

	if request.Body == nil {
		logger.Warn("Nil body for registration")

		return PostRegister400JSONResponse{
			Code:    EmptyBody,
			Message: "Must specify a body",
		}, nil
	}

	reg, err := registration.AttemptRegistration(ctx, apiRegisterRequestToForm(*request.Body), a.settings.EventID, a.db, a.db)
	if err != nil {
		var registrationErr *registration.Error
		if errors.As(err, &registrationErr) {
			switch registrationErr.Reason {
			case registration.REASON_INVALID_SUBMISSION:
				logger.Warn("Rejected registration submission", "error", err)

				return PostRegister400JSONResponse{
					Code:    InvalidBody,
					Message: registrationErr.Message,
				}, nil
			case registration.REASON_ASSOCIATED_EVENT_DOES_NOT_EXIST:
				logger.Error("Event to register with is missing", "error", err, "eventId", a.settings.EventID)

				return PostRegister404JSONResponse{
					Code:    NotFound,
					Message: "Event to register with was not found",
				}, nil
			}
		}

		logger.Error("Error trying to register", "error", err)

		return PostRegister500JSONResponse{
			Code:    InternalError,
			Message: "Failed to register",
		}, nil
	}

	logger.Info("Created pending registration", "registrationId", reg.ID, "reference", reg.TransactionReference)

	return PostRegister200JSONResponse{
		Status:               "success",
		Message:              "Registration created successfully",
		RegistrationId:       reg.ID,
		TransactionReference: reg.TransactionReference,
	}, nil
}

func (a *API) GetRegistration(ctx context.Context, request GetRegistrationRequestObject) (GetRegistrationResponseObject, error) {
	reg, err := a.db.GetRegistration(ctx, a.settings.EventID, request.Id)
	if err != nil {
		var registrationErr *registration.Error
		if errors.As(err, &registrationErr) && registrationErr.Reason == registration.REASON_REGISTRATION_DOES_NOT_EXIST {
			return GetRegistration404JSONResponse{
				Code:    NotFound,
				Message: "Registration not found",
			}, nil
		}

		a.getLoggerOrBaseLogger(ctx).Error("Failed to get registration", "error", err, "registrationId", request.Id)

		return GetRegistration500JSONResponse{
			Code:    InternalError,
			Message: "Failed to get registration",
		}, nil
	}

	return GetRegistration200JSONResponse(registrationToApiRegistration(reg)), nil
}

func (a *API) GetRegistrations(ctx context.Context, request GetRegistrationsRequestObject) (GetRegistrationsResponseObject, error) {
	logger := a.getLoggerOrBaseLogger(ctx)

	limit := defaultRegistrationsLimit
	if request.Params.Limit != nil {
		userLimit := *request.Params.Limit
		if userLimit < 1 || userLimit > maxRegistrationsLimit {
			logger.Warn("Limit out of bounds", "limit", userLimit)

			return GetRegistrations400JSONResponse{
				Code:    LimitOutOfBounds,
				Message: "Limit must be between 1 and 100",
			}, nil
		}
		limit = userLimit
	}

	result, err := a.db.GetAllRegistrationsForEvent(ctx, a.settings.EventID, int32(limit), request.Params.Cursor)
	if err != nil {
		var registrationErr *registration.Error
		if errors.As(err, &registrationErr) && registrationErr.Reason == registration.REASON_INVALID_CURSOR {
			logger.Warn("Invalid cursor", "error", err)

			return GetRegistrations400JSONResponse{
				Code:    InvalidCursor,
				Message: "Cursor is invalid",
			}, nil
		}

		logger.Error("Failed to get registrations for event", "error", err, "eventId", a.settings.EventID)

		return GetRegistrations500JSONResponse{
			Code:    InternalError,
			Message: "Failed to get registrations",
		}, nil
	}

	return GetRegistrations200JSONResponse{
		Data:        slices.Map(result.Data, registrationToApiRegistration),
		Cursor:      result.Cursor,
		HasNextPage: result.HasNextPage,
	}, nil
}

func apiRegisterRequestToForm(req RegisterRequest) registration.Form {
	return registration.Form{
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		AttendanceMode: registration.AttendanceMode(req.AttendanceMode),
		Church:         ptr.Deref(req.Church),
		SpecialNeeds:   ptr.Deref(req.SpecialNeeds),
		Newsletter:     ptr.Deref(req.Newsletter),
	}
}

func registrationToApiRegistration(reg registration.Registration) Registration {
	apiReg := Registration{
		Id:                   reg.ID,
		FullName:             reg.FullName,
		Email:                reg.Email,
		Phone:                reg.Phone,
		AttendanceMode:       AttendanceMode(reg.AttendanceMode),
		Church:               reg.Church,
		SpecialNeeds:         reg.SpecialNeeds,
		Newsletter:           reg.Newsletter,
		PaymentStatus:        RegistrationPaymentStatus(reg.PaymentStatus),
		TransactionReference: reg.TransactionReference,
		CreatedAt:            reg.CreatedAt,
		PaidAt:               reg.PaidAt,
	}

	if reg.PaymentAmount != nil {
		apiReg.PaymentAmount = &Money{
			Amount:   reg.PaymentAmount.Amount(),
			Currency: reg.PaymentAmount.Currency().Code,
		}
	}

	return apiReg
}
