package api

import (
	"bytes"
	"context"
	"fmt"

	"github.com/divine-encounter/event-registration/events"
	"github.com/divine-encounter/event-registration/success"
)

func (a *API) GetShareLinks(ctx context.Context, request GetShareLinksRequestObject) (GetShareLinksResponseObject, error) {
	links := success.ShareLinks(a.settings.PublicOrigin)

	return GetShareLinks200JSONResponse{
		Facebook: links.Facebook,
		Twitter:  links.Twitter,
		Whatsapp: links.WhatsApp,
	}, nil
}

func (a *API) GetCalendarFile(ctx context.Context, request GetCalendarFileRequestObject) (GetCalendarFileResponseObject, error) {
	logger := a.getLoggerOrBaseLogger(ctx)

	event, err := a.db.GetEvent(ctx, a.settings.EventID)
	if err != nil {
		if events.HasReason(err, events.REASON_EVENT_DOES_NOT_EXIST) {
			return GetCalendarFile404JSONResponse{
				Code:    NotFound,
				Message: "Event not found",
			}, nil
		}

		logger.Error("Failed to get event for calendar file", "error", err, "eventId", a.settings.EventID)

		return GetCalendarFile500JSONResponse{
			Code:    InternalError,
			Message: "Failed to build calendar file",
		}, nil
	}

	fileName := success.CalendarFileName(event)
	if request.File != fileName {
		return GetCalendarFile404JSONResponse{
			Code:    NotFound,
			Message: "Calendar file not found",
		}, nil
	}

	var buf bytes.Buffer
	err = success.WriteCalendar(&buf, event, a.now())
	if err != nil {
		logger.Error("Failed to write calendar file", "error", err)

		return GetCalendarFile500JSONResponse{
			Code:    InternalError,
			Message: "Failed to build calendar file",
		}, nil
	}

	return GetCalendarFile200TextcalendarResponse{
		Body:          &buf,
		ContentLength: int64(buf.Len()),
		Headers: GetCalendarFile200ResponseHeaders{
			ContentDisposition: fmt.Sprintf("attachment; filename=%q", fileName),
		},
	}, nil
}
