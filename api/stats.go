package api

import "context"

func (a *API) GetStats(ctx context.Context, request GetStatsRequestObject) (GetStatsResponseObject, error) {
	event, err := a.db.GetEvent(ctx, a.settings.EventID)
	if err != nil {
		a.getLoggerOrBaseLogger(ctx).Error("Failed to get event for stats", "error", err, "eventId", a.settings.EventID)

		return GetStats500JSONResponse{
			Code:    InternalError,
			Message: "Failed to get stats",
		}, nil
	}

	return GetStats200JSONResponse{
		TotalRegistrations: event.TotalRegistrations,
		PaidRegistrations:  event.PaidRegistrations,
		InPersonAttendees:  event.InPersonAttendees,
		VirtualAttendees:   event.VirtualAttendees(),
	}, nil
}

func (a *API) GetHealth(ctx context.Context, request GetHealthRequestObject) (GetHealthResponseObject, error) {
	return GetHealth200JSONResponse{
		Status:    "healthy",
		Timestamp: a.now().UTC(),
	}, nil
}
