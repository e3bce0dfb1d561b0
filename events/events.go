package events

import (
	"context"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/google/uuid"
)

type Event struct {
	ID            uuid.UUID
	Version       int
	Name          string
	Tagline       string
	EventLocation Location
	StartTime     time.Time
	EndTime       time.Time
	// Single fixed price for every attendee, in the currency's minor unit.
	Price *money.Money

	TotalRegistrations int
	PaidRegistrations  int
	InPersonAttendees  int
}

// VirtualAttendees counts paid registrations that are not attending in person.
func (e Event) VirtualAttendees() int {
	if e.PaidRegistrations == 0 {
		return 0
	}
	return e.PaidRegistrations - e.InPersonAttendees
}

type Repository interface {
	GetEvent(ctx context.Context, id uuid.UUID) (Event, error)
	CreateEvent(ctx context.Context, event Event) error
	UpdateEvent(ctx context.Context, event Event) error
}

// EnsureEvent returns the stored copy of event, creating it first if it has
// never been stored. When the stored details (name, venue, dates, price) differ
// from event they are replaced; stats on an existing event are left untouched.
func EnsureEvent(ctx context.Context, repo Repository, event Event) (Event, error) {
	existing, err := repo.GetEvent(ctx, event.ID)
	if err == nil {
		if sameDetails(existing, event) {
			return existing, nil
		}
		return refreshDetails(ctx, repo, existing, event)
	}

	if !HasReason(err, REASON_EVENT_DOES_NOT_EXIST) {
		return Event{}, err
	}

	event.Version = 1
	err = repo.CreateEvent(ctx, event)
	if err != nil {
		if HasReason(err, REASON_EVENT_ALREADY_EXISTS) {
			// Lost a race with another instance starting up.
			return repo.GetEvent(ctx, event.ID)
		}
		return Event{}, err
	}

	return event, nil
}

func refreshDetails(ctx context.Context, repo Repository, existing Event, event Event) (Event, error) {
	updated := existing
	updated.Name = event.Name
	updated.Tagline = event.Tagline
	updated.EventLocation = event.EventLocation
	updated.StartTime = event.StartTime
	updated.EndTime = event.EndTime
	updated.Price = event.Price
	updated.Version++

	err := repo.UpdateEvent(ctx, updated)
	if err != nil {
		if HasReason(err, REASON_VERSION_CONFLICT) {
			// Another instance refreshed it first.
			return repo.GetEvent(ctx, event.ID)
		}
		return Event{}, err
	}

	return updated, nil
}

func sameDetails(a Event, b Event) bool {
	return a.Name == b.Name &&
		a.Tagline == b.Tagline &&
		a.EventLocation == b.EventLocation &&
		a.StartTime.Equal(b.StartTime) &&
		a.EndTime.Equal(b.EndTime) &&
		samePrice(a.Price, b.Price)
}

func samePrice(a *money.Money, b *money.Money) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Amount() == b.Amount() && a.Currency().Code == b.Currency().Code
}
