package success

import (
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/divine-encounter/event-registration/events"
)

const calendarProductID = "-//Divine Encounter//Event Registration//EN"

// Calendar is a single-event calendar attendees can import. now is used as the
// entry's DTSTAMP.
func Calendar(event events.Event, now time.Time) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(calendarProductID)

	entry := cal.AddEvent(event.ID.String() + "@divineencounter")
	entry.SetDtStampTime(now)
	entry.SetStartAt(event.StartTime)
	entry.SetEndAt(event.EndTime)
	entry.SetSummary(event.Name)
	entry.SetDescription(event.Tagline)
	entry.SetLocation(event.EventLocation.String())

	return cal
}

func WriteCalendar(w io.Writer, event events.Event, now time.Time) error {
	return Calendar(event, now).SerializeTo(w)
}

// CalendarFileName is the download name for event's calendar entry, e.g.
// "divine-encounter-2026.ics".
func CalendarFileName(event events.Event) string {
	return strings.Join(strings.Fields(strings.ToLower(event.Name)), "-") + ".ics"
}
