package booking

import (
	"time"

	"github.com/srivari/hall-booking-api/internal/model"
)

// CalendarEvent is a display projection of a booking for the availability
// calendar.  Start and End are local ISO-8601 timestamps without a zone,
// which is what calendar widgets expect.
type CalendarEvent struct {
	Title string `json:"title"`
	Start string `json:"start"`
	End   string `json:"end"`
}

const calendarTimeLayout = "2006-01-02T15:04:05"

// CalendarEvents converts bookings into calendar events.  A booking with
// no start time begins at midnight; one with no end time runs to 23:59:59
// of its last day, so time-less bookings block the whole day on the
// calendar.  When the computed end does not come after the start the event
// is stretched to a one-hour minimum so it stays visible.  Bookings
// without a from_date are skipped.
func CalendarEvents(bookings []model.Booking) []CalendarEvent {
	events := make([]CalendarEvent, 0, len(bookings))
	for i := range bookings {
		b := &bookings[i]
		if b.FromDate.IsZero() {
			continue
		}
		from, to := Window(b)
		start := combine(from, b.StartTime, 0, 0, 0)
		end := combine(to, b.EndTime, 23, 59, 59)
		if !end.After(start) {
			end = start.Add(time.Hour)
		}
		title := b.EventType
		if title == "" {
			title = "Booking"
		}
		events = append(events, CalendarEvent{
			Title: title,
			Start: start.Format(calendarTimeLayout),
			End:   end.Format(calendarTimeLayout),
		})
	}
	return events
}

// combine attaches a "HH:MM:SS" clock time to a date, falling back to the
// given clock when the time is absent or malformed.
func combine(date time.Time, clock *string, fh, fm, fs int) time.Time {
	h, m, s := fh, fm, fs
	if clock != nil && *clock != "" {
		if t, err := time.Parse("15:04:05", *clock); err == nil {
			h, m, s = t.Hour(), t.Minute(), t.Second()
		}
	}
	return time.Date(date.Year(), date.Month(), date.Day(), h, m, s, 0, date.Location())
}
