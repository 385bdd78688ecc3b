package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srivari/hall-booking-api/internal/model"
)

func TestCalendarEventsWholeDay(t *testing.T) {
	b := mkBooking(1, "2026-03-10", "", nil, nil)
	b.EventType = "Wedding"

	events := CalendarEvents([]model.Booking{b})
	require.Len(t, events, 1)
	assert.Equal(t, "Wedding", events[0].Title)
	assert.Equal(t, "2026-03-10T00:00:00", events[0].Start)
	assert.Equal(t, "2026-03-10T23:59:59", events[0].End)
}

func TestCalendarEventsMultiDay(t *testing.T) {
	b := mkBooking(1, "2026-03-10", "2026-03-12", nil, nil)

	events := CalendarEvents([]model.Booking{b})
	require.Len(t, events, 1)
	assert.Equal(t, "2026-03-10T00:00:00", events[0].Start)
	assert.Equal(t, "2026-03-12T23:59:59", events[0].End)
}

func TestCalendarEventsTimed(t *testing.T) {
	b := mkBooking(1, "2026-03-10", "2026-03-10", strPtr("10:30:00"), strPtr("14:00:00"))

	events := CalendarEvents([]model.Booking{b})
	require.Len(t, events, 1)
	assert.Equal(t, "2026-03-10T10:30:00", events[0].Start)
	assert.Equal(t, "2026-03-10T14:00:00", events[0].End)
}

func TestCalendarEventsMinimumDuration(t *testing.T) {
	// A legacy row where end does not come after start still renders as a
	// visible one-hour event.
	b := mkBooking(1, "2026-03-10", "2026-03-10", strPtr("10:00:00"), strPtr("10:00:00"))

	events := CalendarEvents([]model.Booking{b})
	require.Len(t, events, 1)
	assert.Equal(t, "2026-03-10T10:00:00", events[0].Start)
	assert.Equal(t, "2026-03-10T11:00:00", events[0].End)
}

func TestCalendarEventsDefaults(t *testing.T) {
	noDate := mkBooking(1, "", "", nil, nil)
	untitled := mkBooking(2, "2026-03-10", "", nil, nil)

	events := CalendarEvents([]model.Booking{noDate, untitled})
	require.Len(t, events, 1, "bookings without from_date are skipped")
	assert.Equal(t, "Booking", events[0].Title)
}
