package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/srivari/hall-booking-api/internal/model"
)

func TestStats(t *testing.T) {
	withType := func(b model.Booking, eventType, status string) model.Booking {
		b.EventType = eventType
		b.Status = status
		return b
	}
	today := day("2026-03-15")

	bookings := []model.Booking{
		withType(mkBooking(1, "2026-03-10", "", nil, nil), "Wedding", model.StatusApproved),
		withType(mkBooking(2, "2026-03-20", "", nil, nil), "Wedding", model.StatusPending),
		withType(mkBooking(3, "2026-04-01", "", nil, nil), "Birthday", model.StatusPending),
		withType(mkBooking(4, "2025-03-05", "", nil, nil), "Reception", model.StatusRejected),
		withType(mkBooking(5, "", "", nil, nil), "Meeting", model.StatusPending),
	}

	stats := Stats(bookings, today)

	assert.Equal(t, 5, stats.TotalBookings)
	assert.Equal(t, 3, stats.UnreadInquiries, "pending bookings count as unread inquiries")
	// Bookings 2 and 3 start today or later; the dateless one never counts.
	assert.Equal(t, 2, stats.UpcomingEvents)

	// March appears twice across years; months are sorted ascending.
	assert.Equal(t, []MonthlyCount{
		{Month: 3, Count: 3},
		{Month: 4, Count: 1},
	}, stats.BookingsPerMonth)

	assert.Equal(t, []EventTypeCount{
		{EventType: "Birthday", Count: 1},
		{EventType: "Meeting", Count: 1},
		{EventType: "Reception", Count: 1},
		{EventType: "Wedding", Count: 2},
	}, stats.EventTypeDistribution)
}

func TestStatsUpcomingBoundary(t *testing.T) {
	today := day("2026-03-15")
	bookings := []model.Booking{
		mkBooking(1, "2026-03-15", "", nil, nil), // today counts
		mkBooking(2, "2026-03-14", "", nil, nil), // yesterday does not
	}
	stats := Stats(bookings, today)
	assert.Equal(t, 1, stats.UpcomingEvents)
}

func TestStatsEmpty(t *testing.T) {
	stats := Stats(nil, day("2026-03-15"))
	assert.Equal(t, 0, stats.TotalBookings)
	assert.Empty(t, stats.BookingsPerMonth)
	assert.Empty(t, stats.EventTypeDistribution)
}
