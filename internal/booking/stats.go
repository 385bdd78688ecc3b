package booking

import (
	"sort"
	"time"

	"github.com/srivari/hall-booking-api/internal/model"
)

// MonthlyCount is the number of bookings whose from_date falls in a given
// calendar month (1–12, across all years).
type MonthlyCount struct {
	Month int `json:"month"`
	Count int `json:"count"`
}

// EventTypeCount is the number of bookings per event type.
type EventTypeCount struct {
	EventType string `json:"event_type"`
	Count     int    `json:"count"`
}

// DashboardStats aggregates the stored booking set for the summary
// dashboard.  UnreadInquiries counts pending bookings awaiting a staff
// decision; UpcomingEvents counts bookings starting today or later.
type DashboardStats struct {
	BookingsPerMonth      []MonthlyCount   `json:"bookings_per_month"`
	EventTypeDistribution []EventTypeCount `json:"event_type_distribution"`
	TotalBookings         int              `json:"total_bookings"`
	UnreadInquiries       int              `json:"unread_inquiries"`
	UpcomingEvents        int              `json:"upcoming_events"`
}

// Stats computes dashboard aggregates over the full booking set.  The
// caller supplies today's date so the upcoming-events count is
// deterministic in tests.  Output slices are sorted (months ascending,
// event types alphabetically) for stable JSON responses.
func Stats(bookings []model.Booking, today time.Time) DashboardStats {
	months := make(map[int]int)
	types := make(map[string]int)
	pending := 0
	upcoming := 0
	for i := range bookings {
		b := &bookings[i]
		if !b.FromDate.IsZero() {
			months[int(b.FromDate.Month())]++
			if !b.FromDate.Before(today) {
				upcoming++
			}
		}
		types[b.EventType]++
		if b.Status == model.StatusPending {
			pending++
		}
	}

	perMonth := make([]MonthlyCount, 0, len(months))
	for m, n := range months {
		perMonth = append(perMonth, MonthlyCount{Month: m, Count: n})
	}
	sort.Slice(perMonth, func(i, j int) bool { return perMonth[i].Month < perMonth[j].Month })

	perType := make([]EventTypeCount, 0, len(types))
	for t, n := range types {
		perType = append(perType, EventTypeCount{EventType: t, Count: n})
	}
	sort.Slice(perType, func(i, j int) bool { return perType[i].EventType < perType[j].EventType })

	return DashboardStats{
		BookingsPerMonth:      perMonth,
		EventTypeDistribution: perType,
		TotalBookings:         len(bookings),
		UnreadInquiries:       pending,
		UpcomingEvents:        upcoming,
	}
}
