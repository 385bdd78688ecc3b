package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srivari/hall-booking-api/internal/model"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func strPtr(s string) *string { return &s }

func mkBooking(id int64, from, to string, start, end *string) model.Booking {
	b := model.Booking{ID: id, Status: model.StatusPending, StartTime: start, EndTime: end}
	if from != "" {
		b.FromDate = day(from)
	}
	if to != "" {
		b.ToDate = day(to)
	}
	return b
}

func TestCheckConflictValidation(t *testing.T) {
	t.Run("missing from_date", func(t *testing.T) {
		cand := mkBooking(0, "", "", nil, nil)
		err := CheckConflict(&cand, nil)
		require.ErrorIs(t, err, ErrFromDateRequired)
	})

	t.Run("to_date before from_date", func(t *testing.T) {
		cand := mkBooking(0, "2026-03-10", "2026-03-08", nil, nil)
		err := CheckConflict(&cand, nil)
		require.ErrorIs(t, err, ErrDateOrder)
	})

	t.Run("equal from and to dates are allowed", func(t *testing.T) {
		cand := mkBooking(0, "2026-03-10", "2026-03-10", nil, nil)
		require.NoError(t, CheckConflict(&cand, nil))
	})
}

func TestCheckConflictDates(t *testing.T) {
	tests := []struct {
		name     string
		cand     model.Booking
		existing []model.Booking
		wantErr  error
	}{
		{
			name: "no existing bookings",
			cand: mkBooking(0, "2026-03-10", "2026-03-12", nil, nil),
		},
		{
			name:     "disjoint ranges",
			cand:     mkBooking(0, "2026-03-10", "2026-03-12", nil, nil),
			existing: []model.Booking{mkBooking(1, "2026-03-13", "2026-03-15", nil, nil)},
		},
		{
			name:     "overlapping ranges",
			cand:     mkBooking(0, "2026-03-10", "2026-03-12", nil, nil),
			existing: []model.Booking{mkBooking(1, "2026-03-12", "2026-03-14", nil, nil)},
			wantErr:  ErrDatesBooked,
		},
		{
			name:     "candidate range swallows single-day booking",
			cand:     mkBooking(0, "2026-03-10", "2026-03-14", nil, nil),
			existing: []model.Booking{mkBooking(1, "2026-03-12", "", nil, nil)},
			wantErr:  ErrDatesBooked,
		},
		{
			name:     "existing without to_date defaults to single day",
			cand:     mkBooking(0, "2026-03-13", "2026-03-15", nil, nil),
			existing: []model.Booking{mkBooking(1, "2026-03-12", "", nil, nil)},
		},
		{
			name:     "existing without from_date is skipped",
			cand:     mkBooking(0, "2026-03-10", "2026-03-12", nil, nil),
			existing: []model.Booking{mkBooking(1, "", "", nil, nil)},
		},
		{
			name:     "same day but only one side has times",
			cand:     mkBooking(0, "2026-03-10", "", strPtr("10:00:00"), strPtr("12:00:00")),
			existing: []model.Booking{mkBooking(1, "2026-03-10", "", nil, nil)},
			wantErr:  ErrDatesBooked,
		},
		{
			name:     "multi-day candidate ignores time windows",
			cand:     mkBooking(0, "2026-03-10", "2026-03-11", strPtr("10:00:00"), strPtr("12:00:00")),
			existing: []model.Booking{mkBooking(1, "2026-03-10", "", strPtr("14:00:00"), strPtr("16:00:00"))},
			wantErr:  ErrDatesBooked,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckConflict(&tt.cand, tt.existing)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCheckConflictTimeSlots(t *testing.T) {
	existing := []model.Booking{
		mkBooking(1, "2026-03-10", "2026-03-10", strPtr("10:00:00"), strPtr("14:00:00")),
	}

	tests := []struct {
		name       string
		start, end string
		wantErr    error
	}{
		{name: "overlapping slot", start: "12:00:00", end: "16:00:00", wantErr: ErrTimeSlotBooked},
		{name: "contained slot", start: "11:00:00", end: "12:00:00", wantErr: ErrTimeSlotBooked},
		{name: "identical slot", start: "10:00:00", end: "14:00:00", wantErr: ErrTimeSlotBooked},
		{name: "touching end boundary", start: "14:00:00", end: "18:00:00"},
		{name: "touching start boundary", start: "08:00:00", end: "10:00:00"},
		{name: "fully before", start: "06:00:00", end: "08:00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cand := mkBooking(0, "2026-03-10", "2026-03-10", strPtr(tt.start), strPtr(tt.end))
			err := CheckConflict(&cand, existing)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCheckConflictSelfExclusion(t *testing.T) {
	// Editing booking 7 with unchanged dates must not collide with itself.
	cand := mkBooking(7, "2026-03-10", "2026-03-12", nil, nil)
	existing := []model.Booking{
		mkBooking(7, "2026-03-10", "2026-03-12", nil, nil),
	}
	require.NoError(t, CheckConflict(&cand, existing))

	// But it still collides with a different overlapping booking.
	existing = append(existing, mkBooking(8, "2026-03-11", "2026-03-13", nil, nil))
	require.ErrorIs(t, CheckConflict(&cand, existing), ErrDatesBooked)
}

func TestWindow(t *testing.T) {
	b := mkBooking(0, "2026-03-10", "", nil, nil)
	from, to := Window(&b)
	assert.Equal(t, day("2026-03-10"), from)
	assert.Equal(t, day("2026-03-10"), to, "missing to_date defaults to from_date")

	b = mkBooking(0, "2026-03-10", "2026-03-12", nil, nil)
	from, to = Window(&b)
	assert.Equal(t, day("2026-03-10"), from)
	assert.Equal(t, day("2026-03-12"), to)
}

func TestTimesOverlap(t *testing.T) {
	assert.True(t, TimesOverlap("10:00:00", "14:00:00", "12:00:00", "16:00:00"))
	assert.False(t, TimesOverlap("10:00:00", "14:00:00", "14:00:00", "16:00:00"), "half-open ranges")
	assert.False(t, TimesOverlap("14:00:00", "16:00:00", "10:00:00", "14:00:00"))
}

func TestIsActive(t *testing.T) {
	assert.True(t, IsActive(model.StatusPending))
	assert.True(t, IsActive(model.StatusApproved))
	assert.False(t, IsActive(model.StatusRejected))
	assert.False(t, IsActive(model.StatusCancelled))
}
