package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingFromReq(t *testing.T) {
	valid := func() bookingReq {
		return bookingReq{
			Name:      "Anitha",
			Phone:     "9800000001",
			Email:     "anitha@example.com",
			EventType: "Wedding",
			FromDate:  "2026-03-10",
		}
	}

	t.Run("minimal valid request", func(t *testing.T) {
		b, msg := bookingFromReq(ptr(valid()))
		require.Empty(t, msg)
		assert.Equal(t, "Anitha", b.Name)
		assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), b.FromDate)
		assert.True(t, b.ToDate.IsZero())
		assert.Nil(t, b.StartTime)
	})

	t.Run("trims and normalizes times", func(t *testing.T) {
		req := valid()
		req.Name = "  Anitha  "
		req.ToDate = "2026-03-10"
		req.StartTime = "10:00"
		req.EndTime = "14:30:00"
		b, msg := bookingFromReq(&req)
		require.Empty(t, msg)
		assert.Equal(t, "Anitha", b.Name)
		assert.Equal(t, "10:00:00", *b.StartTime)
		assert.Equal(t, "14:30:00", *b.EndTime)
	})

	t.Run("blank optional fields become nil", func(t *testing.T) {
		req := valid()
		req.Message = ptr("   ")
		req.AddressLine = ptr(" 12 Main St ")
		b, msg := bookingFromReq(&req)
		require.Empty(t, msg)
		assert.Nil(t, b.Message)
		require.NotNil(t, b.AddressLine)
		assert.Equal(t, "12 Main St", *b.AddressLine)
	})

	tests := []struct {
		name    string
		mutate  func(*bookingReq)
		wantMsg string
	}{
		{"missing name", func(r *bookingReq) { r.Name = " " }, "name is required"},
		{"missing phone", func(r *bookingReq) { r.Phone = "" }, "phone is required"},
		{"bad email", func(r *bookingReq) { r.Email = "not-an-email" }, "a valid email is required"},
		{"missing event type", func(r *bookingReq) { r.EventType = "" }, "event_type is required"},
		{"missing from date", func(r *bookingReq) { r.FromDate = "" }, "from_date is required"},
		{"bad from date", func(r *bookingReq) { r.FromDate = "10-03-2026" }, "invalid from_date, expected YYYY-MM-DD"},
		{"bad to date", func(r *bookingReq) { r.ToDate = "soon" }, "invalid to_date, expected YYYY-MM-DD"},
		{"start without end", func(r *bookingReq) { r.StartTime = "10:00" }, "start_time and end_time must be provided together"},
		{"end before start", func(r *bookingReq) { r.StartTime = "14:00"; r.EndTime = "10:00" }, "end_time must be after start_time"},
		{"bad start time", func(r *bookingReq) { r.StartTime = "25:00"; r.EndTime = "26:00" }, "invalid start_time, expected HH:MM"},
		{"negative guests", func(r *bookingReq) { r.EstimatedGuests = ptr(int64(-1)) }, "estimated_guests cannot be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)
			b, msg := bookingFromReq(&req)
			assert.Nil(t, b)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestNormalizeClock(t *testing.T) {
	got, err := normalizeClock("09:05")
	require.NoError(t, err)
	assert.Equal(t, "09:05:00", got)

	got, err = normalizeClock("23:59:59")
	require.NoError(t, err)
	assert.Equal(t, "23:59:59", got)

	_, err = normalizeClock("9 am")
	assert.Error(t, err)
}

func ptr[T any](v T) *T { return &v }
