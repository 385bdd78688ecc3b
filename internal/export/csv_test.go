package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srivari/hall-booking-api/internal/model"
)

func TestWriteBookingsCSV(t *testing.T) {
	start := "10:00:00"
	end := "14:00:00"
	msg := "needs projector"
	bookings := []model.Booking{
		{
			ID: 1, Name: "Anitha", Phone: "9800000001", Email: "anitha@example.com",
			EventType: "Wedding",
			FromDate:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			ToDate:    time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
			Status:    model.StatusApproved,
		},
		{
			ID: 2, Name: "Kumar", Phone: "9800000002", Email: "kumar@example.com",
			EventType: "Meeting",
			FromDate:  time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
			StartTime: &start, EndTime: &end, Message: &msg,
			Status: model.StatusPending,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteBookingsCSV(&buf, bookings))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"ID", "Name", "Phone", "Email", "Event Type",
		"From Date", "To Date", "Start Time", "End Time", "Message"}, rows[0])
	assert.Equal(t, []string{"1", "Anitha", "9800000001", "anitha@example.com",
		"Wedding", "2026-03-10", "2026-03-12", "", "", ""}, rows[1])
	assert.Equal(t, []string{"2", "Kumar", "9800000002", "kumar@example.com",
		"Meeting", "2026-04-01", "", "10:00:00", "14:00:00", "needs projector"}, rows[2])
}

func TestWriteExpensesCSV(t *testing.T) {
	expenses := []model.Expense{
		{
			FunctionDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			AdvanceCents: 1000000, BalanceCents: 2500050, GensCents: 150000,
			TotalCents: 3650050,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteExpensesCSV(&buf, expenses))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{"Function Date", "Advance", "Balance", "Damage Recovery",
		"Gens", "Ladies", "Flag", "Waste Cleaning",
		"Electrician", "Radio", "Light", "Total"}, rows[0])
	assert.Equal(t, []string{"2026-03-10", "10000.00", "25000.50", "0.00",
		"1500.00", "0.00", "0.00", "0.00", "0.00", "0.00", "0.00", "36500.50"}, rows[1])
}

func TestFormatCents(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{100, "1.00"},
		{150050, "1500.50"},
		{-2599, "-25.99"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCents(tt.in))
	}
}
