package receipt

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srivari/hall-booking-api/internal/model"
)

func sampleBooking() *model.Booking {
	start := "10:00:00"
	end := "14:30:00"
	guests := int64(250)
	return &model.Booking{
		ID:        42,
		Name:      "Anitha",
		Phone:     "9800000001",
		Email:     "anitha@example.com",
		EventType: "Wedding",
		FromDate:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime: &start, EndTime: &end,
		EstimatedGuests: &guests,
		Status:          model.StatusApproved,
		CreatedAt:       time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC),
	}
}

func TestNumber(t *testing.T) {
	assert.Equal(t, "SVM-0042", Number(42))
	assert.Equal(t, "SVM-12345", Number(12345))
}

func TestVerificationPayload(t *testing.T) {
	b := sampleBooking()
	payload := VerificationPayload(b, "secret")

	parts := strings.Split(payload, "|")
	require.Len(t, parts, 5)
	assert.Equal(t, "booking", parts[0])
	assert.Equal(t, "42", parts[1])
	assert.Equal(t, model.StatusApproved, parts[2])
	assert.Equal(t, fmt.Sprint(b.CreatedAt.Unix()), parts[3])

	mac := hmac.New(sha256.New, []byte("secret"))
	mac.Write([]byte(strings.Join(parts[:4], "|")))
	assert.Equal(t, base64.StdEncoding.EncodeToString(mac.Sum(nil)), parts[4])

	// A different secret must change the signature.
	assert.NotEqual(t, payload, VerificationPayload(b, "other"))
}

func TestBuild(t *testing.T) {
	pdf, err := Build(sampleBooking(), "secret")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(pdf), "%PDF"), "output should be a PDF document")
	assert.Greater(t, len(pdf), 1000)
}

func TestBuildSparseBooking(t *testing.T) {
	// Only the required fields: no dates, times, guests or message.
	b := &model.Booking{
		ID: 7, Name: "Kumar", Phone: "9800000002",
		EventType: "Meeting", Status: model.StatusPending,
		CreatedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	pdf, err := Build(b, "secret")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(pdf), "%PDF"))
}

func TestHelpers(t *testing.T) {
	b := sampleBooking()
	assert.Equal(t, "10 March 2026", eventDateString(b))
	b.ToDate = time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "10 Mar - 12 Mar 2026", eventDateString(b))

	assert.Equal(t, "10:00 AM - 02:30 PM", eventTimeString(b))
	b.StartTime = nil
	assert.Equal(t, "Full day", eventTimeString(b))

	assert.Equal(t, "APPROVED", statusLabel("approved"))
	assert.Equal(t, "PENDING", statusLabel(""))
}
