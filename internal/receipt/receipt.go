// Package receipt renders a booking into a downloadable PDF confirmation
// receipt.  The document carries an HMAC-signed QR code so staff can
// verify a printed receipt against the booking record at the gate.
package receipt

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/srivari/hall-booking-api/internal/model"
)

const (
	venueName    = "Sri Vari Mahal A/C"
	venueTagline = "Grand Marriage & Party Hall"
	venuePhone   = "Phone: +91 98431 86231 | +91 88702 01981"
	venueEmail   = "Email: srivarimahal2025kpm@gmail.com"
	venueAddress = "Kannadasan Street, Abirami Nagar, Baluchetty Chatram, Kanchipuram - 631551"
)

// Number returns the human-readable receipt number for a booking.
func Number(id int64) string {
	return fmt.Sprintf("SVM-%04d", id)
}

// VerificationPayload returns the QR payload embedded in the receipt:
// booking|id|status|created-unix|signature.  The signature is an HMAC
// over the preceding fields so a tampered receipt fails verification.
func VerificationPayload(b *model.Booking, secret string) string {
	data := fmt.Sprintf("booking|%d|%s|%d", b.ID, b.Status, b.CreatedAt.Unix())
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))
	return data + "|" + sig
}

// Build renders the receipt PDF for a booking and returns the document
// bytes.  qrSecret signs the embedded verification payload.
func Build(b *model.Booking, qrSecret string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Header band.
	pdf.SetFillColor(26, 35, 126)
	pdf.Rect(0, 0, 210, 30, "F")
	pdf.SetFillColor(0, 188, 212)
	pdf.Rect(0, 30, 210, 2, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 18)
	pdf.SetXY(10, 8)
	pdf.CellFormat(190, 8, venueName, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 5, venueTagline, "", 1, "C", false, 0, "")
	pdf.CellFormat(190, 5, "Booking Confirmation Receipt", "", 1, "C", false, 0, "")

	// Receipt info line.
	pdf.SetTextColor(33, 33, 33)
	pdf.SetXY(10, 38)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(63, 8, "Receipt #: "+Number(b.ID), "1", 0, "C", false, 0, "")
	pdf.CellFormat(63, 8, "Issued: "+b.CreatedAt.Format("02 Jan 2006"), "1", 0, "C", false, 0, "")
	pdf.CellFormat(64, 8, "Status: "+statusLabel(b.Status), "1", 1, "C", false, 0, "")
	pdf.Ln(6)

	// Customer details.
	section(pdf, "CUSTOMER INFORMATION")
	row(pdf, "Full Name", b.Name)
	row(pdf, "Contact", b.Phone)
	row(pdf, "Email", orDefault(&b.Email, "Not Provided"))
	row(pdf, "Address", orDefault(b.AddressLine, "Not Provided"))
	pdf.Ln(4)

	// Event details.
	section(pdf, "EVENT DETAILS")
	row(pdf, "Event Type", b.EventType)
	row(pdf, "Event Date", eventDateString(b))
	row(pdf, "Event Time", eventTimeString(b))
	row(pdf, "Expected Guests", guestsString(b.EstimatedGuests))
	row(pdf, "Food Preference", orDefault(b.FoodPreference, "To be decided"))

	// Special requests, only when the submitter left a message.
	if b.Message != nil && *b.Message != "" {
		pdf.Ln(4)
		section(pdf, "SPECIAL REQUESTS")
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(190, 6, *b.Message, "1", "L", false)
	}

	// Verification QR code in the lower right corner.
	png, err := qrcode.Encode(VerificationPayload(b, qrSecret), qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("verify-qr", opts, bytes.NewReader(png))
	pdf.ImageOptions("verify-qr", 165, 230, 35, 35, false, opts, 0, "")
	pdf.SetXY(165, 265)
	pdf.SetFont("Arial", "", 7)
	pdf.CellFormat(35, 4, "Scan to verify", "", 1, "C", false, 0, "")

	// Footer.
	pdf.SetY(240)
	pdf.SetFont("Arial", "B", 11)
	pdf.SetTextColor(26, 35, 126)
	pdf.CellFormat(150, 6, "Thank You for Choosing "+venueName+"!", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(97, 97, 97)
	pdf.CellFormat(150, 5, "We look forward to making your celebration truly memorable.", "", 1, "L", false, 0, "")
	pdf.CellFormat(150, 5, venuePhone, "", 1, "L", false, 0, "")
	pdf.CellFormat(150, 5, venueEmail, "", 1, "L", false, 0, "")
	pdf.CellFormat(150, 5, venueAddress, "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "I", 7)
	pdf.CellFormat(150, 5, "This is a computer-generated document. No signature required.", "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 11)
	pdf.SetTextColor(26, 35, 126)
	pdf.CellFormat(190, 7, title, "", 1, "L", false, 0, "")
	pdf.SetTextColor(33, 33, 33)
}

func row(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(227, 242, 253)
	pdf.CellFormat(45, 7, label, "1", 0, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(145, 7, value, "1", 1, "L", false, 0, "")
}

func statusLabel(s string) string {
	if s == "" {
		return "PENDING"
	}
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		out[i] = c
	}
	return string(out)
}

// eventDateString formats single-day bookings as one date and ranges as
// "02 Jan - 04 Jan 2026".
func eventDateString(b *model.Booking) string {
	if b.FromDate.IsZero() {
		return "To be confirmed"
	}
	to := b.ToDate
	if to.IsZero() {
		to = b.FromDate
	}
	if b.FromDate.Equal(to) {
		return b.FromDate.Format("02 January 2006")
	}
	return b.FromDate.Format("02 Jan") + " - " + to.Format("02 Jan 2006")
}

func eventTimeString(b *model.Booking) string {
	if b.StartTime == nil || b.EndTime == nil || *b.StartTime == "" || *b.EndTime == "" {
		return "Full day"
	}
	return clock12(*b.StartTime) + " - " + clock12(*b.EndTime)
}

func clock12(hms string) string {
	t, err := time.Parse("15:04:05", hms)
	if err != nil {
		return hms
	}
	return t.Format("03:04 PM")
}

func guestsString(n *int64) string {
	if n == nil || *n <= 0 {
		return "Not specified"
	}
	return fmt.Sprintf("%d Guests", *n)
}

func orDefault(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}
