// Package queue defines message payloads exchanged over the message broker
// and the background consumer that turns them into confirmation mail.
package queue

import (
	"github.com/srivari/hall-booking-api/internal/model"
	"github.com/srivari/hall-booking-api/internal/notify"
	"github.com/srivari/hall-booking-api/internal/receipt"
)

// BookingReceivedEvent is published after a booking request is durably
// written.  It contains enough information for downstream consumers to
// send the confirmation mail without querying the primary database.
type BookingReceivedEvent struct {
	BookingID   int64  `json:"booking_id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	EventType   string `json:"event_type"`
	FromDate    string `json:"from_date"`
	ToDate      string `json:"to_date,omitempty"`
	StartTime   string `json:"start_time,omitempty"`
	EndTime     string `json:"end_time,omitempty"`
	Status      string `json:"status"`
	SubmittedAt string `json:"submitted_at"`
}

// NewBookingReceivedEvent flattens a booking into the broker payload.
func NewBookingReceivedEvent(b *model.Booking) BookingReceivedEvent {
	ev := BookingReceivedEvent{
		BookingID:   b.ID,
		Name:        b.Name,
		Phone:       b.Phone,
		Email:       b.Email,
		EventType:   b.EventType,
		Status:      b.Status,
		SubmittedAt: b.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
	}
	if !b.FromDate.IsZero() {
		ev.FromDate = b.FromDate.Format("2006-01-02")
	}
	if !b.ToDate.IsZero() {
		ev.ToDate = b.ToDate.Format("2006-01-02")
	}
	if b.StartTime != nil {
		ev.StartTime = *b.StartTime
	}
	if b.EndTime != nil {
		ev.EndTime = *b.EndTime
	}
	return ev
}

// Notice converts the event into the mailer's input.
func (ev BookingReceivedEvent) Notice() notify.Notice {
	return notify.Notice{
		BookingID: ev.BookingID,
		ReceiptNo: receipt.Number(ev.BookingID),
		Name:      ev.Name,
		Email:     ev.Email,
		Phone:     ev.Phone,
		EventType: ev.EventType,
		FromDate:  ev.FromDate,
		ToDate:    ev.ToDate,
		StartTime: ev.StartTime,
		EndTime:   ev.EndTime,
		Status:    ev.Status,
	}
}
