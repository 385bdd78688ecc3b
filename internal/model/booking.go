package model

import "time"

// Booking statuses as stored in the bookings.status column.
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCancelled = "cancelled"
)

// Booking represents a customer's reservation request for the hall over a
// date range and, for single-day events, an optional time window.  Each
// field corresponds to a column in the `bookings` table.  Dates are stored
// in DATE columns and carry no clock component; StartTime and EndTime are
// TIME columns represented as "HH:MM:SS" strings so they order
// lexicographically the same way they order chronologically.
//
// Fields:
//  ID              – primary key identifier.
//  Name            – customer's full name.
//  Phone           – primary contact phone number.
//  Email           – contact email, receives the confirmation message.
//  EventType       – free-text event category (Wedding, Reception, ...).
//  FromDate        – first day of the event (zero when not supplied).
//  ToDate          – last day of the event; zero means same as FromDate.
//  StartTime       – event start clock time (nil when not supplied).
//  EndTime         – event end clock time (nil when not supplied).
//  AddressLine     – optional customer address.
//  Message         – optional free-text special requests.
//  EstimatedGuests – optional expected guest count.
//  FoodPreference  – optional catering preference.
//  AlternatePhone  – optional secondary phone number.
//  Status          – lifecycle state (pending/approved/rejected/cancelled).
//  CreatedAt       – immutable creation timestamp.
type Booking struct {
	ID              int64     // bookings.id
	Name            string    // bookings.name
	Phone           string    // bookings.phone
	Email           string    // bookings.email
	EventType       string    // bookings.event_type
	FromDate        time.Time // bookings.from_date (DATE)
	ToDate          time.Time // bookings.to_date (DATE, nullable)
	StartTime       *string   // bookings.start_time (TIME, nullable)
	EndTime         *string   // bookings.end_time (TIME, nullable)
	AddressLine     *string   // bookings.address_line (nullable)
	Message         *string   // bookings.message (nullable)
	EstimatedGuests *int64    // bookings.estimated_guests (nullable)
	FoodPreference  *string   // bookings.food_preference (nullable)
	AlternatePhone  *string   // bookings.alternate_phone (nullable)
	Status          string    // bookings.status
	CreatedAt       time.Time // bookings.created_at
}
