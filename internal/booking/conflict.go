// Package booking contains the core hall-booking rules: the double-booking
// conflict check, the status lifecycle and the read-only calendar and
// dashboard projections.  Everything in this package is pure so it can be
// unit-tested without a live database; the repository layer supplies the
// rows and performs the actual writes.
package booking

import (
	"errors"
	"time"

	"github.com/srivari/hall-booking-api/internal/model"
)

// Sentinel validation errors returned by CheckConflict.  Handlers translate
// these into 400/409 responses with the message text as the error body.
var (
	// ErrDateOrder is returned when to_date precedes from_date.
	ErrDateOrder = errors.New("end date cannot be earlier than start date")
	// ErrFromDateRequired is returned when a candidate has no from_date.
	ErrFromDateRequired = errors.New("from_date is required")
	// ErrDatesBooked is returned when the candidate's date window collides
	// with another active booking.
	ErrDatesBooked = errors.New("hall is already booked for the selected dates")
	// ErrTimeSlotBooked is returned when two single-day bookings on the same
	// date have overlapping time windows.
	ErrTimeSlotBooked = errors.New("time slot is already booked")
)

// DatesOverlap reports whether the inclusive date ranges [aFrom, aTo] and
// [bFrom, bTo] share at least one day.
func DatesOverlap(aFrom, aTo, bFrom, bTo time.Time) bool {
	return !aFrom.After(bTo) && !aTo.Before(bFrom)
}

// TimesOverlap reports whether the half-open clock ranges [aStart, aEnd)
// and [bStart, bEnd) intersect.  Times are "HH:MM:SS" strings, which order
// lexicographically the same way they order chronologically, so plain
// string comparison is sufficient.  Touching endpoints do not overlap: a
// booking ending at 14:00:00 does not conflict with one starting at
// 14:00:00.
func TimesOverlap(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && aEnd > bStart
}

// Window returns the normalized date range of a booking.  A missing
// to_date defaults to from_date, making the booking single-day.
func Window(b *model.Booking) (from, to time.Time) {
	from = b.FromDate
	to = b.ToDate
	if to.IsZero() {
		to = from
	}
	return from, to
}

// HasTimeWindow reports whether the booking carries both a start and an
// end clock time.  Bookings without times span the whole day for calendar
// display and only participate in the date-level conflict check.
func HasTimeWindow(b *model.Booking) bool {
	return b.StartTime != nil && *b.StartTime != "" &&
		b.EndTime != nil && *b.EndTime != ""
}

// IsActive reports whether a booking still occupies the hall.  Rejected
// and cancelled bookings free their slot for rebooking.
func IsActive(status string) bool {
	return status != model.StatusRejected && status != model.StatusCancelled
}

// CheckConflict validates a candidate booking against the set of existing
// active bookings and reports the first rule violation:
//
//   - to_date must not precede from_date;
//   - the candidate's date window must not overlap any other booking's
//     window, except that two single-day bookings on the same date which
//     both carry time windows conflict only when those windows overlap.
//
// The candidate excludes itself by ID, so editing a booking with unchanged
// dates succeeds.  Callers must pass only active (non-rejected,
// non-cancelled) rows; the repository's range query applies that filter.
// The check is pure and has no side effects: on create and update paths it
// runs inside the same transaction as the write, over rows locked FOR
// UPDATE, so two concurrent overlapping submissions serialize instead of
// both passing validation.
func CheckConflict(candidate *model.Booking, existing []model.Booking) error {
	if candidate.FromDate.IsZero() {
		return ErrFromDateRequired
	}
	if !candidate.ToDate.IsZero() && candidate.ToDate.Before(candidate.FromDate) {
		return ErrDateOrder
	}
	candFrom, candTo := Window(candidate)
	candSingleDay := candFrom.Equal(candTo)

	for i := range existing {
		other := &existing[i]
		if candidate.ID != 0 && other.ID == candidate.ID {
			continue // self-exclusion on the update path
		}
		if other.FromDate.IsZero() {
			continue
		}
		otherFrom, otherTo := Window(other)
		if !DatesOverlap(candFrom, candTo, otherFrom, otherTo) {
			continue
		}
		// Two time-scoped single-day bookings on the same date share the
		// hall as long as their time slots do not overlap.
		if candSingleDay && otherFrom.Equal(otherTo) && candFrom.Equal(otherFrom) &&
			HasTimeWindow(candidate) && HasTimeWindow(other) {
			if TimesOverlap(*candidate.StartTime, *candidate.EndTime, *other.StartTime, *other.EndTime) {
				return ErrTimeSlotBooked
			}
			continue
		}
		return ErrDatesBooked
	}
	return nil
}
