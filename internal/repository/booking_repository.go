// Package repository contains data access logic built directly on
// database/sql.  This file holds persistence for bookings.  Dates live in
// DATE columns and clock times in TIME columns; with parseTime enabled the
// driver scans DATE into time.Time while TIME values arrive as strings.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/srivari/hall-booking-api/internal/model"
)

// ErrBookingNotFound indicates that a booking was not located in the DB.
var ErrBookingNotFound = errors.New("booking not found")

const dateLayout = "2006-01-02"

// bookingCols is the canonical column list shared by every SELECT so scan
// order stays in one place.
const bookingCols = `id, name, phone, email, event_type, from_date, to_date,
       start_time, end_time, address_line, message, estimated_guests,
       food_preference, alternate_phone, status, created_at`

// BookingRepo manages persistence for bookings.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo constructs a BookingRepo with the given DB handle.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// DB exposes the underlying sql.DB.  It allows callers to begin
// transactions spanning the conflict check and the write.
func (r *BookingRepo) DB() *sql.DB { return r.db }

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanBooking reads one bookings row in bookingCols order.
func scanBooking(rs rowScanner) (model.Booking, error) {
	var (
		b         model.Booking
		fromDate  sql.NullTime
		toDate    sql.NullTime
		startTime sql.NullString
		endTime   sql.NullString
		address   sql.NullString
		message   sql.NullString
		guests    sql.NullInt64
		food      sql.NullString
		altPhone  sql.NullString
	)
	err := rs.Scan(
		&b.ID, &b.Name, &b.Phone, &b.Email, &b.EventType, &fromDate, &toDate,
		&startTime, &endTime, &address, &message, &guests,
		&food, &altPhone, &b.Status, &b.CreatedAt,
	)
	if err != nil {
		return b, err
	}
	if fromDate.Valid {
		b.FromDate = fromDate.Time
	}
	if toDate.Valid {
		b.ToDate = toDate.Time
	}
	if startTime.Valid {
		v := startTime.String
		b.StartTime = &v
	}
	if endTime.Valid {
		v := endTime.String
		b.EndTime = &v
	}
	if address.Valid {
		v := address.String
		b.AddressLine = &v
	}
	if message.Valid {
		v := message.String
		b.Message = &v
	}
	if guests.Valid {
		v := guests.Int64
		b.EstimatedGuests = &v
	}
	if food.Valid {
		v := food.String
		b.FoodPreference = &v
	}
	if altPhone.Valid {
		v := altPhone.String
		b.AlternatePhone = &v
	}
	return b, nil
}

// nullableDate converts a zero time into a NULL DATE parameter.
func nullableDate(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.Format(dateLayout)
}

// FindActiveInRangeTx returns, within the caller's transaction, all
// bookings that still occupy the hall (status outside rejected/cancelled)
// and whose date window intersects [from, to].  A missing to_date counts
// as a single-day window.  Rows are locked FOR UPDATE so a concurrent
// overlapping submission blocks until this transaction commits, closing
// the check-then-insert race as far as InnoDB range locks allow.
// excludeID skips the booking being edited; pass 0 on the create path.
func (r *BookingRepo) FindActiveInRangeTx(ctx context.Context, tx *sql.Tx, from, to time.Time, excludeID int64) ([]model.Booking, error) {
	const q = `SELECT ` + bookingCols + `
               FROM bookings
               WHERE status NOT IN (?, ?)
                 AND id <> ?
                 AND from_date IS NOT NULL
                 AND from_date <= ?
                 AND COALESCE(to_date, from_date) >= ?
               FOR UPDATE`
	rows, err := tx.QueryContext(ctx, q,
		model.StatusRejected, model.StatusCancelled,
		excludeID, to.Format(dateLayout), from.Format(dateLayout))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// CreateTx inserts a new booking within the caller's transaction and
// populates the generated ID and DB defaults (status, created_at) on the
// provided struct.  The caller must commit or roll back.
func (r *BookingRepo) CreateTx(ctx context.Context, tx *sql.Tx, b *model.Booking) error {
	const q = `INSERT INTO bookings
               (name, phone, email, event_type, from_date, to_date,
                start_time, end_time, address_line, message, estimated_guests,
                food_preference, alternate_phone, status)
               VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q,
		b.Name, b.Phone, b.Email, b.EventType,
		nullableDate(b.FromDate), nullableDate(b.ToDate),
		b.StartTime, b.EndTime, b.AddressLine, b.Message, b.EstimatedGuests,
		b.FoodPreference, b.AlternatePhone, b.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = id
	// Query back the full row to populate timestamps and defaults.
	const sel = `SELECT ` + bookingCols + ` FROM bookings WHERE id = ?`
	fresh, err := scanBooking(tx.QueryRowContext(ctx, sel, b.ID))
	if err != nil {
		return err
	}
	*b = fresh
	return nil
}

// UpdateTx rewrites the editable fields of an existing booking within the
// caller's transaction.  Status and created_at are not touched; status
// changes go through UpdateStatus.  Returns ErrBookingNotFound when the id
// does not exist.
func (r *BookingRepo) UpdateTx(ctx context.Context, tx *sql.Tx, b *model.Booking) error {
	const check = `SELECT id FROM bookings WHERE id = ?`
	var id int64
	if err := tx.QueryRowContext(ctx, check, b.ID).Scan(&id); err != nil {
		if err == sql.ErrNoRows {
			return ErrBookingNotFound
		}
		return err
	}
	const q = `UPDATE bookings SET
               name = ?, phone = ?, email = ?, event_type = ?,
               from_date = ?, to_date = ?, start_time = ?, end_time = ?,
               address_line = ?, message = ?, estimated_guests = ?,
               food_preference = ?, alternate_phone = ?
               WHERE id = ?`
	if _, err := tx.ExecContext(ctx, q,
		b.Name, b.Phone, b.Email, b.EventType,
		nullableDate(b.FromDate), nullableDate(b.ToDate),
		b.StartTime, b.EndTime, b.AddressLine, b.Message, b.EstimatedGuests,
		b.FoodPreference, b.AlternatePhone, b.ID); err != nil {
		return err
	}
	const sel = `SELECT ` + bookingCols + ` FROM bookings WHERE id = ?`
	fresh, err := scanBooking(tx.QueryRowContext(ctx, sel, b.ID))
	if err != nil {
		return err
	}
	*b = fresh
	return nil
}

// GetByID retrieves a booking by its ID.  It returns ErrBookingNotFound
// when there is no matching row.
func (r *BookingRepo) GetByID(ctx context.Context, id int64) (*model.Booking, error) {
	const q = `SELECT ` + bookingCols + ` FROM bookings WHERE id = ?`
	b, err := scanBooking(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

// List returns every booking ordered by from_date descending (newest
// events first), matching the ordering of the admin views and the CSV
// export.
func (r *BookingRepo) List(ctx context.Context) ([]model.Booking, error) {
	const q = `SELECT ` + bookingCols + ` FROM bookings
               ORDER BY from_date DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// UpdateStatus sets a booking's lifecycle state and returns the refreshed
// row.  The caller is responsible for validating the target status.
func (r *BookingRepo) UpdateStatus(ctx context.Context, id int64, status string) (*model.Booking, error) {
	const q = `UPDATE bookings SET status = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, q, status, id); err != nil {
		return nil, err
	}
	// RowsAffected is 0 both for a missing row and for an unchanged status,
	// so existence is decided by the read-back.
	return r.GetByID(ctx, id)
}
