package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/srivari/hall-booking-api/internal/model"
)

// ErrExpenseNotFound indicates that an expense row was not located.
var ErrExpenseNotFound = errors.New("expense not found")

const expenseCols = `id, function_date, advance_cents, balance_cents,
       damage_recovery_cents, gens_cents, ladies_cents, flag_cents,
       waste_room_cleaning_cents, electrician_cents, radio_cents,
       light_cents, total_cents, created_at`

// ExpenseRepo manages persistence for the per-function expense ledger.
// The ledger is plain CRUD: no validation beyond numeric columns and no
// relationship to bookings.
type ExpenseRepo struct {
	db *sql.DB
}

// NewExpenseRepo constructs an ExpenseRepo with the given DB handle.
func NewExpenseRepo(db *sql.DB) *ExpenseRepo { return &ExpenseRepo{db: db} }

func scanExpense(rs rowScanner) (model.Expense, error) {
	var e model.Expense
	err := rs.Scan(
		&e.ID, &e.FunctionDate, &e.AdvanceCents, &e.BalanceCents,
		&e.DamageRecoveryCents, &e.GensCents, &e.LadiesCents, &e.FlagCents,
		&e.WasteRoomCleaningCents, &e.ElectricianCents, &e.RadioCents,
		&e.LightCents, &e.TotalCents, &e.CreatedAt,
	)
	return e, err
}

// Create inserts a ledger entry and populates the generated ID and
// created_at on the provided struct.
func (r *ExpenseRepo) Create(ctx context.Context, e *model.Expense) error {
	const q = `INSERT INTO expenses
               (function_date, advance_cents, balance_cents, damage_recovery_cents,
                gens_cents, ladies_cents, flag_cents, waste_room_cleaning_cents,
                electrician_cents, radio_cents, light_cents, total_cents)
               VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		e.FunctionDate.Format(dateLayout), e.AdvanceCents, e.BalanceCents,
		e.DamageRecoveryCents, e.GensCents, e.LadiesCents, e.FlagCents,
		e.WasteRoomCleaningCents, e.ElectricianCents, e.RadioCents,
		e.LightCents, e.TotalCents)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	e.ID = id
	const sel = `SELECT ` + expenseCols + ` FROM expenses WHERE id = ?`
	fresh, err := scanExpense(r.db.QueryRowContext(ctx, sel, e.ID))
	if err != nil {
		return err
	}
	*e = fresh
	return nil
}

// Update rewrites all money fields of an existing entry.  Returns
// ErrExpenseNotFound when the id does not exist.
func (r *ExpenseRepo) Update(ctx context.Context, e *model.Expense) error {
	const check = `SELECT id FROM expenses WHERE id = ?`
	var id int64
	if err := r.db.QueryRowContext(ctx, check, e.ID).Scan(&id); err != nil {
		if err == sql.ErrNoRows {
			return ErrExpenseNotFound
		}
		return err
	}
	const q = `UPDATE expenses SET
               function_date = ?, advance_cents = ?, balance_cents = ?,
               damage_recovery_cents = ?, gens_cents = ?, ladies_cents = ?,
               flag_cents = ?, waste_room_cleaning_cents = ?,
               electrician_cents = ?, radio_cents = ?, light_cents = ?,
               total_cents = ?
               WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, q,
		e.FunctionDate.Format(dateLayout), e.AdvanceCents, e.BalanceCents,
		e.DamageRecoveryCents, e.GensCents, e.LadiesCents, e.FlagCents,
		e.WasteRoomCleaningCents, e.ElectricianCents, e.RadioCents,
		e.LightCents, e.TotalCents, e.ID); err != nil {
		return err
	}
	const sel = `SELECT ` + expenseCols + ` FROM expenses WHERE id = ?`
	fresh, err := scanExpense(r.db.QueryRowContext(ctx, sel, e.ID))
	if err != nil {
		return err
	}
	*e = fresh
	return nil
}

// Delete removes a ledger entry.  Returns ErrExpenseNotFound when nothing
// was deleted.
func (r *ExpenseRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrExpenseNotFound
	}
	return nil
}

// GetByID retrieves one ledger entry.
func (r *ExpenseRepo) GetByID(ctx context.Context, id int64) (*model.Expense, error) {
	const q = `SELECT ` + expenseCols + ` FROM expenses WHERE id = ?`
	e, err := scanExpense(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrExpenseNotFound
		}
		return nil, err
	}
	return &e, nil
}

// List returns all ledger entries ordered by function_date descending.
func (r *ExpenseRepo) List(ctx context.Context) ([]model.Expense, error) {
	const q = `SELECT ` + expenseCols + ` FROM expenses
               ORDER BY function_date DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Expense, 0)
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
