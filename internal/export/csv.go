// Package export renders the stored booking and expense sets into flat
// CSV documents for download.  Pure presentation: handlers fetch the rows
// and stream the result, no business logic lives here.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/srivari/hall-booking-api/internal/model"
)

const csvDateLayout = "2006-01-02"

// WriteBookingsCSV writes all bookings as CSV in the order given.
func WriteBookingsCSV(w io.Writer, bookings []model.Booking) error {
	cw := csv.NewWriter(w)
	header := []string{"ID", "Name", "Phone", "Email", "Event Type",
		"From Date", "To Date", "Start Time", "End Time", "Message"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for i := range bookings {
		b := &bookings[i]
		rec := []string{
			strconv.FormatInt(b.ID, 10),
			b.Name,
			b.Phone,
			b.Email,
			b.EventType,
			dateOrEmpty(b.FromDate),
			dateOrEmpty(b.ToDate),
			strOrEmpty(b.StartTime),
			strOrEmpty(b.EndTime),
			strOrEmpty(b.Message),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteExpensesCSV writes the expense ledger as CSV.  Amounts are stored
// in cents and rendered as decimal currency values.
func WriteExpensesCSV(w io.Writer, expenses []model.Expense) error {
	cw := csv.NewWriter(w)
	header := []string{"Function Date", "Advance", "Balance", "Damage Recovery",
		"Gens", "Ladies", "Flag", "Waste Cleaning",
		"Electrician", "Radio", "Light", "Total"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for i := range expenses {
		e := &expenses[i]
		rec := []string{
			e.FunctionDate.Format(csvDateLayout),
			FormatCents(e.AdvanceCents),
			FormatCents(e.BalanceCents),
			FormatCents(e.DamageRecoveryCents),
			FormatCents(e.GensCents),
			FormatCents(e.LadiesCents),
			FormatCents(e.FlagCents),
			FormatCents(e.WasteRoomCleaningCents),
			FormatCents(e.ElectricianCents),
			FormatCents(e.RadioCents),
			FormatCents(e.LightCents),
			FormatCents(e.TotalCents),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// FormatCents renders an amount in cents as a decimal string, e.g.
// 150050 -> "1500.50".
func FormatCents(c int64) string {
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}

func dateOrEmpty(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(csvDateLayout)
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
