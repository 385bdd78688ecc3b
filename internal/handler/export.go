package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/srivari/hall-booking-api/internal/export"
	"github.com/srivari/hall-booking-api/internal/repository"
)

// ExportHandler streams CSV downloads for bookings and expenses.
type ExportHandler struct {
	Bookings *repository.BookingRepo
	Expenses *repository.ExpenseRepo
}

func NewExportHandler(b *repository.BookingRepo, e *repository.ExpenseRepo) *ExportHandler {
	return &ExportHandler{Bookings: b, Expenses: e}
}

// BookingsCSV handles GET /v1/bookings/export.
func (h *ExportHandler) BookingsCSV(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	bookings, err := h.Bookings.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="bookings.csv"`)
	c.Response().WriteHeader(http.StatusOK)
	return export.WriteBookingsCSV(c.Response(), bookings)
}

// ExpensesCSV handles GET /v1/expenses/export (staff only).
func (h *ExportHandler) ExpensesCSV(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	expenses, err := h.Expenses.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="expenses.csv"`)
	c.Response().WriteHeader(http.StatusOK)
	return export.WriteExpensesCSV(c.Response(), expenses)
}
