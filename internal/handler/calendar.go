package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/srivari/hall-booking-api/internal/booking"
	"github.com/srivari/hall-booking-api/internal/repository"
)

// CalendarHandler serves the calendar feed and the dashboard stats, both
// public read-only projections over the bookings table.
type CalendarHandler struct {
	Bookings *repository.BookingRepo
}

func NewCalendarHandler(b *repository.BookingRepo) *CalendarHandler {
	return &CalendarHandler{Bookings: b}
}

// Dates handles GET /v1/bookings/dates: every dated booking as a
// calendar event, in the shape the availability calendar widget expects.
func (h *CalendarHandler) Dates(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	bookings, err := h.Bookings.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, booking.CalendarEvents(bookings))
}

// Stats handles GET /v1/dashboard/stats.
func (h *CalendarHandler) Stats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	bookings, err := h.Bookings.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return c.JSON(http.StatusOK, booking.Stats(bookings, today))
}
