package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/srivari/hall-booking-api/internal/booking"
	"github.com/srivari/hall-booking-api/internal/repository"
)

type statusReq struct {
	Status string `json:"status"`
}

// UpdateStatus handles PATCH /v1/bookings/:id/status (staff only).  Only
// pending, approved and rejected are accepted; cancellation is an
// offline process and has no API path.
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	var req statusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	target, err := booking.ParseTransitionTarget(req.Status)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b, err := h.Bookings.UpdateStatus(ctx, id, target)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update status"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "status updated to " + target,
		"booking": toBookingResp(b),
	})
}
