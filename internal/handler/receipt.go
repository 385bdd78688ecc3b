package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/srivari/hall-booking-api/internal/config"
	"github.com/srivari/hall-booking-api/internal/receipt"
	"github.com/srivari/hall-booking-api/internal/repository"
)

// ReceiptHandler renders printable PDF receipts for bookings.
type ReceiptHandler struct {
	Cfg      config.Config
	Bookings *repository.BookingRepo
}

func NewReceiptHandler(cfg config.Config, b *repository.BookingRepo) *ReceiptHandler {
	return &ReceiptHandler{Cfg: cfg, Bookings: b}
}

// Receipt handles GET /v1/bookings/:id/receipt and returns the PDF
// inline so the admin page can open it in a new tab.
func (h *ReceiptHandler) Receipt(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	b, err := h.Bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	pdf, err := receipt.Build(b, h.Cfg.ReceiptSecret)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not render receipt"})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`inline; filename="SriVari_Receipt_%d.pdf"`, b.ID))
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}
