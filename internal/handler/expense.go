package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/srivari/hall-booking-api/internal/model"
	"github.com/srivari/hall-booking-api/internal/repository"
)

// ExpenseHandler exposes staff-only CRUD over the per-function expense
// ledger.  Amounts travel as integer cents in both directions.
type ExpenseHandler struct {
	Expenses *repository.ExpenseRepo
}

func NewExpenseHandler(e *repository.ExpenseRepo) *ExpenseHandler {
	return &ExpenseHandler{Expenses: e}
}

type expenseReq struct {
	FunctionDate           string `json:"function_date"`
	AdvanceCents           int64  `json:"advance_cents"`
	BalanceCents           int64  `json:"balance_cents"`
	DamageRecoveryCents    int64  `json:"damage_recovery_cents"`
	GensCents              int64  `json:"gens_cents"`
	LadiesCents            int64  `json:"ladies_cents"`
	FlagCents              int64  `json:"flag_cents"`
	WasteRoomCleaningCents int64  `json:"waste_room_cleaning_cents"`
	ElectricianCents       int64  `json:"electrician_cents"`
	RadioCents             int64  `json:"radio_cents"`
	LightCents             int64  `json:"light_cents"`
	TotalCents             int64  `json:"total_cents"`
}

type expenseResp struct {
	ID                     int64  `json:"id"`
	FunctionDate           string `json:"function_date"`
	AdvanceCents           int64  `json:"advance_cents"`
	BalanceCents           int64  `json:"balance_cents"`
	DamageRecoveryCents    int64  `json:"damage_recovery_cents"`
	GensCents              int64  `json:"gens_cents"`
	LadiesCents            int64  `json:"ladies_cents"`
	FlagCents              int64  `json:"flag_cents"`
	WasteRoomCleaningCents int64  `json:"waste_room_cleaning_cents"`
	ElectricianCents       int64  `json:"electrician_cents"`
	RadioCents             int64  `json:"radio_cents"`
	LightCents             int64  `json:"light_cents"`
	TotalCents             int64  `json:"total_cents"`
	CreatedAt              string `json:"created_at"`
}

func toExpenseResp(e *model.Expense) expenseResp {
	return expenseResp{
		ID:                     e.ID,
		FunctionDate:           e.FunctionDate.Format(dateLayout),
		AdvanceCents:           e.AdvanceCents,
		BalanceCents:           e.BalanceCents,
		DamageRecoveryCents:    e.DamageRecoveryCents,
		GensCents:              e.GensCents,
		LadiesCents:            e.LadiesCents,
		FlagCents:              e.FlagCents,
		WasteRoomCleaningCents: e.WasteRoomCleaningCents,
		ElectricianCents:       e.ElectricianCents,
		RadioCents:             e.RadioCents,
		LightCents:             e.LightCents,
		TotalCents:             e.TotalCents,
		CreatedAt:              e.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func expenseFromReq(req *expenseReq) (*model.Expense, string) {
	raw := strings.TrimSpace(req.FunctionDate)
	if raw == "" {
		return nil, "function_date is required"
	}
	d, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, "invalid function_date, expected YYYY-MM-DD"
	}
	for _, v := range []int64{
		req.AdvanceCents, req.BalanceCents, req.DamageRecoveryCents,
		req.GensCents, req.LadiesCents, req.FlagCents,
		req.WasteRoomCleaningCents, req.ElectricianCents, req.RadioCents,
		req.LightCents, req.TotalCents,
	} {
		if v < 0 {
			return nil, "amounts cannot be negative"
		}
	}
	return &model.Expense{
		FunctionDate:           d,
		AdvanceCents:           req.AdvanceCents,
		BalanceCents:           req.BalanceCents,
		DamageRecoveryCents:    req.DamageRecoveryCents,
		GensCents:              req.GensCents,
		LadiesCents:            req.LadiesCents,
		FlagCents:              req.FlagCents,
		WasteRoomCleaningCents: req.WasteRoomCleaningCents,
		ElectricianCents:       req.ElectricianCents,
		RadioCents:             req.RadioCents,
		LightCents:             req.LightCents,
		TotalCents:             req.TotalCents,
	}, ""
}

// List handles GET /v1/expenses.
func (h *ExpenseHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	expenses, err := h.Expenses.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]expenseResp, 0, len(expenses))
	for i := range expenses {
		out = append(out, toExpenseResp(&expenses[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /v1/expenses/:id.
func (h *ExpenseHandler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid expense id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	e, err := h.Expenses.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "expense not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, toExpenseResp(e))
}

// Create handles POST /v1/expenses.
func (h *ExpenseHandler) Create(c echo.Context) error {
	var req expenseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	e, msg := expenseFromReq(&req)
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Expenses.Create(ctx, e); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not save expense"})
	}
	return c.JSON(http.StatusCreated, toExpenseResp(e))
}

// Update handles PUT /v1/expenses/:id.
func (h *ExpenseHandler) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid expense id"})
	}
	var req expenseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	e, msg := expenseFromReq(&req)
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	e.ID = id

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Expenses.Update(ctx, e); err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "expense not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not save expense"})
	}
	return c.JSON(http.StatusOK, toExpenseResp(e))
}

// Delete handles DELETE /v1/expenses/:id.
func (h *ExpenseHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid expense id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Expenses.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "expense not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete expense"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "expense deleted"})
}
