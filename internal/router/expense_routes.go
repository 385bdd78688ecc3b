package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/srivari/hall-booking-api/internal/handler"    // expense handlers
	"github.com/srivari/hall-booking-api/internal/middleware" // JWT + role middlewares
)

// RegisterExpense registers the staff-only expense ledger endpoints under
// /v1.  All routes require a valid JWT and the STAFF role.
func RegisterExpense(e *echo.Echo, x *handler.ExpenseHandler, ex *handler.ExportHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("STAFF"),
	)

	// The static export path must be registered alongside :id routes so
	// the router resolves it first.
	g.GET("/expenses/export", ex.ExpensesCSV)

	g.GET("/expenses", x.List)
	g.POST("/expenses", x.Create)
	g.GET("/expenses/:id", x.Get)
	g.PUT("/expenses/:id", x.Update)
	g.DELETE("/expenses/:id", x.Delete)
}
