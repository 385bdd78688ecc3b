package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/srivari/hall-booking-api/internal/config"     // cache + rate limit settings
	"github.com/srivari/hall-booking-api/internal/handler"    // booking handlers
	"github.com/srivari/hall-booking-api/internal/middleware" // JWT + role + redis middlewares
)

// RegisterBooking registers the booking endpoints.  The submission form
// and every read projection (list, detail, calendar feed, dashboard
// stats, CSV export, receipt) are public; edits and status changes
// require a staff token.  The Redis-backed middlewares degrade to no-ops
// when rdb is nil.
func RegisterBooking(
	e *echo.Echo,
	b *handler.BookingHandler,
	cal *handler.CalendarHandler,
	ex *handler.ExportHandler,
	rc *handler.ReceiptHandler,
	rdb *redis.Client,
	jwtSecret string,
) {
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	rateMW := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	// ---- Public ----
	// The anonymous submission form is the flood target, so it gets the
	// token bucket.
	e.POST("/v1/bookings", b.Submit, rateMW)
	// Read projections are polled by the availability page; cache them.
	e.GET("/v1/bookings", b.List, cacheMW)
	e.GET("/v1/bookings/dates", cal.Dates, cacheMW)
	e.GET("/v1/dashboard/stats", cal.Stats, cacheMW)
	// Downloads bypass the cache so headers stream through untouched.
	e.GET("/v1/bookings/export", ex.BookingsCSV)
	e.GET("/v1/bookings/:id/receipt", rc.Receipt)
	e.GET("/v1/bookings/:id", b.Get)

	// ---- Staff ----
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("STAFF"),
	)
	g.PUT("/bookings/:id", b.Update)
	g.PATCH("/bookings/:id/status", b.UpdateStatus)
}
