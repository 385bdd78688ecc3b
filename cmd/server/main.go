package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // .env loader for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/srivari/hall-booking-api/internal/config"     // Internal config loader
	"github.com/srivari/hall-booking-api/internal/database"   // MySQL connection helper
	"github.com/srivari/hall-booking-api/internal/handler"    // HTTP handlers
	"github.com/srivari/hall-booking-api/internal/notify"     // SMTP confirmation mail
	"github.com/srivari/hall-booking-api/internal/queue"      // booking event consumer
	"github.com/srivari/hall-booking-api/internal/repository" // DB repositories
	"github.com/srivari/hall-booking-api/internal/router"     // route registration
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer db.Close()

	// Redis is optional: a nil client turns the cache and the rate
	// limiter into pass-throughs.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, cache and rate limiting disabled")
	}

	bookings := repository.NewBookingRepo(db)
	expenses := repository.NewExpenseRepo(db)
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)

	mailer := notify.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser,
		cfg.SMTPPass, cfg.SMTPFrom, cfg.OperatorEmail)
	if !mailer.Enabled() {
		log.Println("mailer disabled, booking confirmations will be logged only")
	}

	// The consumer drains booking events from the broker and mails
	// confirmations.  It reconnects on its own; a broker outage only
	// delays mail because publishers fall back to sending directly.
	go func() {
		if err := queue.StartBookingConsumer(mailer); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	e := echo.New() // Create Echo instance

	bookingH := handler.NewBookingHandler(bookings, mailer)
	calendarH := handler.NewCalendarHandler(bookings)
	exportH := handler.NewExportHandler(bookings, expenses)
	receiptH := handler.NewReceiptHandler(cfg, bookings)
	expenseH := handler.NewExpenseHandler(expenses)
	authH := handler.NewAuthHandler(cfg, users, tokens)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterBooking(e, bookingH, calendarH, exportH, receiptH, rdb, cfg.JWTSecret)
	router.RegisterExpense(e, expenseH, exportH, cfg.JWTSecret)

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
