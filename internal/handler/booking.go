package handler

import (
	"context"  // context with cancellation for DB calls
	"errors"   // sentinel error matching
	"log"      // best-effort notification logging
	"net/http" // HTTP status codes and primitives
	"strconv"  // path param conversion
	"strings"  // trimming request fields
	"time"     // timeouts and date parsing

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/srivari/hall-booking-api/internal/booking"    // core conflict + lifecycle rules
	"github.com/srivari/hall-booking-api/internal/model"      // domain records
	"github.com/srivari/hall-booking-api/internal/notify"     // direct-mail fallback
	"github.com/srivari/hall-booking-api/internal/queue"      // broker payloads
	"github.com/srivari/hall-booking-api/internal/repository" // DB repositories
	queue_publisher "github.com/srivari/hall-booking-api/internal/service"
)

// BookingHandler bundles dependencies for booking endpoints.  Submission,
// listing and retrieval are public; editing requires a staff token (the
// router applies the middleware).
type BookingHandler struct {
	Bookings *repository.BookingRepo
	Mailer   *notify.Mailer
}

func NewBookingHandler(b *repository.BookingRepo, m *notify.Mailer) *BookingHandler {
	return &BookingHandler{Bookings: b, Mailer: m}
}

// ----- DTOs -----

const dateLayout = "2006-01-02"

type bookingReq struct {
	Name            string  `json:"name"`
	Phone           string  `json:"phone"`
	Email           string  `json:"email"`
	EventType       string  `json:"event_type"`
	FromDate        string  `json:"from_date"`
	ToDate          string  `json:"to_date"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	AddressLine     *string `json:"address_line"`
	Message         *string `json:"message"`
	EstimatedGuests *int64  `json:"estimated_guests"`
	FoodPreference  *string `json:"food_preference"`
	AlternatePhone  *string `json:"alternate_phone"`
	// Status is accepted in the body but deliberately ignored on the public
	// submission path: every new booking starts pending.
	Status string `json:"status"`
}

type bookingResp struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Phone           string  `json:"phone"`
	Email           string  `json:"email"`
	EventType       string  `json:"event_type"`
	FromDate        string  `json:"from_date,omitempty"`
	ToDate          string  `json:"to_date,omitempty"`
	StartTime       *string `json:"start_time"`
	EndTime         *string `json:"end_time"`
	AddressLine     *string `json:"address_line"`
	Message         *string `json:"message"`
	EstimatedGuests *int64  `json:"estimated_guests"`
	FoodPreference  *string `json:"food_preference"`
	AlternatePhone  *string `json:"alternate_phone"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"created_at"`
}

func toBookingResp(b *model.Booking) bookingResp {
	resp := bookingResp{
		ID:              b.ID,
		Name:            b.Name,
		Phone:           b.Phone,
		Email:           b.Email,
		EventType:       b.EventType,
		StartTime:       b.StartTime,
		EndTime:         b.EndTime,
		AddressLine:     b.AddressLine,
		Message:         b.Message,
		EstimatedGuests: b.EstimatedGuests,
		FoodPreference:  b.FoodPreference,
		AlternatePhone:  b.AlternatePhone,
		Status:          b.Status,
		CreatedAt:       b.CreatedAt.UTC().Format(time.RFC3339),
	}
	if !b.FromDate.IsZero() {
		resp.FromDate = b.FromDate.Format(dateLayout)
	}
	if !b.ToDate.IsZero() {
		resp.ToDate = b.ToDate.Format(dateLayout)
	}
	return resp
}

// bookingFromReq validates the request body and builds the domain record.
// It returns a user-facing message when a field is malformed.
func bookingFromReq(req *bookingReq) (*model.Booking, string) {
	b := &model.Booking{
		Name:            strings.TrimSpace(req.Name),
		Phone:           strings.TrimSpace(req.Phone),
		Email:           strings.TrimSpace(req.Email),
		EventType:       strings.TrimSpace(req.EventType),
		AddressLine:     trimOpt(req.AddressLine),
		Message:         trimOpt(req.Message),
		EstimatedGuests: req.EstimatedGuests,
		FoodPreference:  trimOpt(req.FoodPreference),
		AlternatePhone:  trimOpt(req.AlternatePhone),
	}
	if b.Name == "" {
		return nil, "name is required"
	}
	if b.Phone == "" {
		return nil, "phone is required"
	}
	if b.Email == "" || !strings.Contains(b.Email, "@") {
		return nil, "a valid email is required"
	}
	if b.EventType == "" {
		return nil, "event_type is required"
	}
	if strings.TrimSpace(req.FromDate) == "" {
		return nil, booking.ErrFromDateRequired.Error()
	}
	from, err := time.Parse(dateLayout, strings.TrimSpace(req.FromDate))
	if err != nil {
		return nil, "invalid from_date, expected YYYY-MM-DD"
	}
	b.FromDate = from
	if s := strings.TrimSpace(req.ToDate); s != "" {
		to, err := time.Parse(dateLayout, s)
		if err != nil {
			return nil, "invalid to_date, expected YYYY-MM-DD"
		}
		b.ToDate = to
	}
	startRaw := strings.TrimSpace(req.StartTime)
	endRaw := strings.TrimSpace(req.EndTime)
	if (startRaw == "") != (endRaw == "") {
		return nil, "start_time and end_time must be provided together"
	}
	if startRaw != "" {
		start, err := normalizeClock(startRaw)
		if err != nil {
			return nil, "invalid start_time, expected HH:MM"
		}
		end, err := normalizeClock(endRaw)
		if err != nil {
			return nil, "invalid end_time, expected HH:MM"
		}
		if end <= start {
			return nil, "end_time must be after start_time"
		}
		b.StartTime = &start
		b.EndTime = &end
	}
	if b.EstimatedGuests != nil && *b.EstimatedGuests < 0 {
		return nil, "estimated_guests cannot be negative"
	}
	return b, ""
}

func trimOpt(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// normalizeClock accepts "HH:MM" or "HH:MM:SS" and returns "HH:MM:SS" so
// stored times compare lexicographically.
func normalizeClock(raw string) (string, error) {
	if t, err := time.Parse("15:04:05", raw); err == nil {
		return t.Format("15:04:05"), nil
	}
	t, err := time.Parse("15:04", raw)
	if err != nil {
		return "", err
	}
	return t.Format("15:04:05"), nil
}

// Submit handles POST /v1/bookings: the public booking request form.  The
// conflict check and the insert run in one transaction over rows locked
// FOR UPDATE so two simultaneous overlapping submissions cannot both
// pass validation.
func (h *BookingHandler) Submit(c echo.Context) error {
	var req bookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	b, msg := bookingFromReq(&req)
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	// Public submissions always start pending, whatever the client sent.
	b.Status = booking.InitialStatus()

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if status, err := h.checkAndWrite(ctx, b, false); err != nil {
		return c.JSON(status, echo.Map{"error": err.Error()})
	}

	h.notifyAsync(b)
	return c.JSON(http.StatusCreated, toBookingResp(b))
}

// Update handles PUT /v1/bookings/:id (staff only).  The conflict check
// excludes the booking itself, so saving with unchanged dates succeeds.
func (h *BookingHandler) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	var req bookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	b, msg := bookingFromReq(&req)
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	// Status is not editable here; it survives from the stored row.
	current, err := h.Bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	b.ID = id
	b.Status = current.Status

	if status, err := h.checkAndWrite(ctx, b, true); err != nil {
		return c.JSON(status, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, toBookingResp(b))
}

// checkAndWrite runs the conflict validation and the write inside one
// transaction.  It returns the HTTP status to use alongside any error.
func (h *BookingHandler) checkAndWrite(ctx context.Context, b *model.Booking, update bool) (int, error) {
	tx, err := h.Bookings.DB().BeginTx(ctx, nil)
	if err != nil {
		return http.StatusInternalServerError, errors.New("could not start transaction")
	}
	defer func() { _ = tx.Rollback() }()

	from, to := booking.Window(b)
	existing, err := h.Bookings.FindActiveInRangeTx(ctx, tx, from, to, b.ID)
	if err != nil {
		return http.StatusInternalServerError, errors.New("failed to check existing bookings")
	}
	if err := booking.CheckConflict(b, existing); err != nil {
		switch {
		case errors.Is(err, booking.ErrDatesBooked), errors.Is(err, booking.ErrTimeSlotBooked):
			return http.StatusConflict, err
		default:
			return http.StatusBadRequest, err
		}
	}
	if update {
		err = h.Bookings.UpdateTx(ctx, tx, b)
	} else {
		err = h.Bookings.CreateTx(ctx, tx, b)
	}
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return http.StatusNotFound, err
		}
		return http.StatusInternalServerError, errors.New("could not save booking")
	}
	if err := tx.Commit(); err != nil {
		return http.StatusInternalServerError, errors.New("could not save booking")
	}
	return 0, nil
}

// notifyAsync dispatches the confirmation mail off the request path.  The
// event goes to the broker first; when the broker is unreachable the mail
// is attempted directly.  Either way failures are logged and never reach
// the submitter, whose booking is already saved.
func (h *BookingHandler) notifyAsync(b *model.Booking) {
	ev := queue.NewBookingReceivedEvent(b)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := queue_publisher.PublishBookingReceived(ctx, ev); err == nil {
			return
		}
		if h.Mailer == nil {
			return
		}
		if err := h.Mailer.SendBookingConfirmation(ev.Notice()); err != nil {
			log.Printf("booking %d: confirmation mail failed: %v", ev.BookingID, err)
		}
	}()
}

// List handles GET /v1/bookings and returns every booking, newest event
// first.  The endpoint is public so the availability page can render
// without a login; contact details are part of the venue's admin page
// which fronts this API.
func (h *BookingHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	bookings, err := h.Bookings.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]bookingResp, 0, len(bookings))
	for i := range bookings {
		out = append(out, toBookingResp(&bookings[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /v1/bookings/:id.
func (h *BookingHandler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b, err := h.Bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, toBookingResp(b))
}
