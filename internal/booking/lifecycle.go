package booking

import (
	"errors"
	"strings"

	"github.com/srivari/hall-booking-api/internal/model"
)

// ErrInvalidStatus is returned when a status-update request names a state
// outside the set staff may assign.
var ErrInvalidStatus = errors.New("invalid status, must be 'approved', 'rejected' or 'pending'")

// InitialStatus is the state every publicly submitted booking starts in.
// Any status supplied by the submitter is ignored.
func InitialStatus() string { return model.StatusPending }

// ParseTransitionTarget normalizes and validates a status value supplied to
// the staff status-update action.  Staff may move a booking to pending,
// approved or rejected from any current state; there is no transition
// matrix.  Cancelled exists in the schema but is not assignable through
// this path.
func ParseTransitionTarget(raw string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case model.StatusPending, model.StatusApproved, model.StatusRejected:
		return s, nil
	}
	return "", ErrInvalidStatus
}
