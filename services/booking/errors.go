package booking

import (
	"errors"
	"fmt"

	"courtshare/models"
	"courtshare/services/availability"
)

var (
	// ErrValidation marks a malformed booking request rejected at the
	// boundary before the engine is consulted.
	ErrValidation = errors.New("invalid booking request")
	// ErrNotOwner is returned when a caller acts on a booking for a
	// court they do not own.
	ErrNotOwner = errors.New("caller does not own this court")
	// ErrNotBookingUser is returned when a caller cancels a booking
	// they did not make.
	ErrNotBookingUser = errors.New("caller did not make this booking")
	// ErrCourtInactive is returned for bookings against unlisted courts.
	ErrCourtInactive = errors.New("court is not accepting bookings")
)

// BlockedError carries the engine's negative decision to the caller as
// an ordinary user-facing result.
type BlockedError struct {
	Reason  availability.Reason
	Message string
}

func (e *BlockedError) Error() string { return e.Message }

// blockedError renders the per-reason user-facing message.
func blockedError(reason availability.Reason, cfg models.AvailabilityConfig) *BlockedError {
	msg := "This time slot is unavailable"
	switch reason {
	case availability.ReasonPastDate:
		msg = "This date has already passed"
	case availability.ReasonBeyondAdvanceWindow:
		if cfg.MaxAdvanceBookingDays != nil {
			msg = fmt.Sprintf("Bookings are only available up to %d days in advance", *cfg.MaxAdvanceBookingDays)
		}
	case availability.ReasonSlotBlocked:
		msg = "This time is not available for booking"
	case availability.ReasonConflictsWithBooking:
		msg = "This time slot is already booked"
	}
	return &BlockedError{Reason: reason, Message: msg}
}
