package bookingRepo

import (
	"context"
	"errors"
	"time"

	"courtshare/models"
)

var (
	// ErrNotFound is returned when no booking matches the lookup.
	ErrNotFound = errors.New("booking not found")
	// ErrSlotConflict is returned when the transactional write finds the
	// requested slot no longer available.
	ErrSlotConflict = errors.New("slot no longer available")
	// ErrInvalidTransition is returned for a status change the booking
	// lifecycle does not allow.
	ErrInvalidTransition = errors.New("invalid booking status transition")
)

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetByCheckoutSessionID(ctx context.Context, sessionID string) (*models.Booking, error)

	// ListForSchedule returns all bookings for a court (and sub-court)
	// on a date, regardless of status. The availability engine decides
	// which of them occupy the schedule.
	ListForSchedule(ctx context.Context, courtID, subCourtID, date string) ([]models.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Booking, error)

	// CreateIfAvailable inserts the booking inside a transaction that
	// re-reads the day's bookings and re-runs the availability engine
	// first. Returns ErrSlotConflict if the slot was taken in between.
	CreateIfAvailable(ctx context.Context, cfg models.AvailabilityConfig, booking *models.Booking, today time.Time) error

	// UpdateStatus transitions a booking conditionally on its current
	// status, enforcing the lifecycle at the storage layer.
	UpdateStatus(ctx context.Context, id, from, to string) error

	SetCheckoutSession(ctx context.Context, id, sessionID string) error
	MarkPaid(ctx context.Context, id, paymentIntentID string) error
	MarkRefunded(ctx context.Context, id string) error

	// CancelIfUnpaid cancels an expired pending hold that was never
	// paid. Returns false if the booking was already paid or moved on.
	CancelIfUnpaid(ctx context.Context, id string) (bool, error)
}
