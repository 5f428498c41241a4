package booking

import (
	"context"
	"time"

	"github.com/hibiken/asynq"

	bookingRepo "courtshare/database/repository/booking"
	courtRepo "courtshare/database/repository/court"
	"courtshare/models"
	"courtshare/services/notification"
)

// CreateBookingRequest is the validated input to the create flow. The
// user id is never part of it; it comes from the identity middleware.
type CreateBookingRequest struct {
	CourtID         string
	SubCourtID      string
	Date            string // "YYYY-MM-DD"
	Time            string
	DurationMinutes int
}

// BookingService runs the booking lifecycle: availability lookups,
// hold creation with payment, owner and player transitions, and
// webhook settlement.
type BookingService interface {
	// AvailableSlots lists bookable start times for a date/duration,
	// using the same engine as the authoritative create-time check.
	AvailableSlots(ctx context.Context, courtID, subCourtID, date string, durationMinutes int) ([]string, error)

	// Create validates the candidate, reserves a short-lived pending
	// hold, and opens a Stripe Checkout session for it.
	Create(ctx context.Context, userID string, req CreateBookingRequest) (*models.CheckoutResult, error)

	Confirm(ctx context.Context, ownerID, bookingID string) error
	Reject(ctx context.Context, ownerID, bookingID string) error
	Cancel(ctx context.Context, userID, bookingID string) error

	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Booking, error)

	// Webhook settlement and hold expiry.
	HandleCheckoutCompleted(ctx context.Context, sessionID, paymentIntentID string) error
	HandleCheckoutExpired(ctx context.Context, sessionID string) error
	ExpireHold(ctx context.Context, bookingID string) error
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	CourtRepo   courtRepo.CourtRepository
	Repo        bookingRepo.BookingRepository
	Notifier    notification.NotificationService
	TaskClient  *asynq.Client
	MaxDuration int           // minutes
	HoldTTL     time.Duration // how long an unpaid hold keeps the slot
}
