package models

import "time"

// Booking status lifecycle: pending -> confirmed | rejected,
// pending|confirmed -> cancelled. Only pending and confirmed bookings
// occupy the schedule.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusRejected  = "rejected"
	BookingStatusCancelled = "cancelled"
)

// Payment settlement states for a booking's checkout session.
const (
	PaymentStatusAwaiting = "awaiting_payment"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

// Booking is a persisted reservation of court time.
type Booking struct {
	ID              string `bson:"id" json:"id"`
	CourtID         string `bson:"court_id" json:"courtId"`
	SubCourtID      string `bson:"sub_court_id,omitempty" json:"subCourtId,omitempty"`
	UserID          string `bson:"user_id" json:"userId"`
	OwnerID         string `bson:"owner_id" json:"ownerId"`
	Date            string `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time            string `bson:"time" json:"time"` // normalized "HH:00"
	DurationMinutes int    `bson:"duration_minutes" json:"durationMinutes"`
	Status          string `bson:"status" json:"status"`

	TotalAmount       int64  `bson:"total_amount" json:"totalAmount"` // minor currency units
	Currency          string `bson:"currency" json:"currency"`
	PaymentStatus     string `bson:"payment_status" json:"paymentStatus"`
	CheckoutSessionID string `bson:"checkout_session_id,omitempty" json:"-"`
	PaymentIntentID   string `bson:"payment_intent_id,omitempty" json:"-"`

	// HoldExpiresAt bounds how long an unpaid pending hold keeps the
	// slot reserved before the expiry worker releases it.
	HoldExpiresAt time.Time `bson:"hold_expires_at,omitempty" json:"holdExpiresAt,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// OccupiesSchedule reports whether this booking blocks other bookings.
// Rejected and cancelled bookings never constrain availability.
func (b *Booking) OccupiesSchedule() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}

// CandidateBooking is a proposed, not-yet-persisted booking evaluated
// against current availability.
type CandidateBooking struct {
	CourtID         string `json:"courtId"`
	SubCourtID      string `json:"subCourtId,omitempty"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	DurationMinutes int    `json:"durationMinutes"`
}

// CanTransition reports whether a booking status change is legal.
func CanTransition(from, to string) bool {
	switch from {
	case BookingStatusPending:
		return to == BookingStatusConfirmed || to == BookingStatusRejected || to == BookingStatusCancelled
	case BookingStatusConfirmed:
		return to == BookingStatusCancelled
	default:
		return false
	}
}
