package models

// CheckoutResult is returned to the client after a hold is created and
// a Stripe Checkout session is opened for it.
type CheckoutResult struct {
	BookingID   string `json:"bookingId"`
	CheckoutURL string `json:"checkoutUrl"`
	Amount      int64  `json:"amount"` // minor currency units
	Currency    string `json:"currency"`
	ExpiresAt   string `json:"expiresAt"`
}

// HoldExpiryPayload is the asynq task payload scheduled when a pending
// hold is created.
type HoldExpiryPayload struct {
	BookingID string `json:"bookingId"`
}
