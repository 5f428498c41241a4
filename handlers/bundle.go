// File: courtshare/handlers/bundle.go
package handlers

// HandlerBundle groups all endpoint handlers into one struct so route
// registration takes a single value.
type HandlerBundle struct {
	UserHandler    *UserHandler
	CourtHandler   *CourtHandler
	BookingHandler *BookingHandler
	WebhookHandler *WebhookHandler
}
