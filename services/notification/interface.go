package notification

import (
	"context"

	"courtshare/services/user"
)

// Mailer sends transactional booking email.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// NotificationService delivers booking notifications. Delivery is
// fire-and-forget: a failed push or email is logged and never blocks
// or rolls back a booking state change.
type NotificationService interface {
	NotifyBookingEvent(userID, title, body string, data map[string]string)
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Users  user.UserService
	Mailer Mailer
}
