package notification

import (
	"context"
	"time"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"

	"courtshare/utils"
)

// NotifyBookingEvent sends a push and an email to the user in the
// background. Errors are logged only.
func (s *DefaultNotificationService) NotifyBookingEvent(userID, title, body string, data map[string]string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		logger := utils.GetLogger()

		u, err := s.Users.GetByID(ctx, userID)
		if err != nil {
			logger.Warn("notification: could not load user",
				zap.String("userID", userID), zap.Error(err))
			return
		}

		if u.FCMToken != "" && utils.FCMClient != nil {
			msg := &messaging.Message{
				Token: u.FCMToken,
				Notification: &messaging.Notification{
					Title: title,
					Body:  body,
				},
				Data: data,
			}
			if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
				logger.Warn("notification: push failed",
					zap.String("userID", userID), zap.Error(err))
			}
		}

		if s.Mailer != nil && u.Email != "" {
			if err := s.Mailer.Send(ctx, u.Email, title, body); err != nil {
				logger.Warn("notification: email failed",
					zap.String("userID", userID), zap.Error(err))
			}
		}
	}()
}
