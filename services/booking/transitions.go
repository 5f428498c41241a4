package booking

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"courtshare/models"
	"courtshare/utils"
)

// Confirm moves a pending booking to confirmed. Only the court owner
// may confirm, and only a pending booking can be confirmed.
func (s *DefaultBookingService) Confirm(ctx context.Context, ownerID, bookingID string) error {
	booking, err := s.ownedBooking(ctx, ownerID, bookingID)
	if err != nil {
		return err
	}
	if err := s.transition(ctx, booking, models.BookingStatusConfirmed); err != nil {
		return err
	}

	s.Notifier.NotifyBookingEvent(booking.UserID,
		"Booking confirmed",
		fmt.Sprintf("Your booking on %s at %s was confirmed", booking.Date, booking.Time),
		map[string]string{"bookingId": booking.ID})
	return nil
}

// Reject moves a pending booking to rejected. A paid booking is
// refunded in full before the player is notified.
func (s *DefaultBookingService) Reject(ctx context.Context, ownerID, bookingID string) error {
	booking, err := s.ownedBooking(ctx, ownerID, bookingID)
	if err != nil {
		return err
	}
	if err := s.transition(ctx, booking, models.BookingStatusRejected); err != nil {
		return err
	}

	if err := s.refundBooking(ctx, booking); err != nil {
		// The rejection stands; flag the refund for manual follow-up.
		utils.GetLogger().Error("refund failed for rejected booking",
			zap.String("bookingID", booking.ID), zap.Error(err))
	}

	s.Notifier.NotifyBookingEvent(booking.UserID,
		"Booking rejected",
		fmt.Sprintf("Your booking on %s at %s was rejected by the owner", booking.Date, booking.Time),
		map[string]string{"bookingId": booking.ID})
	return nil
}

// Cancel lets the player who made the booking cancel it while it is
// still pending or confirmed.
func (s *DefaultBookingService) Cancel(ctx context.Context, userID, bookingID string) error {
	booking, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking.UserID != userID {
		return ErrNotBookingUser
	}
	if err := s.transition(ctx, booking, models.BookingStatusCancelled); err != nil {
		return err
	}

	s.Notifier.NotifyBookingEvent(booking.OwnerID,
		"Booking cancelled",
		fmt.Sprintf("The booking on %s at %s was cancelled by the player", booking.Date, booking.Time),
		map[string]string{"bookingId": booking.ID})
	return nil
}

func (s *DefaultBookingService) ownedBooking(ctx context.Context, ownerID, bookingID string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.OwnerID != ownerID {
		return nil, ErrNotOwner
	}
	return booking, nil
}

func (s *DefaultBookingService) transition(ctx context.Context, booking *models.Booking, to string) error {
	if !models.CanTransition(booking.Status, to) {
		return fmt.Errorf("%w: cannot move booking from %s to %s", ErrValidation, booking.Status, to)
	}
	return s.Repo.UpdateStatus(ctx, booking.ID, booking.Status, to)
}
