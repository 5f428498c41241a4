package booking

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/refund"
	"go.uber.org/zap"

	"courtshare/config"
	"courtshare/models"
	"courtshare/utils"
)

// createCheckoutSession opens a Stripe Checkout session for a freshly
// created hold. The amount comes from the booking record, which was
// priced server-side from the court's hourly rate.
func (s *DefaultBookingService) createCheckoutSession(court *models.Court, hold *models.Booking) (checkoutURL, sessionID string, err error) {
	description := fmt.Sprintf("%s on %s at %s (%d min)", court.Name, hold.Date, hold.Time, hold.DurationMinutes)

	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		ClientReferenceID: stripe.String(hold.ID),
		SuccessURL:        stripe.String(config.AppConfig.CheckoutSuccessURL),
		CancelURL:         stripe.String(config.AppConfig.CheckoutCancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(hold.Currency),
					UnitAmount: stripe.Int64(hold.TotalAmount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(description),
					},
				},
			},
		},
	}
	params.AddMetadata("bookingId", hold.ID)
	params.AddMetadata("courtId", hold.CourtID)

	sess, err := session.New(params)
	if err != nil {
		return "", "", fmt.Errorf("stripe checkout session: %w", err)
	}
	return sess.URL, sess.ID, nil
}

// HandleCheckoutCompleted settles a paid checkout session. Invoked from
// the Stripe webhook handler, so it must tolerate replays: marking an
// already-paid booking paid again is a no-op.
func (s *DefaultBookingService) HandleCheckoutCompleted(ctx context.Context, sessionID, paymentIntentID string) error {
	logger := utils.GetLogger()

	booking, err := s.Repo.GetByCheckoutSessionID(ctx, sessionID)
	if err != nil {
		return err
	}
	if booking.PaymentStatus == models.PaymentStatusPaid {
		return nil
	}

	if err := s.Repo.MarkPaid(ctx, booking.ID, paymentIntentID); err != nil {
		return fmt.Errorf("failed to settle booking %s: %w", booking.ID, err)
	}
	logger.Info("booking paid",
		zap.String("bookingID", booking.ID),
		zap.Int64("amount", booking.TotalAmount),
		zap.String("currency", booking.Currency))

	s.Notifier.NotifyBookingEvent(booking.OwnerID,
		"Booking paid",
		fmt.Sprintf("Payment received for %s at %s", booking.Date, booking.Time),
		map[string]string{"bookingId": booking.ID})
	return nil
}

// HandleCheckoutExpired releases the hold behind a checkout session the
// player abandoned. Races with the scheduled hold expiry task; whoever
// runs first wins and the loser is a no-op.
func (s *DefaultBookingService) HandleCheckoutExpired(ctx context.Context, sessionID string) error {
	booking, err := s.Repo.GetByCheckoutSessionID(ctx, sessionID)
	if err != nil {
		return err
	}
	released, err := s.Repo.CancelIfUnpaid(ctx, booking.ID)
	if err != nil {
		return err
	}
	if released {
		utils.GetLogger().Info("released hold for expired checkout session",
			zap.String("bookingID", booking.ID))
	}
	return nil
}

// refundBooking issues a full Stripe refund for a paid booking and
// records it. No-op for bookings that were never paid.
func (s *DefaultBookingService) refundBooking(ctx context.Context, booking *models.Booking) error {
	if booking.PaymentStatus != models.PaymentStatusPaid {
		return nil
	}
	if booking.PaymentIntentID == "" {
		return fmt.Errorf("booking %s is paid but has no payment intent", booking.ID)
	}

	if _, err := refund.New(&stripe.RefundParams{
		PaymentIntent: stripe.String(booking.PaymentIntentID),
	}); err != nil {
		return fmt.Errorf("stripe refund for booking %s: %w", booking.ID, err)
	}
	if err := s.Repo.MarkRefunded(ctx, booking.ID); err != nil {
		return err
	}
	utils.GetLogger().Info("booking refunded",
		zap.String("bookingID", booking.ID),
		zap.Int64("amount", booking.TotalAmount))
	return nil
}
