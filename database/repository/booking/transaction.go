package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"courtshare/models"
	"courtshare/services/availability"
)

// CreateIfAvailable inserts a booking only if the slot is still free.
// The pre-payment availability check in the service layer is unguarded:
// two concurrent requests for overlapping slots can both pass it. The
// engine is therefore re-run here, inside a session transaction against
// a fresh read, immediately before the write.
func (r *MongoBookingRepo) CreateIfAvailable(
	ctx context.Context,
	cfg models.AvailabilityConfig,
	booking *models.Booking,
	today time.Time,
) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		existing, err := r.listForSchedule(sc, booking.CourtID, booking.SubCourtID, booking.Date)
		if err != nil {
			return err
		}

		decision, err := availability.EvaluateCandidate(cfg, existing, models.CandidateBooking{
			CourtID:         booking.CourtID,
			SubCourtID:      booking.SubCourtID,
			Date:            booking.Date,
			Time:            booking.Time,
			DurationMinutes: booking.DurationMinutes,
		}, today)
		if err != nil {
			return err
		}
		if !decision.Allowed {
			return fmt.Errorf("%w: %s", ErrSlotConflict, decision.Reason)
		}

		if _, err := r.coll.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return err
	}

	return nil
}
