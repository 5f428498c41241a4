package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"courtshare/database"
	"courtshare/models"
)

// MongoBookingRepo is the MongoDB-backed BookingRepository.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo builds a repository over the global Mongo client.
func NewMongoBookingRepo() *MongoBookingRepo {
	return &MongoBookingRepo{
		coll: database.MongoClient.Database(database.DatabaseName).Collection("bookings"),
	}
}

func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return &booking, nil
}

func (r *MongoBookingRepo) GetByCheckoutSessionID(ctx context.Context, sessionID string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"checkout_session_id": sessionID}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking by checkout session: %w", err)
	}
	return &booking, nil
}

func (r *MongoBookingRepo) ListForSchedule(ctx context.Context, courtID, subCourtID, date string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return r.listForSchedule(ctx, courtID, subCourtID, date)
}

// scheduleQuery builds the filter for bookings that can occupy the
// requested schedule. A listing-level booking carries no sub_court_id
// and occupies the whole facility, so a sub-court lookup must match
// those documents too or the two booking shapes become invisible to
// each other and a physical court can be double-booked.
func scheduleQuery(courtID, subCourtID, date string) bson.M {
	query := bson.M{
		"court_id": courtID,
		"date":     date,
	}
	if subCourtID != "" {
		query["$or"] = []bson.M{
			{"sub_court_id": subCourtID},
			{"sub_court_id": bson.M{"$exists": false}},
			{"sub_court_id": ""},
		}
	}
	return query
}

// listForSchedule runs against the caller's context so it can also be
// used inside a session transaction.
func (r *MongoBookingRepo) listForSchedule(ctx context.Context, courtID, subCourtID, date string) ([]models.Booking, error) {
	cursor, err := r.coll.Find(ctx, scheduleQuery(courtID, subCourtID, date))
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings for court %s on %s: %w", courtID, date, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (r *MongoBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return r.listBy(ctx, bson.M{"user_id": userID})
}

func (r *MongoBookingRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.Booking, error) {
	return r.listBy(ctx, bson.M{"owner_id": ownerID})
}

func (r *MongoBookingRepo) listBy(ctx context.Context, query bson.M) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "time", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (r *MongoBookingRepo) UpdateStatus(ctx context.Context, id, from, to string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id, "status": from},
		bson.M{"$set": bson.M{"status": to, "updated_at": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to update booking %s status: %w", id, err)
	}
	if res.MatchedCount == 0 {
		// Either the booking is gone or its status moved on already.
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return ErrInvalidTransition
	}
	return nil
}

func (r *MongoBookingRepo) SetCheckoutSession(ctx context.Context, id, sessionID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"checkout_session_id": sessionID, "updated_at": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to attach checkout session to booking %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoBookingRepo) MarkPaid(ctx context.Context, id, paymentIntentID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id, "payment_status": models.PaymentStatusAwaiting},
		bson.M{"$set": bson.M{
			"payment_status":    models.PaymentStatusPaid,
			"payment_intent_id": paymentIntentID,
			"updated_at":        time.Now(),
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to mark booking %s paid: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoBookingRepo) MarkRefunded(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id, "payment_status": models.PaymentStatusPaid},
		bson.M{"$set": bson.M{
			"payment_status": models.PaymentStatusRefunded,
			"updated_at":     time.Now(),
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to mark booking %s refunded: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// CancelIfUnpaid releases an expired hold. The filter is conditional on
// both status and payment state so a webhook that landed first wins.
func (r *MongoBookingRepo) CancelIfUnpaid(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{
			"id":             id,
			"status":         models.BookingStatusPending,
			"payment_status": models.PaymentStatusAwaiting,
			"hold_expires_at": bson.M{
				"$lte": time.Now(),
			},
		},
		bson.M{"$set": bson.M{
			"status":     models.BookingStatusCancelled,
			"updated_at": time.Now(),
		}},
	)
	if err != nil {
		return false, fmt.Errorf("failed to cancel expired hold %s: %w", id, err)
	}
	return res.ModifiedCount > 0, nil
}
