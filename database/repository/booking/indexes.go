package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the bookings collection.
func (r *MongoBookingRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Primary schedule query: bookings for a court on a date.
		{
			Keys:    bson.D{{Key: "court_id", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("court_date_idx"),
		},
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetName("user_idx"),
		},
		{
			Keys:    bson.D{{Key: "owner_id", Value: 1}},
			Options: options.Index().SetName("owner_idx"),
		},
		{
			Keys:    bson.D{{Key: "checkout_session_id", Value: 1}},
			Options: options.Index().SetSparse(true).SetName("checkout_session_idx"),
		},
		// Expiry sweep: unpaid pending holds past their deadline.
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "payment_status", Value: 1}, {Key: "hold_expires_at", Value: 1}},
			Options: options.Index().SetName("hold_expiry_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
