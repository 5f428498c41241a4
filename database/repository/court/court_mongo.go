package courtRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"courtshare/database"
	"courtshare/models"
)

// ErrNotFound is returned when no court matches the lookup.
var ErrNotFound = errors.New("court not found")

// MongoCourtRepo is the MongoDB-backed CourtRepository.
type MongoCourtRepo struct {
	coll *mongo.Collection
}

// NewMongoCourtRepo builds a repository over the global Mongo client.
func NewMongoCourtRepo() *MongoCourtRepo {
	return &MongoCourtRepo{
		coll: database.MongoClient.Database(database.DatabaseName).Collection("courts"),
	}
}

func (r *MongoCourtRepo) Create(ctx context.Context, court *models.Court) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, court); err != nil {
		return fmt.Errorf("failed to insert court: %w", err)
	}
	return nil
}

func (r *MongoCourtRepo) GetByID(ctx context.Context, id string) (*models.Court, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var court models.Court
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&court)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch court %s: %w", id, err)
	}
	return &court, nil
}

func (r *MongoCourtRepo) Update(ctx context.Context, court *models.Court) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	court.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": court.ID}, court)
	if err != nil {
		return fmt.Errorf("failed to update court %s: %w", court.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoCourtRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete court %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoCourtRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.Court, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return nil, fmt.Errorf("failed to list courts for owner %s: %w", ownerID, err)
	}
	defer cursor.Close(ctx)

	var courts []models.Court
	if err := cursor.All(ctx, &courts); err != nil {
		return nil, fmt.Errorf("failed to decode courts: %w", err)
	}
	return courts, nil
}

func (r *MongoCourtRepo) Search(ctx context.Context, filter SearchFilter) ([]models.Court, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{"active": true}
	if filter.City != "" {
		query["city"] = filter.City
	}
	if filter.Surface != "" {
		query["surface"] = filter.Surface
	}
	if filter.Indoor != nil {
		query["indoor"] = *filter.Indoor
	}
	if filter.MaxPricePerHour > 0 {
		query["price_per_hour"] = bson.M{"$lte": filter.MaxPricePerHour}
	}

	opts := options.Find().SetSort(bson.D{{Key: "price_per_hour", Value: 1}})
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}
	if filter.Offset > 0 {
		opts.SetSkip(filter.Offset)
	}

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search courts: %w", err)
	}
	defer cursor.Close(ctx)

	var courts []models.Court
	if err := cursor.All(ctx, &courts); err != nil {
		return nil, fmt.Errorf("failed to decode courts: %w", err)
	}
	return courts, nil
}

// UpdateAvailability replaces the availability config for the listing
// or, when subCourtID is set, for that sub-court's override.
func (r *MongoCourtRepo) UpdateAvailability(ctx context.Context, id, subCourtID string, cfg models.AvailabilityConfig) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{
		"availability": cfg,
		"updated_at":   time.Now(),
	}}
	if subCourtID != "" {
		filter["sub_courts.id"] = subCourtID
		update = bson.M{"$set": bson.M{
			"sub_courts.$.availability": cfg,
			"updated_at":                time.Now(),
		}}
	}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update availability for court %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoCourtRepo) AddPhoto(ctx context.Context, id, publicID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{
		"$addToSet": bson.M{"photos": publicID},
		"$set":      bson.M{"updated_at": time.Now()},
	})
	if err != nil {
		return fmt.Errorf("failed to add photo to court %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoCourtRepo) RemovePhoto(ctx context.Context, id, publicID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{
		"$pull": bson.M{"photos": publicID},
		"$set":  bson.M{"updated_at": time.Now()},
	})
	if err != nil {
		return fmt.Errorf("failed to remove photo from court %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
