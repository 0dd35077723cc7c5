package tourRepo

import (
	"context"
	"errors"
	"time"

	"realtorbot/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no tour matches the given ID.
var ErrNotFound = errors.New("tour not found")

// Create inserts a new tour and returns its ID.
func (r *mongoTourRepo) Create(ctx context.Context, tour models.Tour) (string, error) {
	if tour.ID == "" {
		tour.ID = uuid.New().String()
	}
	tour.CreatedAt = time.Now()
	tour.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, tour)
	if err != nil {
		return "", err
	}
	return tour.ID, nil
}

// GetByID returns a tour by its ID.
func (r *mongoTourRepo) GetByID(ctx context.Context, id string) (*models.Tour, error) {
	var tour models.Tour
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&tour)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tour, nil
}

// GetByBuyerID fetches all tours scheduled by a buyer, newest first.
func (r *mongoTourRepo) GetByBuyerID(ctx context.Context, buyerID string) ([]models.Tour, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"buyer_id": buyerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tours []models.Tour
	if err := cursor.All(ctx, &tours); err != nil {
		return nil, err
	}
	return tours, nil
}

// Update applies a partial patch to the tour and bumps updated_at.
func (r *mongoTourRepo) Update(ctx context.Context, id string, patch map[string]interface{}) error {
	patch["updated_at"] = time.Now()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": patch})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a tour by ID.
func (r *mongoTourRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
