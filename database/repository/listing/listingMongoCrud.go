package listingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"realtorbot/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no listing matches the given ID.
var ErrNotFound = errors.New("listing not found")

// Index inserts or replaces the listing document keyed by its ID.
func (r *mongoListingRepo) Index(ctx context.Context, listing models.Listing) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"id": listing.ID}, listing, opts)
	if err != nil {
		return fmt.Errorf("index listing: %w", err)
	}
	return nil
}

// GetByID returns a listing by its ID.
func (r *mongoListingRepo) GetByID(ctx context.Context, id string) (*models.Listing, error) {
	var listing models.Listing
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&listing)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

// Update applies a partial patch to the listing and bumps updated_at.
func (r *mongoListingRepo) Update(ctx context.Context, id string, patch map[string]interface{}) error {
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

// Delete removes a listing by ID.
func (r *mongoListingRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns listings sorted by recency with basic pagination.
func (r *mongoListingRepo) List(ctx context.Context, page, size int, filters models.SearchFilters) ([]models.Listing, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * size)).
		SetLimit(int64(size))

	cursor, err := r.coll.Find(ctx, filterQuery(filters), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var listings []models.Listing
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}
