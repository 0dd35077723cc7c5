package listingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the ranked search relies on. The text
// index weights title above the other searchable fields.
func (r *mongoListingRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "seller_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{
			Keys: bson.D{
				{Key: "title", Value: "text"},
				{Key: "description", Value: "text"},
				{Key: "address", Value: "text"},
				{Key: "features", Value: "text"},
			},
			Options: options.Index().SetWeights(bson.M{
				"title":       2,
				"description": 1,
				"address":     1,
				"features":    1,
			}),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create listing indexes: %w", err)
	}
	return nil
}
