package listingRepo

import (
	"context"
	"fmt"

	"realtorbot/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// searchFetchSize caps how many hits are pulled from the store per search.
// Callers apply their own, smaller result caps on top of this.
const searchFetchSize = 20

// filterQuery translates the structured filter set into a Mongo filter.
// Absent numeric filters add no clause at all.
func filterQuery(filters models.SearchFilters) bson.M {
	query := bson.M{}

	if filters.Status != "" {
		query["status"] = filters.Status
	}
	if filters.SellerID != "" {
		query["seller_id"] = filters.SellerID
	}
	if filters.PriceMin != nil || filters.PriceMax != nil {
		price := bson.M{}
		if filters.PriceMin != nil {
			price["$gte"] = *filters.PriceMin
		}
		if filters.PriceMax != nil {
			price["$lte"] = *filters.PriceMax
		}
		query["price"] = price
	}
	if filters.BedroomsMin != nil {
		query["bedrooms"] = bson.M{"$gte": *filters.BedroomsMin}
	}
	if filters.BathroomsMin != nil {
		query["bathrooms"] = bson.M{"$gte": *filters.BathroomsMin}
	}

	return query
}

// Search runs a ranked free-text search scoped by the structured filters.
// The text index weights title above description, address and features;
// results are sorted by text score descending, then recency.
func (r *mongoListingRepo) Search(ctx context.Context, query string, filters models.SearchFilters) ([]models.ScoredListing, error) {
	match := filterQuery(filters)
	match["$text"] = bson.M{"$search": query}

	opts := options.Find().
		SetProjection(bson.M{"score": bson.M{"$meta": "textScore"}}).
		SetSort(bson.D{
			{Key: "score", Value: bson.M{"$meta": "textScore"}},
			{Key: "created_at", Value: -1},
		}).
		SetLimit(searchFetchSize)

	cursor, err := r.coll.Find(ctx, match, opts)
	if err != nil {
		return nil, fmt.Errorf("search listings: %w", err)
	}
	defer cursor.Close(ctx)

	var hits []models.ScoredListing
	for cursor.Next(ctx) {
		var doc struct {
			models.Listing `bson:",inline"`
			Score          float64 `bson:"score"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode search hit: %w", err)
		}
		hits = append(hits, models.ScoredListing{Listing: doc.Listing, Score: doc.Score})
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return hits, nil
}
