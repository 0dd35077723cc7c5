package listingRepo

import (
	"context"

	"realtorbot/config"
	"realtorbot/database"
	"realtorbot/models"
	"realtorbot/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

// Repository is the document-store boundary for property listings. The
// backing store is a black box from the callers' perspective: index a
// document, run a ranked free-text search scoped by structured filters,
// and plain CRUD. Search results come back sorted by relevance score
// descending with recency as the tiebreak.
type Repository interface {
	Index(ctx context.Context, listing models.Listing) error
	GetByID(ctx context.Context, id string) (*models.Listing, error)
	Update(ctx context.Context, id string, patch map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, page, size int, filters models.SearchFilters) ([]models.Listing, error)
	Search(ctx context.Context, query string, filters models.SearchFilters) ([]models.ScoredListing, error)
}

type mongoListingRepo struct {
	coll *mongo.Collection
}

// NewMongoListingRepo returns a Repository backed by the configured
// properties collection.
func NewMongoListingRepo() Repository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	repo := &mongoListingRepo{
		coll: db.Collection(config.AppConfig.PropertiesCollection),
	}
	if err := repo.EnsureIndexes(); err != nil {
		utils.GetLogger().Sugar().Warnf("listing repo: %v", err)
	}
	return repo
}
