package tourRepo

import (
	"context"

	"realtorbot/config"
	"realtorbot/database"
	"realtorbot/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// Repository stores scheduled property tours.
type Repository interface {
	Create(ctx context.Context, tour models.Tour) (string, error)
	GetByID(ctx context.Context, id string) (*models.Tour, error)
	GetByBuyerID(ctx context.Context, buyerID string) ([]models.Tour, error)
	Update(ctx context.Context, id string, patch map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

type mongoTourRepo struct {
	coll *mongo.Collection
}

// NewMongoTourRepo returns a Repository backed by the tours collection.
func NewMongoTourRepo() Repository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoTourRepo{
		coll: db.Collection(config.AppConfig.ToursCollection),
	}
}
