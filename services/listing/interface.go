// Package listing owns the write path for property listings and the
// ranked search that feeds buyer recommendations. Creation happens only
// from a confirmed conversation draft; searches never mutate anything.
package listing

import (
	"context"

	listingRepo "realtorbot/database/repository/listing"
	"realtorbot/models"
	"realtorbot/services/engine"
)

type Service interface {
	// Creation and management.
	CreateFromDraft(ctx context.Context, draft models.ListingDraft, sellerID string) (*models.PropertyView, error)
	GetByID(ctx context.Context, id string) (*models.Listing, error)
	UpdateListing(ctx context.Context, id, sellerID string, patch map[string]interface{}) error
	DeleteListing(ctx context.Context, id, sellerID string) error
	ListListings(ctx context.Context, page, size int, filters models.SearchFilters) ([]models.Listing, error)

	// Search.
	Recommend(ctx context.Context, params models.SearchParams) ([]models.PropertyView, error)
	WebhookSearch(ctx context.Context, params models.SearchParams) ([]models.PropertyView, error)

	// Engine action routing.
	Dispatch(ctx context.Context, actions []engine.Action, user models.AuthUser, fields map[string]string) DispatchResult
}

// DefaultService is the production implementation.
type DefaultService struct {
	Repo listingRepo.Repository
}
