package listing

import (
	"context"
	"errors"
	"fmt"
	"time"

	listingRepo "realtorbot/database/repository/listing"
	"realtorbot/models"
	"realtorbot/utils"
)

// GetByID fetches a single listing.
func (s *DefaultService) GetByID(ctx context.Context, id string) (*models.Listing, error) {
	return s.Repo.GetByID(ctx, id)
}

// UpdateListing applies a field patch to a listing the seller owns. The
// ID and seller are immutable; a patch naming either is rejected.
func (s *DefaultService) UpdateListing(ctx context.Context, id, sellerID string, patch map[string]interface{}) error {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.SellerID != sellerID {
		return &ForbiddenError{ListingID: id}
	}
	for _, immutable := range []string{"id", "seller_id", "created_at"} {
		if _, found := patch[immutable]; found {
			return fmt.Errorf("field %q cannot be updated", immutable)
		}
	}
	patch["updated_at"] = time.Now()
	if err := s.Repo.Update(ctx, id, patch); err != nil {
		utils.GetLogger().Sugar().Errorf("UpdateListing %s: %v", id, err)
		return fmt.Errorf("failed to update listing: %w", err)
	}
	return nil
}

// DeleteListing removes a listing the seller owns.
func (s *DefaultService) DeleteListing(ctx context.Context, id, sellerID string) error {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.SellerID != sellerID {
		return &ForbiddenError{ListingID: id}
	}
	return s.Repo.Delete(ctx, id)
}

// ListListings returns a page of listings, newest first.
func (s *DefaultService) ListListings(ctx context.Context, page, size int, filters models.SearchFilters) ([]models.Listing, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 50 {
		size = 20
	}
	return s.Repo.List(ctx, page, size, filters)
}

// IsNotFound reports whether err is the repository's missing-document
// error.
func IsNotFound(err error) bool {
	return errors.Is(err, listingRepo.ErrNotFound)
}
