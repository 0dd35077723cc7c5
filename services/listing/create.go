package listing

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"realtorbot/models"
	"realtorbot/services/convo"
	"realtorbot/utils"
)

// requiredDraftFields must all be non-empty before a draft becomes a
// listing. The optional numeric fields default to zero instead.
var requiredDraftFields = []string{"propertyType", "street", "city", "state", "zip", "price"}

// CreateFromDraft validates a confirmed draft, normalizes it into a
// listing and indexes it. Validation order is fixed: field completeness
// first, then price. On any failure nothing is written.
func (s *DefaultService) CreateFromDraft(ctx context.Context, draft models.ListingDraft, sellerID string) (*models.PropertyView, error) {
	logger := utils.GetLogger().Sugar()
	fields := draft.Fields()

	var missing []string
	for _, name := range requiredDraftFields {
		if strings.TrimSpace(fields[name]) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}

	price, ok := convo.NormalizePrice(draft.Price)
	if !ok {
		return nil, &InvalidPriceError{Raw: draft.Price}
	}

	now := time.Now()
	listing := models.Listing{
		ID:            strconv.FormatInt(now.UnixMilli(), 10),
		Title:         fmt.Sprintf("%s at %s", draft.PropertyType, draft.Street),
		PropertyType:  strings.ToLower(strings.TrimSpace(draft.PropertyType)),
		Address:       joinAddress(draft),
		Street:        strings.TrimSpace(draft.Street),
		City:          strings.TrimSpace(draft.City),
		State:         strings.TrimSpace(draft.State),
		Zip:           strings.TrimSpace(draft.Zip),
		Price:         price,
		Bedrooms:      convo.IntOrZero(draft.Bedrooms),
		Bathrooms:     convo.IntOrZero(draft.Bathrooms),
		SquareFootage: convo.IntOrZero(draft.SquareFootage),
		Description:   strings.TrimSpace(draft.Description),
		Status:        models.ListingStatusActive,
		SellerID:      sellerID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.Repo.Index(ctx, listing); err != nil {
		logger.Errorf("CreateFromDraft: index listing %s: %v", listing.ID, err)
		return nil, fmt.Errorf("failed to index listing: %w", err)
	}
	logger.Infof("Created listing %s for seller %s", listing.ID, sellerID)

	view := viewOf(models.ScoredListing{Listing: listing})
	return &view, nil
}

// joinAddress assembles the display address from the non-empty address
// parts, in street-to-zip order.
func joinAddress(draft models.ListingDraft) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{draft.Street, draft.City, draft.State, draft.Zip} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
