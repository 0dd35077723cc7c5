package listing

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"realtorbot/models"
	"realtorbot/services/convo"
	"realtorbot/utils"
)

const (
	// recommendCap bounds the recommendations endpoint; webhookCap bounds
	// the buyer webhook. The two surfaces historically diverged and both
	// limits are load-bearing for their clients.
	recommendCap = 6
	webhookCap   = 8

	placeholderImage = "https://via.placeholder.com/300x200"

	// fallbackQuery keeps the free-text search meaningful when the caller
	// supplied no textual criteria at all.
	fallbackQuery = "house property apartment"
)

// BuildQuery turns a flat search parameter bag into the free-text query
// and structured filter set for the document store. Only parameters that
// parse as positive integers become numeric filters; everything textual
// feeds the query string.
func BuildQuery(params models.SearchParams) (string, models.SearchFilters) {
	terms := make([]string, 0, 3)
	for _, t := range []string{params.SearchQuery, params.Location, params.Features} {
		if t = strings.TrimSpace(t); t != "" {
			terms = append(terms, t)
		}
	}
	query := strings.Join(terms, " ")
	if query == "" {
		query = fallbackQuery
	}

	filters := models.SearchFilters{Status: models.ListingStatusActive}
	if n, ok := convo.NormalizePrice(params.Budget); ok {
		filters.PriceMax = &n
	}
	if n, ok := convo.PositiveInt(params.Bedrooms); ok {
		filters.BedroomsMin = &n
	}
	if n, ok := convo.PositiveInt(params.Bathrooms); ok {
		filters.BathroomsMin = &n
	}
	return query, filters
}

// Recommend runs a ranked search for the recommendations endpoint.
func (s *DefaultService) Recommend(ctx context.Context, params models.SearchParams) ([]models.PropertyView, error) {
	return s.search(ctx, params, recommendCap)
}

// WebhookSearch runs the same ranked search with the buyer webhook's
// larger result cap.
func (s *DefaultService) WebhookSearch(ctx context.Context, params models.SearchParams) ([]models.PropertyView, error) {
	return s.search(ctx, params, webhookCap)
}

func (s *DefaultService) search(ctx context.Context, params models.SearchParams, limit int) ([]models.PropertyView, error) {
	query, filters := BuildQuery(params)

	hits, err := s.Repo.Search(ctx, query, filters)
	if err != nil {
		utils.GetLogger().Sugar().Errorf("property search %q: %v", query, err)
		return nil, fmt.Errorf("property search failed: %w", err)
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })
	if len(hits) > limit {
		hits = hits[:limit]
	}

	views := make([]models.PropertyView, 0, len(hits))
	for _, hit := range hits {
		views = append(views, viewOf(hit))
	}
	return views, nil
}

// viewOf renders a search hit for buyers: formatted price, zero-filled
// numeric fields and a placeholder for a missing image.
func viewOf(hit models.ScoredListing) models.PropertyView {
	l := hit.Listing
	image := l.Image
	if image == "" {
		image = placeholderImage
	}
	features := l.Features
	if features == nil {
		features = []string{}
	}
	return models.PropertyView{
		ID:          l.ID,
		Title:       l.Title,
		Address:     l.Address,
		Price:       utils.FormatPrice(l.Price),
		Bedrooms:    l.Bedrooms,
		Bathrooms:   l.Bathrooms,
		Sqft:        l.SquareFootage,
		Features:    features,
		Description: l.Description,
		Image:       image,
		Status:      l.Status,
		Score:       hit.Score,
	}
}
