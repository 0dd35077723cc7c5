package listing

import (
	"context"
	"strconv"
	"testing"
	"time"

	"realtorbot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildQuery(t *testing.T) {
	query, filters := BuildQuery(models.SearchParams{
		Budget:   "$500,000",
		Bedrooms: "3",
		Location: "Dallas",
	})

	assert.Contains(t, query, "Dallas")
	assert.Equal(t, models.ListingStatusActive, filters.Status)
	require.NotNil(t, filters.PriceMax)
	assert.Equal(t, 500000, *filters.PriceMax)
	require.NotNil(t, filters.BedroomsMin)
	assert.Equal(t, 3, *filters.BedroomsMin)
	assert.Nil(t, filters.BathroomsMin)
}

func TestBuildQuerySevenFigureBudget(t *testing.T) {
	_, filters := BuildQuery(models.SearchParams{Budget: "1000000", Location: "Austin"})
	require.NotNil(t, filters.PriceMax)
	assert.Equal(t, 1000000, *filters.PriceMax)
}

func TestBuildQueryFallback(t *testing.T) {
	query, filters := BuildQuery(models.SearchParams{Budget: "whatever"})
	assert.Equal(t, fallbackQuery, query)
	assert.Nil(t, filters.PriceMax, "unparseable budget never becomes a filter")
}

func scoredHits(scores ...float64) []models.ScoredListing {
	hits := make([]models.ScoredListing, 0, len(scores))
	for i, s := range scores {
		hits = append(hits, models.ScoredListing{
			Listing: models.Listing{
				ID:        strconv.Itoa(i),
				Price:     100000 * (i + 1),
				CreatedAt: time.Now(),
			},
			Score: s,
		})
	}
	return hits
}

func TestSearchRanking(t *testing.T) {
	repo := &fakeRepo{hits: scoredHits(0.9, 0.95, 0.2)}
	svc := &DefaultService{Repo: repo}

	views, err := svc.Recommend(context.Background(), models.SearchParams{Location: "Dallas"})
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, []float64{0.95, 0.9, 0.2}, []float64{views[0].Score, views[1].Score, views[2].Score})
}

func TestSearchCaps(t *testing.T) {
	repo := &fakeRepo{hits: scoredHits(0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0)}
	svc := &DefaultService{Repo: repo}

	recommended, err := svc.Recommend(context.Background(), models.SearchParams{Location: "Dallas"})
	require.NoError(t, err)
	assert.Len(t, recommended, recommendCap)

	webhook, err := svc.WebhookSearch(context.Background(), models.SearchParams{Location: "Dallas"})
	require.NoError(t, err)
	assert.Len(t, webhook, webhookCap)
}

func TestSearchHitFormatting(t *testing.T) {
	repo := &fakeRepo{hits: []models.ScoredListing{{
		Listing: models.Listing{
			ID:      "1",
			Title:   "house at 42 Elm St",
			Address: "42 Elm St, Plano, TX, 75074",
			Price:   1200000,
		},
		Score: 0.7,
	}}}
	svc := &DefaultService{Repo: repo}

	views, err := svc.Recommend(context.Background(), models.SearchParams{Location: "Plano"})
	require.NoError(t, err)
	require.Len(t, views, 1)

	view := views[0]
	assert.Equal(t, "$1,200,000", view.Price)
	assert.Equal(t, placeholderImage, view.Image)
	assert.NotNil(t, view.Features)
	assert.Zero(t, view.Bedrooms)
}

func TestSearchEmptyResult(t *testing.T) {
	repo := &fakeRepo{}
	svc := &DefaultService{Repo: repo}

	views, err := svc.WebhookSearch(context.Background(), models.SearchParams{Location: "Nowhere"})
	require.NoError(t, err)
	assert.Empty(t, views, "zero hits is a valid empty state")
}
