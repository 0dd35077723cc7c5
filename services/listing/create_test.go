package listing

import (
	"context"
	"testing"

	listingRepo "realtorbot/database/repository/listing"
	"realtorbot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo is an in-memory stand-in for the document store.
type fakeRepo struct {
	indexed     []models.Listing
	hits        []models.ScoredListing
	searchErr   error
	lastQuery   string
	lastFilters models.SearchFilters
}

func (f *fakeRepo) Index(ctx context.Context, l models.Listing) error {
	f.indexed = append(f.indexed, l)
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*models.Listing, error) {
	for i := range f.indexed {
		if f.indexed[i].ID == id {
			return &f.indexed[i], nil
		}
	}
	return nil, listingRepo.ErrNotFound
}

func (f *fakeRepo) Update(ctx context.Context, id string, patch map[string]interface{}) error {
	_, err := f.GetByID(ctx, id)
	return err
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	for i := range f.indexed {
		if f.indexed[i].ID == id {
			f.indexed = append(f.indexed[:i], f.indexed[i+1:]...)
			return nil
		}
	}
	return listingRepo.ErrNotFound
}

func (f *fakeRepo) List(ctx context.Context, page, size int, filters models.SearchFilters) ([]models.Listing, error) {
	return f.indexed, nil
}

func (f *fakeRepo) Search(ctx context.Context, query string, filters models.SearchFilters) ([]models.ScoredListing, error) {
	f.lastQuery = query
	f.lastFilters = filters
	return f.hits, f.searchErr
}

func completeDraft() models.ListingDraft {
	return models.ListingDraft{
		PropertyType:  "House",
		Street:        "123 Main St",
		City:          "Irving",
		State:         "TX",
		Zip:           "75038",
		Price:         "$450,000",
		Bedrooms:      "3",
		Bathrooms:     "2",
		SquareFootage: "1800",
		Description:   "Cozy family home",
	}
}

func TestCreateFromDraft(t *testing.T) {
	repo := &fakeRepo{}
	svc := &DefaultService{Repo: repo}

	view, err := svc.CreateFromDraft(context.Background(), completeDraft(), "seller-1")
	require.NoError(t, err)
	require.Len(t, repo.indexed, 1)

	stored := repo.indexed[0]
	assert.Equal(t, "House at 123 Main St", stored.Title)
	assert.Equal(t, "123 Main St, Irving, TX, 75038", stored.Address)
	assert.Equal(t, 450000, stored.Price)
	assert.Equal(t, 3, stored.Bedrooms)
	assert.Equal(t, 2, stored.Bathrooms)
	assert.Equal(t, 1800, stored.SquareFootage)
	assert.Equal(t, models.ListingStatusActive, stored.Status)
	assert.Equal(t, "seller-1", stored.SellerID)
	assert.Equal(t, "house", stored.PropertyType)
	assert.NotEmpty(t, stored.ID)

	assert.Equal(t, "$450,000", view.Price)
	assert.Equal(t, "House at 123 Main St", view.Title)
}

func TestCreateFromDraftMissingFields(t *testing.T) {
	repo := &fakeRepo{}
	svc := &DefaultService{Repo: repo}

	draft := completeDraft()
	draft.City = " "
	draft.Zip = ""

	_, err := svc.CreateFromDraft(context.Background(), draft, "seller-1")
	var missing *MissingFieldsError
	require.ErrorAs(t, err, &missing)
	assert.ElementsMatch(t, []string{"city", "zip"}, missing.Fields)
	assert.Empty(t, repo.indexed, "nothing may be written on validation failure")
}

func TestCreateFromDraftInvalidPrice(t *testing.T) {
	repo := &fakeRepo{}
	svc := &DefaultService{Repo: repo}

	for _, raw := range []string{"abc", "-5", "0"} {
		draft := completeDraft()
		draft.Price = raw

		_, err := svc.CreateFromDraft(context.Background(), draft, "seller-1")
		var badPrice *InvalidPriceError
		require.ErrorAs(t, err, &badPrice, "price %q", raw)
	}
	assert.Empty(t, repo.indexed)
}

func TestCreateFromDraftOptionalNumericDefaults(t *testing.T) {
	repo := &fakeRepo{}
	svc := &DefaultService{Repo: repo}

	draft := completeDraft()
	draft.Bedrooms = ""
	draft.Bathrooms = "a few"
	draft.SquareFootage = ""

	_, err := svc.CreateFromDraft(context.Background(), draft, "seller-1")
	require.NoError(t, err)

	stored := repo.indexed[0]
	assert.Zero(t, stored.Bedrooms)
	assert.Zero(t, stored.Bathrooms)
	assert.Zero(t, stored.SquareFootage)
}
