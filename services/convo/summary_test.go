package convo

import (
	"testing"

	"realtorbot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingSummaryFixture = "Thank you for providing this information. Here is what I have:\r\n" +
	"**Property Type**: House\r\n" +
	"**Street**: 123 Main St\r\n" +
	"**City**: Irving\r\n" +
	"**State**: TX\r\n" +
	"**Zip**: 75038\r\n" +
	"**Price**: 450000\r\n" +
	"**Bedrooms**: 3\r\n" +
	"**Bathrooms**: 2\r\n" +
	"**Square Footage**: 1800\r\n" +
	"**Description**: Cozy family home\r\n" +
	"Shall we proceed with creating this listing?"

func TestParseListingSummary(t *testing.T) {
	draft, ok := ParseListingSummary(listingSummaryFixture)
	require.True(t, ok)

	assert.Equal(t, "House", draft.PropertyType)
	assert.Equal(t, "123 Main St", draft.Street)
	assert.Equal(t, "Irving", draft.City)
	assert.Equal(t, "TX", draft.State)
	assert.Equal(t, "75038", draft.Zip)
	assert.Equal(t, "450000", draft.Price)
	assert.Equal(t, "3", draft.Bedrooms)
	assert.Equal(t, "2", draft.Bathrooms)
	assert.Equal(t, "1800", draft.SquareFootage)
	assert.Equal(t, "Cozy family home", draft.Description)
}

func TestParseListingSummaryRejectsWrongGreeting(t *testing.T) {
	_, ok := ParseListingSummary("Here is what I have:\nStreet: 123 Main St")
	assert.False(t, ok)
}

func TestParseListingSummaryRejectsIncompleteDraft(t *testing.T) {
	text := "Thank you for providing this information.\n" +
		"Property Type: House\n" +
		"Street: 123 Main St\n"
	_, ok := ParseListingSummary(text)
	assert.False(t, ok)
}

func TestParseSearchCriteria(t *testing.T) {
	criteria, ok := ParseSearchCriteria(
		"Searching for properties with budget: 500000; location: Irving; bathrooms: 5; bedrooms: 4; type: House")
	require.True(t, ok)

	assert.Equal(t, models.SearchCriteria{
		PriceMax:     "500000",
		Location:     "Irving",
		BathroomsMin: "5",
		BedroomsMin:  "4",
		PropertyType: "House",
	}, criteria)
}

func TestParseSearchCriteriaBelowThreshold(t *testing.T) {
	// A single matched field is treated as an incidental word hit.
	_, ok := ParseSearchCriteria("location: Dallas")
	assert.False(t, ok)

	_, ok = ParseSearchCriteria("the price: of freedom")
	assert.False(t, ok)
}

func TestParseSearchCriteriaCommaSeparated(t *testing.T) {
	criteria, ok := ParseSearchCriteria("budget: 300000, city: Plano")
	require.True(t, ok)
	assert.Equal(t, "300000", criteria.PriceMax)
	assert.Equal(t, "Plano", criteria.Location)
}
