package convo

import (
	"testing"

	"realtorbot/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildSearchRedirect(t *testing.T) {
	criteria := models.SearchCriteria{
		Location:     "Irving",
		PriceMax:     "500000",
		BedroomsMin:  "4",
		PropertyType: "House",
	}

	got := BuildSearchRedirect("/listings", criteria)
	assert.Equal(t, "/listings?bedrooms_min=4&location=Irving&price_max=500000&property_type=House", got)
}

func TestBuildSearchRedirectSkipsEmptyFields(t *testing.T) {
	got := BuildSearchRedirect("/listings", models.SearchCriteria{Location: "Dallas"})
	assert.Equal(t, "/listings?location=Dallas", got)
	assert.NotContains(t, got, "price_max")
}

func TestBuildSearchRedirectEmptyCriteria(t *testing.T) {
	assert.Equal(t, "/listings", BuildSearchRedirect("/listings", models.SearchCriteria{}))
}

func TestBuildSearchRedirectEscapesValues(t *testing.T) {
	got := BuildSearchRedirect("/listings", models.SearchCriteria{
		Location:     "San Antonio",
		FeaturesText: "pool, garage",
	})
	assert.Equal(t, "/listings?features=pool%2C+garage&location=San+Antonio", got)
}
