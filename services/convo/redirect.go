package convo

import (
	"net/url"

	"realtorbot/models"
)

// BuildSearchRedirect serializes the non-empty criteria fields into a
// canonical query string appended to the listing-browser route. Empty
// fields never appear in the link.
func BuildSearchRedirect(route string, criteria models.SearchCriteria) string {
	values := url.Values{}

	if criteria.Location != "" {
		values.Set("location", criteria.Location)
	}
	if criteria.PriceMin != "" {
		values.Set("price_min", criteria.PriceMin)
	}
	if criteria.PriceMax != "" {
		values.Set("price_max", criteria.PriceMax)
	}
	if criteria.BedroomsMin != "" {
		values.Set("bedrooms_min", criteria.BedroomsMin)
	}
	if criteria.BathroomsMin != "" {
		values.Set("bathrooms_min", criteria.BathroomsMin)
	}
	if criteria.PropertyType != "" {
		values.Set("property_type", criteria.PropertyType)
	}
	if criteria.FeaturesText != "" {
		values.Set("features", criteria.FeaturesText)
	}

	if len(values) == 0 {
		return route
	}
	return route + "?" + values.Encode()
}
