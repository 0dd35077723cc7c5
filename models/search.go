package models

// SearchCriteria is the output of the search-criteria summary parser.
// Values are the raw strings extracted from the bot summary; numeric
// fields are validated when the filter set is built.
type SearchCriteria struct {
	Location     string `json:"location,omitempty"`
	PriceMin     string `json:"priceMin,omitempty"`
	PriceMax     string `json:"priceMax,omitempty"`
	BedroomsMin  string `json:"bedroomsMin,omitempty"`
	BathroomsMin string `json:"bathroomsMin,omitempty"`
	PropertyType string `json:"propertyType,omitempty"`
	FeaturesText string `json:"featuresText,omitempty"`
}

// SearchParams is the flat parameter bag a search action or the
// recommendations endpoint carries.
type SearchParams struct {
	Budget      string `json:"budget,omitempty"`
	Location    string `json:"location,omitempty"`
	Bedrooms    string `json:"bedrooms,omitempty"`
	Bathrooms   string `json:"bathrooms,omitempty"`
	Features    string `json:"features,omitempty"`
	SearchQuery string `json:"searchQuery,omitempty"`
}

// SearchFilters is the structured filter set passed to the document
// store. Numeric fields are present only when they parsed as positive
// integers, never zero-filled.
type SearchFilters struct {
	Status       string `json:"status,omitempty"`
	PriceMin     *int   `json:"price_min,omitempty"`
	PriceMax     *int   `json:"price_max,omitempty"`
	BedroomsMin  *int   `json:"bedrooms_min,omitempty"`
	BathroomsMin *int   `json:"bathrooms_min,omitempty"`
	SellerID     string `json:"seller_id,omitempty"`
}
