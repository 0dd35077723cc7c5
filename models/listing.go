package models

import "time"

// ListingStatusActive is the status every newly created listing gets.
const ListingStatusActive = "active"

// ListingDraft is an in-progress, unpersisted record assembled from
// conversation turns. All fields are the raw strings the user provided;
// normalization happens in the creation handler.
type ListingDraft struct {
	PropertyType  string `json:"propertyType"`
	Street        string `json:"street"`
	City          string `json:"city"`
	State         string `json:"state"`
	Zip           string `json:"zip"`
	Price         string `json:"price"`
	Bedrooms      string `json:"bedrooms"`
	Bathrooms     string `json:"bathrooms"`
	SquareFootage string `json:"squareFootage"`
	Description   string `json:"description"`
}

// Fields returns the draft as a flat field bag keyed by canonical names.
func (d ListingDraft) Fields() map[string]string {
	return map[string]string{
		"propertyType":  d.PropertyType,
		"street":        d.Street,
		"city":          d.City,
		"state":         d.State,
		"zip":           d.Zip,
		"price":         d.Price,
		"bedrooms":      d.Bedrooms,
		"bathrooms":     d.Bathrooms,
		"squareFootage": d.SquareFootage,
		"description":   d.Description,
	}
}

// Listing is the persisted property record. Created only by the listing
// creation handler after an explicit confirmation; ID is immutable.
type Listing struct {
	ID            string    `bson:"id" json:"id"`
	Title         string    `bson:"title" json:"title"`
	PropertyType  string    `bson:"propertyType" json:"propertyType"`
	Address       string    `bson:"address" json:"address"`
	Street        string    `bson:"street" json:"street"`
	City          string    `bson:"city" json:"city"`
	State         string    `bson:"state" json:"state"`
	Zip           string    `bson:"zip" json:"zip"`
	Price         int       `bson:"price" json:"price"`
	Bedrooms      int       `bson:"bedrooms" json:"bedrooms"`
	Bathrooms     int       `bson:"bathrooms" json:"bathrooms"`
	SquareFootage int       `bson:"squareFootage" json:"squareFootage"`
	Description   string    `bson:"description" json:"description"`
	Features      []string  `bson:"features" json:"features"`
	Status        string    `bson:"status" json:"status"`
	SellerID      string    `bson:"seller_id" json:"seller_id"`
	Image         string    `bson:"image,omitempty" json:"image,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

// ScoredListing is a listing together with its relevance score from a
// ranked search. Never persisted.
type ScoredListing struct {
	Listing Listing
	Score   float64
}

// PropertyView is the buyer-facing rendering of a search hit or a freshly
// created listing: price carries thousands separators, numeric fields
// default to zero and a placeholder stands in for a missing image.
type PropertyView struct {
	ID          string   `json:"id"`
	Title       string   `json:"title,omitempty"`
	Address     string   `json:"address"`
	Price       string   `json:"price"`
	Bedrooms    int      `json:"bedrooms"`
	Bathrooms   int      `json:"bathrooms"`
	Sqft        int      `json:"sqft"`
	Features    []string `json:"features"`
	Description string   `json:"description"`
	Image       string   `json:"image,omitempty"`
	Status      string   `json:"status,omitempty"`
	Score       float64  `json:"score"`
}
