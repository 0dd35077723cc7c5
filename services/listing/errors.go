package listing

import "strings"

// MissingFieldsError reports the required draft fields that were absent
// when creation was attempted. Nothing is persisted when it is returned.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// InvalidPriceError signals that the draft's price did not normalize to a
// positive integer.
type InvalidPriceError struct {
	Raw string
}

func (e *InvalidPriceError) Error() string {
	return "invalid price: " + e.Raw
}

// ForbiddenError signals an operation on a listing the caller does not own.
type ForbiddenError struct {
	ListingID string
}

func (e *ForbiddenError) Error() string {
	return "not the owner of listing " + e.ListingID
}
