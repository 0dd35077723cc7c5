package convo

import (
	"strings"

	"realtorbot/models"
)

// listingSummaryGreeting is the fixed prefix of the listing-confirmation
// summary the dialogue engine emits once all details are collected.
const listingSummaryGreeting = "Thank you for providing this information."

// listingLabels maps the summary's display labels, lowercased, to
// canonical field names.
var listingLabels = map[string]string{
	"property type":  "propertyType",
	"street":         "street",
	"city":           "city",
	"state":          "state",
	"zip":            "zip",
	"price":          "price",
	"bedrooms":       "bedrooms",
	"bathrooms":      "bathrooms",
	"square footage": "squareFootage",
	"description":    "description",
}

// ParseListingSummary extracts a full draft from the engine's
// listing-confirmation summary. The text must begin with the fixed
// greeting; the remainder is markdown-emphasis- and CR-stripped, split
// into "Label: value" lines, and a trailing "proceed?" line is dropped.
// ok is true only when the resulting draft carries every required field.
func ParseListingSummary(text string) (models.ListingDraft, bool) {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, listingSummaryGreeting) {
		return models.ListingDraft{}, false
	}

	rest := strings.TrimPrefix(trimmed, listingSummaryGreeting)
	rest = strings.ReplaceAll(rest, "**", "")
	rest = strings.ReplaceAll(rest, "\r", "")

	fields := make(map[string]string)
	for _, line := range strings.Split(rest, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.Contains(strings.ToLower(line), "proceed") {
			continue
		}

		label, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		canonical, known := listingLabels[strings.ToLower(strings.TrimSpace(label))]
		if !known {
			continue
		}
		fields[canonical] = strings.TrimSpace(value)
	}

	if !IsComplete(fields) {
		return models.ListingDraft{}, false
	}
	return DraftFromFields(fields), true
}

// criteriaField identifies which search-criteria field a fragment key
// refers to. Multi-word synonyms are tested before their substrings.
func criteriaField(key string) string {
	switch {
	case strings.Contains(key, "bathroom"):
		return "bathroomsMin"
	case strings.Contains(key, "bedroom"):
		return "bedroomsMin"
	case strings.Contains(key, "property type"), strings.Contains(key, "type"):
		return "propertyType"
	case strings.Contains(key, "max budget"), strings.Contains(key, "budget"), strings.Contains(key, "price"):
		return "priceMax"
	case strings.Contains(key, "location"), strings.Contains(key, "city"):
		return "location"
	default:
		return ""
	}
}

// minCriteriaFields is the acceptance threshold for the search-criteria
// format; fewer matches are treated as incidental word hits and the
// candidate is discarded.
const minCriteriaFields = 2

// ParseSearchCriteria extracts search criteria from a bot turn of the
// form "... budget: 500000; location: Irving; bedrooms: 4". Fragments
// are separated by ";" or ","; keys match a synonym table. ok is false
// below the minimum-field threshold.
func ParseSearchCriteria(text string) (models.SearchCriteria, bool) {
	fragments := strings.FieldsFunc(text, func(r rune) bool {
		return r == ';' || r == ','
	})

	var criteria models.SearchCriteria
	matched := 0
	for _, frag := range fragments {
		key, value, found := strings.Cut(frag, ":")
		if !found {
			continue
		}
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}

		switch criteriaField(strings.ToLower(strings.TrimSpace(key))) {
		case "priceMax":
			criteria.PriceMax = value
			matched++
		case "location":
			criteria.Location = value
			matched++
		case "bedroomsMin":
			criteria.BedroomsMin = value
			matched++
		case "bathroomsMin":
			criteria.BathroomsMin = value
			matched++
		case "propertyType":
			criteria.PropertyType = value
			matched++
		}
	}

	if matched < minCriteriaFields {
		return models.SearchCriteria{}, false
	}
	return criteria, true
}
