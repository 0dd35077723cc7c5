package convo

import "realtorbot/models"

// DraftFromFields assembles a draft from a flat field bag keyed by
// canonical names.
func DraftFromFields(fields map[string]string) models.ListingDraft {
	return models.ListingDraft{
		PropertyType:  fields["propertyType"],
		Street:        fields["street"],
		City:          fields["city"],
		State:         fields["state"],
		Zip:           fields["zip"],
		Price:         fields["price"],
		Bedrooms:      fields["bedrooms"],
		Bathrooms:     fields["bathrooms"],
		SquareFootage: fields["squareFootage"],
		Description:   fields["description"],
	}
}

// PendingDraft is the confirmation gate's predicate: it returns the
// assembled draft when the extracted state satisfies the required-field
// completeness check for a listing flow. The caller presents the draft
// and waits for an explicit accept before anything is written.
func PendingDraft(state *models.ConversationState) (models.ListingDraft, bool) {
	if !IsComplete(state.Fields) {
		return models.ListingDraft{}, false
	}
	return DraftFromFields(state.Fields), true
}

// CancelDraft clears the extracted fields without any write. The session
// itself stays alive.
func CancelDraft(state *models.ConversationState) {
	state.Fields = make(map[string]string)
	state.AwaitingConfirmation = false
}
