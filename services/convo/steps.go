// Package convo is the pure conversation pipeline: transcript tracking,
// field extraction, summary pattern matching, the confirmation gate and
// the search redirect builder. Everything here is deterministic and free
// of transport concerns; both the message handler and the webhook path
// call into this package instead of duplicating the logic.
package convo

import "strings"

// promptStep pairs a known bot-prompt fragment with the field the next
// user turn should fill.
type promptStep struct {
	Fragment string
	Field    string
}

// promptSteps is the fixed listing-flow prompt template, in order.
// Matching is containment, not anchored progression: a repeated or
// reordered prompt can legitimately move the step backward.
var promptSteps = []promptStep{
	{Fragment: "type of property", Field: "propertyType"},
	{Fragment: "street address", Field: "street"},
	{Fragment: "which city", Field: "city"},
	{Fragment: "which state", Field: "state"},
	{Fragment: "zip code", Field: "zip"},
	{Fragment: "asking price", Field: "price"},
	{Fragment: "how many bedrooms", Field: "bedrooms"},
	{Fragment: "how many bathrooms", Field: "bathrooms"},
	{Fragment: "square footage", Field: "squareFootage"},
	{Fragment: "short description", Field: "description"},
}

// requiredFields must all be non-empty (post-trim) for a draft to be
// complete.
var requiredFields = []string{"propertyType", "street", "city", "state", "zip", "price"}

// MatchStep tests each template fragment, in template order, for
// case-insensitive containment in the bot turn text. The first match
// wins; no match reports ok=false and the caller leaves the step alone.
func MatchStep(text string) (int, bool) {
	lower := strings.ToLower(text)
	for i, step := range promptSteps {
		if strings.Contains(lower, step.Fragment) {
			return i, true
		}
	}
	return 0, false
}

// FieldForStep maps a step index to its canonical field name.
func FieldForStep(step int) (string, bool) {
	if step < 0 || step >= len(promptSteps) {
		return "", false
	}
	return promptSteps[step].Field, true
}

// IsComplete reports whether every required field is present and
// non-empty after trimming.
func IsComplete(fields map[string]string) bool {
	for _, name := range requiredFields {
		if strings.TrimSpace(fields[name]) == "" {
			return false
		}
	}
	return true
}
