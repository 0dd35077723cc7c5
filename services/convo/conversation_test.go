package convo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchStep(t *testing.T) {
	tests := []struct {
		text string
		want int
		ok   bool
	}{
		{"What type of property are you selling?", 0, true},
		{"Great! What is the street address?", 1, true},
		{"And which city is it in?", 2, true},
		{"What is the asking price for the home?", 5, true},
		{"HOW MANY BEDROOMS does it have?", 6, true},
		{"Thanks, noted.", 0, false},
	}

	for _, tt := range tests {
		got, ok := MatchStep(tt.text)
		if got != tt.want || ok != tt.ok {
			t.Errorf("MatchStep(%q) = (%d, %v); want (%d, %v)", tt.text, got, ok, tt.want, tt.ok)
		}
	}
}

func TestObserveBotTurnTracksStep(t *testing.T) {
	conv := NewConversation()

	conv.ObserveBotTurn("What is the street address?")
	assert.Equal(t, 1, conv.State.CurrentStep)

	// An unmatched turn leaves the step untouched.
	conv.ObserveBotTurn("Got it, thanks!")
	assert.Equal(t, 1, conv.State.CurrentStep)

	// Containment matching allows the step to move backward on a
	// repeated earlier prompt.
	conv.ObserveBotTurn("Sorry, what type of property was that again?")
	assert.Equal(t, 0, conv.State.CurrentStep)
}

func TestObserveUserTurnExtractsFields(t *testing.T) {
	conv := NewConversation()

	conv.ObserveBotTurn("What is the street address?")
	conv.ObserveUserTurn("  123 Main St  ")
	assert.Equal(t, "123 Main St", conv.State.Fields["street"])

	// Last write wins per step.
	conv.ObserveUserTurn("456 Oak Ave")
	assert.Equal(t, "456 Oak Ave", conv.State.Fields["street"])

	// Confirmation tokens are never captured as field values.
	conv.ObserveUserTurn("Yes")
	assert.Equal(t, "456 Oak Ave", conv.State.Fields["street"])

	// A flow trigger resets the extracted state instead of writing.
	conv.ObserveUserTurn("Actually I want to sell my other place")
	assert.Empty(t, conv.State.Fields)
	assert.True(t, conv.State.IsListingFlow)
}

func TestObserveUserTurnBeforeAnyPrompt(t *testing.T) {
	conv := NewConversation()
	conv.ObserveUserTurn("hello there")
	assert.Empty(t, conv.State.Fields)
}

func TestTurnLogIsAppendOnly(t *testing.T) {
	conv := NewConversation()
	conv.ObserveUserTurn("hi")
	conv.ObserveBotTurn("What type of property are you selling?")
	conv.ObserveUserTurn("House")

	require.Len(t, conv.Turns, 3)
	assert.Equal(t, "hi", conv.Turns[0].Text)
	assert.Equal(t, "House", conv.Turns[2].Text)
	assert.False(t, conv.Turns[2].Timestamp.Before(conv.Turns[0].Timestamp))
}

func TestIsComplete(t *testing.T) {
	full := map[string]string{
		"propertyType": "house", "street": "123 Main St", "city": "Irving",
		"state": "TX", "zip": "75038", "price": "450000",
	}
	assert.True(t, IsComplete(full))

	// Whitespace does not count as a value.
	partial := map[string]string{
		"propertyType": "house", "street": " ", "city": "Irving",
		"state": "TX", "zip": "75038", "price": "450000",
	}
	assert.False(t, IsComplete(partial))

	assert.False(t, IsComplete(map[string]string{}))
}

func TestMatchFlowTrigger(t *testing.T) {
	assert.Equal(t, FlowListing, MatchFlowTrigger("I want to sell my house"))
	assert.Equal(t, FlowSearch, MatchFlowTrigger("I'm looking for a home in Dallas"))
	assert.Equal(t, FlowNone, MatchFlowTrigger("what's the weather"))
}

func TestParseConfirmation(t *testing.T) {
	yes, ok := ParseConfirmation("  YES ")
	assert.True(t, ok)
	assert.True(t, yes)

	yes, ok = ParseConfirmation("no")
	assert.True(t, ok)
	assert.False(t, yes)

	_, ok = ParseConfirmation("yes please")
	assert.False(t, ok)
}
