package convo

import (
	"strings"
	"time"

	"realtorbot/models"

	"github.com/google/uuid"
)

// Flow identifies which conversation flow a trigger phrase starts.
type Flow int

const (
	FlowNone Flow = iota
	FlowListing
	FlowSearch
)

// listingTriggers and searchTriggers start (and reset) the two flows.
// Matching is case-insensitive containment over the trimmed user turn.
var listingTriggers = []string{
	"sell my house",
	"sell my property",
	"list my house",
	"list my property",
	"create a listing",
	"i want to sell",
}

var searchTriggers = []string{
	"buy a house",
	"buy a home",
	"buy a property",
	"looking for a house",
	"looking for a home",
	"i want to buy",
	"find me a",
}

// Conversation couples the append-only turn log with the mutable
// per-session pipeline state. One conversation owns its state; nothing
// else mutates it.
type Conversation struct {
	State *models.ConversationState `json:"state"`
	Turns []models.Turn             `json:"turns"`
}

// NewConversation returns an empty conversation with fresh state.
func NewConversation() *Conversation {
	return &Conversation{State: models.NewConversationState()}
}

func (c *Conversation) appendTurn(speaker, text string) models.Turn {
	turn := models.Turn{
		ID:        uuid.New().String(),
		Speaker:   speaker,
		Text:      text,
		Timestamp: time.Now(),
	}
	c.Turns = append(c.Turns, turn)
	return turn
}

// ObserveBotTurn records a bot turn and re-infers the current step from
// the prompt template. An unmatched turn leaves the step unchanged.
func (c *Conversation) ObserveBotTurn(text string) models.Turn {
	turn := c.appendTurn(models.SpeakerBot, text)
	if step, ok := MatchStep(text); ok {
		c.State.CurrentStep = step
	}
	return turn
}

// ObserveUserTurn records a user turn and assigns its text to the field
// implied by the current step. Flow triggers reset the state instead of
// writing a field; confirmation tokens are never captured as field
// values. Writes are last-write-wins per step.
func (c *Conversation) ObserveUserTurn(text string) models.Turn {
	turn := c.appendTurn(models.SpeakerUser, text)
	trimmed := strings.TrimSpace(text)

	if flow := MatchFlowTrigger(trimmed); flow != FlowNone {
		c.State.ResetFlow()
		c.State.IsListingFlow = flow == FlowListing
		return turn
	}

	if _, ok := ParseConfirmation(trimmed); ok {
		return turn
	}

	if field, ok := FieldForStep(c.State.CurrentStep); ok && trimmed != "" {
		c.State.Fields[field] = trimmed
	}
	return turn
}

// MatchFlowTrigger reports which flow, if any, the user turn initiates.
func MatchFlowTrigger(text string) Flow {
	lower := strings.ToLower(text)
	for _, phrase := range listingTriggers {
		if strings.Contains(lower, phrase) {
			return FlowListing
		}
	}
	for _, phrase := range searchTriggers {
		if strings.Contains(lower, phrase) {
			return FlowSearch
		}
	}
	return FlowNone
}

// ParseConfirmation recognizes a bare yes/no reply, case-insensitive and
// trimmed. ok is false for anything else.
func ParseConfirmation(text string) (yes bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "yes":
		return true, true
	case "no":
		return false, true
	default:
		return false, false
	}
}
