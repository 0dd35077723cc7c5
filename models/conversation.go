package models

// ConversationState is the per-session mutable state of the chat pipeline.
// It is owned by exactly one conversation at a time and reset on flow
// change or session teardown.
type ConversationState struct {
	IsListingFlow bool              `json:"isListingFlow"`
	CurrentStep   int               `json:"currentStep"`
	Fields        map[string]string `json:"fields"`

	// AwaitingConfirmation is set when a completed draft has been presented
	// and the next seller "yes" should create the listing.
	AwaitingConfirmation bool `json:"awaitingConfirmation"`

	// LastCriteria holds the most recent successfully parsed search
	// criteria, used by the redirect builder.
	LastCriteria *SearchCriteria `json:"lastCriteria,omitempty"`
}

// NewConversationState returns a fresh state with CurrentStep unset.
func NewConversationState() *ConversationState {
	return &ConversationState{
		CurrentStep: -1,
		Fields:      make(map[string]string),
	}
}

// ResetFlow clears all extracted data while keeping the session alive.
func (s *ConversationState) ResetFlow() {
	s.IsListingFlow = false
	s.CurrentStep = -1
	s.Fields = make(map[string]string)
	s.AwaitingConfirmation = false
	s.LastCriteria = nil
}
