// Package engine wraps the external dialogue service behind a small
// session-oriented interface. Two backends exist: the hosted assistant
// HTTP API and Gemini; both are black boxes to the rest of the service.
package engine

import "context"

// Action is a structured directive a dialogue-engine reply may carry,
// signaling an intended backend operation.
type Action struct {
	Name       string            `json:"name"`
	Parameters map[string]string `json:"parameters,omitempty"`
}

// Reply is the engine's answer to one user message: free text plus
// optional action directives and context variables accumulated over the
// conversation.
type Reply struct {
	Text      string            `json:"text"`
	Actions   []Action          `json:"actions,omitempty"`
	Variables map[string]string `json:"variables,omitempty"`
	SessionID string            `json:"sessionId"`
}

// Engine is one dialogue-engine session lifecycle: create, exchange
// messages one at a time, delete on teardown. No retries; failures
// surface immediately.
type Engine interface {
	CreateSession(ctx context.Context) (string, error)
	SendMessage(ctx context.Context, text, sessionID string) (*Reply, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
