package engine

import (
	"context"
	"fmt"
	"strings"
	"sync"

	genai "github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

const geminiSystemPrompt = `You are a real-estate assistant. Guide sellers through ` +
	`listing a property (property type, street address, city, state, zip, asking price, ` +
	`bedrooms, bathrooms, square footage, description) and buyers through describing ` +
	`what they want to purchase. Ask for one detail at a time.`

// GeminiEngine adapts Gemini to the Engine interface. Sessions are local:
// each holds its own chat history keyed by a generated ID.
type GeminiEngine struct {
	model *genai.GenerativeModel

	mu       sync.Mutex
	sessions map[string]*genai.ChatSession
}

func NewGeminiEngine(apiKey string) (*GeminiEngine, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel("models/gemini-1.5-pro")
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(geminiSystemPrompt)},
	}

	return &GeminiEngine{
		model:    model,
		sessions: make(map[string]*genai.ChatSession),
	}, nil
}

// CreateSession starts a fresh chat and returns its generated ID.
func (g *GeminiEngine) CreateSession(ctx context.Context) (string, error) {
	id := uuid.New().String()

	g.mu.Lock()
	g.sessions[id] = g.model.StartChat()
	g.mu.Unlock()

	return id, nil
}

// SendMessage forwards one user message to the session's chat and returns
// the generated text. Gemini carries no structured actions or variables.
func (g *GeminiEngine) SendMessage(ctx context.Context, text, sessionID string) (*Reply, error) {
	g.mu.Lock()
	chat, ok := g.sessions[sessionID]
	g.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("unknown session %q", sessionID)
	}

	resp, err := chat.SendMessage(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("gemini generate error: %w", err)
	}

	var sb strings.Builder
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if textPart, ok := part.(genai.Text); ok {
				sb.WriteString(string(textPart))
			}
		}
	}

	return &Reply{Text: sb.String(), SessionID: sessionID}, nil
}

// DeleteSession drops the chat history.
func (g *GeminiEngine) DeleteSession(ctx context.Context, sessionID string) error {
	g.mu.Lock()
	delete(g.sessions, sessionID)
	g.mu.Unlock()
	return nil
}
