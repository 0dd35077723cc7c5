package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"realtorbot/utils"

	"go.uber.org/zap"
)

var instancePathRe = regexp.MustCompile(`/instances/.+$`)

// AssistantClient talks to the hosted assistant v2 HTTP API. Requests
// authenticate with basic auth ("apikey" + key) against a versioned,
// environment-scoped URL.
type AssistantClient struct {
	serviceURL    string
	apiKey        string
	environmentID string
	apiVersion    string
	httpClient    *http.Client
}

// NewAssistantClient builds a client for the given assistant environment.
// The shared HTTP client carries no timeout: an unresponsive engine blocks
// the conversation until the caller's context is canceled.
func NewAssistantClient(serviceURL, apiKey, environmentID, apiVersion string) *AssistantClient {
	return &AssistantClient{
		serviceURL:    serviceURL,
		apiKey:        apiKey,
		environmentID: environmentID,
		apiVersion:    apiVersion,
		httpClient:    &http.Client{},
	}
}

func (a *AssistantClient) baseURL() string {
	return instancePathRe.ReplaceAllString(a.serviceURL, "")
}

func (a *AssistantClient) do(ctx context.Context, method, url string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal assistant request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("build assistant request: %w", err)
	}
	req.SetBasicAuth("apikey", a.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("assistant request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("assistant returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode assistant response: %w", err)
		}
	}
	return nil
}

// CreateSession opens a new assistant session and returns its ID.
func (a *AssistantClient) CreateSession(ctx context.Context) (string, error) {
	url := fmt.Sprintf("%s/v2/assistants/%s/sessions?version=%s", a.baseURL(), a.environmentID, a.apiVersion)

	var result struct {
		SessionID string `json:"session_id"`
	}
	if err := a.do(ctx, http.MethodPost, url, map[string]any{}, &result); err != nil {
		return "", err
	}

	utils.GetLogger().Debug("assistant session created", zap.String("sessionId", result.SessionID))
	return result.SessionID, nil
}

// assistantMessageResponse mirrors the relevant slice of the assistant v2
// message payload.
type assistantMessageResponse struct {
	Output struct {
		Generic []struct {
			ResponseType string `json:"response_type"`
			Text         string `json:"text"`
		} `json:"generic"`
		Actions []struct {
			Name       string         `json:"name"`
			Action     string         `json:"action"`
			Parameters map[string]any `json:"parameters"`
		} `json:"actions"`
	} `json:"output"`
	Context map[string]any `json:"context"`
}

// SendMessage sends one user message to the session and flattens the
// reply into text, action directives and string context variables.
func (a *AssistantClient) SendMessage(ctx context.Context, text, sessionID string) (*Reply, error) {
	url := fmt.Sprintf("%s/v2/assistants/%s/sessions/%s/message?version=%s",
		a.baseURL(), a.environmentID, sessionID, a.apiVersion)

	body := map[string]any{
		"input": map[string]any{
			"message_type": "text",
			"text":         text,
		},
	}

	var raw assistantMessageResponse
	if err := a.do(ctx, http.MethodPost, url, body, &raw); err != nil {
		return nil, err
	}

	reply := &Reply{SessionID: sessionID, Variables: flattenContext(raw.Context)}

	for _, g := range raw.Output.Generic {
		if g.ResponseType == "text" {
			reply.Text = g.Text
			break
		}
	}

	for _, act := range raw.Output.Actions {
		name := act.Name
		if name == "" {
			name = act.Action
		}
		reply.Actions = append(reply.Actions, Action{
			Name:       name,
			Parameters: stringifyParams(act.Parameters),
		})
	}

	return reply, nil
}

// DeleteSession tears down the assistant session.
func (a *AssistantClient) DeleteSession(ctx context.Context, sessionID string) error {
	url := fmt.Sprintf("%s/v2/assistants/%s/sessions/%s?version=%s",
		a.baseURL(), a.environmentID, sessionID, a.apiVersion)
	return a.do(ctx, http.MethodDelete, url, nil, nil)
}

// flattenContext pulls string-valued variables out of the assistant
// context. Variables live either under a "global" sub-object or at the
// root, depending on the assistant version.
func flattenContext(ctx map[string]any) map[string]string {
	if ctx == nil {
		return nil
	}
	scope := ctx
	if global, ok := ctx["global"].(map[string]any); ok {
		scope = global
	}
	return stringifyParams(scope)
}

func stringifyParams(in map[string]any) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		switch val := v.(type) {
		case string:
			out[k] = val
		case float64:
			// Decimal notation always; %v would flip to exponent form at
			// 1e6 and mangle large budgets downstream.
			out[k] = strconv.FormatFloat(val, 'f', -1, 64)
		case bool:
			out[k] = strconv.FormatBool(val)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
