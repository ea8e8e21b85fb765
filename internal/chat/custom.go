package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type customRequest struct {
	Message string  `json:"message"`
	Context Context `json:"context"`
}

type customResponse struct {
	ID        string     `json:"id"`
	Content   string     `json:"content"`
	Message   string     `json:"message"`
	Timestamp *time.Time `json:"timestamp"`
	ToolCalls []ToolCall `json:"tool_calls"`
}

// CustomAPIAgent forwards messages to a user supplied HTTP endpoint.
type CustomAPIAgent struct {
	endpoint string
	apiKey   string
	client   *http.Client
	now      func() time.Time
}

func NewCustomAPIAgent(endpoint, apiKey string, client *http.Client) *CustomAPIAgent {
	if client == nil {
		client = &http.Client{Timeout: defaultAgentTimeout}
	}
	return &CustomAPIAgent{endpoint: endpoint, apiKey: apiKey, client: client, now: time.Now}
}

func (a *CustomAPIAgent) Name() string { return AgentCustom }

func (a *CustomAPIAgent) SendMessage(ctx context.Context, message string, cc Context) (*Message, error) {
	body, err := json.Marshal(customRequest{Message: message, Context: cc})
	if err != nil {
		return nil, fmt.Errorf("marshal agent request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create agent request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if a.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+a.apiKey)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("agent request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("custom API error: %s", resp.Status)
	}

	var out customResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode agent response: %w", err)
	}

	msg := &Message{
		ID:        out.ID,
		Role:      RoleAssistant,
		Content:   out.Content,
		ToolCalls: out.ToolCalls,
	}
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.Content == "" {
		msg.Content = out.Message
	}
	if out.Timestamp != nil {
		msg.Timestamp = out.Timestamp.UTC()
	} else {
		msg.Timestamp = a.now().UTC()
	}
	return msg, nil
}
