package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultOpenAIModel   = "gpt-4"
	DefaultOpenAIBaseURL = "https://api.openai.com/v1"

	systemPrompt = "You are a helpful assistant for managing Arcade tools."
)

type oaiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type oaiRequest struct {
	Model    string       `json:"model"`
	Messages []oaiMessage `json:"messages"`
}

type oaiResponse struct {
	Choices []struct {
		Message oaiMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// OpenAIAgent talks to an OpenAI-compatible chat completions endpoint.
type OpenAIAgent struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
	now     func() time.Time
}

func NewOpenAIAgent(apiKey, model, baseURL string, client *http.Client) *OpenAIAgent {
	if model == "" {
		model = DefaultOpenAIModel
	}
	if baseURL == "" {
		baseURL = DefaultOpenAIBaseURL
	}
	if client == nil {
		client = &http.Client{Timeout: defaultAgentTimeout}
	}
	return &OpenAIAgent{
		apiKey:  apiKey,
		model:   model,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		now:     time.Now,
	}
}

func (a *OpenAIAgent) Name() string { return AgentOpenAI }

func (a *OpenAIAgent) SendMessage(ctx context.Context, message string, cc Context) (*Message, error) {
	msgs := make([]oaiMessage, 0, len(cc.History)+2)
	msgs = append(msgs, oaiMessage{Role: string(RoleSystem), Content: systemPrompt})
	for _, m := range cc.History {
		if m.Role == RoleSystem || m.Error != "" {
			continue
		}
		msgs = append(msgs, oaiMessage{Role: string(m.Role), Content: m.Content})
	}
	msgs = append(msgs, oaiMessage{Role: string(RoleUser), Content: message})

	body, err := json.Marshal(oaiRequest{Model: a.model, Messages: msgs})
	if err != nil {
		return nil, fmt.Errorf("marshal openai request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create openai request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.apiKey)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read openai response: %w", err)
	}

	var out oaiResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode openai response (status %d): %w", resp.StatusCode, err)
	}
	if out.Error != nil {
		return nil, fmt.Errorf("openai error: %s", out.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openai API error: %s", resp.Status)
	}
	if len(out.Choices) == 0 {
		return nil, errors.New("openai returned no choices")
	}

	return &Message{
		ID:        uuid.NewString(),
		Role:      RoleAssistant,
		Content:   out.Choices[0].Message.Content,
		Timestamp: a.now().UTC(),
	}, nil
}
