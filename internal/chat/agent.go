package chat

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	AgentMock   = "mock"
	AgentOpenAI = "openai"
	AgentCustom = "custom"

	defaultAgentTimeout = 60 * time.Second
)

// AgentConfig selects and configures an agent.
type AgentConfig struct {
	Type          string
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string
	Endpoint      string
	APIKey        string
	HTTPClient    *http.Client
}

// NewAgent builds the configured agent. A missing credential or endpoint
// falls back to the mock agent with a warning, as does an unknown type.
func NewAgent(cfg AgentConfig, logger *slog.Logger) Agent {
	if logger == nil {
		logger = slog.Default()
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultAgentTimeout}
	}

	switch cfg.Type {
	case AgentOpenAI:
		if cfg.OpenAIAPIKey == "" {
			logger.Warn("OpenAI API key not found, falling back to mock agent")
			return NewMockAgent()
		}
		return NewOpenAIAgent(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL, client)
	case AgentCustom:
		if cfg.Endpoint == "" {
			logger.Warn("custom chat endpoint not found, falling back to mock agent")
			return NewMockAgent()
		}
		return NewCustomAPIAgent(cfg.Endpoint, cfg.APIKey, client)
	case "", AgentMock:
		return NewMockAgent()
	default:
		logger.Warn("unknown chat agent type, falling back to mock agent", slog.String("type", cfg.Type))
		return NewMockAgent()
	}
}

// MockAgent echoes the message back. It is deterministic apart from ids and
// timestamps.
type MockAgent struct {
	now func() time.Time
}

func NewMockAgent() *MockAgent {
	return &MockAgent{now: time.Now}
}

func (a *MockAgent) Name() string { return AgentMock }

func (a *MockAgent) SendMessage(ctx context.Context, message string, _ Context) (*Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &Message{
		ID:        uuid.NewString(),
		Role:      RoleAssistant,
		Content:   fmt.Sprintf("This is a mock response to: %q\n\nSet CHAT_AGENT_TYPE to openai or custom to connect a real agent.", message),
		Timestamp: a.now().UTC(),
	}, nil
}
