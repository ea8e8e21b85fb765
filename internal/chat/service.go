package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrEmptyMessage is returned for blank user messages.
var ErrEmptyMessage = errors.New("message is required")

// RateLimitError carries the wait time of a rejected message.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s (retry in %s)", ErrRateLimited, e.RetryAfter.Round(time.Millisecond))
}

func (e *RateLimitError) Unwrap() error { return ErrRateLimited }

// Request is a message sent from the chat widget.
type Request struct {
	Message string  `json:"message"`
	Context Context `json:"context"`
}

// Reply is returned for an accepted message.
type Reply struct {
	ConversationID string  `json:"conversation_id"`
	Agent          string  `json:"agent"`
	Message        Message `json:"message"`
}

// Service routes widget messages to the agent and records the exchange.
type Service struct {
	agent   Agent
	store   *ConversationStore
	limiter *RateLimiter
	logger  *slog.Logger
	now     func() time.Time
}

func NewService(agent Agent, store *ConversationStore, limiter *RateLimiter, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{agent: agent, store: store, limiter: limiter, logger: logger, now: time.Now}
}

func (s *Service) AgentName() string { return s.agent.Name() }

// Send delivers the message to the agent with the stored history attached.
// The user message is stored even when the agent fails.
func (s *Service) Send(ctx context.Context, req Request) (*Reply, error) {
	text := strings.TrimSpace(req.Message)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	cc := req.Context
	if cc.ConversationID == "" {
		cc.ConversationID = uuid.NewString()
	}

	if s.limiter != nil {
		if ok, wait := s.limiter.Allow(cc.ConversationID); !ok {
			return nil, &RateLimitError{RetryAfter: wait}
		}
	}

	history, err := s.store.History(cc.ConversationID)
	if err != nil {
		return nil, err
	}
	cc.History = history

	userMsg := Message{
		ID:        uuid.NewString(),
		Role:      RoleUser,
		Content:   text,
		Timestamp: s.now().UTC(),
	}

	reply, err := s.agent.SendMessage(ctx, text, cc)
	if err != nil {
		if storeErr := s.store.Append(cc.ConversationID, userMsg); storeErr != nil {
			s.logger.Error("failed to store chat message", slog.String("conversation_id", cc.ConversationID), slog.Any("error", storeErr))
		}
		return nil, fmt.Errorf("%s agent: %w", s.agent.Name(), err)
	}
	reply.ConversationID = cc.ConversationID
	userMsg.ConversationID = cc.ConversationID

	if err := s.store.Append(cc.ConversationID, userMsg, *reply); err != nil {
		return nil, err
	}
	s.logger.Debug("chat message handled",
		slog.String("conversation_id", cc.ConversationID),
		slog.String("agent", s.agent.Name()),
		slog.Int("history", len(history)))

	return &Reply{ConversationID: cc.ConversationID, Agent: s.agent.Name(), Message: *reply}, nil
}

// History returns a conversation oldest first.
func (s *Service) History(conversationID string) ([]Message, error) {
	return s.store.History(conversationID)
}

// Clear deletes a conversation.
func (s *Service) Clear(conversationID string) (int64, error) {
	return s.store.Delete(conversationID)
}
