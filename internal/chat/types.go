// Package chat connects the dashboard chat widget to a pluggable agent and
// keeps per-conversation history.
package chat

import (
	"context"
	"errors"
	"time"
)

// ErrRateLimited is returned when a conversation sends messages faster than
// the configured interval.
var ErrRateLimited = errors.New("too many messages, slow down")

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

type ToolCallStatus string

const (
	ToolCallPending ToolCallStatus = "pending"
	ToolCallSuccess ToolCallStatus = "success"
	ToolCallError   ToolCallStatus = "error"
)

// ToolCall is a tool invocation an agent reports alongside its reply.
type ToolCall struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	ToolArgs map[string]any `json:"toolArgs"`
	Result   any            `json:"result,omitempty"`
	Status   ToolCallStatus `json:"status"`
}

type Message struct {
	ID             string     `json:"id"`
	ConversationID string     `json:"conversation_id,omitempty"`
	Role           Role       `json:"role"`
	Content        string     `json:"content"`
	Timestamp      time.Time  `json:"timestamp"`
	ToolCalls      []ToolCall `json:"toolCalls,omitempty"`
	Error          string     `json:"error,omitempty"`
}

// Context is what the widget knows about where the user is.
type Context struct {
	ConversationID string         `json:"conversationId,omitempty"`
	UserID         string         `json:"userId,omitempty"`
	CurrentPage    string         `json:"currentPage,omitempty"`
	CurrentTool    string         `json:"currentTool,omitempty"`
	AvailableTools []string       `json:"availableTools,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`

	// History holds the earlier messages of the conversation, oldest first.
	History []Message `json:"-"`
}

// Agent produces the assistant reply to a user message.
type Agent interface {
	Name() string
	SendMessage(ctx context.Context, message string, cc Context) (*Message, error)
}
