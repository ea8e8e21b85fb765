package models

import "errors"

// ErrNotFound is returned by data sources when a single resource does not
// exist.
var ErrNotFound = errors.New("not found")

// Tool is a tool as shown by the dashboard.
type Tool struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Category     string `json:"category,omitempty"`
	ServerID     string `json:"server_id,omitempty"`
	RequiresAuth bool   `json:"requires_auth"`
	InputSchema  any    `json:"input_schema,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
	UpdatedAt    string `json:"updated_at,omitempty"`
}

// ToolExample is a sample invocation of a tool.
type ToolExample struct {
	Input  map[string]any `json:"input"`
	Output any            `json:"output"`
}

// ToolDetail is a Tool with the fields only the detail view needs.
type ToolDetail struct {
	Tool
	Examples         []ToolExample `json:"examples,omitempty"`
	DocumentationURL string        `json:"documentation_url,omitempty"`
	Version          string        `json:"version,omitempty"`
}

// ServerStatus is the lifecycle state of an MCP server.
type ServerStatus string

const (
	ServerActive   ServerStatus = "active"
	ServerInactive ServerStatus = "inactive"
	ServerError    ServerStatus = "error"
)

// Server is an MCP server hosting a set of tools.
type Server struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Status      ServerStatus `json:"status"`
	ToolsCount  int          `json:"tools_count"`
	CreatedAt   string       `json:"created_at,omitempty"`
	UpdatedAt   string       `json:"updated_at,omitempty"`
}

// ServerHealth is the last health probe of a server.
type ServerHealth struct {
	LastCheck      string `json:"last_check"`
	ResponseTimeMs int    `json:"response_time_ms"`
	ErrorCount     int    `json:"error_count"`
}

// ServerDetail is a Server with its tools and health.
type ServerDetail struct {
	Server
	Tools         []Tool         `json:"tools"`
	Configuration map[string]any `json:"configuration,omitempty"`
	HealthStatus  *ServerHealth  `json:"health_status,omitempty"`
}

type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name,omitempty"`
	Organization string `json:"organization,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
}

// ConnectionStatus is the state of an OAuth connection to a provider.
type ConnectionStatus string

const (
	ConnectionConnected    ConnectionStatus = "connected"
	ConnectionDisconnected ConnectionStatus = "disconnected"
	ConnectionExpired      ConnectionStatus = "expired"
)

type AuthConnection struct {
	ID          string           `json:"id"`
	Provider    string           `json:"provider"`
	Status      ConnectionStatus `json:"status"`
	Scopes      []string         `json:"scopes,omitempty"`
	ConnectedAt string           `json:"connected_at,omitempty"`
	ExpiresAt   string           `json:"expires_at,omitempty"`
}

// AuthStatus is the authorization state reported for the current user.
type AuthStatus struct {
	User         User             `json:"user"`
	Connections  []AuthConnection `json:"connections"`
	APIKeyScopes []string         `json:"api_key_scopes,omitempty"`
}

// CategoryList is the distinct set of tool categories, sorted.
type CategoryList struct {
	Data  []string `json:"data"`
	Total int      `json:"total"`
}

// Mode names the data source backing the dashboard.
const (
	ModeLive = "live"
	ModeMock = "mock"
)
