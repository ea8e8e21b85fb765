package mocks

import (
	"slices"

	"github.com/gameforge/arcade-dashboard/internal/models"
)

var toolMocks = []models.Tool{
	{
		ID:           "tool-github-1",
		Name:         "GitHub Create Issue",
		Description:  "Create a new issue in a GitHub repository with detailed information",
		Category:     "developer-tools",
		ServerID:     "server-github",
		RequiresAuth: true,
		CreatedAt:    "2024-01-10T10:00:00Z",
	},
	{
		ID:           "tool-github-2",
		Name:         "GitHub List Repositories",
		Description:  "List all repositories for a user or organization",
		Category:     "developer-tools",
		ServerID:     "server-github",
		RequiresAuth: true,
		CreatedAt:    "2024-01-10T10:00:00Z",
	},
	{
		ID:           "tool-slack-1",
		Name:         "Slack Send Message",
		Description:  "Send a message to a Slack channel",
		Category:     "communication",
		ServerID:     "server-slack",
		RequiresAuth: true,
		CreatedAt:    "2024-01-12T10:00:00Z",
	},
	{
		ID:           "tool-gdocs-1",
		Name:         "Google Docs Create",
		Description:  "Create a new Google Docs document",
		Category:     "productivity",
		ServerID:     "server-google",
		RequiresAuth: true,
		CreatedAt:    "2024-01-14T10:00:00Z",
	},
	{
		ID:           "tool-gdrive-1",
		Name:         "Google Drive Upload",
		Description:  "Upload a file to Google Drive",
		Category:     "productivity",
		ServerID:     "server-google",
		RequiresAuth: true,
		CreatedAt:    "2024-01-14T10:00:00Z",
	},
	{
		ID:           "tool-gmail-1",
		Name:         "Gmail Send Email",
		Description:  "Send an email via Gmail",
		Category:     "communication",
		ServerID:     "server-google",
		RequiresAuth: true,
		CreatedAt:    "2024-01-14T10:00:00Z",
	},
	{
		ID:           "tool-jira-1",
		Name:         "Jira Create Ticket",
		Description:  "Create a new Jira ticket in your project",
		Category:     "productivity",
		ServerID:     "server-jira",
		RequiresAuth: true,
		CreatedAt:    "2024-01-16T10:00:00Z",
	},
	{
		ID:           "tool-notion-1",
		Name:         "Notion Create Page",
		Description:  "Create a new page in Notion",
		Category:     "productivity",
		ServerID:     "server-notion",
		RequiresAuth: true,
		CreatedAt:    "2024-01-18T10:00:00Z",
	},
	{
		ID:           "tool-linear-1",
		Name:         "Linear Create Issue",
		Description:  "Create a new issue in Linear",
		Category:     "productivity",
		ServerID:     "server-linear",
		RequiresAuth: true,
		CreatedAt:    "2024-01-20T10:00:00Z",
	},
	{
		ID:           "tool-figma-1",
		Name:         "Figma Export Frame",
		Description:  "Export a frame from Figma as an image",
		Category:     "design",
		ServerID:     "server-figma",
		RequiresAuth: true,
		CreatedAt:    "2024-01-22T10:00:00Z",
	},
	{
		ID:           "tool-stripe-1",
		Name:         "Stripe Create Customer",
		Description:  "Create a new customer in Stripe",
		Category:     "payments",
		ServerID:     "server-stripe",
		RequiresAuth: true,
		CreatedAt:    "2024-01-24T10:00:00Z",
	},
	{
		ID:           "tool-hubspot-1",
		Name:         "HubSpot Create Contact",
		Description:  "Create a new contact in HubSpot CRM",
		Category:     "sales",
		ServerID:     "server-hubspot",
		RequiresAuth: true,
		CreatedAt:    "2024-01-26T10:00:00Z",
	},
}

var serverMocks = []models.Server{
	{ID: "server-github", Name: "GitHub MCP Server", Description: "Model Context Protocol server for GitHub integration", Status: models.ServerActive, ToolsCount: 8, CreatedAt: "2024-01-10T10:00:00Z"},
	{ID: "server-slack", Name: "Slack MCP Server", Description: "Integrate with Slack workspaces and channels", Status: models.ServerActive, ToolsCount: 6, CreatedAt: "2024-01-12T10:00:00Z"},
	{ID: "server-google", Name: "Google Workspace Server", Description: "Access Google Docs, Drive, Gmail, and Calendar", Status: models.ServerActive, ToolsCount: 12, CreatedAt: "2024-01-14T10:00:00Z"},
	{ID: "server-jira", Name: "Jira MCP Server", Description: "Manage Jira projects, issues, and workflows", Status: models.ServerActive, ToolsCount: 7, CreatedAt: "2024-01-16T10:00:00Z"},
	{ID: "server-notion", Name: "Notion MCP Server", Description: "Create and manage Notion pages and databases", Status: models.ServerActive, ToolsCount: 5, CreatedAt: "2024-01-18T10:00:00Z"},
	{ID: "server-linear", Name: "Linear MCP Server", Description: "Issue tracking and project management with Linear", Status: models.ServerActive, ToolsCount: 6, CreatedAt: "2024-01-20T10:00:00Z"},
	{ID: "server-figma", Name: "Figma MCP Server", Description: "Design collaboration and export from Figma", Status: models.ServerInactive, ToolsCount: 4, CreatedAt: "2024-01-22T10:00:00Z"},
	{ID: "server-stripe", Name: "Stripe MCP Server", Description: "Payment processing and subscription management", Status: models.ServerActive, ToolsCount: 9, CreatedAt: "2024-01-24T10:00:00Z"},
	{ID: "server-hubspot", Name: "HubSpot MCP Server", Description: "CRM and marketing automation with HubSpot", Status: models.ServerActive, ToolsCount: 11, CreatedAt: "2024-01-26T10:00:00Z"},
}

var userMock = models.User{
	ID:           "user-123",
	Email:        "demo@gameforge.studio",
	Name:         "Demo User",
	Organization: "GameForge Studios",
	CreatedAt:    "2024-01-15T10:00:00Z",
}

var connectionMocks = []models.AuthConnection{
	{
		ID:          "conn-github",
		Provider:    "github",
		Status:      models.ConnectionConnected,
		Scopes:      []string{"repo", "user", "admin:org"},
		ConnectedAt: "2024-01-15T10:00:00Z",
		ExpiresAt:   "2024-07-15T10:00:00Z",
	},
	{
		ID:          "conn-google",
		Provider:    "google",
		Status:      models.ConnectionConnected,
		Scopes:      []string{"https://www.googleapis.com/auth/drive", "https://www.googleapis.com/auth/gmail.send"},
		ConnectedAt: "2024-01-16T10:00:00Z",
		ExpiresAt:   "2024-07-16T10:00:00Z",
	},
	{
		ID:          "conn-slack",
		Provider:    "slack",
		Status:      models.ConnectionConnected,
		Scopes:      []string{"chat:write", "channels:read"},
		ConnectedAt: "2024-01-17T10:00:00Z",
	},
	{
		ID:          "conn-notion",
		Provider:    "notion",
		Status:      models.ConnectionExpired,
		Scopes:      []string{"read_content", "update_content"},
		ConnectedAt: "2024-01-18T10:00:00Z",
		ExpiresAt:   "2024-02-18T10:00:00Z",
	},
}

var apiKeyScopeMocks = []string{"read:tools", "read:servers", "execute:tools"}

// GetToolMocks returns a copy of the mock tool catalog in catalog order.
func GetToolMocks() []models.Tool {
	return slices.Clone(toolMocks)
}

// GetServerMocks returns a copy of the mock server list.
func GetServerMocks() []models.Server {
	return slices.Clone(serverMocks)
}

func GetUserMock() models.User {
	return userMock
}

// GetAuthStatusMock returns the mock auth status. Scope slices are copied so
// callers cannot alter the dataset.
func GetAuthStatusMock() models.AuthStatus {
	conns := make([]models.AuthConnection, len(connectionMocks))
	for i, c := range connectionMocks {
		c.Scopes = slices.Clone(c.Scopes)
		conns[i] = c
	}
	return models.AuthStatus{
		User:         userMock,
		Connections:  conns,
		APIKeyScopes: slices.Clone(apiKeyScopeMocks),
	}
}
