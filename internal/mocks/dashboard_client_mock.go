package mocks

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/gameforge/arcade-dashboard/internal/models"
	"github.com/gameforge/arcade-dashboard/pkg/pagination"
)

// DefaultPerPage is the page size of mock listings when none is requested.
const DefaultPerPage = 20

// DashboardClientMock serves the dashboard from the static mock dataset. It
// never touches the network and is safe for concurrent use.
type DashboardClientMock struct {
	logger *slog.Logger
}

func NewDashboardClientMock(logger *slog.Logger) *DashboardClientMock {
	if logger == nil {
		logger = slog.Default()
	}
	return &DashboardClientMock{logger: logger}
}

func (m *DashboardClientMock) Mode() string {
	return models.ModeMock
}

// ListTools filters the catalog by exact category and by a case-insensitive
// substring of name or description, then pages the result. Both filters
// apply when both are set. The toolkit filter is an upstream concern and is
// ignored here.
func (m *DashboardClientMock) ListTools(_ context.Context, q models.ToolQuery) (*pagination.Page[models.Tool], error) {
	filtered := FilterTools(GetToolMocks(), q.Category, q.Query)
	m.logger.Debug("listing mock tools", "category", q.Category, "q", q.Query, "matches", len(filtered))
	page := pagination.Paginate(filtered, q.Request.Normalize(DefaultPerPage))
	return &page, nil
}

func (m *DashboardClientMock) GetTool(_ context.Context, id string) (*models.ToolDetail, error) {
	for _, t := range toolMocks {
		if t.ID == id {
			return &models.ToolDetail{Tool: t}, nil
		}
	}
	return nil, fmt.Errorf("tool %q: %w", id, models.ErrNotFound)
}

func (m *DashboardClientMock) ListServers(_ context.Context, q models.ServerQuery) (*pagination.Page[models.Server], error) {
	servers := GetServerMocks()
	if q.Status != "" {
		filtered := make([]models.Server, 0, len(servers))
		for _, s := range servers {
			if s.Status == q.Status {
				filtered = append(filtered, s)
			}
		}
		servers = filtered
	}
	page := pagination.Paginate(servers, q.Request.Normalize(DefaultPerPage))
	return &page, nil
}

// GetServer returns a server together with the tools it hosts.
func (m *DashboardClientMock) GetServer(_ context.Context, id string) (*models.ServerDetail, error) {
	for _, s := range serverMocks {
		if s.ID != id {
			continue
		}
		tools := make([]models.Tool, 0)
		for _, t := range toolMocks {
			if t.ServerID == id {
				tools = append(tools, t)
			}
		}
		return &models.ServerDetail{Server: s, Tools: tools}, nil
	}
	return nil, fmt.Errorf("server %q: %w", id, models.ErrNotFound)
}

func (m *DashboardClientMock) GetUser(_ context.Context) (*models.User, error) {
	u := GetUserMock()
	return &u, nil
}

func (m *DashboardClientMock) GetAuthStatus(_ context.Context) (*models.AuthStatus, error) {
	s := GetAuthStatusMock()
	return &s, nil
}

// ListCategories returns the distinct tool categories in sorted order.
func (m *DashboardClientMock) ListCategories(_ context.Context) (*models.CategoryList, error) {
	categories := DistinctCategories(toolMocks)
	return &models.CategoryList{Data: categories, Total: len(categories)}, nil
}

// FilterTools returns the tools matching category (exact) and query
// (case-insensitive substring of name or description). Empty filters match
// everything. Order is preserved.
func FilterTools(tools []models.Tool, category, query string) []models.Tool {
	query = strings.ToLower(query)
	out := make([]models.Tool, 0, len(tools))
	for _, t := range tools {
		if category != "" && t.Category != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(t.Name), query) &&
			!strings.Contains(strings.ToLower(t.Description), query) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// DistinctCategories returns the sorted set of non-empty tool categories.
func DistinctCategories(tools []models.Tool) []string {
	set := mapset.NewSet[string]()
	for _, t := range tools {
		if t.Category != "" {
			set.Add(t.Category)
		}
	}
	categories := set.ToSlice()
	sort.Strings(categories)
	return categories
}
