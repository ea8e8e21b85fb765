package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gameforge/arcade-dashboard/internal/mocks"
	"github.com/gameforge/arcade-dashboard/internal/models"
	"github.com/gameforge/arcade-dashboard/pkg/arcade"
	"github.com/gameforge/arcade-dashboard/pkg/pagination"
)

// ArcadeTools implements ToolsInterface against the Arcade API.
type ArcadeTools struct {
	client *arcade.Client
	logger *slog.Logger
	now    func() time.Time
}

func NewArcadeTools(client *arcade.Client, logger *slog.Logger) ArcadeTools {
	return ArcadeTools{client: client, logger: logger, now: time.Now}
}

// ListTools fetches the requested page window from the API. The category and
// q filters are applied to the fetched window only, so total then counts the
// matches within that window while has_more still reflects the upstream.
func (t ArcadeTools) ListTools(ctx context.Context, q models.ToolQuery) (*pagination.Page[models.Tool], error) {
	req := q.Request.Normalize(LiveToolsPerPage)

	raw, err := t.client.ListTools(ctx, arcade.ListToolsParams{
		Limit:   req.PerPage,
		Offset:  req.Offset(),
		Toolkit: q.Toolkit,
	})
	if err != nil {
		return nil, fmt.Errorf("error fetching tools: %w", err)
	}

	page := NormalizeToolList(raw, req, t.now())
	if q.Category != "" || q.Query != "" {
		page.Data = mocks.FilterTools(page.Data, q.Category, q.Query)
		page.Total = len(page.Data)
	}

	t.logger.Debug("fetched tools from Arcade",
		slog.Int("page", page.Page),
		slog.Int("per_page", page.PerPage),
		slog.Int("returned", len(page.Data)),
		slog.Int("total", page.Total))
	return &page, nil
}

// GetTool fetches one tool by its fully qualified name.
func (t ArcadeTools) GetTool(ctx context.Context, id string) (*models.ToolDetail, error) {
	raw, err := t.client.GetTool(ctx, id)
	if err != nil {
		if arcade.IsStatus(err, http.StatusNotFound) {
			return nil, fmt.Errorf("tool %q: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching tool %q: %w", id, err)
	}
	detail := NormalizeToolDetail(*raw, t.now())
	return &detail, nil
}
