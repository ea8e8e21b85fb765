package repositories

import (
	"time"

	"github.com/gameforge/arcade-dashboard/internal/models"
	"github.com/gameforge/arcade-dashboard/pkg/arcade"
	"github.com/gameforge/arcade-dashboard/pkg/pagination"
)

const (
	// LiveToolsPerPage is the page size of live tool listings when none is
	// requested.
	LiveToolsPerPage = 50

	uncategorized  = "uncategorized"
	activeAuthFlag = "active"
)

// NormalizeToolList maps an upstream tool listing onto the dashboard page
// contract. Item order is preserved and total is the upstream total_count.
// Every tool is stamped with now as its created_at, since the upstream
// listing carries no creation time.
func NormalizeToolList(raw *arcade.ToolList, req pagination.Request, now time.Time) pagination.Page[models.Tool] {
	req = req.Normalize(LiveToolsPerPage)

	var items []arcade.Tool
	total := 0
	if raw != nil {
		items = raw.Items
		total = raw.TotalCount
	}

	stamp := now.UTC().Format(time.RFC3339)
	data := make([]models.Tool, 0, len(items))
	for _, item := range items {
		data = append(data, NormalizeTool(item, stamp))
	}
	// an upstream that ignores limit must not break len(data) <= per_page
	if len(data) > req.PerPage {
		data = data[:req.PerPage]
	}

	return pagination.NewPage(data, total, req)
}

// NormalizeTool maps one upstream tool. The id is the fully qualified name
// when the upstream provides one.
func NormalizeTool(raw arcade.Tool, createdAt string) models.Tool {
	id := raw.FullyQualifiedName
	if id == "" {
		id = raw.Name
	}
	category := raw.ToolkitName()
	if category == "" {
		category = uncategorized
	}
	return models.Tool{
		ID:           id,
		Name:         raw.Name,
		Description:  raw.Description,
		Category:     category,
		ServerID:     raw.ToolkitName(),
		RequiresAuth: raw.AuthorizationStatus() == activeAuthFlag,
		InputSchema:  raw.Input,
		CreatedAt:    createdAt,
	}
}

// NormalizeToolDetail maps one upstream tool for the detail view.
func NormalizeToolDetail(raw arcade.Tool, now time.Time) models.ToolDetail {
	detail := models.ToolDetail{Tool: NormalizeTool(raw, now.UTC().Format(time.RFC3339))}
	if raw.Toolkit != nil {
		detail.Version = raw.Toolkit.Version
	}
	return detail
}
