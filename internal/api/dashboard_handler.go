package api

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/gameforge/arcade-dashboard/internal/models"
	"github.com/gameforge/arcade-dashboard/pkg/pagination"
)

// DashboardSummary backs the overview cards.
type DashboardSummary struct {
	Mode              string       `json:"mode"`
	ToolCount         int          `json:"tool_count"`
	ServerCount       int          `json:"server_count"`
	ActiveServerCount int          `json:"active_server_count"`
	ConnectedAccounts int          `json:"connected_accounts"`
	TotalConnections  int          `json:"total_connections"`
	User              *models.User `json:"user"`
}

// DashboardHandler fetches every summary input in parallel and answers once
// all of them have settled. The first failure decides the error response.
func (app *App) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	client := app.repositories.DashboardClient
	one := pagination.Request{Page: 1, PerPage: 1}

	var (
		g       errgroup.Group
		tools   *pagination.Page[models.Tool]
		servers *pagination.Page[models.Server]
		active  *pagination.Page[models.Server]
		auth    *models.AuthStatus
	)
	g.Go(func() (err error) {
		tools, err = client.ListTools(ctx, models.ToolQuery{Request: one})
		return err
	})
	g.Go(func() (err error) {
		servers, err = client.ListServers(ctx, models.ServerQuery{Request: one})
		return err
	})
	g.Go(func() (err error) {
		active, err = client.ListServers(ctx, models.ServerQuery{Request: one, Status: models.ServerActive})
		return err
	})
	g.Go(func() (err error) {
		auth, err = client.GetAuthStatus(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		app.upstreamErrorResponse(w, r, err, "Failed to load dashboard")
		return
	}

	summary := DashboardSummary{
		Mode:              app.mode(),
		ToolCount:         tools.Total,
		ServerCount:       servers.Total,
		ActiveServerCount: active.Total,
		TotalConnections:  len(auth.Connections),
		User:              &auth.User,
	}
	for _, c := range auth.Connections {
		if c.Status == models.ConnectionConnected {
			summary.ConnectedAccounts++
		}
	}

	if err := app.WriteJSON(w, http.StatusOK, summary, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
