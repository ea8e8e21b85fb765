package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gameforge/arcade-dashboard/internal/mocks"
	"github.com/gameforge/arcade-dashboard/internal/models"
	"github.com/gameforge/arcade-dashboard/internal/repositories"
)

// defaultToolsPerPage follows the data source: the upstream window in live
// mode, the mock page size otherwise.
func (app *App) defaultToolsPerPage() int {
	if app.mode() == models.ModeLive {
		return repositories.LiveToolsPerPage
	}
	return mocks.DefaultPerPage
}

// GetAllToolsHandler lists tools. In live mode category and q filter only
// the fetched upstream window, so has_more follows the upstream total.
func (app *App) GetAllToolsHandler(w http.ResponseWriter, r *http.Request) {
	q := models.ParseToolQuery(r.URL.Query(), app.defaultToolsPerPage())

	tools, err := app.repositories.DashboardClient.ListTools(r.Context(), q)
	if err != nil {
		app.upstreamErrorResponse(w, r, err, "Failed to fetch tools")
		return
	}

	if err := app.WriteJSON(w, http.StatusOK, tools, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *App) GetToolHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, ToolId)

	tool, err := app.repositories.DashboardClient.GetTool(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			app.errorResponse(w, r, http.StatusNotFound, "Tool not found")
			return
		}
		app.upstreamErrorResponse(w, r, err, "Failed to fetch tool")
		return
	}

	if err := app.WriteJSON(w, http.StatusOK, tool, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
