package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gameforge/arcade-dashboard/internal/mocks"
	"github.com/gameforge/arcade-dashboard/internal/models"
)

func (app *App) GetAllServersHandler(w http.ResponseWriter, r *http.Request) {
	q := models.ParseServerQuery(r.URL.Query(), mocks.DefaultPerPage)

	servers, err := app.repositories.DashboardClient.ListServers(r.Context(), q)
	if err != nil {
		app.upstreamErrorResponse(w, r, err, "Failed to fetch servers")
		return
	}

	if err := app.WriteJSON(w, http.StatusOK, servers, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *App) GetServerHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, ServerId)

	server, err := app.repositories.DashboardClient.GetServer(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			app.errorResponse(w, r, http.StatusNotFound, "Server not found")
			return
		}
		app.upstreamErrorResponse(w, r, err, "Failed to fetch server")
		return
	}

	if err := app.WriteJSON(w, http.StatusOK, server, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *App) GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := app.repositories.DashboardClient.ListCategories(r.Context())
	if err != nil {
		app.upstreamErrorResponse(w, r, err, "Failed to fetch categories")
		return
	}

	if err := app.WriteJSON(w, http.StatusOK, categories, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
