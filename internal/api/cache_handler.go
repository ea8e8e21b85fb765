package api

import (
	"net/http"
)

func (app *App) CacheStatsHandler(w http.ResponseWriter, r *http.Request) {
	if err := app.WriteJSON(w, http.StatusOK, app.cache.Stats(), nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *App) InvalidateCacheHandler(w http.ResponseWriter, r *http.Request) {
	app.cache.InvalidateAll()
	app.logger.Info("response cache invalidated")
	w.WriteHeader(http.StatusNoContent)
}
