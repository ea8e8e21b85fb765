package api

import (
	"net/http"
)

type HealthCheck struct {
	Status     string            `json:"status"`
	SystemInfo map[string]string `json:"system_info,omitempty"`
}

func (app *App) HealthcheckHandler(w http.ResponseWriter, r *http.Request) {
	health := HealthCheck{
		Status:     "available",
		SystemInfo: map[string]string{"version": Version},
	}
	if err := app.WriteJSON(w, http.StatusOK, health, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// ReadyHandler reports ready once the data source and chat store are wired.
func (app *App) ReadyHandler(w http.ResponseWriter, r *http.Request) {
	if app.repositories == nil || app.chat == nil {
		app.errorResponse(w, r, http.StatusServiceUnavailable, "not ready")
		return
	}
	health := HealthCheck{
		Status:     "ready",
		SystemInfo: map[string]string{"mode": app.mode(), "chat_agent": app.chat.AgentName()},
	}
	if err := app.WriteJSON(w, http.StatusOK, health, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
