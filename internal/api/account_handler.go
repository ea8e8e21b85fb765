package api

import (
	"net/http"
)

const (
	messageConfigured    = "API key configured"
	messageNotConfigured = "API key not found in environment"
)

type ConfigStatus struct {
	Configured bool   `json:"configured"`
	Message    string `json:"message"`
	Mode       string `json:"mode"`
}

func (app *App) UserHandler(w http.ResponseWriter, r *http.Request) {
	user, err := app.repositories.DashboardClient.GetUser(r.Context())
	if err != nil {
		app.upstreamErrorResponse(w, r, err, "Failed to fetch user")
		return
	}

	if err := app.WriteJSON(w, http.StatusOK, user, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *App) AuthStatusHandler(w http.ResponseWriter, r *http.Request) {
	status, err := app.repositories.DashboardClient.GetAuthStatus(r.Context())
	if err != nil {
		app.upstreamErrorResponse(w, r, err, "Failed to fetch auth status")
		return
	}

	if err := app.WriteJSON(w, http.StatusOK, status, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *App) ConfigStatusHandler(w http.ResponseWriter, r *http.Request) {
	status := ConfigStatus{
		Configured: app.config.Configured(),
		Message:    messageNotConfigured,
		Mode:       app.mode(),
	}
	if status.Configured {
		status.Message = messageConfigured
	}

	if err := app.WriteJSON(w, http.StatusOK, status, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
