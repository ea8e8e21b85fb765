package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/gameforge/arcade-dashboard/pkg/arcade"
)

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Error string `json:"error"`
}

func (app *App) WriteJSON(w http.ResponseWriter, status int, data any, headers http.Header) error {
	js, err := json.Marshal(data)
	if err != nil {
		return err
	}
	for key, value := range headers {
		w.Header()[key] = value
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)
	return err
}

func (app *App) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	if err := app.WriteJSON(w, status, ErrorResponse{Error: message}, nil); err != nil {
		app.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (app *App) logError(r *http.Request, err error) {
	app.logger.Error(err.Error(),
		slog.String("method", r.Method),
		slog.String("uri", r.URL.RequestURI()),
		slog.String("request_id", middleware.GetReqID(r.Context())))
}

// upstreamErrorResponse answers with the envelope status and message, or 500
// with fallback for errors that carry no envelope.
func (app *App) upstreamErrorResponse(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	if isDisconnect(r, err) {
		app.logger.Debug("client went away", slog.String("uri", r.URL.RequestURI()))
		return
	}
	app.logError(r, err)
	if apiErr, ok := arcade.AsAPIError(err); ok {
		message := apiErr.Message
		if message == "" {
			message = fallback
		}
		app.errorResponse(w, r, apiErr.HTTPStatus(), message)
		return
	}
	app.errorResponse(w, r, http.StatusInternalServerError, fallback)
}

func (app *App) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)
	app.errorResponse(w, r, http.StatusInternalServerError, "the server encountered a problem and could not process your request")
}

func (app *App) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (app *App) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusNotFound, "the requested resource could not be found")
}

func (app *App) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusMethodNotAllowed, "the "+r.Method+" method is not supported for this resource")
}

// isDisconnect reports whether the client went away before we answered.
func isDisconnect(r *http.Request, err error) bool {
	return r.Context().Err() != nil && errors.Is(err, r.Context().Err())
}
