package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gameforge/arcade-dashboard/internal/chat"
)

const maxChatBodyBytes = 1 << 20

type ConversationEnvelope struct {
	ConversationID string         `json:"conversation_id"`
	Messages       []chat.Message `json:"messages"`
}

func (app *App) PostChatHandler(w http.ResponseWriter, r *http.Request) {
	var req chat.Request
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxChatBodyBytes))
	if err := dec.Decode(&req); err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid request body: %w", err))
		return
	}

	reply, err := app.chat.Send(r.Context(), req)
	if err != nil {
		var rle *chat.RateLimitError
		switch {
		case errors.Is(err, chat.ErrEmptyMessage):
			app.badRequestResponse(w, r, err)
		case errors.As(err, &rle):
			secs := int(math.Ceil(rle.RetryAfter.Seconds()))
			if secs < 1 {
				secs = 1
			}
			w.Header().Set("Retry-After", strconv.Itoa(secs))
			app.errorResponse(w, r, http.StatusTooManyRequests, chat.ErrRateLimited.Error())
		default:
			app.logError(r, err)
			app.errorResponse(w, r, http.StatusBadGateway, "Failed to get a reply from the chat agent")
		}
		return
	}

	if err := app.WriteJSON(w, http.StatusOK, reply, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *App) GetConversationHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, ConversationId)

	msgs, err := app.chat.History(id)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if err := app.WriteJSON(w, http.StatusOK, ConversationEnvelope{ConversationID: id, Messages: msgs}, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *App) DeleteConversationHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, ConversationId)

	n, err := app.chat.Clear(id)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
	if n == 0 {
		app.errorResponse(w, r, http.StatusNotFound, "Conversation not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
