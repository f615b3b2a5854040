package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/KitchAIv1/statjam-sub000/internal/services/tracker"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// handleEvents streams the notifications of one game as server-sent events.
// Each event is named after the notification type.
func (h *Handler) handleEvents(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "streaming not supported", Code: "streaming_unsupported"})
		return
	}

	sub, err := h.tracker.Subscribe(r.Context(), &tracker.SubscribeInput{GameID: gameID})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	defer h.tracker.Unsubscribe(r.Context(), &tracker.UnsubscribeInput{GameID: gameID, Notifications: sub.Notifications})

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	logger := zerolog.Ctx(r.Context())
	logger.Debug().Str("game_id", gameID).Msg("event stream opened")

	ping := time.NewTicker(h.pingInterval)
	defer ping.Stop()

	for {
		select {
		case <-r.Context().Done():
			logger.Debug().Str("game_id", gameID).Msg("event stream closed")
			return
		case n, ok := <-sub.Notifications:
			if !ok {
				return
			}
			data, err := json.Marshal(n)
			if err != nil {
				logger.Error().Err(err).Str("game_id", gameID).Msg("failed to encode notification")
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", n.Type, data)
			flusher.Flush()
		case <-ping.C:
			fmt.Fprintf(w, ": ping\n\n")
			flusher.Flush()
		}
	}
}
