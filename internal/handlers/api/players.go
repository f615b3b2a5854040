package api

import (
	"net/http"

	"github.com/KitchAIv1/statjam-sub000/internal/services/tracker"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleRegisterPlayers(w http.ResponseWriter, r *http.Request) {
	var req registerPlayersRequest
	if err := readJSON(r, &req); err != nil {
		h.writeMalformed(w, err)
		return
	}

	output, err := h.tracker.RegisterPlayers(r.Context(), &tracker.RegisterPlayersInput{
		TeamID:  chi.URLParam(r, "teamID"),
		Players: req.Players,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, playersResponse{Players: output.Players})
}
