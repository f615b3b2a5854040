package api

import (
	"net/http"

	"github.com/KitchAIv1/statjam-sub000/internal/services/tracker"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleClock(w http.ResponseWriter, r *http.Request) {
	var req clockRequest
	if err := readJSON(r, &req); err != nil {
		h.writeMalformed(w, err)
		return
	}

	output, err := h.tracker.ClockCommand(r.Context(), &tracker.ClockCommandInput{
		GameID:  chi.URLParam(r, "gameID"),
		Target:  req.Target,
		Action:  req.Action,
		Minutes: req.Minutes,
		Seconds: req.Seconds,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, h.view(r, output.State))
}

func (h *Handler) handlePossession(w http.ResponseWriter, r *http.Request) {
	var req possessionRequest
	if err := readJSON(r, &req); err != nil {
		h.writeMalformed(w, err)
		return
	}

	output, err := h.tracker.SetPossession(r.Context(), &tracker.SetPossessionInput{
		GameID: chi.URLParam(r, "gameID"),
		Action: req.Action,
		TeamID: req.TeamID,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, h.view(r, output.State))
}
