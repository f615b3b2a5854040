package api

import (
	"net/http"

	"github.com/KitchAIv1/statjam-sub000/internal/models"
	"github.com/KitchAIv1/statjam-sub000/internal/services/messaging"
	"github.com/KitchAIv1/statjam-sub000/internal/services/tracker"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleRecordStat(w http.ResponseWriter, r *http.Request) {
	var req recordStatRequest
	if err := readJSON(r, &req); err != nil {
		h.writeMalformed(w, err)
		return
	}

	output, err := h.tracker.RecordStat(r.Context(), &tracker.RecordStatInput{
		GameID:         chi.URLParam(r, "gameID"),
		TeamID:         req.TeamID,
		Player:         req.Player,
		IsOpponentStat: req.IsOpponentStat,
		StatType:       req.StatType,
		Modifier:       req.Modifier,
		ShotLocation:   req.ShotLocation,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, h.eventResponse(r, output.State, output.Event))
}

func (h *Handler) handleRecordShot(w http.ResponseWriter, r *http.Request) {
	var req recordShotRequest
	if err := readJSON(r, &req); err != nil {
		h.writeMalformed(w, err)
		return
	}

	output, err := h.tracker.RecordShotTap(r.Context(), &tracker.RecordShotTapInput{
		GameID:         chi.URLParam(r, "gameID"),
		TeamID:         req.TeamID,
		Player:         req.Player,
		IsOpponentStat: req.IsOpponentStat,
		Made:           req.Made,
		PixelX:         req.X,
		PixelY:         req.Y,
		Width:          req.Width,
		Height:         req.Height,
		Perspective:    req.Perspective,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp := h.eventResponse(r, output.State, output.Event)
	resp.Location = &output.Location
	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) handleSubstitute(w http.ResponseWriter, r *http.Request) {
	var req substituteRequest
	if err := readJSON(r, &req); err != nil {
		h.writeMalformed(w, err)
		return
	}

	output, err := h.tracker.Substitute(r.Context(), &tracker.SubstituteInput{
		GameID:    chi.URLParam(r, "gameID"),
		TeamID:    req.TeamID,
		PlayerOut: req.PlayerOut,
		PlayerIn:  req.PlayerIn,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp := h.eventResponse(r, output.State, output.Event)
	resp.Roster = &output.Roster
	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) handleUndo(w http.ResponseWriter, r *http.Request) {
	output, err := h.tracker.Undo(r.Context(), &tracker.UndoInput{GameID: chi.URLParam(r, "gameID")})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, h.eventResponse(r, output.State, output.Event))
}

func (h *Handler) eventResponse(r *http.Request, state models.GameState, event *models.StatEvent) eventResponse {
	resp := eventResponse{Game: h.view(r, state), Event: event}
	if line, err := h.messaging.GetStatMessage(r.Context(), &messaging.GetStatMessageInput{Event: event}); err == nil {
		resp.PlayLine = line.Message
	}
	return resp
}
