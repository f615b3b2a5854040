package api

import (
	"net/http"

	"github.com/KitchAIv1/statjam-sub000/internal/models"
	"github.com/KitchAIv1/statjam-sub000/internal/services/messaging"
	"github.com/KitchAIv1/statjam-sub000/internal/services/tracker"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := readJSON(r, &req); err != nil {
		h.writeMalformed(w, err)
		return
	}

	output, err := h.tracker.CreateGame(r.Context(), &tracker.CreateGameInput{
		GameID:     req.GameID,
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, h.view(r, output.State))
}

func (h *Handler) handleStartGame(w http.ResponseWriter, r *http.Request) {
	var req startGameRequest
	if err := readJSON(r, &req); err != nil {
		h.writeMalformed(w, err)
		return
	}

	output, err := h.tracker.StartGame(r.Context(), &tracker.StartGameInput{
		GameID:          chi.URLParam(r, "gameID"),
		HomeStarters:    req.HomeStarters,
		AwayStarters:    req.AwayStarters,
		UntrackedTeamID: req.UntrackedTeamID,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	view := h.view(r, output.State)
	view.Rosters = output.Rosters
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) handleGetState(w http.ResponseWriter, r *http.Request) {
	output, err := h.tracker.GetState(r.Context(), &tracker.GetStateInput{GameID: chi.URLParam(r, "gameID")})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	view := h.view(r, output.State)
	view.Rosters = output.Rosters
	view.CanUndo = output.CanUndo
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) handleListGames(w http.ResponseWriter, r *http.Request) {
	output, err := h.tracker.ListGames(r.Context(), &tracker.ListGamesInput{})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	games := output.Games
	if games == nil {
		games = []*models.Game{}
	}
	writeJSON(w, http.StatusOK, gamesResponse{Games: games})
}

func (h *Handler) handleAdvanceQuarter(w http.ResponseWriter, r *http.Request) {
	var req advanceQuarterRequest
	if err := readJSON(r, &req); err != nil {
		h.writeMalformed(w, err)
		return
	}

	output, err := h.tracker.AdvanceQuarter(r.Context(), &tracker.AdvanceQuarterInput{
		GameID:         chi.URLParam(r, "gameID"),
		ResetTeamFouls: req.ResetTeamFouls,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, h.view(r, output.State))
}

func (h *Handler) handleEndGame(w http.ResponseWriter, r *http.Request) {
	output, err := h.tracker.EndGame(r.Context(), &tracker.EndGameInput{GameID: chi.URLParam(r, "gameID")})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, h.view(r, output.State))
}

func (h *Handler) handleCancelGame(w http.ResponseWriter, r *http.Request) {
	output, err := h.tracker.CancelGame(r.Context(), &tracker.CancelGameInput{GameID: chi.URLParam(r, "gameID")})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, h.view(r, output.State))
}

func (h *Handler) handleApplySnapshot(w http.ResponseWriter, r *http.Request) {
	var state models.GameState
	if err := readJSON(r, &state); err != nil {
		h.writeMalformed(w, err)
		return
	}

	output, err := h.tracker.ApplySnapshot(r.Context(), &tracker.ApplySnapshotInput{
		GameID: chi.URLParam(r, "gameID"),
		State:  state,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, h.view(r, output.State))
}

func (h *Handler) handleGetPlays(w http.ResponseWriter, r *http.Request) {
	output, err := h.tracker.GetEvents(r.Context(), &tracker.GetEventsInput{GameID: chi.URLParam(r, "gameID")})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	events := output.Events
	if events == nil {
		events = []*models.StatEvent{}
	}
	writeJSON(w, http.StatusOK, playsResponse{Events: events})
}

// view builds the state view with its scoreboard summary line
func (h *Handler) view(r *http.Request, state models.GameState) stateView {
	view := newStateView(state)
	if summary, err := h.messaging.GetGameStatusMessage(r.Context(), &messaging.GetGameStatusMessageInput{State: state}); err == nil {
		view.Summary = summary.Message
	}
	return view
}
