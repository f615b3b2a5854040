package api

import "github.com/go-chi/chi/v5"

func (h *Handler) addRoutes(r chi.Router) {
	r.Get("/healthz", h.handleHealth)

	r.Post("/teams/{teamID}/players", h.handleRegisterPlayers)

	r.Route("/games", func(r chi.Router) {
		r.Get("/", h.handleListGames)
		r.Post("/", h.handleCreateGame)

		r.Route("/{gameID}", func(r chi.Router) {
			r.Get("/", h.handleGetState)
			r.Post("/start", h.handleStartGame)
			r.Post("/stats", h.handleRecordStat)
			r.Post("/shots", h.handleRecordShot)
			r.Post("/substitutions", h.handleSubstitute)
			r.Post("/undo", h.handleUndo)
			r.Post("/clock", h.handleClock)
			r.Post("/possession", h.handlePossession)
			r.Post("/quarter", h.handleAdvanceQuarter)
			r.Post("/end", h.handleEndGame)
			r.Post("/cancel", h.handleCancelGame)
			r.Put("/snapshot", h.handleApplySnapshot)
			r.Get("/plays", h.handleGetPlays)
			r.Get("/events", h.handleEvents)
		})
	})
}
