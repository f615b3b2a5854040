package api

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"
)

type healthResult struct {
	Status string `json:"status"`
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	checks := map[string]healthResult{"redis": {Status: "ok"}}
	status := http.StatusOK

	if err := h.redis.Ping(ctx).Err(); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("name", "redis").Msg("health check failed")
		checks["redis"] = healthResult{Status: "error"}
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, checks)
}
