// Package api is the HTTP command surface of the live tracker: operator
// commands, the state view and a server-sent event stream per game.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/KitchAIv1/statjam-sub000/internal/services/messaging"
	"github.com/KitchAIv1/statjam-sub000/internal/services/tracker"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	// DefaultPingInterval is how often an idle event stream sends a keep-alive comment
	DefaultPingInterval = 30 * time.Second

	healthTimeout = 3 * time.Second
)

// Pinger reports whether the persistence backend is reachable
type Pinger interface {
	Ping(ctx context.Context) *redis.StatusCmd
}

// Config holds the collaborators of the HTTP handler
type Config struct {
	Tracker   tracker.Service
	Messaging messaging.Service
	Redis     Pinger
	Logger    zerolog.Logger

	// AllowedOrigins lists the web clients allowed to call the API
	AllowedOrigins []string

	// PingInterval overrides DefaultPingInterval for event streams
	PingInterval time.Duration
}

// Handler serves the tracker over HTTP
type Handler struct {
	tracker        tracker.Service
	messaging      messaging.Service
	redis          Pinger
	logger         zerolog.Logger
	allowedOrigins []string
	pingInterval   time.Duration
}

// New creates a new HTTP handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Tracker == nil {
		return nil, errors.New("tracker service cannot be nil")
	}
	if cfg.Messaging == nil {
		return nil, errors.New("messaging service cannot be nil")
	}
	if cfg.Redis == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	pingInterval := cfg.PingInterval
	if pingInterval <= 0 {
		pingInterval = DefaultPingInterval
	}
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return &Handler{
		tracker:        cfg.Tracker,
		messaging:      cfg.Messaging,
		redis:          cfg.Redis,
		logger:         cfg.Logger,
		allowedOrigins: origins,
		pingInterval:   pingInterval,
	}, nil
}

// Router builds the chi router with middleware and every route
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(h.logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	h.addRoutes(r)

	return r
}
