package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/KitchAIv1/statjam-sub000/internal/config"
	fxmodules "github.com/KitchAIv1/statjam-sub000/internal/fx"
	"github.com/KitchAIv1/statjam-sub000/internal/handlers/api"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

const shutdownTimeout = 5 * time.Second

func main() {
	fx.New(
		fxmodules.Module,
		fx.Invoke(runServer),
	).Run()
}

func runServer(
	lc fx.Lifecycle,
	handler *api.Handler,
	cfg *config.Config,
	logger zerolog.Logger,
) {
	// Event streams only end when their request context does
	streams, closeStreams := context.WithCancel(context.Background())

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return streams },
	}
	srv.RegisterOnShutdown(closeStreams)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info().Str("addr", srv.Addr).Msg("server starting")
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal().Err(err).Msg("server failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error().Err(err).Msg("server shutdown failed")
				return err
			}
			logger.Info().Msg("server stopped gracefully")
			return nil
		},
	})
}
