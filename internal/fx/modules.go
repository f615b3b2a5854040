package fx

import (
	"context"
	"fmt"

	"github.com/KitchAIv1/statjam-sub000/internal/broadcast"
	"github.com/KitchAIv1/statjam-sub000/internal/common/clock"
	"github.com/KitchAIv1/statjam-sub000/internal/common/uuid"
	"github.com/KitchAIv1/statjam-sub000/internal/config"
	"github.com/KitchAIv1/statjam-sub000/internal/handlers/api"
	"github.com/KitchAIv1/statjam-sub000/internal/logger"
	gameRepo "github.com/KitchAIv1/statjam-sub000/internal/repositories/game"
	rosterRepo "github.com/KitchAIv1/statjam-sub000/internal/repositories/roster"
	eventRepo "github.com/KitchAIv1/statjam-sub000/internal/repositories/stat_event"
	"github.com/KitchAIv1/statjam-sub000/internal/services/messaging"
	"github.com/KitchAIv1/statjam-sub000/internal/services/tracker"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// ProvideConfig loads configuration with the bootstrap logger
func ProvideConfig() (*config.Config, error) {
	return config.Load(logger.New())
}

func ProvideRedis(lc fx.Lifecycle, cfg *config.Config, logger zerolog.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return fmt.Errorf("failed to connect to redis: %w", err)
			}
			logger.Info().Str("addr", cfg.RedisAddr).Msg("connected to redis")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	return client
}

func ProvideGameRepo(client *redis.Client) (gameRepo.Repository, error) {
	return gameRepo.NewRedis(&gameRepo.Config{RedisClient: client})
}

func ProvideRosterRepo(client *redis.Client) (rosterRepo.Repository, error) {
	return rosterRepo.NewRedis(&rosterRepo.Config{RedisClient: client})
}

func ProvideEventRepo(client *redis.Client, cfg *config.Config) (eventRepo.Repository, error) {
	return eventRepo.NewRedis(&eventRepo.Config{
		RedisClient:  client,
		StreamMaxLen: cfg.StreamMaxLen,
	})
}

// ProvideTracker builds the tracker service and drains its persistence queue on shutdown
func ProvideTracker(
	lc fx.Lifecycle,
	cfg *config.Config,
	games gameRepo.Repository,
	rosters rosterRepo.Repository,
	events eventRepo.Repository,
	broker *broadcast.Broker,
	logger zerolog.Logger,
) (tracker.Service, error) {
	svc, err := tracker.New(&tracker.Config{
		GameRepo:        games,
		RosterRepo:      rosters,
		EventRepo:       events,
		Broker:          broker,
		Clock:           clock.New(),
		UUIDGenerator:   uuid.New(),
		Logger:          logger.With().Str("component", "tracker").Logger(),
		QuarterSeconds:  cfg.QuarterSeconds,
		OvertimeSeconds: cfg.OvertimeSeconds,
		TimeoutsPerTeam: cfg.TimeoutsPerTeam,
		DebounceWindow:  cfg.DebounceWindow,
		QueueSize:       cfg.QueueSize,
		PersistTimeout:  cfg.PersistTimeout,
		TickInterval:    cfg.TickInterval,
	})
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("draining persistence queue")
			return svc.Close(ctx)
		},
	})

	return svc, nil
}

func ProvideMessaging() (messaging.Service, error) {
	return messaging.NewService(&messaging.ServiceConfig{})
}

func ProvideHandler(
	cfg *config.Config,
	trackerSvc tracker.Service,
	messagingSvc messaging.Service,
	client *redis.Client,
	logger zerolog.Logger,
) (*api.Handler, error) {
	return api.New(&api.Config{
		Tracker:        trackerSvc,
		Messaging:      messagingSvc,
		Redis:          client,
		Logger:         logger,
		AllowedOrigins: cfg.AllowedOrigins,
		PingInterval:   cfg.PingInterval,
	})
}

var Module = fx.Options(
	fx.Provide(ProvideConfig),
	fx.Provide(logger.FromConfig),
	fx.Provide(ProvideRedis),
	// repos
	fx.Provide(ProvideGameRepo),
	fx.Provide(ProvideRosterRepo),
	fx.Provide(ProvideEventRepo),
	// svc
	fx.Provide(broadcast.NewBroker),
	fx.Provide(ProvideTracker),
	fx.Provide(ProvideMessaging),
	// http
	fx.Provide(ProvideHandler),
)
