package roster

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/KitchAIv1/statjam-sub000/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	teamPlayersKeyPrefix = "team_players:"
)

// ErrPlayerNotFound is returned when a player is not on the roster
var ErrPlayerNotFound = errors.New("player not found")

// Config holds configuration for the Redis roster repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis.
// Each team roster is a hash of tagged player reference to player JSON.
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed roster repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SavePlayer persists a player on its team roster
func (r *redisRepository) SavePlayer(ctx context.Context, input *SavePlayerInput) error {
	if input == nil || input.Player == nil {
		return errors.New("input and player cannot be nil")
	}

	player := input.Player
	if player.ID == "" || player.TeamID == "" {
		return errors.New("player ID and team ID cannot be empty")
	}

	playerJSON, err := json.Marshal(player)
	if err != nil {
		return fmt.Errorf("failed to marshal player: %w", err)
	}

	teamKey := fmt.Sprintf("%s%s", teamPlayersKeyPrefix, player.TeamID)
	if err := r.client.HSet(ctx, teamKey, player.Ref().String(), playerJSON).Err(); err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}

	return nil
}

// GetPlayer retrieves one player from a team roster
func (r *redisRepository) GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error) {
	if input == nil || input.TeamID == "" || input.Ref.IsZero() {
		return nil, errors.New("input, team ID and player reference cannot be empty")
	}

	teamKey := fmt.Sprintf("%s%s", teamPlayersKeyPrefix, input.TeamID)
	playerJSON, err := r.client.HGet(ctx, teamKey, input.Ref.String()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	var player models.Player
	if err := json.Unmarshal([]byte(playerJSON), &player); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player: %w", err)
	}

	return &player, nil
}

// GetTeamPlayers retrieves a team roster ordered by jersey number, then name
func (r *redisRepository) GetTeamPlayers(ctx context.Context, input *GetTeamPlayersInput) (*GetTeamPlayersOutput, error) {
	if input == nil || input.TeamID == "" {
		return nil, errors.New("input and team ID cannot be empty")
	}

	teamKey := fmt.Sprintf("%s%s", teamPlayersKeyPrefix, input.TeamID)
	entries, err := r.client.HGetAll(ctx, teamKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get team players: %w", err)
	}

	players := make([]*models.Player, 0, len(entries))
	for ref, playerJSON := range entries {
		var player models.Player
		if err := json.Unmarshal([]byte(playerJSON), &player); err != nil {
			return nil, fmt.Errorf("failed to unmarshal player %s: %w", ref, err)
		}
		players = append(players, &player)
	}

	sort.Slice(players, func(i, j int) bool {
		return lessPlayer(players[i], players[j])
	})

	return &GetTeamPlayersOutput{
		Players: players,
	}, nil
}

// RemovePlayer takes a player off a team roster
func (r *redisRepository) RemovePlayer(ctx context.Context, input *RemovePlayerInput) error {
	if input == nil || input.TeamID == "" || input.Ref.IsZero() {
		return errors.New("input, team ID and player reference cannot be empty")
	}

	teamKey := fmt.Sprintf("%s%s", teamPlayersKeyPrefix, input.TeamID)
	removed, err := r.client.HDel(ctx, teamKey, input.Ref.String()).Result()
	if err != nil {
		return fmt.Errorf("failed to remove player: %w", err)
	}
	if removed == 0 {
		return ErrPlayerNotFound
	}

	return nil
}

// lessPlayer orders numeric jersey numbers first, then other jerseys, then name and reference
func lessPlayer(a, b *models.Player) bool {
	an, aErr := strconv.Atoi(a.JerseyNumber)
	bn, bErr := strconv.Atoi(b.JerseyNumber)
	switch {
	case aErr == nil && bErr == nil && an != bn:
		return an < bn
	case aErr == nil && bErr != nil:
		return true
	case aErr != nil && bErr == nil:
		return false
	case aErr != nil && bErr != nil && a.JerseyNumber != b.JerseyNumber:
		return a.JerseyNumber < b.JerseyNumber
	}
	if a.Name != b.Name {
		return a.Name < b.Name
	}
	return a.Ref().String() < b.Ref().String()
}
