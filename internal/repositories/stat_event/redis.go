package stat_event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/KitchAIv1/statjam-sub000/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	eventKeyPrefix      = "stat_event:"
	gameEventsKeyPrefix = "game_events:"

	// StreamPrefix is the prefix of the per-game stream read by the play-by-play aggregator
	StreamPrefix = "games.live."
)

// ErrEventNotFound is returned when an event is not found
var ErrEventNotFound = errors.New("stat event not found")

// Config holds configuration for the Redis stat event repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// StreamMaxLen caps each game stream, 0 keeps every entry
	StreamMaxLen int64
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client       *redis.Client
	streamMaxLen int64
}

// NewRedis creates a new Redis-backed stat event repository
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
		client:       cfg.RedisClient,
		streamMaxLen: cfg.StreamMaxLen,
	}, nil
}

// StreamKey returns the live stream key of a game
func StreamKey(gameID string) string {
	return StreamPrefix + gameID
}

// saveEventScript writes an event, its game index entry and its stream entry
// in one step. The index decides whether the event is new, so a retry after
// any earlier attempt still indexes the event once and streams it once.
//
// KEYS: event key, game index key, stream key
// ARGV: event JSON, score, event ID, game ID, stream max length, entry type
var saveEventScript = redis.NewScript(`
redis.call('SET', KEYS[1], ARGV[1], 'NX')
local added = redis.call('ZADD', KEYS[2], 'NX', ARGV[2], ARGV[3])
if added == 1 then
	local fields = {'type', ARGV[6], 'event_id', ARGV[3], 'game_id', ARGV[4], 'data', ARGV[1]}
	if tonumber(ARGV[5]) > 0 then
		redis.call('XADD', KEYS[3], 'MAXLEN', '~', ARGV[5], '*', unpack(fields))
	else
		redis.call('XADD', KEYS[3], '*', unpack(fields))
	end
end
return added
`)

// SaveEvent stores an event. Saving an event that already exists is a no-op,
// so a retried write never appears twice in the game or its stream.
func (r *redisRepository) SaveEvent(ctx context.Context, input *SaveEventInput) error {
	if input == nil || input.Event == nil {
		return errors.New("input and event cannot be nil")
	}

	event := input.Event
	if event.ID == "" || event.GameID == "" {
		return errors.New("event ID and game ID cannot be empty")
	}

	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal stat event: %w", err)
	}

	keys := []string{
		fmt.Sprintf("%s%s", eventKeyPrefix, event.ID),
		fmt.Sprintf("%s%s", gameEventsKeyPrefix, event.GameID),
		StreamKey(event.GameID),
	}

	// Events are indexed on their game by recording time
	score := strconv.FormatInt(event.CreatedAt.UnixNano(), 10)

	if err := saveEventScript.Run(ctx, r.client, keys, string(eventJSON), score, event.ID, event.GameID, r.streamMaxLen, string(StreamEntrySaved)).Err(); err != nil {
		return fmt.Errorf("failed to save stat event: %w", err)
	}

	return nil
}

// DeleteEvent removes an event. Deleting a missing event is a no-op.
func (r *redisRepository) DeleteEvent(ctx context.Context, input *DeleteEventInput) error {
	if input == nil || input.EventID == "" {
		return errors.New("input and event ID cannot be empty")
	}

	event, err := r.GetEvent(ctx, &GetEventInput{EventID: input.EventID})
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			return nil
		}
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, fmt.Sprintf("%s%s", eventKeyPrefix, event.ID))
	pipe.ZRem(ctx, fmt.Sprintf("%s%s", gameEventsKeyPrefix, event.GameID), event.ID)
	pipe.XAdd(ctx, r.streamArgs(event.GameID, map[string]interface{}{
		"type":     string(StreamEntryDeleted),
		"event_id": event.ID,
		"game_id":  event.GameID,
	}))

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete stat event: %w", err)
	}

	return nil
}

// GetEvent retrieves an event by ID from Redis
func (r *redisRepository) GetEvent(ctx context.Context, input *GetEventInput) (*models.StatEvent, error) {
	if input == nil || input.EventID == "" {
		return nil, errors.New("input and event ID cannot be empty")
	}

	eventJSON, err := r.client.Get(ctx, fmt.Sprintf("%s%s", eventKeyPrefix, input.EventID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get stat event: %w", err)
	}

	var event models.StatEvent
	if err := json.Unmarshal([]byte(eventJSON), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stat event: %w", err)
	}

	return &event, nil
}

// GetEventsForGame retrieves every event of a game, oldest first
func (r *redisRepository) GetEventsForGame(ctx context.Context, input *GetEventsForGameInput) (*GetEventsForGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	gameKey := fmt.Sprintf("%s%s", gameEventsKeyPrefix, input.GameID)
	eventIDs, err := r.client.ZRange(ctx, gameKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get event IDs for game: %w", err)
	}

	if len(eventIDs) == 0 {
		return &GetEventsForGameOutput{
			Events: []*models.StatEvent{},
		}, nil
	}

	// Get all events in one round trip using a pipeline
	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(eventIDs))
	for i, eventID := range eventIDs {
		cmds[i] = pipe.Get(ctx, fmt.Sprintf("%s%s", eventKeyPrefix, eventID))
	}

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get stat events: %w", err)
	}

	events := make([]*models.StatEvent, 0, len(eventIDs))
	for i, cmd := range cmds {
		eventJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// Event was deleted between reading the index and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to get stat event %s: %w", eventIDs[i], err)
		}

		var event models.StatEvent
		if err := json.Unmarshal([]byte(eventJSON), &event); err != nil {
			return nil, fmt.Errorf("failed to unmarshal stat event %s: %w", eventIDs[i], err)
		}
		events = append(events, &event)
	}

	return &GetEventsForGameOutput{
		Events: events,
	}, nil
}

func (r *redisRepository) streamArgs(gameID string, values map[string]interface{}) *redis.XAddArgs {
	args := &redis.XAddArgs{
		Stream: StreamKey(gameID),
		Values: values,
	}
	if r.streamMaxLen > 0 {
		args.MaxLen = r.streamMaxLen
		args.Approx = true
	}
	return args
}
