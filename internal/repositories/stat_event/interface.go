package stat_event

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KitchAIv1/statjam-sub000/internal/repositories/stat_event Repository

import (
	"context"

	"github.com/KitchAIv1/statjam-sub000/internal/models"
)

// Repository is the outbound persistence port for stat events.
// Writes and deletes are idempotent on the event ID so they can be retried.
type Repository interface {
	// SaveEvent stores an event and publishes it to the game's live stream
	SaveEvent(ctx context.Context, input *SaveEventInput) error

	// DeleteEvent removes an event and publishes the removal
	DeleteEvent(ctx context.Context, input *DeleteEventInput) error

	// GetEvent retrieves an event by ID
	GetEvent(ctx context.Context, input *GetEventInput) (*models.StatEvent, error)

	// GetEventsForGame retrieves the events of a game in the order they were recorded
	GetEventsForGame(ctx context.Context, input *GetEventsForGameInput) (*GetEventsForGameOutput, error)
}
