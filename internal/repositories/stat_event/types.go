package stat_event

import "github.com/KitchAIv1/statjam-sub000/internal/models"

// SaveEventInput contains parameters for saving an event
type SaveEventInput struct {
	Event *models.StatEvent
}

// DeleteEventInput contains parameters for deleting an event
type DeleteEventInput struct {
	EventID string
}

// GetEventInput contains parameters for retrieving an event
type GetEventInput struct {
	EventID string
}

// GetEventsForGameInput contains parameters for retrieving the events of a game
type GetEventsForGameInput struct {
	GameID string
}

// GetEventsForGameOutput contains the events of a game
type GetEventsForGameOutput struct {
	Events []*models.StatEvent
}

// StreamEntryType names what a live stream entry reports
type StreamEntryType string

const (
	StreamEntrySaved   StreamEntryType = "saved"
	StreamEntryDeleted StreamEntryType = "deleted"
)
