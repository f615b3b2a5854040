package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetErrorMessage returns the operator-facing code and wording for an error
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)

	// GetGameStatusMessage returns a one-line scoreboard summary of a game
	GetGameStatusMessage(ctx context.Context, input *GetGameStatusMessageInput) (*GetGameStatusMessageOutput, error)

	// GetStatMessage returns the play-by-play line for a recorded stat
	GetStatMessage(ctx context.Context, input *GetStatMessageInput) (*GetStatMessageOutput, error)
}
