package tracker

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KitchAIv1/statjam-sub000/internal/services/tracker Service

import "context"

// Service runs live games: one engine per game, a command surface over it,
// asynchronous persistence and state-changed notifications
type Service interface {
	// CreateGame schedules a new game
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// StartGame loads both rosters and puts the game in progress
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// RecordStat records one operator action
	RecordStat(ctx context.Context, input *RecordStatInput) (*RecordStatOutput, error)

	// RecordShotTap records a made or missed shot from a tap on the court diagram
	RecordShotTap(ctx context.Context, input *RecordShotTapInput) (*RecordShotTapOutput, error)

	// Substitute swaps a bench player in for a player on court
	Substitute(ctx context.Context, input *SubstituteInput) (*SubstituteOutput, error)

	// Undo reverts the most recent recorded action
	Undo(ctx context.Context, input *UndoInput) (*UndoOutput, error)

	// ClockCommand drives the game clock or the shot clock
	ClockCommand(ctx context.Context, input *ClockCommandInput) (*ClockCommandOutput, error)

	// SetPossession updates possession or the alternating-possession arrow
	SetPossession(ctx context.Context, input *SetPossessionInput) (*SetPossessionOutput, error)

	// AdvanceQuarter moves the game to the next period
	AdvanceQuarter(ctx context.Context, input *AdvanceQuarterInput) (*AdvanceQuarterOutput, error)

	// EndGame completes a game in progress
	EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error)

	// CancelGame abandons a game in progress
	CancelGame(ctx context.Context, input *CancelGameInput) (*CancelGameOutput, error)

	// ApplySnapshot accepts an authoritative state from the correction tool
	ApplySnapshot(ctx context.Context, input *ApplySnapshotInput) (*ApplySnapshotOutput, error)

	// GetState returns the current state of a game
	GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error)

	// ListGames returns every game that has not finished
	ListGames(ctx context.Context, input *ListGamesInput) (*ListGamesOutput, error)

	// GetEvents returns the persisted play-by-play of a game
	GetEvents(ctx context.Context, input *GetEventsInput) (*GetEventsOutput, error)

	// RegisterPlayers adds players to a team roster
	RegisterPlayers(ctx context.Context, input *RegisterPlayersInput) (*RegisterPlayersOutput, error)

	// Subscribe returns a channel of notifications for a game
	Subscribe(ctx context.Context, input *SubscribeInput) (*SubscribeOutput, error)

	// Unsubscribe stops notifications on a channel returned by Subscribe
	Unsubscribe(ctx context.Context, input *UnsubscribeInput) error

	// Close stops the clock ticker and drains pending persistence
	Close(ctx context.Context) error
}
