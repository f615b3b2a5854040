package tracker

import (
	"time"

	"github.com/KitchAIv1/statjam-sub000/internal/broadcast"
	"github.com/KitchAIv1/statjam-sub000/internal/common/clock"
	"github.com/KitchAIv1/statjam-sub000/internal/common/uuid"
	"github.com/KitchAIv1/statjam-sub000/internal/court"
	"github.com/KitchAIv1/statjam-sub000/internal/models"
	gameRepo "github.com/KitchAIv1/statjam-sub000/internal/repositories/game"
	rosterRepo "github.com/KitchAIv1/statjam-sub000/internal/repositories/roster"
	eventRepo "github.com/KitchAIv1/statjam-sub000/internal/repositories/stat_event"
	"github.com/rs/zerolog"
)

// Config holds the collaborators and settings of the tracker service
type Config struct {
	GameRepo   gameRepo.Repository
	RosterRepo rosterRepo.Repository
	EventRepo  eventRepo.Repository
	Broker     *broadcast.Broker

	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Logger        zerolog.Logger

	// Game rules
	QuarterSeconds  int
	OvertimeSeconds int
	TimeoutsPerTeam int
	DebounceWindow  time.Duration

	// QueueSize is the number of persistence jobs buffered before new ones are dropped
	QueueSize int

	// PersistTimeout bounds each persistence call
	PersistTimeout time.Duration

	// TickInterval drives running clocks from the server. Zero leaves ticking to clients.
	TickInterval time.Duration
}

// ClockTarget selects the clock a command applies to
type ClockTarget string

const (
	ClockTargetGame ClockTarget = "game"
	ClockTargetShot ClockTarget = "shot"
)

// ClockAction is a clock operation
type ClockAction string

const (
	ClockActionStart      ClockAction = "start"
	ClockActionStop       ClockAction = "stop"
	ClockActionReset      ClockAction = "reset"
	ClockActionSet        ClockAction = "set"
	ClockActionTick       ClockAction = "tick"
	ClockActionResetFull  ClockAction = "reset_full"
	ClockActionResetShort ClockAction = "reset_short"
	ClockActionShow       ClockAction = "show"
	ClockActionHide       ClockAction = "hide"
)

// PossessionAction is a possession operation
type PossessionAction string

const (
	PossessionActionSet       PossessionAction = "possession"
	PossessionActionArrow     PossessionAction = "arrow"
	PossessionActionAlternate PossessionAction = "alternate"
)

type CreateGameInput struct {
	// GameID is optional; one is generated when empty
	GameID     string
	HomeTeamID string
	AwayTeamID string
}

type CreateGameOutput struct {
	State models.GameState
}

type StartGameInput struct {
	GameID string

	// Starters for each team; the first five eligible players start when empty
	HomeStarters []models.PlayerRef
	AwayStarters []models.PlayerRef

	// UntrackedTeamID names a team recorded only through opponent-tagged stats
	UntrackedTeamID string
}

type StartGameOutput struct {
	State   models.GameState
	Rosters []models.RosterState
}

type RecordStatInput struct {
	GameID         string
	TeamID         string
	Player         *models.PlayerRef
	IsOpponentStat bool
	StatType       models.StatType
	Modifier       models.Modifier
	ShotLocation   *models.ShotLocation
}

type RecordStatOutput struct {
	State models.GameState
	Event *models.StatEvent
}

type RecordShotTapInput struct {
	GameID         string
	TeamID         string
	Player         *models.PlayerRef
	IsOpponentStat bool
	Made           bool

	// Tap position inside the court diagram container
	PixelX      float64
	PixelY      float64
	Width       float64
	Height      float64
	Perspective court.Perspective
}

type RecordShotTapOutput struct {
	State    models.GameState
	Event    *models.StatEvent
	Location court.Location
}

type SubstituteInput struct {
	GameID    string
	TeamID    string
	PlayerOut models.PlayerRef
	PlayerIn  models.PlayerRef
}

type SubstituteOutput struct {
	State  models.GameState
	Event  *models.StatEvent
	Roster models.RosterState
}

type UndoInput struct {
	GameID string
}

type UndoOutput struct {
	State models.GameState

	// Event is the removed event, queued for deletion
	Event *models.StatEvent
}

type ClockCommandInput struct {
	GameID  string
	Target  ClockTarget
	Action  ClockAction
	Minutes int
	Seconds int
}

type ClockCommandOutput struct {
	State models.GameState
}

type SetPossessionInput struct {
	GameID string
	Action PossessionAction
	TeamID string
}

type SetPossessionOutput struct {
	State models.GameState
}

type AdvanceQuarterInput struct {
	GameID string

	// ResetTeamFouls applies the per-period foul reset
	ResetTeamFouls bool
}

type AdvanceQuarterOutput struct {
	State models.GameState
}

type EndGameInput struct {
	GameID string
}

type EndGameOutput struct {
	State models.GameState
}

type CancelGameInput struct {
	GameID string
}

type CancelGameOutput struct {
	State models.GameState
}

type ApplySnapshotInput struct {
	GameID string
	State  models.GameState
}

type ApplySnapshotOutput struct {
	State models.GameState
}

type GetStateInput struct {
	GameID string
}

type GetStateOutput struct {
	State   models.GameState
	Rosters []models.RosterState
	CanUndo bool
}

type ListGamesInput struct {
}

type ListGamesOutput struct {
	Games []*models.Game
}

type GetEventsInput struct {
	GameID string
}

type GetEventsOutput struct {
	Events []*models.StatEvent
}

type RegisterPlayersInput struct {
	TeamID  string
	Players []models.Player
}

type RegisterPlayersOutput struct {
	Players []models.Player
}

type SubscribeInput struct {
	GameID string
}

type SubscribeOutput struct {
	Notifications chan broadcast.Notification
}

type UnsubscribeInput struct {
	GameID        string
	Notifications chan broadcast.Notification
}
