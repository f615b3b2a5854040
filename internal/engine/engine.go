// Package engine owns the authoritative in-memory state of one live game.
//
// Every exported method is one atomic step: it either applies all of its
// effects or returns an error and leaves the game untouched.
package engine

import (
	"fmt"
	"sync"
	"time"

	"github.com/KitchAIv1/statjam-sub000/internal/common/clock"
	"github.com/KitchAIv1/statjam-sub000/internal/common/uuid"
	"github.com/KitchAIv1/statjam-sub000/internal/gameclock"
	"github.com/KitchAIv1/statjam-sub000/internal/models"
	"github.com/KitchAIv1/statjam-sub000/internal/possession"
	"github.com/KitchAIv1/statjam-sub000/internal/roster"
)

const (
	// DefaultTimeoutsPerTeam is the number of timeouts each team starts with
	DefaultTimeoutsPerTeam = 5

	// DefaultDebounceWindow is how long an identical action is treated as a duplicate tap
	DefaultDebounceWindow = 500 * time.Millisecond
)

// Config holds the settings and collaborators of an Engine
type Config struct {
	GameID     string
	HomeTeamID string
	AwayTeamID string

	// Period lengths in seconds
	QuarterSeconds  int
	OvertimeSeconds int

	TimeoutsPerTeam int
	DebounceWindow  time.Duration

	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// Engine is the live state of one game
type Engine struct {
	mu sync.Mutex

	gameID          string
	homeTeamID      string
	awayTeamID      string
	quarterSeconds  int
	overtimeSeconds int
	debounceWindow  time.Duration

	clock         clock.Clock
	uuidGenerator uuid.UUID

	status   models.GameStatus
	quarter  int
	score    map[string]int
	fouls    map[string]int
	timeouts map[string]int

	gameClock  *gameclock.GameClock
	shotClock  *gameclock.ShotClock
	possession *possession.Tracker
	rosters    map[string]*roster.Manager

	undo   *undoEntry
	recent map[debounceKey]time.Time
}

// New creates a scheduled game
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}
	if cfg.HomeTeamID == "" || cfg.AwayTeamID == "" || cfg.HomeTeamID == cfg.AwayTeamID {
		return nil, ErrInvalidTeams
	}

	quarterSeconds := cfg.QuarterSeconds
	if quarterSeconds <= 0 {
		quarterSeconds = gameclock.DefaultQuarterSeconds
	}
	overtimeSeconds := cfg.OvertimeSeconds
	if overtimeSeconds <= 0 {
		overtimeSeconds = gameclock.DefaultOvertimeSeconds
	}
	timeouts := cfg.TimeoutsPerTeam
	if timeouts <= 0 {
		timeouts = DefaultTimeoutsPerTeam
	}
	debounce := cfg.DebounceWindow
	if debounce <= 0 {
		debounce = DefaultDebounceWindow
	}

	return &Engine{
		gameID:          cfg.GameID,
		homeTeamID:      cfg.HomeTeamID,
		awayTeamID:      cfg.AwayTeamID,
		quarterSeconds:  quarterSeconds,
		overtimeSeconds: overtimeSeconds,
		debounceWindow:  debounce,
		clock:           cfg.Clock,
		uuidGenerator:   cfg.UUIDGenerator,
		status:          models.GameStatusScheduled,
		quarter:         1,
		score:           map[string]int{},
		fouls:           map[string]int{},
		timeouts:        map[string]int{cfg.HomeTeamID: timeouts, cfg.AwayTeamID: timeouts},
		gameClock:       gameclock.NewGameClock(quarterSeconds),
		shotClock:       gameclock.NewShotClock(),
		possession:      possession.New(cfg.HomeTeamID, cfg.AwayTeamID),
		rosters:         map[string]*roster.Manager{},
		recent:          map[debounceKey]time.Time{},
	}, nil
}

// GameID returns the id of the game
func (e *Engine) GameID() string {
	return e.gameID
}

// State returns a copy of the current game state
func (e *Engine) State() models.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state()
}

// Roster returns the on-court/bench partition of teamID. The second return
// value is false for a team whose roster is not tracked.
func (e *Engine) Roster(teamID string) (models.RosterState, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	r, ok := e.rosters[teamID]
	if !ok {
		return models.RosterState{}, false
	}
	return r.State(), true
}

// Rosters returns the partitions of the tracked teams, home first
func (e *Engine) Rosters() []models.RosterState {
	e.mu.Lock()
	defer e.mu.Unlock()

	var states []models.RosterState
	for _, teamID := range []string{e.homeTeamID, e.awayTeamID} {
		if r, ok := e.rosters[teamID]; ok {
			states = append(states, r.State())
		}
	}
	return states
}

// CanUndo returns true if there is an action to undo
func (e *Engine) CanUndo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.undo != nil
}

// Start moves a scheduled game to in_progress. Rosters are validated when they
// are built; a nil roster marks a team whose players are not tracked, which
// allows only opponent-tagged stats for it. At least one roster is required.
func (e *Engine) Start(home, away *roster.Manager) (models.GameState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.status.IsScheduled() {
		return models.GameState{}, fmt.Errorf("%w: cannot start a game that is %s", ErrInvalidTransition, e.status)
	}
	if home == nil && away == nil {
		return models.GameState{}, fmt.Errorf("%w: no roster to track", ErrInsufficientRoster)
	}
	if home != nil && home.TeamID() != e.homeTeamID {
		return models.GameState{}, fmt.Errorf("%w: home roster belongs to %s", ErrInvalidRosterOperation, home.TeamID())
	}
	if away != nil && away.TeamID() != e.awayTeamID {
		return models.GameState{}, fmt.Errorf("%w: away roster belongs to %s", ErrInvalidRosterOperation, away.TeamID())
	}

	if home != nil {
		e.rosters[e.homeTeamID] = home
	}
	if away != nil {
		e.rosters[e.awayTeamID] = away
	}
	e.status = models.GameStatusInProgress

	return e.state(), nil
}

// End completes the game
func (e *Engine) End() (models.GameState, error) {
	return e.finish(models.GameStatusCompleted)
}

// Cancel abandons the game
func (e *Engine) Cancel() (models.GameState, error) {
	return e.finish(models.GameStatusCancelled)
}

func (e *Engine) finish(status models.GameStatus) (models.GameState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireActive(); err != nil {
		return models.GameState{}, err
	}

	e.gameClock.Stop()
	e.shotClock.Stop()
	e.status = status
	e.undo = nil

	return e.state(), nil
}

// AdvanceQuarter moves to the next period. The game clock is stopped and reset
// to the period length and the shot clock is stopped at 24. The undo slot is cleared.
func (e *Engine) AdvanceQuarter() (models.GameState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireActive(); err != nil {
		return models.GameState{}, err
	}

	e.quarter++
	length := e.quarterSeconds
	if e.quarter > models.RegulationQuarters {
		length = e.overtimeSeconds
	}
	e.gameClock.Restore(length, false)
	e.shotClock.Stop()
	e.shotClock.ResetFull()
	e.undo = nil

	return e.state(), nil
}

// ResetTeamFouls zeroes both team foul counters
func (e *Engine) ResetTeamFouls() (models.GameState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireActive(); err != nil {
		return models.GameState{}, err
	}

	e.fouls = map[string]int{}
	return e.state(), nil
}

// ApplySnapshot replaces the live state with an authoritative snapshot from the
// correction tool. The game stays in progress and the undo slot is cleared.
func (e *Engine) ApplySnapshot(snapshot models.GameState) (models.GameState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireActive(); err != nil {
		return models.GameState{}, err
	}
	if err := e.validSnapshot(snapshot); err != nil {
		return models.GameState{}, err
	}

	snapshot.Status = models.GameStatusInProgress
	e.restoreState(snapshot)
	e.undo = nil

	return e.state(), nil
}

func (e *Engine) validSnapshot(s models.GameState) error {
	if s.GameID != "" && s.GameID != e.gameID {
		return fmt.Errorf("%w: snapshot for game %s", ErrInvalidSnapshot, s.GameID)
	}
	if s.HomeTeamID != e.homeTeamID || s.AwayTeamID != e.awayTeamID {
		return fmt.Errorf("%w: teams do not match", ErrInvalidSnapshot)
	}
	if s.Quarter < 1 || s.ClockSecondsRemaining < 0 ||
		s.ShotClockSecondsRemaining < 0 || s.ShotClockSecondsRemaining > gameclock.ShotClockMax {
		return fmt.Errorf("%w: clock out of range", ErrInvalidSnapshot)
	}
	if s.ScoreHome < 0 || s.ScoreAway < 0 || s.TeamFoulsHome < 0 || s.TeamFoulsAway < 0 ||
		s.TimeoutsRemainingHome < 0 || s.TimeoutsRemainingAway < 0 {
		return fmt.Errorf("%w: negative counter", ErrInvalidSnapshot)
	}
	for _, team := range []string{s.PossessionTeamID, s.PossessionArrow} {
		if team != "" && team != e.homeTeamID && team != e.awayTeamID {
			return fmt.Errorf("%w: unknown team %s", ErrInvalidSnapshot, team)
		}
	}
	return nil
}

func (e *Engine) requireActive() error {
	if !e.status.IsInProgress() {
		return fmt.Errorf("%w: game is %s", ErrGameNotActive, e.status)
	}
	return nil
}

func (e *Engine) state() models.GameState {
	return models.GameState{
		GameID:                    e.gameID,
		HomeTeamID:                e.homeTeamID,
		AwayTeamID:                e.awayTeamID,
		Quarter:                   e.quarter,
		ClockSecondsRemaining:     e.gameClock.Remaining(),
		ClockRunning:              e.gameClock.Running(),
		ShotClockSecondsRemaining: e.shotClock.Remaining(),
		ShotClockRunning:          e.shotClock.Running(),
		ShotClockVisible:          e.shotClock.Visible(),
		ScoreHome:                 e.score[e.homeTeamID],
		ScoreAway:                 e.score[e.awayTeamID],
		TeamFoulsHome:             e.fouls[e.homeTeamID],
		TeamFoulsAway:             e.fouls[e.awayTeamID],
		TimeoutsRemainingHome:     e.timeouts[e.homeTeamID],
		TimeoutsRemainingAway:     e.timeouts[e.awayTeamID],
		PossessionTeamID:          e.possession.Possession(),
		PossessionArrow:           e.possession.Arrow(),
		Status:                    e.status,
	}
}

func (e *Engine) restoreState(s models.GameState) {
	e.quarter = s.Quarter
	e.gameClock.Restore(s.ClockSecondsRemaining, s.ClockRunning)
	e.shotClock.Restore(s.ShotClockSecondsRemaining, s.ShotClockRunning, s.ShotClockVisible)
	e.score = map[string]int{e.homeTeamID: s.ScoreHome, e.awayTeamID: s.ScoreAway}
	e.fouls = map[string]int{e.homeTeamID: s.TeamFoulsHome, e.awayTeamID: s.TeamFoulsAway}
	e.timeouts = map[string]int{e.homeTeamID: s.TimeoutsRemainingHome, e.awayTeamID: s.TimeoutsRemainingAway}
	e.possession.Restore(s.PossessionTeamID, s.PossessionArrow)
	e.status = s.Status
}
