package engine

import (
	"github.com/KitchAIv1/statjam-sub000/internal/roster"
)

// EngineError is a custom error type for live game errors
type EngineError string

// Error implements the error interface
func (e EngineError) Error() string {
	return string(e)
}

const (
	ErrNoPlayerSelected    EngineError = "no player selected"
	ErrClockNotRunning     EngineError = "clock not running"
	ErrInvalidModifier     EngineError = "invalid modifier for stat type"
	ErrInvalidShotLocation EngineError = "invalid shot location"
	ErrNoTimeoutsRemaining EngineError = "no timeouts remaining"
	ErrDuplicateSubmission EngineError = "duplicate submission"
	ErrNothingToUndo       EngineError = "nothing to undo"
	ErrGameNotActive       EngineError = "game not active"
	ErrInvalidTransition   EngineError = "invalid game status transition"
	ErrInvalidSnapshot     EngineError = "invalid game snapshot"
	ErrNilConfig           EngineError = "config cannot be nil"
	ErrNilClock            EngineError = "clock cannot be nil"
	ErrNilUUIDGenerator    EngineError = "UUID generator cannot be nil"
	ErrInvalidTeams        EngineError = "home and away teams must be distinct and non-empty"
)

// Roster errors are surfaced unchanged so callers can match them with errors.Is
const (
	ErrInvalidRosterOperation = roster.ErrInvalidRosterOperation
	ErrInsufficientRoster     = roster.ErrInsufficientRoster
)
