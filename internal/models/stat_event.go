package models

import (
	"time"
)

// StatType is the kind of action recorded by the tracker
type StatType string

const (
	StatTypeFieldGoal    StatType = "field_goal"
	StatTypeThreePointer StatType = "three_pointer"
	StatTypeFreeThrow    StatType = "free_throw"
	StatTypeRebound      StatType = "rebound"
	StatTypeAssist       StatType = "assist"
	StatTypeSteal        StatType = "steal"
	StatTypeBlock        StatType = "block"
	StatTypeTurnover     StatType = "turnover"
	StatTypeFoul         StatType = "foul"
	StatTypeTimeout      StatType = "timeout"
	StatTypeSubstitution StatType = "substitution"
)

// IsShot returns true for field goals and three pointers
func (t StatType) IsShot() bool {
	return t == StatTypeFieldGoal || t == StatTypeThreePointer
}

// Modifier qualifies a stat type. The empty modifier means none.
type Modifier string

const (
	ModifierNone Modifier = ""

	// Shots and free throws
	ModifierMade   Modifier = "made"
	ModifierMissed Modifier = "missed"

	// Rebounds
	ModifierOffensive Modifier = "offensive"
	ModifierDefensive Modifier = "defensive"

	// Fouls
	ModifierPersonal  Modifier = "personal"
	ModifierTechnical Modifier = "technical"

	// Turnover subtypes
	ModifierBadPass       Modifier = "bad_pass"
	ModifierLostBall      Modifier = "lost_ball"
	ModifierTravel        Modifier = "travel"
	ModifierDoubleDribble Modifier = "double_dribble"
	ModifierOffensiveFoul Modifier = "offensive_foul"
	ModifierOutOfBounds   Modifier = "out_of_bounds"
	ModifierShotClock     Modifier = "shot_clock"
	ModifierThreeSeconds  Modifier = "three_seconds"
	ModifierBackcourt     Modifier = "backcourt"
	ModifierOtherTurnover Modifier = "other"
)

// ShotLocation is where on the court a shot was taken, in normalized 0..100 coordinates
type ShotLocation struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Zone string  `json:"zone"`
}

// StatEvent is one recorded action. Once created it is never mutated by the live engine.
type StatEvent struct {
	// ID is the idempotency key used by the persistence collaborator
	ID string `json:"id"`

	// GameID is the game the event belongs to
	GameID string `json:"game_id"`

	// TeamID is the acting team
	TeamID string `json:"team_id"`

	// Player is the acting player, nil for opponent bookkeeping stats
	Player *PlayerRef `json:"player,omitempty"`

	// IsOpponentStat marks coach-mode bookkeeping for the opposing team
	IsOpponentStat bool `json:"is_opponent_stat,omitempty"`

	// StatType and Modifier describe the action
	StatType StatType `json:"stat_type"`
	Modifier Modifier `json:"modifier,omitempty"`

	// Value is the number of points the event contributed
	Value int `json:"value"`

	// Game clock reading when the event was recorded
	Quarter              int `json:"quarter"`
	ClockMinutesSnapshot int `json:"clock_minutes_snapshot"`
	ClockSecondsSnapshot int `json:"clock_seconds_snapshot"`

	// ShotLocation is set only for field goals and three pointers
	ShotLocation *ShotLocation `json:"shot_location,omitempty"`

	// SubstitutedIn is the player who entered the game, set only for substitutions
	SubstitutedIn *PlayerRef `json:"substituted_in,omitempty"`

	// CreatedAt is when the event was recorded
	CreatedAt time.Time `json:"created_at"`
}
