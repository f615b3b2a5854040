package engine

import (
	"fmt"
	"time"

	"github.com/KitchAIv1/statjam-sub000/internal/models"
)

// Action is a candidate stat submitted by the operator
type Action struct {
	// Player is the acting player; nil only for opponent-tagged stats
	Player *models.PlayerRef

	// IsOpponentStat tags coach-mode bookkeeping for a team whose players are not tracked
	IsOpponentStat bool

	TeamID   string
	StatType models.StatType
	Modifier models.Modifier

	// ShotLocation is allowed only for field goals and three pointers
	ShotLocation *models.ShotLocation

	// PlayerIn is the player entering the game on a substitution
	PlayerIn *models.PlayerRef
}

type debounceKey struct {
	actor    string
	statType models.StatType
	modifier models.Modifier
}

func (a Action) debounceKey() debounceKey {
	actor := "opponent:" + a.TeamID
	if a.Player != nil {
		actor = a.Player.String()
	}
	return debounceKey{actor: actor, statType: a.StatType, modifier: a.Modifier}
}

// Record validates an action, applies its effects and appends one stat event.
// The new event replaces whatever was in the undo slot.
func (e *Engine) Record(action Action) (models.GameState, *models.StatEvent, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.validate(action); err != nil {
		return models.GameState{}, nil, err
	}

	now := e.clock.Now()
	key := action.debounceKey()
	if last, ok := e.recent[key]; ok && now.Sub(last) < e.debounceWindow {
		return models.GameState{}, nil, fmt.Errorf("%w: %s %s %s", ErrDuplicateSubmission, key.actor, action.StatType, action.Modifier)
	}

	prior := e.snapshot()
	event := e.newEvent(action, now)
	if err := e.apply(action, event); err != nil {
		e.restore(prior)
		return models.GameState{}, nil, err
	}

	e.pruneRecent(now)
	e.recent[key] = now
	e.undo = &undoEntry{event: event, prior: prior, key: key}

	return e.state(), copyEvent(event), nil
}

// Substitute records a substitution of out for in on teamID
func (e *Engine) Substitute(teamID string, out, in models.PlayerRef) (models.GameState, *models.StatEvent, error) {
	return e.Record(Action{
		Player:   &out,
		TeamID:   teamID,
		StatType: models.StatTypeSubstitution,
		PlayerIn: &in,
	})
}

func (e *Engine) validate(a Action) error {
	if err := e.requireActive(); err != nil {
		return err
	}

	if !a.IsOpponentStat && (a.Player == nil || a.Player.IsZero()) {
		return ErrNoPlayerSelected
	}

	if !e.gameClock.Running() && !allowedWhileStopped(a.StatType, a.Modifier) {
		return fmt.Errorf("%w: %s %s needs a running clock", ErrClockNotRunning, a.StatType, a.Modifier)
	}

	if !AllowedPair(a.StatType, a.Modifier) {
		return fmt.Errorf("%w: %s cannot carry %q", ErrInvalidModifier, a.StatType, a.Modifier)
	}

	if err := e.validateActor(a); err != nil {
		return err
	}

	if a.ShotLocation != nil {
		if !a.StatType.IsShot() {
			return fmt.Errorf("%w: %s has no shot location", ErrInvalidShotLocation, a.StatType)
		}
		if !inRange(a.ShotLocation.X) || !inRange(a.ShotLocation.Y) {
			return fmt.Errorf("%w: %v,%v", ErrInvalidShotLocation, a.ShotLocation.X, a.ShotLocation.Y)
		}
	}

	switch a.StatType {
	case models.StatTypeTimeout:
		if e.timeouts[a.TeamID] <= 0 {
			return fmt.Errorf("%w: team %s", ErrNoTimeoutsRemaining, a.TeamID)
		}
	case models.StatTypeSubstitution:
		if a.IsOpponentStat || a.PlayerIn == nil {
			return fmt.Errorf("%w: substitution needs a player going out and one coming in", ErrInvalidRosterOperation)
		}
		if err := e.rosters[a.TeamID].CanSubstitute(*a.Player, *a.PlayerIn); err != nil {
			return err
		}
	}

	return nil
}

func (e *Engine) validateActor(a Action) error {
	if a.TeamID != e.homeTeamID && a.TeamID != e.awayTeamID {
		return fmt.Errorf("%w: team %q is not playing", ErrInvalidRosterOperation, a.TeamID)
	}
	if a.PlayerIn != nil && a.StatType != models.StatTypeSubstitution {
		return fmt.Errorf("%w: only substitutions bring a player in", ErrInvalidRosterOperation)
	}

	r, tracked := e.rosters[a.TeamID]
	if a.IsOpponentStat {
		if a.Player != nil {
			return fmt.Errorf("%w: opponent stats carry no player", ErrInvalidRosterOperation)
		}
		if tracked {
			return fmt.Errorf("%w: team %s is tracked by player", ErrInvalidRosterOperation, a.TeamID)
		}
		return nil
	}

	if !tracked {
		return fmt.Errorf("%w: team %s has no tracked roster", ErrInvalidRosterOperation, a.TeamID)
	}
	if !r.IsEligible(*a.Player) {
		return fmt.Errorf("%w: %s is not on team %s", ErrInvalidRosterOperation, a.Player, a.TeamID)
	}
	return nil
}

func (e *Engine) newEvent(a Action, now time.Time) *models.StatEvent {
	minutes, seconds := e.gameClock.Snapshot()

	event := &models.StatEvent{
		ID:                   e.uuidGenerator.NewUUID(),
		GameID:               e.gameID,
		TeamID:               a.TeamID,
		IsOpponentStat:       a.IsOpponentStat,
		StatType:             a.StatType,
		Modifier:             a.Modifier,
		Value:                PointValue(a.StatType, a.Modifier),
		Quarter:              e.quarter,
		ClockMinutesSnapshot: minutes,
		ClockSecondsSnapshot: seconds,
		CreatedAt:            now,
	}
	if a.Player != nil {
		player := *a.Player
		event.Player = &player
	}
	if a.PlayerIn != nil {
		in := *a.PlayerIn
		event.SubstitutedIn = &in
	}
	if a.ShotLocation != nil {
		loc := *a.ShotLocation
		event.ShotLocation = &loc
	}
	return event
}

func (e *Engine) apply(a Action, event *models.StatEvent) error {
	e.score[a.TeamID] += event.Value

	switch a.StatType {
	case models.StatTypeFoul:
		e.fouls[a.TeamID]++
	case models.StatTypeTimeout:
		e.timeouts[a.TeamID]--
	case models.StatTypeSubstitution:
		return e.rosters[a.TeamID].Substitute(*a.Player, *a.PlayerIn)
	}
	return nil
}

// pruneRecent drops debounce entries that can no longer match
func (e *Engine) pruneRecent(now time.Time) {
	for key, at := range e.recent {
		if now.Sub(at) >= e.debounceWindow {
			delete(e.recent, key)
		}
	}
}

func inRange(v float64) bool {
	return v >= 0 && v <= 100
}

func copyEvent(event *models.StatEvent) *models.StatEvent {
	c := *event
	if event.Player != nil {
		p := *event.Player
		c.Player = &p
	}
	if event.SubstitutedIn != nil {
		p := *event.SubstitutedIn
		c.SubstitutedIn = &p
	}
	if event.ShotLocation != nil {
		l := *event.ShotLocation
		c.ShotLocation = &l
	}
	return &c
}
