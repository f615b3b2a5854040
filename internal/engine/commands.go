package engine

import (
	"github.com/KitchAIv1/statjam-sub000/internal/models"
)

// command runs fn under the lock on an active game and returns the new state
func (e *Engine) command(fn func() error) (models.GameState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireActive(); err != nil {
		return models.GameState{}, err
	}
	if err := fn(); err != nil {
		return models.GameState{}, err
	}
	return e.state(), nil
}

// StartClock starts the game clock
func (e *Engine) StartClock() (models.GameState, error) {
	return e.command(func() error {
		e.gameClock.Start()
		return nil
	})
}

// StopClock stops the game clock
func (e *Engine) StopClock() (models.GameState, error) {
	return e.command(func() error {
		e.gameClock.Stop()
		return nil
	})
}

// ResetClock stops the game clock and sets it to toSeconds
func (e *Engine) ResetClock(toSeconds int) (models.GameState, error) {
	return e.command(func() error {
		return e.gameClock.Reset(toSeconds)
	})
}

// SetClock sets the game clock to minutes:seconds. It does not refuse a running clock.
func (e *Engine) SetClock(minutes, seconds int) (models.GameState, error) {
	return e.command(func() error {
		return e.gameClock.SetCustom(minutes, seconds)
	})
}

// StartShotClock starts the shot clock
func (e *Engine) StartShotClock() (models.GameState, error) {
	return e.command(func() error {
		e.shotClock.Start()
		return nil
	})
}

// StopShotClock stops the shot clock
func (e *Engine) StopShotClock() (models.GameState, error) {
	return e.command(func() error {
		e.shotClock.Stop()
		return nil
	})
}

// ResetShotClockFull resets the shot clock to 24 seconds
func (e *Engine) ResetShotClockFull() (models.GameState, error) {
	return e.command(func() error {
		e.shotClock.ResetFull()
		return nil
	})
}

// ResetShotClockShort resets the shot clock to 14 seconds
func (e *Engine) ResetShotClockShort() (models.GameState, error) {
	return e.command(func() error {
		e.shotClock.ResetShort()
		return nil
	})
}

// SetShotClock sets the shot clock to seconds
func (e *Engine) SetShotClock(seconds int) (models.GameState, error) {
	return e.command(func() error {
		return e.shotClock.SetTime(seconds)
	})
}

// SetShotClockVisible shows or hides the shot clock
func (e *Engine) SetShotClockVisible(visible bool) (models.GameState, error) {
	return e.command(func() error {
		e.shotClock.SetVisible(visible)
		return nil
	})
}

// Tick advances the game clock and the shot clock by one second each.
// changed is false when neither clock was running.
func (e *Engine) Tick() (state models.GameState, changed bool, err error) {
	state, err = e.command(func() error {
		game := e.gameClock.Tick()
		shot := e.shotClock.Tick()
		changed = game || shot
		return nil
	})
	return state, changed, err
}

// SetPossession gives the ball to teamID
func (e *Engine) SetPossession(teamID string) (models.GameState, error) {
	return e.command(func() error {
		return e.possession.SetPossession(teamID)
	})
}

// SetArrow points the possession arrow at teamID
func (e *Engine) SetArrow(teamID string) (models.GameState, error) {
	return e.command(func() error {
		return e.possession.SetArrow(teamID)
	})
}

// AlternatePossession gives the ball to the arrow team and flips the arrow
func (e *Engine) AlternatePossession() (models.GameState, error) {
	return e.command(func() error {
		return e.possession.AlternatePossession()
	})
}
