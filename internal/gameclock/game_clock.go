package gameclock

import (
	"fmt"
)

const (
	// DefaultQuarterSeconds is the length of a regulation quarter
	DefaultQuarterSeconds = 10 * 60

	// DefaultOvertimeSeconds is the length of an overtime period
	DefaultOvertimeSeconds = 5 * 60
)

// GameClock owns the game clock countdown. It is not safe for concurrent use;
// the engine that owns it serializes access.
type GameClock struct {
	seconds int
	running bool
}

// NewGameClock returns a stopped clock set to seconds
func NewGameClock(seconds int) *GameClock {
	if seconds < 0 {
		seconds = 0
	}
	return &GameClock{seconds: seconds}
}

// Start starts the countdown. A clock at zero stays stopped.
func (c *GameClock) Start() {
	if c.seconds == 0 {
		return
	}
	c.running = true
}

// Stop stops the countdown
func (c *GameClock) Stop() {
	c.running = false
}

// Reset stops the clock and sets it to toSeconds
func (c *GameClock) Reset(toSeconds int) error {
	if toSeconds < 0 {
		return fmt.Errorf("%w: %d seconds", ErrInvalidClockValue, toSeconds)
	}
	c.seconds = toSeconds
	c.running = false
	return nil
}

// SetCustom sets the clock to minutes:seconds without touching the running flag.
// Refusing edits while the clock runs is left to the caller.
func (c *GameClock) SetCustom(minutes, seconds int) error {
	if minutes < 0 || seconds < 0 || seconds > 59 {
		return fmt.Errorf("%w: %d:%d", ErrInvalidClockValue, minutes, seconds)
	}
	c.seconds = minutes*60 + seconds
	if c.seconds == 0 {
		c.running = false
	}
	return nil
}

// Tick removes one second from a running clock and stops it at zero.
// It returns true if the clock moved.
func (c *GameClock) Tick() bool {
	if !c.running {
		return false
	}
	c.seconds--
	if c.seconds <= 0 {
		c.seconds = 0
		c.running = false
	}
	return true
}

// Remaining returns the seconds left on the clock
func (c *GameClock) Remaining() int {
	return c.seconds
}

// Running returns true while the clock counts down
func (c *GameClock) Running() bool {
	return c.running
}

// Snapshot returns the clock reading split into minutes and seconds
func (c *GameClock) Snapshot() (minutes, seconds int) {
	return c.seconds / 60, c.seconds % 60
}

// Restore puts the clock back to a previously captured reading
func (c *GameClock) Restore(seconds int, running bool) {
	if seconds < 0 {
		seconds = 0
	}
	c.seconds = seconds
	c.running = running && seconds > 0
}
