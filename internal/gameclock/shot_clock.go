package gameclock

import (
	"fmt"
)

const (
	// ShotClockFull is the reset value for a new possession
	ShotClockFull = 24

	// ShotClockShort is the reset value after an offensive rebound or kicked ball
	ShotClockShort = 14

	// ShotClockMax is the highest value an operator may set
	ShotClockMax = 35
)

// ShotClock owns the shot clock countdown, independent of the game clock.
// Visibility is display-only; a hidden shot clock keeps counting.
type ShotClock struct {
	seconds int
	running bool
	visible bool
}

// NewShotClock returns a stopped, visible shot clock at the full reset value
func NewShotClock() *ShotClock {
	return &ShotClock{seconds: ShotClockFull, visible: true}
}

// Start starts the countdown. A shot clock at zero stays stopped.
func (c *ShotClock) Start() {
	if c.seconds == 0 {
		return
	}
	c.running = true
}

// Stop stops the countdown
func (c *ShotClock) Stop() {
	c.running = false
}

// Reset sets the shot clock to toSeconds. A running shot clock keeps running.
func (c *ShotClock) Reset(toSeconds int) error {
	if err := validShotClock(toSeconds); err != nil {
		return err
	}
	c.seconds = toSeconds
	if c.seconds == 0 {
		c.running = false
	}
	return nil
}

// ResetFull resets to 24 seconds
func (c *ShotClock) ResetFull() {
	c.seconds = ShotClockFull
}

// ResetShort resets to 14 seconds
func (c *ShotClock) ResetShort() {
	c.seconds = ShotClockShort
}

// SetTime sets the shot clock to an arbitrary value in 0..35
func (c *ShotClock) SetTime(seconds int) error {
	return c.Reset(seconds)
}

// Tick removes one second from a running shot clock and stops it at zero.
// It returns true if the clock moved.
func (c *ShotClock) Tick() bool {
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

// SetVisible toggles display of the shot clock
func (c *ShotClock) SetVisible(visible bool) {
	c.visible = visible
}

// Remaining returns the seconds left on the shot clock
func (c *ShotClock) Remaining() int {
	return c.seconds
}

// Running returns true while the shot clock counts down
func (c *ShotClock) Running() bool {
	return c.running
}

// Visible returns true if the shot clock is displayed
func (c *ShotClock) Visible() bool {
	return c.visible
}

// Restore puts the shot clock back to a previously captured reading
func (c *ShotClock) Restore(seconds int, running, visible bool) {
	if seconds < 0 {
		seconds = 0
	}
	if seconds > ShotClockMax {
		seconds = ShotClockMax
	}
	c.seconds = seconds
	c.running = running && seconds > 0
	c.visible = visible
}

func validShotClock(seconds int) error {
	if seconds < 0 || seconds > ShotClockMax {
		return fmt.Errorf("%w: shot clock %d", ErrInvalidClockValue, seconds)
	}
	return nil
}
