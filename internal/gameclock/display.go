package gameclock

import "fmt"

// Level is the display urgency of a shot clock reading
type Level string

const (
	LevelNormal   Level = "normal"
	LevelWarning  Level = "warning"
	LevelCritical Level = "critical"
)

const (
	criticalBelow = 6
	warningBelow  = 11
)

// FormatClock renders seconds as zero-padded MM:SS
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// ShotClockLevel classifies a shot clock reading for color coding and audible cues
func ShotClockLevel(seconds int) Level {
	switch {
	case seconds < criticalBelow:
		return LevelCritical
	case seconds < warningBelow:
		return LevelWarning
	default:
		return LevelNormal
	}
}
