package gameclock

// ClockError is a custom error type for clock-related errors
type ClockError string

// Error implements the error interface
func (e ClockError) Error() string {
	return string(e)
}

const (
	ErrInvalidClockValue ClockError = "invalid clock value"
)
