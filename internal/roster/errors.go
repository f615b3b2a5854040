package roster

// RosterError is a custom error type for roster errors
type RosterError string

// Error implements the error interface
func (e RosterError) Error() string {
	return string(e)
}

const (
	ErrInvalidRosterOperation RosterError = "invalid roster operation"
	ErrInsufficientRoster     RosterError = "insufficient roster"
)
