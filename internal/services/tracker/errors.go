package tracker

// TrackerError is a custom error type for live tracking service errors
type TrackerError string

// Error implements the error interface
func (e TrackerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameNotFound             TrackerError = "game not found"
	ErrGameAlreadyExists        TrackerError = "game already exists"
	ErrPersistenceFailure       TrackerError = "stat may not have saved"
	ErrInvalidClockCommand      TrackerError = "invalid clock command"
	ErrInvalidPossessionCommand TrackerError = "invalid possession command"
	ErrInvalidInput             TrackerError = "invalid input"
	ErrServiceClosed            TrackerError = "tracker service is closed"
	ErrNilConfig                TrackerError = "config cannot be nil"
	ErrNilGameRepo              TrackerError = "game repository cannot be nil"
	ErrNilRosterRepo            TrackerError = "roster repository cannot be nil"
	ErrNilEventRepo             TrackerError = "stat event repository cannot be nil"
	ErrNilBroker                TrackerError = "broker cannot be nil"
	ErrNilClock                 TrackerError = "clock cannot be nil"
	ErrNilUUIDGenerator         TrackerError = "UUID generator cannot be nil"
)
