package messaging

import (
	"github.com/KitchAIv1/statjam-sub000/internal/models"
)

// Severity tells the operator screen how loudly to show a message
type Severity string

const (
	// SeverityInfo is a confirmation or a status line
	SeverityInfo Severity = "info"

	// SeverityWarning is a rejected action the operator can correct
	SeverityWarning Severity = "warning"

	// SeverityError is a failure the operator cannot fix from the console
	SeverityError Severity = "error"
)

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// Err is the error returned by the tracker
	Err error
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	// Code is a stable machine-readable identifier, e.g. "clock_not_running"
	Code string

	// Title is a short heading for a toast or dialog
	Title string

	// Message is the full operator-facing explanation
	Message string

	Severity Severity
}

// GetGameStatusMessageInput is the input for GetGameStatusMessage
type GetGameStatusMessageInput struct {
	State models.GameState

	// Team display names, the team IDs are used when empty
	HomeName string
	AwayName string
}

// GetGameStatusMessageOutput is the output for GetGameStatusMessage
type GetGameStatusMessageOutput struct {
	Message string
}

// GetStatMessageInput contains the input for GetStatMessage
type GetStatMessageInput struct {
	Event *models.StatEvent

	// Player is the acting player when known, used for the jersey number and name
	Player *models.Player
}

// GetStatMessageOutput contains the output for GetStatMessage
type GetStatMessageOutput struct {
	Message string
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
}
