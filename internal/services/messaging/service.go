package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KitchAIv1/statjam-sub000/internal/court"
	"github.com/KitchAIv1/statjam-sub000/internal/engine"
	"github.com/KitchAIv1/statjam-sub000/internal/gameclock"
	"github.com/KitchAIv1/statjam-sub000/internal/models"
	"github.com/KitchAIv1/statjam-sub000/internal/possession"
	"github.com/KitchAIv1/statjam-sub000/internal/services/tracker"
)

// CodeInternal is the code of any error the console has no wording for
const CodeInternal = "internal_error"

type errorMessage struct {
	err      error
	code     string
	title    string
	message  string
	severity Severity
}

// errorMessages is checked in order, the first match wins
var errorMessages = []errorMessage{
	{engine.ErrNoPlayerSelected, "no_player_selected", "Select a player", "Pick the player who made the play, or tag the stat as opponent.", SeverityWarning},
	{engine.ErrClockNotRunning, "clock_not_running", "Clock is stopped", "Start the game clock before recording this stat.", SeverityWarning},
	{engine.ErrInvalidModifier, "invalid_modifier", "Invalid stat", "That result does not apply to this stat type.", SeverityWarning},
	{engine.ErrInvalidShotLocation, "invalid_shot_location", "Invalid shot location", "Shot locations can only be recorded for field goals and three pointers inside the court.", SeverityWarning},
	{engine.ErrNoTimeoutsRemaining, "no_timeouts_remaining", "No timeouts left", "This team has used all of its timeouts.", SeverityWarning},
	{engine.ErrDuplicateSubmission, "duplicate_submission", "Already recorded", "The same stat was just recorded. Tap again to record it twice.", SeverityInfo},
	{engine.ErrNothingToUndo, "nothing_to_undo", "Nothing to undo", "There is no recent stat to undo.", SeverityInfo},
	{engine.ErrGameNotActive, "game_not_active", "Game not in progress", "This game is not in progress, live actions are disabled.", SeverityWarning},
	{engine.ErrInvalidTransition, "invalid_transition", "Not allowed now", "The game cannot move to that status from where it is.", SeverityWarning},
	{engine.ErrInvalidSnapshot, "invalid_snapshot", "Correction rejected", "The corrected game state is not valid.", SeverityWarning},
	{engine.ErrInvalidTeams, "invalid_teams", "Invalid teams", "A game needs two different teams.", SeverityWarning},
	{engine.ErrInsufficientRoster, "insufficient_roster", "Not enough players", "A team needs at least five eligible players to start.", SeverityWarning},
	{engine.ErrInvalidRosterOperation, "invalid_roster_operation", "Roster change not allowed", "Check that the player going out is on court and the player coming in is on the bench.", SeverityWarning},
	{gameclock.ErrInvalidClockValue, "invalid_clock_value", "Invalid clock value", "Enter minutes and seconds between 0 and 59, and a shot clock up to 35.", SeverityWarning},
	{possession.ErrUnknownTeam, "unknown_team", "Unknown team", "That team is not playing in this game.", SeverityWarning},
	{possession.ErrArrowNotSet, "arrow_not_set", "Arrow not set", "Set the possession arrow before alternating possession.", SeverityWarning},
	{court.ErrInvalidContainer, "invalid_court", "Court not ready", "The court diagram has no size yet. Try the tap again.", SeverityWarning},
	{court.ErrInvalidPerspective, "invalid_perspective", "Invalid court direction", "Choose which team attacks up the screen.", SeverityWarning},
	{court.ErrInvalidTap, "invalid_tap", "Invalid tap", "The tap could not be placed on the court.", SeverityWarning},
	{tracker.ErrGameNotFound, "game_not_found", "Game not found", "This game does not exist.", SeverityError},
	{tracker.ErrGameAlreadyExists, "game_already_exists", "Game already exists", "A game with this ID already exists.", SeverityWarning},
	{tracker.ErrInvalidClockCommand, "invalid_clock_command", "Unknown clock command", "That clock button does not apply to this clock.", SeverityWarning},
	{tracker.ErrInvalidPossessionCommand, "invalid_possession_command", "Unknown possession command", "That possession action is not supported.", SeverityWarning},
	{tracker.ErrPersistenceFailure, "persistence_failure", "Stat may not have saved", "The stat is on the scoreboard but could not be saved. Check the connection.", SeverityError},
	{tracker.ErrServiceClosed, "service_closed", "Server shutting down", "The tracker is shutting down, changes are not being saved.", SeverityError},
	{tracker.ErrInvalidInput, "invalid_input", "Invalid request", "Some required information is missing.", SeverityWarning},
}

// service implements the Service interface
type service struct {
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	return &service{}, nil
}

// GetErrorMessage returns the operator-facing code and wording for an error
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil || input.Err == nil {
		return nil, errors.New("error is required")
	}

	for _, m := range errorMessages {
		if errors.Is(input.Err, m.err) {
			return &GetErrorMessageOutput{
				Code:     m.code,
				Title:    m.title,
				Message:  m.message,
				Severity: m.severity,
			}, nil
		}
	}

	return &GetErrorMessageOutput{
		Code:     CodeInternal,
		Title:    "Something went wrong",
		Message:  "The action could not be completed. Try again.",
		Severity: SeverityError,
	}, nil
}

// GetGameStatusMessage returns a one-line scoreboard summary, e.g.
// "Q2 04:31 | Home 20 - 18 Away | Away in bonus"
func (s *service) GetGameStatusMessage(ctx context.Context, input *GetGameStatusMessageInput) (*GetGameStatusMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input is required")
	}

	state := input.State
	home := input.HomeName
	if home == "" {
		home = state.HomeTeamID
	}
	away := input.AwayName
	if away == "" {
		away = state.AwayTeamID
	}

	score := fmt.Sprintf("%s %d - %d %s", home, state.ScoreHome, state.ScoreAway, away)

	switch state.Status {
	case models.GameStatusScheduled:
		return &GetGameStatusMessageOutput{Message: fmt.Sprintf("Scheduled | %s vs %s", home, away)}, nil
	case models.GameStatusCompleted:
		return &GetGameStatusMessageOutput{Message: fmt.Sprintf("Final | %s", score)}, nil
	case models.GameStatusCancelled:
		return &GetGameStatusMessageOutput{Message: fmt.Sprintf("Cancelled | %s", score)}, nil
	}

	parts := []string{
		fmt.Sprintf("%s %s", periodLabel(state.Quarter), gameclock.FormatClock(state.ClockSecondsRemaining)),
		score,
	}

	var bonus []string
	if state.BonusHome() {
		bonus = append(bonus, home)
	}
	if state.BonusAway() {
		bonus = append(bonus, away)
	}
	if len(bonus) > 0 {
		parts = append(parts, strings.Join(bonus, " and ")+" in bonus")
	}

	return &GetGameStatusMessageOutput{Message: strings.Join(parts, " | ")}, nil
}

// GetStatMessage returns the play-by-play line for a recorded stat, e.g.
// "Q1 09:12 #23 Ada made three pointer (corner_three_left)"
func (s *service) GetStatMessage(ctx context.Context, input *GetStatMessageInput) (*GetStatMessageOutput, error) {
	if input == nil || input.Event == nil {
		return nil, errors.New("event is required")
	}

	event := input.Event
	actor := actorLabel(event, input.Player)

	var action string
	switch event.StatType {
	case models.StatTypeSubstitution:
		in := "a bench player"
		if event.SubstitutedIn != nil {
			in = event.SubstitutedIn.ID
		}
		action = fmt.Sprintf("%s checks in for %s", in, actor)
	case models.StatTypeTimeout:
		action = fmt.Sprintf("timeout %s", event.TeamID)
	default:
		words := []string{actor}
		if event.Modifier != models.ModifierNone {
			words = append(words, strings.ReplaceAll(string(event.Modifier), "_", " "))
		}
		words = append(words, strings.ReplaceAll(string(event.StatType), "_", " "))
		action = strings.Join(words, " ")
	}

	if event.ShotLocation != nil && event.ShotLocation.Zone != "" {
		action = fmt.Sprintf("%s (%s)", action, event.ShotLocation.Zone)
	}

	clock := event.ClockMinutesSnapshot*60 + event.ClockSecondsSnapshot
	return &GetStatMessageOutput{
		Message: fmt.Sprintf("%s %s %s", periodLabel(event.Quarter), gameclock.FormatClock(clock), action),
	}, nil
}

func periodLabel(quarter int) string {
	if quarter > models.RegulationQuarters {
		return fmt.Sprintf("OT%d", quarter-models.RegulationQuarters)
	}
	return fmt.Sprintf("Q%d", quarter)
}

func actorLabel(event *models.StatEvent, player *models.Player) string {
	switch {
	case event.IsOpponentStat || event.Player == nil:
		return "Opponent"
	case player == nil:
		return event.Player.ID
	case player.JerseyNumber != "":
		return fmt.Sprintf("#%s %s", player.JerseyNumber, player.Name)
	default:
		return player.Name
	}
}
