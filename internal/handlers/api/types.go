package api

import (
	"github.com/KitchAIv1/statjam-sub000/internal/court"
	"github.com/KitchAIv1/statjam-sub000/internal/gameclock"
	"github.com/KitchAIv1/statjam-sub000/internal/models"
	"github.com/KitchAIv1/statjam-sub000/internal/services/tracker"
)

type createGameRequest struct {
	GameID     string `json:"game_id"`
	HomeTeamID string `json:"home_team_id"`
	AwayTeamID string `json:"away_team_id"`
}

type startGameRequest struct {
	HomeStarters    []models.PlayerRef `json:"home_starters"`
	AwayStarters    []models.PlayerRef `json:"away_starters"`
	UntrackedTeamID string             `json:"untracked_team_id"`
}

type recordStatRequest struct {
	TeamID         string               `json:"team_id"`
	Player         *models.PlayerRef    `json:"player"`
	IsOpponentStat bool                 `json:"is_opponent_stat"`
	StatType       models.StatType      `json:"stat_type"`
	Modifier       models.Modifier      `json:"modifier"`
	ShotLocation   *models.ShotLocation `json:"shot_location"`
}

type recordShotRequest struct {
	TeamID         string            `json:"team_id"`
	Player         *models.PlayerRef `json:"player"`
	IsOpponentStat bool              `json:"is_opponent_stat"`
	Made           bool              `json:"made"`

	// Tap position inside the court diagram, in pixels
	X           float64           `json:"x"`
	Y           float64           `json:"y"`
	Width       float64           `json:"width"`
	Height      float64           `json:"height"`
	Perspective court.Perspective `json:"perspective"`
}

type substituteRequest struct {
	TeamID    string           `json:"team_id"`
	PlayerOut models.PlayerRef `json:"player_out"`
	PlayerIn  models.PlayerRef `json:"player_in"`
}

type clockRequest struct {
	Target  tracker.ClockTarget `json:"target"`
	Action  tracker.ClockAction `json:"action"`
	Minutes int                 `json:"minutes"`
	Seconds int                 `json:"seconds"`
}

type possessionRequest struct {
	Action tracker.PossessionAction `json:"action"`
	TeamID string                   `json:"team_id"`
}

type advanceQuarterRequest struct {
	ResetTeamFouls bool `json:"reset_team_fouls"`
}

type registerPlayersRequest struct {
	Players []models.Player `json:"players"`
}

// stateView is a game state with the display values the operator console shows
type stateView struct {
	State          models.GameState     `json:"state"`
	Clock          string               `json:"clock"`
	ShotClockLevel gameclock.Level      `json:"shot_clock_level"`
	BonusHome      bool                 `json:"bonus_home"`
	BonusAway      bool                 `json:"bonus_away"`
	JumpBall       bool                 `json:"jump_ball"`
	Overtime       bool                 `json:"overtime"`
	Summary        string               `json:"summary,omitempty"`
	Rosters        []models.RosterState `json:"rosters,omitempty"`
	CanUndo        bool                 `json:"can_undo"`
}

type eventResponse struct {
	Game     stateView           `json:"game"`
	Event    *models.StatEvent   `json:"event,omitempty"`
	PlayLine string              `json:"play_line,omitempty"`
	Location *court.Location     `json:"location,omitempty"`
	Roster   *models.RosterState `json:"roster,omitempty"`
}

type gamesResponse struct {
	Games []*models.Game `json:"games"`
}

type playsResponse struct {
	Events []*models.StatEvent `json:"events"`
}

type playersResponse struct {
	Players []models.Player `json:"players"`
}

func newStateView(state models.GameState) stateView {
	return stateView{
		State:          state,
		Clock:          gameclock.FormatClock(state.ClockSecondsRemaining),
		ShotClockLevel: gameclock.ShotClockLevel(state.ShotClockSecondsRemaining),
		BonusHome:      state.BonusHome(),
		BonusAway:      state.BonusAway(),
		JumpBall:       state.JumpBallIndicator(),
		Overtime:       state.IsOvertime(),
	}
}
