package models

import "time"

// GameStatus represents the lifecycle state of a game
type GameStatus string

const (
	// GameStatusScheduled indicates a game has been created but play has not started
	GameStatusScheduled GameStatus = "scheduled"

	// GameStatusInProgress indicates a game is being tracked live
	GameStatusInProgress GameStatus = "in_progress"

	// GameStatusCompleted indicates a game has ended normally
	GameStatusCompleted GameStatus = "completed"

	// GameStatusCancelled indicates a game was abandoned
	GameStatusCancelled GameStatus = "cancelled"
)

// IsScheduled returns true if the game has not started yet
func (s GameStatus) IsScheduled() bool {
	return s == GameStatusScheduled
}

// IsInProgress returns true if the game accepts live actions
func (s GameStatus) IsInProgress() bool {
	return s == GameStatusInProgress
}

// IsTerminal returns true once the game has been completed or cancelled
func (s GameStatus) IsTerminal() bool {
	return s == GameStatusCompleted || s == GameStatusCancelled
}

// BonusFoulThreshold is the team foul count at which a team enters the bonus
const BonusFoulThreshold = 5

// RegulationQuarters is the number of regulation periods; later quarters are overtime
const RegulationQuarters = 4

// GameState is the authoritative snapshot of one game in progress.
// It holds only comparable fields so a copy is a full snapshot.
type GameState struct {
	// GameID is the unique identifier for the game
	GameID string `json:"game_id"`

	// HomeTeamID and AwayTeamID identify the two teams
	HomeTeamID string `json:"home_team_id"`
	AwayTeamID string `json:"away_team_id"`

	// Quarter is the current period, 5 and above are overtime periods
	Quarter int `json:"quarter"`

	// Game clock
	ClockSecondsRemaining int  `json:"clock_seconds_remaining"`
	ClockRunning          bool `json:"clock_running"`

	// Shot clock
	ShotClockSecondsRemaining int  `json:"shot_clock_seconds_remaining"`
	ShotClockRunning          bool `json:"shot_clock_running"`
	ShotClockVisible          bool `json:"shot_clock_visible"`

	// Score
	ScoreHome int `json:"score_home"`
	ScoreAway int `json:"score_away"`

	// Team fouls in the current period
	TeamFoulsHome int `json:"team_fouls_home"`
	TeamFoulsAway int `json:"team_fouls_away"`

	// Timeouts left for each team
	TimeoutsRemainingHome int `json:"timeouts_remaining_home"`
	TimeoutsRemainingAway int `json:"timeouts_remaining_away"`

	// PossessionTeamID is the team currently holding the ball
	PossessionTeamID string `json:"possession_team_id"`

	// PossessionArrow is the team entitled to the next jump-ball possession
	PossessionArrow string `json:"possession_arrow"`

	// Status is the lifecycle state of the game
	Status GameStatus `json:"status"`
}

// IsHome returns true if teamID is the home team
func (g GameState) IsHome(teamID string) bool {
	return teamID != "" && teamID == g.HomeTeamID
}

// IsAway returns true if teamID is the away team
func (g GameState) IsAway(teamID string) bool {
	return teamID != "" && teamID == g.AwayTeamID
}

// HasTeam returns true if teamID is playing in this game
func (g GameState) HasTeam(teamID string) bool {
	return g.IsHome(teamID) || g.IsAway(teamID)
}

// OtherTeam returns the opponent of teamID, or an empty string if teamID is not playing
func (g GameState) OtherTeam(teamID string) string {
	switch {
	case g.IsHome(teamID):
		return g.AwayTeamID
	case g.IsAway(teamID):
		return g.HomeTeamID
	default:
		return ""
	}
}

// BonusHome returns true when the home team has reached the foul threshold
func (g GameState) BonusHome() bool {
	return g.TeamFoulsHome >= BonusFoulThreshold
}

// BonusAway returns true when the away team has reached the foul threshold
func (g GameState) BonusAway() bool {
	return g.TeamFoulsAway >= BonusFoulThreshold
}

// InBonus returns the bonus flag for teamID
func (g GameState) InBonus(teamID string) bool {
	switch {
	case g.IsHome(teamID):
		return g.BonusHome()
	case g.IsAway(teamID):
		return g.BonusAway()
	default:
		return false
	}
}

// IsOvertime returns true once regulation is over
func (g GameState) IsOvertime() bool {
	return g.Quarter > RegulationQuarters
}

// JumpBallIndicator returns true when the arrow points away from the team in possession
func (g GameState) JumpBallIndicator() bool {
	return g.PossessionTeamID != "" && g.PossessionArrow != "" && g.PossessionTeamID != g.PossessionArrow
}

// Game is the stored record of one game: its teams, the last authoritative
// state and the roster partitions at that moment
type Game struct {
	// ID is the unique identifier for the game
	ID string `json:"id"`

	// HomeTeamID and AwayTeamID identify the two teams
	HomeTeamID string `json:"home_team_id"`
	AwayTeamID string `json:"away_team_id"`

	// State is the latest snapshot of the live state
	State GameState `json:"state"`

	// Rosters holds the on-court/bench partition of each tracked team
	Rosters []RosterState `json:"rosters,omitempty"`

	// CreatedAt is when the game was created
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the snapshot was last written
	UpdatedAt time.Time `json:"updated_at"`
}
