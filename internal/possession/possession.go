package possession

import "fmt"

// PossessionError is a custom error type for possession errors
type PossessionError string

// Error implements the error interface
func (e PossessionError) Error() string {
	return string(e)
}

const (
	ErrUnknownTeam PossessionError = "team is not playing in this game"
	ErrArrowNotSet PossessionError = "possession arrow is not set"
)

// Tracker owns the team in possession and the alternating-possession arrow.
// The two are tracked separately; consumers compare them to show a jump-ball indicator.
type Tracker struct {
	homeTeamID string
	awayTeamID string
	possession string
	arrow      string
}

// New returns a tracker for a game between homeTeamID and awayTeamID
func New(homeTeamID, awayTeamID string) *Tracker {
	return &Tracker{homeTeamID: homeTeamID, awayTeamID: awayTeamID}
}

// SetPossession gives the ball to teamID. An empty teamID clears possession.
func (t *Tracker) SetPossession(teamID string) error {
	if err := t.check(teamID); err != nil {
		return err
	}
	t.possession = teamID
	return nil
}

// SetArrow points the possession arrow at teamID. An empty teamID clears it.
func (t *Tracker) SetArrow(teamID string) error {
	if err := t.check(teamID); err != nil {
		return err
	}
	t.arrow = teamID
	return nil
}

// AlternatePossession awards the ball to the arrow team and flips the arrow
func (t *Tracker) AlternatePossession() error {
	if t.arrow == "" {
		return ErrArrowNotSet
	}
	t.possession = t.arrow
	t.arrow = t.other(t.arrow)
	return nil
}

// Possession returns the team in possession, empty if unknown
func (t *Tracker) Possession() string {
	return t.possession
}

// Arrow returns the team the arrow points at, empty if unset
func (t *Tracker) Arrow() string {
	return t.arrow
}

// JumpBallIndicator returns true when possession and arrow are both known and differ
func (t *Tracker) JumpBallIndicator() bool {
	return t.possession != "" && t.arrow != "" && t.possession != t.arrow
}

// Restore sets possession and arrow from a snapshot without validation
func (t *Tracker) Restore(possession, arrow string) {
	t.possession = possession
	t.arrow = arrow
}

func (t *Tracker) check(teamID string) error {
	if teamID == "" || teamID == t.homeTeamID || teamID == t.awayTeamID {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnknownTeam, teamID)
}

func (t *Tracker) other(teamID string) string {
	if teamID == t.homeTeamID {
		return t.awayTeamID
	}
	return t.homeTeamID
}
