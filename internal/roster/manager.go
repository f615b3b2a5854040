package roster

import (
	"fmt"

	"github.com/KitchAIv1/statjam-sub000/internal/models"
)

// OnCourtSize is the number of players a team has on the floor
const OnCourtSize = 5

// Manager owns the on-court/bench partition of one team's eligible players.
// It is not safe for concurrent use.
type Manager struct {
	teamID  string
	order   []models.PlayerRef
	players map[models.PlayerRef]models.Player
	onCourt map[models.PlayerRef]bool
}

// New builds a roster for teamID. Starters must name exactly five distinct
// eligible players; when none are given the first five eligible players start.
func New(teamID string, eligible []models.Player, starters []models.PlayerRef) (*Manager, error) {
	m := &Manager{
		teamID:  teamID,
		players: make(map[models.PlayerRef]models.Player, len(eligible)),
		onCourt: make(map[models.PlayerRef]bool, OnCourtSize),
	}

	for _, p := range eligible {
		ref := p.Ref()
		if ref.IsZero() {
			continue
		}
		if _, ok := m.players[ref]; ok {
			continue
		}
		m.players[ref] = p
		m.order = append(m.order, ref)
	}

	if len(m.order) < OnCourtSize {
		return nil, fmt.Errorf("%w: team %s has %d eligible players", ErrInsufficientRoster, teamID, len(m.order))
	}

	if len(starters) == 0 {
		starters = m.order[:OnCourtSize]
	}
	if err := m.setOnCourt(starters); err != nil {
		return nil, err
	}

	return m, nil
}

// TeamID returns the team this roster belongs to
func (m *Manager) TeamID() string {
	return m.teamID
}

// Substitute moves out to the bench and in onto the court
func (m *Manager) Substitute(out, in models.PlayerRef) error {
	if err := m.CanSubstitute(out, in); err != nil {
		return err
	}
	delete(m.onCourt, out)
	m.onCourt[in] = true
	return nil
}

// CanSubstitute checks the substitution preconditions without applying them
func (m *Manager) CanSubstitute(out, in models.PlayerRef) error {
	if !m.IsOnCourt(out) {
		return fmt.Errorf("%w: %s is not on court", ErrInvalidRosterOperation, out)
	}
	if !m.IsOnBench(in) {
		return fmt.Errorf("%w: %s is not on the bench", ErrInvalidRosterOperation, in)
	}
	return nil
}

// IsEligible returns true if ref is on this team's roster for the game
func (m *Manager) IsEligible(ref models.PlayerRef) bool {
	_, ok := m.players[ref]
	return ok
}

// IsOnCourt returns true if ref is currently playing
func (m *Manager) IsOnCourt(ref models.PlayerRef) bool {
	return m.onCourt[ref]
}

// IsOnBench returns true if ref is eligible and not playing
func (m *Manager) IsOnBench(ref models.PlayerRef) bool {
	return m.IsEligible(ref) && !m.onCourt[ref]
}

// Player returns the roster entry for ref
func (m *Manager) Player(ref models.PlayerRef) (models.Player, bool) {
	p, ok := m.players[ref]
	return p, ok
}

// OnCourt returns the players on the floor in roster order
func (m *Manager) OnCourt() []models.PlayerRef {
	refs := make([]models.PlayerRef, 0, OnCourtSize)
	for _, ref := range m.order {
		if m.onCourt[ref] {
			refs = append(refs, ref)
		}
	}
	return refs
}

// Bench returns the players not on the floor in roster order
func (m *Manager) Bench() []models.PlayerRef {
	refs := make([]models.PlayerRef, 0, len(m.order)-OnCourtSize)
	for _, ref := range m.order {
		if !m.onCourt[ref] {
			refs = append(refs, ref)
		}
	}
	return refs
}

// State returns a copy of the current partition
func (m *Manager) State() models.RosterState {
	return models.RosterState{
		TeamID:  m.teamID,
		OnCourt: m.OnCourt(),
		Bench:   m.Bench(),
	}
}

// Restore replaces the on-court set with the one captured in state
func (m *Manager) Restore(state models.RosterState) error {
	if state.TeamID != m.teamID {
		return fmt.Errorf("%w: roster for team %s restored onto %s", ErrInvalidRosterOperation, state.TeamID, m.teamID)
	}
	return m.setOnCourt(state.OnCourt)
}

func (m *Manager) setOnCourt(refs []models.PlayerRef) error {
	if len(refs) != OnCourtSize {
		return fmt.Errorf("%w: %d players on court", ErrInvalidRosterOperation, len(refs))
	}

	next := make(map[models.PlayerRef]bool, OnCourtSize)
	for _, ref := range refs {
		if !m.IsEligible(ref) {
			return fmt.Errorf("%w: %s is not eligible for team %s", ErrInvalidRosterOperation, ref, m.teamID)
		}
		if next[ref] {
			return fmt.Errorf("%w: %s listed twice", ErrInvalidRosterOperation, ref)
		}
		next[ref] = true
	}

	m.onCourt = next
	return nil
}
