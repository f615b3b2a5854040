package engine

import (
	"github.com/KitchAIv1/statjam-sub000/internal/models"
)

type undoEntry struct {
	event *models.StatEvent
	prior snapshot
	key   debounceKey
}

type snapshot struct {
	state   models.GameState
	rosters map[string]models.RosterState
}

// Undo reverts the most recent recorded action. The returned event should be
// deleted by the persistence collaborator.
func (e *Engine) Undo() (models.GameState, *models.StatEvent, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireActive(); err != nil {
		return models.GameState{}, nil, err
	}
	if e.undo == nil {
		return models.GameState{}, nil, ErrNothingToUndo
	}

	entry := e.undo
	e.restore(entry.prior)
	delete(e.recent, entry.key)
	e.undo = nil

	return e.state(), copyEvent(entry.event), nil
}

func (e *Engine) snapshot() snapshot {
	rosters := make(map[string]models.RosterState, len(e.rosters))
	for teamID, r := range e.rosters {
		rosters[teamID] = r.State()
	}
	return snapshot{state: e.state(), rosters: rosters}
}

func (e *Engine) restore(s snapshot) {
	e.restoreState(s.state)
	for teamID, state := range s.rosters {
		// a roster snapshot taken from the same manager always restores
		_ = e.rosters[teamID].Restore(state)
	}
}
