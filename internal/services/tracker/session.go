package tracker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/KitchAIv1/statjam-sub000/internal/engine"
	"github.com/KitchAIv1/statjam-sub000/internal/models"
	gameRepo "github.com/KitchAIv1/statjam-sub000/internal/repositories/game"
	rosterRepo "github.com/KitchAIv1/statjam-sub000/internal/repositories/roster"
	"github.com/KitchAIv1/statjam-sub000/internal/roster"
)

// session is one live game held in memory. Its mutex is held across an engine
// operation and the enqueueing of the persistence it causes, so jobs for the
// same game reach the queue in the order the engine applied them.
type session struct {
	mu        sync.Mutex
	engine    *engine.Engine
	createdAt time.Time
}

// lookup returns the live session of a game, resuming it from storage when the
// process has restarted. A finished game has no session: it is returned as
// stored together with engine.ErrGameNotActive.
func (s *service) lookup(ctx context.Context, gameID string) (*session, *models.Game, error) {
	if gameID == "" {
		return nil, nil, fmt.Errorf("%w: game ID is required", ErrInvalidInput)
	}

	s.mu.RLock()
	sess, ok := s.sessions[gameID]
	s.mu.RUnlock()
	if ok {
		return sess, nil, nil
	}

	stored, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{GameID: gameID})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, nil, ErrGameNotFound
		}
		return nil, nil, fmt.Errorf("failed to load game: %w", err)
	}
	if stored.State.Status.IsTerminal() {
		return nil, stored, engine.ErrGameNotActive
	}

	sess, err = s.resume(ctx, stored)
	if err != nil {
		return nil, nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.sessions[gameID]; ok {
		return existing, nil, nil
	}
	s.sessions[gameID] = sess
	s.logger.Info().Str("game_id", gameID).Str("status", string(stored.State.Status)).Msg("resumed game from storage")

	return sess, nil, nil
}

// active returns the session of a game that can still be mutated
func (s *service) active(ctx context.Context, gameID string) (*session, error) {
	sess, _, err := s.lookup(ctx, gameID)
	if err != nil {
		return nil, err
	}
	return sess, nil
}

// resume rebuilds an engine from a stored game
func (s *service) resume(ctx context.Context, stored *models.Game) (*session, error) {
	e, err := s.newEngine(stored.ID, stored.HomeTeamID, stored.AwayTeamID)
	if err != nil {
		return nil, err
	}
	sess := &session{engine: e, createdAt: stored.CreatedAt}
	if stored.State.Status.IsScheduled() {
		return sess, nil
	}

	managers := map[string]*roster.Manager{}
	for _, rs := range stored.Rosters {
		out, err := s.rosterRepo.GetTeamPlayers(ctx, &rosterRepo.GetTeamPlayersInput{TeamID: rs.TeamID})
		if err != nil {
			return nil, fmt.Errorf("failed to load roster of team %s: %w", rs.TeamID, err)
		}
		m, err := roster.New(rs.TeamID, derefPlayers(out.Players), rs.OnCourt)
		if err != nil {
			return nil, fmt.Errorf("failed to rebuild roster of team %s: %w", rs.TeamID, err)
		}
		managers[rs.TeamID] = m
	}

	if _, err := e.Start(managers[stored.HomeTeamID], managers[stored.AwayTeamID]); err != nil {
		return nil, fmt.Errorf("failed to resume game: %w", err)
	}
	if _, err := e.ApplySnapshot(stored.State); err != nil {
		return nil, fmt.Errorf("failed to resume game: %w", err)
	}

	return sess, nil
}

func (s *service) newEngine(gameID, homeTeamID, awayTeamID string) (*engine.Engine, error) {
	return engine.New(&engine.Config{
		GameID:          gameID,
		HomeTeamID:      homeTeamID,
		AwayTeamID:      awayTeamID,
		QuarterSeconds:  s.quarterSeconds,
		OvertimeSeconds: s.overtimeSeconds,
		TimeoutsPerTeam: s.timeoutsPerTeam,
		DebounceWindow:  s.debounceWindow,
		Clock:           s.clock,
		UUIDGenerator:   s.uuidGenerator,
	})
}

// record builds the stored form of a session's current state
func (s *service) record(sess *session) *models.Game {
	state := sess.engine.State()
	return &models.Game{
		ID:         state.GameID,
		HomeTeamID: state.HomeTeamID,
		AwayTeamID: state.AwayTeamID,
		State:      state,
		Rosters:    sess.engine.Rosters(),
		CreatedAt:  sess.createdAt,
		UpdatedAt:  s.clock.Now(),
	}
}

func derefPlayers(players []*models.Player) []models.Player {
	result := make([]models.Player, 0, len(players))
	for _, p := range players {
		if p != nil {
			result = append(result, *p)
		}
	}
	return result
}
