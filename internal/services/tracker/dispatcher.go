package tracker

import (
	"context"
	"fmt"

	"github.com/KitchAIv1/statjam-sub000/internal/broadcast"
	"github.com/KitchAIv1/statjam-sub000/internal/models"
	gameRepo "github.com/KitchAIv1/statjam-sub000/internal/repositories/game"
	eventRepo "github.com/KitchAIv1/statjam-sub000/internal/repositories/stat_event"
)

type jobKind string

const (
	jobSaveEvent   jobKind = "save_event"
	jobDeleteEvent jobKind = "delete_event"
	jobSaveGame    jobKind = "save_game"
)

// job is one write handed to the persistence collaborators
type job struct {
	kind   jobKind
	gameID string
	event  *models.StatEvent
	game   *models.Game
}

func saveEventJob(event *models.StatEvent) job {
	return job{kind: jobSaveEvent, gameID: event.GameID, event: event}
}

func deleteEventJob(event *models.StatEvent) job {
	return job{kind: jobDeleteEvent, gameID: event.GameID, event: event}
}

func saveGameJob(game *models.Game) job {
	return job{kind: jobSaveGame, gameID: game.ID, game: game}
}

// enqueue hands jobs to the dispatcher without blocking the caller.
// A job that cannot be queued is reported like a failed write.
func (s *service) enqueue(jobs ...job) {
	s.closeMu.RLock()
	defer s.closeMu.RUnlock()

	for _, j := range jobs {
		if s.closed {
			s.reportFailure(j, ErrServiceClosed)
			continue
		}
		select {
		case s.queue <- j:
		default:
			s.reportFailure(j, fmt.Errorf("persistence queue is full"))
		}
	}
}

// dispatch drains the queue until it is closed
func (s *service) dispatch() {
	defer close(s.done)

	for j := range s.queue {
		if err := s.persist(j); err != nil {
			s.reportFailure(j, err)
		}
	}
}

func (s *service) persist(j job) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.persistTimeout)
	defer cancel()

	switch j.kind {
	case jobSaveEvent:
		return s.eventRepo.SaveEvent(ctx, &eventRepo.SaveEventInput{Event: j.event})
	case jobDeleteEvent:
		return s.eventRepo.DeleteEvent(ctx, &eventRepo.DeleteEventInput{EventID: j.event.ID})
	case jobSaveGame:
		return s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{Game: j.game})
	default:
		return fmt.Errorf("unknown persistence job %q", j.kind)
	}
}

// reportFailure logs a failed write and tells the operator about it.
// The live state is never rolled back.
func (s *service) reportFailure(j job, err error) {
	logEvent := s.logger.Error().Err(err).Str("game_id", j.gameID).Str("job", string(j.kind))
	if j.event != nil {
		logEvent = logEvent.Str("event_id", j.event.ID)
	}
	logEvent.Msg("persistence failed")

	s.broker.Publish(broadcast.Notification{
		Type:   broadcast.TypePersistenceFailure,
		GameID: j.gameID,
		Event:  j.event,
		Error:  fmt.Errorf("%w: %s: %v", ErrPersistenceFailure, j.kind, err).Error(),
	})
}
