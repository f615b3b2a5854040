package tracker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/KitchAIv1/statjam-sub000/internal/broadcast"
	"github.com/KitchAIv1/statjam-sub000/internal/common/clock"
	"github.com/KitchAIv1/statjam-sub000/internal/common/uuid"
	"github.com/KitchAIv1/statjam-sub000/internal/court"
	"github.com/KitchAIv1/statjam-sub000/internal/engine"
	"github.com/KitchAIv1/statjam-sub000/internal/models"
	gameRepo "github.com/KitchAIv1/statjam-sub000/internal/repositories/game"
	rosterRepo "github.com/KitchAIv1/statjam-sub000/internal/repositories/roster"
	eventRepo "github.com/KitchAIv1/statjam-sub000/internal/repositories/stat_event"
	"github.com/KitchAIv1/statjam-sub000/internal/roster"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultQueueSize is the number of persistence jobs buffered by default
	DefaultQueueSize = 256

	// DefaultPersistTimeout bounds one persistence call by default
	DefaultPersistTimeout = 5 * time.Second
)

// service implements the Service interface
type service struct {
	gameRepo   gameRepo.Repository
	rosterRepo rosterRepo.Repository
	eventRepo  eventRepo.Repository
	broker     *broadcast.Broker

	clock         clock.Clock
	uuidGenerator uuid.UUID
	logger        zerolog.Logger

	quarterSeconds  int
	overtimeSeconds int
	timeoutsPerTeam int
	debounceWindow  time.Duration
	persistTimeout  time.Duration

	mu       sync.RWMutex
	sessions map[string]*session

	queue     chan job
	done      chan struct{}
	closeMu   sync.RWMutex
	closed    bool
	closeOnce sync.Once

	stopTick chan struct{}
	tickDone chan struct{}
}

// New creates a tracker service and starts its persistence dispatcher
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}
	if cfg.RosterRepo == nil {
		return nil, ErrNilRosterRepo
	}
	if cfg.EventRepo == nil {
		return nil, ErrNilEventRepo
	}
	if cfg.Broker == nil {
		return nil, ErrNilBroker
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	queueSize := cfg.QueueSize
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	persistTimeout := cfg.PersistTimeout
	if persistTimeout <= 0 {
		persistTimeout = DefaultPersistTimeout
	}

	s := &service{
		gameRepo:        cfg.GameRepo,
		rosterRepo:      cfg.RosterRepo,
		eventRepo:       cfg.EventRepo,
		broker:          cfg.Broker,
		clock:           cfg.Clock,
		uuidGenerator:   cfg.UUIDGenerator,
		logger:          cfg.Logger,
		quarterSeconds:  cfg.QuarterSeconds,
		overtimeSeconds: cfg.OvertimeSeconds,
		timeoutsPerTeam: cfg.TimeoutsPerTeam,
		debounceWindow:  cfg.DebounceWindow,
		persistTimeout:  persistTimeout,
		sessions:        map[string]*session{},
		queue:           make(chan job, queueSize),
		done:            make(chan struct{}),
	}

	go s.dispatch()

	if cfg.TickInterval > 0 {
		s.stopTick = make(chan struct{})
		s.tickDone = make(chan struct{})
		go s.tickLoop(cfg.TickInterval)
	}

	return s, nil
}

// CreateGame schedules a new game
func (s *service) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input cannot be nil", ErrInvalidInput)
	}

	gameID := input.GameID
	if gameID == "" {
		gameID = s.uuidGenerator.NewUUID()
	}

	e, err := s.newEngine(gameID, input.HomeTeamID, input.AwayTeamID)
	if err != nil {
		return nil, err
	}

	// A stored game with the same ID is never overwritten
	if _, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{GameID: gameID}); err == nil {
		return nil, ErrGameAlreadyExists
	} else if !errors.Is(err, gameRepo.ErrGameNotFound) {
		return nil, fmt.Errorf("failed to check for existing game: %w", err)
	}

	sess := &session{engine: e, createdAt: s.clock.Now()}

	s.mu.Lock()
	if _, exists := s.sessions[gameID]; exists {
		s.mu.Unlock()
		return nil, ErrGameAlreadyExists
	}
	s.sessions[gameID] = sess
	s.mu.Unlock()

	sess.mu.Lock()
	defer sess.mu.Unlock()

	state := e.State()
	s.enqueue(saveGameJob(s.record(sess)))
	s.publish(broadcast.TypeLifecycle, state, nil)

	s.logger.Info().Str("game_id", gameID).Str("home_team_id", input.HomeTeamID).Str("away_team_id", input.AwayTeamID).Msg("game created")

	return &CreateGameOutput{State: state}, nil
}

// StartGame loads the tracked rosters and puts the game in progress
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input cannot be nil", ErrInvalidInput)
	}

	sess, err := s.active(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	current := sess.engine.State()
	if !current.Status.IsScheduled() {
		return nil, fmt.Errorf("%w: cannot start a game that is %s", engine.ErrInvalidTransition, current.Status)
	}
	if input.UntrackedTeamID != "" && !current.HasTeam(input.UntrackedTeamID) {
		return nil, fmt.Errorf("%w: team %s is not playing in this game", ErrInvalidInput, input.UntrackedTeamID)
	}

	starters := map[string][]models.PlayerRef{
		current.HomeTeamID: input.HomeStarters,
		current.AwayTeamID: input.AwayStarters,
	}
	var tracked []string
	for _, teamID := range []string{current.HomeTeamID, current.AwayTeamID} {
		if teamID != input.UntrackedTeamID {
			tracked = append(tracked, teamID)
		}
	}

	players := make([][]models.Player, len(tracked))
	g, gctx := errgroup.WithContext(ctx)
	for i, teamID := range tracked {
		g.Go(func() error {
			out, err := s.rosterRepo.GetTeamPlayers(gctx, &rosterRepo.GetTeamPlayersInput{TeamID: teamID})
			if err != nil {
				return fmt.Errorf("failed to load roster of team %s: %w", teamID, err)
			}
			players[i] = derefPlayers(out.Players)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	managers := map[string]*roster.Manager{}
	for i, teamID := range tracked {
		m, err := roster.New(teamID, players[i], starters[teamID])
		if err != nil {
			return nil, fmt.Errorf("team %s: %w", teamID, err)
		}
		managers[teamID] = m
	}

	state, err := sess.engine.Start(managers[current.HomeTeamID], managers[current.AwayTeamID])
	if err != nil {
		return nil, err
	}

	s.enqueue(saveGameJob(s.record(sess)))
	s.publish(broadcast.TypeLifecycle, state, nil)

	s.logger.Info().Str("game_id", state.GameID).Strs("tracked_teams", tracked).Msg("game started")

	return &StartGameOutput{State: state, Rosters: sess.engine.Rosters()}, nil
}

// RecordStat records one operator action
func (s *service) RecordStat(ctx context.Context, input *RecordStatInput) (*RecordStatOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input cannot be nil", ErrInvalidInput)
	}

	state, event, _, err := s.recordAction(ctx, input.GameID, engine.Action{
		Player:         input.Player,
		IsOpponentStat: input.IsOpponentStat,
		TeamID:         input.TeamID,
		StatType:       input.StatType,
		Modifier:       input.Modifier,
		ShotLocation:   input.ShotLocation,
	})
	if err != nil {
		return nil, err
	}

	return &RecordStatOutput{State: state, Event: event}, nil
}

// RecordShotTap maps a tap on the court diagram and records the shot
func (s *service) RecordShotTap(ctx context.Context, input *RecordShotTapInput) (*RecordShotTapOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input cannot be nil", ErrInvalidInput)
	}

	loc, err := court.MapTap(input.PixelX, input.PixelY, input.Width, input.Height, input.Perspective)
	if err != nil {
		return nil, err
	}

	statType := models.StatTypeFieldGoal
	if loc.Points() == 3 {
		statType = models.StatTypeThreePointer
	}
	modifier := models.ModifierMissed
	if input.Made {
		modifier = models.ModifierMade
	}

	state, event, _, err := s.recordAction(ctx, input.GameID, engine.Action{
		Player:         input.Player,
		IsOpponentStat: input.IsOpponentStat,
		TeamID:         input.TeamID,
		StatType:       statType,
		Modifier:       modifier,
		ShotLocation:   &models.ShotLocation{X: loc.X, Y: loc.Y, Zone: string(loc.Zone)},
	})
	if err != nil {
		return nil, err
	}

	return &RecordShotTapOutput{State: state, Event: event, Location: loc}, nil
}

// Substitute swaps a bench player in for a player on court
func (s *service) Substitute(ctx context.Context, input *SubstituteInput) (*SubstituteOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input cannot be nil", ErrInvalidInput)
	}

	out, in := input.PlayerOut, input.PlayerIn
	state, event, roster, err := s.recordAction(ctx, input.GameID, engine.Action{
		Player:   &out,
		TeamID:   input.TeamID,
		StatType: models.StatTypeSubstitution,
		PlayerIn: &in,
	})
	if err != nil {
		return nil, err
	}

	return &SubstituteOutput{State: state, Event: event, Roster: roster}, nil
}

// recordAction runs one action through the engine, then queues the event and
// a state snapshot for persistence and notifies viewers. The returned roster
// is the acting team's partition right after the action.
func (s *service) recordAction(ctx context.Context, gameID string, action engine.Action) (models.GameState, *models.StatEvent, models.RosterState, error) {
	sess, err := s.active(ctx, gameID)
	if err != nil {
		return models.GameState{}, nil, models.RosterState{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	state, event, err := sess.engine.Record(action)
	if err != nil {
		s.logger.Debug().Err(err).Str("game_id", gameID).Str("stat_type", string(action.StatType)).Msg("action rejected")
		return models.GameState{}, nil, models.RosterState{}, err
	}
	roster, _ := sess.engine.Roster(action.TeamID)

	s.enqueue(saveEventJob(event), saveGameJob(s.record(sess)))
	s.publish(broadcast.TypeEvent, state, event)

	return state, event, roster, nil
}

// Undo reverts the most recent recorded action and queues its deletion
func (s *service) Undo(ctx context.Context, input *UndoInput) (*UndoOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input cannot be nil", ErrInvalidInput)
	}

	sess, err := s.active(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	state, event, err := sess.engine.Undo()
	if err != nil {
		return nil, err
	}

	s.enqueue(deleteEventJob(event), saveGameJob(s.record(sess)))
	s.publish(broadcast.TypeUndo, state, event)

	s.logger.Info().Str("game_id", input.GameID).Str("event_id", event.ID).Msg("stat undone")

	return &UndoOutput{State: state, Event: event}, nil
}

// ClockCommand drives the game clock or the shot clock
func (s *service) ClockCommand(ctx context.Context, input *ClockCommandInput) (*ClockCommandOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input cannot be nil", ErrInvalidInput)
	}

	run, err := clockOperation(input)
	if err != nil {
		return nil, err
	}

	sess, err := s.active(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	state, changed, err := run(sess.engine)
	if err != nil {
		return nil, err
	}

	// Ticks are frequent and only move the clocks, they are not persisted
	if input.Action != ClockActionTick {
		s.enqueue(saveGameJob(s.record(sess)))
	}
	if changed {
		s.publish(broadcast.TypeState, state, nil)
	}

	return &ClockCommandOutput{State: state}, nil
}

type clockFunc func(e *engine.Engine) (models.GameState, bool, error)

// clockOperation resolves a clock command to the engine call it runs
func clockOperation(input *ClockCommandInput) (clockFunc, error) {
	always := func(fn func(e *engine.Engine) (models.GameState, error)) clockFunc {
		return func(e *engine.Engine) (models.GameState, bool, error) {
			state, err := fn(e)
			return state, err == nil, err
		}
	}

	if input.Action == ClockActionTick {
		return func(e *engine.Engine) (models.GameState, bool, error) {
			return e.Tick()
		}, nil
	}

	switch input.Target {
	case ClockTargetGame:
		switch input.Action {
		case ClockActionStart:
			return always((*engine.Engine).StartClock), nil
		case ClockActionStop:
			return always((*engine.Engine).StopClock), nil
		case ClockActionReset:
			return always(func(e *engine.Engine) (models.GameState, error) {
				return e.ResetClock(input.Minutes*60 + input.Seconds)
			}), nil
		case ClockActionSet:
			return always(func(e *engine.Engine) (models.GameState, error) {
				return e.SetClock(input.Minutes, input.Seconds)
			}), nil
		}
	case ClockTargetShot:
		switch input.Action {
		case ClockActionStart:
			return always((*engine.Engine).StartShotClock), nil
		case ClockActionStop:
			return always((*engine.Engine).StopShotClock), nil
		case ClockActionReset, ClockActionResetFull:
			return always((*engine.Engine).ResetShotClockFull), nil
		case ClockActionResetShort:
			return always((*engine.Engine).ResetShotClockShort), nil
		case ClockActionSet:
			return always(func(e *engine.Engine) (models.GameState, error) {
				return e.SetShotClock(input.Seconds)
			}), nil
		case ClockActionShow, ClockActionHide:
			return always(func(e *engine.Engine) (models.GameState, error) {
				return e.SetShotClockVisible(input.Action == ClockActionShow)
			}), nil
		}
	}

	return nil, fmt.Errorf("%w: %s %s", ErrInvalidClockCommand, input.Target, input.Action)
}

// SetPossession updates possession or the alternating-possession arrow
func (s *service) SetPossession(ctx context.Context, input *SetPossessionInput) (*SetPossessionOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input cannot be nil", ErrInvalidInput)
	}

	var run func(e *engine.Engine) (models.GameState, error)
	switch input.Action {
	case PossessionActionSet:
		run = func(e *engine.Engine) (models.GameState, error) { return e.SetPossession(input.TeamID) }
	case PossessionActionArrow:
		run = func(e *engine.Engine) (models.GameState, error) { return e.SetArrow(input.TeamID) }
	case PossessionActionAlternate:
		run = (*engine.Engine).AlternatePossession
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidPossessionCommand, input.Action)
	}

	state, err := s.mutate(ctx, input.GameID, broadcast.TypeState, run)
	if err != nil {
		return nil, err
	}

	return &SetPossessionOutput{State: state}, nil
}

// AdvanceQuarter moves the game to the next period, optionally resetting team fouls
func (s *service) AdvanceQuarter(ctx context.Context, input *AdvanceQuarterInput) (*AdvanceQuarterOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input cannot be nil", ErrInvalidInput)
	}

	state, err := s.mutate(ctx, input.GameID, broadcast.TypeLifecycle, func(e *engine.Engine) (models.GameState, error) {
		state, err := e.AdvanceQuarter()
		if err != nil || !input.ResetTeamFouls {
			return state, err
		}
		return e.ResetTeamFouls()
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("game_id", input.GameID).Int("quarter", state.Quarter).Bool("overtime", state.IsOvertime()).Msg("quarter advanced")

	return &AdvanceQuarterOutput{State: state}, nil
}

// EndGame completes a game in progress
func (s *service) EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input cannot be nil", ErrInvalidInput)
	}

	state, err := s.finish(ctx, input.GameID, (*engine.Engine).End)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("game_id", input.GameID).Int("score_home", state.ScoreHome).Int("score_away", state.ScoreAway).Msg("game completed")

	return &EndGameOutput{State: state}, nil
}

// CancelGame abandons a game in progress
func (s *service) CancelGame(ctx context.Context, input *CancelGameInput) (*CancelGameOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input cannot be nil", ErrInvalidInput)
	}

	state, err := s.finish(ctx, input.GameID, (*engine.Engine).Cancel)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("game_id", input.GameID).Msg("game cancelled")

	return &CancelGameOutput{State: state}, nil
}

// finish runs a terminal transition. The finished session stays registered so
// reads never race the queued write of its final state.
func (s *service) finish(ctx context.Context, gameID string, run func(e *engine.Engine) (models.GameState, error)) (models.GameState, error) {
	return s.mutate(ctx, gameID, broadcast.TypeLifecycle, run)
}

// ApplySnapshot accepts an authoritative state from the correction tool
func (s *service) ApplySnapshot(ctx context.Context, input *ApplySnapshotInput) (*ApplySnapshotOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input cannot be nil", ErrInvalidInput)
	}

	state, err := s.mutate(ctx, input.GameID, broadcast.TypeState, func(e *engine.Engine) (models.GameState, error) {
		return e.ApplySnapshot(input.State)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("game_id", input.GameID).Msg("snapshot applied")

	return &ApplySnapshotOutput{State: state}, nil
}

// mutate runs one engine operation under the session lock, then queues a
// state snapshot and notifies viewers
func (s *service) mutate(ctx context.Context, gameID string, kind broadcast.Type, run func(e *engine.Engine) (models.GameState, error)) (models.GameState, error) {
	sess, err := s.active(ctx, gameID)
	if err != nil {
		return models.GameState{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	state, err := run(sess.engine)
	if err != nil {
		return models.GameState{}, err
	}

	s.enqueue(saveGameJob(s.record(sess)))
	s.publish(kind, state, nil)

	return state, nil
}

// GetState returns the live state of a game, or the stored state of a finished one
func (s *service) GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input cannot be nil", ErrInvalidInput)
	}

	sess, stored, err := s.lookup(ctx, input.GameID)
	if stored != nil {
		return &GetStateOutput{State: stored.State, Rosters: stored.Rosters}, nil
	}
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	return &GetStateOutput{
		State:   sess.engine.State(),
		Rosters: sess.engine.Rosters(),
		CanUndo: sess.engine.CanUndo(),
	}, nil
}

// ListGames returns every stored game that has not finished
func (s *service) ListGames(ctx context.Context, input *ListGamesInput) (*ListGamesOutput, error) {
	out, err := s.gameRepo.GetActiveGames(ctx, &gameRepo.GetActiveGamesInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	return &ListGamesOutput{Games: out.Games}, nil
}

// GetEvents returns the persisted play-by-play of a game
func (s *service) GetEvents(ctx context.Context, input *GetEventsInput) (*GetEventsOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, fmt.Errorf("%w: game ID is required", ErrInvalidInput)
	}

	out, err := s.eventRepo.GetEventsForGame(ctx, &eventRepo.GetEventsForGameInput{GameID: input.GameID})
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	return &GetEventsOutput{Events: out.Events}, nil
}

// RegisterPlayers adds players to a team roster
func (s *service) RegisterPlayers(ctx context.Context, input *RegisterPlayersInput) (*RegisterPlayersOutput, error) {
	if input == nil || input.TeamID == "" {
		return nil, fmt.Errorf("%w: team ID is required", ErrInvalidInput)
	}
	if len(input.Players) == 0 {
		return nil, fmt.Errorf("%w: at least one player is required", ErrInvalidInput)
	}

	registered := make([]models.Player, 0, len(input.Players))
	for _, p := range input.Players {
		if p.ID == "" {
			return nil, fmt.Errorf("%w: player ID is required", ErrInvalidInput)
		}
		if p.TeamID != "" && p.TeamID != input.TeamID {
			return nil, fmt.Errorf("%w: player %s belongs to team %s", ErrInvalidInput, p.ID, p.TeamID)
		}
		p.TeamID = input.TeamID
		registered = append(registered, p)
	}

	for i := range registered {
		if err := s.rosterRepo.SavePlayer(ctx, &rosterRepo.SavePlayerInput{Player: &registered[i]}); err != nil {
			return nil, fmt.Errorf("failed to save player %s: %w", registered[i].ID, err)
		}
	}

	return &RegisterPlayersOutput{Players: registered}, nil
}

// Subscribe returns a channel of notifications for a game
func (s *service) Subscribe(ctx context.Context, input *SubscribeInput) (*SubscribeOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input cannot be nil", ErrInvalidInput)
	}

	_, stored, err := s.lookup(ctx, input.GameID)
	if err != nil && stored == nil {
		return nil, err
	}

	return &SubscribeOutput{Notifications: s.broker.Subscribe(input.GameID)}, nil
}

// Unsubscribe stops notifications on a channel returned by Subscribe
func (s *service) Unsubscribe(ctx context.Context, input *UnsubscribeInput) error {
	if input == nil || input.Notifications == nil {
		return fmt.Errorf("%w: notifications channel is required", ErrInvalidInput)
	}

	s.broker.Unsubscribe(input.GameID, input.Notifications)
	return nil
}

// Close stops the clock ticker, then waits for queued persistence to drain
func (s *service) Close(ctx context.Context) error {
	s.closeOnce.Do(func() {
		if s.stopTick != nil {
			close(s.stopTick)
			<-s.tickDone
		}

		s.closeMu.Lock()
		s.closed = true
		close(s.queue)
		s.closeMu.Unlock()
	})

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *service) publish(kind broadcast.Type, state models.GameState, event *models.StatEvent) {
	s.broker.Publish(broadcast.Notification{
		Type:   kind,
		GameID: state.GameID,
		State:  &state,
		Event:  event,
	})
}
