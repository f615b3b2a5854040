package engine

import (
	"errors"
	"fmt"
	"testing"
	"time"

	clockMocks "github.com/KitchAIv1/statjam-sub000/internal/common/clock/mocks"
	uuidMocks "github.com/KitchAIv1/statjam-sub000/internal/common/uuid/mocks"
	"github.com/KitchAIv1/statjam-sub000/internal/models"
	"github.com/KitchAIv1/statjam-sub000/internal/roster"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EngineTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockClock *clockMocks.MockClock
	mockUUID  *uuidMocks.MockUUID
	engine    *Engine

	now      time.Time
	eventSeq int

	homeTeamID string
	awayTeamID string
}

func (s *EngineTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.now = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.eventSeq = 0
	s.homeTeamID = "home"
	s.awayTeamID = "away"

	s.mockClock.EXPECT().Now().DoAndReturn(func() time.Time { return s.now }).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().DoAndReturn(func() string {
		s.eventSeq++
		return fmt.Sprintf("event-%d", s.eventSeq)
	}).AnyTimes()

	var err error
	s.engine, err = New(&Config{
		GameID:        "game-1",
		HomeTeamID:    s.homeTeamID,
		AwayTeamID:    s.awayTeamID,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)

	_, err = s.engine.Start(s.newRoster(s.homeTeamID, "H"), s.newRoster(s.awayTeamID, "A"))
	s.Require().NoError(err)
}

func (s *EngineTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *EngineTestSuite) newRoster(teamID, prefix string) *roster.Manager {
	var players []models.Player
	for i := 1; i <= 6; i++ {
		players = append(players, models.Player{ID: fmt.Sprintf("%s%d", prefix, i), TeamID: teamID})
	}
	r, err := roster.New(teamID, players, nil)
	s.Require().NoError(err)
	return r
}

func player(id string) *models.PlayerRef {
	return &models.PlayerRef{ID: id}
}

func (s *EngineTestSuite) homeAction(playerID string, statType models.StatType, modifier models.Modifier) Action {
	return Action{Player: player(playerID), TeamID: s.homeTeamID, StatType: statType, Modifier: modifier}
}

func (s *EngineTestSuite) startClock() {
	_, err := s.engine.StartClock()
	s.Require().NoError(err)
}

// advance moves the wall clock past the debounce window
func (s *EngineTestSuite) advance() {
	s.now = s.now.Add(time.Second)
}

func (s *EngineTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.Equal(ErrNilConfig, err)

	_, err = New(&Config{HomeTeamID: "a", AwayTeamID: "b", UUIDGenerator: s.mockUUID})
	s.Equal(ErrNilClock, err)

	_, err = New(&Config{HomeTeamID: "a", AwayTeamID: "b", Clock: s.mockClock})
	s.Equal(ErrNilUUIDGenerator, err)

	_, err = New(&Config{HomeTeamID: "a", AwayTeamID: "a", Clock: s.mockClock, UUIDGenerator: s.mockUUID})
	s.Equal(ErrInvalidTeams, err)
}

func (s *EngineTestSuite) TestInitialState() {
	state := s.engine.State()
	s.Equal(1, state.Quarter)
	s.Equal(600, state.ClockSecondsRemaining)
	s.False(state.ClockRunning)
	s.Equal(24, state.ShotClockSecondsRemaining)
	s.True(state.ShotClockVisible)
	s.Equal(DefaultTimeoutsPerTeam, state.TimeoutsRemainingHome)
	s.Equal(DefaultTimeoutsPerTeam, state.TimeoutsRemainingAway)
	s.Equal(models.GameStatusInProgress, state.Status)
}

func (s *EngineTestSuite) TestMadeFieldGoalThenUndo() {
	s.startClock()
	before := s.engine.State()

	state, event, err := s.engine.Record(s.homeAction("H1", models.StatTypeFieldGoal, models.ModifierMade))
	s.Require().NoError(err)
	s.Equal(2, state.ScoreHome)
	s.Equal(2, event.Value)
	s.Equal("event-1", event.ID)
	s.Equal("game-1", event.GameID)
	s.Equal(1, event.Quarter)
	s.Equal(10, event.ClockMinutesSnapshot)
	s.Equal(0, event.ClockSecondsSnapshot)
	s.Equal(s.now, event.CreatedAt)

	state, undone, err := s.engine.Undo()
	s.Require().NoError(err)
	s.Equal(before, state)
	s.Equal(event.ID, undone.ID)

	_, _, err = s.engine.Undo()
	s.Equal(ErrNothingToUndo, err)
}

func (s *EngineTestSuite) TestUndoRestoresClockExactly() {
	s.startClock()
	_, _, err := s.engine.Record(s.homeAction("H1", models.StatTypeRebound, models.ModifierDefensive))
	s.Require().NoError(err)

	_, _, err = s.engine.Tick()
	s.Require().NoError(err)
	s.Equal(599, s.engine.State().ClockSecondsRemaining)

	state, _, err := s.engine.Undo()
	s.Require().NoError(err)
	s.Equal(600, state.ClockSecondsRemaining)
	s.True(state.ClockRunning)
}

func (s *EngineTestSuite) TestPointValues() {
	s.startClock()

	tests := []struct {
		statType models.StatType
		modifier models.Modifier
		want     int
	}{
		{models.StatTypeFieldGoal, models.ModifierMade, 2},
		{models.StatTypeFieldGoal, models.ModifierMissed, 0},
		{models.StatTypeThreePointer, models.ModifierMade, 3},
		{models.StatTypeThreePointer, models.ModifierMissed, 0},
		{models.StatTypeFreeThrow, models.ModifierMade, 1},
		{models.StatTypeFreeThrow, models.ModifierMissed, 0},
		{models.StatTypeRebound, models.ModifierOffensive, 0},
		{models.StatTypeSteal, models.ModifierNone, 0},
		{models.StatTypeTurnover, models.ModifierTravel, 0},
	}

	total := 0
	for _, tc := range tests {
		s.advance()
		state, event, err := s.engine.Record(s.homeAction("H2", tc.statType, tc.modifier))
		s.Require().NoError(err, "%s %s", tc.statType, tc.modifier)
		s.Equal(tc.want, event.Value, "%s %s", tc.statType, tc.modifier)
		total += tc.want
		s.Equal(total, state.ScoreHome)
		s.Equal(0, state.ScoreAway)
	}
}

func (s *EngineTestSuite) TestScoreEqualsSumOfNonUndoneEvents() {
	s.startClock()

	values := map[string]int{}
	record := func(a Action) {
		s.advance()
		_, event, err := s.engine.Record(a)
		s.Require().NoError(err)
		values[event.ID] = event.Value
	}
	undo := func() {
		_, event, err := s.engine.Undo()
		s.Require().NoError(err)
		delete(values, event.ID)
	}

	record(s.homeAction("H1", models.StatTypeThreePointer, models.ModifierMade))
	record(s.homeAction("H2", models.StatTypeFieldGoal, models.ModifierMade))
	undo()
	record(s.homeAction("H3", models.StatTypeFreeThrow, models.ModifierMade))
	record(s.homeAction("H3", models.StatTypeFreeThrow, models.ModifierMissed))
	record(s.homeAction("H4", models.StatTypeFieldGoal, models.ModifierMade))
	undo()

	sum := 0
	for _, v := range values {
		sum += v
	}
	s.Equal(sum, s.engine.State().ScoreHome)
	s.Equal(4, sum)
}

func (s *EngineTestSuite) TestBonusAtFiveFouls() {
	s.startClock()

	for i := 1; i <= 4; i++ {
		s.advance()
		_, _, err := s.engine.Record(s.homeAction(fmt.Sprintf("H%d", i), models.StatTypeFoul, models.ModifierPersonal))
		s.Require().NoError(err)
	}
	state := s.engine.State()
	s.Equal(4, state.TeamFoulsHome)
	s.False(state.BonusHome())

	s.advance()
	state, _, err := s.engine.Record(s.homeAction("H5", models.StatTypeFoul, models.ModifierTechnical))
	s.Require().NoError(err)
	s.Equal(5, state.TeamFoulsHome)
	s.True(state.BonusHome())
	s.False(state.BonusAway())
}

func (s *EngineTestSuite) TestClockNotRunning() {
	_, _, err := s.engine.Record(s.homeAction("H1", models.StatTypeFieldGoal, models.ModifierMade))
	s.True(errors.Is(err, ErrClockNotRunning))
	s.Equal(0, s.engine.State().ScoreHome)

	state, _, err := s.engine.Record(s.homeAction("H1", models.StatTypeFreeThrow, models.ModifierMade))
	s.Require().NoError(err)
	s.Equal(1, state.ScoreHome)

	s.advance()
	_, _, err = s.engine.Record(s.homeAction("H1", models.StatTypeFreeThrow, models.ModifierMissed))
	s.True(errors.Is(err, ErrClockNotRunning), "missed free throws need a running clock")

	_, _, err = s.engine.Record(s.homeAction("H1", models.StatTypeTimeout, models.ModifierNone))
	s.Require().NoError(err)

	_, _, err = s.engine.Substitute(s.homeTeamID, models.PlayerRef{ID: "H2"}, models.PlayerRef{ID: "H6"})
	s.Require().NoError(err)
}

func (s *EngineTestSuite) TestNoPlayerSelected() {
	_, _, err := s.engine.Record(Action{TeamID: s.homeTeamID, StatType: models.StatTypeFieldGoal, Modifier: models.ModifierMade})
	s.Equal(ErrNoPlayerSelected, err, "reported before the stopped clock")

	_, _, err = s.engine.Record(Action{Player: &models.PlayerRef{}, TeamID: s.homeTeamID, StatType: models.StatTypeSteal})
	s.Equal(ErrNoPlayerSelected, err)
}

func (s *EngineTestSuite) TestInvalidModifier() {
	s.startClock()

	for _, a := range []Action{
		s.homeAction("H1", models.StatTypeAssist, models.ModifierMade),
		s.homeAction("H1", models.StatTypeSteal, models.ModifierOffensive),
		s.homeAction("H1", models.StatTypeBlock, models.ModifierPersonal),
		s.homeAction("H1", models.StatTypeTurnover, models.ModifierNone),
		s.homeAction("H1", models.StatTypeFieldGoal, models.ModifierNone),
		s.homeAction("H1", models.StatTypeRebound, models.ModifierMade),
		s.homeAction("H1", models.StatTypeFoul, models.ModifierNone),
		s.homeAction("H1", models.StatType("dunk"), models.ModifierMade),
	} {
		_, _, err := s.engine.Record(a)
		s.True(errors.Is(err, ErrInvalidModifier), "%s %q", a.StatType, a.Modifier)
	}
}

func (s *EngineTestSuite) TestRosterValidation() {
	s.startClock()

	_, _, err := s.engine.Record(s.homeAction("A1", models.StatTypeSteal, models.ModifierNone))
	s.True(errors.Is(err, ErrInvalidRosterOperation), "away player recorded for home")

	_, _, err = s.engine.Record(Action{Player: player("H1"), TeamID: "visitors", StatType: models.StatTypeSteal})
	s.True(errors.Is(err, ErrInvalidRosterOperation))

	_, _, err = s.engine.Record(Action{IsOpponentStat: true, TeamID: s.awayTeamID, StatType: models.StatTypeSteal})
	s.True(errors.Is(err, ErrInvalidRosterOperation), "tracked teams record by player")
}

func (s *EngineTestSuite) TestShotLocation() {
	s.startClock()

	loc := &models.ShotLocation{X: 50, Y: 10, Zone: "paint"}
	a := s.homeAction("H1", models.StatTypeRebound, models.ModifierOffensive)
	a.ShotLocation = loc
	_, _, err := s.engine.Record(a)
	s.True(errors.Is(err, ErrInvalidShotLocation))

	a = s.homeAction("H1", models.StatTypeFieldGoal, models.ModifierMade)
	a.ShotLocation = &models.ShotLocation{X: 120, Y: 10}
	_, _, err = s.engine.Record(a)
	s.True(errors.Is(err, ErrInvalidShotLocation))

	a.ShotLocation = loc
	_, event, err := s.engine.Record(a)
	s.Require().NoError(err)
	s.Equal(*loc, *event.ShotLocation)
}

func (s *EngineTestSuite) TestDebounce() {
	s.startClock()
	a := s.homeAction("H1", models.StatTypeFieldGoal, models.ModifierMade)

	_, _, err := s.engine.Record(a)
	s.Require().NoError(err)

	s.now = s.now.Add(499 * time.Millisecond)
	_, _, err = s.engine.Record(a)
	s.True(errors.Is(err, ErrDuplicateSubmission))
	s.Equal(2, s.engine.State().ScoreHome)

	_, _, err = s.engine.Record(s.homeAction("H1", models.StatTypeFieldGoal, models.ModifierMissed))
	s.Require().NoError(err, "a different modifier is not a duplicate")

	s.now = s.now.Add(time.Millisecond)
	_, _, err = s.engine.Record(a)
	s.Require().NoError(err, "window has passed")
	s.Equal(4, s.engine.State().ScoreHome)
}

func (s *EngineTestSuite) TestUndoClearsDebounce() {
	s.startClock()
	a := s.homeAction("H1", models.StatTypeFieldGoal, models.ModifierMade)

	_, _, err := s.engine.Record(a)
	s.Require().NoError(err)
	_, _, err = s.engine.Undo()
	s.Require().NoError(err)

	_, _, err = s.engine.Record(a)
	s.Require().NoError(err)
	s.Equal(2, s.engine.State().ScoreHome)
}

func (s *EngineTestSuite) TestTimeouts() {
	for i := 0; i < DefaultTimeoutsPerTeam; i++ {
		s.advance()
		_, _, err := s.engine.Record(s.homeAction("H1", models.StatTypeTimeout, models.ModifierNone))
		s.Require().NoError(err)
	}
	s.Equal(0, s.engine.State().TimeoutsRemainingHome)
	s.Equal(DefaultTimeoutsPerTeam, s.engine.State().TimeoutsRemainingAway)

	s.advance()
	_, _, err := s.engine.Record(s.homeAction("H1", models.StatTypeTimeout, models.ModifierNone))
	s.True(errors.Is(err, ErrNoTimeoutsRemaining))
}

func (s *EngineTestSuite) TestSubstitution() {
	state, event, err := s.engine.Substitute(s.homeTeamID, models.PlayerRef{ID: "H1"}, models.PlayerRef{ID: "H6"})
	s.Require().NoError(err)
	s.Equal(models.StatTypeSubstitution, event.StatType)
	s.Equal("H6", event.SubstitutedIn.ID)
	s.Equal(models.GameStatusInProgress, state.Status)

	r, ok := s.engine.Roster(s.homeTeamID)
	s.Require().True(ok)
	s.Equal([]models.PlayerRef{{ID: "H2"}, {ID: "H3"}, {ID: "H4"}, {ID: "H5"}, {ID: "H6"}}, r.OnCourt)
	s.Equal([]models.PlayerRef{{ID: "H1"}}, r.Bench)

	_, _, err = s.engine.Undo()
	s.Require().NoError(err)
	r, _ = s.engine.Roster(s.homeTeamID)
	s.Equal([]models.PlayerRef{{ID: "H6"}}, r.Bench)
}

func (s *EngineTestSuite) TestSubstitutionPreconditions() {
	_, _, err := s.engine.Substitute(s.homeTeamID, models.PlayerRef{ID: "H6"}, models.PlayerRef{ID: "H1"})
	s.True(errors.Is(err, ErrInvalidRosterOperation))

	_, _, err = s.engine.Record(s.homeAction("H1", models.StatTypeSubstitution, models.ModifierNone))
	s.True(errors.Is(err, ErrInvalidRosterOperation), "no player coming in")

	s.False(s.engine.CanUndo())
}

func (s *EngineTestSuite) TestEndedGameRejectsActions() {
	state, err := s.engine.End()
	s.Require().NoError(err)
	s.Equal(models.GameStatusCompleted, state.Status)

	_, _, err = s.engine.Record(s.homeAction("H1", models.StatTypeFreeThrow, models.ModifierMade))
	s.True(errors.Is(err, ErrGameNotActive))
	_, _, err = s.engine.Undo()
	s.True(errors.Is(err, ErrGameNotActive))
	_, err = s.engine.StartClock()
	s.True(errors.Is(err, ErrGameNotActive))
	_, _, err = s.engine.Substitute(s.homeTeamID, models.PlayerRef{ID: "H1"}, models.PlayerRef{ID: "H6"})
	s.True(errors.Is(err, ErrGameNotActive))
	_, err = s.engine.Cancel()
	s.True(errors.Is(err, ErrGameNotActive))
	_, err = s.engine.Start(nil, nil)
	s.True(errors.Is(err, ErrInvalidTransition))
}

func (s *EngineTestSuite) TestCancel() {
	state, err := s.engine.Cancel()
	s.Require().NoError(err)
	s.Equal(models.GameStatusCancelled, state.Status)
	s.True(state.Status.IsTerminal())
}

func (s *EngineTestSuite) TestScheduledGameRejectsActions() {
	e, err := New(&Config{GameID: "g2", HomeTeamID: "h", AwayTeamID: "a", Clock: s.mockClock, UUIDGenerator: s.mockUUID})
	s.Require().NoError(err)

	_, _, err = e.Record(Action{Player: player("x"), TeamID: "h", StatType: models.StatTypeTimeout})
	s.True(errors.Is(err, ErrGameNotActive))
	_, err = e.End()
	s.True(errors.Is(err, ErrGameNotActive))
	_, err = e.Start(nil, nil)
	s.True(errors.Is(err, ErrInsufficientRoster))
}

func (s *EngineTestSuite) TestAdvanceQuarter() {
	s.startClock()
	_, _, err := s.engine.Record(s.homeAction("H1", models.StatTypeSteal, models.ModifierNone))
	s.Require().NoError(err)

	for q := 2; q <= 5; q++ {
		state, err := s.engine.AdvanceQuarter()
		s.Require().NoError(err)
		s.Equal(q, state.Quarter)
		s.False(state.ClockRunning)
		s.Equal(24, state.ShotClockSecondsRemaining)
		s.False(state.ShotClockRunning)
	}

	state := s.engine.State()
	s.True(state.IsOvertime())
	s.Equal(300, state.ClockSecondsRemaining)
	s.False(s.engine.CanUndo())
}

func (s *EngineTestSuite) TestResetTeamFouls() {
	s.startClock()
	_, _, err := s.engine.Record(s.homeAction("H1", models.StatTypeFoul, models.ModifierPersonal))
	s.Require().NoError(err)

	state, err := s.engine.ResetTeamFouls()
	s.Require().NoError(err)
	s.Equal(0, state.TeamFoulsHome)
}

func (s *EngineTestSuite) TestApplySnapshot() {
	s.startClock()
	_, _, err := s.engine.Record(s.homeAction("H1", models.StatTypeFieldGoal, models.ModifierMade))
	s.Require().NoError(err)

	snapshot := s.engine.State()
	snapshot.ScoreHome = 0
	snapshot.ScoreAway = 7
	snapshot.Status = models.GameStatusCompleted

	state, err := s.engine.ApplySnapshot(snapshot)
	s.Require().NoError(err)
	s.Equal(0, state.ScoreHome)
	s.Equal(7, state.ScoreAway)
	s.Equal(models.GameStatusInProgress, state.Status)
	s.False(s.engine.CanUndo())

	snapshot.HomeTeamID = "someone-else"
	_, err = s.engine.ApplySnapshot(snapshot)
	s.True(errors.Is(err, ErrInvalidSnapshot))
}

func (s *EngineTestSuite) TestPossessionCommands() {
	state, err := s.engine.SetPossession(s.homeTeamID)
	s.Require().NoError(err)
	s.Equal(s.homeTeamID, state.PossessionTeamID)

	state, err = s.engine.SetArrow(s.awayTeamID)
	s.Require().NoError(err)
	s.True(state.JumpBallIndicator())

	state, err = s.engine.AlternatePossession()
	s.Require().NoError(err)
	s.Equal(s.awayTeamID, state.PossessionTeamID)
	s.Equal(s.homeTeamID, state.PossessionArrow)
}

func (s *EngineTestSuite) TestShotClockCommands() {
	_, err := s.engine.StartShotClock()
	s.Require().NoError(err)
	_, err = s.engine.SetShotClockVisible(false)
	s.Require().NoError(err)

	state, changed, err := s.engine.Tick()
	s.Require().NoError(err)
	s.True(changed)
	s.Equal(23, state.ShotClockSecondsRemaining)
	s.Equal(600, state.ClockSecondsRemaining, "game clock is stopped")

	state, err = s.engine.ResetShotClockShort()
	s.Require().NoError(err)
	s.Equal(14, state.ShotClockSecondsRemaining)

	_, err = s.engine.SetShotClock(40)
	s.Error(err)
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

type CoachModeTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	engine   *Engine
}

func (s *CoachModeTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	mockClock := clockMocks.NewMockClock(s.mockCtrl)
	mockUUID := uuidMocks.NewMockUUID(s.mockCtrl)
	mockClock.EXPECT().Now().Return(time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)).AnyTimes()
	mockUUID.EXPECT().NewUUID().Return("event").AnyTimes()

	var err error
	s.engine, err = New(&Config{GameID: "g", HomeTeamID: "mine", AwayTeamID: "theirs", Clock: mockClock, UUIDGenerator: mockUUID})
	s.Require().NoError(err)

	var players []models.Player
	for i := 0; i < 5; i++ {
		players = append(players, models.Player{ID: fmt.Sprintf("c%d", i), TeamID: "mine", Custom: true})
	}
	home, err := roster.New("mine", players, nil)
	s.Require().NoError(err)

	_, err = s.engine.Start(home, nil)
	s.Require().NoError(err)
	_, err = s.engine.StartClock()
	s.Require().NoError(err)
}

func (s *CoachModeTestSuite) TestOpponentStats() {
	state, event, err := s.engine.Record(Action{IsOpponentStat: true, TeamID: "theirs", StatType: models.StatTypeThreePointer, Modifier: models.ModifierMade})
	s.Require().NoError(err)
	s.Equal(3, state.ScoreAway)
	s.Nil(event.Player)
	s.True(event.IsOpponentStat)

	_, _, err = s.engine.Record(Action{Player: &models.PlayerRef{ID: "x"}, TeamID: "theirs", StatType: models.StatTypeSteal})
	s.True(errors.Is(err, ErrInvalidRosterOperation))

	_, _, err = s.engine.Record(Action{IsOpponentStat: true, TeamID: "theirs", StatType: models.StatTypeSubstitution})
	s.True(errors.Is(err, ErrInvalidRosterOperation))
}

func (s *CoachModeTestSuite) TestCustomPlayersNeedTheCustomTag() {
	_, _, err := s.engine.Record(Action{Player: &models.PlayerRef{ID: "c1"}, TeamID: "mine", StatType: models.StatTypeSteal})
	s.True(errors.Is(err, ErrInvalidRosterOperation))

	_, _, err = s.engine.Record(Action{Player: &models.PlayerRef{ID: "c1", Custom: true}, TeamID: "mine", StatType: models.StatTypeSteal})
	s.NoError(err)
}

func TestCoachModeSuite(t *testing.T) {
	suite.Run(t, new(CoachModeTestSuite))
}
