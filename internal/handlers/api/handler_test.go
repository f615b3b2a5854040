package api

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/KitchAIv1/statjam-sub000/internal/broadcast"
	"github.com/KitchAIv1/statjam-sub000/internal/court"
	"github.com/KitchAIv1/statjam-sub000/internal/engine"
	"github.com/KitchAIv1/statjam-sub000/internal/models"
	"github.com/KitchAIv1/statjam-sub000/internal/services/messaging"
	"github.com/KitchAIv1/statjam-sub000/internal/services/tracker"
	trackerMocks "github.com/KitchAIv1/statjam-sub000/internal/services/tracker/mocks"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HandlerTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockTracker *trackerMocks.MockService
	miniRedis   *miniredis.Miniredis
	redisClient *redis.Client
	router      http.Handler

	gameID string
	state  models.GameState
}

func (s *HandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockTracker = trackerMocks.NewMockService(s.mockCtrl)

	var err error
	s.miniRedis, err = miniredis.Run()
	s.Require().NoError(err)
	s.redisClient = redis.NewClient(&redis.Options{Addr: s.miniRedis.Addr()})

	messages, err := messaging.NewService(&messaging.ServiceConfig{})
	s.Require().NoError(err)

	handler, err := New(&Config{
		Tracker:      s.mockTracker,
		Messaging:    messages,
		Redis:        s.redisClient,
		Logger:       zerolog.Nop(),
		PingInterval: 50 * time.Millisecond,
	})
	s.Require().NoError(err)
	s.router = handler.Router()

	s.gameID = "game-1"
	s.state = models.GameState{
		GameID:                    s.gameID,
		HomeTeamID:                "home",
		AwayTeamID:                "away",
		Quarter:                   2,
		ClockSecondsRemaining:     271,
		ShotClockSecondsRemaining: 9,
		ShotClockVisible:          true,
		ScoreHome:                 20,
		ScoreAway:                 18,
		TeamFoulsAway:             5,
		PossessionTeamID:          "home",
		PossessionArrow:           "away",
		Status:                    models.GameStatusInProgress,
	}
}

func (s *HandlerTestSuite) TearDownTest() {
	s.redisClient.Close()
	s.miniRedis.Close()
}

func (s *HandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		s.Require().NoError(err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerTestSuite) decode(rec *httptest.ResponseRecorder, v any) {
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(v), rec.Body.String())
}

func (s *HandlerTestSuite) TestNewRequiresCollaborators() {
	messages, err := messaging.NewService(&messaging.ServiceConfig{})
	s.Require().NoError(err)

	_, err = New(nil)
	s.Error(err)
	_, err = New(&Config{Messaging: messages, Redis: s.redisClient})
	s.Error(err)
	_, err = New(&Config{Tracker: s.mockTracker, Redis: s.redisClient})
	s.Error(err)
	_, err = New(&Config{Tracker: s.mockTracker, Messaging: messages})
	s.Error(err)
}

func (s *HandlerTestSuite) TestGetStateView() {
	s.mockTracker.EXPECT().
		GetState(gomock.Any(), &tracker.GetStateInput{GameID: s.gameID}).
		Return(&tracker.GetStateOutput{State: s.state, CanUndo: true}, nil)

	rec := s.do(http.MethodGet, "/games/game-1", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var view stateView
	s.decode(rec, &view)
	s.Equal(s.state, view.State)
	s.Equal("04:31", view.Clock)
	s.Equal("warning", string(view.ShotClockLevel))
	s.False(view.BonusHome)
	s.True(view.BonusAway)
	s.True(view.JumpBall)
	s.False(view.Overtime)
	s.True(view.CanUndo)
	s.Equal("Q2 04:31 | home 20 - 18 away | away in bonus", view.Summary)
}

func (s *HandlerTestSuite) TestCreateGame() {
	s.mockTracker.EXPECT().
		CreateGame(gomock.Any(), &tracker.CreateGameInput{GameID: s.gameID, HomeTeamID: "home", AwayTeamID: "away"}).
		Return(&tracker.CreateGameOutput{State: models.GameState{GameID: s.gameID, Status: models.GameStatusScheduled}}, nil)

	rec := s.do(http.MethodPost, "/games", createGameRequest{GameID: s.gameID, HomeTeamID: "home", AwayTeamID: "away"})
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *HandlerTestSuite) TestStartGameWithEmptyBody() {
	s.mockTracker.EXPECT().
		StartGame(gomock.Any(), &tracker.StartGameInput{GameID: s.gameID}).
		Return(&tracker.StartGameOutput{State: s.state, Rosters: []models.RosterState{{TeamID: "home"}}}, nil)

	rec := s.do(http.MethodPost, "/games/game-1/start", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var view stateView
	s.decode(rec, &view)
	s.Len(view.Rosters, 1)
}

func (s *HandlerTestSuite) TestRecordStat() {
	player := &models.PlayerRef{ID: "p1"}
	event := &models.StatEvent{
		ID:                   "event-1",
		GameID:               s.gameID,
		TeamID:               "home",
		Player:               player,
		StatType:             models.StatTypeFreeThrow,
		Modifier:             models.ModifierMade,
		Value:                1,
		Quarter:              2,
		ClockMinutesSnapshot: 4,
		ClockSecondsSnapshot: 31,
	}
	s.mockTracker.EXPECT().
		RecordStat(gomock.Any(), &tracker.RecordStatInput{
			GameID:   s.gameID,
			TeamID:   "home",
			Player:   player,
			StatType: models.StatTypeFreeThrow,
			Modifier: models.ModifierMade,
		}).
		Return(&tracker.RecordStatOutput{State: s.state, Event: event}, nil)

	rec := s.do(http.MethodPost, "/games/game-1/stats", `{"team_id":"home","player":{"id":"p1"},"stat_type":"free_throw","modifier":"made"}`)
	s.Require().Equal(http.StatusCreated, rec.Code)

	var resp eventResponse
	s.decode(rec, &resp)
	s.Equal("event-1", resp.Event.ID)
	s.Equal("Q2 04:31 p1 made free throw", resp.PlayLine)
}

func (s *HandlerTestSuite) TestRecordShot() {
	location := court.Location{X: 2, Y: 10, Zone: court.ZoneCornerThreeLeft}
	s.mockTracker.EXPECT().
		RecordShotTap(gomock.Any(), &tracker.RecordShotTapInput{
			GameID:      s.gameID,
			TeamID:      "home",
			Player:      &models.PlayerRef{ID: "p3"},
			Made:        true,
			PixelX:      20,
			PixelY:      50,
			Width:       1000,
			Height:      500,
			Perspective: court.PerspectiveTeamAAttacksUp,
		}).
		Return(&tracker.RecordShotTapOutput{
			State:    s.state,
			Event:    &models.StatEvent{ID: "event-2", StatType: models.StatTypeThreePointer, Modifier: models.ModifierMade, Quarter: 2},
			Location: location,
		}, nil)

	rec := s.do(http.MethodPost, "/games/game-1/shots", recordShotRequest{
		TeamID:      "home",
		Player:      &models.PlayerRef{ID: "p3"},
		Made:        true,
		X:           20,
		Y:           50,
		Width:       1000,
		Height:      500,
		Perspective: court.PerspectiveTeamAAttacksUp,
	})
	s.Require().Equal(http.StatusCreated, rec.Code)

	var resp eventResponse
	s.decode(rec, &resp)
	s.Require().NotNil(resp.Location)
	s.Equal(location, *resp.Location)
}

func (s *HandlerTestSuite) TestErrorMapping() {
	testCases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", fmt.Errorf("%w: rebound defensive", engine.ErrClockNotRunning), http.StatusUnprocessableEntity, "clock_not_running"},
		{"no player", engine.ErrNoPlayerSelected, http.StatusUnprocessableEntity, "no_player_selected"},
		{"not found", tracker.ErrGameNotFound, http.StatusNotFound, "game_not_found"},
		{"not active", fmt.Errorf("%w: game is completed", engine.ErrGameNotActive), http.StatusConflict, "game_not_active"},
		{"duplicate", engine.ErrDuplicateSubmission, http.StatusConflict, "duplicate_submission"},
		{"invalid input", tracker.ErrInvalidInput, http.StatusBadRequest, "invalid_input"},
		{"unknown", errors.New("redis down"), http.StatusInternalServerError, messaging.CodeInternal},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockTracker.EXPECT().Undo(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			rec := s.do(http.MethodPost, "/games/game-1/undo", nil)
			s.Equal(tc.status, rec.Code)

			var resp errorResponse
			s.decode(rec, &resp)
			s.Equal(tc.code, resp.Code)
			s.Equal(tc.err.Error(), resp.Error)
			s.NotEmpty(resp.Message)
		})
	}
}

func (s *HandlerTestSuite) TestMalformedBody() {
	rec := s.do(http.MethodPost, "/games/game-1/clock", `{"target":`)
	s.Equal(http.StatusBadRequest, rec.Code)

	var resp errorResponse
	s.decode(rec, &resp)
	s.Equal(CodeMalformedBody, resp.Code)
}

func (s *HandlerTestSuite) TestClockAndPossession() {
	s.mockTracker.EXPECT().
		ClockCommand(gomock.Any(), &tracker.ClockCommandInput{GameID: s.gameID, Target: tracker.ClockTargetGame, Action: tracker.ClockActionSet, Minutes: 4, Seconds: 31}).
		Return(&tracker.ClockCommandOutput{State: s.state}, nil)
	s.mockTracker.EXPECT().
		SetPossession(gomock.Any(), &tracker.SetPossessionInput{GameID: s.gameID, Action: tracker.PossessionActionAlternate}).
		Return(&tracker.SetPossessionOutput{State: s.state}, nil)

	rec := s.do(http.MethodPost, "/games/game-1/clock", clockRequest{Target: tracker.ClockTargetGame, Action: tracker.ClockActionSet, Minutes: 4, Seconds: 31})
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodPost, "/games/game-1/possession", possessionRequest{Action: tracker.PossessionActionAlternate})
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestSnapshotUsesPut() {
	corrected := s.state
	corrected.ScoreHome = 22
	s.mockTracker.EXPECT().
		ApplySnapshot(gomock.Any(), &tracker.ApplySnapshotInput{GameID: s.gameID, State: corrected}).
		Return(&tracker.ApplySnapshotOutput{State: corrected}, nil)

	rec := s.do(http.MethodPut, "/games/game-1/snapshot", corrected)
	s.Require().Equal(http.StatusOK, rec.Code)

	var view stateView
	s.decode(rec, &view)
	s.Equal(22, view.State.ScoreHome)
}

func (s *HandlerTestSuite) TestListGamesEmpty() {
	s.mockTracker.EXPECT().ListGames(gomock.Any(), gomock.Any()).Return(&tracker.ListGamesOutput{}, nil)

	rec := s.do(http.MethodGet, "/games", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"games":[]}`, rec.Body.String())
}

func (s *HandlerTestSuite) TestRegisterPlayers() {
	players := []models.Player{{ID: "c1", Name: "Walk-on", Custom: true}}
	s.mockTracker.EXPECT().
		RegisterPlayers(gomock.Any(), &tracker.RegisterPlayersInput{TeamID: "home", Players: players}).
		Return(&tracker.RegisterPlayersOutput{Players: []models.Player{{ID: "c1", TeamID: "home", Name: "Walk-on", Custom: true}}}, nil)

	rec := s.do(http.MethodPost, "/teams/home/players", registerPlayersRequest{Players: players})
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *HandlerTestSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/healthz", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"redis":{"status":"ok"}}`, rec.Body.String())

	s.miniRedis.Close()

	rec = s.do(http.MethodGet, "/healthz", nil)
	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.JSONEq(`{"redis":{"status":"error"}}`, rec.Body.String())
}

func (s *HandlerTestSuite) TestEventStream() {
	notifications := make(chan broadcast.Notification, 1)
	s.mockTracker.EXPECT().
		Subscribe(gomock.Any(), &tracker.SubscribeInput{GameID: s.gameID}).
		Return(&tracker.SubscribeOutput{Notifications: notifications}, nil)
	s.mockTracker.EXPECT().
		Unsubscribe(gomock.Any(), &tracker.UnsubscribeInput{GameID: s.gameID, Notifications: notifications}).
		Return(nil).
		MaxTimes(1)

	server := httptest.NewServer(s.router)
	s.T().Cleanup(server.Close)

	resp, err := http.Get(server.URL + "/games/game-1/events")
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Equal("text/event-stream", resp.Header.Get("Content-Type"))

	state := s.state
	notifications <- broadcast.Notification{Type: broadcast.TypeState, GameID: s.gameID, State: &state}

	reader := bufio.NewReader(resp.Body)
	var lines []string
	for len(lines) < 2 {
		line, err := reader.ReadString('\n')
		s.Require().NoError(err)
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, ":") {
			continue
		}
		lines = append(lines, line)
	}

	s.Equal("event: state", lines[0])
	s.Require().True(strings.HasPrefix(lines[1], "data: "))

	var n broadcast.Notification
	s.Require().NoError(json.Unmarshal([]byte(strings.TrimPrefix(lines[1], "data: ")), &n))
	s.Equal(s.gameID, n.GameID)
	s.Equal(20, n.State.ScoreHome)
}

func (s *HandlerTestSuite) TestEventStreamUnknownGame() {
	s.mockTracker.EXPECT().Subscribe(gomock.Any(), gomock.Any()).Return(nil, tracker.ErrGameNotFound)

	rec := s.do(http.MethodGet, "/games/missing/events", nil)
	s.Equal(http.StatusNotFound, rec.Code)
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
