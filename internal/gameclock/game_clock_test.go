package gameclock

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

type GameClockTestSuite struct {
	suite.Suite
	clock *GameClock
}

func (s *GameClockTestSuite) SetupTest() {
	s.clock = NewGameClock(DefaultQuarterSeconds)
}

func (s *GameClockTestSuite) TestNewClockIsStopped() {
	s.False(s.clock.Running())
	s.Equal(600, s.clock.Remaining())
}

func (s *GameClockTestSuite) TestTickWhileStoppedDoesNothing() {
	s.False(s.clock.Tick())
	s.Equal(600, s.clock.Remaining())
}

func (s *GameClockTestSuite) TestTickDecrementsRunningClock() {
	s.clock.Start()
	s.True(s.clock.Tick())
	s.Equal(599, s.clock.Remaining())
	s.True(s.clock.Running())
}

func (s *GameClockTestSuite) TestTickStopsAtZero() {
	s.Require().NoError(s.clock.Reset(2))
	s.clock.Start()

	s.clock.Tick()
	s.clock.Tick()
	s.Equal(0, s.clock.Remaining())
	s.False(s.clock.Running())

	s.False(s.clock.Tick())
	s.Equal(0, s.clock.Remaining())
}

func (s *GameClockTestSuite) TestStartAtZeroStaysStopped() {
	s.Require().NoError(s.clock.Reset(0))
	s.clock.Start()
	s.False(s.clock.Running())
}

func (s *GameClockTestSuite) TestResetStopsClock() {
	s.clock.Start()
	s.Require().NoError(s.clock.Reset(300))
	s.False(s.clock.Running())
	s.Equal(300, s.clock.Remaining())
}

func (s *GameClockTestSuite) TestResetRejectsNegative() {
	err := s.clock.Reset(-1)
	s.True(errors.Is(err, ErrInvalidClockValue))
	s.Equal(600, s.clock.Remaining())
}

func (s *GameClockTestSuite) TestSetCustom() {
	s.clock.Start()
	s.Require().NoError(s.clock.SetCustom(4, 37))
	s.Equal(277, s.clock.Remaining())
	s.True(s.clock.Running(), "running flag is left alone")

	minutes, seconds := s.clock.Snapshot()
	s.Equal(4, minutes)
	s.Equal(37, seconds)
}

func (s *GameClockTestSuite) TestSetCustomRejectsOutOfRange() {
	for _, tc := range []struct{ minutes, seconds int }{
		{-1, 0},
		{0, -1},
		{3, 60},
	} {
		err := s.clock.SetCustom(tc.minutes, tc.seconds)
		s.True(errors.Is(err, ErrInvalidClockValue), "%d:%d", tc.minutes, tc.seconds)
	}
	s.Equal(600, s.clock.Remaining())
}

func (s *GameClockTestSuite) TestRestore() {
	s.clock.Restore(125, true)
	s.Equal(125, s.clock.Remaining())
	s.True(s.clock.Running())

	s.clock.Restore(0, true)
	s.False(s.clock.Running())
}

func TestGameClockSuite(t *testing.T) {
	suite.Run(t, new(GameClockTestSuite))
}
