package roster

import (
	"errors"
	"fmt"
	"testing"

	"github.com/KitchAIv1/statjam-sub000/internal/models"
	"github.com/stretchr/testify/suite"
)

type ManagerTestSuite struct {
	suite.Suite
	players []models.Player
	manager *Manager
}

func ref(id string) models.PlayerRef {
	return models.PlayerRef{ID: id}
}

func (s *ManagerTestSuite) SetupTest() {
	s.players = nil
	for i := 1; i <= 6; i++ {
		s.players = append(s.players, models.Player{
			ID:     fmt.Sprintf("P%d", i),
			TeamID: "home",
			Name:   fmt.Sprintf("Player %d", i),
		})
	}

	var err error
	s.manager, err = New("home", s.players, nil)
	s.Require().NoError(err)
}

func (s *ManagerTestSuite) TestDefaultStarters() {
	s.Equal([]models.PlayerRef{ref("P1"), ref("P2"), ref("P3"), ref("P4"), ref("P5")}, s.manager.OnCourt())
	s.Equal([]models.PlayerRef{ref("P6")}, s.manager.Bench())
}

func (s *ManagerTestSuite) TestSubstitute() {
	s.Require().NoError(s.manager.Substitute(ref("P1"), ref("P6")))

	s.Equal([]models.PlayerRef{ref("P2"), ref("P3"), ref("P4"), ref("P5"), ref("P6")}, s.manager.OnCourt())
	s.Equal([]models.PlayerRef{ref("P1")}, s.manager.Bench())
	s.True(s.manager.IsOnBench(ref("P1")))
	s.True(s.manager.IsOnCourt(ref("P6")))
}

func (s *ManagerTestSuite) TestSubstituteRejectsInvalidSwap() {
	tests := []struct {
		name    string
		out, in models.PlayerRef
	}{
		{"out is on the bench", ref("P6"), ref("P1")},
		{"in is on court", ref("P1"), ref("P2")},
		{"in is not eligible", ref("P1"), ref("P99")},
		{"custom player is not the regular player", ref("P1"), models.PlayerRef{ID: "P6", Custom: true}},
	}

	for _, tc := range tests {
		err := s.manager.Substitute(tc.out, tc.in)
		s.True(errors.Is(err, ErrInvalidRosterOperation), tc.name)
		s.Len(s.manager.OnCourt(), OnCourtSize, tc.name)
	}
}

func (s *ManagerTestSuite) TestInsufficientRoster() {
	_, err := New("home", s.players[:4], nil)
	s.True(errors.Is(err, ErrInsufficientRoster))
}

func (s *ManagerTestSuite) TestDuplicateEligiblePlayersCountOnce() {
	players := append([]models.Player{}, s.players[:4]...)
	players = append(players, s.players[0])

	_, err := New("home", players, nil)
	s.True(errors.Is(err, ErrInsufficientRoster))
}

func (s *ManagerTestSuite) TestExplicitStarters() {
	m, err := New("home", s.players, []models.PlayerRef{ref("P6"), ref("P5"), ref("P4"), ref("P3"), ref("P2")})
	s.Require().NoError(err)
	s.Equal([]models.PlayerRef{ref("P1")}, m.Bench())
}

func (s *ManagerTestSuite) TestInvalidStarters() {
	tests := map[string][]models.PlayerRef{
		"too few":      {ref("P1"), ref("P2"), ref("P3"), ref("P4")},
		"duplicate":    {ref("P1"), ref("P1"), ref("P2"), ref("P3"), ref("P4")},
		"not eligible": {ref("P1"), ref("P2"), ref("P3"), ref("P4"), ref("X")},
	}

	for name, starters := range tests {
		_, err := New("home", s.players, starters)
		s.True(errors.Is(err, ErrInvalidRosterOperation), name)
	}
}

func (s *ManagerTestSuite) TestCustomPlayersAreDistinct() {
	players := append([]models.Player{}, s.players...)
	players = append(players, models.Player{ID: "P1", TeamID: "home", Custom: true})

	m, err := New("home", players, nil)
	s.Require().NoError(err)

	custom := models.PlayerRef{ID: "P1", Custom: true}
	s.True(m.IsEligible(custom))
	s.True(m.IsOnCourt(ref("P1")))
	s.False(m.IsOnCourt(custom))
	s.Require().NoError(m.Substitute(ref("P1"), custom))
	s.True(m.IsOnCourt(custom))
	s.True(m.IsOnBench(ref("P1")))
}

func (s *ManagerTestSuite) TestStateAndRestore() {
	before := s.manager.State()
	s.Require().NoError(s.manager.Substitute(ref("P1"), ref("P6")))

	s.Require().NoError(s.manager.Restore(before))
	s.Equal(before, s.manager.State())

	err := s.manager.Restore(models.RosterState{TeamID: "away", OnCourt: before.OnCourt})
	s.True(errors.Is(err, ErrInvalidRosterOperation))
}

func TestManagerSuite(t *testing.T) {
	suite.Run(t, new(ManagerTestSuite))
}
