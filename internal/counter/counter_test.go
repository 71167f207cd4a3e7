package counter

import (
	"math/rand"
	"testing"
	"time"

	"github.com/KirkDiggler/countermtg/internal/models"
	"github.com/stretchr/testify/suite"
)

type CounterTestSuite struct {
	suite.Suite
	player   *models.Player
	testTime time.Time
}

func (s *CounterTestSuite) SetupTest() {
	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.player = NewPlayer(&NewPlayerInput{
		ID:           "player-2",
		Seat:         1,
		StartingLife: 40,
		Opponents:    []string{"Player 1", "Player 2", "Player 3", "Player 4"},
	})
}

func TestCounterTestSuite(t *testing.T) {
	suite.Run(t, new(CounterTestSuite))
}

func (s *CounterTestSuite) TestNewPlayerDefaults() {
	s.Equal("Player 2", s.player.Name)
	s.Equal(40, s.player.Life)
	s.Equal(models.PanelNone, s.player.ActivePanel)
	s.True(s.player.Colors.Seeded)
	s.Equal(map[string]int{"Player 1": 0, "Player 3": 0, "Player 4": 0}, s.player.CommanderDamage)
}

func (s *CounterTestSuite) TestLifeIsSumOfDeltas() {
	rng := rand.New(rand.NewSource(1))
	deltas := []int{-5, -1, 1, 5}

	sum := 0
	for i := 0; i < 1000; i++ {
		d := deltas[rng.Intn(len(deltas))]
		sum += d
		AdjustLife(s.player, d)
	}
	s.Equal(40+sum, s.player.Life)
}

func (s *CounterTestSuite) TestLifeCanGoNegative() {
	for i := 0; i < 9; i++ {
		AdjustLife(s.player, -5)
	}
	s.Equal(-5, s.player.Life)
	s.True(s.player.Lost())
}

func (s *CounterTestSuite) TestPoisonStaysInBounds() {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		if rng.Intn(2) == 0 {
			AdjustPoison(s.player, 1)
		} else {
			AdjustPoison(s.player, -1)
		}
		s.GreaterOrEqual(s.player.Poison, 0)
		s.LessOrEqual(s.player.Poison, models.MaxPoison)
	}
}

func (s *CounterTestSuite) TestLostPredicate() {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 500; i++ {
		AdjustLife(s.player, []int{-5, -1, 1, 5}[rng.Intn(4)])
		AdjustPoison(s.player, []int{-1, 1}[rng.Intn(2)])
		expected := s.player.Life <= 0 || s.player.Poison >= 10
		s.Equal(expected, s.player.Lost())
	}

	s.player.Life = 1
	s.player.Poison = 10
	s.True(s.player.Lost())

	s.player.Poison = 9
	s.False(s.player.Lost())
}

func (s *CounterTestSuite) TestPanelsAreMutuallyExclusive() {
	TogglePanel(s.player, models.PanelPoison)
	s.Equal(models.PanelPoison, s.player.ActivePanel)

	TogglePanel(s.player, models.PanelCommanderDamage)
	s.Equal(models.PanelCommanderDamage, s.player.ActivePanel)

	TogglePanel(s.player, models.PanelCommanderDamage)
	s.Equal(models.PanelNone, s.player.ActivePanel)

	TogglePanel(s.player, models.PanelPalette)
	TogglePanel(s.player, models.PanelNone)
	s.Equal(models.PanelNone, s.player.ActivePanel)
}

func (s *CounterTestSuite) TestCommanderDamageMirrorsLife() {
	for i := 0; i < 5; i++ {
		s.Equal(1, ApplyCommanderDamage(s.player, "Player 1", 1))
	}

	s.Equal(5, s.player.CommanderDamage["Player 1"])
	s.Equal(35, s.player.Life)

	s.Equal(-1, ApplyCommanderDamage(s.player, "Player 1", -1))
	s.Equal(4, s.player.CommanderDamage["Player 1"])
	s.Equal(36, s.player.Life)
}

func (s *CounterTestSuite) TestCommanderDamageFloorsAtZero() {
	s.Equal(0, ApplyCommanderDamage(s.player, "Player 3", -1))
	s.Equal(0, s.player.CommanderDamage["Player 3"])
	s.Equal(40, s.player.Life)

	ApplyCommanderDamage(s.player, "Player 3", 1)
	for i := 0; i < 4; i++ {
		ApplyCommanderDamage(s.player, "Player 3", -1)
	}
	s.Equal(0, s.player.CommanderDamage["Player 3"])
	s.Equal(40, s.player.Life)
}

func (s *CounterTestSuite) TestLifeChangesDoNotTouchCommanderDamage() {
	ApplyCommanderDamage(s.player, "Player 1", 1)
	AdjustLife(s.player, 1)

	s.Equal(1, s.player.CommanderDamage["Player 1"])
	s.Equal(40, s.player.Life)
}

func (s *CounterTestSuite) TestSyncOpponentsNeverRemoves() {
	ApplyCommanderDamage(s.player, "Player 4", 3)

	SyncOpponents(s.player, []string{"Player 1", "Player 2", "Alice"})

	s.Equal(3, s.player.CommanderDamage["Player 4"])
	s.Contains(s.player.CommanderDamage, "Alice")
	s.NotContains(s.player.CommanderDamage, "Player 2")
}

func (s *CounterTestSuite) TestOpponentsExcludesSelf() {
	s.Equal([]string{"Player 1", "Player 3"}, Opponents(s.player, []string{"Player 1", "Player 2", "Player 3"}))
}

func (s *CounterTestSuite) TestRotationWraps() {
	for n := 1; n <= 20; n++ {
		Rotate(s.player)
		s.Equal((45*n)%360, s.player.Rotation)
	}
}

func (s *CounterTestSuite) TestResetRestoresStartingState() {
	AdjustLife(s.player, -17)
	AdjustPoison(s.player, 6)
	TogglePanel(s.player, models.PanelPoison)

	Reset(s.player)

	s.Equal(40, s.player.Life)
	s.Equal(0, s.player.Poison)
	s.Equal(models.PanelNone, s.player.ActivePanel)
}

func (s *CounterTestSuite) TestResetKeepsOtherPanels() {
	TogglePanel(s.player, models.PanelPalette)
	Reset(s.player)
	s.Equal(models.PanelPalette, s.player.ActivePanel)
}

func (s *CounterTestSuite) TestObserveResetFiresOnEdgeOnly() {
	AdjustLife(s.player, -10)

	s.False(ObserveReset(s.player, 0, 40))
	s.Equal(30, s.player.Life)

	s.True(ObserveReset(s.player, 1, 20))
	s.Equal(20, s.player.Life)
	s.Equal(20, s.player.StartingLife)

	AdjustLife(s.player, -3)
	s.False(ObserveReset(s.player, 1, 20))
	s.Equal(17, s.player.Life)
}

func (s *CounterTestSuite) TestSelectColorFromSeed() {
	s.Require().NoError(SelectColor(s.player, "#dc2626"))
	s.Equal([]string{"#dc2626"}, s.player.Colors.Tags)
}

func (s *CounterTestSuite) TestRenameTrimsAndClamps() {
	s.True(Rename(s.player, "   Jace, the Mind Sculptor of Vryn   ", s.testTime))
	s.Equal("Jace, the Mind Sculp", s.player.Name)
	s.Len([]rune(s.player.Name), models.MaxNameLength)
}

func (s *CounterTestSuite) TestRenameEmptyKeepsName() {
	s.False(Rename(s.player, "    ", s.testTime))
	s.Equal("Player 2", s.player.Name)
}

func (s *CounterTestSuite) TestRenameEasterEggStartsTimer() {
	s.True(Rename(s.player, " SLOWPOKE ", s.testTime))

	s.True(s.player.Timer.Open)
	s.True(s.player.Timer.Running)
	s.Equal(s.testTime, *s.player.Timer.StartedAt)
}
