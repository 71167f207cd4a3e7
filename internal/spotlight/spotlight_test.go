package spotlight

import (
	"testing"
	"time"

	"github.com/KirkDiggler/countermtg/internal/dice"
	"github.com/KirkDiggler/countermtg/internal/dice/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SpotlightTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockRoller *mocks.MockRoller
}

func (s *SpotlightTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRoller = mocks.NewMockRoller(s.ctrl)
}

func TestSpotlightTestSuite(t *testing.T) {
	suite.Run(t, new(SpotlightTestSuite))
}

func (s *SpotlightTestSuite) TestNoConsecutiveRepeats() {
	for _, players := range []int{2, 3, 4, 6} {
		seq := New(players, dice.New(&dice.Config{Seed: int64(players)}), nil)

		prev := -1
		for !seq.Done() {
			f := seq.Next()
			s.Require().NotEqual(prev, f.Index)
			s.Require().GreaterOrEqual(f.Index, 0)
			s.Require().Less(f.Index, players)
			prev = f.Index
		}
	}
}

func (s *SpotlightTestSuite) TestTotalScalesWithPlayers() {
	cfg := &Config{Tick: 100 * time.Millisecond, Duration: 500 * time.Millisecond, MinSwitches: 4, SwitchesPerPlayer: 3}

	s.Equal(6, New(2, dice.New(nil), cfg).Total())
	s.Equal(18, New(6, dice.New(nil), cfg).Total())

	long := &Config{Tick: 100 * time.Millisecond, Duration: 3 * time.Second, MinSwitches: 4, SwitchesPerPlayer: 1}
	s.Equal(30, New(3, dice.New(nil), long).Total())
}

func (s *SpotlightTestSuite) TestFinalFrameIsLast() {
	seq := New(4, dice.New(&dice.Config{Seed: 5}), nil)

	var last Frame
	for i := 0; i < seq.Total(); i++ {
		last = seq.Next()
		if i < seq.Total()-1 {
			s.False(last.Final)
		}
	}
	s.True(last.Final)
	s.Equal(seq.Total(), last.Step)

	again := seq.Next()
	s.Equal(last, again)
}

func (s *SpotlightTestSuite) TestSinglePlayerFinishesImmediately() {
	seq := New(1, dice.New(nil), nil)
	s.Equal(1, seq.Total())

	f := seq.Next()
	s.Equal(Frame{Index: 0, Step: 1, Final: true}, f)
}

func (s *SpotlightTestSuite) TestStubbornRollerFallsBackToNeighbour() {
	s.mockRoller.EXPECT().Roll(3).Return(2).AnyTimes()

	seq := New(3, s.mockRoller, &Config{MaxRetries: 2})

	s.Equal(1, seq.Next().Index)
	s.Equal(2, seq.Next().Index)
	s.Equal(1, seq.Next().Index)
}
