package stopwatch

import (
	"testing"
	"time"

	"github.com/KirkDiggler/countermtg/internal/models"
	"github.com/stretchr/testify/suite"
)

type StopwatchTestSuite struct {
	suite.Suite
	t0    time.Time
	timer *models.Timer
}

func (s *StopwatchTestSuite) SetupTest() {
	s.t0 = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.timer = &models.Timer{}
}

func TestStopwatchTestSuite(t *testing.T) {
	suite.Run(t, new(StopwatchTestSuite))
}

func (s *StopwatchTestSuite) TestStartStopAccumulates() {
	Start(s.timer, s.t0)
	s.True(s.timer.Running)
	s.True(s.timer.Open)
	s.Equal("1:05", Display(s.timer, s.t0.Add(65*time.Second)))

	Stop(s.timer, s.t0.Add(65*time.Second))
	s.False(s.timer.Running)
	s.Nil(s.timer.StartedAt)
	s.Equal(int64(65000), s.timer.ElapsedMs)

	// stopped time does not advance
	s.Equal("1:05", Display(s.timer, s.t0.Add(time.Hour)))

	Start(s.timer, s.t0.Add(2*time.Minute))
	s.Equal("1:15", Display(s.timer, s.t0.Add(2*time.Minute+10*time.Second)))
}

func (s *StopwatchTestSuite) TestStartTwiceKeepsFirstStart() {
	Start(s.timer, s.t0)
	Start(s.timer, s.t0.Add(30*time.Second))

	s.Equal(40*time.Second, Elapsed(s.timer, s.t0.Add(40*time.Second)))
}

func (s *StopwatchTestSuite) TestResetClears() {
	Start(s.timer, s.t0)
	Reset(s.timer)

	s.False(s.timer.Running)
	s.Equal(time.Duration(0), Elapsed(s.timer, s.t0.Add(time.Minute)))
}

func (s *StopwatchTestSuite) TestApplyCloseStopsAndHides() {
	s.Require().NoError(Apply(s.timer, ActionStart, s.t0))
	s.Require().NoError(Apply(s.timer, ActionMinimize, s.t0))
	s.True(s.timer.Minimized)

	s.Require().NoError(Apply(s.timer, ActionClose, s.t0.Add(5*time.Second)))
	s.False(s.timer.Open)
	s.False(s.timer.Running)
	s.False(s.timer.Minimized)
	s.Equal(int64(5000), s.timer.ElapsedMs)
}

func (s *StopwatchTestSuite) TestApplyUnknownAction() {
	s.Error(Apply(s.timer, Action("lap"), s.t0))
	s.False(Action("lap").IsValid())
}

func (s *StopwatchTestSuite) TestFormat() {
	s.Equal("0:00", Format(0))
	s.Equal("0:09", Format(9*time.Second+900*time.Millisecond))
	s.Equal("12:00", Format(12*time.Minute))
	s.Equal("0:00", Format(-time.Second))
}

func (s *StopwatchTestSuite) TestIsEasterEgg() {
	s.True(IsEasterEgg("  SlowPoke "))
	s.False(IsEasterEgg("slow poke"))
}
