package hold

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type TrackerTestSuite struct {
	suite.Suite
	t0      time.Time
	tracker *Tracker
}

func (s *TrackerTestSuite) SetupTest() {
	s.t0 = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.tracker = New(nil)
}

func TestTrackerTestSuite(t *testing.T) {
	suite.Run(t, new(TrackerTestSuite))
}

func (s *TrackerTestSuite) at(ms int) time.Time {
	return s.t0.Add(time.Duration(ms) * time.Millisecond)
}

func (s *TrackerTestSuite) TestTapAppliesOnce() {
	s.tracker.Press(s.at(0), 1)

	s.Equal(0, s.tracker.Advance(s.at(300)))
	s.Equal(StatePressed, s.tracker.State())
	s.Equal(1, s.tracker.Release(s.at(400)))
	s.Equal(StateIdle, s.tracker.State())
}

func (s *TrackerTestSuite) TestLongPressRepeatsAndSuppressesTap() {
	s.tracker.Press(s.at(0), -5)

	s.Equal(1, s.tracker.Advance(s.at(2000)), "detection applies once")
	s.Equal(StateRepeating, s.tracker.State())
	s.Equal(1, s.tracker.Advance(s.at(2500)))
	s.Equal(1, s.tracker.Advance(s.at(3000)))
	s.Equal(1, s.tracker.Advance(s.at(3500)))

	// released ~1700ms into the repeats: 1 + 3 repeats, no tap
	s.Equal(0, s.tracker.Release(s.at(3700)))
}

func (s *TrackerTestSuite) TestLongPressTotalIndependentOfTickTiming() {
	s.tracker.Press(s.at(0), 1)

	total := s.tracker.Advance(s.at(2100))
	total += s.tracker.Advance(s.at(3400))
	total += s.tracker.Release(s.at(3700))

	s.Equal(4, total)
}

func (s *TrackerTestSuite) TestReleaseAfterThresholdWithoutTicks() {
	s.tracker.Press(s.at(0), 1)

	s.Equal(4, s.tracker.Release(s.at(3700)))
}

func (s *TrackerTestSuite) TestLateTickAfterReleaseIsIgnored() {
	s.tracker.Press(s.at(0), 1)
	s.Equal(1, s.tracker.Release(s.at(100)))

	s.Equal(0, s.tracker.Advance(s.at(2600)))
	s.Equal(0, s.tracker.Release(s.at(2700)))
}

func (s *TrackerTestSuite) TestDuplicateTicksApplyNothingExtra() {
	s.tracker.Press(s.at(0), 1)

	s.Equal(1, s.tracker.Advance(s.at(2200)))
	s.Equal(0, s.tracker.Advance(s.at(2200)))
	s.Equal(0, s.tracker.Advance(s.at(2300)))
}

func (s *TrackerTestSuite) TestCustomConfig() {
	tr := New(&Config{Threshold: 100 * time.Millisecond, Interval: 10 * time.Millisecond})
	tr.Press(s.at(0), 1)

	s.Equal(11, tr.Advance(s.at(200)))
	s.Equal(100*time.Millisecond, tr.Threshold())
	s.Equal(10*time.Millisecond, tr.Interval())
}

func (s *TrackerTestSuite) TestCancelDropsPress() {
	s.tracker.Press(s.at(0), 1)
	s.tracker.Cancel()

	s.Equal(StateIdle, s.tracker.State())
	s.Equal(0, s.tracker.Release(s.at(50)))
}
