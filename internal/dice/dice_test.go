package dice

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type DiceTestSuite struct {
	suite.Suite
}

func TestDiceTestSuite(t *testing.T) {
	suite.Run(t, new(DiceTestSuite))
}

func (s *DiceTestSuite) TestRollStaysInRange() {
	r := New(&Config{Seed: 42})
	for i := 0; i < 500; i++ {
		v := r.Roll(6)
		s.GreaterOrEqual(v, 1)
		s.LessOrEqual(v, 6)
	}
}

func (s *DiceTestSuite) TestRollDefaultsToSixSides() {
	r := New(&Config{Seed: 7})
	for i := 0; i < 100; i++ {
		s.LessOrEqual(r.Roll(0), 6)
	}
}

func (s *DiceTestSuite) TestSameSeedSameSequence() {
	a := New(&Config{Seed: 99})
	b := New(&Config{Seed: 99})
	for i := 0; i < 20; i++ {
		s.Equal(a.Roll(20), b.Roll(20))
	}
}
