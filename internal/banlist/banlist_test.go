package banlist

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type BanlistTestSuite struct {
	suite.Suite
	tables *Tables
}

func (s *BanlistTestSuite) SetupTest() {
	s.tables = Default()
}

func TestBanlistTestSuite(t *testing.T) {
	suite.Run(t, new(BanlistTestSuite))
}

func (s *BanlistTestSuite) TestDefaultTables() {
	s.Equal([]Format{
		FormatCommander, FormatPauper, FormatPioneer, FormatBrawl,
		FormatStandard, FormatModern, FormatLegacy,
	}, s.tables.Formats())

	for _, f := range s.tables.Formats() {
		cards, err := s.tables.Get(f)
		s.Require().NoError(err)
		s.NotEmpty(cards, f)
	}
}

func (s *BanlistTestSuite) TestGetIsCaseInsensitive() {
	cards, err := s.tables.Get("Pioneer")
	s.Require().NoError(err)
	s.Contains(cards, "Oko, Thief of Crowns")
	s.Contains(cards, "Walking Ballista")
}

func (s *BanlistTestSuite) TestGetReturnsCopy() {
	cards, err := s.tables.Get(FormatPauper)
	s.Require().NoError(err)
	cards[0] = "changed"

	again, err := s.tables.Get(FormatPauper)
	s.Require().NoError(err)
	s.NotEqual("changed", again[0])
}

func (s *BanlistTestSuite) TestUnknownFormat() {
	_, err := s.tables.Get("vintage")
	s.ErrorIs(err, ErrUnknownFormat)
}

func (s *BanlistTestSuite) TestLoadRejectsDuplicates() {
	_, err := Load([]byte("formats:\n  - name: modern\n    cards: [a]\n  - name: Modern\n    cards: [b]\n"))
	s.Error(err)
}
