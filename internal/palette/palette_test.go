package palette

import (
	"testing"

	"github.com/KirkDiggler/countermtg/internal/models"
	"github.com/stretchr/testify/suite"
)

type PaletteTestSuite struct {
	suite.Suite
	seed models.ColorTags
}

func (s *PaletteTestSuite) SetupTest() {
	s.seed = Seed("#1e40af")
}

func TestPaletteTestSuite(t *testing.T) {
	suite.Run(t, new(PaletteTestSuite))
}

func (s *PaletteTestSuite) TestToggleReplacesSeed() {
	tags, err := Toggle(s.seed, "#DC2626")
	s.Require().NoError(err)

	s.Equal([]string{"#dc2626"}, tags.Tags)
	s.False(tags.Seeded)
	s.Equal("#1e40af", tags.Seed)
}

func (s *PaletteTestSuite) TestToggleAppendsUpToThree() {
	tags := s.seed
	for _, c := range []string{"#dc2626", "#16a34a", "#111827"} {
		var err error
		tags, err = Toggle(tags, c)
		s.Require().NoError(err)
	}
	s.Require().Equal([]string{"#dc2626", "#16a34a", "#111827"}, tags.Tags)

	full, err := Toggle(tags, "#f8fafc")
	s.Require().NoError(err)
	s.Equal(tags, full)
}

func (s *PaletteTestSuite) TestToggleDeselectRemovesExactlyThatColor() {
	tags := s.seed
	tags, _ = Toggle(tags, "#dc2626")
	tags, _ = Toggle(tags, "#16a34a")
	tags, _ = Toggle(tags, "#111827")

	tags, err := Toggle(tags, "#16a34a")
	s.Require().NoError(err)
	s.Equal([]string{"#dc2626", "#111827"}, tags.Tags)
}

func (s *PaletteTestSuite) TestToggleRemovingLastRestoresSeed() {
	tags, _ := Toggle(s.seed, "#dc2626")

	tags, err := Toggle(tags, "#dc2626")
	s.Require().NoError(err)
	s.Equal(s.seed, tags)
}

func (s *PaletteTestSuite) TestToggleRejectsBadColor() {
	tags, err := Toggle(s.seed, "blue")
	s.ErrorIs(err, ErrInvalidColor)
	s.Equal(s.seed, tags)
}

func (s *PaletteTestSuite) TestBandsSingleStop() {
	bands, err := Bands([]string{"#102030"}, 4)
	s.Require().NoError(err)
	s.Equal([]string{"#102030", "#102030", "#102030", "#102030"}, bands)
}

func (s *PaletteTestSuite) TestBandsTwoStops() {
	bands, err := Bands([]string{"#000000", "#ffffff"}, 3)
	s.Require().NoError(err)
	s.Equal([]string{"#000000", "#808080", "#ffffff"}, bands)
}

func (s *PaletteTestSuite) TestBandsThreeStops() {
	bands, err := Bands([]string{"#000000", "#ff0000", "#ffffff"}, 5)
	s.Require().NoError(err)

	// first ceil(5/2)=3 bands black->red, last 2 red->white
	s.Equal([]string{"#000000", "#800000", "#ff0000", "#ff0000", "#ffffff"}, bands)
}

func (s *PaletteTestSuite) TestBandsValidation() {
	_, err := Bands(nil, 4)
	s.Error(err)

	_, err = Bands([]string{"#000000"}, 0)
	s.Error(err)

	_, err = Bands([]string{"#00000"}, 2)
	s.ErrorIs(err, ErrInvalidColor)
}

func (s *PaletteTestSuite) TestSeatColorWraps() {
	s.Equal(SeatColors[0], SeatColor(0))
	s.Equal(SeatColors[0], SeatColor(len(SeatColors)))
}

func (s *PaletteTestSuite) TestAllContainsBothPalettes() {
	s.Len(All(), len(Fixed)+len(Extended))
}
