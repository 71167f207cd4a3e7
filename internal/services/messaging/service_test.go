package messaging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	service Service
	ctx     context.Context
}

func (s *MessagingServiceTestSuite) SetupTest() {
	svc, err := NewService(&ServiceConfig{Seed: 42})
	s.Require().NoError(err)
	s.service = svc
	s.ctx = context.Background()
}

func TestMessagingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) TestEliminationMentionsPlayer() {
	for _, reason := range []EliminationReason{EliminationLife, EliminationPoison} {
		for i := 0; i < 20; i++ {
			out, err := s.service.GetEliminationMessage(s.ctx, &GetEliminationMessageInput{
				PlayerName: "Alice",
				Reason:     reason,
			})
			s.Require().NoError(err)
			s.Contains(out.Message, "Alice")
			s.Equal(ToneFunny, out.Tone)
		}
	}
}

func (s *MessagingServiceTestSuite) TestNeutralTone() {
	out, err := s.service.GetEliminationMessage(s.ctx, &GetEliminationMessageInput{
		PlayerName:    "Bob",
		Reason:        EliminationPoison,
		PreferredTone: ToneNeutral,
	})
	s.Require().NoError(err)
	s.Equal("Bob has lost the game.", out.Message)

	spot, err := s.service.GetSpotlightMessage(s.ctx, &GetSpotlightMessageInput{PlayerName: "Bob", PreferredTone: ToneNeutral})
	s.Require().NoError(err)
	s.Equal("Bob starts.", spot.Message)

	e, err := s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{ErrorType: ErrorTypeCardNotFound, PreferredTone: ToneNeutral})
	s.Require().NoError(err)
	s.Equal("No cards found.", e.Message)
}

func (s *MessagingServiceTestSuite) TestSpotlightDefaultsToCelebration() {
	out, err := s.service.GetSpotlightMessage(s.ctx, &GetSpotlightMessageInput{PlayerName: "Carol"})
	s.Require().NoError(err)
	s.Contains(out.Message, "Carol")
	s.Equal(ToneCelebration, out.Tone)
}

func (s *MessagingServiceTestSuite) TestUnknownErrorTypeFallsBack() {
	out, err := s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{ErrorType: "mystery"})
	s.Require().NoError(err)
	s.NotEmpty(out.Message)
}

func (s *MessagingServiceTestSuite) TestNilInput() {
	_, err := s.service.GetErrorMessage(s.ctx, nil)
	s.Error(err)
}
