package discord

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/countermtg/internal/models"
	"github.com/KirkDiggler/countermtg/internal/services/match"
	matchMocks "github.com/KirkDiggler/countermtg/internal/services/match/mocks"
	"github.com/KirkDiggler/countermtg/internal/services/messaging"
	messagingMocks "github.com/KirkDiggler/countermtg/internal/services/messaging/mocks"
	"github.com/KirkDiggler/countermtg/internal/stopwatch"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type BotTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockMatch     *matchMocks.MockService
	mockMessaging *messagingMocks.MockService
	bot           *Bot
	ctx           context.Context
	out           *match.UpdatePlayerOutput
}

func (s *BotTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockMatch = matchMocks.NewMockService(s.ctrl)
	s.mockMessaging = messagingMocks.NewMockService(s.ctrl)
	s.bot = &Bot{
		matchService: s.mockMatch,
		messages:     s.mockMessaging,
		logger:       zap.NewNop(),
		watchers:     make(map[string]func()),
	}
	s.ctx = context.Background()
	s.out = &match.UpdatePlayerOutput{Player: &models.Player{Seat: 1}}
}

func TestBotTestSuite(t *testing.T) {
	suite.Run(t, new(BotTestSuite))
}

func (s *BotTestSuite) TestLifeButton() {
	s.mockMatch.EXPECT().
		AdjustLife(s.ctx, &match.AdjustLifeInput{MatchID: "m1", Seat: 1, Delta: -5}).
		Return(s.out, nil)

	out, err := s.bot.applyPlayerAction(s.ctx, customID{Action: actionLife, MatchID: "m1", Seat: 1, Arg: "-5"}, nil)
	s.NoError(err)
	s.Same(s.out, out)
}

func (s *BotTestSuite) TestMalformedDelta() {
	_, err := s.bot.applyPlayerAction(s.ctx, customID{Action: actionLife, MatchID: "m1", Seat: 1, Arg: "lots"}, nil)
	s.ErrorIs(err, match.ErrInvalidDelta)

	_, err = s.bot.applyPlayerAction(s.ctx, customID{Action: actionPoison, MatchID: "m1", Seat: 1, Arg: ""}, nil)
	s.ErrorIs(err, match.ErrInvalidDelta)
}

func (s *BotTestSuite) TestCommanderSelect() {
	s.mockMatch.EXPECT().
		ApplyCommanderDamage(s.ctx, &match.ApplyCommanderDamageInput{MatchID: "m1", Seat: 1, Opponent: "Player 3", Delta: -1}).
		Return(s.out, nil)

	_, err := s.bot.applyPlayerAction(s.ctx, customID{Action: actionCommander, MatchID: "m1", Seat: 1, Arg: "-1"}, []string{"Player 3"})
	s.NoError(err)

	_, err = s.bot.applyPlayerAction(s.ctx, customID{Action: actionCommander, MatchID: "m1", Seat: 1, Arg: "1"}, nil)
	s.ErrorIs(err, match.ErrUnknownOpponent)
}

func (s *BotTestSuite) TestPanelColorAndTimer() {
	gomock.InOrder(
		s.mockMatch.EXPECT().
			TogglePanel(s.ctx, &match.TogglePanelInput{MatchID: "m1", Seat: 1, Panel: models.PanelPalette}).
			Return(s.out, nil),
		s.mockMatch.EXPECT().
			SelectColor(s.ctx, &match.SelectColorInput{MatchID: "m1", Seat: 1, Color: "#16a34a"}).
			Return(s.out, nil),
		s.mockMatch.EXPECT().
			ControlTimer(s.ctx, &match.ControlTimerInput{MatchID: "m1", Seat: 1, Action: stopwatch.ActionStart}).
			Return(s.out, nil),
	)

	_, err := s.bot.applyPlayerAction(s.ctx, customID{Action: actionPanel, MatchID: "m1", Seat: 1, Arg: string(models.PanelPalette)}, nil)
	s.NoError(err)
	_, err = s.bot.applyPlayerAction(s.ctx, customID{Action: actionColor, MatchID: "m1", Seat: 1}, []string{"#16a34a"})
	s.NoError(err)
	_, err = s.bot.applyPlayerAction(s.ctx, customID{Action: actionTimer, MatchID: "m1", Seat: 1, Arg: string(stopwatch.ActionStart)}, nil)
	s.NoError(err)
}

func (s *BotTestSuite) TestEmptyColorSelection() {
	_, err := s.bot.applyPlayerAction(s.ctx, customID{Action: actionColor, MatchID: "m1", Seat: 1}, nil)
	s.ErrorIs(err, match.ErrInvalidColor)
}

func (s *BotTestSuite) TestUnknownAction() {
	_, err := s.bot.applyPlayerAction(s.ctx, customID{Action: "juggle", MatchID: "m1", Seat: 1}, nil)
	s.Error(err)
}

func (s *BotTestSuite) TestErrorText() {
	s.mockMessaging.EXPECT().
		GetErrorMessage(s.ctx, &messaging.GetErrorMessageInput{ErrorType: messaging.ErrorTypeMatchNotFound}).
		Return(&messaging.GetErrorMessageOutput{Message: "No match here yet."}, nil)

	s.Equal("No match here yet.", s.bot.errorText(s.ctx, match.ErrMatchNotFound))
	s.Equal(string(match.ErrInvalidDelta), s.bot.errorText(s.ctx, match.ErrInvalidDelta))
}

func (s *BotTestSuite) TestErrorTextFallsBack() {
	s.mockMessaging.EXPECT().
		GetErrorMessage(s.ctx, &messaging.GetErrorMessageInput{ErrorType: messaging.ErrorTypeGeneric}).
		Return(nil, errors.New("no messages"))

	s.Equal("Something went wrong.", s.bot.errorText(s.ctx, errors.New("boom")))
}

func (s *BotTestSuite) TestWatchSkipsUnknownMatch() {
	cancelled := 0
	var events <-chan *models.MatchEvent = make(chan *models.MatchEvent)
	s.mockMatch.EXPECT().
		Subscribe(&match.SubscribeInput{MatchID: "gone"}).
		Return(events, func() { cancelled++ })
	s.mockMatch.EXPECT().
		GetMatch(s.ctx, &match.GetMatchInput{MatchID: "gone"}).
		Return(nil, match.ErrMatchNotFound)

	s.bot.ensureWatch(s.ctx, "gone")

	s.Equal(1, cancelled)
	s.False(s.bot.watching("gone"))
}

func (s *BotTestSuite) TestWatchEndsWithSubscription() {
	ch := make(chan *models.MatchEvent)
	var events <-chan *models.MatchEvent = ch
	s.mockMatch.EXPECT().
		Subscribe(&match.SubscribeInput{MatchID: "m1"}).
		Return(events, func() {}).
		Times(1)
	s.mockMatch.EXPECT().
		GetMatch(s.ctx, &match.GetMatchInput{MatchID: "m1"}).
		Return(&match.GetMatchOutput{Match: &models.Match{ID: "m1"}}, nil)

	s.bot.ensureWatch(s.ctx, "m1")
	s.True(s.bot.watching("m1"))

	// a second interaction reuses the running watcher
	s.bot.ensureWatch(s.ctx, "m1")

	close(ch)
	s.Eventually(func() bool { return !s.bot.watching("m1") }, time.Second, time.Millisecond)
}
