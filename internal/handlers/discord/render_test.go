package discord

import (
	"strings"
	"testing"
	"time"

	"github.com/KirkDiggler/countermtg/internal/counter"
	"github.com/KirkDiggler/countermtg/internal/models"
	"github.com/KirkDiggler/countermtg/internal/palette"
	"github.com/KirkDiggler/countermtg/internal/services/cards"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
)

type RenderTestSuite struct {
	suite.Suite
	match *models.Match
	now   time.Time
}

func (s *RenderTestSuite) SetupTest() {
	s.now = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.match = &models.Match{
		ID:        "match-1",
		ChannelID: "channel-1",
		Config:    models.MatchConfig{PlayerCount: 4, StartingLife: 40},
		Draft:     models.MatchConfig{PlayerCount: 4, StartingLife: 40},
		Spotlight: models.Spotlight{Index: -1},
	}

	names := []string{"Player 1", "Player 2", "Player 3", "Player 4"}
	for seat := 0; seat < 4; seat++ {
		s.match.Players = append(s.match.Players, counter.NewPlayer(&counter.NewPlayerInput{
			ID:           "p" + names[seat],
			Seat:         seat,
			StartingLife: 40,
			Opponents:    names,
		}))
	}
}

func TestRenderTestSuite(t *testing.T) {
	suite.Run(t, new(RenderTestSuite))
}

// customIDs collects the custom ids of every component in the rows
func customIDs(components []discordgo.MessageComponent) []string {
	var ids []string
	for _, c := range components {
		row, ok := c.(discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, inner := range row.Components {
			switch v := inner.(type) {
			case discordgo.Button:
				ids = append(ids, v.CustomID)
			case discordgo.SelectMenu:
				ids = append(ids, v.CustomID)
			}
		}
	}
	return ids
}

func (s *RenderTestSuite) TestBoardListsTopRowFirst() {
	embed, components := renderBoard(s.match, s.now, "")

	s.Require().Len(embed.Fields, 4)
	s.Equal("Player 1", embed.Fields[0].Name)
	s.Equal("Player 2", embed.Fields[1].Name)
	s.Contains(embed.Fields[0].Value, "❤️ **40**")

	ids := customIDs(components)
	s.Contains(ids, seatCustomID(actionOpenPlayer, "match-1", 3, ""))
	s.Contains(ids, matchCustomID(actionSpotlight, "match-1", ""))
	s.Contains(ids, matchCustomID(actionResetLives, "match-1", ""))
}

func (s *RenderTestSuite) TestBoardShowsCountersAndLoss() {
	p := s.match.Players[1]
	counter.ApplyCommanderDamage(p, "Player 3", 1)
	counter.AdjustPoison(p, 10)

	embed, _ := renderBoard(s.match, s.now, "")
	field := embed.Fields[1]

	s.True(strings.HasPrefix(field.Name, "💀"))
	s.Contains(field.Value, "☠️ 10/10")
	s.Contains(field.Value, "⚔️ Player 3 1")
	s.Contains(field.Value, "❤️ **39**")
}

func (s *RenderTestSuite) TestBoardSpotlight() {
	s.match.Spotlight = models.Spotlight{Version: 1, Running: true, Index: 2}
	embed, _ := renderBoard(s.match, s.now, "")
	s.Contains(embed.Description, "👉 Player 3")

	s.match.Spotlight = models.Spotlight{Version: 1, Final: true, Index: 2}
	s.Require().NoError(counter.SelectColor(s.match.Players[2], "#dc2626"))

	embed, _ = renderBoard(s.match, s.now, "Player 3 goes first!")
	s.Contains(embed.Description, "⭐ **Player 3** starts")
	s.Contains(embed.Description, "Player 3 goes first!")
	s.Equal(0xdc2626, embed.Color)
}

func (s *RenderTestSuite) TestBoardShowsOpenTimer() {
	counter.Rename(s.match.Players[0], "slowpoke", s.now)

	embed, _ := renderBoard(s.match, s.now.Add(75*time.Second), "")
	s.Contains(embed.Fields[0].Value, "⏱️ 1:15")
}

func (s *RenderTestSuite) TestPlayerPanelRowsFollowActivePanel() {
	_, components := renderPlayerPanel(s.match, 0, s.now)
	s.Len(components, 3)
	s.Contains(customIDs(components), seatCustomID(actionLife, "match-1", 0, "-5"))
	s.Contains(customIDs(components), seatCustomID(actionTimer, "match-1", 0, "open"))

	counter.TogglePanel(s.match.Players[0], models.PanelPoison)
	_, components = renderPlayerPanel(s.match, 0, s.now)
	s.Len(components, 4)
	s.Contains(customIDs(components), seatCustomID(actionPoison, "match-1", 0, "1"))

	counter.TogglePanel(s.match.Players[0], models.PanelCommanderDamage)
	_, components = renderPlayerPanel(s.match, 0, s.now)
	s.Len(components, 5)

	counter.TogglePanel(s.match.Players[0], models.PanelPalette)
	_, components = renderPlayerPanel(s.match, 0, s.now)
	s.Len(components, 4)
	s.Contains(customIDs(components), seatCustomID(actionColor, "match-1", 0, ""))
}

func (s *RenderTestSuite) TestCommanderSelectExcludesSelf() {
	counter.TogglePanel(s.match.Players[0], models.PanelCommanderDamage)
	_, components := renderPlayerPanel(s.match, 0, s.now)

	menu := components[2].(discordgo.ActionsRow).Components[0].(discordgo.SelectMenu)
	var values []string
	for _, opt := range menu.Options {
		values = append(values, opt.Value)
	}
	s.Equal([]string{"Player 2", "Player 3", "Player 4"}, values)
}

func (s *RenderTestSuite) TestRunningTimerOffersPause() {
	counter.Rename(s.match.Players[0], "slowpoke", s.now)
	_, components := renderPlayerPanel(s.match, 0, s.now)

	ids := customIDs(components)
	s.Contains(ids, seatCustomID(actionTimer, "match-1", 0, "stop"))
	s.Contains(ids, seatCustomID(actionTimer, "match-1", 0, "close"))
}

func (s *RenderTestSuite) TestMissingSeat() {
	embed, components := renderPlayerPanel(s.match, 9, s.now)
	s.Equal("Seat not found", embed.Title)
	s.Nil(components)
}

func (s *RenderTestSuite) TestDraft() {
	s.match.Draft = models.MatchConfig{PlayerCount: 2, StartingLife: 20}

	embed, components := renderDraft(s.match)
	s.Equal("4 → 2", embed.Fields[0].Value)
	s.Equal("40 → 20", embed.Fields[1].Value)
	s.Equal([]string{matchCustomID(actionApply, "match-1", "")}, customIDs(components))
}

func (s *RenderTestSuite) TestSearchResults() {
	embeds, components := renderSearch(&cards.SearchResult{
		Query: "bolt",
		Cards: []models.Card{
			{ID: "c1", Name: "Lightning Bolt", ManaCost: "{R}", Type: "Instant", SetName: "Alpha", ImageURL: "https://img/c1"},
			{ID: "c2", Name: "Bolt Bend"},
		},
	}, 2)

	s.Require().Len(embeds, 1)
	s.Contains(embeds[0].Description, "**Lightning Bolt** {R} · Instant (Alpha)")
	s.Equal("https://img/c1", embeds[0].Image.URL)

	menu := components[0].(discordgo.ActionsRow).Components[0].(discordgo.SelectMenu)
	s.Len(menu.Options, 2)
	s.Equal("c1", menu.Options[0].Value)
}

func (s *RenderTestSuite) TestSearchNotFoundAndShortQuery() {
	embeds, components := renderSearch(&cards.SearchResult{Query: "zzzz", Cards: []models.Card{}, NotFound: true}, 2)
	s.Contains(embeds[0].Description, "No cards found")
	s.Nil(components)

	embeds, _ = renderSearch(&cards.SearchResult{Query: "z", Cards: []models.Card{}}, 2)
	s.Contains(embeds[0].Description, "at least 2 characters")
}

func (s *RenderTestSuite) TestRulings() {
	s.Equal("No rulings for this card.", renderRulings(&cards.RulingsResult{CardID: "c1"}).Description)

	embed := renderRulings(&cards.RulingsResult{CardID: "c1", Rulings: []models.Ruling{{Date: "2004-10-04", Text: "It deals 3 damage."}}})
	s.Contains(embed.Description, "**2004-10-04** It deals 3 damage.")
}

func (s *RenderTestSuite) TestBanlistLinksResolvedImages() {
	embed := renderBanlist(&cards.ResolveOutput{
		Format: "pioneer",
		Entries: []models.BanlistEntry{
			{Name: "Oko, Thief of Crowns", ImageURL: "https://img/oko"},
			{Name: "Walking Ballista"},
		},
	})

	s.Equal("Banned in pioneer (2)", embed.Title)
	s.Equal("[Oko, Thief of Crowns](https://img/oko)\nWalking Ballista", embed.Description)
}

func (s *RenderTestSuite) TestPanelColorFollowsBackground() {
	embed, _ := renderPlayerPanel(s.match, 0, s.now)
	s.Equal(0x1e40af, embed.Color)

	p := s.match.Players[0]
	s.Require().NoError(counter.SelectColor(p, "#dc2626"))
	s.Require().NoError(counter.SelectColor(p, "#16a34a"))

	bands, err := palette.BandsFor(p.Colors, palette.DefaultBands)
	s.Require().NoError(err)

	embed, _ = renderPlayerPanel(s.match, 0, s.now)
	s.Equal(colorValue(bands[palette.DefaultBands/2]), embed.Color)
	s.NotEqual(0xdc2626, embed.Color)
}

func (s *RenderTestSuite) TestColorValue() {
	s.Equal(0x1e40af, colorValue("#1E40AF"))
	s.Equal(boardColor, colorValue("not a color"))
}
