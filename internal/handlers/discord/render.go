package discord

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/countermtg/internal/counter"
	"github.com/KirkDiggler/countermtg/internal/models"
	"github.com/KirkDiggler/countermtg/internal/palette"
	"github.com/KirkDiggler/countermtg/internal/services/cards"
	"github.com/KirkDiggler/countermtg/internal/stopwatch"
	"github.com/bwmarrin/discordgo"
)

const (
	boardColor   = 0x1e40af
	errorColor   = 0xff0000
	successColor = 0x00ff00

	// Discord limits
	maxDescription  = 4096
	maxSelectOption = 25
)

// renderBoard renders the shared board message of a match. note is
// appended under the spotlight line, usually flavor text.
func renderBoard(m *models.Match, now time.Time, note string) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	var lines []string
	if line := spotlightLine(m); line != "" {
		lines = append(lines, line)
	}
	if note != "" {
		lines = append(lines, note)
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Life Counter · %d players · %d life", m.Config.PlayerCount, m.Config.StartingLife),
		Description: strings.Join(lines, "\n"),
		Color:       boardColor,
		Footer:      &discordgo.MessageEmbedFooter{Text: "Tap a seat to open your controls"},
	}

	if winner := m.PlayerAt(m.Spotlight.Index); winner != nil && m.Spotlight.Final {
		embed.Color = colorValue(firstColor(winner))
	}

	// top row first, the way the table faces
	layout := models.LayoutFor(len(m.Players))
	for _, seat := range append(append([]int{}, layout.Top...), layout.Bottom...) {
		p := m.PlayerAt(seat)
		if p == nil {
			continue
		}
		embed.Fields = append(embed.Fields, playerField(m, p, now))
	}

	var seats []discordgo.MessageComponent
	for _, p := range m.Players {
		style := discordgo.SecondaryButton
		if p.Lost() {
			style = discordgo.DangerButton
		}
		seats = append(seats, button(truncate(p.Name, 80), style, seatCustomID(actionOpenPlayer, m.ID, p.Seat, "")))
	}

	components := rows(seats)
	components = append(components, discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			button("🎲 Who starts?", discordgo.PrimaryButton, matchCustomID(actionSpotlight, m.ID, "")),
			button("Reset lives", discordgo.DangerButton, matchCustomID(actionResetLives, m.ID, "")),
		},
	})

	return embed, components
}

func spotlightLine(m *models.Match) string {
	p := m.PlayerAt(m.Spotlight.Index)
	if p == nil {
		return ""
	}
	if m.Spotlight.Final {
		return fmt.Sprintf("⭐ **%s** starts", p.Name)
	}
	if m.Spotlight.Running {
		return fmt.Sprintf("Choosing who starts… 👉 %s", p.Name)
	}
	return ""
}

func playerField(m *models.Match, p *models.Player, now time.Time) *discordgo.MessageEmbedField {
	name := p.Name
	switch {
	case p.Lost():
		name = "💀 " + name
	case m.Spotlight.Index == p.Seat && m.Spotlight.Final:
		name = "⭐ " + name
	case m.Spotlight.Index == p.Seat && m.Spotlight.Running:
		name = "👉 " + name
	}

	lines := []string{fmt.Sprintf("❤️ **%d**", p.Life)}
	if p.Poison > 0 {
		lines = append(lines, fmt.Sprintf("☠️ %d/%d", p.Poison, models.MaxPoison))
	}
	if cmd := commanderSummary(p); cmd != "" {
		lines = append(lines, cmd)
	}
	if p.Timer.Open {
		lines = append(lines, "⏱️ "+stopwatch.Display(&p.Timer, now))
	}

	return &discordgo.MessageEmbedField{
		Name:   truncate(name, 256),
		Value:  strings.Join(lines, "\n"),
		Inline: true,
	}
}

// commanderSummary lists the non-zero commander damage a player took
func commanderSummary(p *models.Player) string {
	names := make([]string, 0, len(p.CommanderDamage))
	for name, dmg := range p.CommanderDamage {
		if dmg > 0 {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return ""
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s %d", name, p.CommanderDamage[name]))
	}
	return "⚔️ " + strings.Join(parts, ", ")
}

// renderPlayerPanel renders the ephemeral controls of one seat
func renderPlayerPanel(m *models.Match, seat int, now time.Time) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	p := m.PlayerAt(seat)
	if p == nil {
		return &discordgo.MessageEmbed{
			Title: "Seat not found",
			Color: errorColor,
		}, nil
	}

	embed := &discordgo.MessageEmbed{
		Title: p.Name,
		Color: backgroundColor(p),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Life", Value: strconv.Itoa(p.Life), Inline: true},
			{Name: "Poison", Value: fmt.Sprintf("%d/%d", p.Poison, models.MaxPoison), Inline: true},
			{Name: "Rotation", Value: fmt.Sprintf("%d°", p.Rotation), Inline: true},
			{Name: "Colors", Value: strings.Join(p.Colors.Tags, " "), Inline: true},
		},
	}
	if cmd := commanderSummary(p); cmd != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Commander damage", Value: cmd})
	}
	if p.Timer.Open {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Timer", Value: stopwatch.Display(&p.Timer, now), Inline: true})
	}
	if p.Lost() {
		embed.Description = "💀 Out of the game"
	}

	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				button("-5", discordgo.DangerButton, seatCustomID(actionLife, m.ID, seat, "-5")),
				button("-1", discordgo.DangerButton, seatCustomID(actionLife, m.ID, seat, "-1")),
				button("+1", discordgo.SuccessButton, seatCustomID(actionLife, m.ID, seat, "1")),
				button("+5", discordgo.SuccessButton, seatCustomID(actionLife, m.ID, seat, "5")),
			},
		},
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				button("☠️ Poison", toggleStyle(p.ActivePanel == models.PanelPoison), seatCustomID(actionPanel, m.ID, seat, string(models.PanelPoison))),
				button("⚔️ Commander", toggleStyle(p.ActivePanel == models.PanelCommanderDamage), seatCustomID(actionPanel, m.ID, seat, string(models.PanelCommanderDamage))),
				button("🎨 Colors", toggleStyle(p.ActivePanel == models.PanelPalette), seatCustomID(actionPanel, m.ID, seat, string(models.PanelPalette))),
				button("↻ Rotate", discordgo.SecondaryButton, seatCustomID(actionRotate, m.ID, seat, "")),
				button("Reset", discordgo.SecondaryButton, seatCustomID(actionResetPlayer, m.ID, seat, "")),
			},
		},
	}

	switch p.ActivePanel {
	case models.PanelPoison:
		components = append(components, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				button("-1 ☠️", discordgo.SecondaryButton, seatCustomID(actionPoison, m.ID, seat, "-1")),
				button("+1 ☠️", discordgo.SecondaryButton, seatCustomID(actionPoison, m.ID, seat, "1")),
			},
		})
	case models.PanelCommanderDamage:
		opponents := counter.Opponents(p, m.PlayerNames())
		if len(opponents) > 0 {
			components = append(components,
				commanderSelect(m.ID, seat, opponents, "1", "Took commander damage from…"),
				commanderSelect(m.ID, seat, opponents, "-1", "Undo commander damage from…"),
			)
		}
	case models.PanelPalette:
		components = append(components, colorSelect(m.ID, seat, p.Colors))
	}

	components = append(components, discordgo.ActionsRow{Components: timerButtons(m.ID, p)})
	return embed, components
}

func commanderSelect(matchID string, seat int, opponents []string, delta, placeholder string) discordgo.MessageComponent {
	options := make([]discordgo.SelectMenuOption, 0, len(opponents))
	for _, name := range opponents {
		if len(options) == maxSelectOption {
			break
		}
		options = append(options, discordgo.SelectMenuOption{
			Label: truncate(name, 100),
			Value: name,
		})
	}

	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				MenuType:    discordgo.StringSelectMenu,
				CustomID:    seatCustomID(actionCommander, matchID, seat, delta),
				Placeholder: placeholder,
				Options:     options,
			},
		},
	}
}

func colorSelect(matchID string, seat int, tags models.ColorTags) discordgo.MessageComponent {
	selected := make(map[string]bool, len(tags.Tags))
	if !tags.Seeded {
		for _, tag := range tags.Tags {
			selected[tag] = true
		}
	}

	var options []discordgo.SelectMenuOption
	for _, color := range palette.All() {
		if len(options) == maxSelectOption {
			break
		}
		options = append(options, discordgo.SelectMenuOption{
			Label:   color,
			Value:   color,
			Default: selected[color],
		})
	}

	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				MenuType:    discordgo.StringSelectMenu,
				CustomID:    seatCustomID(actionColor, matchID, seat, ""),
				Placeholder: fmt.Sprintf("Toggle a color (up to %d)", models.MaxColorTags),
				Options:     options,
			},
		},
	}
}

func timerButtons(matchID string, p *models.Player) []discordgo.MessageComponent {
	buttons := []discordgo.MessageComponent{
		button("✏️ Rename", discordgo.SecondaryButton, seatCustomID(actionRename, matchID, p.Seat, "")),
	}

	if !p.Timer.Open {
		return append(buttons, button("⏱️ Timer", discordgo.SecondaryButton, seatCustomID(actionTimer, matchID, p.Seat, string(stopwatch.ActionOpen))))
	}

	if p.Timer.Running {
		buttons = append(buttons, button("Pause", discordgo.PrimaryButton, seatCustomID(actionTimer, matchID, p.Seat, string(stopwatch.ActionStop))))
	} else {
		buttons = append(buttons, button("Start", discordgo.SuccessButton, seatCustomID(actionTimer, matchID, p.Seat, string(stopwatch.ActionStart))))
	}
	return append(buttons,
		button("Reset timer", discordgo.SecondaryButton, seatCustomID(actionTimer, matchID, p.Seat, string(stopwatch.ActionReset))),
		button("Close timer", discordgo.SecondaryButton, seatCustomID(actionTimer, matchID, p.Seat, string(stopwatch.ActionClose))),
	)
}

// renderDraft shows the pending settings with an apply button
func renderDraft(m *models.Match) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	embed := &discordgo.MessageEmbed{
		Title: "Pending settings",
		Color: boardColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Players", Value: fmt.Sprintf("%d → %d", m.Config.PlayerCount, m.Draft.PlayerCount), Inline: true},
			{Name: "Starting life", Value: fmt.Sprintf("%d → %d", m.Config.StartingLife, m.Draft.StartingLife), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Nothing changes until you apply"},
	}

	return embed, []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				button("Apply", discordgo.SuccessButton, matchCustomID(actionApply, m.ID, "")),
			},
		},
	}
}

// renderSearch lists search hits with a select to open rulings
func renderSearch(result *cards.SearchResult, minQueryLength int) ([]*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	if len(result.Cards) == 0 {
		description := fmt.Sprintf("No cards found for %q.", result.Query)
		if !result.NotFound {
			description = fmt.Sprintf("Type at least %d characters to search.", minQueryLength)
		}
		return []*discordgo.MessageEmbed{{
			Title:       "Card search",
			Description: description,
			Color:       errorColor,
		}}, nil
	}

	var lines []string
	var options []discordgo.SelectMenuOption
	for _, card := range result.Cards {
		lines = append(lines, cardLine(card))
		if len(options) < maxSelectOption {
			options = append(options, discordgo.SelectMenuOption{
				Label:       truncate(card.Name, 100),
				Value:       card.ID,
				Description: truncate(card.SetName, 100),
			})
		}
	}

	embeds := []*discordgo.MessageEmbed{{
		Title:       fmt.Sprintf("Card search · %s", result.Query),
		Description: truncate(strings.Join(lines, "\n"), maxDescription),
		Color:       boardColor,
	}}
	if first := result.Cards[0]; first.ImageURL != "" {
		embeds[0].Image = &discordgo.MessageEmbedImage{URL: first.ImageURL}
	}

	return embeds, []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					MenuType:    discordgo.StringSelectMenu,
					CustomID:    matchCustomID(actionCard, "", ""),
					Placeholder: "Show rulings for…",
					Options:     options,
				},
			},
		},
	}
}

func cardLine(card models.Card) string {
	line := "**" + card.Name + "**"
	if card.ManaCost != "" {
		line += " " + card.ManaCost
	}
	if card.Type != "" {
		line += " · " + card.Type
	}
	if card.SetName != "" {
		line += " (" + card.SetName + ")"
	}
	return line
}

// renderRulings lists the rulings of a card
func renderRulings(result *cards.RulingsResult) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Rulings",
		Color: boardColor,
	}
	if len(result.Rulings) == 0 {
		embed.Description = "No rulings for this card."
		return embed
	}

	lines := make([]string, 0, len(result.Rulings))
	for _, r := range result.Rulings {
		lines = append(lines, fmt.Sprintf("**%s** %s", r.Date, r.Text))
	}
	embed.Description = truncate(strings.Join(lines, "\n\n"), maxDescription)
	return embed
}

// renderBanlist lists the banned cards of a format, linking resolved images
func renderBanlist(out *cards.ResolveOutput) *discordgo.MessageEmbed {
	lines := make([]string, 0, len(out.Entries))
	for _, entry := range out.Entries {
		if entry.ImageURL != "" {
			lines = append(lines, fmt.Sprintf("[%s](%s)", entry.Name, entry.ImageURL))
			continue
		}
		lines = append(lines, entry.Name)
	}

	description := strings.Join(lines, "\n")
	if description == "" {
		description = "Nothing is banned."
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Banned in %s (%d)", out.Format, len(out.Entries)),
		Description: truncate(description, maxDescription),
		Color:       errorColor,
	}
}

func firstColor(p *models.Player) string {
	if len(p.Colors.Tags) > 0 {
		return p.Colors.Tags[0]
	}
	return p.Colors.Seed
}

// backgroundColor is the middle band of a player's background
func backgroundColor(p *models.Player) int {
	bands, err := palette.BandsFor(p.Colors, palette.DefaultBands)
	if err != nil {
		return colorValue(firstColor(p))
	}
	return colorValue(bands[len(bands)/2])
}

// colorValue converts #rrggbb to an embed color, falling back to the board color
func colorValue(hex string) int {
	normalized, err := palette.Normalize(hex)
	if err != nil {
		return boardColor
	}
	v, err := strconv.ParseInt(strings.TrimPrefix(normalized, "#"), 16, 32)
	if err != nil {
		return boardColor
	}
	return int(v)
}
