package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/countermtg/internal/banlist"
	"github.com/KirkDiggler/countermtg/internal/clients/mtg"
	"github.com/KirkDiggler/countermtg/internal/models"
	"github.com/KirkDiggler/countermtg/internal/services/cards"
	"github.com/KirkDiggler/countermtg/internal/services/match"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// LifeCommand handles the /life command
type LifeCommand struct {
	BaseCommand
	bot *Bot
}

// NewLifeCommand creates the /life command handler for bot
func NewLifeCommand(bot *Bot) *LifeCommand {
	playerChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, models.MaxPlayers)
	for n := models.MinPlayers; n <= models.MaxPlayers; n++ {
		playerChoices = append(playerChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  fmt.Sprintf("%d", n),
			Value: n,
		})
	}

	lifeChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(models.StartingLifeOptions))
	for _, life := range models.StartingLifeOptions {
		lifeChoices = append(lifeChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  fmt.Sprintf("%d", life),
			Value: life,
		})
	}

	var formatChoices []*discordgo.ApplicationCommandOptionChoice
	for _, format := range bot.banlist.Formats() {
		formatChoices = append(formatChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  string(format),
			Value: string(format),
		})
	}

	langChoices := []*discordgo.ApplicationCommandOptionChoice{
		{Name: "English", Value: string(mtg.LangEnglish)},
		{Name: "Español", Value: string(mtg.LangSpanish)},
	}

	settingsOptions := func(required bool) []*discordgo.ApplicationCommandOption {
		return []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "players",
				Description: "Number of players",
				Choices:     playerChoices,
				Required:    required,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "life",
				Description: "Starting life",
				Choices:     lifeChoices,
				Required:    required,
			},
		}
	}

	return &LifeCommand{
		BaseCommand: BaseCommand{
			Name:        "life",
			Description: "Life counter for your table",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "start",
					Description: "Start a match in this channel",
					Options:     settingsOptions(false),
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "player",
					Description: "Open the controls of a seat",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "seat",
							Description: "Seat number",
							Choices:     playerChoices,
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "reset",
					Description: "Reset every player to starting life",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "settings",
					Description: "Change the pending settings",
					Options:     settingsOptions(false),
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "apply",
					Description: "Apply the pending settings",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "spotlight",
					Description: "Pick a random starting player",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "search",
					Description: "Search cards by name",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "query",
							Description: "Card name",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "lang",
							Description: "Search language",
							Choices:     langChoices,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "rulings",
					Description: "Show the rulings of a card",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "id",
							Description: "Card id",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "banlist",
					Description: "Show the banned cards of a format",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "format",
							Description: "Format",
							Choices:     formatChoices,
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "end",
					Description: "End the match in this channel",
				},
			},
		},
		bot: bot,
	}
}

// Handle processes a Discord interaction for the life command
func (c *LifeCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), interactionTimeout)
	defer cancel()

	sub := data.Options[0]
	opts := optionMap(sub.Options)
	channelID := i.ChannelID

	switch sub.Name {
	case "start":
		return c.handleStart(ctx, s, i, channelID, opts)
	case "player":
		return c.handlePlayer(ctx, s, i, channelID, opts)
	case "reset":
		return c.handleReset(ctx, s, i, channelID)
	case "settings":
		return c.handleSettings(ctx, s, i, channelID, opts)
	case "apply":
		return c.handleApply(ctx, s, i, channelID)
	case "spotlight":
		return c.handleSpotlight(ctx, s, i, channelID)
	case "search":
		return c.handleSearch(ctx, s, i, opts)
	case "rulings":
		return c.handleRulings(ctx, s, i, opts)
	case "banlist":
		return c.handleBanlist(ctx, s, i, channelID, opts)
	case "end":
		return c.handleEnd(ctx, s, i, channelID)
	default:
		return errors.New("unknown subcommand")
	}
}

func optionMap(opts []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, opt := range opts {
		m[opt.Name] = opt
	}
	return m
}

func intOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) (int, bool) {
	opt, ok := opts[name]
	if !ok {
		return 0, false
	}
	return int(opt.IntValue()), true
}

func stringOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	opt, ok := opts[name]
	if !ok {
		return ""
	}
	return strings.TrimSpace(opt.StringValue())
}

// channelMatch loads the match of the channel, answering the interaction on failure
func (c *LifeCommand) channelMatch(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, channelID string) (*models.Match, error) {
	out, err := c.bot.matchService.GetMatchByChannel(ctx, &match.GetMatchByChannelInput{
		ChannelID: channelID,
	})
	if err != nil {
		return nil, c.bot.respondError(ctx, s, i, err)
	}

	c.bot.ensureWatch(ctx, out.Match.ID)
	return out.Match, nil
}

func (c *LifeCommand) handleStart(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, channelID string, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	players, _ := intOption(opts, "players")
	life, _ := intOption(opts, "life")

	out, err := c.bot.matchService.StartMatch(ctx, &match.StartMatchInput{
		ChannelID:    channelID,
		PlayerCount:  players,
		StartingLife: life,
	})
	if err != nil {
		return c.bot.respondError(ctx, s, i, err)
	}

	note := ""
	if out.Replaced != "" {
		note = "The previous match in this channel was ended."
	}

	embed, components := renderBoard(out.Match, time.Now(), note)
	if err := RespondWithEmbeds(s, i, []*discordgo.MessageEmbed{embed}, components, false); err != nil {
		return fmt.Errorf("failed to send board: %w", err)
	}

	msg, err := s.InteractionResponse(i.Interaction)
	if err != nil {
		c.bot.logger.Warn("board message not found, it will not refresh",
			zap.String("match_id", out.Match.ID),
			zap.Error(err))
		return nil
	}

	if err := c.bot.matchService.SetMessageID(ctx, &match.SetMessageIDInput{
		MatchID:   out.Match.ID,
		MessageID: msg.ID,
	}); err != nil {
		c.bot.logger.Error("failed to record board message",
			zap.String("match_id", out.Match.ID),
			zap.Error(err))
		return nil
	}

	c.bot.ensureWatch(ctx, out.Match.ID)
	return nil
}

func (c *LifeCommand) handlePlayer(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, channelID string, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	m, err := c.channelMatch(ctx, s, i, channelID)
	if m == nil {
		return err
	}

	seat, _ := intOption(opts, "seat")
	if m.PlayerAt(seat-1) == nil {
		return c.bot.respondError(ctx, s, i, match.ErrPlayerNotFound)
	}

	embed, components := renderPlayerPanel(m, seat-1, time.Now())
	return RespondWithEmbeds(s, i, []*discordgo.MessageEmbed{embed}, components, true)
}

func (c *LifeCommand) handleReset(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, channelID string) error {
	m, err := c.channelMatch(ctx, s, i, channelID)
	if m == nil {
		return err
	}

	out, err := c.bot.matchService.ResetLives(ctx, &match.ResetLivesInput{MatchID: m.ID})
	if err != nil {
		return c.bot.respondError(ctx, s, i, err)
	}

	return RespondWithSuccess(s, i, fmt.Sprintf("Every player is back to %d life.", out.Match.Config.StartingLife))
}

func (c *LifeCommand) handleSettings(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, channelID string, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	m, err := c.channelMatch(ctx, s, i, channelID)
	if m == nil {
		return err
	}

	input := &match.UpdateDraftInput{MatchID: m.ID}
	if players, ok := intOption(opts, "players"); ok {
		input.PlayerCount = &players
	}
	if life, ok := intOption(opts, "life"); ok {
		input.StartingLife = &life
	}

	out, err := c.bot.matchService.UpdateDraft(ctx, input)
	if err != nil {
		return c.bot.respondError(ctx, s, i, err)
	}

	embed, components := renderDraft(out.Match)
	return RespondWithEmbeds(s, i, []*discordgo.MessageEmbed{embed}, components, true)
}

func (c *LifeCommand) handleApply(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, channelID string) error {
	m, err := c.channelMatch(ctx, s, i, channelID)
	if m == nil {
		return err
	}

	out, err := c.bot.matchService.ApplySettings(ctx, &match.ApplySettingsInput{MatchID: m.ID})
	if err != nil {
		return c.bot.respondError(ctx, s, i, err)
	}

	return RespondWithSuccess(s, i, fmt.Sprintf("Applied: %d players at %d life.", out.Match.Config.PlayerCount, out.Match.Config.StartingLife))
}

func (c *LifeCommand) handleSpotlight(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, channelID string) error {
	m, err := c.channelMatch(ctx, s, i, channelID)
	if m == nil {
		return err
	}

	if _, err := c.bot.matchService.StartSpotlight(ctx, &match.StartSpotlightInput{MatchID: m.ID}); err != nil {
		return c.bot.respondError(ctx, s, i, err)
	}

	return RespondWithSuccess(s, i, "Choosing who starts…")
}

func (c *LifeCommand) handleSearch(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	if err := RespondDeferred(s, i, true); err != nil {
		return err
	}

	result := c.bot.searcher.Search(ctx, stringOption(opts, "query"), mtg.ParseLang(stringOption(opts, "lang")))
	embeds, components := renderSearch(result, cards.DefaultMinQueryLength)
	return EditDeferred(s, i, embeds, components)
}

func (c *LifeCommand) handleRulings(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	if err := RespondDeferred(s, i, true); err != nil {
		return err
	}

	result := c.bot.searcher.Rulings(ctx, stringOption(opts, "id"))
	return EditDeferred(s, i, []*discordgo.MessageEmbed{renderRulings(result)}, nil)
}

func (c *LifeCommand) handleBanlist(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, channelID string, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	if err := RespondDeferred(s, i, true); err != nil {
		return err
	}

	out, err := c.bot.banlist.Resolve(ctx, &cards.ResolveInput{
		Format: banlist.Format(stringOption(opts, "format")),
		Lang:   mtg.LangEnglish,
		Scope:  "discord:" + channelID,
	})
	if err != nil {
		embed := &discordgo.MessageEmbed{
			Title:       "Error",
			Description: c.bot.errorText(ctx, err),
			Color:       errorColor,
		}
		return EditDeferred(s, i, []*discordgo.MessageEmbed{embed}, nil)
	}

	return EditDeferred(s, i, []*discordgo.MessageEmbed{renderBanlist(out)}, nil)
}

func (c *LifeCommand) handleEnd(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, channelID string) error {
	m, err := c.channelMatch(ctx, s, i, channelID)
	if m == nil {
		return err
	}

	if err := c.bot.matchService.EndMatch(ctx, &match.EndMatchInput{MatchID: m.ID}); err != nil {
		return c.bot.respondError(ctx, s, i, err)
	}

	return RespondWithSuccess(s, i, "Match ended.")
}
