package discord

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/KirkDiggler/countermtg/internal/banlist"
	"github.com/KirkDiggler/countermtg/internal/clients/mtg"
	"github.com/KirkDiggler/countermtg/internal/models"
	"github.com/KirkDiggler/countermtg/internal/services/cards"
	"github.com/KirkDiggler/countermtg/internal/services/match"
	"github.com/KirkDiggler/countermtg/internal/services/messaging"
	"github.com/KirkDiggler/countermtg/internal/stopwatch"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// interactionTimeout bounds the work done for one interaction
const interactionTimeout = 30 * time.Second

// CardSearcher runs one-shot card lookups
type CardSearcher interface {
	Search(ctx context.Context, query string, lang mtg.Lang) *cards.SearchResult
	Rulings(ctx context.Context, cardID string) *cards.RulingsResult
}

// BanlistResolver lists formats and resolves banlist images
type BanlistResolver interface {
	Formats() []banlist.Format
	Resolve(ctx context.Context, input *cards.ResolveInput) (*cards.ResolveOutput, error)
}

// Bot represents the Discord bot instance
type Bot struct {
	session      *discordgo.Session
	commands     map[string]CommandHandler
	commandIDs   map[string]string // Maps command name to command ID
	matchService match.Service
	searcher     CardSearcher
	banlist      BanlistResolver
	messages     messaging.Service
	logger       *zap.Logger
	config       *Config

	mu       sync.Mutex
	watchers map[string]func()
	stopped  bool
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Services
	MatchService     match.Service
	Searcher         CardSearcher
	Banlist          BanlistResolver
	MessagingService messaging.Service

	Logger *zap.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.MatchService == nil {
		return nil, errors.New("match service cannot be nil")
	}

	if cfg.Searcher == nil {
		return nil, errors.New("card searcher cannot be nil")
	}

	if cfg.Banlist == nil {
		return nil, errors.New("banlist resolver cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:      session,
		commands:     make(map[string]CommandHandler),
		commandIDs:   make(map[string]string),
		matchService: cfg.MatchService,
		searcher:     cfg.Searcher,
		banlist:      cfg.Banlist,
		messages:     cfg.MessagingService,
		logger:       logger.Named("discord"),
		config:       cfg,
		watchers:     make(map[string]func()),
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if err := b.RegisterCommand(NewLifeCommand(b)); err != nil {
		return fmt.Errorf("failed to register life command: %w", err)
	}

	b.logger.Info("bot is running")
	return nil
}

// Stop removes the commands, stops refreshing boards and closes the connection
func (b *Bot) Stop() error {
	b.mu.Lock()
	b.stopped = true
	for matchID, cancel := range b.watchers {
		cancel()
		delete(b.watchers, matchID)
	}
	b.mu.Unlock()

	appID := b.appID()
	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Warn("failed to delete command",
				zap.String("command", cmdName),
				zap.String("command_id", cmdID),
				zap.Error(err))
		}
	}

	return b.session.Close()
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// RegisterCommand registers a command with Discord, for one guild when
// GuildID is set and globally otherwise
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Info("registered command",
		zap.String("command", cmd.GetName()),
		zap.String("command_id", createdCmd.ID),
		zap.String("guild_id", b.config.GuildID))

	return nil
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.logger.Error("error handling command", zap.String("command", name), zap.Error(err))
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			b.logger.Error("error handling component",
				zap.String("custom_id", i.MessageComponentData().CustomID),
				zap.Error(err))
		}
	case discordgo.InteractionModalSubmit:
		if err := b.handleModalSubmit(s, i); err != nil {
			b.logger.Error("error handling modal",
				zap.String("custom_id", i.ModalSubmitData().CustomID),
				zap.Error(err))
		}
	}
}

// handleComponentInteraction routes buttons and selects
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.MessageComponentData()
	id, err := parseCustomID(data.CustomID)
	if err != nil {
		return RespondWithError(s, i, "That button is no longer supported.")
	}

	ctx, cancel := context.WithTimeout(context.Background(), interactionTimeout)
	defer cancel()

	if id.Action == actionCard {
		if len(data.Values) == 0 {
			return RespondAck(s, i)
		}
		result := b.searcher.Rulings(ctx, data.Values[0])
		return RespondWithEmbeds(s, i, []*discordgo.MessageEmbed{renderRulings(result)}, nil, true)
	}

	b.ensureWatch(ctx, id.MatchID)

	switch id.Action {
	case actionOpenPlayer:
		out, err := b.matchService.GetMatch(ctx, &match.GetMatchInput{MatchID: id.MatchID})
		if err != nil {
			return b.respondError(ctx, s, i, err)
		}
		if out.Match.PlayerAt(id.Seat) == nil {
			return b.respondError(ctx, s, i, match.ErrPlayerNotFound)
		}
		embed, components := renderPlayerPanel(out.Match, id.Seat, time.Now())
		return RespondWithEmbeds(s, i, []*discordgo.MessageEmbed{embed}, components, true)

	case actionSpotlight:
		if _, err := b.matchService.StartSpotlight(ctx, &match.StartSpotlightInput{MatchID: id.MatchID}); err != nil {
			return b.respondError(ctx, s, i, err)
		}
		return RespondAck(s, i)

	case actionResetLives:
		if _, err := b.matchService.ResetLives(ctx, &match.ResetLivesInput{MatchID: id.MatchID}); err != nil {
			return b.respondError(ctx, s, i, err)
		}
		return RespondAck(s, i)

	case actionApply:
		out, err := b.matchService.ApplySettings(ctx, &match.ApplySettingsInput{MatchID: id.MatchID})
		if err != nil {
			return b.respondError(ctx, s, i, err)
		}
		return RespondWithUpdate(s, i, &discordgo.MessageEmbed{
			Description: fmt.Sprintf("Applied: %d players at %d life.", out.Match.Config.PlayerCount, out.Match.Config.StartingLife),
			Color:       successColor,
		}, nil)

	case actionRename:
		out, err := b.matchService.GetMatch(ctx, &match.GetMatchInput{MatchID: id.MatchID})
		if err != nil {
			return b.respondError(ctx, s, i, err)
		}
		p := out.Match.PlayerAt(id.Seat)
		if p == nil {
			return b.respondError(ctx, s, i, match.ErrPlayerNotFound)
		}
		return s.InteractionRespond(i.Interaction, renameModal(id.MatchID, id.Seat, p.Name))
	}

	out, err := b.applyPlayerAction(ctx, id, data.Values)
	if err != nil {
		return b.respondError(ctx, s, i, err)
	}
	return b.respondPlayerUpdate(ctx, s, i, out)
}

// applyPlayerAction runs the seat operation a component stands for
func (b *Bot) applyPlayerAction(ctx context.Context, id customID, values []string) (*match.UpdatePlayerOutput, error) {
	switch id.Action {
	case actionLife:
		delta, err := strconv.Atoi(id.Arg)
		if err != nil {
			return nil, match.ErrInvalidDelta
		}
		return b.matchService.AdjustLife(ctx, &match.AdjustLifeInput{MatchID: id.MatchID, Seat: id.Seat, Delta: delta})

	case actionPoison:
		delta, err := strconv.Atoi(id.Arg)
		if err != nil {
			return nil, match.ErrInvalidDelta
		}
		return b.matchService.AdjustPoison(ctx, &match.AdjustPoisonInput{MatchID: id.MatchID, Seat: id.Seat, Delta: delta})

	case actionPanel:
		return b.matchService.TogglePanel(ctx, &match.TogglePanelInput{MatchID: id.MatchID, Seat: id.Seat, Panel: models.Panel(id.Arg)})

	case actionCommander:
		delta, err := strconv.Atoi(id.Arg)
		if err != nil {
			return nil, match.ErrInvalidDelta
		}
		if len(values) == 0 {
			return nil, match.ErrUnknownOpponent
		}
		return b.matchService.ApplyCommanderDamage(ctx, &match.ApplyCommanderDamageInput{
			MatchID:  id.MatchID,
			Seat:     id.Seat,
			Opponent: values[0],
			Delta:    delta,
		})

	case actionRotate:
		return b.matchService.RotatePlayer(ctx, &match.RotatePlayerInput{MatchID: id.MatchID, Seat: id.Seat})

	case actionResetPlayer:
		return b.matchService.ResetPlayer(ctx, &match.ResetPlayerInput{MatchID: id.MatchID, Seat: id.Seat})

	case actionColor:
		if len(values) == 0 {
			return nil, match.ErrInvalidColor
		}
		return b.matchService.SelectColor(ctx, &match.SelectColorInput{MatchID: id.MatchID, Seat: id.Seat, Color: values[0]})

	case actionTimer:
		return b.matchService.ControlTimer(ctx, &match.ControlTimerInput{MatchID: id.MatchID, Seat: id.Seat, Action: stopwatch.Action(id.Arg)})
	}

	return nil, fmt.Errorf("unknown component action %q", id.Action)
}

// handleModalSubmit commits a rename
func (b *Bot) handleModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.ModalSubmitData()
	id, err := parseCustomID(data.CustomID)
	if err != nil || id.Action != actionRenameSubmit {
		return RespondWithError(s, i, "That form is no longer supported.")
	}

	ctx, cancel := context.WithTimeout(context.Background(), interactionTimeout)
	defer cancel()

	b.ensureWatch(ctx, id.MatchID)

	out, err := b.matchService.RenamePlayer(ctx, &match.RenamePlayerInput{
		MatchID: id.MatchID,
		Seat:    id.Seat,
		Name:    modalValue(data, renameInputID),
	})
	if err != nil {
		return b.respondError(ctx, s, i, err)
	}
	return b.respondPlayerUpdate(ctx, s, i, out)
}

// respondPlayerUpdate redraws the player panel and announces an elimination
func (b *Bot) respondPlayerUpdate(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, out *match.UpdatePlayerOutput) error {
	embed, components := renderPlayerPanel(out.Match, out.Player.Seat, time.Now())
	if err := RespondWithUpdate(s, i, embed, components); err != nil {
		return err
	}

	if out.Eliminated && out.Match.ChannelID != "" {
		reason := messaging.EliminationLife
		if out.Player.Poison >= models.MaxPoison {
			reason = messaging.EliminationPoison
		}
		msg, err := b.messages.GetEliminationMessage(ctx, &messaging.GetEliminationMessageInput{
			PlayerName: out.Player.Name,
			Reason:     reason,
		})
		if err != nil {
			b.logger.Warn("no elimination message", zap.Error(err))
			return nil
		}
		if _, err := s.ChannelMessageSend(out.Match.ChannelID, msg.Message); err != nil {
			b.logger.Warn("failed to announce elimination",
				zap.String("match_id", out.Match.ID),
				zap.Error(err))
		}
	}
	return nil
}

// respondError answers with a friendly ephemeral error
func (b *Bot) respondError(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, err error) error {
	if errorTypeFor(err) == messaging.ErrorTypeGeneric {
		b.logger.Error("interaction failed", zap.Error(err))
	}
	return RespondWithError(s, i, b.errorText(ctx, err))
}

// errorText maps err to the text shown to the user
func (b *Bot) errorText(ctx context.Context, err error) string {
	errType := errorTypeFor(err)

	var matchErr match.MatchError
	if errType == messaging.ErrorTypeGeneric && errors.As(err, &matchErr) {
		return string(matchErr)
	}

	out, msgErr := b.messages.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{ErrorType: errType})
	if msgErr != nil {
		return "Something went wrong."
	}
	return out.Message
}

func errorTypeFor(err error) messaging.ErrorType {
	switch {
	case errors.Is(err, match.ErrMatchNotFound):
		return messaging.ErrorTypeMatchNotFound
	case errors.Is(err, match.ErrPlayerNotFound):
		return messaging.ErrorTypePlayerNotFound
	case errors.Is(err, match.ErrInvalidConfig):
		return messaging.ErrorTypeInvalidConfig
	case errors.Is(err, match.ErrUnknownOpponent):
		return messaging.ErrorTypeUnknownOpponent
	case errors.Is(err, banlist.ErrUnknownFormat):
		return messaging.ErrorTypeUnknownFormat
	default:
		return messaging.ErrorTypeGeneric
	}
}

// ensureWatch starts refreshing the board of a match if nothing does yet.
// The match is looked up after subscribing: an unknown match is dropped,
// and one ended in between closes the subscription itself.
func (b *Bot) ensureWatch(ctx context.Context, matchID string) {
	if matchID == "" || b.watching(matchID) {
		return
	}

	events, cancel := b.matchService.Subscribe(&match.SubscribeInput{MatchID: matchID})
	if _, err := b.matchService.GetMatch(ctx, &match.GetMatchInput{MatchID: matchID}); err != nil {
		cancel()
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.watchers[matchID]; ok || b.stopped {
		cancel()
		return
	}
	b.watchers[matchID] = cancel
	go b.watch(matchID, events)
}

// watching reports whether the bot is stopped or already watches matchID
func (b *Bot) watching(matchID string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	_, ok := b.watchers[matchID]
	return ok || b.stopped
}

// watch edits the board message as match events arrive. Bursts are
// collapsed into one edit of the latest snapshot, and spotlight ticks
// are skipped to stay under Discord rate limits.
func (b *Bot) watch(matchID string, events <-chan *models.MatchEvent) {
	defer func() {
		b.mu.Lock()
		if cancel, ok := b.watchers[matchID]; ok {
			cancel()
			delete(b.watchers, matchID)
		}
		b.mu.Unlock()
	}()

	for evt := range events {
		latest := evt
	drain:
		for {
			select {
			case next, ok := <-events:
				if !ok {
					break drain
				}
				latest = next
			default:
				break drain
			}
		}

		if latest.Type == models.MatchEventSpotlightTick {
			continue
		}
		b.updateBoard(latest)

		if latest.Type == models.MatchEventEnded {
			return
		}
	}
}

// updateBoard edits the board message to match the event snapshot
func (b *Bot) updateBoard(evt *models.MatchEvent) {
	m := evt.Match
	if m == nil || m.MessageID == "" || m.ChannelID == "" {
		return
	}

	var (
		embed      *discordgo.MessageEmbed
		components []discordgo.MessageComponent
	)

	switch evt.Type {
	case models.MatchEventEnded:
		embed = &discordgo.MessageEmbed{
			Title:       "Match ended",
			Description: "Start a new one with `/life start`.",
			Color:       boardColor,
		}
		components = []discordgo.MessageComponent{}
	case models.MatchEventSpotlightFinal:
		embed, components = renderBoard(m, time.Now(), b.spotlightNote(m))
	default:
		embed, components = renderBoard(m, time.Now(), "")
	}

	embeds := []*discordgo.MessageEmbed{embed}
	_, err := b.session.ChannelMessageEditComplex(&discordgo.MessageEdit{
		ID:         m.MessageID,
		Channel:    m.ChannelID,
		Embeds:     &embeds,
		Components: &components,
	})
	if err != nil {
		b.logger.Warn("failed to update board",
			zap.String("match_id", m.ID),
			zap.String("event", string(evt.Type)),
			zap.Error(err))
	}
}

func (b *Bot) spotlightNote(m *models.Match) string {
	p := m.PlayerAt(m.Spotlight.Index)
	if p == nil {
		return ""
	}

	ctx, cancel := context.WithTimeout(context.Background(), interactionTimeout)
	defer cancel()

	out, err := b.messages.GetSpotlightMessage(ctx, &messaging.GetSpotlightMessageInput{PlayerName: p.Name})
	if err != nil {
		return ""
	}
	return out.Message
}
