package match

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/KirkDiggler/countermtg/internal/common/clock"
	"github.com/KirkDiggler/countermtg/internal/common/uuid"
	"github.com/KirkDiggler/countermtg/internal/counter"
	"github.com/KirkDiggler/countermtg/internal/dice"
	"github.com/KirkDiggler/countermtg/internal/hold"
	"github.com/KirkDiggler/countermtg/internal/models"
	matchRepo "github.com/KirkDiggler/countermtg/internal/repositories/match"
	"github.com/KirkDiggler/countermtg/internal/spotlight"
	"github.com/KirkDiggler/countermtg/internal/stopwatch"
	"go.uber.org/zap"
)

// service implements the Service interface
type service struct {
	matchRepo     matchRepo.Repository
	diceRoller    dice.Roller
	clock         clock.Clock
	uuidGenerator uuid.UUID
	logger        *zap.Logger
	events        *broker

	holdConfig      *hold.Config
	spotlightConfig *spotlight.Config
	autoSpotlight   bool

	// mu guards everything below
	mu         sync.Mutex
	locks      map[string]*sync.Mutex
	holds      map[holdKey]*holdRunner
	holdGen    uint64
	spotlights map[string]spotlightRun
	closed     bool
}

// NewService creates a new match service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.MatchRepo == nil {
		return nil, ErrNilMatchRepo
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("match")

	buffer := cfg.EventBuffer
	if buffer <= 0 {
		buffer = DefaultEventBuffer
	}

	return &service{
		matchRepo:       cfg.MatchRepo,
		diceRoller:      cfg.DiceRoller,
		clock:           cfg.Clock,
		uuidGenerator:   cfg.UUIDGenerator,
		logger:          logger,
		events:          newBroker(buffer, logger),
		holdConfig:      cfg.Hold,
		spotlightConfig: cfg.Spotlight,
		autoSpotlight:   cfg.AutoSpotlight,
		locks:           make(map[string]*sync.Mutex),
		holds:           make(map[holdKey]*holdRunner),
		spotlights:      make(map[string]spotlightRun),
	}, nil
}

// StartMatch seats a new match. A match already hosted in the channel is
// ended and replaced.
func (s *service) StartMatch(ctx context.Context, input *StartMatchInput) (*StartMatchOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	cfg := models.MatchConfig{
		PlayerCount:  input.PlayerCount,
		StartingLife: input.StartingLife,
	}
	if cfg.PlayerCount == 0 {
		cfg.PlayerCount = DefaultPlayerCount
	}
	if cfg.StartingLife == 0 {
		cfg.StartingLife = DefaultStartingLife
	}
	if !cfg.IsValid() {
		return nil, ErrInvalidConfig
	}

	output := &StartMatchOutput{}
	if input.ChannelID != "" {
		existing, err := s.matchRepo.GetMatchByChannel(ctx, &matchRepo.GetMatchByChannelInput{
			ChannelID: input.ChannelID,
		})
		switch {
		case err == nil:
			if err := s.EndMatch(ctx, &EndMatchInput{MatchID: existing.ID}); err != nil && !errors.Is(err, ErrMatchNotFound) {
				return nil, err
			}
			output.Replaced = existing.ID
		case !errors.Is(err, matchRepo.ErrMatchNotFound):
			return nil, err
		}
	}

	now := s.clock.Now()
	match := &models.Match{
		ID:        s.uuidGenerator.NewUUID(),
		ChannelID: input.ChannelID,
		Config:    cfg,
		Draft:     cfg,
		Spotlight: models.Spotlight{Index: -1},
		CreatedAt: now,
		UpdatedAt: now,
	}
	match.Players = s.seatPlayers(cfg, match.ResetVersion)

	if err := s.matchRepo.SaveMatch(ctx, &matchRepo.SaveMatchInput{Match: match}); err != nil {
		return nil, err
	}

	s.logger.Info("match started",
		zap.String("match_id", match.ID),
		zap.String("channel_id", match.ChannelID),
		zap.Int("players", cfg.PlayerCount),
		zap.Int("starting_life", cfg.StartingLife))
	s.publish(models.MatchEventStarted, match, -1)

	if s.autoSpotlight && cfg.PlayerCount > 1 {
		spot, err := s.StartSpotlight(ctx, &StartSpotlightInput{MatchID: match.ID})
		if err != nil {
			s.logger.Warn("failed to start spotlight", zap.String("match_id", match.ID), zap.Error(err))
		} else {
			match = spot.Match
		}
	}

	output.Match = match
	return output, nil
}

// seatPlayers creates one fresh player per seat
func (s *service) seatPlayers(cfg models.MatchConfig, resetVersion uint64) []*models.Player {
	names := make([]string, cfg.PlayerCount)
	for seat := range names {
		names[seat] = counter.DefaultName(seat)
	}

	players := make([]*models.Player, 0, cfg.PlayerCount)
	for seat := range names {
		players = append(players, counter.NewPlayer(&counter.NewPlayerInput{
			ID:           s.uuidGenerator.NewUUID(),
			Seat:         seat,
			StartingLife: cfg.StartingLife,
			Opponents:    names,
			ResetVersion: resetVersion,
		}))
	}
	return players
}

// GetMatch retrieves a match by ID
func (s *service) GetMatch(ctx context.Context, input *GetMatchInput) (*GetMatchOutput, error) {
	if input == nil || input.MatchID == "" {
		return nil, ErrMatchNotFound
	}

	match, err := s.load(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}
	return &GetMatchOutput{Match: match}, nil
}

// GetMatchByChannel retrieves the match hosted in a channel
func (s *service) GetMatchByChannel(ctx context.Context, input *GetMatchByChannelInput) (*GetMatchOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrMatchNotFound
	}

	match, err := s.matchRepo.GetMatchByChannel(ctx, &matchRepo.GetMatchByChannelInput{
		ChannelID: input.ChannelID,
	})
	if err != nil {
		if errors.Is(err, matchRepo.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	observeReset(match)
	return &GetMatchOutput{Match: match}, nil
}

// SetMessageID records the board message of a match
func (s *service) SetMessageID(ctx context.Context, input *SetMessageIDInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	_, err := s.mutate(ctx, input.MatchID, func(m *models.Match) error {
		m.MessageID = input.MessageID
		return nil
	})
	return err
}

// EndMatch discards a match, stopping its timers and closing its
// subscriptions
func (s *service) EndMatch(ctx context.Context, input *EndMatchInput) error {
	if input == nil || input.MatchID == "" {
		return ErrMatchNotFound
	}

	unlock := s.lock(input.MatchID)
	defer unlock()

	match, err := s.load(ctx, input.MatchID)
	if err != nil {
		return err
	}

	if err := s.matchRepo.DeleteMatch(ctx, &matchRepo.DeleteMatchInput{MatchID: match.ID}); err != nil {
		if errors.Is(err, matchRepo.ErrMatchNotFound) {
			return ErrMatchNotFound
		}
		return err
	}

	s.mu.Lock()
	s.cancelHoldsLocked(match.ID)
	s.cancelSpotlightLocked(match.ID)
	delete(s.locks, match.ID)
	s.mu.Unlock()

	s.logger.Info("match ended", zap.String("match_id", match.ID))
	s.publish(models.MatchEventEnded, match, -1)
	s.events.closeMatch(match.ID)
	return nil
}

// UpdateDraft edits the pending settings. The applied configuration and
// the players are untouched until ApplySettings.
func (s *service) UpdateDraft(ctx context.Context, input *UpdateDraftInput) (*UpdateMatchOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if input.PlayerCount != nil && (*input.PlayerCount < models.MinPlayers || *input.PlayerCount > models.MaxPlayers) {
		return nil, ErrInvalidConfig
	}
	if input.StartingLife != nil && !models.IsValidStartingLife(*input.StartingLife) {
		return nil, ErrInvalidConfig
	}

	match, err := s.mutate(ctx, input.MatchID, func(m *models.Match) error {
		if input.PlayerCount != nil {
			m.Draft.PlayerCount = *input.PlayerCount
		}
		if input.StartingLife != nil {
			m.Draft.StartingLife = *input.StartingLife
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(models.MatchEventDraftUpdated, match, -1)
	return &UpdateMatchOutput{Match: match}, nil
}

// ApplySettings commits the draft. A new player count seats fresh
// players; otherwise every player is reset to the new starting life
// through the reset signal.
func (s *service) ApplySettings(ctx context.Context, input *ApplySettingsInput) (*UpdateMatchOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	match, err := s.mutate(ctx, input.MatchID, func(m *models.Match) error {
		if !m.Draft.IsValid() {
			return ErrInvalidConfig
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		s.cancelHoldsLocked(m.ID)

		m.ResetVersion++
		if m.Draft.PlayerCount != len(m.Players) {
			m.Players = s.seatPlayers(m.Draft, m.ResetVersion)
			// seats changed, a running highlight no longer applies
			s.cancelSpotlightLocked(m.ID)
			m.Spotlight = models.Spotlight{Version: m.Spotlight.Version + 1, Index: -1}
		}
		m.Config = m.Draft
		observeReset(m)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("settings applied",
		zap.String("match_id", match.ID),
		zap.Int("players", match.Config.PlayerCount),
		zap.Int("starting_life", match.Config.StartingLife))
	s.publish(models.MatchEventSettingsApplied, match, -1)
	return &UpdateMatchOutput{Match: match}, nil
}

// ResetLives sends the reset signal: every player returns to the
// configured starting life with no poison
func (s *service) ResetLives(ctx context.Context, input *ResetLivesInput) (*UpdateMatchOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	match, err := s.mutate(ctx, input.MatchID, func(m *models.Match) error {
		m.ResetVersion++
		observeReset(m)

		s.mu.Lock()
		s.cancelHoldsLocked(m.ID)
		s.mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(models.MatchEventLivesReset, match, -1)
	return &UpdateMatchOutput{Match: match}, nil
}

// AdjustLife applies a single life tap
func (s *service) AdjustLife(ctx context.Context, input *AdjustLifeInput) (*UpdatePlayerOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if !isLifeDelta(input.Delta) {
		return nil, ErrInvalidDelta
	}

	return s.applyLife(ctx, input.MatchID, input.Seat, input.Delta)
}

func (s *service) applyLife(ctx context.Context, matchID string, seat, delta int) (*UpdatePlayerOutput, error) {
	return s.mutatePlayer(ctx, matchID, seat, func(_ *models.Match, p *models.Player) error {
		counter.AdjustLife(p, delta)
		return nil
	})
}

// AdjustPoison changes the poison counter by one
func (s *service) AdjustPoison(ctx context.Context, input *AdjustPoisonInput) (*UpdatePlayerOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if input.Delta != 1 && input.Delta != -1 {
		return nil, ErrInvalidDelta
	}

	return s.mutatePlayer(ctx, input.MatchID, input.Seat, func(_ *models.Match, p *models.Player) error {
		counter.AdjustPoison(p, input.Delta)
		return nil
	})
}

// TogglePanel opens or closes a player panel
func (s *service) TogglePanel(ctx context.Context, input *TogglePanelInput) (*UpdatePlayerOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if !input.Panel.IsValid() {
		return nil, ErrInvalidPanel
	}

	return s.mutatePlayer(ctx, input.MatchID, input.Seat, func(_ *models.Match, p *models.Player) error {
		counter.TogglePanel(p, input.Panel)
		return nil
	})
}

// ApplyCommanderDamage records commander damage and mirrors it into life
func (s *service) ApplyCommanderDamage(ctx context.Context, input *ApplyCommanderDamageInput) (*UpdatePlayerOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if input.Delta != 1 && input.Delta != -1 {
		return nil, ErrInvalidDelta
	}
	opponent := strings.TrimSpace(input.Opponent)

	return s.mutatePlayer(ctx, input.MatchID, input.Seat, func(m *models.Match, p *models.Player) error {
		counter.SyncOpponents(p, m.PlayerNames())
		if _, ok := p.CommanderDamage[opponent]; !ok || opponent == p.Name {
			return ErrUnknownOpponent
		}
		counter.ApplyCommanderDamage(p, opponent, input.Delta)
		return nil
	})
}

// RotatePlayer turns a player display by one step
func (s *service) RotatePlayer(ctx context.Context, input *RotatePlayerInput) (*UpdatePlayerOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return s.mutatePlayer(ctx, input.MatchID, input.Seat, func(_ *models.Match, p *models.Player) error {
		counter.Rotate(p)
		return nil
	})
}

// ResetPlayer restores one player's starting life and clears poison
func (s *service) ResetPlayer(ctx context.Context, input *ResetPlayerInput) (*UpdatePlayerOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return s.mutatePlayer(ctx, input.MatchID, input.Seat, func(_ *models.Match, p *models.Player) error {
		s.mu.Lock()
		s.cancelHoldLocked(holdKey{matchID: input.MatchID, seat: input.Seat})
		s.mu.Unlock()

		counter.Reset(p)
		return nil
	})
}

// SelectColor toggles a color tag
func (s *service) SelectColor(ctx context.Context, input *SelectColorInput) (*UpdatePlayerOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return s.mutatePlayer(ctx, input.MatchID, input.Seat, func(_ *models.Match, p *models.Player) error {
		if err := counter.SelectColor(p, input.Color); err != nil {
			return ErrInvalidColor
		}
		return nil
	})
}

// RenamePlayer commits a display name and back-fills it into every
// opponent's commander damage. Commander damage is keyed by name, so a
// name held by another seat is rejected.
func (s *service) RenamePlayer(ctx context.Context, input *RenamePlayerInput) (*UpdatePlayerOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return s.mutatePlayer(ctx, input.MatchID, input.Seat, func(m *models.Match, p *models.Player) error {
		next := counter.NormalizeName(input.Name)
		for _, other := range m.Players {
			if other != p && strings.EqualFold(other.Name, next) {
				return ErrNameTaken
			}
		}

		if !counter.Rename(p, input.Name, s.clock.Now()) {
			return nil
		}
		names := m.PlayerNames()
		for _, other := range m.Players {
			counter.SyncOpponents(other, names)
		}
		return nil
	})
}

// ControlTimer drives a player stopwatch
func (s *service) ControlTimer(ctx context.Context, input *ControlTimerInput) (*UpdatePlayerOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if !input.Action.IsValid() {
		return nil, ErrInvalidTimerAction
	}

	return s.mutatePlayer(ctx, input.MatchID, input.Seat, func(_ *models.Match, p *models.Player) error {
		return stopwatch.Apply(&p.Timer, input.Action, s.clock.Now())
	})
}

// Subscribe streams the events of a match
func (s *service) Subscribe(input *SubscribeInput) (<-chan *models.MatchEvent, func()) {
	return s.events.subscribe(input.MatchID)
}

// Close stops every timer and ends every subscription
func (s *service) Close() {
	s.mu.Lock()
	s.closed = true
	for key := range s.holds {
		s.cancelHoldsLocked(key.matchID)
	}
	for matchID := range s.spotlights {
		s.cancelSpotlightLocked(matchID)
	}
	s.mu.Unlock()

	s.events.closeAll()
}

// lock serializes mutations of one match
func (s *service) lock(matchID string) func() {
	s.mu.Lock()
	l, ok := s.locks[matchID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[matchID] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

func (s *service) load(ctx context.Context, matchID string) (*models.Match, error) {
	match, err := s.matchRepo.GetMatch(ctx, &matchRepo.GetMatchInput{MatchID: matchID})
	if err != nil {
		if errors.Is(err, matchRepo.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	observeReset(match)
	return match, nil
}

// mutate loads, changes and saves a match under its lock
func (s *service) mutate(ctx context.Context, matchID string, fn func(m *models.Match) error) (*models.Match, error) {
	if matchID == "" {
		return nil, ErrMatchNotFound
	}

	unlock := s.lock(matchID)
	defer unlock()

	match, err := s.load(ctx, matchID)
	if err != nil {
		return nil, err
	}

	if err := fn(match); err != nil {
		return nil, err
	}
	match.UpdatedAt = s.clock.Now()

	if err := s.matchRepo.SaveMatch(ctx, &matchRepo.SaveMatchInput{Match: match}); err != nil {
		return nil, err
	}
	return match, nil
}

// mutatePlayer changes the player in seat and publishes the update
func (s *service) mutatePlayer(ctx context.Context, matchID string, seat int, fn func(m *models.Match, p *models.Player) error) (*UpdatePlayerOutput, error) {
	output := &UpdatePlayerOutput{}

	match, err := s.mutate(ctx, matchID, func(m *models.Match) error {
		p := m.PlayerAt(seat)
		if p == nil {
			return ErrPlayerNotFound
		}

		lost := p.Lost()
		if err := fn(m, p); err != nil {
			return err
		}
		output.Player = p
		output.Eliminated = !lost && p.Lost()
		return nil
	})
	if err != nil {
		return nil, err
	}
	output.Match = match

	if output.Eliminated {
		s.logger.Info("player eliminated",
			zap.String("match_id", match.ID),
			zap.Int("seat", seat),
			zap.String("name", output.Player.Name))
	}
	s.publish(models.MatchEventPlayerUpdated, match, seat)
	return output, nil
}

func (s *service) publish(eventType models.MatchEventType, match *models.Match, seat int) {
	s.events.publish(&models.MatchEvent{
		Type:    eventType,
		MatchID: match.ID,
		Seat:    seat,
		Match:   match,
	})
}

// observeReset lets every player catch up with the match reset signal
func observeReset(m *models.Match) {
	for _, p := range m.Players {
		counter.ObserveReset(p, m.ResetVersion, m.Config.StartingLife)
	}
}

func isLifeDelta(delta int) bool {
	switch delta {
	case -5, -1, 1, 5:
		return true
	}
	return false
}
