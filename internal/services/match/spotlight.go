package match

import (
	"context"
	"errors"
	"time"

	"github.com/KirkDiggler/countermtg/internal/models"
	"github.com/KirkDiggler/countermtg/internal/spotlight"
	"go.uber.org/zap"
)

type spotlightRun struct {
	version uint64
	cancel  context.CancelFunc
}

// StartSpotlight begins cycling the highlight. The last trigger wins: a
// running sequence is cancelled and its remaining frames are never
// applied.
func (s *service) StartSpotlight(ctx context.Context, input *StartSpotlightInput) (*UpdateMatchOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var version uint64
	var players int
	match, err := s.mutate(ctx, input.MatchID, func(m *models.Match) error {
		m.Spotlight.Version++
		m.Spotlight.Running = true
		m.Spotlight.Index = -1
		m.Spotlight.Final = false
		version = m.Spotlight.Version
		players = len(m.Players)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrServiceClosed
	}

	if cur, ok := s.spotlights[match.ID]; ok {
		if cur.version > version {
			// a later trigger already took over
			return &UpdateMatchOutput{Match: match}, nil
		}
		cur.cancel()
	}

	runCtx, cancel := context.WithCancel(context.Background())
	s.spotlights[match.ID] = spotlightRun{version: version, cancel: cancel}

	seq := spotlight.New(players, s.diceRoller, s.spotlightConfig)
	go s.runSpotlight(runCtx, match.ID, version, seq)

	s.publish(models.MatchEventSpotlightTick, match, -1)
	return &UpdateMatchOutput{Match: match}, nil
}

func (s *service) runSpotlight(ctx context.Context, matchID string, version uint64, seq *spotlight.Sequence) {
	defer func() {
		s.mu.Lock()
		if cur, ok := s.spotlights[matchID]; ok && cur.version == version {
			cur.cancel()
			delete(s.spotlights, matchID)
		}
		s.mu.Unlock()
	}()

	ticker := time.NewTicker(seq.Tick())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		frame := seq.Next()
		match, err := s.mutate(ctx, matchID, func(m *models.Match) error {
			if m.Spotlight.Version != version || ctx.Err() != nil {
				return ErrSpotlightSuperseded
			}
			m.Spotlight.Index = frame.Index
			m.Spotlight.Final = frame.Final
			m.Spotlight.Running = !frame.Final
			return nil
		})
		if err != nil {
			if !errors.Is(err, ErrSpotlightSuperseded) && !errors.Is(err, ErrMatchNotFound) && ctx.Err() == nil {
				s.logger.Warn("spotlight stopped", zap.String("match_id", matchID), zap.Error(err))
			}
			return
		}

		if frame.Final {
			s.logger.Debug("spotlight picked",
				zap.String("match_id", matchID),
				zap.Int("seat", frame.Index),
				zap.Int("steps", frame.Step))
			s.publish(models.MatchEventSpotlightFinal, match, frame.Index)
			return
		}
		s.publish(models.MatchEventSpotlightTick, match, frame.Index)
	}
}

// cancelSpotlightLocked stops the running highlight of a match. Caller
// holds mu.
func (s *service) cancelSpotlightLocked(matchID string) {
	if cur, ok := s.spotlights[matchID]; ok {
		cur.cancel()
		delete(s.spotlights, matchID)
	}
}
