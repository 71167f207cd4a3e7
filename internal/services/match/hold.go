package match

import (
	"context"
	"errors"
	"time"

	"github.com/KirkDiggler/countermtg/internal/counter"
	"github.com/KirkDiggler/countermtg/internal/hold"
	"github.com/KirkDiggler/countermtg/internal/models"
	"go.uber.org/zap"
)

type holdKey struct {
	matchID string
	seat    int
}

// holdRunner drives the repeat ticks of one pressed life button
type holdRunner struct {
	tracker *hold.Tracker
	timer   *time.Timer
	gen     uint64

	// cancelled is set when a reset or settings change drops the press
	cancelled bool
}

// errHoldCancelled stops a tick that lost the race with a reset
var errHoldCancelled = errors.New("hold cancelled")

// PressDelta starts a press. The delta is applied on release for a tap,
// or repeatedly while held past the threshold. A new press on the same
// seat ends the previous one.
func (s *service) PressDelta(ctx context.Context, input *PressDeltaInput) (*UpdatePlayerOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if !isLifeDelta(input.Delta) {
		return nil, ErrInvalidDelta
	}

	match, err := s.load(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}
	player := match.PlayerAt(input.Seat)
	if player == nil {
		return nil, ErrPlayerNotFound
	}

	key := holdKey{matchID: input.MatchID, seat: input.Seat}
	now := s.clock.Now()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrServiceClosed
	}

	carry := 0
	if prev, ok := s.holds[key]; ok {
		prev.timer.Stop()
		delta := prev.tracker.Delta()
		carry = prev.tracker.Release(now) * delta
	}

	tracker := hold.New(s.holdConfig)
	tracker.Press(now, input.Delta)
	s.holdGen++
	gen := s.holdGen
	s.holds[key] = &holdRunner{
		tracker: tracker,
		gen:     gen,
		timer: time.AfterFunc(tracker.Threshold(), func() {
			s.holdTick(key, gen)
		}),
	}
	s.mu.Unlock()

	if carry != 0 {
		return s.applyLife(ctx, input.MatchID, input.Seat, carry)
	}
	return &UpdatePlayerOutput{Match: match, Player: player}, nil
}

// ReleaseDelta ends a press. Releasing a seat that is not pressed is a
// no-op.
func (s *service) ReleaseDelta(ctx context.Context, input *ReleaseDeltaInput) (*ReleaseDeltaOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	key := holdKey{matchID: input.MatchID, seat: input.Seat}
	now := s.clock.Now()

	applied, delta := 0, 0
	s.mu.Lock()
	if r, ok := s.holds[key]; ok {
		r.timer.Stop()
		delta = r.tracker.Delta()
		applied = r.tracker.Release(now)
		delete(s.holds, key)
	}
	s.mu.Unlock()

	if applied == 0 {
		match, err := s.load(ctx, input.MatchID)
		if err != nil {
			return nil, err
		}
		player := match.PlayerAt(input.Seat)
		if player == nil {
			return nil, ErrPlayerNotFound
		}
		return &ReleaseDeltaOutput{UpdatePlayerOutput: UpdatePlayerOutput{Match: match, Player: player}}, nil
	}

	out, err := s.applyLife(ctx, input.MatchID, input.Seat, applied*delta)
	if err != nil {
		return nil, err
	}
	return &ReleaseDeltaOutput{UpdatePlayerOutput: *out, Applied: applied}, nil
}

// holdTick applies the repeats a press has earned and schedules the next
// tick. Counts come from the tracker, so a tick racing a release never
// double counts.
func (s *service) holdTick(key holdKey, gen uint64) {
	s.mu.Lock()
	r, ok := s.holds[key]
	if !ok || r.gen != gen || s.closed {
		s.mu.Unlock()
		return
	}
	n := r.tracker.Advance(s.clock.Now())
	delta := r.tracker.Delta()
	r.timer = time.AfterFunc(r.tracker.Interval(), func() {
		s.holdTick(key, gen)
	})
	s.mu.Unlock()

	if n == 0 {
		return
	}

	// re-checked under the match lock, a reset that won the lock first
	// has cancelled this press
	_, err := s.mutatePlayer(context.Background(), key.matchID, key.seat, func(_ *models.Match, p *models.Player) error {
		s.mu.Lock()
		cancelled := r.cancelled
		s.mu.Unlock()
		if cancelled {
			return errHoldCancelled
		}
		counter.AdjustLife(p, n*delta)
		return nil
	})
	if errors.Is(err, errHoldCancelled) {
		return
	}
	if err != nil {
		s.logger.Warn("failed to apply held delta",
			zap.String("match_id", key.matchID),
			zap.Int("seat", key.seat),
			zap.Error(err))

		s.mu.Lock()
		if r, ok := s.holds[key]; ok && r.gen == gen {
			r.timer.Stop()
			delete(s.holds, key)
		}
		s.mu.Unlock()
	}
}

// cancelHoldsLocked drops every press of a match. Caller holds mu.
func (s *service) cancelHoldsLocked(matchID string) {
	for key := range s.holds {
		if key.matchID == matchID {
			s.cancelHoldLocked(key)
		}
	}
}

// cancelHoldLocked drops the press of one seat. Caller holds mu.
func (s *service) cancelHoldLocked(key holdKey) {
	r, ok := s.holds[key]
	if !ok {
		return
	}
	r.timer.Stop()
	r.tracker.Cancel()
	r.cancelled = true
	delete(s.holds, key)
}
