package match

import (
	"sync"

	"github.com/KirkDiggler/countermtg/internal/models"
	"go.uber.org/zap"
)

// broker fans match events out to subscribers. Sends never block: a
// subscriber that falls behind misses events and catches up from the
// snapshot carried by the next one.
type broker struct {
	mu     sync.Mutex
	next   uint64
	subs   map[string]map[uint64]chan *models.MatchEvent
	buffer int
	logger *zap.Logger
}

func newBroker(buffer int, logger *zap.Logger) *broker {
	return &broker{
		subs:   make(map[string]map[uint64]chan *models.MatchEvent),
		buffer: buffer,
		logger: logger,
	}
}

func (b *broker) subscribe(matchID string) (<-chan *models.MatchEvent, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.next++
	id := b.next
	ch := make(chan *models.MatchEvent, b.buffer)

	subs, ok := b.subs[matchID]
	if !ok {
		subs = make(map[uint64]chan *models.MatchEvent)
		b.subs[matchID] = subs
	}
	subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			b.remove(matchID, id)
		})
	}
}

// remove closes one subscription. Caller holds mu.
func (b *broker) remove(matchID string, id uint64) {
	subs, ok := b.subs[matchID]
	if !ok {
		return
	}
	if ch, ok := subs[id]; ok {
		close(ch)
		delete(subs, id)
	}
	if len(subs) == 0 {
		delete(b.subs, matchID)
	}
}

func (b *broker) publish(evt *models.MatchEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for id, ch := range b.subs[evt.MatchID] {
		select {
		case ch <- evt:
		default:
			b.logger.Debug("dropping event for slow subscriber",
				zap.String("match_id", evt.MatchID),
				zap.Uint64("subscriber", id),
				zap.String("type", string(evt.Type)))
		}
	}
}

// closeMatch ends every subscription of a match
func (b *broker) closeMatch(matchID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for id := range b.subs[matchID] {
		b.remove(matchID, id)
	}
}

func (b *broker) closeAll() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for matchID, subs := range b.subs {
		for id := range subs {
			b.remove(matchID, id)
		}
	}
}
