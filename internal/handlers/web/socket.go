package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/KirkDiggler/countermtg/internal/banlist"
	"github.com/KirkDiggler/countermtg/internal/clients/mtg"
	"github.com/KirkDiggler/countermtg/internal/models"
	"github.com/KirkDiggler/countermtg/internal/services/cards"
	"github.com/KirkDiggler/countermtg/internal/services/match"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	sendBuffer    = 64
	writeTimeout  = 10 * time.Second
	forgetTimeout = 5 * time.Second
)

// Socket message types
const (
	// client -> server
	msgSearch     = "search"
	msgSelectCard = "select_card"
	msgTab        = "tab"

	// server -> client
	msgMatch        = "match"
	msgSearchResult = "search_result"
	msgRulings      = "rulings"
	msgBanlistEntry = "banlist_entry"
	msgBanlist      = "banlist"
	msgError        = "error"
)

// Tabs of the card panel
const (
	tabSearch  = "search"
	tabBanlist = "banlist"
)

// envelope wraps every socket message
type envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

type searchMessage struct {
	Query string `json:"query"`
	Lang  string `json:"lang"`
}

type selectCardMessage struct {
	CardID string `json:"cardId"`
}

type tabMessage struct {
	Tab    string `json:"tab"`
	Format string `json:"format"`
	Lang   string `json:"lang"`
}

// eventMessage is a match event pushed to the client
type eventMessage struct {
	Seat  int        `json:"seat"`
	Match *matchView `json:"match,omitempty"`
}

// client is one websocket viewer of a match
type client struct {
	conn    *websocket.Conn
	key     string
	matchID string
	server  *Server
	logger  *zap.Logger

	// ctx ends when the connection closes
	ctx    context.Context
	cancel context.CancelFunc

	mu        sync.Mutex
	send      chan []byte
	closed    bool
	tabCancel context.CancelFunc
}

// serveSocket upgrades a viewer of a match to a websocket
func (s *Server) serveSocket(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["id"]
	out, err := s.matchService.GetMatch(r.Context(), &match.GetMatchInput{MatchID: matchID})
	if err != nil {
		s.fail(w, r, err)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrade failed", zap.Error(err))
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := &client{
		conn:    conn,
		key:     "ws:" + s.uuid.NewUUID(),
		matchID: matchID,
		server:  s,
		ctx:     ctx,
		cancel:  cancel,
		send:    make(chan []byte, sendBuffer),
	}
	c.logger = s.logger.With(zap.String("match_id", matchID), zap.String("session", c.key))

	events, unsubscribe := s.matchService.Subscribe(&match.SubscribeInput{MatchID: matchID})

	go c.writer()
	c.sendJSON(msgMatch, newMatchView(out.Match))
	go c.forward(events)

	c.reader()

	unsubscribe()
	c.close()
}

// forward pushes match events until the subscription ends
func (c *client) forward(events <-chan *models.MatchEvent) {
	for evt := range events {
		var view *matchView
		if evt.Match != nil {
			view = newMatchView(evt.Match)
		}
		c.sendJSON(string(evt.Type), eventMessage{Seat: evt.Seat, Match: view})
	}
}

func (c *client) reader() {
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.logger.Debug("socket read failed", zap.Error(err))
			}
			return
		}

		var env envelope
		if err := json.Unmarshal(data, &env); err != nil {
			c.sendError("malformed message")
			continue
		}

		switch env.Type {
		case msgSearch:
			var msg searchMessage
			if err := json.Unmarshal(env.Data, &msg); err != nil {
				c.sendError("malformed search")
				continue
			}
			c.server.searcher.Submit(c.key, msg.Query, mtg.ParseLang(msg.Lang), func(r *cards.SearchResult) {
				c.sendJSON(msgSearchResult, r)
			})

		case msgSelectCard:
			var msg selectCardMessage
			if err := json.Unmarshal(env.Data, &msg); err != nil || msg.CardID == "" {
				c.sendError("malformed card selection")
				continue
			}
			c.server.searcher.SelectCard(c.key, msg.CardID, func(r *cards.RulingsResult) {
				c.sendJSON(msgRulings, r)
			})

		case msgTab:
			var msg tabMessage
			if err := json.Unmarshal(env.Data, &msg); err != nil || (msg.Tab != tabSearch && msg.Tab != tabBanlist) {
				c.sendError("malformed tab")
				continue
			}
			c.switchTab(msg)

		default:
			c.sendError("unknown message type: " + env.Type)
		}
	}
}

// switchTab drops the work of the previous tab and starts the new one.
// Banlist entries stream as their images resolve.
func (c *client) switchTab(msg tabMessage) {
	// deliver callbacks take c.mu under the searcher lock, so leave first
	if msg.Tab != tabSearch {
		c.server.searcher.Leave(c.key)
	}

	c.mu.Lock()
	if c.tabCancel != nil {
		c.tabCancel()
		c.tabCancel = nil
	}
	if msg.Tab != tabBanlist {
		c.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(c.ctx)
	c.tabCancel = cancel
	c.mu.Unlock()

	go func() {
		out, err := c.server.banlist.Resolve(ctx, &cards.ResolveInput{
			Format: banlist.Format(msg.Format),
			Lang:   mtg.ParseLang(msg.Lang),
			Scope:  c.key,
			OnEntry: func(entry models.BanlistEntry) {
				c.sendJSON(msgBanlistEntry, entry)
			},
		})
		switch {
		case err == nil:
			c.sendJSON(msgBanlist, out)
		case errors.Is(err, context.Canceled):
		default:
			c.sendError(err.Error())
		}
	}()
}

func (c *client) writer() {
	defer c.conn.Close()
	for msg := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			c.logger.Debug("socket write failed", zap.Error(err))
			return
		}
	}
}

// sendJSON queues a message, dropping it if the client is not keeping up
func (c *client) sendJSON(typ string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		c.logger.Error("failed to encode message", zap.String("type", typ), zap.Error(err))
		return
	}
	out, _ := json.Marshal(envelope{Type: typ, Data: b})

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.send <- out:
	default:
		c.logger.Debug("dropping message for slow client", zap.String("type", typ))
	}
}

func (c *client) sendError(message string) {
	c.sendJSON(msgError, errorResponse{Error: message})
}

// close stops every flow of the session and releases its caches
func (c *client) close() {
	c.server.searcher.Leave(c.key)

	c.mu.Lock()
	c.closed = true
	if c.tabCancel != nil {
		c.tabCancel()
		c.tabCancel = nil
	}
	c.cancel()
	close(c.send)
	c.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), forgetTimeout)
	defer cancel()
	if err := c.server.banlist.Forget(ctx, c.key); err != nil {
		c.logger.Warn("failed to forget banlist images", zap.Error(err))
	}
	_ = c.conn.Close()
}
