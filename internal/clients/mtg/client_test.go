package mtg

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
	server  *httptest.Server
	handler http.HandlerFunc
	hits    atomic.Int32
	client  *Client
	ctx     context.Context
}

func (s *ClientTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.hits.Store(0)
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.hits.Add(1)
		s.handler(w, r)
	}))
	s.client = New(&Config{BaseURL: s.server.URL + "/v1/"})
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) TestLookupImageReturnsFirstWithImage() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/v1/cards", r.URL.Path)
		s.Equal("Sol Ring", r.URL.Query().Get("name"))
		s.Equal("20", r.URL.Query().Get("pageSize"))
		w.Write([]byte(`{"cards":[{"id":"a","name":"Sol Ring"},{"id":"b","name":"Sol Ring","imageUrl":"https://img/b"},{"id":"c","imageUrl":"https://img/c"}]}`))
	}

	url, ok := s.client.LookupImageByName(s.ctx, "  Sol Ring ", LangEnglish)
	s.True(ok)
	s.Equal("https://img/b", url)
}

func (s *ClientTestSuite) TestLookupImageMissing() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"cards":[{"id":"a"}]}`))
	}

	url, ok := s.client.LookupImageByName(s.ctx, "Sol Ring", LangEnglish)
	s.False(ok)
	s.Empty(url)
}

func (s *ClientTestSuite) TestSpanishUsesForeignName() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal("Anillo solar", r.URL.Query().Get("foreignName"))
		s.Empty(r.URL.Query().Get("name"))
		w.Write([]byte(`{"cards":[]}`))
	}

	s.Empty(s.client.SearchByName(s.ctx, "Anillo solar", ParseLang("ES")))
	s.Equal(int32(1), s.hits.Load())
}

func (s *ClientTestSuite) TestSearchDropsCardsWithoutID() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal("12", r.URL.Query().Get("pageSize"))
		w.Write([]byte(`{"cards":[{"name":"no id"},{"id":"x1","name":"Lightning Bolt","manaCost":"{R}","types":["Instant"]}]}`))
	}

	cards := s.client.SearchByName(s.ctx, "Lightning", LangEnglish)
	s.Require().Len(cards, 1)
	s.Equal("x1", cards[0].ID)
	s.Equal("{R}", cards[0].ManaCost)
	s.Equal([]string{"Instant"}, cards[0].Types)
}

func (s *ClientTestSuite) TestRulings() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/v1/cards/abc 1/rulings", r.URL.Path)
		w.Write([]byte(`{"rulings":[{"date":"2004-10-04","text":"It can be used for any color."}]}`))
	}

	rulings := s.client.RulingsForCard(s.ctx, "abc 1")
	s.Require().Len(rulings, 1)
	s.Equal("2004-10-04", rulings[0].Date)
}

func (s *ClientTestSuite) TestRulingsWithoutBody() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}

	rulings := s.client.RulingsForCard(s.ctx, "abc")
	s.NotNil(rulings)
	s.Empty(rulings)
}

func (s *ClientTestSuite) TestBlankInputSkipsRequest() {
	s.Empty(s.client.SearchByName(s.ctx, "   ", LangEnglish))
	s.Empty(s.client.RulingsForCard(s.ctx, ""))
	_, ok := s.client.LookupImageByName(s.ctx, "", LangEnglish)
	s.False(ok)

	s.Equal(int32(0), s.hits.Load())
}

func (s *ClientTestSuite) TestFailuresDegradeToEmpty() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	s.Empty(s.client.SearchByName(s.ctx, "Bolt", LangEnglish))

	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"cards":[`))
	}
	s.Empty(s.client.SearchByName(s.ctx, "Bolt", LangEnglish))
	s.Empty(s.client.RulingsForCard(s.ctx, "abc"))
}

func (s *ClientTestSuite) TestCancelledContext() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"cards":[{"id":"a","imageUrl":"https://img/a"}]}`))
	}

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, ok := s.client.LookupImageByName(ctx, "Sol Ring", LangEnglish)
	s.False(ok)
}
