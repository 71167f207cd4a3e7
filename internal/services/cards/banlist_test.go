package cards

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/countermtg/internal/banlist"
	"github.com/KirkDiggler/countermtg/internal/clients/mtg"
	"github.com/KirkDiggler/countermtg/internal/models"
	"github.com/KirkDiggler/countermtg/internal/repositories/card_image"
	cacheMocks "github.com/KirkDiggler/countermtg/internal/repositories/card_image/mocks"
	"github.com/KirkDiggler/countermtg/internal/services/cards/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testTables = `
formats:
  - name: modern
    cards:
      - Mox Opal
      - Ponder
      - Fury
      - Ponder
`

type BanlistTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockClient *mocks.MockClient
	cache      card_image.Repository
	banlist    *Banlist
	ctx        context.Context
}

func (s *BanlistTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClient = mocks.NewMockClient(s.ctrl)
	s.cache = card_image.NewMemory()
	s.ctx = context.Background()

	tables, err := banlist.Load([]byte(testTables))
	s.Require().NoError(err)

	b, err := NewBanlist(&BanlistConfig{
		Client: s.mockClient,
		Tables: tables,
		Cache:  s.cache,
	})
	s.Require().NoError(err)
	s.banlist = b
}

func (s *BanlistTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBanlistTestSuite(t *testing.T) {
	suite.Run(t, new(BanlistTestSuite))
}

func (s *BanlistTestSuite) TestResolveFetchesEachNameOnce() {
	s.mockClient.EXPECT().LookupImageByName(gomock.Any(), "Mox Opal", mtg.LangEnglish).Return("https://img/mox", true).Times(1)
	s.mockClient.EXPECT().LookupImageByName(gomock.Any(), "Ponder", mtg.LangEnglish).Return("https://img/ponder", true).Times(1)
	s.mockClient.EXPECT().LookupImageByName(gomock.Any(), "Fury", mtg.LangEnglish).Return("", false).Times(2)

	var (
		mu      sync.Mutex
		entries []models.BanlistEntry
	)
	out, err := s.banlist.Resolve(s.ctx, &ResolveInput{
		Format: banlist.FormatModern,
		Lang:   mtg.LangEnglish,
		Scope:  "tab-1",
		OnEntry: func(e models.BanlistEntry) {
			mu.Lock()
			entries = append(entries, e)
			mu.Unlock()
		},
	})
	s.Require().NoError(err)

	s.Equal([]models.BanlistEntry{
		{Name: "Mox Opal", ImageURL: "https://img/mox"},
		{Name: "Ponder", ImageURL: "https://img/ponder"},
		{Name: "Fury"},
		{Name: "Ponder", ImageURL: "https://img/ponder"},
	}, out.Entries)
	s.Len(entries, 2)

	// found images are cached for the scope, misses are retried
	again, err := s.banlist.Resolve(s.ctx, &ResolveInput{Format: banlist.FormatModern, Lang: mtg.LangEnglish, Scope: "tab-1"})
	s.Require().NoError(err)
	s.Equal("https://img/mox", again.Entries[0].ImageURL)
}

func (s *BanlistTestSuite) TestResolveUnknownFormat() {
	_, err := s.banlist.Resolve(s.ctx, &ResolveInput{Format: "vintage", Scope: "tab-1"})
	s.ErrorIs(err, banlist.ErrUnknownFormat)
}

func (s *BanlistTestSuite) TestResolveRequiresScope() {
	_, err := s.banlist.Resolve(s.ctx, &ResolveInput{Format: banlist.FormatModern})
	s.Error(err)
}

func (s *BanlistTestSuite) TestCancelledResolveAppliesNothing() {
	started := make(chan struct{}, 3)
	s.mockClient.EXPECT().
		LookupImageByName(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, name string, _ mtg.Lang) (string, bool) {
			started <- struct{}{}
			<-ctx.Done()
			return "https://img/late", true
		}).
		Times(3)

	ctx, cancel := context.WithCancel(s.ctx)
	done := make(chan error, 1)
	var onEntryCalls int
	go func() {
		_, err := s.banlist.Resolve(ctx, &ResolveInput{
			Format:  banlist.FormatModern,
			Scope:   "tab-1",
			OnEntry: func(models.BanlistEntry) { onEntryCalls++ },
		})
		done <- err
	}()

	for i := 0; i < 3; i++ {
		select {
		case <-started:
		case <-time.After(time.Second):
			s.FailNow("lookups did not start")
		}
	}
	cancel()

	select {
	case err := <-done:
		s.ErrorIs(err, context.Canceled)
	case <-time.After(time.Second):
		s.FailNow("resolve did not return")
	}
	s.Zero(onEntryCalls)

	cached, err := s.cache.GetImageURLs(s.ctx, &card_image.GetImageURLsInput{
		Scope: "tab-1",
		Names: []string{"Mox Opal", "Ponder", "Fury"},
	})
	s.Require().NoError(err)
	s.Empty(cached)
}

func (s *BanlistTestSuite) TestForgetClearsScope() {
	s.Require().NoError(s.cache.SaveImageURL(s.ctx, &card_image.SaveImageURLInput{Scope: "tab-1", Name: "Ponder", URL: "u"}))
	s.Require().NoError(s.banlist.Forget(s.ctx, "tab-1"))

	cached, err := s.cache.GetImageURLs(s.ctx, &card_image.GetImageURLsInput{Scope: "tab-1", Names: []string{"Ponder"}})
	s.Require().NoError(err)
	s.Empty(cached)
}

// withCache swaps the memory cache for a mock
func (s *BanlistTestSuite) withCache() *cacheMocks.MockRepository {
	cache := cacheMocks.NewMockRepository(s.ctrl)
	tables, err := banlist.Load([]byte(testTables))
	s.Require().NoError(err)

	b, err := NewBanlist(&BanlistConfig{
		Client: s.mockClient,
		Tables: tables,
		Cache:  cache,
	})
	s.Require().NoError(err)
	s.banlist = b
	return cache
}

func (s *BanlistTestSuite) TestResolveFetchesEverythingWhenCacheReadFails() {
	cache := s.withCache()
	cache.EXPECT().
		GetImageURLs(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("redis down"))
	cache.EXPECT().
		SaveImageURL(gomock.Any(), &card_image.SaveImageURLInput{Scope: "tab-1", Name: "Mox Opal", URL: "https://img/mox"}).
		Return(errors.New("redis down"))
	s.mockClient.EXPECT().LookupImageByName(gomock.Any(), "Mox Opal", mtg.LangEnglish).Return("https://img/mox", true)
	s.mockClient.EXPECT().LookupImageByName(gomock.Any(), "Ponder", mtg.LangEnglish).Return("", false)
	s.mockClient.EXPECT().LookupImageByName(gomock.Any(), "Fury", mtg.LangEnglish).Return("", false)

	out, err := s.banlist.Resolve(s.ctx, &ResolveInput{
		Format: banlist.FormatModern,
		Lang:   mtg.LangEnglish,
		Scope:  "tab-1",
	})
	s.Require().NoError(err)

	images := make(map[string]string)
	for _, e := range out.Entries {
		images[e.Name] = e.ImageURL
	}
	s.Equal("https://img/mox", images["Mox Opal"])
	s.Empty(images["Ponder"])
}

func (s *BanlistTestSuite) TestForgetReportsCacheError() {
	cache := s.withCache()
	failure := errors.New("redis down")
	cache.EXPECT().
		ClearScope(gomock.Any(), &card_image.ClearScopeInput{Scope: "tab-1"}).
		Return(failure)

	err := s.banlist.Forget(s.ctx, "tab-1")
	s.ErrorIs(err, failure)
	s.Contains(err.Error(), "failed to forget images")
}
