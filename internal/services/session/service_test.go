package session_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dex-api/internal/clients/pokeapi"
	"github.com/KirkDiggler/dex-api/internal/errors"
	"github.com/KirkDiggler/dex-api/internal/orchestrators/detail"
	"github.com/KirkDiggler/dex-api/internal/orchestrators/listing"
	clockmock "github.com/KirkDiggler/dex-api/internal/pkg/clock/mock"
	"github.com/KirkDiggler/dex-api/internal/repositories/resourcecache"
	"github.com/KirkDiggler/dex-api/internal/services/catalog"
	"github.com/KirkDiggler/dex-api/internal/services/session"
	"github.com/KirkDiggler/dex-api/internal/testutils"
)

type ServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockClock *clockmock.MockClock
	server    *testutils.PokeAPIServer
	cache     *resourcecache.InMemoryRepository
	svc       session.Service
	ctx       context.Context

	mu  sync.Mutex
	now time.Time
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClock = clockmock.NewMockClock(s.ctrl)
	s.now = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().DoAndReturn(func() time.Time {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.now
	}).AnyTimes()

	s.server = testutils.NewPokeAPIServer(s.T())
	s.cache = resourcecache.NewInMemory(&resourcecache.InMemoryConfig{Clock: s.mockClock})
	s.ctx = context.Background()

	catalogClient, err := pokeapi.New(&pokeapi.Config{BaseURL: s.server.BaseURL()})
	s.Require().NoError(err)
	cat, err := catalog.New(&catalog.Config{Client: catalogClient})
	s.Require().NoError(err)

	svc, err := session.New(&session.Config{
		BaseURL:      s.server.BaseURL(),
		FetchTimeout: 5 * time.Second,
		Catalog:      cat,
		Cache:        s.cache,
		Clock:        s.mockClock,
		IdleTTL:      10 * time.Minute,
		PageSize:     5,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *ServiceTestSuite) TearDownTest() {
	s.Require().NoError(s.svc.Shutdown(s.ctx))
	s.ctrl.Finish()
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) advance(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = s.now.Add(d)
}

func (s *ServiceTestSuite) TestNewRequiresCatalog() {
	_, err := session.New(&session.Config{})
	s.Require().Error(err)
	s.Contains(err.Error(), "Catalog")
}

func (s *ServiceTestSuite) TestCreateAndGet() {
	created, err := s.svc.Create(s.ctx, &session.CreateInput{})
	s.Require().NoError(err)
	s.True(strings.HasPrefix(created.Session.ID, "sess_"))

	got, err := s.svc.Get(s.ctx, &session.GetInput{ID: created.Session.ID})
	s.Require().NoError(err)
	s.Same(created.Session, got.Session)

	v, err := got.Session.Listing.Apply(s.ctx, listing.Settle())
	s.Require().NoError(err)
	s.Equal(5, v.PageSize)
	s.Equal(11, v.Total)
	s.Len(v.Items, 5)
}

func (s *ServiceTestSuite) TestCreateHonorsPageSize() {
	created, err := s.svc.Create(s.ctx, &session.CreateInput{PageSize: 3})
	s.Require().NoError(err)

	v, err := created.Session.Listing.Apply(s.ctx)
	s.Require().NoError(err)
	s.Len(v.Items, 3)
}

func (s *ServiceTestSuite) TestSessionsHaveSeparateCaches() {
	first, err := s.svc.Create(s.ctx, nil)
	s.Require().NoError(err)
	second, err := s.svc.Create(s.ctx, nil)
	s.Require().NoError(err)

	// the primary fetch and the evolution node share one cached response
	_, err = first.Session.Detail.Show(s.ctx, &detail.ShowInput{ID: "25"})
	s.Require().NoError(err)
	s.Equal(1, s.server.Hits("/pokemon/25/"))

	_, err = first.Session.Detail.Show(s.ctx, &detail.ShowInput{ID: "25"})
	s.Require().NoError(err)
	s.Equal(1, s.server.Hits("/pokemon/25/"))

	_, err = second.Session.Detail.Show(s.ctx, &detail.ShowInput{ID: "25"})
	s.Require().NoError(err)
	s.Equal(2, s.server.Hits("/pokemon/25/"))
}

func (s *ServiceTestSuite) TestEndClearsCache() {
	created, err := s.svc.Create(s.ctx, nil)
	s.Require().NoError(err)
	id := created.Session.ID

	_, err = created.Session.Detail.Show(s.ctx, &detail.ShowInput{ID: "25"})
	s.Require().NoError(err)

	key := resourcecache.GetInput{Namespace: id, Key: s.server.Link("/pokemon/25/")}
	_, err = s.cache.Get(s.ctx, key)
	s.Require().NoError(err)

	out, err := s.svc.End(s.ctx, &session.EndInput{ID: id})
	s.Require().NoError(err)
	s.Positive(out.CachedEntries)

	_, err = s.cache.Get(s.ctx, key)
	s.True(errors.IsNotFound(err))

	_, err = s.svc.Get(s.ctx, &session.GetInput{ID: id})
	s.True(errors.IsNotFound(err))

	_, err = created.Session.Listing.Apply(s.ctx)
	s.Equal(errors.CodeFailedPrecondition, errors.GetCode(err))
}

func (s *ServiceTestSuite) TestEndUnknown() {
	_, err := s.svc.End(s.ctx, &session.EndInput{ID: "sess_missing"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))

	_, err = s.svc.End(s.ctx, &session.EndInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestIdleSessionsExpire() {
	idle, err := s.svc.Create(s.ctx, nil)
	s.Require().NoError(err)

	s.advance(6 * time.Minute)
	active, err := s.svc.Create(s.ctx, nil)
	s.Require().NoError(err)

	s.advance(5 * time.Minute)
	_, err = s.svc.Get(s.ctx, &session.GetInput{ID: idle.Session.ID})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))

	got, err := s.svc.Get(s.ctx, &session.GetInput{ID: active.Session.ID})
	s.Require().NoError(err)
	s.Equal(active.Session.ID, got.Session.ID)

	// Get refreshes the idle timer
	s.advance(9 * time.Minute)
	_, err = s.svc.Get(s.ctx, &session.GetInput{ID: active.Session.ID})
	s.Require().NoError(err)
}
