package resourcecache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dex-api/internal/errors"
	clockmock "github.com/KirkDiggler/dex-api/internal/pkg/clock/mock"
	"github.com/KirkDiggler/dex-api/internal/repositories/resourcecache"
	"github.com/KirkDiggler/dex-api/internal/testutils"
)

const (
	testNamespace = "sess_1"
	testLink      = "https://pokeapi.co/api/v2/pokemon/25/"
	testBody      = `{"id":25,"name":"pikachu"}`
)

// contractSuite runs the same expectations against every implementation
type contractSuite struct {
	suite.Suite
	ctx  context.Context
	repo resourcecache.Repository
}

func (s *contractSuite) TestGetMissingIsNotFound() {
	_, err := s.repo.Get(s.ctx, resourcecache.GetInput{Namespace: testNamespace, Key: testLink})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *contractSuite) TestPutThenGet() {
	_, err := s.repo.Put(s.ctx, resourcecache.PutInput{
		Namespace: testNamespace,
		Key:       testLink,
		Body:      []byte(testBody),
	})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, resourcecache.GetInput{Namespace: testNamespace, Key: testLink})
	s.Require().NoError(err)
	s.Assert().Equal(testBody, string(out.Body))

	_, err = s.repo.Get(s.ctx, resourcecache.GetInput{Namespace: "sess_other", Key: testLink})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *contractSuite) TestClearOnlyTouchesNamespace() {
	for _, ns := range []string{testNamespace, "sess_other"} {
		for _, key := range []string{testLink, "https://pokeapi.co/api/v2/pokemon/26/"} {
			_, err := s.repo.Put(s.ctx, resourcecache.PutInput{Namespace: ns, Key: key, Body: []byte("{}")})
			s.Require().NoError(err)
		}
	}

	out, err := s.repo.Clear(s.ctx, resourcecache.ClearInput{Namespace: testNamespace})
	s.Require().NoError(err)
	s.Assert().Equal(2, out.Deleted)

	_, err = s.repo.Get(s.ctx, resourcecache.GetInput{Namespace: testNamespace, Key: testLink})
	s.Assert().True(errors.IsNotFound(err))
	_, err = s.repo.Get(s.ctx, resourcecache.GetInput{Namespace: "sess_other", Key: testLink})
	s.Assert().NoError(err)
}

func (s *contractSuite) TestValidation() {
	testCases := []struct {
		name string
		call func() error
		msg  string
	}{
		{
			name: "get without namespace",
			call: func() error {
				_, err := s.repo.Get(s.ctx, resourcecache.GetInput{Key: testLink})
				return err
			},
			msg: "namespace cannot be empty",
		},
		{
			name: "put without key",
			call: func() error {
				_, err := s.repo.Put(s.ctx, resourcecache.PutInput{Namespace: testNamespace})
				return err
			},
			msg: "key cannot be empty",
		},
		{
			name: "clear without namespace",
			call: func() error {
				_, err := s.repo.Clear(s.ctx, resourcecache.ClearInput{})
				return err
			},
			msg: "namespace cannot be empty",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.call()
			s.Require().Error(err)
			s.Assert().True(errors.IsInvalidArgument(err))
			s.Assert().Contains(err.Error(), tc.msg)
		})
	}
}

type RedisCacheTestSuite struct {
	contractSuite
	mr *miniredis.Miniredis
}

func TestRedisCacheSuite(t *testing.T) {
	suite.Run(t, new(RedisCacheTestSuite))
}

func (s *RedisCacheTestSuite) SetupTest() {
	s.ctx = context.Background()
	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr

	repo, err := resourcecache.NewRedis(&resourcecache.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisCacheTestSuite) TestNewRedisValidation() {
	_, err := resourcecache.NewRedis(nil)
	s.Assert().ErrorContains(err, "config cannot be nil")

	_, err = resourcecache.NewRedis(&resourcecache.RedisConfig{})
	s.Assert().ErrorContains(err, "client cannot be nil")
}

func (s *RedisCacheTestSuite) TestKeyLayoutAndTTL() {
	_, err := s.repo.Put(s.ctx, resourcecache.PutInput{
		Namespace: testNamespace,
		Key:       testLink,
		Body:      []byte(testBody),
		TTL:       time.Minute,
	})
	s.Require().NoError(err)

	key := "dex:cache:" + testNamespace + ":" + testLink
	s.Assert().True(s.mr.Exists(key))
	s.Assert().Equal(time.Minute, s.mr.TTL(key))

	s.mr.FastForward(2 * time.Minute)
	_, err = s.repo.Get(s.ctx, resourcecache.GetInput{Namespace: testNamespace, Key: testLink})
	s.Assert().True(errors.IsNotFound(err))
}

type InMemoryCacheTestSuite struct {
	contractSuite
	ctrl  *gomock.Controller
	clock *clockmock.MockClock
	now   time.Time
}

func TestInMemoryCacheSuite(t *testing.T) {
	suite.Run(t, new(InMemoryCacheTestSuite))
}

func (s *InMemoryCacheTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.clock = clockmock.NewMockClock(s.ctrl)
	s.now = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.clock.EXPECT().Now().DoAndReturn(func() time.Time { return s.now }).AnyTimes()

	s.repo = resourcecache.NewInMemory(&resourcecache.InMemoryConfig{Clock: s.clock})
}

func (s *InMemoryCacheTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *InMemoryCacheTestSuite) TestTTLExpiry() {
	_, err := s.repo.Put(s.ctx, resourcecache.PutInput{
		Namespace: testNamespace,
		Key:       testLink,
		Body:      []byte(testBody),
		TTL:       time.Minute,
	})
	s.Require().NoError(err)

	s.now = s.now.Add(59 * time.Second)
	_, err = s.repo.Get(s.ctx, resourcecache.GetInput{Namespace: testNamespace, Key: testLink})
	s.Assert().NoError(err)

	s.now = s.now.Add(time.Second)
	_, err = s.repo.Get(s.ctx, resourcecache.GetInput{Namespace: testNamespace, Key: testLink})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *InMemoryCacheTestSuite) TestReturnedBodyIsACopy() {
	_, err := s.repo.Put(s.ctx, resourcecache.PutInput{Namespace: testNamespace, Key: testLink, Body: []byte(testBody)})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, resourcecache.GetInput{Namespace: testNamespace, Key: testLink})
	s.Require().NoError(err)
	out.Body[0] = 'X'

	again, err := s.repo.Get(s.ctx, resourcecache.GetInput{Namespace: testNamespace, Key: testLink})
	s.Require().NoError(err)
	s.Assert().Equal(testBody, string(again.Body))
}
