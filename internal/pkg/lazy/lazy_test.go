package lazy_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dex-api/internal/errors"
	"github.com/KirkDiggler/dex-api/internal/pkg/lazy"
)

type LazyTestSuite struct {
	suite.Suite
	ctx context.Context
}

func TestLazySuite(t *testing.T) {
	suite.Run(t, new(LazyTestSuite))
}

func (s *LazyTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *LazyTestSuite) TestConcurrentCallersShareOneLoad() {
	var calls atomic.Int32
	release := make(chan struct{})

	v := lazy.New(func(context.Context) ([]string, error) {
		calls.Add(1)
		<-release
		return []string{"normal", "fire"}, nil
	})
	s.Assert().Equal(lazy.Uninitialized, v.State())

	const callers = 8
	var wg sync.WaitGroup
	results := make([][]string, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			val, err := v.Get(s.ctx)
			s.Assert().NoError(err)
			results[i] = val
		}(i)
	}

	s.Require().Eventually(func() bool { return v.State() == lazy.Loading }, time.Second, time.Millisecond)
	close(release)
	wg.Wait()

	s.Assert().Equal(int32(1), calls.Load())
	s.Assert().Equal(lazy.Ready, v.State())
	for _, r := range results {
		s.Assert().Equal([]string{"normal", "fire"}, r)
	}

	_, err := v.Get(s.ctx)
	s.Assert().NoError(err)
	s.Assert().Equal(int32(1), calls.Load())
}

func (s *LazyTestSuite) TestFailedLoadIsRetried() {
	var calls atomic.Int32
	v := lazy.New(func(context.Context) (int, error) {
		if calls.Add(1) == 1 {
			return 0, errors.Unavailablef("type list unreachable")
		}
		return 18, nil
	})

	_, err := v.Get(s.ctx)
	s.Require().Error(err)
	s.Assert().Equal(lazy.Failed, v.State())
	s.Assert().True(errors.IsUnavailable(v.Err()))

	_, ok := v.Peek()
	s.Assert().False(ok)

	n, err := v.Get(s.ctx)
	s.Require().NoError(err)
	s.Assert().Equal(18, n)
	s.Assert().Equal(lazy.Ready, v.State())
	s.Assert().NoError(v.Err())

	peeked, ok := v.Peek()
	s.Assert().True(ok)
	s.Assert().Equal(18, peeked)
}

func (s *LazyTestSuite) TestCancelledCallerDoesNotAbortLoad() {
	release := make(chan struct{})
	v := lazy.New(func(ctx context.Context) (string, error) {
		<-release
		return "ready", ctx.Err()
	})

	ctx, cancel := context.WithCancel(s.ctx)
	done := make(chan error, 1)
	go func() {
		_, err := v.Get(ctx)
		done <- err
	}()

	s.Require().Eventually(func() bool { return v.State() == lazy.Loading }, time.Second, time.Millisecond)
	cancel()
	s.Assert().ErrorIs(<-done, context.Canceled)

	close(release)
	val, err := v.Get(s.ctx)
	s.Require().NoError(err)
	s.Assert().Equal("ready", val)
}

func (s *LazyTestSuite) TestStateString() {
	s.Assert().Equal("uninitialized", lazy.Uninitialized.String())
	s.Assert().Equal("loading", lazy.Loading.String())
	s.Assert().Equal("ready", lazy.Ready.String())
	s.Assert().Equal("failed", lazy.Failed.String())
}
