// Package lazy holds process-scoped values that are loaded once on first use.
//
// A Value moves through Uninitialized, Loading and then Ready or Failed.
// Concurrent callers that arrive while a load is running wait on that same
// load instead of starting another. A Failed value is retried by the next Get.
package lazy

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// State is the lifecycle of a Value
type State int

// Lifecycle states
const (
	Uninitialized State = iota
	Loading
	Ready
	Failed
)

// String returns the state name
func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Loader produces the value. It runs detached from the caller's cancellation
// because other callers may be waiting on the same load.
type Loader[T any] func(ctx context.Context) (T, error)

// Value is a lazily loaded, coalesced value
type Value[T any] struct {
	load  Loader[T]
	group singleflight.Group

	mu    sync.RWMutex
	state State
	value T
	err   error
}

// New creates an uninitialized Value
func New[T any](load Loader[T]) *Value[T] {
	return &Value[T]{load: load}
}

// Get returns the loaded value, loading it if needed.
// Cancelling ctx releases this caller without aborting the shared load.
func (v *Value[T]) Get(ctx context.Context) (T, error) {
	if val, ok := v.ready(); ok {
		return val, nil
	}

	ch := v.group.DoChan("load", func() (any, error) {
		v.mu.Lock()
		if v.state == Ready {
			val := v.value
			v.mu.Unlock()
			return val, nil
		}
		v.state = Loading
		v.err = nil
		v.mu.Unlock()

		val, err := v.load(context.WithoutCancel(ctx))

		v.mu.Lock()
		defer v.mu.Unlock()
		if err != nil {
			v.state = Failed
			v.err = err
			return nil, err
		}
		v.state = Ready
		v.value = val
		return val, nil
	})

	var zero T
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	}
}

// State reports the current lifecycle state
func (v *Value[T]) State() State {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.state
}

// Peek returns the value without triggering a load
func (v *Value[T]) Peek() (T, bool) {
	return v.ready()
}

// Err returns the error of the last failed load
func (v *Value[T]) Err() error {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.err
}

func (v *Value[T]) ready() (T, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.state == Ready {
		return v.value, true
	}
	var zero T
	return zero, false
}
