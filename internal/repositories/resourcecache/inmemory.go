package resourcecache

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/dex-api/internal/errors"
	"github.com/KirkDiggler/dex-api/internal/pkg/clock"
)

type entry struct {
	body      []byte
	expiresAt time.Time
}

// InMemoryRepository keeps cached bodies in process memory.
// It is used when no Redis endpoint is configured.
type InMemoryRepository struct {
	mu         sync.RWMutex
	namespaces map[string]map[string]entry
	clock      clock.Clock
}

var _ Repository = (*InMemoryRepository)(nil)

// InMemoryConfig contains configuration for the in-memory resource cache.
type InMemoryConfig struct {
	// Clock is optional and defaults to the system clock
	Clock clock.Clock
}

// NewInMemory creates an empty in-memory resource cache
func NewInMemory(cfg *InMemoryConfig) *InMemoryRepository {
	clk := clock.New()
	if cfg != nil && cfg.Clock != nil {
		clk = cfg.Clock
	}
	return &InMemoryRepository{
		namespaces: make(map[string]map[string]entry),
		clock:      clk,
	}
}

// Get returns the cached body for a key
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if err := validateKey(input.Namespace, input.Key); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.namespaces[input.Namespace][input.Key]
	if !ok || (!e.expiresAt.IsZero() && !r.clock.Now().Before(e.expiresAt)) {
		return nil, errors.NotFoundf("no cached resource for %s", input.Key)
	}

	body := make([]byte, len(e.body))
	copy(body, e.body)
	return &GetOutput{Body: body}, nil
}

// Put stores a body, replacing any existing entry
func (r *InMemoryRepository) Put(_ context.Context, input PutInput) (*PutOutput, error) {
	if err := validateKey(input.Namespace, input.Key); err != nil {
		return nil, err
	}

	e := entry{body: make([]byte, len(input.Body))}
	copy(e.body, input.Body)
	if input.TTL > 0 {
		e.expiresAt = r.clock.Now().Add(input.TTL)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ns, ok := r.namespaces[input.Namespace]
	if !ok {
		ns = make(map[string]entry)
		r.namespaces[input.Namespace] = ns
	}
	ns[input.Key] = e

	return &PutOutput{}, nil
}

// Clear removes every entry in a namespace
func (r *InMemoryRepository) Clear(_ context.Context, input ClearInput) (*ClearOutput, error) {
	if input.Namespace == "" {
		return nil, errors.InvalidArgument(errNamespaceEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	deleted := len(r.namespaces[input.Namespace])
	delete(r.namespaces, input.Namespace)

	return &ClearOutput{Deleted: deleted}, nil
}
