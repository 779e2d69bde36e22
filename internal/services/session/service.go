// Package session owns the per-client state of the dex: each session has
// its own fetch client, cache namespace, list engine and detail engine.
package session

//go:generate mockgen -destination=mock/mock_service.go -package=sessionmock github.com/KirkDiggler/dex-api/internal/services/session Service

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/KirkDiggler/dex-api/internal/clients/pokeapi"
	"github.com/KirkDiggler/dex-api/internal/errors"
	"github.com/KirkDiggler/dex-api/internal/orchestrators/detail"
	"github.com/KirkDiggler/dex-api/internal/orchestrators/listing"
	"github.com/KirkDiggler/dex-api/internal/pkg/clock"
	"github.com/KirkDiggler/dex-api/internal/pkg/idgen"
	"github.com/KirkDiggler/dex-api/internal/repositories/resourcecache"
	"github.com/KirkDiggler/dex-api/internal/services/catalog"
)

// DefaultIdleTTL is how long an untouched session lives
const DefaultIdleTTL = 30 * time.Minute

// Service manages sessions
type Service interface {
	// Create starts a session and begins loading its unfiltered list
	Create(ctx context.Context, input *CreateInput) (*CreateOutput, error)

	// Get returns a live session and marks it as used
	// Returns errors.NotFound for unknown or expired sessions
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// End stops a session and drops its cached responses
	// Returns errors.NotFound for unknown sessions
	End(ctx context.Context, input *EndInput) (*EndOutput, error)

	// Shutdown ends every session
	Shutdown(ctx context.Context) error
}

// Session is one client's dex state
type Session struct {
	ID        string
	CreatedAt time.Time
	Listing   listing.Service
	Detail    detail.Service

	lastSeen time.Time
}

// CreateInput defines the request for a new session
type CreateInput struct {
	// PageSize is optional and defaults to Config.PageSize
	PageSize int
}

// CreateOutput defines the response for a new session
type CreateOutput struct {
	Session *Session
}

// GetInput defines the request for a session
type GetInput struct {
	ID string
}

// GetOutput defines the response for a session
type GetOutput struct {
	Session *Session
}

// EndInput defines the request for ending a session
type EndInput struct {
	ID string
}

// EndOutput defines the response for ending a session
type EndOutput struct {
	// CachedEntries counts the cached responses dropped with the session
	CachedEntries int
}

// Config holds the dependencies for the session service
type Config struct {
	// BaseURL, FetchTimeout and HTTPClient configure each session's client
	BaseURL      string
	FetchTimeout time.Duration
	HTTPClient   *http.Client

	Catalog catalog.Service
	// Cache is optional; without it every fetch reaches the API
	Cache resourcecache.Repository

	IDGenerator         idgen.Generator
	Clock               clock.Clock
	IdleTTL             time.Duration
	PageSize            int
	MaxEvolutionFetches int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.IDGenerator == nil {
		c.IDGenerator = idgen.NewUUID("sess")
	}
	if c.Clock == nil {
		c.Clock = clock.New()
	}
	if c.IdleTTL == 0 {
		c.IdleTTL = DefaultIdleTTL
	}

	vb := errors.NewValidationBuilder()
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.IdleTTL < 0 {
		vb.Field("IdleTTL", "must be positive")
	}
	if c.PageSize < 0 {
		vb.Field("PageSize", "must not be negative")
	}
	return vb.Build()
}

type service struct {
	cfg *Config

	mu       sync.Mutex
	sessions map[string]*Session
}

// New creates a session service
func New(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &service{
		cfg:      cfg,
		sessions: make(map[string]*Session),
	}, nil
}

func (s *service) Create(ctx context.Context, input *CreateInput) (*CreateOutput, error) {
	if input == nil {
		input = &CreateInput{}
	}
	if input.PageSize < 0 {
		return nil, errors.InvalidArgumentf("page size must not be negative, got %d", input.PageSize)
	}
	s.reap(ctx)

	id := s.cfg.IDGenerator.Generate()
	client, err := pokeapi.New(&pokeapi.Config{
		BaseURL:        s.cfg.BaseURL,
		FetchTimeout:   s.cfg.FetchTimeout,
		HTTPClient:     s.cfg.HTTPClient,
		Cache:          s.cfg.Cache,
		CacheNamespace: id,
		CacheTTL:       s.cfg.IdleTTL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create session client")
	}

	pageSize := input.PageSize
	if pageSize == 0 {
		pageSize = s.cfg.PageSize
	}
	list, err := listing.New(&listing.Config{Client: client, Catalog: s.cfg.Catalog, PageSize: pageSize})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create list engine")
	}
	det, err := detail.NewOrchestrator(&detail.Config{
		Client:              client,
		MaxEvolutionFetches: s.cfg.MaxEvolutionFetches,
	})
	if err != nil {
		list.Close()
		return nil, errors.Wrap(err, "failed to create detail engine")
	}

	now := s.cfg.Clock.Now()
	sess := &Session{
		ID:        id,
		CreatedAt: now,
		Listing:   list,
		Detail:    det,
		lastSeen:  now,
	}

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	slog.Info("session created", "session_id", id)
	return &CreateOutput{Session: sess}, nil
}

func (s *service) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("session id is required")
	}
	s.reap(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[input.ID]
	if !ok {
		return nil, errors.NotFoundf("session %s not found", input.ID).WithMeta("session_id", input.ID)
	}
	sess.lastSeen = s.cfg.Clock.Now()
	return &GetOutput{Session: sess}, nil
}

func (s *service) End(ctx context.Context, input *EndInput) (*EndOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("session id is required")
	}

	s.mu.Lock()
	sess, ok := s.sessions[input.ID]
	delete(s.sessions, input.ID)
	s.mu.Unlock()

	if !ok {
		return nil, errors.NotFoundf("session %s not found", input.ID).WithMeta("session_id", input.ID)
	}

	deleted, err := s.stop(ctx, sess)
	if err != nil {
		return nil, err
	}
	slog.Info("session ended", "session_id", sess.ID, "cached_entries", deleted)
	return &EndOutput{CachedEntries: deleted}, nil
}

func (s *service) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	sessions := make([]*Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		sessions = append(sessions, sess)
	}
	s.sessions = make(map[string]*Session)
	s.mu.Unlock()

	var firstErr error
	for _, sess := range sessions {
		if _, err := s.stop(ctx, sess); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// reap ends sessions idle for longer than the TTL
func (s *service) reap(ctx context.Context) {
	now := s.cfg.Clock.Now()

	s.mu.Lock()
	var expired []*Session
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) > s.cfg.IdleTTL {
			expired = append(expired, sess)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, sess := range expired {
		if _, err := s.stop(ctx, sess); err != nil {
			slog.Warn("failed to clean up expired session", "session_id", sess.ID, "error", err)
			continue
		}
		slog.Info("session expired", "session_id", sess.ID)
	}
}

func (s *service) stop(ctx context.Context, sess *Session) (int, error) {
	sess.Listing.Close()
	sess.Detail.CloseMove()

	if s.cfg.Cache == nil {
		return 0, nil
	}
	out, err := s.cfg.Cache.Clear(ctx, resourcecache.ClearInput{Namespace: sess.ID})
	if err != nil {
		return 0, errors.Wrapf(err, "failed to clear cache of session %s", sess.ID)
	}
	return out.Deleted, nil
}
