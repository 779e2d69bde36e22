// Package catalog holds the process-wide list of every pokemon and answers
// name suggestions from it.
package catalog

//go:generate mockgen -destination=mock/mock_service.go -package=catalogmock github.com/KirkDiggler/dex-api/internal/services/catalog Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/dex-api/internal/clients/pokeapi"
	"github.com/KirkDiggler/dex-api/internal/entities/pokedex"
	"github.com/KirkDiggler/dex-api/internal/errors"
	"github.com/KirkDiggler/dex-api/internal/pkg/lazy"
	"github.com/KirkDiggler/dex-api/internal/pkg/names"
)

const (
	// DefaultSuggestLimit is used when SuggestInput.Limit is zero
	DefaultSuggestLimit = 10

	// MinSuggestQuery is the shortest query that produces suggestions
	MinSuggestQuery = 2

	// fallbackListLimit is requested when the API reports a zero count
	fallbackListLimit = 2000
)

// Service exposes the full pokemon catalog
type Service interface {
	// Entries returns every pokemon ordered by id. The slice is a copy.
	Entries(ctx context.Context) ([]pokedex.Ref, error)

	// TotalCount returns the count the API reports for the pokemon list
	TotalCount(ctx context.Context) (int, error)

	// Suggest returns the first matches for an autocomplete query
	Suggest(ctx context.Context, input *SuggestInput) (*SuggestOutput, error)

	// Ready reports whether the entries have been loaded
	Ready() bool
}

// SuggestInput defines the request for name suggestions
type SuggestInput struct {
	Query string
	Limit int
}

// Suggestion is one autocomplete match
type Suggestion struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

// SuggestOutput defines the response for name suggestions
type SuggestOutput struct {
	Suggestions []Suggestion
}

// Config holds the dependencies for the catalog service
type Config struct {
	Client pokeapi.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	return vb.Build()
}

type service struct {
	client  pokeapi.Client
	count   *lazy.Value[int]
	entries *lazy.Value[[]pokedex.Ref]
}

// New creates a catalog service. Nothing is fetched until first use.
func New(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &service{client: cfg.Client}
	s.count = lazy.New(s.loadCount)
	s.entries = lazy.New(s.loadEntries)
	return s, nil
}

func (s *service) loadCount(ctx context.Context) (int, error) {
	page, err := s.client.ListPokemon(ctx, &pokeapi.ListPokemonInput{Limit: 1})
	if err != nil {
		return 0, errors.Wrap(err, "failed to fetch pokemon count")
	}
	return page.Count, nil
}

func (s *service) loadEntries(ctx context.Context) ([]pokedex.Ref, error) {
	count, err := s.count.Get(ctx)
	if err != nil {
		return nil, err
	}

	limit := count
	if limit <= 0 {
		limit = fallbackListLimit
	}

	page, err := s.client.ListPokemon(ctx, &pokeapi.ListPokemonInput{Limit: limit})
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch pokemon list")
	}

	entries := append([]pokedex.Ref(nil), page.Results...)
	pokedex.SortByID(entries)

	slog.Info("pokemon catalog loaded", "entries", len(entries), "count", count)
	return entries, nil
}

func (s *service) Entries(ctx context.Context) ([]pokedex.Ref, error) {
	entries, err := s.entries.Get(ctx)
	if err != nil {
		return nil, err
	}
	return append([]pokedex.Ref(nil), entries...), nil
}

func (s *service) TotalCount(ctx context.Context) (int, error) {
	return s.count.Get(ctx)
}

func (s *service) Ready() bool {
	return s.entries.State() == lazy.Ready
}

func (s *service) Suggest(ctx context.Context, input *SuggestInput) (*SuggestOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.Limit < 0 {
		return nil, errors.InvalidArgumentf("limit must not be negative, got %d", input.Limit)
	}

	out := &SuggestOutput{Suggestions: []Suggestion{}}
	if len([]rune(input.Query)) < MinSuggestQuery {
		return out, nil
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultSuggestLimit
	}

	entries, err := s.entries.Get(ctx)
	if err != nil {
		return nil, err
	}

	for _, ref := range entries {
		if !ref.Matches(input.Query) {
			continue
		}
		out.Suggestions = append(out.Suggestions, Suggestion{
			ID:          ref.ID(),
			Name:        ref.Name,
			DisplayName: names.Display(ref.Name),
		})
		if len(out.Suggestions) == limit {
			break
		}
	}

	return out, nil
}
