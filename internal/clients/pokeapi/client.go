// Package pokeapi is the client for the PokeAPI REST service.
//
// It is the only component that talks to the remote API. Every method maps an
// identifier or absolute link to a typed entity and classifies failures into
// the errors taxonomy; it holds no business logic and never retries.
package pokeapi

//go:generate mockgen -destination=mock/mock_client.go -package=pokeapimock github.com/KirkDiggler/dex-api/internal/clients/pokeapi Client

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/dex-api/internal/entities/pokedex"
	"github.com/KirkDiggler/dex-api/internal/errors"
	"github.com/KirkDiggler/dex-api/internal/repositories/resourcecache"
)

const (
	// DefaultBaseURL is the public PokeAPI endpoint
	DefaultBaseURL = "https://pokeapi.co/api/v2"

	// DefaultFetchTimeout bounds a single remote fetch
	DefaultFetchTimeout = 30 * time.Second

	tracerName = "github.com/KirkDiggler/dex-api/internal/clients/pokeapi"

	// enumerations are small; one page this size always holds them
	enumerationLimit = 1000
)

// Kind tags a PokeAPI resource collection
type Kind string

// Resource kinds
const (
	KindPokemon        Kind = "pokemon"
	KindSpecies        Kind = "pokemon-species"
	KindEvolutionChain Kind = "evolution-chain"
	KindType           Kind = "type"
	KindMove           Kind = "move"
	KindGeneration     Kind = "generation"
	KindRegion         Kind = "region"
	KindPokedex        Kind = "pokedex"
)

// Client defines the PokeAPI operations used by the dex
type Client interface {
	// GetPokemon fetches a pokemon by numeric id or slug
	GetPokemon(ctx context.Context, idOrName string) (*pokedex.Pokemon, error)

	// GetPokemonByLink fetches a pokemon by its absolute link
	GetPokemonByLink(ctx context.Context, link string) (*pokedex.Pokemon, error)

	// ListPokemon fetches one page of the pokemon list
	ListPokemon(ctx context.Context, input *ListPokemonInput) (*pokedex.Page, error)

	// GetSpecies fetches species data by numeric id or slug
	GetSpecies(ctx context.Context, idOrName string) (*pokedex.Species, error)

	// GetEvolutionChain fetches an evolution chain by absolute link and
	// returns it flattened into a pre-order arena
	GetEvolutionChain(ctx context.Context, link string) (*pokedex.EvolutionTree, error)

	// GetType fetches a type with its relations and members
	GetType(ctx context.Context, idOrName string) (*pokedex.Type, error)

	// ListTypes enumerates every type
	ListTypes(ctx context.Context) ([]pokedex.Ref, error)

	// GetMove fetches full move detail by numeric id or slug
	GetMove(ctx context.Context, idOrName string) (*pokedex.Move, error)

	// GetGeneration fetches a generation and its species
	GetGeneration(ctx context.Context, idOrName string) (*pokedex.Generation, error)

	// ListGenerations enumerates every generation
	ListGenerations(ctx context.Context) ([]pokedex.Ref, error)

	// GetRegion fetches a region and its pokedex links
	GetRegion(ctx context.Context, idOrName string) (*pokedex.Region, error)

	// ListRegions enumerates every region
	ListRegions(ctx context.Context) ([]pokedex.Ref, error)

	// GetPokedex fetches a regional pokedex by absolute link
	GetPokedex(ctx context.Context, link string) (*pokedex.Pokedex, error)
}

// ListPokemonInput selects a page of the pokemon list
type ListPokemonInput struct {
	Offset int
	Limit  int
}

// Config contains configuration options for the PokeAPI client.
type Config struct {
	// BaseURL of the API (optional, defaults to DefaultBaseURL)
	BaseURL string
	// FetchTimeout bounds each request (optional, defaults to 30 seconds)
	FetchTimeout time.Duration
	// HTTPClient overrides the transport (optional)
	HTTPClient *http.Client
	// Cache stores raw bodies by link (optional)
	Cache resourcecache.Repository
	// CacheNamespace scopes cached bodies, required with Cache
	CacheNamespace string
	// CacheTTL for cached bodies (optional, zero keeps them until cleared)
	CacheTTL time.Duration
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.FetchTimeout == 0 {
		cfg.FetchTimeout = DefaultFetchTimeout
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{}
	}

	vb := errors.NewValidationBuilder()
	if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
		vb.InvalidField("BaseURL", err.Error())
	}
	if cfg.FetchTimeout < 0 {
		vb.Field("FetchTimeout", "must be positive")
	}
	if cfg.Cache != nil && cfg.CacheNamespace == "" {
		vb.RequiredField("CacheNamespace")
	}
	return vb.Build()
}

type client struct {
	baseURL   string
	timeout   time.Duration
	http      *http.Client
	cache     resourcecache.Repository
	namespace string
	cacheTTL  time.Duration
	tracer    trace.Tracer
}

// New creates a new PokeAPI client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		timeout:   cfg.FetchTimeout,
		http:      cfg.HTTPClient,
		cache:     cfg.Cache,
		namespace: cfg.CacheNamespace,
		cacheTTL:  cfg.CacheTTL,
		tracer:    otel.Tracer(tracerName),
	}, nil
}

// resourceLink builds the canonical link for kind/idOrName, matching the
// self links the API embeds in its own payloads.
func (c *client) resourceLink(kind Kind, idOrName string) (string, error) {
	id := strings.ToLower(strings.TrimSpace(idOrName))
	if id == "" {
		return "", errors.InvalidArgumentf("%s identifier cannot be empty", kind)
	}
	return fmt.Sprintf("%s/%s/%s/", c.baseURL, kind, url.PathEscape(id)), nil
}

// getByIDOrName fetches kind/idOrName and decodes it into out
func (c *client) getByIDOrName(ctx context.Context, kind Kind, idOrName string, out any) error {
	link, err := c.resourceLink(kind, idOrName)
	if err != nil {
		return err
	}
	return c.fetch(ctx, kind, idOrName, link, out)
}

// getByLink fetches an absolute link previously obtained from another entity
func (c *client) getByLink(ctx context.Context, kind Kind, link string, out any) error {
	if strings.TrimSpace(link) == "" {
		return errors.InvalidArgumentf("%s link cannot be empty", kind)
	}
	return c.fetch(ctx, kind, link, link, out)
}

func (c *client) fetch(ctx context.Context, kind Kind, identifier, link string, out any) error {
	if body, ok := c.cached(ctx, link); ok {
		if err := json.Unmarshal(body, out); err == nil {
			return nil
		}
		slog.Warn("discarding undecodable cached resource", "link", link)
	}

	ctx, span := c.tracer.Start(ctx, "pokeapi.fetch", trace.WithAttributes(
		attribute.String("pokeapi.kind", string(kind)),
		attribute.String("pokeapi.link", link),
	))
	defer span.End()

	body, err := c.do(ctx, kind, identifier, link)
	if err != nil {
		if errors.IsDeadlineExceeded(err) {
			slog.Warn("pokeapi fetch timed out", "kind", kind, "link", link, "timeout", c.timeout)
		}
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, errors.GetMessage(err))
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		wrapped := errors.WrapWithCodef(err, errors.CodeInternal, "failed to decode %s %s", kind, identifier)
		span.RecordError(wrapped)
		span.SetStatus(otelcodes.Error, wrapped.Message)
		return wrapped
	}

	c.store(ctx, link, body)
	return nil
}

func (c *client) do(ctx context.Context, kind Kind, identifier, link string) ([]byte, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(fetchCtx, http.MethodGet, link, nil)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "invalid %s link %q", kind, link)
	}
	req.Header.Set("Accept", "application/json")
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.transportError(ctx, err, kind, identifier)
	}
	defer func() { _ = resp.Body.Close() }()

	slog.Debug("pokeapi fetch",
		"kind", kind,
		"link", link,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		statusText := http.StatusText(resp.StatusCode)
		if statusText == "" {
			statusText = strconv.Itoa(resp.StatusCode)
		}
		return nil, errors.NotFoundf("error fetching %s %s: %s", kind, identifier, statusText).
			WithMeta("identifier", identifier).
			WithMeta("status", resp.StatusCode).
			WithMeta("status_text", statusText)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.transportError(ctx, err, kind, identifier)
	}
	return body, nil
}

// transportError classifies a failure that produced no HTTP status.
// The per-fetch deadline becomes a timeout; the caller's own cancellation is
// passed through as canceled; anything else is a network failure.
func (c *client) transportError(ctx context.Context, err error, kind Kind, identifier string) error {
	switch {
	case ctx.Err() != nil:
		return errors.WrapWithCodef(ctx.Err(), errors.CodeCanceled, "fetching %s %s canceled", kind, identifier)
	case stderrors.Is(err, context.DeadlineExceeded):
		return errors.WrapWithCodef(err, errors.CodeDeadlineExceeded,
			"fetching %s %s timed out after %s", kind, identifier, c.timeout).
			WithMeta("identifier", identifier)
	default:
		return errors.WrapWithCodef(err, errors.CodeUnavailable, "network failure fetching %s %s", kind, identifier).
			WithMeta("identifier", identifier)
	}
}

func (c *client) cached(ctx context.Context, link string) ([]byte, bool) {
	if c.cache == nil {
		return nil, false
	}
	out, err := c.cache.Get(ctx, resourcecache.GetInput{Namespace: c.namespace, Key: link})
	if err != nil {
		if !errors.IsNotFound(err) {
			slog.Warn("resource cache read failed", "link", link, "error", err)
		}
		return nil, false
	}
	return out.Body, true
}

func (c *client) store(ctx context.Context, link string, body []byte) {
	if c.cache == nil {
		return
	}
	_, err := c.cache.Put(ctx, resourcecache.PutInput{
		Namespace: c.namespace,
		Key:       link,
		Body:      body,
		TTL:       c.cacheTTL,
	})
	if err != nil {
		slog.Warn("resource cache write failed", "link", link, "error", err)
	}
}

func (c *client) GetPokemon(ctx context.Context, idOrName string) (*pokedex.Pokemon, error) {
	var raw apiPokemon
	if err := c.getByIDOrName(ctx, KindPokemon, idOrName, &raw); err != nil {
		return nil, err
	}
	return convertPokemon(&raw), nil
}

func (c *client) GetPokemonByLink(ctx context.Context, link string) (*pokedex.Pokemon, error) {
	var raw apiPokemon
	if err := c.getByLink(ctx, KindPokemon, link, &raw); err != nil {
		return nil, err
	}
	return convertPokemon(&raw), nil
}

func (c *client) ListPokemon(ctx context.Context, input *ListPokemonInput) (*pokedex.Page, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.Offset < 0 || input.Limit < 1 {
		return nil, errors.InvalidArgumentf("invalid page offset=%d limit=%d", input.Offset, input.Limit)
	}

	link := fmt.Sprintf("%s/%s/?offset=%d&limit=%d", c.baseURL, KindPokemon, input.Offset, input.Limit)
	var raw apiPage
	if err := c.fetch(ctx, KindPokemon, "list", link, &raw); err != nil {
		return nil, err
	}
	return convertPage(&raw), nil
}

func (c *client) GetSpecies(ctx context.Context, idOrName string) (*pokedex.Species, error) {
	var raw apiSpecies
	if err := c.getByIDOrName(ctx, KindSpecies, idOrName, &raw); err != nil {
		return nil, err
	}
	return convertSpecies(&raw), nil
}

func (c *client) GetEvolutionChain(ctx context.Context, link string) (*pokedex.EvolutionTree, error) {
	var raw apiEvolutionChain
	if err := c.getByLink(ctx, KindEvolutionChain, link, &raw); err != nil {
		return nil, err
	}
	return convertEvolutionChain(&raw), nil
}

func (c *client) GetType(ctx context.Context, idOrName string) (*pokedex.Type, error) {
	var raw apiType
	if err := c.getByIDOrName(ctx, KindType, idOrName, &raw); err != nil {
		return nil, err
	}
	return convertType(&raw), nil
}

func (c *client) GetMove(ctx context.Context, idOrName string) (*pokedex.Move, error) {
	var raw apiMove
	if err := c.getByIDOrName(ctx, KindMove, idOrName, &raw); err != nil {
		return nil, err
	}
	return convertMove(&raw), nil
}

func (c *client) GetGeneration(ctx context.Context, idOrName string) (*pokedex.Generation, error) {
	var raw apiGeneration
	if err := c.getByIDOrName(ctx, KindGeneration, idOrName, &raw); err != nil {
		return nil, err
	}
	return convertGeneration(&raw), nil
}

func (c *client) GetRegion(ctx context.Context, idOrName string) (*pokedex.Region, error) {
	var raw apiRegion
	if err := c.getByIDOrName(ctx, KindRegion, idOrName, &raw); err != nil {
		return nil, err
	}
	return convertRegion(&raw), nil
}

func (c *client) GetPokedex(ctx context.Context, link string) (*pokedex.Pokedex, error) {
	var raw apiPokedex
	if err := c.getByLink(ctx, KindPokedex, link, &raw); err != nil {
		return nil, err
	}
	return convertPokedex(&raw), nil
}

func (c *client) ListTypes(ctx context.Context) ([]pokedex.Ref, error) {
	return c.listAll(ctx, KindType)
}

func (c *client) ListGenerations(ctx context.Context) ([]pokedex.Ref, error) {
	return c.listAll(ctx, KindGeneration)
}

func (c *client) ListRegions(ctx context.Context) ([]pokedex.Ref, error) {
	return c.listAll(ctx, KindRegion)
}

// listAll reads a whole enumeration resource in one page
func (c *client) listAll(ctx context.Context, kind Kind) ([]pokedex.Ref, error) {
	link := fmt.Sprintf("%s/%s/?limit=%d", c.baseURL, kind, enumerationLimit)
	var raw apiPage
	if err := c.fetch(ctx, kind, "list", link, &raw); err != nil {
		return nil, err
	}
	return toRefs(raw.Results), nil
}
