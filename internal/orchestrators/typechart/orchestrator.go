// Package typechart computes type effectiveness from relation data that is
// fetched once per process and never mutated afterwards.
package typechart

//go:generate mockgen -destination=mock/mock_service.go -package=typechartmock github.com/KirkDiggler/dex-api/internal/orchestrators/typechart Service

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/dex-api/internal/clients/pokeapi"
	"github.com/KirkDiggler/dex-api/internal/entities/pokedex"
	"github.com/KirkDiggler/dex-api/internal/errors"
	"github.com/KirkDiggler/dex-api/internal/pkg/lazy"
)

const (
	// DefaultFetchConcurrency bounds parallel type detail fetches
	DefaultFetchConcurrency = 8

	maxDefendingTypes = 2
)

// Service defines the type effectiveness operations.
// Every query loads the chart on first use; concurrent first callers share
// one load.
type Service interface {
	// Load makes sure the chart is ready
	Load(ctx context.Context) error

	// State reports the chart lifecycle
	State() lazy.State

	// ListTypes returns the known types sorted by name
	ListTypes(ctx context.Context) (*ListTypesOutput, error)

	// Multiplier composes the attacker's multiplier over 1 or 2 defenders
	Multiplier(ctx context.Context, input *MultiplierInput) (*MultiplierOutput, error)

	// Effectiveness is Multiplier with a verdict message and a defender summary
	Effectiveness(ctx context.Context, input *EffectivenessInput) (*EffectivenessOutput, error)

	// Coverage lists every type by multiplier descending, ties by display name
	Coverage(ctx context.Context, input *CoverageInput) (*CoverageOutput, error)

	// Profile lists every attacker by multiplier ascending, ties by display name
	Profile(ctx context.Context, input *ProfileInput) (*ProfileOutput, error)
}

// Config holds the dependencies for the type chart orchestrator
type Config struct {
	Client pokeapi.Client
	// FetchConcurrency is optional and defaults to DefaultFetchConcurrency
	FetchConcurrency int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.FetchConcurrency == 0 {
		c.FetchConcurrency = DefaultFetchConcurrency
	}

	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.FetchConcurrency < 0 {
		vb.Field("FetchConcurrency", "must be positive")
	}
	return vb.Build()
}

type chart struct {
	table pokedex.RelationTable
	types []pokedex.TypeInfo
	known map[string]pokedex.TypeInfo
}

type orchestrator struct {
	client      pokeapi.Client
	concurrency int
	chart       *lazy.Value[*chart]
}

// NewOrchestrator creates a new type chart orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := &orchestrator{
		client:      cfg.Client,
		concurrency: cfg.FetchConcurrency,
	}
	o.chart = lazy.New(o.load)
	return o, nil
}

func (o *orchestrator) load(ctx context.Context) (*chart, error) {
	slog.Info("loading type chart")

	refs, err := o.client.ListTypes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "could not retrieve the list of types")
	}

	var known []pokedex.TypeInfo
	for _, ref := range refs {
		info, ok := pokedex.LookupType(ref.Name)
		if !ok {
			slog.Warn("ignoring type without metadata", "type", ref.Name)
			continue
		}
		known = append(known, info)
	}
	if len(known) == 0 && len(refs) > 0 {
		slog.Warn("type list was filtered completely, check type metadata against the API", "listed", len(refs))
	}
	sort.Slice(known, func(i, j int) bool { return known[i].Name < known[j].Name })

	details := make([]*pokedex.Type, len(known))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for i, info := range known {
		g.Go(func() error {
			t, err := o.client.GetType(gctx, info.Name)
			if err != nil {
				return errors.Wrapf(err, "error fetching type details for %s", info.Name)
			}
			details[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	table := make(pokedex.RelationTable, len(details))
	byName := make(map[string]pokedex.TypeInfo, len(known))
	for i, t := range details {
		table[t.Name] = t.Relations
		byName[known[i].Name] = known[i]
	}

	slog.Info("type chart ready", "types", len(known))
	return &chart{table: table, types: known, known: byName}, nil
}

func (o *orchestrator) Load(ctx context.Context) error {
	_, err := o.chart.Get(ctx)
	return err
}

func (o *orchestrator) State() lazy.State {
	return o.chart.State()
}

func (o *orchestrator) ListTypes(ctx context.Context) (*ListTypesOutput, error) {
	c, err := o.chart.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &ListTypesOutput{Types: append([]pokedex.TypeInfo(nil), c.types...)}, nil
}

func (o *orchestrator) Multiplier(ctx context.Context, input *MultiplierInput) (*MultiplierOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	c, attacking, defending, err := o.matchup(ctx, input.Attacking, input.Defending)
	if err != nil {
		return nil, err
	}

	return &MultiplierOutput{Multiplier: c.against(attacking, defending)}, nil
}

func (o *orchestrator) Effectiveness(ctx context.Context, input *EffectivenessInput) (*EffectivenessOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	c, attacking, defending, err := o.matchup(ctx, input.Attacking, input.Defending)
	if err != nil {
		return nil, err
	}

	multiplier := c.against(attacking, defending)
	summary := make([]string, len(defending))
	for i, name := range defending {
		summary[i] = displayName(name)
	}

	return &EffectivenessOutput{
		Multiplier:       multiplier,
		Message:          verdict(multiplier),
		DefendingSummary: strings.Join(summary, " / "),
	}, nil
}

func (o *orchestrator) Coverage(ctx context.Context, input *CoverageInput) (*CoverageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	c, err := o.chart.Get(ctx)
	if err != nil {
		return nil, err
	}
	attacking, err := c.attacker(input.Attacking)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, len(c.types))
	for i, def := range c.types {
		entries[i] = Entry{Type: def, Multiplier: c.table.Multiplier(attacking, def.Name)}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Multiplier != entries[j].Multiplier {
			return entries[i].Multiplier > entries[j].Multiplier
		}
		return entries[i].Type.DisplayName < entries[j].Type.DisplayName
	})

	return &CoverageOutput{Entries: entries}, nil
}

func (o *orchestrator) Profile(ctx context.Context, input *ProfileInput) (*ProfileOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	c, err := o.chart.Get(ctx)
	if err != nil {
		return nil, err
	}
	defending, err := c.defenders(input.Defending)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, len(c.types))
	for i, att := range c.types {
		entries[i] = Entry{Type: att, Multiplier: c.against(att.Name, defending)}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Multiplier != entries[j].Multiplier {
			return entries[i].Multiplier < entries[j].Multiplier
		}
		return entries[i].Type.DisplayName < entries[j].Type.DisplayName
	})

	return &ProfileOutput{Entries: entries}, nil
}

func (o *orchestrator) matchup(ctx context.Context, attacking string, defending []string) (*chart, string, []string, error) {
	c, err := o.chart.Get(ctx)
	if err != nil {
		return nil, "", nil, err
	}
	att, err := c.attacker(attacking)
	if err != nil {
		return nil, "", nil, err
	}
	defs, err := c.defenders(defending)
	if err != nil {
		return nil, "", nil, err
	}
	return c, att, defs, nil
}

// attacker returns the canonical name of a known attacking type
func (c *chart) attacker(name string) (string, error) {
	name = normalizeType(name)
	if name == "" {
		return "", errors.InvalidArgument("attacking type is required")
	}
	if _, ok := c.known[name]; !ok {
		return "", errors.InvalidArgumentf("unknown attacking type %q", name).WithMeta("type", name)
	}
	return name, nil
}

// defenders validates the defending list and drops names outside the chart.
// At least one name must be known.
func (c *chart) defenders(names []string) ([]string, error) {
	if len(names) == 0 || len(names) > maxDefendingTypes {
		return nil, errors.InvalidArgumentf("between 1 and %d defending types are required, got %d",
			maxDefendingTypes, len(names))
	}

	out := make([]string, 0, len(names))
	for _, name := range names {
		name = normalizeType(name)
		if _, ok := c.known[name]; !ok {
			slog.Warn("ignoring unknown defending type", "type", name)
			continue
		}
		out = append(out, name)
	}
	if len(out) == 0 {
		return nil, errors.InvalidArgumentf("no known defending type in %q", strings.Join(names, ", "))
	}
	return out, nil
}

func normalizeType(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (c *chart) against(attacking string, defending []string) float64 {
	return c.table.Against(attacking, defending...)
}

func verdict(multiplier float64) string {
	switch {
	case multiplier >= pokedex.EffectDouble:
		return MessageSuperEffective
	case multiplier == pokedex.EffectNeutral:
		return MessageNormal
	case multiplier > pokedex.EffectNone:
		return MessageNotVery
	default:
		return MessageNoEffect
	}
}

func displayName(name string) string {
	if info, ok := pokedex.LookupType(name); ok {
		return info.DisplayName
	}
	return name
}
