// Package detail aggregates everything shown for one pokemon: the pokemon
// itself, its species text, its resolved evolution tree and the move modal.
//
// A newer Show or Navigate supersedes any request still in flight. The
// superseded call returns an Aborted error and never touches the state.
package detail

//go:generate mockgen -destination=mock/mock_service.go -package=detailmock github.com/KirkDiggler/dex-api/internal/orchestrators/detail Service

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/KirkDiggler/dex-api/internal/clients/pokeapi"
	"github.com/KirkDiggler/dex-api/internal/entities/pokedex"
	"github.com/KirkDiggler/dex-api/internal/errors"
	"github.com/KirkDiggler/dex-api/internal/pkg/idgen"
)

// DefaultMaxEvolutionFetches bounds concurrent evolution node fetches
const DefaultMaxEvolutionFetches = 4

// Service defines the detail view operations
type Service interface {
	// Show resets the view and loads a pokemon with its extended details
	Show(ctx context.Context, input *ShowInput) (*View, error)

	// Navigate replaces the shown pokemon while the previous species and
	// evolution stay visible until the new ones arrive
	Navigate(ctx context.Context, input *NavigateInput) (*View, error)

	// Moves derives the filtered, sorted move list of the shown pokemon
	Moves(ctx context.Context, input *MovesInput) (*MovesOutput, error)

	// ViewMove loads a move into the modal
	ViewMove(ctx context.Context, input *ViewMoveInput) (*MoveView, error)

	// CloseMove empties the modal
	CloseMove()

	// View returns a snapshot of the current state
	View() *View
}

// Config holds the dependencies for the detail orchestrator
type Config struct {
	Client pokeapi.Client
	// MaxEvolutionFetches is optional; 1 resolves nodes strictly in pre-order
	MaxEvolutionFetches int
	// IDGenerator keys moves whose link has no id (optional)
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.MaxEvolutionFetches == 0 {
		c.MaxEvolutionFetches = DefaultMaxEvolutionFetches
	}
	if c.IDGenerator == nil {
		c.IDGenerator = idgen.NewRandom("move")
	}

	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.MaxEvolutionFetches < 0 {
		vb.Field("MaxEvolutionFetches", "must be positive")
	}
	return vb.Build()
}

type state struct {
	pokemon *pokedex.Pokemon
	loading bool
	err     string

	species         *pokedex.Species
	evolution       *pokedex.EvolutionTree
	extendedLoading bool
	extendedErr     string
	warnings        []string

	move        *MoveView
	moveLoading bool
	moveErr     string
}

type orchestrator struct {
	client     pokeapi.Client
	maxFetches int64
	ids        idgen.Generator

	mu         sync.Mutex
	st         state
	gen        uint64
	pending    uint64
	cancel     context.CancelFunc
	moveGen    uint64
	moveCancel context.CancelFunc
}

// NewOrchestrator creates a new detail orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &orchestrator{
		client:     cfg.Client,
		maxFetches: int64(cfg.MaxEvolutionFetches),
		ids:        cfg.IDGenerator,
	}, nil
}

func (o *orchestrator) Show(ctx context.Context, input *ShowInput) (*View, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	id := strings.TrimSpace(input.ID)
	if input.Pokemon == nil && id == "" {
		return nil, errors.InvalidArgument("pokemon or id is required")
	}

	gen, ctx, cancel := o.begin(ctx, func(s *state) {
		*s = state{loading: true}
	})
	defer o.finish(gen, cancel)

	return o.load(ctx, gen, input.Pokemon, id)
}

func (o *orchestrator) Navigate(ctx context.Context, input *NavigateInput) (*View, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	id := strings.TrimSpace(input.ID)
	if id == "" {
		return nil, errors.InvalidArgument("id is required")
	}

	// a request in flight must still be superseded, even by the pokemon on screen
	o.mu.Lock()
	current, idle := o.st.pokemon, o.pending == 0
	o.mu.Unlock()
	if idle && current != nil && (id == strconv.Itoa(current.ID) || strings.EqualFold(id, current.Name)) {
		return o.View(), nil
	}

	gen, ctx, cancel := o.begin(ctx, func(s *state) {
		s.loading = true
		s.err = ""
		s.extendedErr = ""
	})
	defer o.finish(gen, cancel)

	return o.load(ctx, gen, nil, id)
}

// begin supersedes the request in flight, closes the move modal and
// applies reset to the state
func (o *orchestrator) begin(ctx context.Context, reset func(*state)) (uint64, context.Context, context.CancelFunc) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.cancel != nil {
		o.cancel()
	}
	o.gen++
	o.pending = o.gen
	ctx, cancel := context.WithCancel(ctx)
	o.cancel = cancel

	o.closeMoveLocked()
	reset(&o.st)
	return o.gen, ctx, cancel
}

// finish releases the context of gen and marks it settled when no newer
// request replaced it
func (o *orchestrator) finish(gen uint64, cancel context.CancelFunc) {
	cancel()

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.pending == gen {
		o.pending = 0
	}
}

// update applies fn when gen is still the latest request
func (o *orchestrator) update(gen uint64, fn func(*state)) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if gen != o.gen {
		return false
	}
	fn(&o.st)
	return true
}

func superseded() error {
	return errors.Aborted("request was superseded by a newer one")
}

func (o *orchestrator) load(ctx context.Context, gen uint64, p *pokedex.Pokemon, id string) (*View, error) {
	if p == nil {
		fetched, err := o.client.GetPokemon(ctx, id)
		if err != nil {
			err = errors.Wrapf(err, "failed to load pokemon %s", id)
			if !o.update(gen, func(s *state) {
				s.loading = false
				s.err = errors.Describe(err)
			}) {
				return nil, superseded()
			}
			return nil, err
		}
		p = fetched
	}

	if !o.update(gen, func(s *state) {
		s.pokemon = p
		s.loading = false
		s.err = ""
		s.extendedLoading = true
		s.extendedErr = ""
	}) {
		return nil, superseded()
	}

	if err := o.loadExtended(ctx, gen, p); err != nil {
		return nil, err
	}
	return o.View(), nil
}

// loadExtended runs phase two. Its failures land in the extended error slot
// and only a superseded request is reported to the caller.
func (o *orchestrator) loadExtended(ctx context.Context, gen uint64, p *pokedex.Pokemon) error {
	species, err := o.client.GetSpecies(ctx, strconv.Itoa(p.ID))
	if err != nil {
		return o.failExtended(gen, errors.Wrapf(err, "failed to load species of %s", p.Name))
	}
	if !o.update(gen, func(s *state) {
		s.species = species
	}) {
		return superseded()
	}

	var (
		tree     *pokedex.EvolutionTree
		warnings []string
	)
	if species.EvolutionChainLink != "" {
		tree, err = o.client.GetEvolutionChain(ctx, species.EvolutionChainLink)
		if err != nil {
			return o.failExtended(gen, errors.Wrapf(err, "failed to load evolution chain of %s", p.Name))
		}
		warnings, err = o.resolveTree(ctx, tree)
		if err != nil {
			return o.failExtended(gen, errors.Wrapf(err, "failed to resolve evolution chain of %s", p.Name))
		}
	}

	if !o.update(gen, func(s *state) {
		s.evolution = tree
		s.warnings = warnings
		s.extendedLoading = false
	}) {
		return superseded()
	}
	return nil
}

func (o *orchestrator) failExtended(gen uint64, err error) error {
	if !o.update(gen, func(s *state) {
		s.species = nil
		s.evolution = nil
		s.warnings = nil
		s.extendedLoading = false
		s.extendedErr = errors.Describe(err)
	}) {
		return superseded()
	}
	return nil
}

func (o *orchestrator) Moves(_ context.Context, input *MovesInput) (*MovesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	o.mu.Lock()
	p := o.st.pokemon
	o.mu.Unlock()
	if p == nil {
		return nil, errors.FailedPreconditionf("no pokemon is shown")
	}

	entries := DeriveMoves(p.Moves, o.ids)
	available := AvailableLearnMethods(entries)
	entries = FilterMoves(entries, input.Method)
	if err := SortMoves(entries, input.SortKey, input.Descending); err != nil {
		return nil, err
	}

	return &MovesOutput{Moves: entries, AvailableLearnMethods: available}, nil
}

func (o *orchestrator) ViewMove(ctx context.Context, input *ViewMoveInput) (*MoveView, error) {
	if input == nil || strings.TrimSpace(input.Move) == "" {
		return nil, errors.InvalidArgument("move is required")
	}

	o.mu.Lock()
	o.closeMoveLocked()
	gen := o.moveGen
	ctx, cancel := context.WithCancel(ctx)
	o.moveCancel = cancel
	o.st.moveLoading = true
	o.mu.Unlock()
	defer cancel()

	move, err := o.client.GetMove(ctx, strings.TrimSpace(input.Move))

	o.mu.Lock()
	defer o.mu.Unlock()
	if gen != o.moveGen {
		return nil, errors.Aborted("move lookup was superseded")
	}
	o.st.moveLoading = false
	if err != nil {
		err = errors.Wrapf(err, "failed to load move %s", input.Move)
		o.st.moveErr = errors.Describe(err)
		return nil, err
	}

	o.st.move = &MoveView{
		Move:        move,
		ShortEffect: move.ShortEffect(),
		Description: move.Description(),
	}
	mv := *o.st.move
	return &mv, nil
}

func (o *orchestrator) CloseMove() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.closeMoveLocked()
}

func (o *orchestrator) closeMoveLocked() {
	o.moveGen++
	if o.moveCancel != nil {
		o.moveCancel()
		o.moveCancel = nil
	}
	o.st.move = nil
	o.st.moveLoading = false
	o.st.moveErr = ""
}

func (o *orchestrator) View() *View {
	o.mu.Lock()
	defer o.mu.Unlock()

	v := &View{
		Pokemon:         o.st.pokemon,
		Loading:         o.st.loading,
		Error:           o.st.err,
		Species:         o.st.species,
		Evolution:       o.st.evolution.Clone(),
		ExtendedLoading: o.st.extendedLoading,
		ExtendedError:   o.st.extendedErr,
		Warnings:        append([]string(nil), o.st.warnings...),
		MoveLoading:     o.st.moveLoading,
		MoveError:       o.st.moveErr,
	}
	if o.st.species != nil {
		v.Description = o.st.species.Description()
	}
	if o.st.move != nil {
		mv := *o.st.move
		v.Move = &mv
	}
	return v
}
