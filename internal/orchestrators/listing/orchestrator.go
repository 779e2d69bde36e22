// Package listing aggregates the browsable pokemon list from region,
// generation, type and search filters.
//
// One goroutine owns the filter and candidate lists. Callers send events
// and fetches report back as tagged results, so a load that has been
// superseded can never overwrite newer state.
package listing

//go:generate mockgen -destination=mock/mock_service.go -package=listingmock github.com/KirkDiggler/dex-api/internal/orchestrators/listing Service

import (
	"context"
	"log/slog"
	"slices"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/KirkDiggler/dex-api/internal/clients/pokeapi"
	"github.com/KirkDiggler/dex-api/internal/entities/pokedex"
	"github.com/KirkDiggler/dex-api/internal/errors"
	"github.com/KirkDiggler/dex-api/internal/services/catalog"
)

// DefaultPageSize is used when Config.PageSize is zero
const DefaultPageSize = 20

// Service is a running list aggregation engine
type Service interface {
	// Apply feeds events in order and waits until no load is pending
	Apply(ctx context.Context, events ...Event) (*View, error)

	// View returns the latest snapshot without waiting
	View() *View

	// Close stops the engine and cancels pending loads
	Close()
}

// Config holds the dependencies for a listing engine
type Config struct {
	Client   pokeapi.Client
	Catalog  catalog.Service
	PageSize int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.PageSize == 0 {
		c.PageSize = DefaultPageSize
	}

	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.PageSize < 0 {
		vb.Field("PageSize", "must be positive")
	}
	return vb.Build()
}

type command struct {
	events []Event
	reply  chan *View
}

type result struct {
	selector Selector
	token    uint64
	key      string
	refs     []pokedex.Ref
	total    int
	err      error
}

// candidate is one selector's list. key is the selector value refs belong
// to; pending is set while a fetch for pendingKey is in flight. failed marks
// a key whose last load errored and is retried on the next request for it.
type candidate struct {
	key        string
	refs       []pokedex.Ref
	loaded     bool
	failed     bool
	pending    bool
	pendingKey string
	token      uint64
	cancel     context.CancelFunc
}

type engine struct {
	client  pokeapi.Client
	catalog catalog.Service

	commands chan command
	results  chan result
	view     atomic.Pointer[View]

	ctx       context.Context
	stop      context.CancelFunc
	done      chan struct{}
	closeOnce sync.Once

	// owned by run
	filter         Filter
	candidates     map[Selector]*candidate
	tokens         uint64
	totalAvailable int
	errMsg         string
	errFrom        Selector
	waiters        []chan *View
}

// New starts an engine and begins loading the unfiltered list
func New(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ctx, stop := context.WithCancel(context.Background())
	e := &engine{
		client:   cfg.Client,
		catalog:  cfg.Catalog,
		commands: make(chan command),
		results:  make(chan result, 4),
		ctx:      ctx,
		stop:     stop,
		done:     make(chan struct{}),
		filter:   Filter{PageSize: cfg.PageSize},
		candidates: map[Selector]*candidate{
			SelectorRegion:     {},
			SelectorGeneration: {},
			SelectorTypes:      {},
			SelectorAll:        {},
		},
	}

	e.ensureAll()
	e.publish()
	go e.run()
	return e, nil
}

func (e *engine) Apply(ctx context.Context, events ...Event) (*View, error) {
	for _, ev := range events {
		if ev.kind == eventPage && (ev.index < 0 || ev.size < 0) {
			return nil, errors.InvalidArgumentf("page index and size must not be negative, got %d and %d", ev.index, ev.size)
		}
	}

	cmd := command{events: events, reply: make(chan *View, 1)}
	select {
	case e.commands <- cmd:
	case <-ctx.Done():
		return nil, errors.WrapWithCode(ctx.Err(), errors.CodeCanceled, "listing update abandoned")
	case <-e.done:
		return nil, errors.FailedPreconditionf("listing engine is closed")
	}

	select {
	case v := <-cmd.reply:
		return v, nil
	case <-ctx.Done():
		return nil, errors.WrapWithCode(ctx.Err(), errors.CodeCanceled, "listing update abandoned")
	case <-e.done:
		return nil, errors.FailedPreconditionf("listing engine is closed")
	}
}

func (e *engine) View() *View {
	return e.view.Load()
}

func (e *engine) Close() {
	e.closeOnce.Do(func() {
		e.stop()
		<-e.done
	})
}

func (e *engine) run() {
	defer close(e.done)

	for {
		select {
		case <-e.ctx.Done():
			e.cancelAll()
			return
		case cmd := <-e.commands:
			for _, ev := range cmd.events {
				e.handle(ev)
			}
			e.ensureAll()
			e.publish()
			e.waiters = append(e.waiters, cmd.reply)
			e.flushIfSettled()
		case res := <-e.results:
			e.receive(res)
			e.publish()
			e.flushIfSettled()
		}
	}
}

func (e *engine) handle(ev Event) {
	switch ev.kind {
	case eventRegion:
		name := normalizeName(ev.value)
		if name == e.filter.Region && !e.candidates[SelectorRegion].failed {
			return
		}
		e.errMsg = ""
		e.filter.Region = name
		e.filter.PageIndex = 0
		e.ensure(SelectorRegion, name)

	case eventGeneration:
		name := normalizeName(ev.value)
		if name == e.filter.Generation && !e.candidates[SelectorGeneration].failed {
			return
		}
		e.errMsg = ""
		e.filter.Generation = name
		e.filter.PageIndex = 0
		e.ensure(SelectorGeneration, name)

	case eventTypes:
		types := normalizeTypes(ev.types)
		if slices.Equal(types, e.filter.Types) && !e.candidates[SelectorTypes].failed {
			return
		}
		e.errMsg = ""
		e.filter.Types = types
		e.filter.PageIndex = 0
		// never show one type set's members under another's filter
		c := e.candidates[SelectorTypes]
		c.refs, c.key, c.loaded, c.failed = nil, "", false, false
		e.ensure(SelectorTypes, strings.Join(types, ","))

	case eventSearch:
		if ev.value == e.filter.Search {
			return
		}
		e.filter.Search = ev.value
		if e.filter.Active() == SelectorAll {
			e.filter.PageIndex = 0
		}

	case eventPage:
		e.filter.PageIndex = ev.index
		if ev.size > 0 {
			e.filter.PageSize = ev.size
		}
	}
}

// ensure starts a load for key unless the candidate already holds or is
// loading it. An empty key cancels and empties the candidate.
func (e *engine) ensure(sel Selector, key string) {
	c := e.candidates[sel]

	if key == "" {
		e.cancel(c)
		c.refs, c.key, c.loaded, c.failed = nil, "", false, false
		return
	}
	if c.pending && c.pendingKey == key {
		return
	}
	if !c.pending && c.loaded && c.key == key {
		return
	}

	e.cancel(c)
	c.failed = false
	e.tokens++
	ctx, cancel := context.WithCancel(e.ctx)
	c.pending, c.pendingKey, c.token, c.cancel = true, key, e.tokens, cancel

	go e.fetch(ctx, sel, c.token, key)
}

func (e *engine) ensureAll() {
	e.ensure(SelectorAll, string(SelectorAll))
}

func (e *engine) cancel(c *candidate) {
	if c.cancel != nil {
		c.cancel()
	}
	c.pending, c.pendingKey, c.cancel = false, "", nil
}

func (e *engine) cancelAll() {
	for _, c := range e.candidates {
		e.cancel(c)
	}
}

func (e *engine) receive(res result) {
	c := e.candidates[res.selector]
	if !c.pending || res.token != c.token {
		slog.Debug("discarding stale list load", "selector", res.selector, "key", res.key)
		return
	}
	e.cancel(c)

	if res.err != nil {
		slog.Warn("list load failed", "selector", res.selector, "key", res.key, "error", res.err)
		e.errMsg, e.errFrom = errors.Describe(res.err), res.selector
		// the selector stays as requested, only its list is emptied
		c.refs, c.key, c.loaded, c.failed = nil, res.key, false, true
		return
	}

	c.refs, c.key, c.loaded = res.refs, res.key, true
	if e.errFrom == res.selector {
		e.errMsg = ""
	}
	if res.selector == SelectorAll {
		e.totalAvailable = res.total
	}
	e.filter.PageIndex = 0
}

func (e *engine) settled() bool {
	for _, c := range e.candidates {
		if c.pending {
			return false
		}
	}
	return true
}

func (e *engine) flushIfSettled() {
	if !e.settled() {
		return
	}
	v := e.view.Load()
	for _, w := range e.waiters {
		w <- v
	}
	e.waiters = nil
}

func (e *engine) publish() {
	active := e.filter.Active()
	searched := Search(e.candidates[active].refs, e.filter.Search)
	items, index, pages := Paginate(searched, e.filter.PageIndex, e.filter.PageSize)
	e.filter.PageIndex = index

	e.view.Store(&View{
		Filter:         e.filter.clone(),
		Items:          items,
		Total:          len(searched),
		PageIndex:      index,
		PageSize:       e.filter.PageSize,
		PageCount:      pages,
		TotalAvailable: e.totalAvailable,
		Active:         active,
		Loading:        !e.settled(),
		Error:          e.errMsg,
	})
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func normalizeTypes(names []string) []string {
	seen := make(map[string]bool, len(names))
	var out []string
	for _, name := range names {
		name = normalizeName(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
