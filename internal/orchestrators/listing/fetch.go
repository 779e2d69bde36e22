package listing

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/dex-api/internal/entities/pokedex"
	"github.com/KirkDiggler/dex-api/internal/errors"
	"github.com/KirkDiggler/dex-api/internal/pkg/links"
)

// fetch runs one selector load and reports it back to the engine
func (e *engine) fetch(ctx context.Context, sel Selector, token uint64, key string) {
	res := result{selector: sel, token: token, key: key}

	switch sel {
	case SelectorAll:
		res.refs, res.total, res.err = e.loadAll(ctx)
	case SelectorRegion:
		res.refs, res.err = e.loadRegion(ctx, key)
	case SelectorGeneration:
		res.refs, res.err = e.loadGeneration(ctx, key)
	case SelectorTypes:
		res.refs, res.err = e.loadTypes(ctx, strings.Split(key, ","))
	}

	select {
	case e.results <- res:
	case <-e.ctx.Done():
	}
}

// loadAll reads the catalog entries and the reported total concurrently
func (e *engine) loadAll(ctx context.Context) ([]pokedex.Ref, int, error) {
	var (
		refs  []pokedex.Ref
		total int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		refs, err = e.catalog.Entries(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = e.catalog.TotalCount(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, 0, errors.Wrap(err, "failed to load the pokemon list")
	}

	return refs, total, nil
}

// loadRegion walks the region's pokedexes one by one. A pokedex that fails
// is skipped so the rest of the region still shows.
func (e *engine) loadRegion(ctx context.Context, name string) ([]pokedex.Ref, error) {
	region, err := e.client.GetRegion(ctx, name)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load region %s", name)
	}

	var entries []pokedex.Ref
	for _, dex := range region.Pokedexes {
		pd, err := e.client.GetPokedex(ctx, dex.Link)
		if err != nil {
			if ctx.Err() != nil {
				return nil, errors.Wrapf(err, "failed to load region %s", name)
			}
			slog.Warn("skipping pokedex", "region", name, "pokedex", dex.Name, "error", err)
			continue
		}
		entries = append(entries, pd.Entries...)
	}

	refs := DedupeByName(speciesToPokemon(entries))
	pokedex.SortByID(refs)
	return refs, nil
}

func (e *engine) loadGeneration(ctx context.Context, name string) ([]pokedex.Ref, error) {
	gen, err := e.client.GetGeneration(ctx, name)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load generation %s", name)
	}

	refs := speciesToPokemon(gen.Species)
	pokedex.SortByID(refs)
	return refs, nil
}

// loadTypes fetches every selected type and keeps the pokemon in all of them
func (e *engine) loadTypes(ctx context.Context, names []string) ([]pokedex.Ref, error) {
	members := make([][]pokedex.Ref, len(names))

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			t, err := e.client.GetType(gctx, name)
			if err != nil {
				return errors.Wrapf(err, "failed to load type %s", name)
			}
			members[i] = t.Members
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	refs := Intersect(members...)
	pokedex.SortByID(refs)
	return refs, nil
}

func speciesToPokemon(refs []pokedex.Ref) []pokedex.Ref {
	out := make([]pokedex.Ref, len(refs))
	for i, ref := range refs {
		out[i] = pokedex.Ref{Name: ref.Name, Link: links.SpeciesToPokemon(ref.Link)}
	}
	return out
}
