package detail

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/KirkDiggler/dex-api/internal/entities/pokedex"
	"github.com/KirkDiggler/dex-api/internal/errors"
	"github.com/KirkDiggler/dex-api/internal/pkg/links"
)

// resolveTree attaches a summary to every node of tree. Fetches start in
// arena order, which is pre-order, and a node starts only after its parent
// finished. A node that cannot be fetched gets a placeholder and a warning;
// its children are still resolved.
func (o *orchestrator) resolveTree(ctx context.Context, tree *pokedex.EvolutionTree) ([]string, error) {
	n := len(tree.Nodes)
	done := make([]chan struct{}, n)
	for i := range done {
		done[i] = make(chan struct{})
	}
	problems := make([]string, n)
	sem := semaphore.NewWeighted(o.maxFetches)

	var wg sync.WaitGroup
	dispatch := func() error {
		for i := range tree.Nodes {
			if parent := tree.Nodes[i].Parent; parent != pokedex.NoParent {
				select {
				case <-done[parent]:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			if err := sem.Acquire(ctx, 1); err != nil {
				return err
			}

			species := tree.Nodes[i].Species
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer sem.Release(1)
				defer close(done[i])
				tree.Nodes[i].Summary, problems[i] = o.summarize(ctx, species)
			}()
		}
		return nil
	}

	err := dispatch()
	wg.Wait()
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var warnings []string
	for _, p := range problems {
		if p != "" {
			warnings = append(warnings, p)
		}
	}
	return warnings, nil
}

// summarize fetches the summary of one node, or returns a placeholder built
// from the species name together with the reason
func (o *orchestrator) summarize(ctx context.Context, species pokedex.Ref) (*pokedex.Summary, string) {
	placeholder := &pokedex.Summary{Name: species.Name}

	id, err := links.ID(species.Link)
	if err != nil {
		slog.Warn("evolution node has no usable id", "species", species.Name, "link", species.Link)
		return placeholder, errors.Describe(errors.PartialResolutionf("evolution %s has no usable id", species.Name))
	}

	p, err := o.client.GetPokemon(ctx, strconv.Itoa(id))
	if err != nil {
		slog.Warn("evolution node fell back to a placeholder", "species", species.Name, "error", err)
		return placeholder, errors.Describe(
			errors.WrapWithCodef(err, errors.CodePartialResolution, "could not resolve evolution %s", species.Name))
	}

	return p.Summary(), ""
}
