package detail

import (
	"sort"
	"strconv"

	"github.com/KirkDiggler/dex-api/internal/entities/pokedex"
	"github.com/KirkDiggler/dex-api/internal/errors"
	"github.com/KirkDiggler/dex-api/internal/pkg/idgen"
	"github.com/KirkDiggler/dex-api/internal/pkg/links"
	"github.com/KirkDiggler/dex-api/internal/pkg/names"
)

// DeriveMoves builds one entry per learnable move. Moves whose link has no
// id get a key from ids.
func DeriveMoves(moves []pokedex.MoveLearning, ids idgen.Generator) []MoveEntry {
	out := make([]MoveEntry, 0, len(moves))
	for _, m := range moves {
		entry := MoveEntry{
			Name:        m.Move.Name,
			DisplayName: names.Display(m.Move.Name),
			Methods:     learnMethods(m.Details),
		}
		if id, err := links.ID(m.Move.Link); err == nil {
			entry.Key = strconv.Itoa(id)
		} else {
			entry.Key = ids.Generate()
		}
		entry.Method, entry.Level = primaryMethod(m.Details)
		out = append(out, entry)
	}
	return out
}

// primaryMethod is level-up at the lowest positive level when there is one,
// otherwise the first listed method
func primaryMethod(details []pokedex.LearnDetail) (string, *int) {
	var best *int
	for _, d := range details {
		if d.Method != pokedex.LearnMethodLevelUp || d.Level <= 0 {
			continue
		}
		if best == nil || d.Level < *best {
			level := d.Level
			best = &level
		}
	}
	if best != nil {
		return pokedex.LearnMethodLevelUp, best
	}

	if len(details) == 0 {
		return "", nil
	}
	first := details[0]
	if first.Level > 0 {
		level := first.Level
		return first.Method, &level
	}
	return first.Method, nil
}

func learnMethods(details []pokedex.LearnDetail) []string {
	seen := make(map[string]bool, len(details))
	out := make([]string, 0, len(details))
	for _, d := range details {
		if d.Method == "" || seen[d.Method] {
			continue
		}
		seen[d.Method] = true
		out = append(out, d.Method)
	}
	return out
}

// FilterMoves keeps entries learnable by method through any of their
// acquisitions, not only the primary one
func FilterMoves(entries []MoveEntry, method string) []MoveEntry {
	if method == "" {
		return entries
	}

	out := make([]MoveEntry, 0, len(entries))
	for _, e := range entries {
		for _, m := range e.Methods {
			if m == method {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// SortMoves orders entries in place. Entries without a level stay last
// under a level sort in either direction. Ties fall back to name ascending.
func SortMoves(entries []MoveEntry, key SortKey, descending bool) error {
	var less func(a, b MoveEntry) bool

	switch key {
	case SortByLevel, "":
		less = func(a, b MoveEntry) bool {
			if (a.Level == nil) != (b.Level == nil) {
				return b.Level == nil
			}
			if a.Level != nil && *a.Level != *b.Level {
				if descending {
					return *a.Level > *b.Level
				}
				return *a.Level < *b.Level
			}
			return a.Name < b.Name
		}
	case SortByName:
		less = func(a, b MoveEntry) bool {
			if descending {
				return a.Name > b.Name
			}
			return a.Name < b.Name
		}
	case SortByLearnMethod:
		less = func(a, b MoveEntry) bool {
			if a.Method != b.Method {
				if descending {
					return a.Method > b.Method
				}
				return a.Method < b.Method
			}
			return a.Name < b.Name
		}
	default:
		return errors.InvalidArgumentf("unknown move sort key %q", key)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return less(entries[i], entries[j])
	})
	return nil
}

// AvailableLearnMethods lists the distinct methods across entries, ordered
// by display name
func AvailableLearnMethods(entries []MoveEntry) []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range entries {
		for _, m := range e.Methods {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return names.Display(out[i]) < names.Display(out[j])
	})
	return out
}
