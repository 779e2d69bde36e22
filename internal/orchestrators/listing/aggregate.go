package listing

import (
	"github.com/KirkDiggler/dex-api/internal/entities/pokedex"
)

// Search keeps the refs whose name or id matches query
func Search(refs []pokedex.Ref, query string) []pokedex.Ref {
	out := make([]pokedex.Ref, 0, len(refs))
	for _, ref := range refs {
		if ref.Matches(query) {
			out = append(out, ref)
		}
	}
	return out
}

// Paginate returns the page at index, clamping index into range.
// It returns the slice, the index actually used and the page count.
func Paginate(refs []pokedex.Ref, index, size int) ([]pokedex.Ref, int, int) {
	if size <= 0 || len(refs) == 0 {
		return []pokedex.Ref{}, 0, 0
	}

	pages := (len(refs) + size - 1) / size
	if index > pages-1 {
		index = pages - 1
	}
	if index < 0 {
		index = 0
	}

	start := index * size
	end := min(start+size, len(refs))
	return append([]pokedex.Ref(nil), refs[start:end]...), index, pages
}

// Intersect keeps the refs of the first list whose names appear in every
// other list
func Intersect(lists ...[]pokedex.Ref) []pokedex.Ref {
	if len(lists) == 0 {
		return []pokedex.Ref{}
	}

	counts := make(map[string]int)
	for _, list := range lists {
		seen := make(map[string]bool, len(list))
		for _, ref := range list {
			if !seen[ref.Name] {
				seen[ref.Name] = true
				counts[ref.Name]++
			}
		}
	}

	out := make([]pokedex.Ref, 0)
	for _, ref := range DedupeByName(lists[0]) {
		if counts[ref.Name] == len(lists) {
			out = append(out, ref)
		}
	}
	return out
}

// DedupeByName keeps the first ref of each name
func DedupeByName(refs []pokedex.Ref) []pokedex.Ref {
	seen := make(map[string]bool, len(refs))
	out := make([]pokedex.Ref, 0, len(refs))
	for _, ref := range refs {
		if seen[ref.Name] {
			continue
		}
		seen[ref.Name] = true
		out = append(out, ref)
	}
	return out
}
