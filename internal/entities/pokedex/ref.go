package pokedex

import (
	"sort"
	"strconv"
	"strings"

	"github.com/KirkDiggler/dex-api/internal/pkg/links"
)

// Ref points at a remote resource without holding its data
type Ref struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

// ID derives the numeric id from the ref's link, or 0 if it has none
func (r Ref) ID() int {
	return links.IDOrZero(r.Link)
}

// SameAs reports whether both refs resolve to the same numeric id
func (r Ref) SameAs(other Ref) bool {
	id := r.ID()
	return id != 0 && id == other.ID()
}

// Matches reports whether query is a case-insensitive substring of the
// name or a substring of the derived id. A blank query matches everything.
func (r Ref) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(r.Name), q) {
		return true
	}
	id := r.ID()
	return id != 0 && strings.Contains(strconv.Itoa(id), q)
}

// SortByID orders refs ascending by derived id, in place
func SortByID(refs []Ref) {
	sort.SliceStable(refs, func(i, j int) bool {
		return refs[i].ID() < refs[j].ID()
	})
}
