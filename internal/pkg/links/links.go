// Package links derives identifiers from PokeAPI resource links.
//
// Every resource carries a self link of the form
// https://pokeapi.co/api/v2/<kind>/<id>/ and the numeric id is the last
// non-empty path segment. The id is used for sorting and deduplication.
package links

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/dex-api/internal/errors"
)

// ID returns the numeric id at the end of link
func ID(link string) (int, error) {
	segment := lastSegment(link)
	if segment == "" {
		return 0, errors.InvalidArgumentf("link %q has no path segments", link)
	}

	id, err := strconv.Atoi(segment)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.CodeInvalidArgument,
			"link does not end in a numeric id").WithMeta("link", link)
	}

	return id, nil
}

// IDOrZero returns the id of link, or 0 when it cannot be derived
func IDOrZero(link string) int {
	id, err := ID(link)
	if err != nil {
		return 0
	}
	return id
}

// SpeciesToPokemon rewrites a species link into the matching pokemon link.
// The default form of a species shares its id.
func SpeciesToPokemon(link string) string {
	return strings.Replace(link, "/pokemon-species/", "/pokemon/", 1)
}

func lastSegment(link string) string {
	if i := strings.IndexAny(link, "?#"); i >= 0 {
		link = link[:i]
	}
	link = strings.TrimRight(link, "/")
	if i := strings.LastIndex(link, "/"); i >= 0 {
		return link[i+1:]
	}
	return link
}
