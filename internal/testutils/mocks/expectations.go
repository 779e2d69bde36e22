// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"fmt"
	"sort"

	"go.uber.org/mock/gomock"

	pokeapimock "github.com/KirkDiggler/dex-api/internal/clients/pokeapi/mock"
	"github.com/KirkDiggler/dex-api/internal/entities/pokedex"
)

// PokemonLink builds a pokemon link under the public API root
func PokemonLink(id int) string {
	return fmt.Sprintf("https://pokeapi.co/api/v2/pokemon/%d/", id)
}

// SpeciesLink builds a species link under the public API root
func SpeciesLink(id int) string {
	return fmt.Sprintf("https://pokeapi.co/api/v2/pokemon-species/%d/", id)
}

// Refs builds pokemon refs from alternating names and ids
func Refs(pairs ...any) []pokedex.Ref {
	refs := make([]pokedex.Ref, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		refs = append(refs, pokedex.Ref{
			Name: pairs[i].(string),
			Link: PokemonLink(pairs[i+1].(int)),
		})
	}
	return refs
}

// ExpectTypeChart sets up one type chart load: the list call plus one
// detail fetch per entry in relations. Extra names are listed but never
// fetched.
func ExpectTypeChart(mockClient *pokeapimock.MockClient, relations map[string]pokedex.Relations, extra ...string) {
	names := make([]string, 0, len(relations))
	for name := range relations {
		names = append(names, name)
	}
	sort.Strings(names)

	refs := make([]pokedex.Ref, 0, len(names)+len(extra))
	for _, name := range append(names, extra...) {
		refs = append(refs, pokedex.Ref{Name: name})
	}

	mockClient.EXPECT().
		ListTypes(gomock.Any()).
		Return(refs, nil)

	for _, name := range names {
		mockClient.EXPECT().
			GetType(gomock.Any(), name).
			Return(&pokedex.Type{Name: name, Relations: relations[name]}, nil)
	}
}

// ExpectPokemonCatalog sets up the count probe and the full list fetch
func ExpectPokemonCatalog(mockClient *pokeapimock.MockClient, refs []pokedex.Ref) {
	page := &pokedex.Page{Count: len(refs), Results: refs}

	mockClient.EXPECT().
		ListPokemon(gomock.Any(), gomock.Any()).
		Return(page, nil).
		Times(2)
}
