package links_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dex-api/internal/errors"
	"github.com/KirkDiggler/dex-api/internal/pkg/links"
)

type LinksTestSuite struct {
	suite.Suite
}

func TestLinksSuite(t *testing.T) {
	suite.Run(t, new(LinksTestSuite))
}

func (s *LinksTestSuite) TestID() {
	testCases := []struct {
		name string
		link string
		want int
	}{
		{"trailing slash", "https://pokeapi.co/api/v2/pokemon/25/", 25},
		{"no trailing slash", "https://pokeapi.co/api/v2/pokemon/25", 25},
		{"species link", "https://pokeapi.co/api/v2/pokemon-species/172/", 172},
		{"query string ignored", "https://pokeapi.co/api/v2/move/85/?lang=en", 85},
		{"double slash", "https://pokeapi.co/api/v2/type/10//", 10},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			id, err := links.ID(tc.link)
			s.Require().NoError(err)
			s.Assert().Equal(tc.want, id)

			again, err := links.ID(tc.link)
			s.Require().NoError(err)
			s.Assert().Equal(id, again)
		})
	}
}

func (s *LinksTestSuite) TestIDSameSuffixDifferentHosts() {
	a, err := links.ID("https://pokeapi.co/api/v2/pokemon/6/")
	s.Require().NoError(err)
	b, err := links.ID("http://127.0.0.1:8080/api/v2/pokemon-species/6/")
	s.Require().NoError(err)
	s.Assert().Equal(a, b)
}

func (s *LinksTestSuite) TestIDInvalid() {
	for _, link := range []string{"", "/", "https://pokeapi.co/api/v2/pokemon/pikachu/"} {
		_, err := links.ID(link)
		s.Assert().True(errors.IsInvalidArgument(err), link)
		s.Assert().Equal(0, links.IDOrZero(link))
	}
}

func (s *LinksTestSuite) TestSpeciesToPokemon() {
	s.Assert().Equal(
		"https://pokeapi.co/api/v2/pokemon/25/",
		links.SpeciesToPokemon("https://pokeapi.co/api/v2/pokemon-species/25/"),
	)
	s.Assert().Equal(
		"https://pokeapi.co/api/v2/pokemon/25/",
		links.SpeciesToPokemon("https://pokeapi.co/api/v2/pokemon/25/"),
	)
}
