package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dex-api/internal/clients/pokeapi"
	pokeapimock "github.com/KirkDiggler/dex-api/internal/clients/pokeapi/mock"
	"github.com/KirkDiggler/dex-api/internal/entities/pokedex"
	"github.com/KirkDiggler/dex-api/internal/errors"
	"github.com/KirkDiggler/dex-api/internal/services/catalog"
	"github.com/KirkDiggler/dex-api/internal/testutils"
	"github.com/KirkDiggler/dex-api/internal/testutils/mocks"
)

type ServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockClient *pokeapimock.MockClient
	svc        catalog.Service
	ctx        context.Context
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClient = pokeapimock.NewMockClient(s.ctrl)
	s.ctx = context.Background()

	svc, err := catalog.New(&catalog.Config{Client: s.mockClient})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *ServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) TestNewRequiresClient() {
	_, err := catalog.New(&catalog.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestEntriesProbesCountThenFetchesAll() {
	gomock.InOrder(
		s.mockClient.EXPECT().
			ListPokemon(gomock.Any(), &pokeapi.ListPokemonInput{Limit: 1}).
			Return(&pokedex.Page{Count: 3, Results: mocks.Refs("bulbasaur", 1)}, nil),
		s.mockClient.EXPECT().
			ListPokemon(gomock.Any(), &pokeapi.ListPokemonInput{Limit: 3}).
			Return(&pokedex.Page{Count: 3, Results: mocks.Refs("pikachu", 25, "bulbasaur", 1, "ivysaur", 2)}, nil),
	)

	s.False(s.svc.Ready())
	entries, err := s.svc.Entries(s.ctx)
	s.Require().NoError(err)
	s.True(s.svc.Ready())
	s.Equal([]string{"bulbasaur", "ivysaur", "pikachu"}, refNames(entries))

	// second read is served from memory
	again, err := s.svc.Entries(s.ctx)
	s.Require().NoError(err)
	s.Equal(entries, again)

	total, err := s.svc.TotalCount(s.ctx)
	s.Require().NoError(err)
	s.Equal(3, total)
}

func (s *ServiceTestSuite) TestEntriesFallsBackWhenCountIsZero() {
	gomock.InOrder(
		s.mockClient.EXPECT().
			ListPokemon(gomock.Any(), &pokeapi.ListPokemonInput{Limit: 1}).
			Return(&pokedex.Page{Count: 0}, nil),
		s.mockClient.EXPECT().
			ListPokemon(gomock.Any(), &pokeapi.ListPokemonInput{Limit: 2000}).
			Return(&pokedex.Page{Results: mocks.Refs("mew", 151)}, nil),
	)

	entries, err := s.svc.Entries(s.ctx)
	s.Require().NoError(err)
	s.Len(entries, 1)
}

func (s *ServiceTestSuite) TestEntriesFailureIsRetried() {
	s.mockClient.EXPECT().
		ListPokemon(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailablef("connection refused"))

	_, err := s.svc.Entries(s.ctx)
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
	s.False(s.svc.Ready())

	mocks.ExpectPokemonCatalog(s.mockClient, mocks.Refs("mew", 151))
	entries, err := s.svc.Entries(s.ctx)
	s.Require().NoError(err)
	s.Len(entries, 1)
}

func (s *ServiceTestSuite) TestSuggest() {
	mocks.ExpectPokemonCatalog(s.mockClient, mocks.Refs(
		"pikachu", 25, "raichu", 26, "pichu", 172, "mr-mime", 122, "charmander", 4, "charmeleon", 5,
	))

	testCases := []struct {
		name  string
		query string
		limit int
		want  []string
	}{
		{name: "too short", query: "p", want: []string{}},
		{name: "name substring", query: "chu", want: []string{"pikachu", "raichu", "pichu"}},
		{name: "case insensitive", query: "PIKA", want: []string{"pikachu"}},
		{name: "id substring", query: "12", want: []string{"mr-mime"}},
		{name: "limit", query: "char", limit: 1, want: []string{"charmander"}},
		{name: "no match", query: "zz", want: []string{}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.svc.Suggest(s.ctx, &catalog.SuggestInput{Query: tc.query, Limit: tc.limit})
			s.Require().NoError(err)

			got := make([]string, len(out.Suggestions))
			for i, sug := range out.Suggestions {
				got[i] = sug.Name
			}
			s.Equal(tc.want, got)
		})
	}
}

func (s *ServiceTestSuite) TestSuggestDisplayName() {
	mocks.ExpectPokemonCatalog(s.mockClient, mocks.Refs("mr-mime", 122))

	out, err := s.svc.Suggest(s.ctx, &catalog.SuggestInput{Query: "mime"})
	s.Require().NoError(err)
	s.Require().Len(out.Suggestions, 1)
	s.Equal(catalog.Suggestion{ID: 122, Name: "mr-mime", DisplayName: "Mr Mime"}, out.Suggestions[0])
}

func (s *ServiceTestSuite) TestSuggestRejectsNegativeLimit() {
	_, err := s.svc.Suggest(s.ctx, &catalog.SuggestInput{Query: "pika", Limit: -1})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

// Against the fake API the catalog comes back in id order even though the
// list endpoint serves it reversed.
func TestCatalogAgainstFakeAPI(t *testing.T) {
	server := testutils.NewPokeAPIServer(t)
	client, err := pokeapi.New(&pokeapi.Config{BaseURL: server.BaseURL()})
	if err != nil {
		t.Fatal(err)
	}

	svc, err := catalog.New(&catalog.Config{Client: client})
	if err != nil {
		t.Fatal(err)
	}

	entries, err := svc.Entries(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 11 || entries[0].Name != "bulbasaur" || entries[10].Name != "pichu" {
		t.Fatalf("unexpected entries: %v", refNames(entries))
	}
	if hits := server.Hits("/pokemon/"); hits != 2 {
		t.Fatalf("expected count probe and list fetch, got %d requests", hits)
	}
}

func refNames(refs []pokedex.Ref) []string {
	out := make([]string, len(refs))
	for i, r := range refs {
		out[i] = r.Name
	}
	return out
}
