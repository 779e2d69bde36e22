package listing_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dex-api/internal/clients/pokeapi"
	"github.com/KirkDiggler/dex-api/internal/errors"
	"github.com/KirkDiggler/dex-api/internal/orchestrators/listing"
	"github.com/KirkDiggler/dex-api/internal/services/catalog"
	"github.com/KirkDiggler/dex-api/internal/testutils"
)

type EngineTestSuite struct {
	suite.Suite
	server  *testutils.PokeAPIServer
	client  pokeapi.Client
	catalog catalog.Service
	engine  listing.Service
	ctx     context.Context
}

func (s *EngineTestSuite) SetupTest() {
	s.server = testutils.NewPokeAPIServer(s.T())
	s.ctx = context.Background()

	client, err := pokeapi.New(&pokeapi.Config{BaseURL: s.server.BaseURL(), FetchTimeout: 5 * time.Second})
	s.Require().NoError(err)
	s.client = client

	cat, err := catalog.New(&catalog.Config{Client: client})
	s.Require().NoError(err)
	s.catalog = cat
}

func (s *EngineTestSuite) TearDownTest() {
	if s.engine != nil {
		s.engine.Close()
		s.engine = nil
	}
}

func TestEngineTestSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) start(pageSize int) {
	engine, err := listing.New(&listing.Config{Client: s.client, Catalog: s.catalog, PageSize: pageSize})
	s.Require().NoError(err)
	s.engine = engine
}

func (s *EngineTestSuite) apply(events ...listing.Event) *listing.View {
	ctx, cancel := context.WithTimeout(s.ctx, 5*time.Second)
	defer cancel()

	v, err := s.engine.Apply(ctx, events...)
	s.Require().NoError(err)
	return v
}

func (s *EngineTestSuite) TestNewValidatesConfig() {
	_, err := listing.New(&listing.Config{Client: s.client})
	s.Require().Error(err)
	s.Contains(err.Error(), "Catalog")
}

func (s *EngineTestSuite) TestUnfilteredList() {
	s.start(20)

	v := s.apply()
	s.Equal(listing.SelectorAll, v.Active)
	s.False(v.Loading)
	s.Empty(v.Error)
	s.Equal(11, v.Total)
	s.Equal(11, v.TotalAvailable)
	s.Equal(1, v.PageCount)
	s.Equal([]string{
		"bulbasaur", "charmander", "charizard", "pidgey", "pikachu", "raichu",
		"eevee", "vaporeon", "jolteon", "flareon", "pichu",
	}, names(v.Items))
}

func (s *EngineTestSuite) TestTypeIntersection() {
	s.start(20)

	v := s.apply(listing.TypesChanged("fire"))
	s.Equal(listing.SelectorTypes, v.Active)
	s.Equal([]string{"charmander", "charizard", "flareon"}, names(v.Items))

	v = s.apply(listing.TypesChanged("Flying", "fire"))
	s.Equal([]string{"fire", "flying"}, v.Filter.Types)
	s.Equal([]string{"charizard"}, names(v.Items))

	v = s.apply(listing.TypesChanged())
	s.Equal(listing.SelectorAll, v.Active)
	s.Equal(11, v.Total)
}

func (s *EngineTestSuite) TestRegionSkipsFailedPokedex() {
	s.start(20)

	v := s.apply(listing.RegionChanged("kanto"))
	s.Equal(listing.SelectorRegion, v.Active)
	s.Empty(v.Error)
	s.Equal([]string{"bulbasaur", "charmander", "pidgey", "pikachu", "eevee"}, names(v.Items))
	s.Equal(s.server.Link("/pokemon/1/"), v.Items[0].Link)
	s.Equal(1, s.server.Hits("/pokedex/99/"))
}

func (s *EngineTestSuite) TestGenerationRewritesLinks() {
	s.start(20)

	v := s.apply(listing.GenerationChanged("generation-i"))
	s.Equal(listing.SelectorGeneration, v.Active)
	s.Len(v.Items, 10)
	s.Equal("bulbasaur", v.Items[0].Name)
	for _, item := range v.Items {
		s.Contains(item.Link, "/pokemon/")
		s.NotContains(item.Link, "/pokemon-species/")
	}
}

func (s *EngineTestSuite) TestSelectorPrecedence() {
	s.start(20)

	v := s.apply(
		listing.TypesChanged("electric"),
		listing.GenerationChanged("generation-ii"),
		listing.RegionChanged("johto"),
	)
	s.Equal(listing.SelectorRegion, v.Active)
	s.Equal([]string{"pikachu", "pichu"}, names(v.Items))

	v = s.apply(listing.RegionChanged(""))
	s.Equal(listing.SelectorGeneration, v.Active)
	s.Equal([]string{"pichu"}, names(v.Items))

	v = s.apply(listing.GenerationChanged(""))
	s.Equal(listing.SelectorTypes, v.Active)
	s.Equal([]string{"pikachu", "raichu", "jolteon", "pichu"}, names(v.Items))
}

func (s *EngineTestSuite) TestSearchAndPagination() {
	s.start(4)

	v := s.apply(listing.PageChanged(2, 0))
	s.Equal(3, v.PageCount)
	s.Equal(2, v.PageIndex)
	s.Equal([]string{"jolteon", "flareon", "pichu"}, names(v.Items))

	v = s.apply(listing.PageChanged(10, 0))
	s.Equal(2, v.PageIndex)

	// search with no selector resets the page
	v = s.apply(listing.SearchChanged("char"))
	s.Equal(0, v.PageIndex)
	s.Equal([]string{"charmander", "charizard"}, names(v.Items))

	v = s.apply(listing.SearchChanged("25"))
	s.Equal([]string{"pikachu"}, names(v.Items))
}

func (s *EngineTestSuite) TestSearchKeepsPageUnderSelector() {
	s.start(4)

	s.apply(listing.GenerationChanged("generation-i"))
	v := s.apply(listing.PageChanged(1, 0))
	s.Equal(1, v.PageIndex)

	v = s.apply(listing.SearchChanged("a"))
	s.Equal(7, v.Total)
	s.Equal(1, v.PageIndex)

	// shrinking the result clamps instead of failing
	v = s.apply(listing.SearchChanged("pika"))
	s.Equal(0, v.PageIndex)
	s.Equal([]string{"pikachu"}, names(v.Items))
}

func (s *EngineTestSuite) TestFailureEmptiesSelectorList() {
	s.start(20)

	v := s.apply(listing.RegionChanged("atlantis"))
	s.Contains(v.Error, "atlantis")
	s.Equal("atlantis", v.Filter.Region)
	s.Equal(listing.SelectorRegion, v.Active)
	s.Empty(v.Items)
	s.Zero(v.Total)
	s.False(v.Loading)

	// clearing the region falls through to the other selectors
	v = s.apply(listing.RegionChanged(""), listing.TypesChanged("fire"))
	s.Empty(v.Error)
	s.Equal(listing.SelectorTypes, v.Active)
	s.Len(v.Items, 3)
}

func (s *EngineTestSuite) TestFailedSelectorIsRetried() {
	s.start(20)
	s.server.Fail("/region/kanto/", 500)

	v := s.apply(listing.RegionChanged("kanto"))
	s.NotEmpty(v.Error)
	s.Equal("kanto", v.Filter.Region)
	s.Empty(v.Items)

	s.server.Fail("/region/kanto/", 0)
	v = s.apply(listing.RegionChanged("kanto"))
	s.Empty(v.Error)
	s.Equal(listing.SelectorRegion, v.Active)
	s.Len(v.Items, 5)
	s.Equal(2, s.server.Hits("/region/kanto/"))
}

func (s *EngineTestSuite) TestInitialLoadFailureIsRetried() {
	s.server.Fail("/pokemon/", 500)
	s.start(20)

	v := s.apply()
	s.NotEmpty(v.Error)
	s.Empty(v.Items)
	s.False(v.Loading)

	s.server.Fail("/pokemon/", 0)
	v = s.apply(listing.Settle())
	s.Equal(11, v.Total)
	s.Empty(v.Error)
}

func (s *EngineTestSuite) TestTypeChangeClearsImmediately() {
	s.start(20)
	s.apply(listing.TypesChanged("fire"))

	release := s.server.Block("/type/electric/")
	done := make(chan *listing.View, 1)
	go func() {
		v, _ := s.engine.Apply(s.ctx, listing.TypesChanged("electric"))
		done <- v
	}()

	s.Eventually(func() bool {
		v := s.engine.View()
		return v.Loading && strings.Join(v.Filter.Types, ",") == "electric"
	}, 2*time.Second, 5*time.Millisecond)
	s.Empty(s.engine.View().Items)

	release()
	v := <-done
	s.Equal([]string{"pikachu", "raichu", "jolteon", "pichu"}, names(v.Items))
}

func (s *EngineTestSuite) TestRegionChangeHoldsPreviousList() {
	s.start(20)
	s.apply(listing.RegionChanged("kanto"))

	release := s.server.Block("/region/johto/")
	done := make(chan *listing.View, 1)
	go func() {
		v, _ := s.engine.Apply(s.ctx, listing.RegionChanged("johto"))
		done <- v
	}()

	s.Eventually(func() bool {
		v := s.engine.View()
		return v.Loading && v.Filter.Region == "johto"
	}, 2*time.Second, 5*time.Millisecond)
	s.Equal([]string{"bulbasaur", "charmander", "pidgey", "pikachu", "eevee"}, names(s.engine.View().Items))

	release()
	v := <-done
	s.Equal([]string{"pikachu", "pichu"}, names(v.Items))
}

func (s *EngineTestSuite) TestSupersededLoadIsDiscarded() {
	s.start(20)
	s.apply()

	release := s.server.Block("/region/kanto/")
	defer release()

	first := make(chan *listing.View, 1)
	go func() {
		v, _ := s.engine.Apply(s.ctx, listing.RegionChanged("kanto"))
		first <- v
	}()
	s.Eventually(func() bool {
		return s.server.Hits("/region/kanto/") == 1
	}, 2*time.Second, 5*time.Millisecond)

	v := s.apply(listing.RegionChanged("johto"))
	s.Equal("johto", v.Filter.Region)
	s.Equal([]string{"pikachu", "pichu"}, names(v.Items))

	release()
	v = <-first
	s.Equal("johto", v.Filter.Region)
	s.Equal([]string{"pikachu", "pichu"}, names(s.engine.View().Items))
}

func (s *EngineTestSuite) TestApplyRejectsNegativePage() {
	s.start(20)

	_, err := s.engine.Apply(s.ctx, listing.PageChanged(-1, 0))
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *EngineTestSuite) TestApplyAfterClose() {
	s.start(20)
	s.engine.Close()

	_, err := s.engine.Apply(s.ctx, listing.Settle())
	s.Require().Error(err)
	s.Equal(errors.CodeFailedPrecondition, errors.GetCode(err))
}
