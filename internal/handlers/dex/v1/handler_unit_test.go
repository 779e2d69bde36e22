package v1_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/dex-api/internal/entities/pokedex"
	"github.com/KirkDiggler/dex-api/internal/errors"
	v1 "github.com/KirkDiggler/dex-api/internal/handlers/dex/v1"
	"github.com/KirkDiggler/dex-api/internal/orchestrators/detail"
	detailmock "github.com/KirkDiggler/dex-api/internal/orchestrators/detail/mock"
	"github.com/KirkDiggler/dex-api/internal/orchestrators/listing"
	listingmock "github.com/KirkDiggler/dex-api/internal/orchestrators/listing/mock"
	"github.com/KirkDiggler/dex-api/internal/orchestrators/typechart"
	typechartmock "github.com/KirkDiggler/dex-api/internal/orchestrators/typechart/mock"
	"github.com/KirkDiggler/dex-api/internal/services/catalog"
	catalogmock "github.com/KirkDiggler/dex-api/internal/services/catalog/mock"
	"github.com/KirkDiggler/dex-api/internal/services/session"
	sessionmock "github.com/KirkDiggler/dex-api/internal/services/session/mock"
)

type HandlerUnitTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockSessions  *sessionmock.MockService
	mockTypeChart *typechartmock.MockService
	mockCatalog   *catalogmock.MockService
	mockListing   *listingmock.MockService
	mockDetail    *detailmock.MockService
	handler       *v1.Handler
	ctx           context.Context
}

func (s *HandlerUnitTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockSessions = sessionmock.NewMockService(s.ctrl)
	s.mockTypeChart = typechartmock.NewMockService(s.ctrl)
	s.mockCatalog = catalogmock.NewMockService(s.ctrl)
	s.mockListing = listingmock.NewMockService(s.ctrl)
	s.mockDetail = detailmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1.NewHandler(&v1.HandlerConfig{
		Sessions:  s.mockSessions,
		TypeChart: s.mockTypeChart,
		Catalog:   s.mockCatalog,
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerUnitTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestHandlerUnitTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerUnitTestSuite))
}

func (s *HandlerUnitTestSuite) encode(msg any) *structpb.Struct {
	in, err := v1.Encode(msg)
	s.Require().NoError(err)
	return in
}

func (s *HandlerUnitTestSuite) expectSession(id string) {
	s.mockSessions.EXPECT().
		Get(gomock.Any(), &session.GetInput{ID: id}).
		Return(&session.GetOutput{Session: &session.Session{
			ID:      id,
			Listing: s.mockListing,
			Detail:  s.mockDetail,
		}}, nil)
}

func (s *HandlerUnitTestSuite) TestUpdateListingEventOrder() {
	testCases := []struct {
		name   string
		req    *v1.UpdateListingRequest
		setup  func()
		events []listing.Event
	}{
		{
			name: "every field in precedence order",
			req: &v1.UpdateListingRequest{
				SessionID:  "sess_1",
				Region:     ptr("kanto"),
				Generation: ptr(""),
				Types:      &[]string{"fire", "flying"},
				Search:     ptr("char"),
				PageIndex:  ptr(2),
				PageSize:   ptr(10),
			},
			events: []listing.Event{
				listing.RegionChanged("kanto"),
				listing.GenerationChanged(""),
				listing.TypesChanged("fire", "flying"),
				listing.SearchChanged("char"),
				listing.PageChanged(2, 10),
			},
		},
		{
			name:   "empty type list still clears the selector",
			req:    &v1.UpdateListingRequest{SessionID: "sess_1", Types: &[]string{}},
			events: []listing.Event{listing.TypesChanged([]string{}...)},
		},
		{
			name: "page size alone keeps the current page",
			req:  &v1.UpdateListingRequest{SessionID: "sess_1", PageSize: ptr(5)},
			setup: func() {
				s.mockListing.EXPECT().View().Return(&listing.View{PageIndex: 3})
			},
			events: []listing.Event{listing.PageChanged(3, 5)},
		},
		{
			name:   "nothing set only waits",
			req:    &v1.UpdateListingRequest{SessionID: "sess_1"},
			events: nil,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.expectSession("sess_1")
			if tc.setup != nil {
				tc.setup()
			}
			args := []any{gomock.Any()}
			for _, ev := range tc.events {
				args = append(args, ev)
			}
			s.mockListing.EXPECT().
				Apply(args[0], args[1:]...).
				Return(&listing.View{Active: listing.SelectorAll, Total: 7}, nil)

			out, err := s.handler.UpdateListing(s.ctx, s.encode(tc.req))
			s.Require().NoError(err)

			var resp v1.ListingResponse
			s.Require().NoError(v1.Decode(out, &resp))
			s.Equal(7, resp.View.Total)
		})
	}
}

func (s *HandlerUnitTestSuite) TestUnknownSessionIsNotFound() {
	s.mockSessions.EXPECT().
		Get(gomock.Any(), &session.GetInput{ID: "sess_gone"}).
		Return(nil, errors.NotFoundf("session %s not found", "sess_gone"))

	_, err := s.handler.GetListing(s.ctx, s.encode(&v1.GetListingRequest{SessionID: "sess_gone"}))
	s.Require().Error(err)
	s.Equal(codes.NotFound, status.Code(err))
}

func (s *HandlerUnitTestSuite) TestSupersededShowIsAborted() {
	s.expectSession("sess_1")
	s.mockDetail.EXPECT().
		Show(gomock.Any(), &detail.ShowInput{ID: "4"}).
		Return(nil, errors.Aborted("superseded by a newer request"))

	_, err := s.handler.ShowPokemon(s.ctx, s.encode(&v1.ShowPokemonRequest{SessionID: "sess_1", ID: "4"}))
	s.Require().Error(err)
	s.Equal(codes.Aborted, status.Code(err))
}

func (s *HandlerUnitTestSuite) TestListMovesPassesSort() {
	level := 16
	s.expectSession("sess_1")
	s.mockDetail.EXPECT().
		Moves(gomock.Any(), &detail.MovesInput{Method: "level-up", SortKey: detail.SortByLevel, Descending: true}).
		Return(&detail.MovesOutput{
			Moves:                 []detail.MoveEntry{{Name: "quick-attack", Method: "level-up", Level: &level}},
			AvailableLearnMethods: []string{"level-up"},
		}, nil)

	out, err := s.handler.ListMoves(s.ctx, s.encode(&v1.ListMovesRequest{
		SessionID:  "sess_1",
		Method:     "level-up",
		Sort:       "level",
		Descending: true,
	}))
	s.Require().NoError(err)

	var resp v1.ListMovesResponse
	s.Require().NoError(v1.Decode(out, &resp))
	s.Require().Len(resp.Moves, 1)
	s.Equal(16, *resp.Moves[0].Level)
}

func (s *HandlerUnitTestSuite) TestEffectivenessDispatch() {
	fire := pokedex.TypeInfo{Name: "fire", DisplayName: "Fire"}
	grass := pokedex.TypeInfo{Name: "grass", DisplayName: "Grass"}

	s.Run("attacker only asks for coverage", func() {
		s.mockTypeChart.EXPECT().
			Coverage(gomock.Any(), &typechart.CoverageInput{Attacking: "fire"}).
			Return(&typechart.CoverageOutput{Entries: []typechart.Entry{{Type: grass, Multiplier: 2}}}, nil)

		out, err := s.handler.Effectiveness(s.ctx, s.encode(&v1.EffectivenessRequest{Attacking: "fire"}))
		s.Require().NoError(err)

		var resp v1.EffectivenessResponse
		s.Require().NoError(v1.Decode(out, &resp))
		s.Nil(resp.Multiplier)
		s.Equal([]typechart.Entry{{Type: grass, Multiplier: 2}}, resp.Coverage)
		s.Empty(resp.Profile)
	})

	s.Run("defenders only ask for the profile", func() {
		s.mockTypeChart.EXPECT().
			Profile(gomock.Any(), &typechart.ProfileInput{Defending: []string{"grass"}}).
			Return(&typechart.ProfileOutput{Entries: []typechart.Entry{{Type: fire, Multiplier: 2}}}, nil)

		out, err := s.handler.Effectiveness(s.ctx, s.encode(&v1.EffectivenessRequest{Defending: []string{"grass"}}))
		s.Require().NoError(err)

		var resp v1.EffectivenessResponse
		s.Require().NoError(v1.Decode(out, &resp))
		s.Empty(resp.Coverage)
		s.Len(resp.Profile, 1)
	})

	s.Run("unknown attacker surfaces as invalid argument", func() {
		s.mockTypeChart.EXPECT().
			Effectiveness(gomock.Any(), &typechart.EffectivenessInput{Attacking: "shadow", Defending: []string{"grass"}}).
			Return(nil, errors.InvalidArgumentf("unknown attacking type %q", "shadow"))

		_, err := s.handler.Effectiveness(s.ctx, s.encode(&v1.EffectivenessRequest{
			Attacking: "shadow",
			Defending: []string{"grass"},
		}))
		s.Require().Error(err)
		s.Equal(codes.InvalidArgument, status.Code(err))
	})
}

func (s *HandlerUnitTestSuite) TestSuggestPassesLimit() {
	s.mockCatalog.EXPECT().
		Suggest(gomock.Any(), &catalog.SuggestInput{Query: "pika", Limit: 3}).
		Return(&catalog.SuggestOutput{Suggestions: []catalog.Suggestion{{ID: 25, Name: "pikachu", DisplayName: "Pikachu"}}}, nil)

	out, err := s.handler.Suggest(s.ctx, s.encode(&v1.SuggestRequest{Query: "pika", Limit: 3}))
	s.Require().NoError(err)

	var resp v1.SuggestResponse
	s.Require().NoError(v1.Decode(out, &resp))
	s.Equal("Pikachu", resp.Suggestions[0].DisplayName)
}
