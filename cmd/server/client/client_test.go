package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"

	"github.com/KirkDiggler/dex-api/internal/clients/pokeapi"
	dexv1 "github.com/KirkDiggler/dex-api/internal/handlers/dex/v1"
	"github.com/KirkDiggler/dex-api/internal/orchestrators/typechart"
	"github.com/KirkDiggler/dex-api/internal/services/catalog"
	"github.com/KirkDiggler/dex-api/internal/services/session"
	"github.com/KirkDiggler/dex-api/internal/testutils"
)

type ClientTestSuite struct {
	suite.Suite
	grpcSrv  *grpc.Server
	sessions session.Service
	addr     string
	out      *bytes.Buffer
}

func (s *ClientTestSuite) SetupTest() {
	server := testutils.NewPokeAPIServer(s.T())

	api, err := pokeapi.New(&pokeapi.Config{BaseURL: server.BaseURL(), FetchTimeout: 5 * time.Second})
	s.Require().NoError(err)
	cat, err := catalog.New(&catalog.Config{Client: api})
	s.Require().NoError(err)
	chart, err := typechart.NewOrchestrator(&typechart.Config{Client: api})
	s.Require().NoError(err)
	s.sessions, err = session.New(&session.Config{BaseURL: server.BaseURL(), Catalog: cat, PageSize: 20})
	s.Require().NoError(err)

	handler, err := dexv1.NewHandler(&dexv1.HandlerConfig{Sessions: s.sessions, TypeChart: chart, Catalog: cat})
	s.Require().NoError(err)

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)
	s.addr = lis.Addr().String()
	s.grpcSrv = grpc.NewServer()
	dexv1.RegisterDexServiceServer(s.grpcSrv, handler)
	go func() {
		_ = s.grpcSrv.Serve(lis)
	}()

	s.out = &bytes.Buffer{}
	ClientCmd.SetOut(s.out)
	ClientCmd.SetErr(&bytes.Buffer{})
}

func (s *ClientTestSuite) TearDownTest() {
	s.grpcSrv.Stop()
	s.Require().NoError(s.sessions.Shutdown(context.Background()))
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) run(args ...string) string {
	s.out.Reset()
	ClientCmd.SetArgs(append([]string{"--server", s.addr, "--timeout", "10s"}, args...))
	s.Require().NoError(ClientCmd.Execute())
	return s.out.String()
}

func (s *ClientTestSuite) TestSuggest() {
	out := s.run("suggest", "chu", "--json=false")
	s.Equal("#025 Pikachu\n#026 Raichu\n#172 Pichu\n", out)
}

func (s *ClientTestSuite) TestListByType() {
	out := s.run("list", "--type", "fire", "--page-size", "2", "--page", "1", "--json=false")
	s.Contains(out, "Showing types list: 1 of 3 pokemon (page 2/2)")
	s.Contains(out, "#136  Flareon")
	s.NotContains(out, "Charmander")
}

func (s *ClientTestSuite) TestShow() {
	out := s.run("show", "pikachu", "--json=false")
	s.Contains(out, "#025 Pikachu")
	s.Contains(out, "Types: Electric")
	s.Contains(out, "A newer entry for pikachu.")
	s.Contains(out, "Evolution:\n  #172 Pichu\n    #025 Pikachu")
}

func (s *ClientTestSuite) TestMoves() {
	out := s.run("moves", "25", "--sort", "name", "--method", "level-up", "--json=false")
	s.Contains(out, "Quick Attack")
	s.Contains(out, "Thunder Shock")
	s.NotContains(out, "Thunderbolt")
}

func (s *ClientTestSuite) TestMove() {
	out := s.run("move", "thunderbolt", "--json=false")
	s.Contains(out, "Thunderbolt\n")
	s.Contains(out, "Power: 90  Accuracy: 100  PP: 15")
	s.Contains(out, "Has a 10% chance to paralyze the target.")
}

func (s *ClientTestSuite) TestEffectivenessJSON() {
	out := s.run("effectiveness", "--attack", "electric", "--defend", "water,flying", "--json")

	var resp dexv1.EffectivenessResponse
	s.Require().NoError(json.Unmarshal([]byte(out), &resp))
	s.Require().NotNil(resp.Multiplier)
	s.Equal(4.0, *resp.Multiplier)
	s.Equal(typechart.MessageSuperEffective, resp.Message)
}

func (s *ClientTestSuite) TestFormatMultiplier() {
	testCases := []struct {
		in   float64
		want string
	}{
		{in: 4, want: "4"},
		{in: 0.5, want: "0.5"},
		{in: 0.25, want: "0.25"},
		{in: 0, want: "0"},
	}

	for _, tc := range testCases {
		s.Equal(tc.want, formatMultiplier(tc.in))
	}
}
