package idgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dex-api/internal/pkg/idgen"
)

type IDGenTestSuite struct {
	suite.Suite
}

func TestIDGenSuite(t *testing.T) {
	suite.Run(t, new(IDGenTestSuite))
}

func (s *IDGenTestSuite) TestSequential() {
	gen := idgen.NewSequential("sess")
	s.Assert().Equal("sess_1", gen.Generate())
	s.Assert().Equal("sess_2", gen.Generate())

	bare := idgen.NewSequential("")
	s.Assert().Equal("1", bare.Generate())
}

func (s *IDGenTestSuite) TestRandomIsPrefixedAndUnique() {
	gen := idgen.NewRandom("move")
	a, b := gen.Generate(), gen.Generate()

	s.Assert().True(strings.HasPrefix(a, "move-"))
	s.Assert().Len(a, len("move-")+16)
	s.Assert().NotEqual(a, b)
}

func (s *IDGenTestSuite) TestUUID() {
	id := idgen.NewUUID("sess").Generate()
	s.Assert().True(strings.HasPrefix(id, "sess_"))
	s.Assert().Len(id, len("sess_")+36)
}
