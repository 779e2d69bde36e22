package detail_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dex-api/internal/entities/pokedex"
	"github.com/KirkDiggler/dex-api/internal/errors"
	"github.com/KirkDiggler/dex-api/internal/orchestrators/detail"
	"github.com/KirkDiggler/dex-api/internal/pkg/idgen"
	idgenmock "github.com/KirkDiggler/dex-api/internal/pkg/idgen/mock"
)

func intPtr(v int) *int { return &v }

func learning(name, link string, details ...pokedex.LearnDetail) pokedex.MoveLearning {
	return pokedex.MoveLearning{Move: pokedex.Ref{Name: name, Link: link}, Details: details}
}

func learn(method string, level int) pokedex.LearnDetail {
	return pokedex.LearnDetail{VersionGroup: "sword-shield", Method: method, Level: level}
}

func TestDeriveMovesPrimaryMethod(t *testing.T) {
	testCases := []struct {
		name       string
		details    []pokedex.LearnDetail
		wantMethod string
		wantLevel  *int
	}{
		{
			name:       "level-up wins over an earlier tutor",
			details:    []pokedex.LearnDetail{learn("tutor", 0), learn("level-up", 12)},
			wantMethod: "level-up",
			wantLevel:  intPtr(12),
		},
		{
			name:       "level-up listed first",
			details:    []pokedex.LearnDetail{learn("level-up", 12), learn("tutor", 0)},
			wantMethod: "level-up",
			wantLevel:  intPtr(12),
		},
		{
			name:       "lowest positive level",
			details:    []pokedex.LearnDetail{learn("level-up", 16), learn("level-up", 0), learn("level-up", 6)},
			wantMethod: "level-up",
			wantLevel:  intPtr(6),
		},
		{
			name:       "first listed without level-up",
			details:    []pokedex.LearnDetail{learn("tutor", 0), learn("egg", 0)},
			wantMethod: "tutor",
			wantLevel:  nil,
		},
		{
			name:       "first listed keeps a positive level",
			details:    []pokedex.LearnDetail{learn("tutor", 5)},
			wantMethod: "tutor",
			wantLevel:  intPtr(5),
		},
		{
			name:       "no details",
			details:    nil,
			wantMethod: "",
			wantLevel:  nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			entries := detail.DeriveMoves([]pokedex.MoveLearning{
				learning("surf", "https://pokeapi.co/api/v2/move/57/", tc.details...),
			}, idgen.NewSequential("move"))

			require.Len(t, entries, 1)
			assert.Equal(t, tc.wantMethod, entries[0].Method)
			assert.Equal(t, tc.wantLevel, entries[0].Level)
		})
	}
}

func TestDeriveMovesKeys(t *testing.T) {
	entries := detail.DeriveMoves([]pokedex.MoveLearning{
		learning("surf", "https://pokeapi.co/api/v2/move/57/", learn("tutor", 0), learn("egg", 0), learn("tutor", 0)),
		learning("mystery", "not a link", learn("egg", 0)),
	}, idgen.NewSequential("move"))

	require.Len(t, entries, 2)
	assert.Equal(t, "57", entries[0].Key)
	assert.Equal(t, "move_1", entries[1].Key)
	assert.Equal(t, []string{"tutor", "egg"}, entries[0].Methods)
	assert.Equal(t, "Surf", entries[0].DisplayName)
}

func keys(entries []detail.MoveEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestSortMoves(t *testing.T) {
	base := []detail.MoveEntry{
		{Name: "growl", Method: "level-up", Level: intPtr(5)},
		{Name: "surf", Method: "tutor"},
		{Name: "thunder", Method: "level-up", Level: intPtr(20)},
		{Name: "agility", Method: "level-up", Level: intPtr(5)},
		{Name: "rest", Method: "machine"},
	}

	testCases := []struct {
		name       string
		key        detail.SortKey
		descending bool
		want       []string
	}{
		{name: "level ascending", key: detail.SortByLevel, want: []string{"agility", "growl", "thunder", "rest", "surf"}},
		{name: "level descending keeps missing levels last", key: detail.SortByLevel, descending: true, want: []string{"thunder", "agility", "growl", "rest", "surf"}},
		{name: "default key is level", key: "", want: []string{"agility", "growl", "thunder", "rest", "surf"}},
		{name: "name ascending", key: detail.SortByName, want: []string{"agility", "growl", "rest", "surf", "thunder"}},
		{name: "name descending", key: detail.SortByName, descending: true, want: []string{"thunder", "surf", "rest", "growl", "agility"}},
		{name: "learn method", key: detail.SortByLearnMethod, want: []string{"agility", "growl", "thunder", "rest", "surf"}},
		{name: "learn method descending", key: detail.SortByLearnMethod, descending: true, want: []string{"surf", "rest", "agility", "growl", "thunder"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			entries := append([]detail.MoveEntry(nil), base...)
			require.NoError(t, detail.SortMoves(entries, tc.key, tc.descending))
			assert.Equal(t, tc.want, keys(entries))
		})
	}
}

func TestSortMovesLevelDescendingWithNull(t *testing.T) {
	entries := []detail.MoveEntry{
		{Name: "a", Level: intPtr(5)},
		{Name: "b"},
		{Name: "c", Level: intPtr(20)},
	}
	require.NoError(t, detail.SortMoves(entries, detail.SortByLevel, true))
	assert.Equal(t, []string{"c", "a", "b"}, keys(entries))
}

func TestSortMovesUnknownKey(t *testing.T) {
	err := detail.SortMoves(nil, "power", false)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestFilterMovesUsesEveryMethod(t *testing.T) {
	entries := []detail.MoveEntry{
		{Name: "surf", Method: "tutor", Methods: []string{"tutor", "egg"}},
		{Name: "growl", Method: "level-up", Methods: []string{"level-up"}},
	}

	assert.Equal(t, []string{"surf"}, keys(detail.FilterMoves(entries, "egg")))
	assert.Equal(t, []string{"surf", "growl"}, keys(detail.FilterMoves(entries, "")))
	assert.Empty(t, detail.FilterMoves(entries, "machine"))
}

func TestAvailableLearnMethods(t *testing.T) {
	entries := []detail.MoveEntry{
		{Methods: []string{"tutor", "egg"}},
		{Methods: []string{"level-up", "machine"}},
		{Methods: []string{"egg"}},
	}
	assert.Equal(t, []string{"egg", "level-up", "machine", "tutor"}, detail.AvailableLearnMethods(entries))
}

func TestDeriveMovesOnlyGeneratesForUnparsableLinks(t *testing.T) {
	ctrl := gomock.NewController(t)
	ids := idgenmock.NewMockGenerator(ctrl)
	ids.EXPECT().Generate().Return("move-3f2a").Times(1)

	entries := detail.DeriveMoves([]pokedex.MoveLearning{
		learning("thunderbolt", "https://pokeapi.co/api/v2/move/85/", learn("machine", 0)),
		learning("struggle-bug", "https://pokeapi.co/api/v2/move/", learn("level-up", 1)),
	}, ids)

	require.Len(t, entries, 2)
	assert.Equal(t, "85", entries[0].Key)
	assert.Equal(t, "move-3f2a", entries[1].Key)
}
