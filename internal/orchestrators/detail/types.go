package detail

import "github.com/KirkDiggler/dex-api/internal/entities/pokedex"

// ShowInput selects the pokemon to show. Pokemon is used as-is when set,
// otherwise ID (numeric id or slug) is fetched.
type ShowInput struct {
	Pokemon *pokedex.Pokemon
	ID      string
}

// NavigateInput moves the view to another pokemon, e.g. an evolution node
type NavigateInput struct {
	ID string
}

// ViewMoveInput opens the move modal
type ViewMoveInput struct {
	Move string
}

// SortKey orders the move list
type SortKey string

// Move sort keys
const (
	SortByLevel       SortKey = "level"
	SortByName        SortKey = "name"
	SortByLearnMethod SortKey = "learnMethod"
)

// MovesInput filters and orders the moves of the shown pokemon
type MovesInput struct {
	// Method keeps moves learnable by this method; empty keeps all
	Method     string
	SortKey    SortKey
	Descending bool
}

// MovesOutput is the derived move list of the shown pokemon
type MovesOutput struct {
	Moves []MoveEntry
	// AvailableLearnMethods lists every method of the unfiltered moves,
	// ordered by display name
	AvailableLearnMethods []string
}

// MoveEntry is one move with its primary way of being learned
type MoveEntry struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name"`
	Method      string   `json:"method"`
	Level       *int     `json:"level,omitempty"`
	Methods     []string `json:"methods"`
}

// MoveView is the content of the move modal
type MoveView struct {
	Move        *pokedex.Move `json:"move"`
	ShortEffect string        `json:"short_effect"`
	Description string        `json:"description"`
}

// View is a snapshot of the detail state. Each scope (primary, extended,
// move modal) has its own loading flag and error slot.
type View struct {
	Pokemon *pokedex.Pokemon `json:"pokemon,omitempty"`
	Loading bool             `json:"loading"`
	Error   string           `json:"error,omitempty"`

	Species         *pokedex.Species       `json:"species,omitempty"`
	Description     string                 `json:"description,omitempty"`
	Evolution       *pokedex.EvolutionTree `json:"evolution,omitempty"`
	ExtendedLoading bool                   `json:"extended_loading"`
	ExtendedError   string                 `json:"extended_error,omitempty"`
	// Warnings name evolution nodes that fell back to a placeholder
	Warnings []string `json:"warnings,omitempty"`

	Move        *MoveView `json:"move,omitempty"`
	MoveLoading bool      `json:"move_loading"`
	MoveError   string    `json:"move_error,omitempty"`
}
