package pokedex

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/dex-api/internal/pkg/names"
)

// NoParent marks the root node of an EvolutionTree
const NoParent = -1

// EvolutionTree is an evolution chain flattened into an arena. Nodes are in
// pre-order: the root is at Root and every parent precedes its children.
type EvolutionTree struct {
	ID              int             `json:"id"`
	Root            int             `json:"root"`
	Nodes           []EvolutionNode `json:"nodes"`
	BabyTriggerItem *Ref            `json:"baby_trigger_item,omitempty"`
}

// EvolutionNode is one species in the tree
type EvolutionNode struct {
	Species    Ref                  `json:"species"`
	Conditions []EvolutionCondition `json:"conditions,omitempty"`
	Parent     int                  `json:"parent"`
	Children   []int                `json:"children,omitempty"`
	Summary    *Summary             `json:"summary,omitempty"`
}

// Summary is the minimal pokemon data attached to a resolved node
type Summary struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	SpriteURL string `json:"sprite_url"`
}

// Clone returns a deep copy with independent node slices
func (t *EvolutionTree) Clone() *EvolutionTree {
	if t == nil {
		return nil
	}
	out := *t
	out.Nodes = make([]EvolutionNode, len(t.Nodes))
	for i, node := range t.Nodes {
		node.Conditions = append([]EvolutionCondition(nil), node.Conditions...)
		node.Children = append([]int(nil), node.Children...)
		if node.Summary != nil {
			summary := *node.Summary
			node.Summary = &summary
		}
		out.Nodes[i] = node
	}
	return &out
}

// Find returns the index of the node for species name, or -1
func (t *EvolutionTree) Find(species string) int {
	for i, node := range t.Nodes {
		if node.Species.Name == species {
			return i
		}
	}
	return -1
}

// EvolutionCondition is one way a species evolves from its parent.
// Pointer fields are nil when the condition does not apply.
type EvolutionCondition struct {
	Trigger            string `json:"trigger"`
	MinLevel           *int   `json:"min_level,omitempty"`
	Item               string `json:"item,omitempty"`
	HeldItem           string `json:"held_item,omitempty"`
	KnownMove          string `json:"known_move,omitempty"`
	Location           string `json:"location,omitempty"`
	TradeSpecies       string `json:"trade_species,omitempty"`
	TimeOfDay          string `json:"time_of_day,omitempty"`
	MinHappiness       *int   `json:"min_happiness,omitempty"`
	MinAffection       *int   `json:"min_affection,omitempty"`
	MinBeauty          *int   `json:"min_beauty,omitempty"`
	Gender             *int   `json:"gender,omitempty"`
	NeedsOverworldRain bool   `json:"needs_overworld_rain,omitempty"`
	TurnUpsideDown     bool   `json:"turn_upside_down,omitempty"`
}

// Gender values used by evolution conditions
const (
	GenderFemale = 1
	GenderMale   = 2
)

// Describe renders the condition as a short human-readable phrase,
// e.g. "Lv. 16" or "Use Thunder Stone".
func (c EvolutionCondition) Describe() string {
	var parts []string
	if c.MinLevel != nil {
		parts = append(parts, fmt.Sprintf("Lv. %d", *c.MinLevel))
	}
	if c.Item != "" {
		parts = append(parts, "Use "+names.Display(c.Item))
	}
	if c.HeldItem != "" {
		parts = append(parts, "Hold "+names.Display(c.HeldItem))
	}
	if c.KnownMove != "" {
		parts = append(parts, "Knows "+names.Display(c.KnownMove))
	}
	if c.TimeOfDay != "" {
		parts = append(parts, names.Display(c.TimeOfDay))
	}
	if c.Location != "" {
		parts = append(parts, "at "+names.Display(c.Location))
	}
	if c.MinHappiness != nil {
		parts = append(parts, fmt.Sprintf("Happiness %d+", *c.MinHappiness))
	}
	if c.MinAffection != nil {
		parts = append(parts, fmt.Sprintf("Affection %d+", *c.MinAffection))
	}
	if c.MinBeauty != nil {
		parts = append(parts, fmt.Sprintf("Beauty %d+", *c.MinBeauty))
	}
	if c.NeedsOverworldRain {
		parts = append(parts, "Overworld Rain")
	}
	if c.TurnUpsideDown {
		parts = append(parts, "Turn Console Upside Down")
	}
	if c.Gender != nil {
		switch *c.Gender {
		case GenderFemale:
			parts = append(parts, "Female")
		case GenderMale:
			parts = append(parts, "Male")
		}
	}

	switch {
	case c.Trigger == "trade" && c.TradeSpecies != "":
		parts = append(parts, "Trade for "+names.Display(c.TradeSpecies))
	case c.Trigger == "trade":
		parts = append(parts, "Trade")
	case c.Trigger == "shed" && len(parts) == 0:
		parts = append(parts, "Special (Shedinja)")
	}

	if len(parts) == 0 {
		if c.Trigger == "level-up" {
			return "Level Up"
		}
		return names.Display(c.Trigger)
	}
	return strings.Join(parts, ", ")
}
