package pokedex

// Type is a category with its damage relations and member pokemon
type Type struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Relations Relations `json:"relations"`
	Members   []Ref     `json:"members,omitempty"`
}

// Relations are the directed damage relation sets of a type, by type name
type Relations struct {
	DoubleTo   []string `json:"double_to,omitempty"`
	HalfTo     []string `json:"half_to,omitempty"`
	NoTo       []string `json:"no_to,omitempty"`
	DoubleFrom []string `json:"double_from,omitempty"`
	HalfFrom   []string `json:"half_from,omitempty"`
	NoFrom     []string `json:"no_from,omitempty"`
}

// Effect multipliers
const (
	EffectDouble  = 2.0
	EffectHalf    = 0.5
	EffectNone    = 0.0
	EffectNeutral = 1.0
)

// RelationTable maps an attacking type to its outgoing relations.
// It is built once and never mutated.
type RelationTable map[string]Relations

// Multiplier returns the effect of attacking on a single defending type.
// A type missing from every outgoing set is neutral.
func (t RelationTable) Multiplier(attacking, defending string) float64 {
	rel, ok := t[attacking]
	if !ok {
		return EffectNeutral
	}
	switch {
	case contains(rel.DoubleTo, defending):
		return EffectDouble
	case contains(rel.HalfTo, defending):
		return EffectHalf
	case contains(rel.NoTo, defending):
		return EffectNone
	default:
		return EffectNeutral
	}
}

// Against composes the multiplier across every defending type
func (t RelationTable) Against(attacking string, defending ...string) float64 {
	total := EffectNeutral
	for _, def := range defending {
		total *= t.Multiplier(attacking, def)
	}
	return total
}

func contains(list []string, name string) bool {
	for _, item := range list {
		if item == name {
			return true
		}
	}
	return false
}

// TypeInfo is the static display metadata of a type
type TypeInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Color       string `json:"color"`
}

// KnownTypes lists the types the API serves, in canonical order.
// Types outside this table (such as "unknown" and "shadow") are ignored.
var KnownTypes = []TypeInfo{
	{Name: "normal", DisplayName: "Normal", Color: "#A8A77A"},
	{Name: "fire", DisplayName: "Fire", Color: "#EE8130"},
	{Name: "water", DisplayName: "Water", Color: "#6390F0"},
	{Name: "electric", DisplayName: "Electric", Color: "#F7D02C"},
	{Name: "grass", DisplayName: "Grass", Color: "#7AC74C"},
	{Name: "ice", DisplayName: "Ice", Color: "#96D9D6"},
	{Name: "fighting", DisplayName: "Fighting", Color: "#C22E28"},
	{Name: "poison", DisplayName: "Poison", Color: "#A33EA1"},
	{Name: "ground", DisplayName: "Ground", Color: "#E2BF65"},
	{Name: "flying", DisplayName: "Flying", Color: "#A98FF3"},
	{Name: "psychic", DisplayName: "Psychic", Color: "#F95587"},
	{Name: "bug", DisplayName: "Bug", Color: "#A6B91A"},
	{Name: "rock", DisplayName: "Rock", Color: "#B6A136"},
	{Name: "ghost", DisplayName: "Ghost", Color: "#735797"},
	{Name: "dragon", DisplayName: "Dragon", Color: "#6F35FC"},
	{Name: "dark", DisplayName: "Dark", Color: "#705746"},
	{Name: "steel", DisplayName: "Steel", Color: "#B7B7CE"},
	{Name: "fairy", DisplayName: "Fairy", Color: "#D685AD"},
}

var typesByName = func() map[string]TypeInfo {
	m := make(map[string]TypeInfo, len(KnownTypes))
	for _, info := range KnownTypes {
		m[info.Name] = info
	}
	return m
}()

// LookupType returns the metadata of a known type
func LookupType(name string) (TypeInfo, bool) {
	info, ok := typesByName[name]
	return info, ok
}
