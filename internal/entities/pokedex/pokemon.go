package pokedex

// Pokemon is a fully resolved creature record
type Pokemon struct {
	ID        int            `json:"id"`
	Name      string         `json:"name"`
	Height    int            `json:"height"`
	Weight    int            `json:"weight"`
	Sprites   Sprites        `json:"sprites"`
	Types     []Ref          `json:"types"`
	Stats     []Stat         `json:"stats"`
	Abilities []Ref          `json:"abilities"`
	Moves     []MoveLearning `json:"moves,omitempty"`
}

// Sprites holds the image links of a pokemon
type Sprites struct {
	FrontDefault    string `json:"front_default,omitempty"`
	OfficialArtwork string `json:"official_artwork,omitempty"`
}

// ImageURL prefers the official artwork over the default sprite
func (p *Pokemon) ImageURL() string {
	if p.Sprites.OfficialArtwork != "" {
		return p.Sprites.OfficialArtwork
	}
	return p.Sprites.FrontDefault
}

// Summary reduces the pokemon to what an evolution node shows
func (p *Pokemon) Summary() *Summary {
	sprite := p.Sprites.FrontDefault
	if sprite == "" {
		sprite = p.Sprites.OfficialArtwork
	}
	return &Summary{
		ID:        p.ID,
		Name:      p.Name,
		SpriteURL: sprite,
	}
}

// Stat is one base statistic
type Stat struct {
	Name string `json:"name"`
	Base int    `json:"base"`
}

var statDisplayNames = map[string]string{
	"hp":              "HP",
	"attack":          "Attack",
	"defense":         "Defense",
	"special-attack":  "Sp. Attack",
	"special-defense": "Sp. Defense",
	"speed":           "Speed",
}

// StatDisplayName returns the short label of a stat, or the slug itself
func StatDisplayName(name string) string {
	if display, ok := statDisplayNames[name]; ok {
		return display
	}
	return name
}

// MoveLearning is a move together with every way the pokemon acquires it
type MoveLearning struct {
	Move    Ref           `json:"move"`
	Details []LearnDetail `json:"details"`
}

// LearnDetail is one (version group, method, level) acquisition triple.
// Level is 0 when the method has no level.
type LearnDetail struct {
	VersionGroup string `json:"version_group"`
	Method       string `json:"method"`
	Level        int    `json:"level"`
}

// Learn methods with special handling
const (
	LearnMethodLevelUp = "level-up"
)
