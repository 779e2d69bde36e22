package pokedex

import "strings"

// Species is the descriptive layer shared across the forms of a pokemon
type Species struct {
	ID                 int          `json:"id"`
	Name               string       `json:"name"`
	FlavorTexts        []FlavorText `json:"flavor_texts,omitempty"`
	EvolutionChainLink string       `json:"evolution_chain_link"`
	EvolvesFrom        *Ref         `json:"evolves_from,omitempty"`
	Generation         string       `json:"generation,omitempty"`
	IsBaby             bool         `json:"is_baby"`
	IsLegendary        bool         `json:"is_legendary"`
	IsMythical         bool         `json:"is_mythical"`
}

// FlavorText is a localized description tied to a game version
type FlavorText struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	Version  string `json:"version"`
}

// NoEnglishEntry is returned when a species has no English flavor text
const NoEnglishEntry = "No English Pokédex entry available."

var preferredSpeciesVersions = []string{
	"scarlet", "violet", "sword", "shield", "lets-go-pikachu", "ultra-sun",
	"sun", "moon", "omega-ruby", "alpha-sapphire", "x", "y",
}

// Description picks the English flavor text from the most recent preferred
// game, falling back to the last English entry.
func (s *Species) Description() string {
	var english []FlavorText
	for _, entry := range s.FlavorTexts {
		if entry.Language == "en" {
			english = append(english, entry)
		}
	}
	if len(english) == 0 {
		return NoEnglishEntry
	}

	for _, version := range preferredSpeciesVersions {
		for _, entry := range english {
			if entry.Version == version {
				return cleanFlavor(entry.Text)
			}
		}
	}
	return cleanFlavor(english[len(english)-1].Text)
}

var flavorReplacer = strings.NewReplacer("\f", " ", "\n", " ")

func cleanFlavor(text string) string {
	return strings.TrimSpace(flavorReplacer.Replace(text))
}
