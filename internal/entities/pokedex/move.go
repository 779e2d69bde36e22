package pokedex

import (
	"strconv"
	"strings"
)

// Move is a fully resolved move record. Nullable numbers are nil when the
// move has no such value.
type Move struct {
	ID            int              `json:"id"`
	Name          string           `json:"name"`
	Accuracy      *int             `json:"accuracy"`
	Power         *int             `json:"power"`
	PP            *int             `json:"pp"`
	EffectChance  *int             `json:"effect_chance"`
	Priority      int              `json:"priority"`
	Type          Ref              `json:"type"`
	DamageClass   string           `json:"damage_class"`
	Target        string           `json:"target,omitempty"`
	Generation    string           `json:"generation,omitempty"`
	EffectEntries []EffectEntry    `json:"effect_entries,omitempty"`
	FlavorTexts   []MoveFlavorText `json:"flavor_texts,omitempty"`
	Meta          *MoveMeta        `json:"meta,omitempty"`
}

// EffectEntry is a localized description of what a move does
type EffectEntry struct {
	Effect      string `json:"effect"`
	ShortEffect string `json:"short_effect"`
	Language    string `json:"language"`
}

// MoveFlavorText is a localized move description tied to a version group
type MoveFlavorText struct {
	Text         string `json:"text"`
	Language     string `json:"language"`
	VersionGroup string `json:"version_group"`
}

// MoveMeta holds the battle metadata of a move
type MoveMeta struct {
	Ailment       string `json:"ailment,omitempty"`
	Category      string `json:"category,omitempty"`
	CritRate      int    `json:"crit_rate"`
	FlinchChance  int    `json:"flinch_chance"`
	Drain         int    `json:"drain"`
	Healing       int    `json:"healing"`
	AilmentChance int    `json:"ailment_chance"`
	StatChance    int    `json:"stat_chance"`
	MinHits       *int   `json:"min_hits,omitempty"`
	MaxHits       *int   `json:"max_hits,omitempty"`
	MinTurns      *int   `json:"min_turns,omitempty"`
	MaxTurns      *int   `json:"max_turns,omitempty"`
}

// ShortEffect returns the English short effect with the effect chance filled in
func (m *Move) ShortEffect() string {
	for _, entry := range m.EffectEntries {
		if entry.Language != "en" {
			continue
		}
		chance := ""
		if m.EffectChance != nil {
			chance = strconv.Itoa(*m.EffectChance)
		}
		return strings.Replace(entry.ShortEffect, "$effect_chance", chance, 1)
	}
	return ""
}

var preferredMoveVersionGroups = []string{
	"scarlet-violet", "sword-shield", "sun-moon", "ultra-sun-ultra-moon",
}

// Description returns the English flavor text from a preferred version
// group, the last English entry otherwise, or "" when there is none.
func (m *Move) Description() string {
	var english []MoveFlavorText
	for _, entry := range m.FlavorTexts {
		if entry.Language == "en" {
			english = append(english, entry)
		}
	}
	if len(english) == 0 {
		return ""
	}

	for _, group := range preferredMoveVersionGroups {
		for _, entry := range english {
			if entry.VersionGroup == group {
				return cleanFlavor(entry.Text)
			}
		}
	}
	return cleanFlavor(english[len(english)-1].Text)
}
