package typechart

import "github.com/KirkDiggler/dex-api/internal/entities/pokedex"

// Entry is one row of a coverage or profile listing
type Entry struct {
	Type       pokedex.TypeInfo `json:"type"`
	Multiplier float64          `json:"multiplier"`
}

// ListTypesOutput defines the response for listing the loaded types
type ListTypesOutput struct {
	Types []pokedex.TypeInfo
}

// MultiplierInput defines the request for a composed multiplier
type MultiplierInput struct {
	Attacking string
	Defending []string
}

// MultiplierOutput defines the response for a composed multiplier
type MultiplierOutput struct {
	Multiplier float64
}

// EffectivenessInput defines the request for an attack-vs-defense verdict
type EffectivenessInput struct {
	Attacking string
	Defending []string
}

// EffectivenessOutput defines the response for an attack-vs-defense verdict
type EffectivenessOutput struct {
	Multiplier       float64
	Message          string
	DefendingSummary string
}

// CoverageInput defines the request for an attack coverage listing
type CoverageInput struct {
	Attacking string
}

// CoverageOutput lists every type by how hard Attacking hits it,
// strongest first
type CoverageOutput struct {
	Entries []Entry
}

// ProfileInput defines the request for a defense profile
type ProfileInput struct {
	Defending []string
}

// ProfileOutput lists every attacking type against Defending,
// worst defensive match first
type ProfileOutput struct {
	Entries []Entry
}

// Verdict messages
const (
	MessageSuperEffective = "Super effective!"
	MessageNormal         = "Normally effective."
	MessageNotVery        = "Not very effective..."
	MessageNoEffect       = "No effect!"
)
