package listing

import "github.com/KirkDiggler/dex-api/internal/entities/pokedex"

// Selector names one of the candidate lists
type Selector string

// Selectors in precedence order, highest first
const (
	SelectorRegion     Selector = "region"
	SelectorGeneration Selector = "generation"
	SelectorTypes      Selector = "types"
	SelectorAll        Selector = "all"
)

// Filter is the full filter state the engine aggregates for
type Filter struct {
	Region     string   `json:"region,omitempty"`
	Generation string   `json:"generation,omitempty"`
	Types      []string `json:"types,omitempty"`
	Search     string   `json:"search,omitempty"`
	PageIndex  int      `json:"page_index"`
	PageSize   int      `json:"page_size"`
}

// Active returns the selector that wins for this filter
func (f Filter) Active() Selector {
	switch {
	case f.Region != "":
		return SelectorRegion
	case f.Generation != "":
		return SelectorGeneration
	case len(f.Types) > 0:
		return SelectorTypes
	default:
		return SelectorAll
	}
}

func (f Filter) clone() Filter {
	f.Types = append([]string(nil), f.Types...)
	return f
}

// View is an immutable snapshot of the engine's output
type View struct {
	Filter Filter        `json:"filter"`
	Items  []pokedex.Ref `json:"items"`
	// Total counts the active list after search, across all pages
	Total     int `json:"total"`
	PageIndex int `json:"page_index"`
	PageSize  int `json:"page_size"`
	PageCount int `json:"page_count"`
	// TotalAvailable is the count the API reports for the whole list
	TotalAvailable int      `json:"total_available"`
	Active         Selector `json:"active"`
	Loading        bool     `json:"loading"`
	Error          string   `json:"error,omitempty"`
}

type eventKind int

const (
	eventSettle eventKind = iota
	eventRegion
	eventGeneration
	eventTypes
	eventSearch
	eventPage
)

// Event is one filter change fed to the engine
type Event struct {
	kind  eventKind
	value string
	types []string
	index int
	size  int
}

// RegionChanged selects a region by name; empty clears it
func RegionChanged(name string) Event {
	return Event{kind: eventRegion, value: name}
}

// GenerationChanged selects a generation by name; empty clears it
func GenerationChanged(name string) Event {
	return Event{kind: eventGeneration, value: name}
}

// TypesChanged replaces the selected type set; no names clears it
func TypesChanged(names ...string) Event {
	return Event{kind: eventTypes, types: names}
}

// SearchChanged replaces the free-text query
func SearchChanged(query string) Event {
	return Event{kind: eventSearch, value: query}
}

// PageChanged moves to a page. A zero size keeps the current size.
func PageChanged(index, size int) Event {
	return Event{kind: eventPage, index: index, size: size}
}

// Settle changes nothing; applying it waits for pending loads
func Settle() Event {
	return Event{kind: eventSettle}
}
