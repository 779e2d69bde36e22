package pokedex

// Page is one page of a paginated list resource
type Page struct {
	Count    int    `json:"count"`
	Next     string `json:"next,omitempty"`
	Previous string `json:"previous,omitempty"`
	Results  []Ref  `json:"results"`
}

// Generation lists the species introduced in a generation
type Generation struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Species []Ref  `json:"species"`
}

// Region lists the regional pokedexes of a region
type Region struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Pokedexes []Ref  `json:"pokedexes"`
}

// Pokedex lists the species entries of one regional pokedex
type Pokedex struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Entries []Ref  `json:"entries"`
}
