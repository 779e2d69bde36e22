package pokeapi

// Wire formats of the PokeAPI resources we read. Only fields the dex uses
// are declared; everything else in the payload is ignored by the decoder.

type apiRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type apiPage struct {
	Count    int      `json:"count"`
	Next     *string  `json:"next"`
	Previous *string  `json:"previous"`
	Results  []apiRef `json:"results"`
}

type apiPokemon struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Height  int    `json:"height"`
	Weight  int    `json:"weight"`
	Sprites struct {
		FrontDefault *string `json:"front_default"`
		Other        struct {
			OfficialArtwork struct {
				FrontDefault *string `json:"front_default"`
			} `json:"official-artwork"`
		} `json:"other"`
	} `json:"sprites"`
	Types []struct {
		Slot int    `json:"slot"`
		Type apiRef `json:"type"`
	} `json:"types"`
	Stats []struct {
		BaseStat int    `json:"base_stat"`
		Stat     apiRef `json:"stat"`
	} `json:"stats"`
	Abilities []struct {
		Ability  apiRef `json:"ability"`
		IsHidden bool   `json:"is_hidden"`
	} `json:"abilities"`
	Moves []struct {
		Move                apiRef `json:"move"`
		VersionGroupDetails []struct {
			LevelLearnedAt  int    `json:"level_learned_at"`
			MoveLearnMethod apiRef `json:"move_learn_method"`
			VersionGroup    apiRef `json:"version_group"`
		} `json:"version_group_details"`
	} `json:"moves"`
}

type apiSpecies struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	IsBaby             bool    `json:"is_baby"`
	IsLegendary        bool    `json:"is_legendary"`
	IsMythical         bool    `json:"is_mythical"`
	EvolvesFromSpecies *apiRef `json:"evolves_from_species"`
	EvolutionChain     struct {
		URL string `json:"url"`
	} `json:"evolution_chain"`
	Generation        apiRef `json:"generation"`
	FlavorTextEntries []struct {
		FlavorText string `json:"flavor_text"`
		Language   apiRef `json:"language"`
		Version    apiRef `json:"version"`
	} `json:"flavor_text_entries"`
}

type apiEvolutionDetail struct {
	Trigger            apiRef  `json:"trigger"`
	MinLevel           *int    `json:"min_level"`
	Item               *apiRef `json:"item"`
	HeldItem           *apiRef `json:"held_item"`
	KnownMove          *apiRef `json:"known_move"`
	Location           *apiRef `json:"location"`
	TradeSpecies       *apiRef `json:"trade_species"`
	TimeOfDay          string  `json:"time_of_day"`
	MinHappiness       *int    `json:"min_happiness"`
	MinAffection       *int    `json:"min_affection"`
	MinBeauty          *int    `json:"min_beauty"`
	Gender             *int    `json:"gender"`
	NeedsOverworldRain bool    `json:"needs_overworld_rain"`
	TurnUpsideDown     bool    `json:"turn_upside_down"`
}

type apiChainLink struct {
	Species          apiRef               `json:"species"`
	EvolutionDetails []apiEvolutionDetail `json:"evolution_details"`
	EvolvesTo        []apiChainLink       `json:"evolves_to"`
}

type apiEvolutionChain struct {
	ID              int          `json:"id"`
	BabyTriggerItem *apiRef      `json:"baby_trigger_item"`
	Chain           apiChainLink `json:"chain"`
}

type apiDamageRelations struct {
	DoubleDamageTo   []apiRef `json:"double_damage_to"`
	HalfDamageTo     []apiRef `json:"half_damage_to"`
	NoDamageTo       []apiRef `json:"no_damage_to"`
	DoubleDamageFrom []apiRef `json:"double_damage_from"`
	HalfDamageFrom   []apiRef `json:"half_damage_from"`
	NoDamageFrom     []apiRef `json:"no_damage_from"`
}

type apiType struct {
	ID              int                `json:"id"`
	Name            string             `json:"name"`
	DamageRelations apiDamageRelations `json:"damage_relations"`
	Pokemon         []struct {
		Slot    int    `json:"slot"`
		Pokemon apiRef `json:"pokemon"`
	} `json:"pokemon"`
}

type apiMove struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Accuracy      *int    `json:"accuracy"`
	Power         *int    `json:"power"`
	PP            *int    `json:"pp"`
	EffectChance  *int    `json:"effect_chance"`
	Priority      int     `json:"priority"`
	Type          apiRef  `json:"type"`
	DamageClass   *apiRef `json:"damage_class"`
	Target        apiRef  `json:"target"`
	Generation    apiRef  `json:"generation"`
	EffectEntries []struct {
		Effect      string `json:"effect"`
		ShortEffect string `json:"short_effect"`
		Language    apiRef `json:"language"`
	} `json:"effect_entries"`
	FlavorTextEntries []struct {
		FlavorText   string `json:"flavor_text"`
		Language     apiRef `json:"language"`
		VersionGroup apiRef `json:"version_group"`
	} `json:"flavor_text_entries"`
	Meta *struct {
		Ailment       *apiRef `json:"ailment"`
		Category      *apiRef `json:"category"`
		CritRate      int     `json:"crit_rate"`
		FlinchChance  int     `json:"flinch_chance"`
		Drain         int     `json:"drain"`
		Healing       int     `json:"healing"`
		AilmentChance int     `json:"ailment_chance"`
		StatChance    int     `json:"stat_chance"`
		MinHits       *int    `json:"min_hits"`
		MaxHits       *int    `json:"max_hits"`
		MinTurns      *int    `json:"min_turns"`
		MaxTurns      *int    `json:"max_turns"`
	} `json:"meta"`
}

type apiGeneration struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	PokemonSpecies []apiRef `json:"pokemon_species"`
}

type apiRegion struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Pokedexes []apiRef `json:"pokedexes"`
}

type apiPokedex struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	PokemonEntries []struct {
		EntryNumber    int    `json:"entry_number"`
		PokemonSpecies apiRef `json:"pokemon_species"`
	} `json:"pokemon_entries"`
}
