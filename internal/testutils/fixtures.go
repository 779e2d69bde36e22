package testutils

import (
	"fmt"
	"strings"
)

// Type ids as the API numbers them
var typeIDs = map[string]int{
	"normal": 1, "fighting": 2, "flying": 3, "poison": 4, "ground": 5, "rock": 6,
	"bug": 7, "ghost": 8, "steel": 9, "fire": 10, "water": 11, "grass": 12,
	"electric": 13, "psychic": 14, "ice": 15, "dragon": 16, "dark": 17, "fairy": 18,
	"unknown": 10001,
}

type fixturePokemon struct {
	id    int
	name  string
	types []string
	moves string
}

var fixturePokemonList = []fixturePokemon{
	{id: 1, name: "bulbasaur", types: []string{"grass", "poison"}},
	{id: 4, name: "charmander", types: []string{"fire"}},
	{id: 6, name: "charizard", types: []string{"fire", "flying"}},
	{id: 16, name: "pidgey", types: []string{"normal", "flying"}},
	{id: 25, name: "pikachu", types: []string{"electric"}, moves: pikachuMoves},
	{id: 26, name: "raichu", types: []string{"electric"}},
	{id: 133, name: "eevee", types: []string{"normal"}},
	{id: 134, name: "vaporeon", types: []string{"water"}},
	{id: 135, name: "jolteon", types: []string{"electric"}},
	{id: 136, name: "flareon", types: []string{"fire"}},
	{id: 172, name: "pichu", types: []string{"electric"}},
}

const pikachuMoves = `[
  {"move":{"name":"thunder-shock","url":"{{base}}/move/84/"},"version_group_details":[
    {"level_learned_at":1,"move_learn_method":{"name":"level-up","url":"{{base}}/move-learn-method/1/"},"version_group":{"name":"sword-shield","url":"{{base}}/version-group/20/"}}]},
  {"move":{"name":"quick-attack","url":"{{base}}/move/98/"},"version_group_details":[
    {"level_learned_at":16,"move_learn_method":{"name":"level-up","url":"{{base}}/move-learn-method/1/"},"version_group":{"name":"red-blue","url":"{{base}}/version-group/1/"}},
    {"level_learned_at":6,"move_learn_method":{"name":"level-up","url":"{{base}}/move-learn-method/1/"},"version_group":{"name":"sword-shield","url":"{{base}}/version-group/20/"}}]},
  {"move":{"name":"thunderbolt","url":"{{base}}/move/85/"},"version_group_details":[
    {"level_learned_at":0,"move_learn_method":{"name":"machine","url":"{{base}}/move-learn-method/4/"},"version_group":{"name":"sword-shield","url":"{{base}}/version-group/20/"}}]},
  {"move":{"name":"surf","url":"{{base}}/move/57/"},"version_group_details":[
    {"level_learned_at":0,"move_learn_method":{"name":"tutor","url":"{{base}}/move-learn-method/3/"},"version_group":{"name":"x-y","url":"{{base}}/version-group/15/"}},
    {"level_learned_at":0,"move_learn_method":{"name":"egg","url":"{{base}}/move-learn-method/2/"},"version_group":{"name":"sword-shield","url":"{{base}}/version-group/20/"}}]}
]`

func pokemonJSON(p fixturePokemon) string {
	types := make([]string, len(p.types))
	for i, t := range p.types {
		types[i] = fmt.Sprintf(`{"slot":%d,"type":{"name":%q,"url":"{{base}}/type/%d/"}}`, i+1, t, typeIDs[t])
	}
	moves := p.moves
	if moves == "" {
		moves = "[]"
	}
	return fmt.Sprintf(`{
  "id": %[1]d,
  "name": %[2]q,
  "height": 4,
  "weight": 60,
  "sprites": {
    "front_default": "https://img.example/sprites/%[1]d.png",
    "other": {"official-artwork": {"front_default": "https://img.example/artwork/%[1]d.png"}}
  },
  "types": [%[3]s],
  "stats": [
    {"base_stat": 35, "stat": {"name": "hp", "url": "{{base}}/stat/1/"}},
    {"base_stat": 55, "stat": {"name": "attack", "url": "{{base}}/stat/2/"}},
    {"base_stat": 90, "stat": {"name": "speed", "url": "{{base}}/stat/6/"}}
  ],
  "abilities": [
    {"ability": {"name": "static", "url": "{{base}}/ability/9/"}, "is_hidden": false}
  ],
  "moves": %[4]s
}`, p.id, p.name, strings.Join(types, ","), moves)
}

func refJSON(kind, name string, id int) string {
	return fmt.Sprintf(`{"name":%q,"url":"{{base}}/%s/%d/"}`, name, kind, id)
}

func refListJSON(kind string, names []string, ids []int) string {
	parts := make([]string, len(names))
	for i := range names {
		parts[i] = refJSON(kind, names[i], ids[i])
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func typeJSON(name string, doubleTo, halfTo, noTo []string, members map[string]int) string {
	rel := func(list []string) string {
		parts := make([]string, len(list))
		for i, t := range list {
			parts[i] = refJSON("type", t, typeIDs[t])
		}
		return "[" + strings.Join(parts, ",") + "]"
	}
	var memberParts []string
	for _, p := range fixturePokemonList {
		if _, ok := members[p.name]; ok {
			memberParts = append(memberParts, fmt.Sprintf(`{"slot":1,"pokemon":%s}`, refJSON("pokemon", p.name, p.id)))
		}
	}
	return fmt.Sprintf(`{
  "id": %d,
  "name": %q,
  "damage_relations": {
    "double_damage_to": %s,
    "half_damage_to": %s,
    "no_damage_to": %s,
    "double_damage_from": [],
    "half_damage_from": [],
    "no_damage_from": []
  },
  "pokemon": [%s]
}`, typeIDs[name], name, rel(doubleTo), rel(halfTo), rel(noTo), strings.Join(memberParts, ","))
}

func set(names ...string) map[string]int {
	m := make(map[string]int, len(names))
	for _, n := range names {
		m[n] = 1
	}
	return m
}

func speciesJSON(id int, name string, chainID int, evolvesFrom string) string {
	from := "null"
	if evolvesFrom != "" {
		for _, p := range fixturePokemonList {
			if p.name == evolvesFrom {
				from = refJSON("pokemon-species", p.name, p.id)
			}
		}
	}
	return fmt.Sprintf(`{
  "id": %[1]d,
  "name": %[2]q,
  "is_baby": %[5]t,
  "is_legendary": false,
  "is_mythical": false,
  "evolves_from_species": %[4]s,
  "evolution_chain": {"url": "{{base}}/evolution-chain/%[3]d/"},
  "generation": {"name": "generation-i", "url": "{{base}}/generation/1/"},
  "flavor_text_entries": [
    {"flavor_text": "An old\fentry for %[2]s.", "language": {"name": "en", "url": ""}, "version": {"name": "red", "url": ""}},
    {"flavor_text": "A newer\nentry for %[2]s.", "language": {"name": "en", "url": ""}, "version": {"name": "sword", "url": ""}},
    {"flavor_text": "Une entrée.", "language": {"name": "fr", "url": ""}, "version": {"name": "sword", "url": ""}}
  ]
}`, id, name, chainID, from, id == 172)
}

func chainLinkJSON(name string, id int, details string, evolvesTo ...string) string {
	return fmt.Sprintf(`{"species":%s,"evolution_details":[%s],"evolves_to":[%s]}`,
		refJSON("pokemon-species", name, id), details, strings.Join(evolvesTo, ","))
}

func detailJSON(trigger string, fields string) string {
	if fields != "" {
		fields = "," + fields
	}
	return fmt.Sprintf(`{"trigger":{"name":%q,"url":""},"min_level":null,"time_of_day":"","needs_overworld_rain":false,"turn_upside_down":false%s}`, trigger, fields)
}

func itemField(name string) string {
	return fmt.Sprintf(`"item":{"name":%q,"url":""}`, name)
}

// DefaultFixtures maps API paths to bodies
var DefaultFixtures = buildFixtures()

func buildFixtures() map[string]string {
	f := make(map[string]string)

	var listParts []string
	// deliberately out of id order
	for i := len(fixturePokemonList) - 1; i >= 0; i-- {
		p := fixturePokemonList[i]
		listParts = append(listParts, refJSON("pokemon", p.name, p.id))
	}
	f["/pokemon/"] = fmt.Sprintf(`{"count":%d,"next":null,"previous":null,"results":[%s]}`,
		len(fixturePokemonList), strings.Join(listParts, ","))

	for _, p := range fixturePokemonList {
		body := pokemonJSON(p)
		f[fmt.Sprintf("/pokemon/%d/", p.id)] = body
		f["/pokemon/"+p.name+"/"] = body
	}

	species := []struct {
		id    int
		name  string
		chain int
		from  string
	}{
		{25, "pikachu", 10, "pichu"},
		{26, "raichu", 10, "pikachu"},
		{172, "pichu", 10, ""},
		{133, "eevee", 67, ""},
		{134, "vaporeon", 67, "eevee"},
	}
	for _, sp := range species {
		body := speciesJSON(sp.id, sp.name, sp.chain, sp.from)
		f[fmt.Sprintf("/pokemon-species/%d/", sp.id)] = body
		f["/pokemon-species/"+sp.name+"/"] = body
	}

	f["/evolution-chain/10/"] = fmt.Sprintf(`{"id":10,"baby_trigger_item":null,"chain":%s}`,
		chainLinkJSON("pichu", 172, "",
			chainLinkJSON("pikachu", 25, detailJSON("level-up", `"min_happiness":220`),
				chainLinkJSON("raichu", 26, detailJSON("use-item", itemField("thunder-stone"))))))

	f["/evolution-chain/67/"] = fmt.Sprintf(`{"id":67,"baby_trigger_item":null,"chain":%s}`,
		chainLinkJSON("eevee", 133, "",
			chainLinkJSON("vaporeon", 134, detailJSON("use-item", itemField("water-stone"))),
			chainLinkJSON("jolteon", 135, detailJSON("use-item", itemField("thunder-stone"))),
			chainLinkJSON("flareon", 136, detailJSON("use-item", itemField("fire-stone")))))

	f["/type/"] = fmt.Sprintf(`{"count":8,"next":null,"previous":null,"results":%s}`,
		refListJSON("type",
			[]string{"normal", "flying", "ground", "fire", "water", "grass", "electric", "unknown"},
			[]int{1, 3, 5, 10, 11, 12, 13, 10001}))
	types := map[string]string{
		"normal":   typeJSON("normal", nil, []string{"rock", "steel"}, []string{"ghost"}, set("pidgey", "eevee")),
		"flying":   typeJSON("flying", []string{"grass", "fighting", "bug"}, []string{"electric", "rock", "steel"}, nil, set("charizard", "pidgey")),
		"ground":   typeJSON("ground", []string{"fire", "electric", "poison", "rock", "steel"}, []string{"grass", "bug"}, []string{"flying"}, set()),
		"fire":     typeJSON("fire", []string{"grass", "ice", "bug", "steel"}, []string{"fire", "water", "rock", "dragon"}, nil, set("charmander", "charizard", "flareon")),
		"water":    typeJSON("water", []string{"fire", "ground", "rock"}, []string{"water", "grass", "dragon"}, nil, set("vaporeon")),
		"grass":    typeJSON("grass", []string{"water", "ground", "rock"}, []string{"fire", "grass", "poison", "flying", "bug", "dragon", "steel"}, nil, set("bulbasaur")),
		"electric": typeJSON("electric", []string{"water", "flying"}, []string{"electric", "grass", "dragon"}, []string{"ground"}, set("pikachu", "raichu", "jolteon", "pichu")),
	}
	for name, body := range types {
		f[fmt.Sprintf("/type/%d/", typeIDs[name])] = body
		f["/type/"+name+"/"] = body
	}

	f["/generation/"] = fmt.Sprintf(`{"count":2,"next":null,"previous":null,"results":%s}`,
		refListJSON("generation", []string{"generation-i", "generation-ii"}, []int{1, 2}))
	genOne := fmt.Sprintf(`{"id":1,"name":"generation-i","pokemon_species":%s}`,
		refListJSON("pokemon-species",
			[]string{"raichu", "bulbasaur", "pikachu", "charizard", "charmander", "pidgey", "eevee", "vaporeon", "jolteon", "flareon"},
			[]int{26, 1, 25, 6, 4, 16, 133, 134, 135, 136}))
	genTwo := fmt.Sprintf(`{"id":2,"name":"generation-ii","pokemon_species":%s}`,
		refListJSON("pokemon-species", []string{"pichu"}, []int{172}))
	f["/generation/1/"], f["/generation/generation-i/"] = genOne, genOne
	f["/generation/2/"], f["/generation/generation-ii/"] = genTwo, genTwo

	f["/region/"] = fmt.Sprintf(`{"count":2,"next":null,"previous":null,"results":%s}`,
		refListJSON("region", []string{"kanto", "johto"}, []int{1, 2}))
	kanto := fmt.Sprintf(`{"id":1,"name":"kanto","pokedexes":%s}`,
		refListJSON("pokedex", []string{"kanto", "missing-dex", "letsgo-kanto"}, []int{2, 99, 26}))
	johto := fmt.Sprintf(`{"id":2,"name":"johto","pokedexes":%s}`,
		refListJSON("pokedex", []string{"original-johto"}, []int{3}))
	f["/region/1/"], f["/region/kanto/"] = kanto, kanto
	f["/region/2/"], f["/region/johto/"] = johto, johto

	f["/pokedex/2/"] = pokedexJSON(2, "kanto", []string{"bulbasaur", "charmander", "pikachu"}, []int{1, 4, 25})
	f["/pokedex/26/"] = pokedexJSON(26, "letsgo-kanto", []string{"pikachu", "pidgey", "eevee"}, []int{25, 16, 133})
	f["/pokedex/3/"] = pokedexJSON(3, "original-johto", []string{"pichu", "pikachu"}, []int{172, 25})

	thunderbolt := `{
  "id": 85,
  "name": "thunderbolt",
  "accuracy": 100,
  "power": 90,
  "pp": 15,
  "effect_chance": 10,
  "priority": 0,
  "type": {"name": "electric", "url": "{{base}}/type/13/"},
  "damage_class": {"name": "special", "url": ""},
  "target": {"name": "selected-pokemon", "url": ""},
  "generation": {"name": "generation-i", "url": ""},
  "effect_entries": [
    {"effect": "Inflicts regular damage.", "short_effect": "Has a $effect_chance% chance to paralyze the target.", "language": {"name": "en", "url": ""}}
  ],
  "flavor_text_entries": [
    {"flavor_text": "A strong electric\nblast crashes down.", "language": {"name": "en", "url": ""}, "version_group": {"name": "sword-shield", "url": ""}}
  ],
  "meta": {
    "ailment": {"name": "paralysis", "url": ""},
    "category": {"name": "damage+ailment", "url": ""},
    "crit_rate": 0, "flinch_chance": 0, "drain": 0, "healing": 0,
    "ailment_chance": 10, "stat_chance": 0,
    "min_hits": null, "max_hits": null, "min_turns": null, "max_turns": null
  }
}`
	f["/move/85/"], f["/move/thunderbolt/"] = thunderbolt, thunderbolt

	return f
}

func pokedexJSON(id int, name string, species []string, ids []int) string {
	parts := make([]string, len(species))
	for i := range species {
		parts[i] = fmt.Sprintf(`{"entry_number":%d,"pokemon_species":%s}`, i+1, refJSON("pokemon-species", species[i], ids[i]))
	}
	return fmt.Sprintf(`{"id":%d,"name":%q,"pokemon_entries":[%s]}`, id, name, strings.Join(parts, ","))
}
