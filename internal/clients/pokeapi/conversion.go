package pokeapi

import (
	"github.com/KirkDiggler/dex-api/internal/entities/pokedex"
)

func toRef(r apiRef) pokedex.Ref {
	return pokedex.Ref{Name: r.Name, Link: r.URL}
}

func toRefs(in []apiRef) []pokedex.Ref {
	out := make([]pokedex.Ref, len(in))
	for i, r := range in {
		out[i] = toRef(r)
	}
	return out
}

func refNames(in []apiRef) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	for i, r := range in {
		out[i] = r.Name
	}
	return out
}

func refName(r *apiRef) string {
	if r == nil {
		return ""
	}
	return r.Name
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func convertPage(in *apiPage) *pokedex.Page {
	return &pokedex.Page{
		Count:    in.Count,
		Next:     deref(in.Next),
		Previous: deref(in.Previous),
		Results:  toRefs(in.Results),
	}
}

func convertPokemon(in *apiPokemon) *pokedex.Pokemon {
	out := &pokedex.Pokemon{
		ID:     in.ID,
		Name:   in.Name,
		Height: in.Height,
		Weight: in.Weight,
		Sprites: pokedex.Sprites{
			FrontDefault:    deref(in.Sprites.FrontDefault),
			OfficialArtwork: deref(in.Sprites.Other.OfficialArtwork.FrontDefault),
		},
	}

	for _, t := range in.Types {
		out.Types = append(out.Types, toRef(t.Type))
	}
	for _, st := range in.Stats {
		out.Stats = append(out.Stats, pokedex.Stat{Name: st.Stat.Name, Base: st.BaseStat})
	}
	for _, a := range in.Abilities {
		out.Abilities = append(out.Abilities, toRef(a.Ability))
	}
	for _, m := range in.Moves {
		learning := pokedex.MoveLearning{Move: toRef(m.Move)}
		for _, d := range m.VersionGroupDetails {
			learning.Details = append(learning.Details, pokedex.LearnDetail{
				VersionGroup: d.VersionGroup.Name,
				Method:       d.MoveLearnMethod.Name,
				Level:        d.LevelLearnedAt,
			})
		}
		out.Moves = append(out.Moves, learning)
	}

	return out
}

func convertSpecies(in *apiSpecies) *pokedex.Species {
	out := &pokedex.Species{
		ID:                 in.ID,
		Name:               in.Name,
		EvolutionChainLink: in.EvolutionChain.URL,
		Generation:         in.Generation.Name,
		IsBaby:             in.IsBaby,
		IsLegendary:        in.IsLegendary,
		IsMythical:         in.IsMythical,
	}
	if in.EvolvesFromSpecies != nil {
		ref := toRef(*in.EvolvesFromSpecies)
		out.EvolvesFrom = &ref
	}
	for _, ft := range in.FlavorTextEntries {
		out.FlavorTexts = append(out.FlavorTexts, pokedex.FlavorText{
			Text:     ft.FlavorText,
			Language: ft.Language.Name,
			Version:  ft.Version.Name,
		})
	}
	return out
}

func convertCondition(in apiEvolutionDetail) pokedex.EvolutionCondition {
	return pokedex.EvolutionCondition{
		Trigger:            in.Trigger.Name,
		MinLevel:           in.MinLevel,
		Item:               refName(in.Item),
		HeldItem:           refName(in.HeldItem),
		KnownMove:          refName(in.KnownMove),
		Location:           refName(in.Location),
		TradeSpecies:       refName(in.TradeSpecies),
		TimeOfDay:          in.TimeOfDay,
		MinHappiness:       in.MinHappiness,
		MinAffection:       in.MinAffection,
		MinBeauty:          in.MinBeauty,
		Gender:             in.Gender,
		NeedsOverworldRain: in.NeedsOverworldRain,
		TurnUpsideDown:     in.TurnUpsideDown,
	}
}

// convertEvolutionChain flattens the nested chain into a pre-order arena
// using an explicit stack, so chain depth never grows the call stack.
func convertEvolutionChain(in *apiEvolutionChain) *pokedex.EvolutionTree {
	out := &pokedex.EvolutionTree{ID: in.ID, Root: 0}
	if in.BabyTriggerItem != nil {
		ref := toRef(*in.BabyTriggerItem)
		out.BabyTriggerItem = &ref
	}

	type pending struct {
		link   *apiChainLink
		parent int
	}
	stack := []pending{{link: &in.Chain, parent: pokedex.NoParent}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := pokedex.EvolutionNode{
			Species: toRef(top.link.Species),
			Parent:  top.parent,
		}
		for _, d := range top.link.EvolutionDetails {
			node.Conditions = append(node.Conditions, convertCondition(d))
		}

		idx := len(out.Nodes)
		out.Nodes = append(out.Nodes, node)
		if top.parent != pokedex.NoParent {
			out.Nodes[top.parent].Children = append(out.Nodes[top.parent].Children, idx)
		}

		for i := len(top.link.EvolvesTo) - 1; i >= 0; i-- {
			stack = append(stack, pending{link: &top.link.EvolvesTo[i], parent: idx})
		}
	}

	return out
}

func convertType(in *apiType) *pokedex.Type {
	out := &pokedex.Type{
		ID:   in.ID,
		Name: in.Name,
		Relations: pokedex.Relations{
			DoubleTo:   refNames(in.DamageRelations.DoubleDamageTo),
			HalfTo:     refNames(in.DamageRelations.HalfDamageTo),
			NoTo:       refNames(in.DamageRelations.NoDamageTo),
			DoubleFrom: refNames(in.DamageRelations.DoubleDamageFrom),
			HalfFrom:   refNames(in.DamageRelations.HalfDamageFrom),
			NoFrom:     refNames(in.DamageRelations.NoDamageFrom),
		},
	}
	for _, p := range in.Pokemon {
		out.Members = append(out.Members, toRef(p.Pokemon))
	}
	return out
}

func convertMove(in *apiMove) *pokedex.Move {
	out := &pokedex.Move{
		ID:           in.ID,
		Name:         in.Name,
		Accuracy:     in.Accuracy,
		Power:        in.Power,
		PP:           in.PP,
		EffectChance: in.EffectChance,
		Priority:     in.Priority,
		Type:         toRef(in.Type),
		DamageClass:  refName(in.DamageClass),
		Target:       in.Target.Name,
		Generation:   in.Generation.Name,
	}
	for _, e := range in.EffectEntries {
		out.EffectEntries = append(out.EffectEntries, pokedex.EffectEntry{
			Effect:      e.Effect,
			ShortEffect: e.ShortEffect,
			Language:    e.Language.Name,
		})
	}
	for _, ft := range in.FlavorTextEntries {
		out.FlavorTexts = append(out.FlavorTexts, pokedex.MoveFlavorText{
			Text:         ft.FlavorText,
			Language:     ft.Language.Name,
			VersionGroup: ft.VersionGroup.Name,
		})
	}
	if in.Meta != nil {
		out.Meta = &pokedex.MoveMeta{
			Ailment:       refName(in.Meta.Ailment),
			Category:      refName(in.Meta.Category),
			CritRate:      in.Meta.CritRate,
			FlinchChance:  in.Meta.FlinchChance,
			Drain:         in.Meta.Drain,
			Healing:       in.Meta.Healing,
			AilmentChance: in.Meta.AilmentChance,
			StatChance:    in.Meta.StatChance,
			MinHits:       in.Meta.MinHits,
			MaxHits:       in.Meta.MaxHits,
			MinTurns:      in.Meta.MinTurns,
			MaxTurns:      in.Meta.MaxTurns,
		}
	}
	return out
}

func convertGeneration(in *apiGeneration) *pokedex.Generation {
	return &pokedex.Generation{ID: in.ID, Name: in.Name, Species: toRefs(in.PokemonSpecies)}
}

func convertRegion(in *apiRegion) *pokedex.Region {
	return &pokedex.Region{ID: in.ID, Name: in.Name, Pokedexes: toRefs(in.Pokedexes)}
}

func convertPokedex(in *apiPokedex) *pokedex.Pokedex {
	out := &pokedex.Pokedex{ID: in.ID, Name: in.Name}
	for _, e := range in.PokemonEntries {
		out.Entries = append(out.Entries, toRef(e.PokemonSpecies))
	}
	return out
}
