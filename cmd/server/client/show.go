package client

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dex-api/internal/entities/pokedex"
	dexv1 "github.com/KirkDiggler/dex-api/internal/handlers/dex/v1"
	"github.com/KirkDiggler/dex-api/internal/pkg/names"
)

var showCmd = &cobra.Command{
	Use:   "show [id-or-name]",
	Short: "Show a pokemon with its species entry and evolution tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	return withSession(cmd, 0, func(ctx context.Context, client *dexv1.Client, sessionID string) error {
		resp, err := client.ShowPokemon(ctx, &dexv1.ShowPokemonRequest{SessionID: sessionID, ID: args[0]})
		if err != nil {
			return fmt.Errorf("failed to show pokemon: %w", err)
		}
		if asJSON {
			return printJSON(out, resp)
		}

		view := resp.View
		p := view.Pokemon
		fmt.Fprintf(out, "#%03d %s\n", p.ID, names.Display(p.Name))
		fmt.Fprintf(out, "=====================\n")

		typeNames := make([]string, len(p.Types))
		for i, t := range p.Types {
			typeNames[i] = names.Display(t.Name)
		}
		fmt.Fprintf(out, "Types: %s\n", strings.Join(typeNames, " / "))
		fmt.Fprintf(out, "Height: %.1f m  Weight: %.1f kg\n", float64(p.Height)/10, float64(p.Weight)/10)
		if img := p.ImageURL(); img != "" {
			fmt.Fprintf(out, "Image: %s\n", img)
		}

		fmt.Fprintf(out, "\nBase stats:\n")
		for _, st := range p.Stats {
			fmt.Fprintf(out, "  %-12s %3d\n", pokedex.StatDisplayName(st.Name), st.Base)
		}

		if view.Description != "" {
			fmt.Fprintf(out, "\n%s\n", view.Description)
		}
		if view.ExtendedError != "" {
			fmt.Fprintf(out, "\nSpecies details unavailable: %s\n", view.ExtendedError)
		}
		if view.Evolution != nil {
			fmt.Fprintf(out, "\nEvolution:\n")
			printTree(out, view.Evolution, view.Evolution.Root, 1)
		}
		for _, w := range view.Warnings {
			fmt.Fprintf(out, "Warning: %s\n", w)
		}
		return nil
	})
}

func printTree(out io.Writer, tree *pokedex.EvolutionTree, idx, depth int) {
	node := tree.Nodes[idx]
	line := names.Display(node.Species.Name)
	if node.Summary != nil && node.Summary.ID != 0 {
		line = fmt.Sprintf("#%03d %s", node.Summary.ID, line)
	}
	if len(node.Conditions) > 0 {
		conds := make([]string, len(node.Conditions))
		for i, c := range node.Conditions {
			conds[i] = c.Describe()
		}
		line += " (" + strings.Join(conds, " or ") + ")"
	}
	fmt.Fprintf(out, "%s%s\n", strings.Repeat("  ", depth), line)
	for _, child := range node.Children {
		printTree(out, tree, child, depth+1)
	}
}
