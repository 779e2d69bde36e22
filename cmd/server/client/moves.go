package client

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	dexv1 "github.com/KirkDiggler/dex-api/internal/handlers/dex/v1"
	"github.com/KirkDiggler/dex-api/internal/pkg/names"
)

var (
	movesSort   string
	movesDesc   bool
	movesMethod string
)

var movesCmd = &cobra.Command{
	Use:   "moves [id-or-name]",
	Short: "List the moves a pokemon can learn",
	Long: `List the moves a pokemon can learn. Examples:

  moves 25 --sort level
  moves pikachu --method machine --sort name --desc`,
	Args: cobra.ExactArgs(1),
	RunE: runMoves,
}

func init() {
	movesCmd.Flags().StringVar(&movesSort, "sort", "level", "Sort key: level, name or learnMethod")
	movesCmd.Flags().BoolVar(&movesDesc, "desc", false, "Sort descending")
	movesCmd.Flags().StringVar(&movesMethod, "method", "", "Only moves learned by this method")
}

func runMoves(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	return withSession(cmd, 0, func(ctx context.Context, client *dexv1.Client, sessionID string) error {
		if _, err := client.ShowPokemon(ctx, &dexv1.ShowPokemonRequest{SessionID: sessionID, ID: args[0]}); err != nil {
			return fmt.Errorf("failed to load pokemon: %w", err)
		}

		resp, err := client.ListMoves(ctx, &dexv1.ListMovesRequest{
			SessionID:  sessionID,
			Method:     movesMethod,
			Sort:       movesSort,
			Descending: movesDesc,
		})
		if err != nil {
			return fmt.Errorf("failed to list moves: %w", err)
		}
		if asJSON {
			return printJSON(out, resp)
		}

		methods := make([]string, len(resp.AvailableLearnMethods))
		for i, m := range resp.AvailableLearnMethods {
			methods[i] = names.Display(m)
		}
		fmt.Fprintf(out, "Learn methods: %s\n\n", strings.Join(methods, ", "))

		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "MOVE\tMETHOD\tLEVEL")
		for _, m := range resp.Moves {
			level := "-"
			if m.Level != nil {
				level = fmt.Sprint(*m.Level)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", m.DisplayName, names.Display(m.Method), level)
		}
		return w.Flush()
	})
}
