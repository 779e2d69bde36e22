package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	dexv1 "github.com/KirkDiggler/dex-api/internal/handlers/dex/v1"
)

var suggestLimit int

var suggestCmd = &cobra.Command{
	Use:   "suggest [query]",
	Short: "Autocomplete pokemon names",
	Args:  cobra.ExactArgs(1),
	RunE:  runSuggest,
}

func init() {
	suggestCmd.Flags().IntVar(&suggestLimit, "limit", 10, "Maximum suggestions")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	resp, err := client.Suggest(ctx, &dexv1.SuggestRequest{Query: args[0], Limit: suggestLimit})
	if err != nil {
		return fmt.Errorf("failed to suggest: %w", err)
	}
	if asJSON {
		return printJSON(out, resp)
	}

	if len(resp.Suggestions) == 0 {
		fmt.Fprintln(out, "No matches")
		return nil
	}
	for _, sg := range resp.Suggestions {
		fmt.Fprintf(out, "#%03d %s\n", sg.ID, sg.DisplayName)
	}
	return nil
}
