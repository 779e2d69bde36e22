package client

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	dexv1 "github.com/KirkDiggler/dex-api/internal/handlers/dex/v1"
	"github.com/KirkDiggler/dex-api/internal/orchestrators/typechart"
	"github.com/KirkDiggler/dex-api/internal/pkg/names"
)

var (
	effAttack string
	effDefend []string
)

var effectivenessCmd = &cobra.Command{
	Use:   "effectiveness",
	Short: "Compute type matchups",
	Long: `Compute type matchups. With both flags the verdict for that matchup is printed.
Examples:

  effectiveness --attack electric --defend water,flying
  effectiveness --attack fire
  effectiveness --defend grass,poison`,
	Args: cobra.NoArgs,
	RunE: runEffectiveness,
}

func init() {
	effectivenessCmd.Flags().StringVar(&effAttack, "attack", "", "Attacking type")
	effectivenessCmd.Flags().StringSliceVar(&effDefend, "defend", nil, "One or two defending types")
}

func runEffectiveness(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	resp, err := client.Effectiveness(ctx, &dexv1.EffectivenessRequest{Attacking: effAttack, Defending: effDefend})
	if err != nil {
		return fmt.Errorf("failed to compute effectiveness: %w", err)
	}
	if asJSON {
		return printJSON(out, resp)
	}

	if resp.Multiplier != nil {
		fmt.Fprintf(out, "%s vs %s: x%s  %s\n\n", names.Display(effAttack), resp.DefendingSummary,
			formatMultiplier(*resp.Multiplier), resp.Message)
	}
	if len(resp.Coverage) > 0 {
		fmt.Fprintf(out, "%s attacking:\n", names.Display(effAttack))
		printEntries(out, resp.Coverage)
	}
	if len(resp.Profile) > 0 {
		fmt.Fprintf(out, "Defending as %s:\n", strings.Join(displayAll(effDefend), " / "))
		printEntries(out, resp.Profile)
	}
	return nil
}

func printEntries(out io.Writer, entries []typechart.Entry) {
	for _, e := range entries {
		fmt.Fprintf(out, "  %-10s x%s\n", e.Type.DisplayName, formatMultiplier(e.Multiplier))
	}
	fmt.Fprintln(out)
}

func formatMultiplier(m float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", m), "0"), ".")
}

func displayAll(slugs []string) []string {
	out := make([]string, len(slugs))
	for i, s := range slugs {
		out[i] = names.Display(s)
	}
	return out
}
