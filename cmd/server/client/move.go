package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	dexv1 "github.com/KirkDiggler/dex-api/internal/handlers/dex/v1"
	"github.com/KirkDiggler/dex-api/internal/pkg/names"
)

var moveCmd = &cobra.Command{
	Use:   "move [name]",
	Short: "Show a move's details",
	Args:  cobra.ExactArgs(1),
	RunE:  runMove,
}

func runMove(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	return withSession(cmd, 0, func(ctx context.Context, client *dexv1.Client, sessionID string) error {
		resp, err := client.GetMove(ctx, &dexv1.GetMoveRequest{SessionID: sessionID, Move: args[0]})
		if err != nil {
			return fmt.Errorf("failed to get move: %w", err)
		}
		if asJSON {
			return printJSON(out, resp)
		}

		mv := resp.Move.Move
		fmt.Fprintf(out, "%s\n", names.Display(mv.Name))
		fmt.Fprintf(out, "=====================\n")
		fmt.Fprintf(out, "Type: %s  Class: %s\n", names.Display(mv.Type.Name), names.Display(mv.DamageClass))
		fmt.Fprintf(out, "Power: %s  Accuracy: %s  PP: %s\n", optional(mv.Power), optional(mv.Accuracy), optional(mv.PP))
		if resp.Move.ShortEffect != "" {
			fmt.Fprintf(out, "\n%s\n", resp.Move.ShortEffect)
		}
		if resp.Move.Description != "" {
			fmt.Fprintf(out, "%s\n", resp.Move.Description)
		}
		return nil
	})
}

func optional(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprint(*v)
}
