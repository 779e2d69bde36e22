package client

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	dexv1 "github.com/KirkDiggler/dex-api/internal/handlers/dex/v1"
	"github.com/KirkDiggler/dex-api/internal/pkg/names"
)

var (
	listRegion     string
	listGeneration string
	listTypes      []string
	listSearch     string
	listPage       int
	listPageSize   int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List pokemon filtered by region, generation or types",
	Long: `List pokemon. Region takes precedence over generation, and generation over types.
Examples:

  list --region kanto
  list --type fire --type flying
  list --search char --page 1 --page-size 10`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listRegion, "region", "", "Region name, e.g. kanto")
	listCmd.Flags().StringVar(&listGeneration, "generation", "", "Generation name, e.g. generation-i")
	listCmd.Flags().StringSliceVar(&listTypes, "type", nil, "Type name; repeat to intersect")
	listCmd.Flags().StringVar(&listSearch, "search", "", "Name or id substring")
	listCmd.Flags().IntVar(&listPage, "page", 0, "Zero-based page index")
	listCmd.Flags().IntVar(&listPageSize, "page-size", 20, "Entries per page")
}

func runList(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	return withSession(cmd, listPageSize, func(ctx context.Context, client *dexv1.Client, sessionID string) error {
		req := &dexv1.UpdateListingRequest{SessionID: sessionID}
		if listRegion != "" {
			req.Region = &listRegion
		}
		if listGeneration != "" {
			req.Generation = &listGeneration
		}
		if len(listTypes) > 0 {
			req.Types = &listTypes
		}
		if listSearch != "" {
			req.Search = &listSearch
		}

		resp, err := client.UpdateListing(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to list pokemon: %w", err)
		}
		// a completed load resets the page, so turn it once the list settled
		if listPage > 0 {
			resp, err = client.UpdateListing(ctx, &dexv1.UpdateListingRequest{SessionID: sessionID, PageIndex: &listPage})
			if err != nil {
				return fmt.Errorf("failed to change page: %w", err)
			}
		}
		if asJSON {
			return printJSON(out, resp)
		}

		view := resp.View
		if view.Error != "" {
			fmt.Fprintf(out, "Warning: %s\n\n", view.Error)
		}
		fmt.Fprintf(out, "Showing %s list: %d of %d pokemon (page %d/%d)\n\n",
			view.Active, len(view.Items), view.Total, view.PageIndex+1, max(view.PageCount, 1))

		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME")
		for _, item := range view.Items {
			fmt.Fprintf(w, "#%03d\t%s\n", item.ID(), names.Display(item.Name))
		}
		return w.Flush()
	})
}
