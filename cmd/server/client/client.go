// Package client provides commands that call a running dex server
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	dexv1 "github.com/KirkDiggler/dex-api/internal/handlers/dex/v1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
	asJSON     bool
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the dex server",
	Long:  `Client commands browse the Pokédex through a running dex server.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().BoolVar(&asJSON, "json", false, "Print the raw response as JSON")

	ClientCmd.AddCommand(listCmd)
	ClientCmd.AddCommand(showCmd)
	ClientCmd.AddCommand(movesCmd)
	ClientCmd.AddCommand(moveCmd)
	ClientCmd.AddCommand(effectivenessCmd)
	ClientCmd.AddCommand(suggestCmd)
}

// createClient connects to the server
func createClient() (*dexv1.Client, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}
	return dexv1.NewClient(conn), cleanup, nil
}

// withSession runs fn inside a fresh session that is ended afterwards
func withSession(cmd *cobra.Command, pageSize int, fn func(ctx context.Context, client *dexv1.Client, sessionID string) error) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	created, err := client.CreateSession(ctx, &dexv1.CreateSessionRequest{PageSize: pageSize})
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	defer func() {
		_, _ = client.EndSession(context.Background(), &dexv1.EndSessionRequest{SessionID: created.SessionID})
	}()

	return fn(ctx, client, created.SessionID)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
