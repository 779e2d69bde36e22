// Package main is the entry point for the dex gRPC server and its client commands
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dex-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "dex",
	Short: "Pokédex gRPC server",
	Long: `dex serves a browsable Pokédex over gRPC. It aggregates lists by region,
generation and type, resolves evolution trees and answers type matchup questions
using the public PokeAPI as its data source.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
