// Package main is the entry point for the gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/special-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "special-api",
	Short: "SPECIAL API gRPC Server",
	Long: `SPECIAL API stores actors and items, runs the derivation pipeline over their
SPECIAL statistics, skills and rule elements, and serves the results over gRPC.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(deriveCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
