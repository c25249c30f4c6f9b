// Package main is the entry point for the build share server and CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muutmoku/ao-build-share/cmd/server/client"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "buildshare",
	Short: "Albion Online build share server",
	Long: `buildshare decodes, edits and previews shareable Albion Online builds.
It serves a gRPC BuildService and a JSON HTTP API backed by the public item catalog.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config yaml (optional)")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
