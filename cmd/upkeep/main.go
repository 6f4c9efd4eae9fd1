package main

import (
	"os"

	"github.com/spf13/cobra"

	"upkeep/internal/interfaces/cli/migrate"
	"upkeep/internal/interfaces/cli/server"
)

// @title Upkeep API
// @version 1.0
// @description Factory maintenance management backend with per-company work
// @description order numbering and subscription-gated access.
// @BasePath /
func main() {
	rootCmd := &cobra.Command{
		Use:   "upkeep",
		Short: "Upkeep - factory maintenance management backend",
		Long:  `Upkeep is the backend for a factory maintenance SaaS: tenant companies, sequentially numbered work orders, and subscription lifecycle management.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
