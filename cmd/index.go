/*
Copyright © 2025 OpenRailDev <info@openraildev.org>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openraildev/consistfix/internal/config"
	"github.com/openraildev/consistfix/internal/runner"
	"github.com/openraildev/consistfix/pkg/exitcode"
	"github.com/openraildev/consistfix/pkg/logger"
)

var indexCmd = &cobra.Command{
	Use:   "index <trainset-dir>",
	Short: "Build or refresh the asset catalog snapshot",
	Long: `Index scans the trainset directory and persists the catalog snapshot that
later fix and check runs load instead of rescanning. The snapshot carries no
staleness detection, so rerun index after assets are added or removed.`,
	Args: cobra.ExactArgs(1),
	RunE: runIndex,
}

func init() {
	indexCmd.Flags().Bool("rebuild", false, "Rescan even when a valid snapshot exists")
	indexCmd.Flags().Bool("deep", false, "Recurse into nested trainset folders")
}

func runIndex(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Configuration failed", logger.Err(err))
		os.Exit(exitcode.ConfigError)
	}
	if deep, _ := cmd.Flags().GetBool("deep"); deep {
		cfg.Scan.Deep = true
	}
	// Index always persists, so caching cannot be off here
	cfg.Scan.UseCache = true

	rebuild, _ := cmd.Flags().GetBool("rebuild")
	idx, err := runner.New(cfg).AcquireIndex(args[0], rebuild)
	if err != nil {
		logger.Error("Catalog build failed", logger.Err(err))
		os.Exit(exitcode.CatalogError)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Catalog ready: %d engines, %d wagons\n",
		len(idx.Engines), len(idx.Wagons))
	return nil
}
