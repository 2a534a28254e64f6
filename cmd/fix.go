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

var fixCmd = &cobra.Command{
	Use:   "fix <consists-dir> <trainset-dir>",
	Short: "Repair dangling references in consist files",
	Long: `Fix scans the trainset directory into an asset catalog, then processes
every consist file under the consists directory: references that point at
missing assets are re-resolved against the catalog and rewritten in place.

With --dry-run every decision is made and reported but no file is written.`,
	Args: cobra.ExactArgs(2),
	RunE: runFix,
}

func init() {
	fixCmd.Flags().Bool("dry-run", false, "Resolve and report without writing any file")
	fixCmd.Flags().Bool("no-cache", false, "Ignore the catalog snapshot and rescan")
	fixCmd.Flags().Bool("deep", false, "Recurse into nested trainset folders")
	fixCmd.Flags().Bool("strict-class", false, "Never substitute across locomotive classes")
	fixCmd.Flags().Bool("strict-type", false, "Never substitute across wagon types")
	fixCmd.Flags().Int("local-threshold", 0, "Minimum score for same-folder matches (0 = configured default)")
	fixCmd.Flags().Int("global-threshold", 0, "Minimum score for catalog-wide matches (0 = configured default)")
	fixCmd.Flags().Bool("explain", false, "Log per-candidate scoring decisions")
	fixCmd.Flags().String("aliases", "", "YAML alias overlay for the token expander")
}

func runFix(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfigWithFlags(cmd)
	if err != nil {
		logger.Error("Configuration failed", logger.Err(err))
		os.Exit(exitcode.ConfigError)
	}

	mode := runner.ModeFix
	if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
		mode = runner.ModePreview
	}

	summary, err := runner.New(cfg).Run(runner.Options{
		ConsistsDir: args[0],
		TrainsetDir: args[1],
		Config:      cfg,
		Mode:        mode,
	})
	if err != nil {
		logger.Error("Repair run failed", logger.Err(err))
		os.Exit(exitcode.CatalogError)
	}

	fmt.Fprint(cmd.OutOrStdout(), runner.Render(summary))

	if summary.FilesFailed > 0 {
		os.Exit(exitcode.FileSystemError)
	}
	return nil
}

// loadConfigWithFlags layers command flags over the loaded configuration.
// Only flags the user actually set override file and environment values.
func loadConfigWithFlags(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("no-cache") {
		noCache, _ := flags.GetBool("no-cache")
		cfg.Scan.UseCache = !noCache
	}
	if flags.Changed("deep") {
		cfg.Scan.Deep, _ = flags.GetBool("deep")
	}
	if flags.Changed("strict-class") {
		cfg.Resolver.StrictClass, _ = flags.GetBool("strict-class")
	}
	if flags.Changed("strict-type") {
		cfg.Resolver.StrictType, _ = flags.GetBool("strict-type")
	}
	if flags.Changed("local-threshold") {
		cfg.Resolver.LocalThreshold, _ = flags.GetInt("local-threshold")
	}
	if flags.Changed("global-threshold") {
		cfg.Resolver.GlobalThreshold, _ = flags.GetInt("global-threshold")
	}
	if flags.Changed("explain") {
		cfg.Resolver.Explain, _ = flags.GetBool("explain")
	}
	if flags.Changed("aliases") {
		cfg.Resolver.AliasOverlay, _ = flags.GetString("aliases")
	}
	return cfg, nil
}
