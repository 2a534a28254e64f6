/*
Copyright © 2025 OpenRailDev <info@openraildev.org>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openraildev/consistfix/internal/runner"
	"github.com/openraildev/consistfix/pkg/exitcode"
	"github.com/openraildev/consistfix/pkg/logger"
)

var checkCmd = &cobra.Command{
	Use:   "check <consists-dir> <trainset-dir>",
	Short: "Analyze consist files without modifying them",
	Long: `Check runs the full resolution pipeline and reports which references are
correct, repairable, or unresolved. No file is ever written. The exit code
is non-zero when any reference would change or fails to resolve, so check
works as a health gate in scripts.`,
	Args: cobra.ExactArgs(2),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Bool("no-cache", false, "Ignore the catalog snapshot and rescan")
	checkCmd.Flags().Bool("deep", false, "Recurse into nested trainset folders")
	checkCmd.Flags().Bool("strict-class", false, "Never substitute across locomotive classes")
	checkCmd.Flags().Bool("strict-type", false, "Never substitute across wagon types")
	checkCmd.Flags().Int("local-threshold", 0, "Minimum score for same-folder matches (0 = configured default)")
	checkCmd.Flags().Int("global-threshold", 0, "Minimum score for catalog-wide matches (0 = configured default)")
	checkCmd.Flags().Bool("explain", false, "Log per-candidate scoring decisions")
	checkCmd.Flags().String("aliases", "", "YAML alias overlay for the token expander")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfigWithFlags(cmd)
	if err != nil {
		logger.Error("Configuration failed", logger.Err(err))
		os.Exit(exitcode.ConfigError)
	}

	summary, err := runner.New(cfg).Run(runner.Options{
		ConsistsDir: args[0],
		TrainsetDir: args[1],
		Config:      cfg,
		Mode:        runner.ModeCheck,
	})
	if err != nil {
		logger.Error("Check run failed", logger.Err(err))
		os.Exit(exitcode.CatalogError)
	}

	fmt.Fprint(cmd.OutOrStdout(), runner.Render(summary))

	if summary.Stats.Unresolved > 0 || summary.FilesChanged > 0 {
		os.Exit(exitcode.ValidationError)
	}
	return nil
}
