/*
Copyright © 2025 OpenRailDev <info@openraildev.org>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/openraildev/consistfix/pkg/buildinfo"
	"github.com/openraildev/consistfix/pkg/exitcode"
	"github.com/openraildev/consistfix/pkg/logger"
)

// newRootCommand creates a fresh root command instance.
// This factory pattern allows tests to create isolated command trees without shared state.
func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "consistfix",
		Short: "Repair dangling asset references in train consist files",
		Long: `Consistfix scans a trainset directory into an asset catalog and repairs
consist files whose engine and wagon references no longer point at assets
that exist on disk.

Examples:
   consistfix fix ./ROUTES/consists ./TRAINSET    # Repair references in place
   consistfix fix --dry-run ./consists ./TRAINSET # Report without writing
   consistfix check ./consists ./TRAINSET         # Analyze only
   consistfix index ./TRAINSET                    # Build the catalog snapshot`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			initializeLogger(cmd)
		},
	}

	// Add global flags
	cmd.PersistentFlags().String("log-level", "info", "Set log level (trace|debug|info|warn|error)")
	cmd.PersistentFlags().Bool("json", false, "Output logs in JSON format")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	// Wire Cobra's built-in --version using the binary version
	cmd.Version = buildinfo.BinaryVersion
	cmd.SetVersionTemplate("consistfix {{.Version}}\n")

	return cmd
}

// registerSubcommands adds all subcommands to the root command.
// This is called from init() for production and can be called explicitly in tests.
func registerSubcommands(cmd *cobra.Command) {
	cmd.AddCommand(fixCmd)
	cmd.AddCommand(checkCmd)
	cmd.AddCommand(indexCmd)
	cmd.AddCommand(versionCmd)
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCommand()

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		logger.Error("Command execution failed", logger.Err(err))
		os.Exit(exitcode.GeneralError)
	}
}

func init() {
	// Register all subcommands with the production rootCmd
	registerSubcommands(rootCmd)
}

// initializeLogger sets up the logger based on command flags
func initializeLogger(cmd *cobra.Command) {
	logLevelStr, _ := cmd.Flags().GetString("log-level")
	jsonLogs, _ := cmd.Flags().GetBool("json")
	noColor, _ := cmd.Flags().GetBool("no-color")
	preview, _ := cmd.Flags().GetBool("dry-run")

	config := logger.Config{
		Level:     logger.ParseLevel(logLevelStr),
		UseColor:  !noColor,
		JSON:      jsonLogs,
		Component: "consistfix",
		Preview:   preview,
	}

	if err := logger.Initialize(config); err != nil {
		// Fallback to stderr
		if _, writeErr := os.Stderr.WriteString("Failed to initialize logger: " + err.Error() + "\n"); writeErr != nil {
			_ = writeErr
		}
		os.Exit(exitcode.ConfigError)
	}
}
