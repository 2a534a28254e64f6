/*
Copyright © 2025 OpenRailDev <info@openraildev.org>
*/
package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/openraildev/consistfix/pkg/buildinfo"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().Bool("extended", false, "Show build and platform details")
}

func runVersion(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "consistfix %s\n", buildinfo.BinaryVersion)

	if extended, _ := cmd.Flags().GetBool("extended"); extended {
		fmt.Fprintf(out, "module:   %s\n", buildinfo.ModuleVersion())
		fmt.Fprintf(out, "go:       %s\n", runtime.Version())
		fmt.Fprintf(out, "platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	}
	return nil
}
