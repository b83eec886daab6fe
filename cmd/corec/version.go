package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"corec/internal/version"
)

var versionTagline = "three-address code, no surprises"

var versionColor = color.New(color.FgCyan, color.Bold)

// versionCmd prints build identification. Grounded on
// cmd/surge/version.go, trimmed to corec's smaller metadata surface
// (no separate JSON output mode — there is no downstream tooling here
// that consumes a machine-readable version payload).
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print corec build information",
	RunE: func(cmd *cobra.Command, args []string) error {
		v := strings.TrimSpace(version.Version)
		if v == "" {
			v = "dev"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "corec %s — %s\n", versionColor.Sprint(v), versionTagline)
		if c := strings.TrimSpace(version.GitCommit); c != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", c)
		}
		if d := strings.TrimSpace(version.BuildDate); d != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "built:  %s\n", d)
		}
		return nil
	},
}
