package main

import (
	"os"

	"github.com/spf13/cobra"

	"corec/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "corec",
	Short: "corec semantic analyzer and TAC generator",
	Long:  `corec checks programs against the language's static semantics and lowers them to three-address code.`,
}

// init registers every subcommand and persistent flag on rootCmd,
// grounded on cmd/surge/main.go's flag registration shape. Living in
// init rather than main means rootCmd is fully wired the moment the
// package loads, so a test can inspect rootCmd.Commands() without
// calling main itself.
func init() {
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(tacCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to report per unit")
	rootCmd.PersistentFlags().String("trace-level", "off", "trace level (off|phase|debug)")
	rootCmd.PersistentFlags().String("trace", "", "trace output file (- for stderr, empty to disable)")
	rootCmd.PersistentFlags().Int("jobs", 0, "parallel workers for directory batches (0 = GOMAXPROCS)")
	rootCmd.PersistentFlags().String("config", "", "path to a corec.toml config file (defaults to ./corec.toml if present)")
	rootCmd.PersistentFlags().String("cache-dir", "", "disk cache directory (defaults to $XDG_CACHE_HOME/corec)")
}

// main executes the root CLI command, exiting with status 1 if any
// subcommand returns an error.
func main() {
	rootCmd.Version = version.Version

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
