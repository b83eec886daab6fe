package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"corec/internal/diag"
	"corec/internal/sema"
	"corec/internal/unit"
)

// analyzeCmd runs the seven-pass semantic analyzer over one or more
// previously serialized Units (internal/unit) and reports the
// accumulated diagnostics. There is no lexer/parser in this module's
// scope (§3.2 takes the AST as the analyzer's input boundary), so
// "source" here is already-flattened AST + symbol table data, the
// shape a front end upstream of this tool would have produced.
var analyzeCmd = &cobra.Command{
	Use:   "analyze <unit-file>...",
	Short: "Run semantic analysis over one or more serialized compilation units",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := cmd.Flags().GetString("format")
		if err != nil {
			return err
		}
		if format != "text" && format != "json" {
			return fmt.Errorf("unknown --format value %q (want text|json)", format)
		}
		maxDiag, err := maxDiagnostics(cmd)
		if err != nil {
			return err
		}
		color, err := colorEnabled(cmd)
		if err != nil {
			return err
		}
		tracer, cleanup, err := setupTracing(cmd)
		if err != nil {
			return err
		}
		defer cleanup()
		hints, err := tableHints(cmd)
		if err != nil {
			return err
		}

		errored := false
		for _, path := range args {
			u, err := unit.LoadFile(path)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
				errored = true
				continue
			}

			root, table := u.RebuildWithHints(hints)
			bag := diag.NewBag(maxDiag)
			ctx := sema.NewContext(table, bag, tracer)
			errCount := sema.NewAnalyzer(ctx).Analyze(root)

			if bag.Len() > 0 {
				if format == "json" {
					if err := diag.PrintJSON(cmd.OutOrStdout(), bag); err != nil {
						return fmt.Errorf("%s: %w", path, err)
					}
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s:\n", path)
					diag.PrettyPrint(cmd.OutOrStdout(), bag, color)
				}
			}
			if errCount > 0 {
				errored = true
			}
		}

		if errored {
			return errSemanticFailure
		}
		return nil
	},
}

var errSemanticFailure = errors.New("one or more units failed semantic analysis")

// init registers analyzeCmd's own --format flag, grounded on
// cmd/surge/diagnose.go's diagCmd.Flags().String("format", "pretty", ...).
func init() {
	analyzeCmd.Flags().String("format", "text", "diagnostic output format (text|json)")
}
