package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"corec/internal/diag"
	"corec/internal/sema"
	"corec/internal/tac"
	"corec/internal/unit"
)

// tacCmd lowers one or more serialized compilation units into
// three-address code and prints the instruction listing in §6.4's
// "TAC(OP, res, op1, op2)" form. Per the analyzer-then-generator
// contract, a unit is only lowered once it analyzes clean — a unit
// with any semantic error has its diagnostics printed instead, the
// same refusal analyzeCmd makes on its own.
var tacCmd = &cobra.Command{
	Use:   "tac <unit-file>...",
	Short: "Lower serialized compilation units to three-address code",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		color, err := colorEnabled(cmd)
		if err != nil {
			return err
		}
		pretty, err := cmd.Flags().GetBool("pretty")
		if err != nil {
			return err
		}
		maxDiag, err := maxDiagnostics(cmd)
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
		for i, path := range args {
			u, err := unit.LoadFile(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			root, table := u.RebuildWithHints(hints)
			bag := diag.NewBag(maxDiag)
			ctx := sema.NewContext(table, bag, tracer)
			errCount := sema.NewAnalyzer(ctx).Analyze(root)

			if len(args) > 1 {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s:\n", path)
			}

			if errCount > 0 {
				diag.PrettyPrint(cmd.OutOrStdout(), bag, color)
				errored = true
				continue
			}
			if bag.Len() > 0 {
				diag.PrettyPrint(cmd.OutOrStdout(), bag, color)
			}

			gen := tac.NewGenerator(table)
			tail := gen.Generate(root)
			head := tac.Reverse(tail)

			if pretty {
				tac.PrettyDumpForward(cmd.OutOrStdout(), head, color)
			} else {
				tac.DumpForward(cmd.OutOrStdout(), head)
			}
		}
		if errored {
			return errSemanticFailure
		}
		return nil
	},
}

// init registers tacCmd's own --pretty flag, grounded on
// cmd/surge/diagnose.go's per-command init() flag registration.
func init() {
	tacCmd.Flags().Bool("pretty", false, "colorize and column-align the TAC listing")
}
