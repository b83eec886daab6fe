package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"corec/internal/trace"
)

// setupTracing reads the --trace/--trace-level persistent flags and
// builds a Tracer, plus a cleanup func to close any opened file.
// Grounded on cmd/surge/trace_setup.go, trimmed to corec's single
// stream-writer Tracer backend (no ring buffer, no chrome/ndjson
// formats — a batch semantic checker has no interactive session to
// page a ring buffer for).
func setupTracing(cmd *cobra.Command) (trace.Tracer, func(), error) {
	root := cmd.Root()
	levelStr, err := root.PersistentFlags().GetString("trace-level")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read --trace-level: %w", err)
	}
	target, err := root.PersistentFlags().GetString("trace")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read --trace: %w", err)
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return nil, nil, err
	}
	if level == trace.LevelOff || target == "" {
		return trace.New(trace.Config{}), func() {}, nil
	}

	if target == "-" {
		return trace.New(trace.Config{Level: level, Output: os.Stderr}), func() {}, nil
	}

	f, err := os.Create(target)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open trace file %s: %w", target, err)
	}
	tracer := trace.New(trace.Config{Level: level, Output: f})
	return tracer, func() { f.Close() }, nil
}

// colorEnabled resolves the --color flag (auto|on|off) against
// whether stdout is an interactive terminal.
func colorEnabled(cmd *cobra.Command) (bool, error) {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to read --color: %w", err)
	}
	switch mode {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto", "":
		return term.IsTerminal(int(os.Stdout.Fd())), nil
	default:
		return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", mode)
	}
}
