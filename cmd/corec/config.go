package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"corec/internal/symbols"
)

// corecConfig is corec.toml's shape. Grounded on
// cmd/surge/project_manifest.go's projectConfig, trimmed to the two
// sections this CLI actually reads: the symbol table's bucket-count
// hint (§4.1 leaves the exact count unspecified) and a diagnostics
// cap override.
type corecConfig struct {
	Table       tableConfig       `toml:"table"`
	Diagnostics diagnosticsConfig `toml:"diagnostics"`
}

type tableConfig struct {
	Buckets uint `toml:"buckets"`
}

type diagnosticsConfig struct {
	Max int `toml:"max"`
}

// loadConfig reads path if non-empty, else a ./corec.toml in the
// current directory if one exists. A missing optional file is not an
// error; an explicitly named but unreadable one is.
func loadConfig(path string) (corecConfig, error) {
	var cfg corecConfig
	if path == "" {
		if _, err := os.Stat("corec.toml"); err != nil {
			return cfg, nil
		}
		path = "corec.toml"
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return corecConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return cfg, nil
}

// tableHints reads --config and resolves corec.toml's [table] section
// into a symbols.Hints a Unit can be rebuilt with.
func tableHints(cmd *cobra.Command) (symbols.Hints, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return symbols.Hints{}, fmt.Errorf("failed to read --config: %w", err)
	}
	cfg, err := loadConfig(path)
	if err != nil {
		return symbols.Hints{}, err
	}
	return symbols.Hints{Buckets: cfg.Table.Buckets}, nil
}

// maxDiagnostics resolves the diagnostics cap: an explicitly passed
// --max-diagnostics flag wins, otherwise corec.toml's [diagnostics]
// section, otherwise the flag's own default.
func maxDiagnostics(cmd *cobra.Command) (int, error) {
	flagVal, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return 0, fmt.Errorf("failed to read --max-diagnostics: %w", err)
	}
	if cmd.Root().PersistentFlags().Changed("max-diagnostics") {
		return flagVal, nil
	}
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return 0, fmt.Errorf("failed to read --config: %w", err)
	}
	cfg, err := loadConfig(path)
	if err != nil {
		return 0, err
	}
	if cfg.Diagnostics.Max > 0 {
		return cfg.Diagnostics.Max, nil
	}
	return flagVal, nil
}
