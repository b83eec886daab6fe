package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"corec/internal/unit"
)

// openCache resolves --cache-dir (defaulting to
// $XDG_CACHE_HOME/corec, or ~/.cache/corec) and opens a disk cache
// there. Grounded on surge's OpenDiskCache(app string), generalized to
// an explicit directory so a batch run can point multiple corec
// instances at the same cache without guessing each other's app name.
func openCache(cmd *cobra.Command) (*unit.DiskCache, error) {
	dir, err := cmd.Root().PersistentFlags().GetString("cache-dir")
	if err != nil {
		return nil, fmt.Errorf("failed to read --cache-dir: %w", err)
	}
	if dir == "" {
		base := os.Getenv("XDG_CACHE_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, err
			}
			base = filepath.Join(home, ".cache")
		}
		dir = filepath.Join(base, "corec")
	}
	return unit.OpenDiskCache(dir)
}
