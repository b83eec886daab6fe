package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"corec/internal/diag"
	"corec/internal/sema"
	"corec/internal/symbols"
	"corec/internal/trace"
	"corec/internal/unit"
)

type batchResult struct {
	path     string
	bag      *diag.Bag
	errCount int
	loadErr  error
}

// batchCmd walks a directory for *.unit files and analyzes them
// concurrently, capped at --jobs workers (0 = GOMAXPROCS). Grounded on
// internal/driver/parallel.go's DiagnoseDirWithOptions: an
// errgroup.Group with SetLimit, one diag.Bag per file, results written
// into a preallocated slice by index so no per-result mutex is
// needed. The disk cache is keyed by each unit file's own content
// hash and holds the decoded Unit, so a second run over an unchanged
// tree skips re-decoding (though not re-analyzing — analysis itself
// is cheap enough, and deterministic, that caching its result would
// only save the decode step anyway).
var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Analyze every serialized unit under a directory in parallel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]
		jobs, err := cmd.Root().PersistentFlags().GetInt("jobs")
		if err != nil {
			return err
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

		cache, err := openCache(cmd)
		if err != nil {
			return fmt.Errorf("failed to open disk cache: %w", err)
		}

		files, err := listUnitFiles(dir)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "no .unit files found under %s\n", dir)
			return nil
		}

		if jobs <= 0 {
			jobs = runtime.GOMAXPROCS(0)
		}

		results := make([]batchResult, len(files))
		g, gctx := errgroup.WithContext(cmd.Context())
		g.SetLimit(min(jobs, len(files)))

		for i, path := range files {
			g.Go(func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				results[i] = analyzeOneCached(path, maxDiag, tracer, cache, hints)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		errored := false
		for _, res := range results {
			if res.loadErr != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", res.path, res.loadErr)
				errored = true
				continue
			}
			if res.bag.Len() > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s:\n", res.path)
				diag.PrettyPrint(cmd.OutOrStdout(), res.bag, color)
			}
			if res.errCount > 0 {
				errored = true
			}
		}
		if errored {
			return errSemanticFailure
		}
		return nil
	},
}

// analyzeOneCached decodes (or reuses a cached decode of) the Unit at
// path and runs the full analyzer over it.
func analyzeOneCached(path string, maxDiag int, tracer trace.Tracer, cache *unit.DiskCache, hints symbols.Hints) batchResult {
	raw, err := os.ReadFile(path)
	if err != nil {
		return batchResult{path: path, loadErr: err}
	}
	key := unit.HashSource(raw)

	u, hit, err := cache.Get(key)
	if err != nil || !hit {
		u, err = unit.Decode(bytes.NewReader(raw))
		if err != nil {
			return batchResult{path: path, loadErr: err}
		}
		_ = cache.Put(key, u)
	}

	root, table := u.RebuildWithHints(hints)
	bag := diag.NewBag(maxDiag)
	ctx := sema.NewContext(table, bag, tracer)
	errCount := sema.NewAnalyzer(ctx).Analyze(root)
	return batchResult{path: path, bag: bag, errCount: errCount}
}

func listUnitFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".unit") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
