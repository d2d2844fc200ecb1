// Package indexing implements the top-level orchestration: enumerate the
// input directory, accumulate and flush blocks, merge the resulting run
// files, materialize the final output, and clean up every intermediate
// file. It is the Driver the rest of the pipeline's packages are wired
// together by; nothing here parses text or sorts postings itself.
package indexing

import (
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/standardbeagle/bsbi/internal/block"
	"github.com/standardbeagle/bsbi/internal/config"
	"github.com/standardbeagle/bsbi/internal/display"
	"github.com/standardbeagle/bsbi/internal/docset"
	bsbierrors "github.com/standardbeagle/bsbi/internal/errors"
	"github.com/standardbeagle/bsbi/internal/materialize"
	"github.com/standardbeagle/bsbi/internal/merge"
	"github.com/standardbeagle/bsbi/internal/normalize"
	"golang.org/x/sync/errgroup"
)

// Run executes the full pipeline for cfg and returns the path to the
// final output.txt. It is the only exported entry point; cmd/bsbi has no
// other way to invoke indexing.
func Run(cfg *config.Config) (string, error) {
	start := time.Now()

	budget, err := cfg.BlockBudget()
	if err != nil {
		return "", err
	}

	if err := prepareOutputDir(cfg.OutputDir); err != nil {
		return "", err
	}

	set, err := docset.Enumerate(cfg.InputDir, budget, cfg.Exclude)
	if err != nil {
		return "", err
	}
	display.EnumerationSummary(cfg.InputDir, len(set.Documents), budget)

	runPaths, err := buildRunFiles(set, budget, cfg.OutputDir, cfg.Verbose)
	if err != nil {
		return "", err
	}

	display.MergeBanner(len(runPaths))
	mergeStart := time.Now()
	final, err := merge.Run(merge.NewQueue(runPaths), cfg.OutputDir)
	if err != nil {
		return "", err
	}
	display.Elapsed("merge", time.Since(mergeStart))

	outputPath, err := materialize.Materialize(final, set, cfg.OutputDir)
	if err != nil {
		return "", err
	}

	if err := cleanup(cfg.OutputDir, outputPath); err != nil {
		return "", err
	}

	display.Elapsed("indexing", time.Since(start))
	return outputPath, nil
}

// buildRunFiles drives the Normalizer, Accumulator, and Serializer over
// every document in enumeration order, flushing a new block whenever the
// accumulator reports full and always flushing a final partial block.
// The accumulator is the only unbounded structure in the pipeline; it is
// released (via DrainSorted) before the next document is parsed, which is
// the invariant that keeps the whole pipeline external-memory-correct.
func buildRunFiles(set *docset.Set, budget int64, outDir string, verbose bool) ([]string, error) {
	acc := block.New()
	var runPaths []string
	blockIndex := 0
	lastDocID := -1

	flush := func() error {
		if acc.Empty() {
			return nil
		}
		postings := acc.DrainSorted()
		path, err := block.Serialize(postings, outDir, blockIndex)
		if err != nil {
			return err
		}
		runPaths = append(runPaths, path)

		if verbose {
			termCount, postingCount, byteCost := blockStats(postings)
			display.BlockFlushed(blockIndex, lastDocID, true, termCount, postingCount, byteCost)
		} else {
			display.BlockFlushed(blockIndex, lastDocID, false, 0, 0, 0)
		}
		blockIndex++
		return nil
	}

	for _, doc := range set.Documents {
		raw, err := os.ReadFile(doc.Path)
		if err != nil {
			return nil, bsbierrors.IO("read", doc.Path, err)
		}
		if !utf8.Valid(raw) {
			return nil, bsbierrors.Encoding(doc.Path)
		}

		terms := normalize.Terms(string(raw))
		acc.AddDocument(doc.ID, terms)
		lastDocID = int(doc.ID)

		if acc.IsFull(budget) {
			if err := flush(); err != nil {
				return nil, err
			}
		}
	}

	if err := flush(); err != nil {
		return nil, err
	}

	if len(runPaths) == 0 {
		empty, err := block.Serialize(nil, outDir, 0)
		if err != nil {
			return nil, err
		}
		runPaths = append(runPaths, empty)
	}

	return runPaths, nil
}

func blockStats(postings []block.TermPostings) (termCount, postingCount int, byteCost int64) {
	termCount = len(postings)
	for _, tp := range postings {
		postingCount += len(tp.DocIDs)
		byteCost += int64(len(tp.Term))
	}
	return termCount, postingCount, byteCost
}

// prepareOutputDir implements the Driver's step 2: if outDir exists as a
// non-directory, replace it with a fresh empty directory; if it exists as
// a directory, delete every file under it; otherwise create it.
func prepareOutputDir(outDir string) error {
	info, err := os.Stat(outDir)
	switch {
	case os.IsNotExist(err):
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return bsbierrors.OutputDirConflict(outDir, err)
		}
		return nil
	case err != nil:
		return bsbierrors.OutputDirConflict(outDir, err)
	case !info.IsDir():
		if err := os.Remove(outDir); err != nil {
			return bsbierrors.OutputDirConflict(outDir, err)
		}
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return bsbierrors.OutputDirConflict(outDir, err)
		}
		return nil
	default:
		entries, err := os.ReadDir(outDir)
		if err != nil {
			return bsbierrors.OutputDirConflict(outDir, err)
		}
		for _, e := range entries {
			if err := os.RemoveAll(filepath.Join(outDir, e.Name())); err != nil {
				return bsbierrors.OutputDirConflict(outDir, err)
			}
		}
		return nil
	}
}

// cleanup deletes every file in outDir except keep, implementing the
// end-of-run cleanup step: the output directory must contain exactly one
// file once a run succeeds. Removals are independent of one another, so
// they run concurrently via errgroup; the single-threaded discipline
// governing the indexing pipeline proper applies to the sequential
// build-and-merge phases, not to this terminal bookkeeping step.
func cleanup(outDir, keep string) error {
	entries, err := os.ReadDir(outDir)
	if err != nil {
		return bsbierrors.IO("read", outDir, err)
	}

	var eg errgroup.Group
	for _, e := range entries {
		path := filepath.Join(outDir, e.Name())
		if path == keep {
			continue
		}
		eg.Go(func() error {
			if err := os.RemoveAll(path); err != nil {
				return bsbierrors.IO("remove", path, err)
			}
			return nil
		})
	}
	return eg.Wait()
}
