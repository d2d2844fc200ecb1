// Package display prints the indexer's human-readable progress lines:
// enumeration summary, per-block progress, merge banner, and elapsed
// times. None of this is a stable interface; it mirrors the plain
// log.Printf progress lines the teacher's indexing pipeline emits.
package display

import (
	"log"
	"time"
)

// EnumerationSummary reports the number of documents enumerated from dir
// and the effective block budget in bytes.
func EnumerationSummary(dir string, docCount int, budget int64) {
	log.Printf("enumerated %d document(s) from %s (block budget %d bytes)", docCount, dir, budget)
}

// BlockFlushed reports that block index was flushed, ending at the given
// doc-id. byteCost and termCount are printed only when verbose is true;
// failures computing them must never abort indexing, so callers pass
// zero values on the best-effort path rather than propagating an error
// here.
func BlockFlushed(index int, lastDocID int, verbose bool, termCount int, postingCount int, byteCost int64) {
	if !verbose {
		log.Printf("block %d flushed (last doc-id %d)", index, lastDocID)
		return
	}
	log.Printf("block %d flushed (last doc-id %d): %d distinct terms, %d postings, byte-cost %d",
		index, lastDocID, termCount, postingCount, byteCost)
}

// MergeBanner announces the start of the external merge phase over the
// given number of initial run files.
func MergeBanner(runFileCount int) {
	log.Printf("merging %d run file(s)", runFileCount)
}

// Elapsed reports how long a named phase took.
func Elapsed(phase string, d time.Duration) {
	log.Printf("%s completed in %s", phase, d)
}

// Fatal logs a fatal diagnostic. Callers still return the error up the
// stack; main is responsible for the final os.Exit(1).
func Fatal(format string, args ...any) {
	log.Printf("fatal: "+format, args...)
}
