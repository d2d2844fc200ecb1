// Package block implements the in-memory block accumulator and the
// on-disk block serializer: the two halves of turning a run of documents
// into one sorted run file without ever holding the whole corpus in
// memory.
package block

import (
	"sort"

	"github.com/standardbeagle/bsbi/internal/docset"
)

// perListOverhead and perTermConst approximate the Go runtime's map-entry
// and slice-header overhead for one term's postings list; they tune the
// conservative upper bound the byte-cost estimate computes, not an exact
// measurement of the accumulator's actual heap footprint.
const (
	perTermConst   = 16
	perListOverhead = 64
	perPostingCost  = 8
)

// Accumulator holds postings for the documents assigned to the current
// block: term -> ordered list of doc-ids, in the order doc-ids were
// appended, plus a running byte-cost estimate used to decide when the
// block is full.
type Accumulator struct {
	postings map[string][]docset.DocID
	byteCost int64
}

// New returns an empty Accumulator.
func New() *Accumulator {
	return &Accumulator{postings: make(map[string][]docset.DocID)}
}

// AddDocument appends one posting per term to the accumulator, in order,
// for the given document. Byte cost increases by align8(len(term)+const)
// the first time a term is seen, and by perPostingCost for every posting
// plus perListOverhead for every newly-seen term — a monotonically
// increasing function of distinct-term count, total postings, and term
// length, large enough that a block never materially exceeds its budget.
func (a *Accumulator) AddDocument(id docset.DocID, terms []string) {
	for _, term := range terms {
		list, exists := a.postings[term]
		if !exists {
			a.byteCost += align8(int64(len(term)) + perTermConst)
			a.byteCost += perListOverhead
		}
		a.postings[term] = append(list, id)
		a.byteCost += perPostingCost
	}
}

// IsFull reports whether the accumulator's byte-cost estimate has reached
// or exceeded budget.
func (a *Accumulator) IsFull(budget int64) bool {
	return a.byteCost >= budget
}

// Empty reports whether the accumulator holds no postings.
func (a *Accumulator) Empty() bool {
	return len(a.postings) == 0
}

// TermPostings is one (term, doc-ids) pair produced by DrainSorted.
type TermPostings struct {
	Term   string
	DocIDs []docset.DocID
}

// DrainSorted returns the accumulator's contents sorted ascending by term
// and resets the accumulator to empty. Each term's doc-id list is already
// non-decreasing, because documents are appended to the accumulator in
// doc-id order; DrainSorted does not re-sort it.
func (a *Accumulator) DrainSorted() []TermPostings {
	terms := make([]string, 0, len(a.postings))
	for term := range a.postings {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	out := make([]TermPostings, len(terms))
	for i, term := range terms {
		out[i] = TermPostings{Term: term, DocIDs: a.postings[term]}
	}

	a.postings = make(map[string][]docset.DocID)
	a.byteCost = 0

	return out
}

func align8(n int64) int64 {
	return (n + 7) &^ 7
}
