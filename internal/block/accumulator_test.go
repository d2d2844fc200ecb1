package block

import (
	"testing"

	"github.com/standardbeagle/bsbi/internal/docset"
)

func TestAccumulatorDrainSortedOrdersByTerm(t *testing.T) {
	a := New()
	a.AddDocument(0, []string{"dog", "cat", "ant"})

	out := a.DrainSorted()
	want := []string{"ant", "cat", "dog"}
	if len(out) != len(want) {
		t.Fatalf("got %d terms, want %d", len(out), len(want))
	}
	for i, term := range want {
		if out[i].Term != term {
			t.Errorf("term %d: got %s, want %s", i, out[i].Term, term)
		}
	}
}

func TestAccumulatorDocIDsNonDecreasingPerTerm(t *testing.T) {
	a := New()
	a.AddDocument(0, []string{"run"})
	a.AddDocument(1, []string{"run"})
	a.AddDocument(2, []string{"run"})

	out := a.DrainSorted()
	if len(out) != 1 {
		t.Fatalf("expected one term, got %d", len(out))
	}
	ids := out[0].DocIDs
	for i := 1; i < len(ids); i++ {
		if ids[i] < ids[i-1] {
			t.Errorf("doc-ids not non-decreasing: %v", ids)
		}
	}
	if len(ids) != 3 {
		t.Fatalf("expected 3 postings for 'run', got %d", len(ids))
	}
}

func TestAccumulatorDrainResetsState(t *testing.T) {
	a := New()
	a.AddDocument(0, []string{"x"})
	a.DrainSorted()

	if !a.Empty() {
		t.Fatal("expected accumulator to be empty after drain")
	}
	if a.IsFull(1) {
		t.Fatal("expected byte cost to reset to zero after drain")
	}
}

func TestAccumulatorIsFullMonotonic(t *testing.T) {
	a := New()
	if a.IsFull(1) {
		t.Fatal("a fresh accumulator with a positive budget should not be full")
	}

	a.AddDocument(0, []string{"alpha", "beta", "gamma"})
	costAfterOne := a.byteCost

	a.AddDocument(1, []string{"delta", "epsilon"})
	if a.byteCost <= costAfterOne {
		t.Fatalf("byte cost must increase monotonically: %d -> %d", costAfterOne, a.byteCost)
	}
}

func TestAccumulatorDuplicatePostingsRetained(t *testing.T) {
	a := New()
	a.AddDocument(0, []string{"run", "run"})

	out := a.DrainSorted()
	if len(out) != 1 || len(out[0].DocIDs) != 2 {
		t.Fatalf("expected 2 postings for 'run' (no dedup), got %v", out)
	}
	if out[0].DocIDs[0] != docset.DocID(0) || out[0].DocIDs[1] != docset.DocID(0) {
		t.Fatalf("expected both postings to reference doc 0, got %v", out[0].DocIDs)
	}
}
