package materialize

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/standardbeagle/bsbi/internal/docset"
)

func set(names ...string) *docset.Set {
	docs := make([]docset.Document, len(names))
	for i, n := range names {
		docs[i] = docset.Document{ID: docset.DocID(i), Name: n}
	}
	return &docset.Set{Documents: docs}
}

func TestMaterializeSubstitutesDocNames(t *testing.T) {
	dir := t.TempDir()
	runPath := filepath.Join(dir, "merged.txt")
	if err := os.WriteFile(runPath, []byte("hello 0\nhello 0\nworld 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	s := set("a.txt", "b.txt")
	outPath, err := Materialize(runPath, s, dir)
	if err != nil {
		t.Fatalf("Materialize: %v", err)
	}

	raw, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	want := "hello a.txt\nhello a.txt\nworld b.txt\n"
	if string(raw) != want {
		t.Errorf("got %q, want %q", raw, want)
	}
}

func TestMaterializeEmptyRunProducesEmptyOutput(t *testing.T) {
	dir := t.TempDir()
	runPath := filepath.Join(dir, "merged.txt")
	if err := os.WriteFile(runPath, nil, 0644); err != nil {
		t.Fatal(err)
	}

	outPath, err := Materialize(runPath, set(), dir)
	if err != nil {
		t.Fatalf("Materialize: %v", err)
	}

	raw, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(raw) != 0 {
		t.Errorf("expected empty output, got %q", raw)
	}
}

func TestMaterializeFailsOnUnknownDocID(t *testing.T) {
	dir := t.TempDir()
	runPath := filepath.Join(dir, "merged.txt")
	if err := os.WriteFile(runPath, []byte("ghost 99\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Materialize(runPath, set("a.txt"), dir)
	if err == nil {
		t.Fatal("expected an error for an unregistered doc-id")
	}
}
