package docset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	bsbierrors "github.com/standardbeagle/bsbi/internal/errors"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

func TestEnumerateAssignsContiguousSortedDocIDs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.txt", "bbb")
	writeFile(t, dir, "a.txt", "aaa")
	writeFile(t, dir, "c.txt", "ccc")

	set, err := Enumerate(dir, 1024, nil)
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	if len(set.Documents) != 3 {
		t.Fatalf("expected 3 documents, got %d", len(set.Documents))
	}
	wantOrder := []string{"a.txt", "b.txt", "c.txt"}
	for i, name := range wantOrder {
		if set.Documents[i].Name != name {
			t.Errorf("doc %d: got %s, want %s", i, set.Documents[i].Name, name)
		}
		if set.Documents[i].ID != DocID(i) {
			t.Errorf("doc %d: got id %d, want %d", i, set.Documents[i].ID, i)
		}
	}
}

func TestEnumerateSkipsSubdirectories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "aaa")
	if err := os.Mkdir(filepath.Join(dir, "subdir"), 0755); err != nil {
		t.Fatal(err)
	}

	set, err := Enumerate(dir, 1024, nil)
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	if len(set.Documents) != 1 {
		t.Fatalf("expected 1 document, got %d", len(set.Documents))
	}
}

func TestEnumerateRejectsOversizedDocument(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "big.txt", "0123456789")

	_, err := Enumerate(dir, 5, nil)
	if err == nil {
		t.Fatal("expected an error for an oversized document")
	}
	var multi *bsbierrors.MultiError
	if !errors.As(err, &multi) {
		t.Fatalf("expected MultiError, got %T: %v", err, err)
	}
	if len(multi.Errors) != 1 {
		t.Fatalf("expected 1 oversized error, got %d", len(multi.Errors))
	}
}

func TestEnumerateReportsAllOversizedDocuments(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "big1.txt", "0123456789")
	writeFile(t, dir, "big2.txt", "0123456789")
	writeFile(t, dir, "ok.txt", "x")

	_, err := Enumerate(dir, 5, nil)
	var multi *bsbierrors.MultiError
	if !errors.As(err, &multi) {
		t.Fatalf("expected MultiError, got %T: %v", err, err)
	}
	if len(multi.Errors) != 2 {
		t.Fatalf("expected 2 oversized errors, got %d", len(multi.Errors))
	}
}

func TestEnumerateHonorsExcludePatterns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "aaa")
	writeFile(t, dir, "b.tmp", "bbb")

	set, err := Enumerate(dir, 1024, []string{"*.tmp"})
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	if len(set.Documents) != 1 || set.Documents[0].Name != "a.txt" {
		t.Fatalf("expected only a.txt, got %v", set.Documents)
	}
}

func TestEnumerateMissingDirIsFatal(t *testing.T) {
	_, err := Enumerate(filepath.Join(t.TempDir(), "nope"), 1024, nil)
	if err == nil {
		t.Fatal("expected an error for a missing input directory")
	}
}

func TestNameOf(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "aaa")

	set, err := Enumerate(dir, 1024, nil)
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	name, ok := set.NameOf(0)
	if !ok || name != "a.txt" {
		t.Fatalf("NameOf(0) = %q, %v; want a.txt, true", name, ok)
	}
	if _, ok := set.NameOf(99); ok {
		t.Fatalf("NameOf(99) should report not found")
	}
}
