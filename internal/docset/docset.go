// Package docset enumerates the input directory into the fixed set of
// documents the rest of the pipeline indexes: a contiguous range of
// doc-ids assigned in sorted-filename enumeration order, each backed by a
// stable basename and byte size, with every document validated against the
// block budget before indexing begins.
package docset

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	bsbierrors "github.com/standardbeagle/bsbi/internal/errors"
)

// DocID identifies a document by its enumeration order, starting at 0.
type DocID int

// Document is one input file: its assigned id, basename, full path on
// disk, and byte size at enumeration time.
type Document struct {
	ID   DocID
	Name string
	Path string
	Size int64
}

// Set is the enumerated corpus: documents in doc-id order, plus the
// doc-id-to-name map the Materializer consults once indexing completes.
type Set struct {
	Documents []Document
}

// NameOf returns the basename for id. Callers may only call this for ids
// produced by Enumerate; an out-of-range id is a logic error the run-file
// invariant (every doc_id came from this Set) should have prevented.
func (s *Set) NameOf(id DocID) (string, bool) {
	if int(id) < 0 || int(id) >= len(s.Documents) {
		return "", false
	}
	return s.Documents[id].Name, true
}

// Enumerate scans dir non-recursively in sorted filename order, skipping
// symbolic links and any basename matching an exclude glob pattern,
// assigns contiguous doc-ids, and validates each file is strictly smaller
// than budget bytes. Every oversized file is collected and reported
// together via errors.MultiError, rather than aborting at the first one.
func Enumerate(dir string, budget int64, exclude []string) (*Set, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, bsbierrors.MissingInputDir(dir, err)
	}

	names := make([]string, 0, len(entries))
	infoByName := make(map[string]os.DirEntry, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
		infoByName[e.Name()] = e
	}
	sort.Strings(names)

	var oversized []error
	docs := make([]Document, 0, len(names))

	for _, name := range names {
		entry := infoByName[name]

		if entry.Type()&os.ModeSymlink != 0 {
			continue
		}
		if entry.IsDir() {
			continue
		}
		if matchesAny(exclude, name) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return nil, bsbierrors.IO("stat", filepath.Join(dir, name), err)
		}

		if info.Size() >= budget {
			oversized = append(oversized, bsbierrors.Oversized(filepath.Join(dir, name), info.Size(), budget))
			continue
		}

		docs = append(docs, Document{
			ID:   DocID(len(docs)),
			Name: name,
			Path: filepath.Join(dir, name),
			Size: info.Size(),
		})
	}

	if len(oversized) > 0 {
		return nil, bsbierrors.NewMultiError(oversized)
	}

	return &Set{Documents: docs}, nil
}

func matchesAny(patterns []string, name string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, name); ok {
			return true
		}
	}
	return false
}
