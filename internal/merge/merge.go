// Package merge implements the External Merger: a FIFO-queue-driven binary
// pairwise merge of sorted run files into a single globally sorted run,
// touching each record O(log B) times across passes where B is the number
// of initial run files. The working set per merge is O(1): one line held
// in memory per open input file, mirroring the bounded-file-handle
// discipline of dolthub/dolt's external_sorter.go fileMerger, adapted here
// from a heap-driven k-way merge down to the binary pairwise design the
// FIFO queue calls for.
package merge

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	bsbierrors "github.com/standardbeagle/bsbi/internal/errors"
)

// record is one parsed "<term> <doc_id>" run-file line.
type record struct {
	term  string
	docID int
	raw   string
}

func parseLine(line, path string) (record, error) {
	sp := strings.IndexByte(line, ' ')
	if sp < 0 {
		return record{}, bsbierrors.New(bsbierrors.KindEncoding, "parse run file line", fmt.Errorf("missing separator in %q", line)).WithPath(path)
	}
	term := line[:sp]
	id, err := strconv.Atoi(line[sp+1:])
	if err != nil {
		return record{}, bsbierrors.New(bsbierrors.KindEncoding, "parse run file line", err).WithPath(path)
	}
	return record{term: term, docID: id, raw: term + " " + strconv.Itoa(id) + "\n"}, nil
}

// lessOrEqual reports whether a sorts at or before b under the run-file
// invariant: primary lexicographic by term, secondary numeric ascending
// by doc-id. Used at the merge point so that on a tie the side passed
// first (A) wins, satisfying the tie-breaking rule.
func (a record) lessOrEqual(b record) bool {
	if a.term != b.term {
		return a.term < b.term
	}
	return a.docID <= b.docID
}

// lineReader holds one buffered line of lookahead from an open run file,
// the minimal state the merge needs to compare two inputs without
// reading either fully into memory.
type lineReader struct {
	f       *os.File
	scanner *bufio.Scanner
	current record
	ok      bool
	path    string
}

func openReader(path string) (*lineReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, bsbierrors.IO("open", path, err)
	}
	r := &lineReader{f: f, scanner: bufio.NewScanner(f), path: path}
	r.scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	if err := r.advance(); err != nil {
		f.Close()
		return nil, err
	}
	return r, nil
}

func (r *lineReader) advance() error {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return bsbierrors.IO("read", r.path, err)
		}
		r.ok = false
		return nil
	}
	rec, err := parseLine(r.scanner.Text(), r.path)
	if err != nil {
		return err
	}
	r.current = rec
	r.ok = true
	return nil
}

func (r *lineReader) close() {
	r.f.Close()
}

// Queue is the FIFO of pending run-file paths driving the merge.
type Queue struct {
	paths []string
}

// NewQueue returns a FIFO queue seeded with the given run file paths, in
// the order the Block Serializer produced them.
func NewQueue(paths []string) *Queue {
	q := &Queue{paths: make([]string, len(paths))}
	copy(q.paths, paths)
	return q
}

func (q *Queue) dequeue() (string, bool) {
	if len(q.paths) == 0 {
		return "", false
	}
	p := q.paths[0]
	q.paths = q.paths[1:]
	return p, true
}

func (q *Queue) enqueue(path string) {
	q.paths = append(q.paths, path)
}

// Run drains the queue by repeatedly dequeuing two paths and merging them
// pairwise into "merged{i}.txt" under outDir, enqueuing the result, until
// exactly one path remains. It returns that path: the final globally
// sorted run. A queue seeded with exactly one path is returned unchanged
// without merging. An empty queue is an error — the driver must never
// invoke the merger with no run files.
func Run(q *Queue, outDir string) (string, error) {
	if len(q.paths) == 0 {
		return "", bsbierrors.New(bsbierrors.KindIO, "merge", fmt.Errorf("no run files to merge"))
	}

	next := 0
	for len(q.paths) > 1 {
		a, _ := q.dequeue()
		b, _ := q.dequeue()

		merged, err := mergePair(a, b, filepath.Join(outDir, fmt.Sprintf("merged%d.txt", next)))
		if err != nil {
			return "", err
		}
		next++
		q.enqueue(merged)
	}

	final, _ := q.dequeue()
	return final, nil
}

// mergePair merges run files a and b into dest, preserving the run-file
// invariant, and returns dest. Per the empty-input policy, if either
// input is empty at first read, the non-empty input is renamed to dest
// without rewriting; if both are empty, dest is created empty. Every
// return path closes both readers. A successful return has consumed both
// inputs (each removed, or renamed to dest); an error return leaves them
// on disk.
func mergePair(a, b, dest string) (string, error) {
	ra, err := openReader(a)
	if err != nil {
		return "", err
	}

	rb, err := openReader(b)
	if err != nil {
		ra.close()
		return "", err
	}

	switch {
	case !ra.ok && !rb.ok:
		ra.close()
		rb.close()
		if err := removeBoth(a, b); err != nil {
			return "", err
		}
		f, err := os.Create(dest)
		if err != nil {
			return "", bsbierrors.IO("create", dest, err)
		}
		f.Close()
		return dest, nil

	case !ra.ok:
		ra.close()
		rb.close()
		if err := os.Remove(a); err != nil {
			return "", bsbierrors.IO("remove", a, err)
		}
		if err := os.Rename(b, dest); err != nil {
			return "", bsbierrors.IO("rename", b, err)
		}
		return dest, nil

	case !rb.ok:
		ra.close()
		rb.close()
		if err := os.Remove(b); err != nil {
			return "", bsbierrors.IO("remove", b, err)
		}
		if err := os.Rename(a, dest); err != nil {
			return "", bsbierrors.IO("rename", a, err)
		}
		return dest, nil
	}

	out, err := os.Create(dest)
	if err != nil {
		ra.close()
		rb.close()
		return "", bsbierrors.IO("create", dest, err)
	}
	w := bufio.NewWriter(out)

	writeErr := func() error {
		for ra.ok && rb.ok {
			r := rb
			if ra.current.lessOrEqual(rb.current) {
				r = ra
			}
			if _, err := w.WriteString(r.current.raw); err != nil {
				return bsbierrors.IO("write", dest, err)
			}
			if err := r.advance(); err != nil {
				return err
			}
		}

		remainder := ra
		if !remainder.ok {
			remainder = rb
		}
		for remainder.ok {
			if _, err := w.WriteString(remainder.current.raw); err != nil {
				return bsbierrors.IO("write", dest, err)
			}
			if err := remainder.advance(); err != nil {
				return err
			}
		}
		return w.Flush()
	}()

	ra.close()
	rb.close()

	if writeErr != nil {
		out.Close()
		return "", writeErr
	}
	if err := out.Close(); err != nil {
		return "", bsbierrors.IO("close", dest, err)
	}

	if err := removeBoth(a, b); err != nil {
		return "", err
	}

	return dest, nil
}

func removeBoth(a, b string) error {
	if err := os.Remove(a); err != nil {
		return bsbierrors.IO("remove", a, err)
	}
	if err := os.Remove(b); err != nil {
		return bsbierrors.IO("remove", b, err)
	}
	return nil
}
