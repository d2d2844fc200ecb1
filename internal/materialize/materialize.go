// Package materialize implements the Output Materializer: the final
// pipeline stage that rewrites the merger's single sorted run, substituting
// each numeric doc-id with the document's original basename, producing the
// index's only surviving output file.
package materialize

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/standardbeagle/bsbi/internal/docset"
	bsbierrors "github.com/standardbeagle/bsbi/internal/errors"
)

// Materialize reads runPath line by line and writes "outDir/output.txt"
// with each doc-id replaced by its basename from set. A doc-id absent
// from set is a fatal logic error: every doc-id ever written to a run
// file originated from set's own enumeration, so the lookup must always
// succeed (the run-file invariant guarantees it).
func Materialize(runPath string, set *docset.Set, outDir string) (string, error) {
	in, err := os.Open(runPath)
	if err != nil {
		return "", bsbierrors.IO("open", runPath, err)
	}
	defer in.Close()

	outPath := filepath.Join(outDir, "output.txt")
	out, err := os.Create(outPath)
	if err != nil {
		return "", bsbierrors.IO("create", outPath, err)
	}
	w := bufio.NewWriter(out)

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		sp := strings.IndexByte(line, ' ')
		if sp < 0 {
			out.Close()
			return "", bsbierrors.New(bsbierrors.KindEncoding, "materialize output", fmt.Errorf("missing separator in %q", line)).WithPath(runPath)
		}
		term := line[:sp]

		id, convErr := strconv.Atoi(line[sp+1:])
		if convErr != nil {
			out.Close()
			return "", bsbierrors.New(bsbierrors.KindEncoding, "materialize output", convErr).WithPath(runPath)
		}

		name, ok := set.NameOf(docset.DocID(id))
		if !ok {
			out.Close()
			return "", bsbierrors.New(bsbierrors.KindIO, "materialize output", fmt.Errorf("doc-id %d has no registered document name", id)).WithPath(runPath)
		}

		if _, err := w.WriteString(term + " " + name + "\n"); err != nil {
			out.Close()
			return "", bsbierrors.IO("write", outPath, err)
		}
	}
	if err := scanner.Err(); err != nil {
		out.Close()
		return "", bsbierrors.IO("read", runPath, err)
	}

	if err := w.Flush(); err != nil {
		out.Close()
		return "", bsbierrors.IO("flush", outPath, err)
	}
	if err := out.Close(); err != nil {
		return "", bsbierrors.IO("close", outPath, err)
	}

	return outPath, nil
}
