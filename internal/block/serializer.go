package block

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cespare/xxhash/v2"
	bsbierrors "github.com/standardbeagle/bsbi/internal/errors"
)

// Serialize writes a drained, sorted block to "block{index}.txt" under
// outDir: one "<term> <doc_id>\n" line per (term, doc-id) pair, in the
// order given. The file is fully flushed and closed before Serialize
// returns, satisfying the run-file invariant (primary lex by term,
// secondary numeric ascending by doc-id) since the caller drained the
// block in that order.
//
// A sidecar "block{index}.txt.sum" carrying an xxhash of the run file's
// bytes is written alongside it; nothing in the indexing pipeline reads
// the sidecar. serializer_test.go checks that it matches the hash of the
// run file's bytes.
func Serialize(postings []TermPostings, outDir string, index int) (string, error) {
	path := filepath.Join(outDir, fmt.Sprintf("block%d.txt", index))

	f, err := os.Create(path)
	if err != nil {
		return "", bsbierrors.IO("create", path, err)
	}

	sum := xxhash.New()
	w := bufio.NewWriter(f)

	for _, tp := range postings {
		for _, id := range tp.DocIDs {
			line := tp.Term + " " + strconv.Itoa(int(id)) + "\n"
			if _, err := w.WriteString(line); err != nil {
				f.Close()
				return "", bsbierrors.IO("write", path, err)
			}
			sum.WriteString(line)
		}
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return "", bsbierrors.IO("flush", path, err)
	}
	if err := f.Close(); err != nil {
		return "", bsbierrors.IO("close", path, err)
	}

	if err := writeChecksum(path+".sum", sum.Sum64()); err != nil {
		return "", err
	}

	return path, nil
}

func writeChecksum(path string, sum uint64) error {
	content := strconv.FormatUint(sum, 16) + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return bsbierrors.IO("write", path, err)
	}
	return nil
}
