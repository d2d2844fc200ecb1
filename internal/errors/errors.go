// Package errors defines the typed fatal-error values the indexing pipeline
// can raise: oversized documents, an unreadable input directory, an output
// directory that cannot be prepared, filesystem I/O failures, and non-UTF-8
// input. None of them are retried; the driver logs one and exits non-zero.
package errors

import (
	"fmt"
	"time"
)

// Kind classifies a fatal indexing error.
type Kind string

const (
	KindOversizedDocument Kind = "oversized_document"
	KindMissingInputDir   Kind = "missing_input_dir"
	KindOutputDirConflict Kind = "output_dir_conflict"
	KindIO                Kind = "io"
	KindEncoding          Kind = "encoding"
)

// IndexError wraps an underlying error with the kind, operation, and path
// context needed for a useful diagnostic.
type IndexError struct {
	Kind       Kind
	Operation  string
	Path       string
	Underlying error
	Timestamp  time.Time
}

// New creates an IndexError of the given kind.
func New(kind Kind, op string, err error) *IndexError {
	return &IndexError{
		Kind:       kind,
		Operation:  op,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// WithPath attaches a file or directory path to the error.
func (e *IndexError) WithPath(path string) *IndexError {
	e.Path = path
	return e
}

func (e *IndexError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s failed for %s: %v", e.Kind, e.Operation, e.Path, e.Underlying)
	}
	return fmt.Sprintf("%s: %s failed: %v", e.Kind, e.Operation, e.Underlying)
}

// Unwrap exposes the underlying error for errors.Is/errors.As.
func (e *IndexError) Unwrap() error {
	return e.Underlying
}

// Oversized reports an input document at or above the block budget.
func Oversized(path string, size, budget int64) *IndexError {
	return New(KindOversizedDocument, "enumerate",
		fmt.Errorf("document is %d bytes, at or above the block budget of %d bytes", size, budget)).
		WithPath(path)
}

// MissingInputDir reports an unreadable input directory.
func MissingInputDir(path string, err error) *IndexError {
	return New(KindMissingInputDir, "enumerate", err).WithPath(path)
}

// OutputDirConflict reports a failure to prepare the output directory.
func OutputDirConflict(path string, err error) *IndexError {
	return New(KindOutputDirConflict, "prepare output dir", err).WithPath(path)
}

// IO reports a read/write/rename/remove failure during indexing or merge.
func IO(op, path string, err error) *IndexError {
	return New(KindIO, op, err).WithPath(path)
}

// Encoding reports non-UTF-8 bytes in an input document.
func Encoding(path string) *IndexError {
	return New(KindEncoding, "decode", fmt.Errorf("document is not valid UTF-8")).WithPath(path)
}

// MultiError aggregates several oversized-document errors found during a
// single enumeration pass so the driver can report all of them before
// aborting, instead of stopping at the first.
type MultiError struct {
	Errors []error
}

func NewMultiError(errs []error) *MultiError {
	filtered := make([]error, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			filtered = append(filtered, err)
		}
	}
	return &MultiError{Errors: filtered}
}

func (e *MultiError) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%d errors: %v", len(e.Errors), e.Errors)
}

func (e *MultiError) Unwrap() []error {
	return e.Errors
}
