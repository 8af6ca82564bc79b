package matriz

import (
	"errors"
	"fmt"
)

// ErrInputDirMissing indicates the input directory does not exist.
var ErrInputDirMissing = errors.New("input directory not found")

// ErrNoMatrices indicates the input directory holds no spreadsheet files.
var ErrNoMatrices = errors.New("no matrix files found")

// ErrAllFilesFailed indicates every discovered file was skipped; nothing
// could be consolidated.
var ErrAllFilesFailed = errors.New("all input files failed")

// ConversionError wraps a legacy-format normalization failure for one
// file. The file is skipped; the run continues.
type ConversionError struct {
	File string
	Err  error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("conversion failed for %q: %v", e.File, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// WriteError wraps a failure to produce the consolidated output. Fatal
// to the run; no partial-output guarantee is made.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("cannot write consolidated output %q: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
