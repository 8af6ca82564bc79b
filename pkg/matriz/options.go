// Package matriz consolidates energy matrix spreadsheets into one
// workbook for the downstream registration import.
package matriz

import "path/filepath"

// StartRow is the first data row of a matrix, fixed by convention with
// the spreadsheet authors. Rows above it are title and header blocks.
const StartRow = 11

// Options configures one consolidation run. The zero value is not
// useful; start from DefaultOptions.
type Options struct {
	// InputDir holds the matrices to consolidate.
	InputDir string
	// ConvertedDir receives normalized copies of legacy files.
	ConvertedDir string
	// OutputDir receives the consolidated workbook.
	OutputDir string
	// OutputFile is the consolidated workbook's name inside OutputDir.
	OutputFile string
	// StartRow is the first data row (1-based).
	StartRow int
	// XLSCharset is the codepage tried first when reading legacy files.
	XLSCharset string
}

// DefaultOptions returns the conventional directory layout.
func DefaultOptions() Options {
	return Options{
		InputDir:     "planilhas",
		ConvertedDir: "convertidos",
		OutputDir:    "saida",
		OutputFile:   "matriz_consolidada.xlsx",
		StartRow:     StartRow,
		XLSCharset:   "utf-8",
	}
}

// OutputPath returns the full path of the consolidated workbook.
func (o Options) OutputPath() string {
	return filepath.Join(o.OutputDir, o.OutputFile)
}
