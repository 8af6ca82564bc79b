package models

import (
	"path/filepath"
	"strings"
)

// Format is a recognized spreadsheet file format, keyed by extension.
type Format string

const (
	// FormatXLS is the legacy BIFF binary format; requires conversion.
	FormatXLS Format = ".xls"
	// FormatXLSX is the modern OOXML format.
	FormatXLSX Format = ".xlsx"
	// FormatXLSM is the modern OOXML format with macros.
	FormatXLSM Format = ".xlsm"
)

// DetectFormat maps a file path to its Format, or "" when the extension
// is not a spreadsheet the pipeline handles.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case string(FormatXLS):
		return FormatXLS
	case string(FormatXLSX):
		return FormatXLSX
	case string(FormatXLSM):
		return FormatXLSM
	}
	return ""
}

// MatrixFile represents one discovered input spreadsheet.
type MatrixFile struct {
	// Path is the location of the file under the input directory.
	Path string
	// Format is the detected format.
	Format Format
	// ConvertedPath is the normalized copy produced for legacy files;
	// empty until conversion happens.
	ConvertedPath string
}

// Name returns the base file name, used for provenance.
func (m MatrixFile) Name() string {
	return filepath.Base(m.Path)
}

// NeedsConversion reports whether the file is in the legacy format and
// must be normalized before parsing.
func (m MatrixFile) NeedsConversion() bool {
	return m.Format == FormatXLS
}
