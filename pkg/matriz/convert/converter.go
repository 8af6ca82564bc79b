// Package convert normalizes legacy workbooks into the modern format the
// parser reads.
package convert

// Converter turns a legacy spreadsheet into a file the parser can open,
// returning the path of the normalized copy. Implementations must not
// modify the source file. Kept narrow so the rest of the pipeline stays
// ignorant of source formats and tests can substitute stubs.
type Converter interface {
	Convert(src string) (string, error)
}
