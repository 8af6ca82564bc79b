// Package models defines data structures for matrix consolidation.
package models

// Record represents one equipment/energy-source entry extracted from a
// matrix row. Value fields are *string so that a missing cell stays nil;
// the downstream import distinguishes null from empty string.
type Record struct {
	// SourceFile is the name of the matrix file this record came from.
	SourceFile string
	// Row is the 1-based row number in the origin file.
	Row int
	// EquipmentTag is the equipment tag (column B, inherited via fill-down).
	EquipmentTag *string
	// EquipmentDesc is the equipment description (columns C+D, inherited via fill-down).
	EquipmentDesc *string
	// SourceTag is the energy source tag (columns E-G).
	SourceTag *string
	// SourceDesc is the energy source description (columns H-L).
	SourceDesc *string
	// LockMethod describes how to lock out the source (columns M-N).
	LockMethod *string
	// LockPoint describes where to lock / point tag (columns O-S).
	LockPoint *string
	// LockType is the lockout type (columns T-U).
	LockType *string
	// UnlockMethod describes how to release the lockout (columns Z-AA).
	UnlockMethod *string
}

// HasSourceInfo reports whether any non-inherited source/process field is
// present. Rows where this is false are discarded by the parser.
func (r Record) HasSourceInfo() bool {
	for _, v := range []*string{r.SourceTag, r.SourceDesc, r.LockMethod, r.LockPoint, r.LockType, r.UnlockMethod} {
		if v != nil {
			return true
		}
	}
	return false
}
