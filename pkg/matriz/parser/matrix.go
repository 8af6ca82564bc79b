// Package parser extracts structured records from one normalized energy
// matrix workbook. Data rows start at a fixed offset and follow a fixed
// column layout; see layout.go.
package parser

import (
	"fmt"

	"enermatrix/pkg/matriz/models"

	"github.com/xuri/excelize/v2"
)

// MalformedMatrixError indicates the workbook lacks the expected data
// region: no worksheet at all, or the sheet ends before the agreed start
// row. The file is skipped; the run continues.
type MalformedMatrixError struct {
	File   string
	Reason string
}

func (e *MalformedMatrixError) Error() string {
	return fmt.Sprintf("malformed matrix %q: %s", e.File, e.Reason)
}

// Parse opens a normalized workbook and returns a lazy iterator over its
// records. origin is the name recorded for provenance (the original input
// file, not the converted copy). The iterator is consumed once; callers
// must Close it.
func Parse(path, origin string, startRow int) (*RecordIter, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		f.Close()
		return nil, &MalformedMatrixError{File: origin, Reason: "workbook has no sheets"}
	}

	// Records always come from the first sheet, by convention.
	rows, err := f.Rows(sheets[0])
	if err != nil {
		f.Close()
		return nil, err
	}

	return &RecordIter{
		f:        f,
		rows:     rows,
		origin:   origin,
		startRow: startRow,
	}, nil
}

// RecordIter is a lazy, non-restartable stream of records from one
// matrix. It carries the per-file fill-down state: the resolved equipment
// tag and description of the nearest preceding row, never shared across
// files.
type RecordIter struct {
	f        *excelize.File
	rows     *excelize.Rows
	origin   string
	startRow int

	row  int
	cur  models.Record
	err  error
	done bool

	lastTag  *string
	lastDesc *string
}

// Next advances to the next retained record. It returns false when the
// data region ends (sheet end or footer block) or on error; check Err
// afterwards.
func (it *RecordIter) Next() bool {
	if it.done || it.err != nil {
		return false
	}

	for it.rows.Next() {
		it.row++
		if it.row < it.startRow {
			continue
		}

		cells, err := it.rows.Columns()
		if err != nil {
			it.err = err
			return false
		}

		if hasFooterMarker(cells) {
			it.done = true
			return false
		}
		if !hasAnyData(cells) {
			continue
		}

		tag := joinGroup(cells, colsEquipTag)
		desc := joinGroup(cells, colsEquipDesc)

		// Fill-down: inherit the resolved value of the nearest
		// preceding row. State updates even when the row is later
		// discarded, so tag-only header rows seed inheritance.
		if tag == nil {
			tag = it.lastTag
		} else {
			it.lastTag = tag
		}
		if desc == nil {
			desc = it.lastDesc
		} else {
			it.lastDesc = desc
		}

		rec := models.Record{
			SourceFile:    it.origin,
			Row:           it.row,
			EquipmentTag:  tag,
			EquipmentDesc: desc,
			SourceTag:     joinGroup(cells, colsSourceTag),
			SourceDesc:    joinGroup(cells, colsSourceDesc),
			LockMethod:    joinGroup(cells, colsLockMethod),
			LockPoint:     joinGroup(cells, colsLockPoint),
			LockType:      joinGroup(cells, colsLockType),
			UnlockMethod:  joinGroup(cells, colsUnlockMethod),
		}

		// Source/process fields are never inherited; a row without
		// any of them carries no record.
		if !rec.HasSourceInfo() {
			continue
		}

		it.cur = rec
		return true
	}

	it.done = true
	if err := it.rows.Error(); err != nil {
		it.err = err
	} else if it.row < it.startRow {
		it.err = &MalformedMatrixError{
			File:   it.origin,
			Reason: fmt.Sprintf("sheet ends at row %d, before data region start %d", it.row, it.startRow),
		}
	}
	return false
}

// Record returns the record produced by the last successful Next.
func (it *RecordIter) Record() models.Record {
	return it.cur
}

// Err returns the first error hit during iteration, if any.
func (it *RecordIter) Err() error {
	return it.err
}

// Close releases the underlying workbook. Safe to call after a partial
// read.
func (it *RecordIter) Close() error {
	rerr := it.rows.Close()
	ferr := it.f.Close()
	if rerr != nil {
		return rerr
	}
	return ferr
}
