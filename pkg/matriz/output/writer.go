// Package output serializes consolidated records into the workbook the
// downstream registration system imports.
package output

import (
	"fmt"
	"os"
	"path/filepath"

	"enermatrix/pkg/matriz/models"

	"github.com/xuri/excelize/v2"
)

// SheetName is the consolidated data sheet.
const SheetName = "Consolidado"

// ErrorSheetName lists skipped input files; only present when some failed.
const ErrorSheetName = "Erros"

// Headers is the fixed header row, in column order. The Portuguese names
// are the contract with the downstream import and must not change.
var Headers = []string{
	"Arquivo de Origem",
	"Linha de Origem",
	"Tag do Equipamento",
	"Descrição do Equipamento",
	"Tag da Fonte de Energia",
	"Descrição da Fonte de Energia",
	"Como Bloquear",
	"Onde Bloquear / TAG",
	"Tipo de Bloqueio",
	"Como Desbloquear",
}

// Writer persists one run's records to a fixed output path, overwriting
// any previous output.
type Writer struct {
	path string
}

// NewWriter returns a Writer targeting path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Path returns the output location.
func (w *Writer) Path() string {
	return w.path
}

// Write creates the consolidated workbook: a header row followed by one
// row per record in the given order. Nil record fields leave their cell
// unset rather than writing an empty string. When failures is non-empty
// an Erros sheet is appended listing them.
func (w *Writer) Write(records []models.Record, failures []models.FileFailure) error {
	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return err
	}
	if err := writeHeader(f, SheetName, Headers); err != nil {
		return err
	}

	for i, rec := range records {
		if err := writeRecord(f, i+2, rec); err != nil {
			return err
		}
	}

	if len(failures) > 0 {
		if err := writeFailures(f, failures); err != nil {
			return err
		}
	}

	return f.SaveAs(w.path)
}

func writeHeader(f *excelize.File, sheet string, headers []string) error {
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return err
		}
	}
	return nil
}

func writeRecord(f *excelize.File, rowNum int, rec models.Record) error {
	if err := setCell(f, 1, rowNum, rec.SourceFile); err != nil {
		return err
	}
	if err := setCell(f, 2, rowNum, rec.Row); err != nil {
		return err
	}
	fields := []*string{
		rec.EquipmentTag,
		rec.EquipmentDesc,
		rec.SourceTag,
		rec.SourceDesc,
		rec.LockMethod,
		rec.LockPoint,
		rec.LockType,
		rec.UnlockMethod,
	}
	for i, v := range fields {
		if v == nil {
			continue
		}
		if err := setCell(f, i+3, rowNum, *v); err != nil {
			return err
		}
	}
	return nil
}

func writeFailures(f *excelize.File, failures []models.FileFailure) error {
	if _, err := f.NewSheet(ErrorSheetName); err != nil {
		return err
	}
	if err := writeHeader(f, ErrorSheetName, []string{"Arquivo", "Erro"}); err != nil {
		return err
	}
	for i, fail := range failures {
		if err := f.SetCellValue(ErrorSheetName, fmt.Sprintf("A%d", i+2), fail.File); err != nil {
			return err
		}
		if err := f.SetCellValue(ErrorSheetName, fmt.Sprintf("B%d", i+2), fail.Reason); err != nil {
			return err
		}
	}
	return nil
}

func setCell(f *excelize.File, col, row int, v interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(SheetName, cell, v)
}
