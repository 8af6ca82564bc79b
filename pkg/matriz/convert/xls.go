package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// XLSConverter converts legacy BIFF .xls workbooks to .xlsx using a
// native reader, cell for cell, preserving row and column positions.
// Converted files land in OutDir under the source file's stem; an
// existing converted file is reused, so converting twice is cheap and
// yields the same output.
type XLSConverter struct {
	// OutDir is where converted workbooks are written.
	OutDir string
	// Charset is the codepage tried first for pre-Unicode files;
	// utf-8 is the fallback.
	Charset string
}

// NewXLSConverter returns a converter writing to outDir. charset may be
// empty, in which case only utf-8 is tried.
func NewXLSConverter(outDir, charset string) *XLSConverter {
	return &XLSConverter{OutDir: outDir, Charset: charset}
}

// Convert implements Converter.
func (c *XLSConverter) Convert(src string) (string, error) {
	out := c.outputPath(src)
	if _, err := os.Stat(out); err == nil {
		return out, nil
	}

	wb, err := c.open(src)
	if err != nil {
		return "", fmt.Errorf("open legacy workbook: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	for i := 0; i < wb.NumSheets(); i++ {
		ws := wb.GetSheet(i)
		if ws == nil {
			continue
		}
		name := ws.Name
		if name == "" {
			name = fmt.Sprintf("Sheet%d", i+1)
		}
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
				return "", fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return "", fmt.Errorf("add sheet %q: %w", name, err)
		}
		if err := copySheet(ws, f, name); err != nil {
			return "", fmt.Errorf("copy sheet %q: %w", name, err)
		}
	}

	if err := os.MkdirAll(c.OutDir, 0755); err != nil {
		return "", err
	}
	if err := f.SaveAs(out); err != nil {
		return "", fmt.Errorf("save converted workbook: %w", err)
	}
	return out, nil
}

// open tries the configured charset first; many legacy files predate
// Unicode and misdecode under utf-8.
func (c *XLSConverter) open(src string) (*xls.WorkBook, error) {
	if c.Charset != "" && c.Charset != "utf-8" {
		if wb, err := xls.Open(src, c.Charset); err == nil {
			return wb, nil
		}
	}
	return xls.Open(src, "utf-8")
}

// copySheet writes every non-empty cell of ws into sheet name of f at the
// same coordinates.
func copySheet(ws *xls.WorkSheet, f *excelize.File, name string) error {
	for r := 0; r <= int(ws.MaxRow); r++ {
		row := ws.Row(r)
		if row == nil {
			continue
		}
		for col := row.FirstCol(); col < row.LastCol(); col++ {
			v := row.Col(col)
			if v == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(name, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// outputPath maps planilhas/foo.xls to <OutDir>/foo.xlsx.
func (c *XLSConverter) outputPath(src string) string {
	base := filepath.Base(src)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(c.OutDir, stem+".xlsx")
}
