package matriz

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"enermatrix/pkg/matriz/output"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// stubConverter satisfies convert.Converter without touching any legacy
// reader.
type stubConverter struct {
	out   string
	err   error
	calls int
}

func (s *stubConverter) Convert(src string) (string, error) {
	s.calls++
	return s.out, s.err
}

func testOptions(t *testing.T) Options {
	t.Helper()
	base := t.TempDir()
	opts := DefaultOptions()
	opts.InputDir = filepath.Join(base, "planilhas")
	opts.ConvertedDir = filepath.Join(base, "convertidos")
	opts.OutputDir = filepath.Join(base, "saida")
	require.NoError(t, os.MkdirAll(opts.InputDir, 0755))
	return opts
}

func writeFixture(t *testing.T, path string, cells map[string]interface{}) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for ref, v := range cells {
		require.NoError(t, f.SetCellValue("Sheet1", ref, v))
	}
	require.NoError(t, f.SaveAs(path))
}

func readOutput(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(output.SheetName)
	require.NoError(t, err)
	return rows
}

func TestRunConsolidatesInDiscoveryOrder(t *testing.T) {
	opts := testOptions(t)
	// Created out of order on purpose; discovery sorts by path.
	writeFixture(t, filepath.Join(opts.InputDir, "b.xlsx"), map[string]interface{}{
		// First data row has no tag and nothing earlier in this file to
		// inherit from: fill-down must not leak from a.xlsx.
		"E11": "Hydraulic",
	})
	writeFixture(t, filepath.Join(opts.InputDir, "a.xlsx"), map[string]interface{}{
		"B11": "PUMP-01",
		"C11": "Water",
		"D11": "Pump",
		"E11": "Steam",
		"E12": "Gas",
	})

	p := NewPipeline(opts, &stubConverter{})
	summary, err := p.Run()
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Found)
	assert.Equal(t, 2, summary.Processed)
	assert.Equal(t, 0, summary.Converted)
	assert.Empty(t, summary.Failures)
	assert.Equal(t, 3, summary.Records)
	assert.Equal(t, opts.OutputPath(), summary.OutputPath)

	rows := readOutput(t, summary.OutputPath)
	require.Len(t, rows, 4)
	assert.Equal(t, output.Headers, rows[0][:len(output.Headers)])

	assert.Equal(t, "a.xlsx", rows[1][0])
	assert.Equal(t, "a.xlsx", rows[2][0])
	assert.Equal(t, "b.xlsx", rows[3][0])

	// Fill-down inside a.xlsx.
	assert.Equal(t, "PUMP-01", rows[2][2])
	assert.Equal(t, "Water Pump", rows[2][3])

	// No cross-file inheritance: b.xlsx row has an empty tag cell.
	f, err := excelize.OpenFile(summary.OutputPath)
	require.NoError(t, err)
	defer f.Close()
	tag, err := f.GetCellValue(output.SheetName, "C4")
	require.NoError(t, err)
	assert.Empty(t, tag)
}

func TestRunSkipsCorruptFile(t *testing.T) {
	opts := testOptions(t)
	writeFixture(t, filepath.Join(opts.InputDir, "good.xlsx"), map[string]interface{}{
		"E11": "Steam",
	})
	require.NoError(t, os.WriteFile(filepath.Join(opts.InputDir, "bad.xlsx"), []byte("not a workbook"), 0644))

	summary, err := NewPipeline(opts, &stubConverter{}).Run()
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Found)
	assert.Equal(t, 1, summary.Processed)
	require.Len(t, summary.Failures, 1)
	assert.Equal(t, "bad.xlsx", summary.Failures[0].File)

	// The skipped file shows up on the Erros sheet.
	f, err := excelize.OpenFile(summary.OutputPath)
	require.NoError(t, err)
	defer f.Close()
	name, err := f.GetCellValue(output.ErrorSheetName, "A2")
	require.NoError(t, err)
	assert.Equal(t, "bad.xlsx", name)
}

func TestRunSkipsMalformedMatrix(t *testing.T) {
	opts := testOptions(t)
	writeFixture(t, filepath.Join(opts.InputDir, "good.xlsx"), map[string]interface{}{
		"E11": "Steam",
	})
	// Sheet ends before the data region start.
	writeFixture(t, filepath.Join(opts.InputDir, "short.xlsx"), map[string]interface{}{
		"A1": "title only",
	})

	summary, err := NewPipeline(opts, &stubConverter{}).Run()
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Processed)
	require.Len(t, summary.Failures, 1)
	assert.Equal(t, "short.xlsx", summary.Failures[0].File)
}

func TestRunAllFilesFailed(t *testing.T) {
	opts := testOptions(t)
	require.NoError(t, os.WriteFile(filepath.Join(opts.InputDir, "bad.xlsx"), []byte("junk"), 0644))

	summary, err := NewPipeline(opts, &stubConverter{}).Run()
	require.ErrorIs(t, err, ErrAllFilesFailed)
	require.NotNil(t, summary)
	assert.Empty(t, summary.OutputPath)
	assert.NoFileExists(t, opts.OutputPath())
}

func TestRunMissingInputDir(t *testing.T) {
	opts := DefaultOptions()
	opts.InputDir = filepath.Join(t.TempDir(), "nonexistent")

	_, err := NewPipeline(opts, &stubConverter{}).Run()
	require.ErrorIs(t, err, ErrInputDirMissing)
}

func TestRunEmptyInputDir(t *testing.T) {
	opts := testOptions(t)

	_, err := NewPipeline(opts, &stubConverter{}).Run()
	require.ErrorIs(t, err, ErrNoMatrices)
}

func TestRunConvertsLegacyFiles(t *testing.T) {
	opts := testOptions(t)

	// The stub stands in for the legacy reader: it hands back an
	// already-normalized workbook, the way a cached conversion would.
	normalized := filepath.Join(t.TempDir(), "legacy_converted.xlsx")
	writeFixture(t, normalized, map[string]interface{}{
		"B11": "FAN-03",
		"E11": "Electric",
	})
	require.NoError(t, os.WriteFile(filepath.Join(opts.InputDir, "legacy.xls"), []byte("biff"), 0644))

	conv := &stubConverter{out: normalized}
	summary, err := NewPipeline(opts, conv).Run()
	require.NoError(t, err)

	assert.Equal(t, 1, conv.calls)
	assert.Equal(t, 1, summary.Converted)
	assert.Equal(t, 1, summary.Records)

	// Provenance names the original file, not the converted copy.
	rows := readOutput(t, summary.OutputPath)
	require.Len(t, rows, 2)
	assert.Equal(t, "legacy.xls", rows[1][0])
}

func TestRunConversionFailureSkipsFile(t *testing.T) {
	opts := testOptions(t)
	writeFixture(t, filepath.Join(opts.InputDir, "good.xlsx"), map[string]interface{}{
		"E11": "Steam",
	})
	require.NoError(t, os.WriteFile(filepath.Join(opts.InputDir, "legacy.xls"), []byte("biff"), 0644))

	conv := &stubConverter{err: errors.New("reader unavailable")}
	summary, err := NewPipeline(opts, conv).Run()
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Processed)
	assert.Equal(t, 0, summary.Converted)
	require.Len(t, summary.Failures, 1)
	assert.Equal(t, "legacy.xls", summary.Failures[0].File)
	assert.Contains(t, summary.Failures[0].Reason, "reader unavailable")
}

func TestRunTwiceProducesSameRecords(t *testing.T) {
	opts := testOptions(t)
	writeFixture(t, filepath.Join(opts.InputDir, "a.xlsx"), map[string]interface{}{
		"B11": "PUMP-01",
		"E11": "Steam",
		"E12": "Gas",
	})

	p := NewPipeline(opts, &stubConverter{})
	first, err := p.Run()
	require.NoError(t, err)
	firstRows := readOutput(t, first.OutputPath)

	second, err := p.Run()
	require.NoError(t, err)
	secondRows := readOutput(t, second.OutputPath)

	assert.Equal(t, firstRows, secondRows)
}
