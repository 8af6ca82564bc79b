package matriz

import (
	"fmt"
	"os"

	"enermatrix/pkg/matriz/convert"
	"enermatrix/pkg/matriz/models"
	"enermatrix/pkg/matriz/output"
	"enermatrix/pkg/matriz/parser"

	"github.com/rs/zerolog/log"
)

// Pipeline runs one consolidation: discover input matrices, normalize
// legacy files, parse each data region, and write the merged workbook.
// Files are processed sequentially in discovery order; a failing file is
// logged and skipped, and only the final write is fatal.
type Pipeline struct {
	opts Options
	conv convert.Converter
}

// NewPipeline builds a pipeline with the given options and legacy-format
// converter.
func NewPipeline(opts Options, conv convert.Converter) *Pipeline {
	return &Pipeline{opts: opts, conv: conv}
}

// Run executes the pipeline and returns the run summary. The summary is
// also returned alongside a non-nil error when the run produced partial
// results before failing.
func (p *Pipeline) Run() (*models.RunSummary, error) {
	if _, err := os.Stat(p.opts.InputDir); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInputDirMissing, p.opts.InputDir)
	}

	files, err := Discover(p.opts.InputDir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoMatrices, p.opts.InputDir)
	}

	summary := &models.RunSummary{Found: len(files)}
	var records []models.Record

	log.Info().Int("files", len(files)).Msg("starting consolidation")
	for i := range files {
		mf := &files[i]
		log.Info().Str("file", mf.Name()).Msgf("[%d/%d] processing", i+1, len(files))

		recs, converted, err := p.processFile(mf)
		if converted {
			summary.Converted++
		}
		if err != nil {
			summary.Failures = append(summary.Failures, models.FileFailure{
				File:   mf.Name(),
				Reason: err.Error(),
			})
			log.Warn().Str("file", mf.Name()).Err(err).Msg("file skipped")
			continue
		}

		summary.Processed++
		records = append(records, recs...)
	}

	if summary.Processed == 0 {
		return summary, fmt.Errorf("%w: %d of %d", ErrAllFilesFailed, len(summary.Failures), len(files))
	}

	w := output.NewWriter(p.opts.OutputPath())
	if err := w.Write(records, summary.Failures); err != nil {
		return summary, &WriteError{Path: w.Path(), Err: err}
	}

	summary.Records = len(records)
	summary.OutputPath = w.Path()

	log.Info().
		Int("found", summary.Found).
		Int("processed", summary.Processed).
		Int("converted", summary.Converted).
		Int("failed", len(summary.Failures)).
		Int("records", summary.Records).
		Str("output", summary.OutputPath).
		Msg("consolidation finished")
	return summary, nil
}

// processFile normalizes one matrix if needed and drains its record
// stream. converted reports whether a legacy conversion ran, so the
// summary counts it even when parsing later fails.
func (p *Pipeline) processFile(mf *models.MatrixFile) (recs []models.Record, converted bool, err error) {
	path := mf.Path
	if mf.NeedsConversion() {
		out, err := p.conv.Convert(mf.Path)
		if err != nil {
			return nil, false, &ConversionError{File: mf.Name(), Err: err}
		}
		mf.ConvertedPath = out
		path = out
		converted = true
		log.Debug().Str("file", mf.Name()).Str("converted", out).Msg("legacy file normalized")
	}

	it, err := parser.Parse(path, mf.Name(), p.opts.StartRow)
	if err != nil {
		return nil, converted, err
	}
	defer it.Close()

	for it.Next() {
		recs = append(recs, it.Record())
	}
	if err := it.Err(); err != nil {
		return nil, converted, err
	}
	return recs, converted, nil
}
