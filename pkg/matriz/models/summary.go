package models

// FileFailure records one input file that was skipped and why.
type FileFailure struct {
	// File is the base name of the failed input file.
	File string
	// Reason is the failure message.
	Reason string
}

// RunSummary aggregates the outcome of one consolidation run.
type RunSummary struct {
	// Found is the number of candidate files discovered.
	Found int
	// Processed is the number of files parsed successfully.
	Processed int
	// Converted is the number of legacy files normalized.
	Converted int
	// Records is the number of consolidated records written.
	Records int
	// OutputPath is the location of the consolidated workbook.
	OutputPath string
	// Failures lists the skipped files.
	Failures []FileFailure
}
