package runner

import "github.com/udonlang/udon/pkg/analysis"

// FileOutcome is the result of parsing one file.
type FileOutcome struct {
	// Path is the file that was parsed.
	Path string

	// Summary aggregates the file's event stream. Nil when Err is set.
	Summary *analysis.Summary

	// Err is set when the file could not be read or fed.
	Err error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found.
	FilesDiscovered int

	// FilesParsed is the number of files parsed to completion.
	FilesParsed int

	// FilesErrored is the number of files that could not be processed.
	FilesErrored int

	// FilesWithDiagnostics is the number of files whose streams contain
	// document errors.
	FilesWithDiagnostics int

	// DiagnosticsTotal is the total number of document errors.
	DiagnosticsTotal int

	// ElementsTotal is the total element count across all files.
	ElementsTotal int

	// EventsTotal is the total event count across all files.
	EventsTotal int

	// BytesTotal is the total input size in bytes.
	BytesTotal int64
}

// Result is the overall outcome of a run, ordered by path.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

// HasDiagnostics reports whether any file produced document errors.
func (r *Result) HasDiagnostics() bool {
	return r != nil && r.Stats.DiagnosticsTotal > 0
}

// HasFailures reports whether any file failed to process at all.
func (r *Result) HasFailures() bool {
	return r != nil && r.Stats.FilesErrored > 0
}

// accumulate folds one outcome into the result.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Err != nil {
		r.Stats.FilesErrored++
		return
	}
	if outcome.Summary == nil {
		return
	}
	r.Stats.FilesParsed++
	r.Stats.EventsTotal += outcome.Summary.Events
	r.Stats.ElementsTotal += outcome.Summary.Elements
	r.Stats.BytesTotal += outcome.Summary.Bytes
	if n := len(outcome.Summary.Diagnostics); n > 0 {
		r.Stats.FilesWithDiagnostics++
		r.Stats.DiagnosticsTotal += n
	}
}
