// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldWorkingDir = "working_dir"
	FieldFormat     = "format"
	FieldJobs       = "jobs"

	// Parse fields.
	FieldBytes    = "bytes"
	FieldChunks   = "chunks"
	FieldEvents   = "events"
	FieldElements = "elements"
	FieldDepth    = "depth"
	FieldCode     = "code"
	FieldSpan     = "span"
	FieldCapacity = "capacity"

	// Run statistics fields.
	FieldFilesDiscovered  = "files_discovered"
	FieldFilesParsed      = "files_parsed"
	FieldFilesErrored     = "files_errored"
	FieldDiagnosticsTotal = "diagnostics_total"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
