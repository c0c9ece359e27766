// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldFormat      = "format"
	FieldMaxExamples = "max_examples"
	FieldConfigFiles = "config_files"

	// Report fields.
	FieldChecksRun    = "checks_run"
	FieldChecksFailed = "checks_failed"
	FieldOverall      = "overall"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Rule fields.
	FieldName        = "name"
	FieldTags        = "tags"
	FieldDescription = "description"
)
