package reporter

import (
	"io"
	"os"
)

// Options configures report output.
type Options struct {
	// Writer receives the formatted report. Defaults to stdout.
	Writer io.Writer

	// Format selects the output format. Defaults to text.
	Format Format

	// Color controls colorization: "auto", "always", or "never".
	Color string

	// ShowHeader prints the "Checking: <path>" line before the results.
	ShowHeader bool
}

// DefaultOptions returns reporter options with defaults applied.
func DefaultOptions() Options {
	return Options{
		Writer:     os.Stdout,
		Format:     FormatText,
		Color:      "auto",
		ShowHeader: true,
	}
}
