// Package reporter formats and writes check reports.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/htmlvet/pkg/runner"
)

// bufWriterSize is the buffer size for report writers.
const bufWriterSize = 32 * 1024

// Reporter formats and writes a check report.
type Reporter interface {
	// Report writes formatted output for the given report.
	// It returns the number of failed checks and any write errors.
	Report(ctx context.Context, report *runner.Report) (int, error)
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	switch format {
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatText:
		return NewTextReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
