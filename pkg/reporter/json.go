package reporter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/htmlvet/pkg/check"
	"github.com/yaklabco/htmlvet/pkg/runner"
)

// JSONReporter formats reports as indented JSON for CI consumption.
type JSONReporter struct {
	opts Options
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{opts: opts}
}

// jsonReport is the serialized report shape.
type jsonReport struct {
	Path   string         `json:"path"`
	Checks []check.Result `json:"checks"`
	Passed bool           `json:"passed"`
	Failed int            `json:"failed"`
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, report *runner.Report) (int, error) {
	if report == nil {
		return 0, nil
	}

	out := jsonReport{
		Path:   report.Path,
		Checks: report.Results,
		Passed: report.Passed(),
		Failed: report.FailedCount(),
	}

	enc := json.NewEncoder(r.opts.Writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return 0, fmt.Errorf("encode report: %w", err)
	}

	return out.Failed, nil
}
