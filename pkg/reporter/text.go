package reporter

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/yaklabco/htmlvet/internal/ui/pretty"
	"github.com/yaklabco/htmlvet/pkg/runner"
)

// TextReporter formats reports as styled terminal output:
// one PASS/FAIL line per check, indented diagnostics and examples under
// failures, and a final Overall verdict.
type TextReporter struct {
	opts     Options
	styles   *pretty.Styles
	bw       *bufio.Writer
	maxWidth int
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:     opts,
		styles:   pretty.NewStyles(colorEnabled),
		bw:       bufio.NewWriterSize(opts.Writer, bufWriterSize),
		maxWidth: exampleWidth(opts),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, report *runner.Report) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if report == nil {
		return 0, nil
	}

	if r.opts.ShowHeader {
		fmt.Fprint(r.bw, r.styles.FormatHeader(report.Path))
		fmt.Fprintln(r.bw)
	}

	for _, res := range report.Results {
		fmt.Fprint(r.bw, r.styles.FormatResult(&res, r.maxWidth))
	}

	failed := report.FailedCount()

	fmt.Fprintln(r.bw)
	fmt.Fprint(r.bw, r.styles.FormatOverall(report.Passed(), failed))

	return failed, nil
}

// exampleWidth returns the clamp width for example lines: a little under the
// terminal width when the writer is a TTY, otherwise unlimited.
func exampleWidth(opts Options) int {
	f, ok := opts.Writer.(*os.File)
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 10 {
		return 0
	}
	return width - 4
}
