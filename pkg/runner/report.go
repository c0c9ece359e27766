package runner

import "github.com/yaklabco/htmlvet/pkg/check"

// Report is the ordered collection of check results for one document.
// Results appear in rule ID order, which fixes the display order.
type Report struct {
	// Path is the document path that was checked.
	Path string `json:"path"`

	// Results holds one entry per executed check.
	Results []check.Result `json:"checks"`
}

// Passed reports whether every check passed.
// It is the logical AND over all results; an empty report passes.
func (r *Report) Passed() bool {
	if r == nil {
		return false
	}
	for _, res := range r.Results {
		if !res.Passed {
			return false
		}
	}
	return true
}

// FailedCount returns the number of failed checks.
func (r *Report) FailedCount() int {
	if r == nil {
		return 0
	}
	var n int
	for _, res := range r.Results {
		if !res.Passed {
			n++
		}
	}
	return n
}
