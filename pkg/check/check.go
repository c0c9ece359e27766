// Package check provides the rule engine, results, and registry for htmlvet.
package check

// Example is one concrete failure instance retained for display.
type Example struct {
	// Line is the 1-based line number, or 0 when the example is not
	// line-addressed (e.g. a raw attribute string).
	Line int `json:"line,omitempty"`

	// Text is the example content, trimmed of surrounding whitespace.
	Text string `json:"text"`
}

// Result is the outcome of a single check against a document.
// It is created once by the rule and never mutated afterwards.
type Result struct {
	// RuleID is the identifier of the rule that produced this result.
	RuleID string `json:"id"`

	// RuleName is the human-readable name of the rule (e.g. "html-lang").
	RuleName string `json:"name"`

	// Description is the display description printed on the PASS/FAIL line.
	Description string `json:"description"`

	// Passed reports whether the check was satisfied.
	Passed bool `json:"passed"`

	// Diagnostic explains the failure. Only meaningful when !Passed.
	Diagnostic string `json:"diagnostic,omitempty"`

	// Examples holds up to MaxExamples concrete failure instances,
	// in document order. Only meaningful when !Passed.
	Examples []Example `json:"examples,omitempty"`
}

// Rule defines the interface that all checks implement.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g. "HV001").
	// Rules run in ascending ID order.
	ID() string

	// Name returns the human-readable name of the rule.
	Name() string

	// Description returns the display description for report lines.
	Description() string

	// Tags returns categorization tags for this rule (e.g. ["structure"]).
	Tags() []string

	// Apply executes the check against the given context.
	//
	// Rules must:
	//   - Always produce a Result; check failures are data, not errors.
	//   - Return error only for internal failures.
	//   - Not depend on any other rule's outcome.
	Apply(ctx *RuleContext) (Result, error)
}
