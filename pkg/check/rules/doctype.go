package rules

import (
	"regexp"

	"github.com/yaklabco/htmlvet/pkg/check"
)

// doctypePattern matches a doctype declaration anywhere in the document,
// not only at the start.
var doctypePattern = regexp.MustCompile(`(?i)<!doctype\s+html`)

// DoctypeRule checks that the document declares an HTML doctype.
type DoctypeRule struct {
	check.BaseRule
}

// NewDoctypeRule creates a new doctype presence rule.
func NewDoctypeRule() *DoctypeRule {
	return &DoctypeRule{
		BaseRule: check.NewBaseRule(
			"HV001",
			"doctype-present",
			"DOCTYPE declaration present",
			[]string{"structure"},
		),
	}
}

// Apply checks for the doctype declaration.
func (r *DoctypeRule) Apply(ctx *check.RuleContext) (check.Result, error) {
	if doctypePattern.MatchString(ctx.Doc.Content) {
		return r.Pass(), nil
	}
	return r.Fail("add <!DOCTYPE html> at the top of the document"), nil
}
