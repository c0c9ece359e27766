package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yaklabco/htmlvet/pkg/check"
)

// entityPattern matches the tail of an escaped ampersand: a numeric, hex, or
// named character reference. RE2 has no lookahead, so the bare-ampersand scan
// walks the '&' positions of each line and tests the remainder against this
// anchored pattern instead of porting the original negative lookahead.
var entityPattern = regexp.MustCompile(`^(#[0-9]+|#x[0-9a-fA-F]+|[a-zA-Z]+);`)

// AmpersandRule flags lines containing a literal '&' that is not part of a
// character reference.
type AmpersandRule struct {
	check.BaseRule
}

// NewAmpersandRule creates a new unescaped ampersand rule.
func NewAmpersandRule() *AmpersandRule {
	return &AmpersandRule{
		BaseRule: check.NewBaseRule(
			"HV008",
			"no-bare-ampersands",
			"No unescaped ampersands",
			[]string{"content"},
		),
	}
}

// Apply scans each line for bare ampersands.
// A line is recorded at most once, with its 1-based number and trimmed text.
func (r *AmpersandRule) Apply(ctx *check.RuleContext) (check.Result, error) {
	maxExamples := ctx.MaxExamples()

	var bad int
	var examples []check.Example

	for i, line := range ctx.Doc.Lines() {
		if lineHasBareAmpersand(line) {
			bad++
			if len(examples) < maxExamples {
				examples = append(examples, check.Example{
					Line: i + 1,
					Text: strings.TrimSpace(line),
				})
			}
		}
	}

	if bad == 0 {
		return r.Pass(), nil
	}
	return r.Fail(
		fmt.Sprintf("found %d line(s) with a literal '&' that may need escaping", bad),
		examples...,
	), nil
}

// lineHasBareAmpersand reports whether the line contains an '&' not
// immediately followed by a character reference.
func lineHasBareAmpersand(line string) bool {
	for i := 0; i < len(line); i++ {
		if line[i] != '&' {
			continue
		}
		if !entityPattern.MatchString(line[i+1:]) {
			return true
		}
	}
	return false
}
