package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yaklabco/htmlvet/pkg/check"
)

var (
	// linkTagPattern captures the attribute text of every <link> tag.
	// Attributes are free text up to the closing bracket.
	linkTagPattern = regexp.MustCompile(`(?i)<link\s+([^>]+)>`)

	hrefAttrPattern = regexp.MustCompile(`(?i)href\s*=`)
	relAttrPattern  = regexp.MustCompile(`(?i)rel\s*=`)
)

// LinkAttrsRule checks that every <link> tag carries both href and rel.
type LinkAttrsRule struct {
	check.BaseRule
}

// NewLinkAttrsRule creates a new link attribute completeness rule.
func NewLinkAttrsRule() *LinkAttrsRule {
	return &LinkAttrsRule{
		BaseRule: check.NewBaseRule(
			"HV007",
			"link-attrs",
			"All <link> tags have href and rel",
			[]string{"structure"},
		),
	}
}

// Apply scans every <link> tag and flags those missing href or rel.
// Each tag is judged independently; the raw attribute text of bad tags is
// retained as examples up to the configured cap.
func (r *LinkAttrsRule) Apply(ctx *check.RuleContext) (check.Result, error) {
	maxExamples := ctx.MaxExamples()

	var bad int
	var examples []check.Example

	for _, match := range linkTagPattern.FindAllStringSubmatch(ctx.Doc.Content, -1) {
		attrs := match[1]
		if hrefAttrPattern.MatchString(attrs) && relAttrPattern.MatchString(attrs) {
			continue
		}
		bad++
		if len(examples) < maxExamples {
			examples = append(examples, check.Example{Text: strings.TrimSpace(attrs)})
		}
	}

	if bad == 0 {
		return r.Pass(), nil
	}
	return r.Fail(
		fmt.Sprintf("found %d <link> tag(s) missing href or rel", bad),
		examples...,
	), nil
}
