package rules

import (
	"fmt"
	"regexp"

	"github.com/yaklabco/htmlvet/pkg/check"
)

var (
	htmlOpenPattern  = regexp.MustCompile(`(?i)<html\b`)
	htmlClosePattern = regexp.MustCompile(`(?i)</html>`)

	// langPattern matches a standalone lang token within the attribute
	// region of an <html> opening tag. RE2 \b is an ASCII word boundary,
	// so a hyphenated prefix like data-lang also satisfies it; that
	// matches the original heuristic and is pinned by tests.
	langPattern = regexp.MustCompile(`(?i)<html[^>]*\blang\b`)
)

// SingleRootRule checks for exactly one <html> open/close pair.
type SingleRootRule struct {
	check.BaseRule
}

// NewSingleRootRule creates a new single root element rule.
func NewSingleRootRule() *SingleRootRule {
	return &SingleRootRule{
		BaseRule: check.NewBaseRule(
			"HV002",
			"single-html-root",
			"Single <html> open/close pair",
			[]string{"structure"},
		),
	}
}

// Apply counts <html> opening and closing tags.
func (r *SingleRootRule) Apply(ctx *check.RuleContext) (check.Result, error) {
	opens := len(htmlOpenPattern.FindAllStringIndex(ctx.Doc.Content, -1))
	closes := len(htmlClosePattern.FindAllStringIndex(ctx.Doc.Content, -1))

	if opens == 1 && closes == 1 {
		return r.Pass(), nil
	}
	return r.Fail(fmt.Sprintf("found <html> opens: %d, closes: %d", opens, closes)), nil
}

// LangRule checks that the <html> opening tag carries a lang attribute token.
// It does not validate the attribute's value, only its presence.
type LangRule struct {
	check.BaseRule
}

// NewLangRule creates a new language attribute rule.
func NewLangRule() *LangRule {
	return &LangRule{
		BaseRule: check.NewBaseRule(
			"HV003",
			"html-lang",
			"<html> has a lang attribute",
			[]string{"accessibility"},
		),
	}
}

// Apply checks for the lang token in the <html> tag's attribute region.
func (r *LangRule) Apply(ctx *check.RuleContext) (check.Result, error) {
	if langPattern.MatchString(ctx.Doc.Content) {
		return r.Pass(), nil
	}
	return r.Fail(`add lang="en" (or the document language) to the <html> tag`), nil
}
