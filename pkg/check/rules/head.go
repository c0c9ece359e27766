package rules

import (
	"fmt"
	"regexp"

	"github.com/yaklabco/htmlvet/pkg/check"
)

var (
	headOpenPattern  = regexp.MustCompile(`(?i)<head\b`)
	headClosePattern = regexp.MustCompile(`(?i)</head>`)
	bodyOpenPattern  = regexp.MustCompile(`(?i)<body\b`)
	bodyClosePattern = regexp.MustCompile(`(?i)</body>`)

	// titleInHeadPattern is a textual proximity heuristic: a <title> pair
	// anywhere after a <head> opening substring satisfies it, nesting is
	// not verified. The lazy quantifier binds the nearest title; the dot
	// deliberately does not cross line breaks inside the title pair.
	titleInHeadPattern = regexp.MustCompile(`(?i)<head[\s\S]*?<title>.*?</title>`)
)

// HeadRule checks that a <head> block is opened and closed.
// Presence is boolean: duplicates are not counted, unlike <html> and <body>.
type HeadRule struct {
	check.BaseRule
}

// NewHeadRule creates a new head presence rule.
func NewHeadRule() *HeadRule {
	return &HeadRule{
		BaseRule: check.NewBaseRule(
			"HV004",
			"head-present",
			"<head> present and closed",
			[]string{"structure"},
		),
	}
}

// Apply checks for <head> opening and closing tags.
func (r *HeadRule) Apply(ctx *check.RuleContext) (check.Result, error) {
	opened := headOpenPattern.MatchString(ctx.Doc.Content)
	closed := headClosePattern.MatchString(ctx.Doc.Content)

	if opened && closed {
		return r.Pass(), nil
	}
	return r.Fail("ensure <head>...</head> exists and is properly closed"), nil
}

// BodyRule checks for exactly one <body> open/close pair.
type BodyRule struct {
	check.BaseRule
}

// NewBodyRule creates a new body presence rule.
func NewBodyRule() *BodyRule {
	return &BodyRule{
		BaseRule: check.NewBaseRule(
			"HV005",
			"body-single",
			"<body> present exactly once",
			[]string{"structure"},
		),
	}
}

// Apply counts <body> opening and closing tags.
func (r *BodyRule) Apply(ctx *check.RuleContext) (check.Result, error) {
	opens := len(bodyOpenPattern.FindAllStringIndex(ctx.Doc.Content, -1))
	closes := len(bodyClosePattern.FindAllStringIndex(ctx.Doc.Content, -1))

	if opens == 1 && closes == 1 {
		return r.Pass(), nil
	}
	return r.Fail(fmt.Sprintf("found <body> opens: %d, closes: %d", opens, closes)), nil
}

// TitleRule checks that a <title> pair follows a <head> opening tag.
type TitleRule struct {
	check.BaseRule
}

// NewTitleRule creates a new title-in-head rule.
func NewTitleRule() *TitleRule {
	return &TitleRule{
		BaseRule: check.NewBaseRule(
			"HV006",
			"title-in-head",
			"<title> present inside <head>",
			[]string{"structure", "accessibility"},
		),
	}
}

// Apply checks for a title pair after a head opening tag.
func (r *TitleRule) Apply(ctx *check.RuleContext) (check.Result, error) {
	if titleInHeadPattern.MatchString(ctx.Doc.Content) {
		return r.Pass(), nil
	}
	return r.Fail("add a <title> inside <head> to improve accessibility and SEO"), nil
}
