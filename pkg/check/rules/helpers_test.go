package rules

import (
	"context"
	"testing"

	"github.com/yaklabco/htmlvet/pkg/check"
	"github.com/yaklabco/htmlvet/pkg/config"
	"github.com/yaklabco/htmlvet/pkg/htmldoc"
)

// newTestContext builds a RuleContext over the given document text with
// default configuration.
func newTestContext(t *testing.T, input string) *check.RuleContext {
	t.Helper()
	doc := htmldoc.New("test.html", []byte(input))
	return check.NewRuleContext(context.Background(), doc, config.NewConfig(), nil)
}

// applyRule runs a rule and fails the test on internal errors.
func applyRule(t *testing.T, rule check.Rule, input string) check.Result {
	t.Helper()
	result, err := rule.Apply(newTestContext(t, input))
	if err != nil {
		t.Fatalf("apply error: %v", err)
	}
	return result
}
