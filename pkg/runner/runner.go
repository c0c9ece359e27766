// Package runner loads a document and applies every enabled check to it.
package runner

import (
	"context"
	"fmt"

	"github.com/yaklabco/htmlvet/pkg/check"
	"github.com/yaklabco/htmlvet/pkg/config"
	"github.com/yaklabco/htmlvet/pkg/fsutil"
	"github.com/yaklabco/htmlvet/pkg/htmldoc"
)

// Runner applies a registry of checks to a single document per run.
type Runner struct {
	registry *check.Registry
}

// New creates a Runner backed by the given registry.
// A nil registry falls back to the default registry.
func New(registry *check.Registry) *Runner {
	if registry == nil {
		registry = check.DefaultRegistry
	}
	return &Runner{registry: registry}
}

// Run reads the document at path and applies all enabled rules in ID order.
//
// Checks never short-circuit: every enabled rule executes and contributes a
// result regardless of earlier outcomes. An error is returned only for input
// problems (file missing, unreadable, a directory) or a rule-internal failure;
// check failures are data on the Report.
func (r *Runner) Run(ctx context.Context, path string, cfg *config.Config) (*Report, error) {
	content, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}

	doc := htmldoc.New(path, content)
	return r.Check(ctx, doc, cfg)
}

// Check applies all enabled rules to an already-loaded document.
func (r *Runner) Check(ctx context.Context, doc *htmldoc.Document, cfg *config.Config) (*Report, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}

	rules := r.registry.Rules()
	report := &Report{
		Path:    doc.Path,
		Results: make([]check.Result, 0, len(rules)),
	}

	for _, rule := range rules {
		select {
		case <-ctx.Done():
			return report, fmt.Errorf("check run cancelled: %w", ctx.Err())
		default:
		}

		if !cfg.RuleEnabled(rule.ID(), rule.Name()) {
			continue
		}

		rc := check.NewRuleContext(ctx, doc, cfg, cfg.RuleConfigFor(rule.ID(), rule.Name()))

		result, err := rule.Apply(rc)
		if err != nil {
			return report, fmt.Errorf("rule %s: %w", rule.ID(), err)
		}

		report.Results = append(report.Results, result)
	}

	return report, nil
}
