package check

import (
	"context"

	"github.com/yaklabco/htmlvet/pkg/config"
	"github.com/yaklabco/htmlvet/pkg/htmldoc"
)

// RuleContext provides all context needed by a rule to perform a check.
//
// Design note: RuleContext stores context.Context as a field (Ctx) rather than
// passing it as a method parameter. RuleContext is a short-lived parameter
// object created per-rule-invocation, which keeps the Rule interface to a
// single Apply method while still supporting cancellation.
type RuleContext struct {
	// Ctx is the context for cancellation and timeouts.
	Ctx context.Context

	// Doc is the loaded document snapshot.
	Doc *htmldoc.Document

	// Config is the resolved configuration.
	Config *config.Config

	// RuleConfig is the rule-specific configuration (may be nil).
	RuleConfig *config.RuleConfig
}

// NewRuleContext creates a RuleContext for the given document and configuration.
func NewRuleContext(
	ctx context.Context,
	doc *htmldoc.Document,
	cfg *config.Config,
	ruleCfg *config.RuleConfig,
) *RuleContext {
	return &RuleContext{
		Ctx:        ctx,
		Doc:        doc,
		Config:     cfg,
		RuleConfig: ruleCfg,
	}
}

// Cancelled returns true if the context has been cancelled.
func (rc *RuleContext) Cancelled() bool {
	select {
	case <-rc.Ctx.Done():
		return true
	default:
		return false
	}
}

// Option returns a rule-specific option value, or the default if not set.
func (rc *RuleContext) Option(key string, defaultValue any) any {
	if rc.RuleConfig == nil || rc.RuleConfig.Options == nil {
		return defaultValue
	}
	if v, ok := rc.RuleConfig.Options[key]; ok {
		return v
	}
	return defaultValue
}

// OptionInt returns a rule-specific integer option, or the default.
func (rc *RuleContext) OptionInt(key string, defaultValue int) int {
	v := rc.Option(key, defaultValue)
	switch val := v.(type) {
	case int:
		return val
	case float64:
		return int(val)
	default:
		return defaultValue
	}
}

// MaxExamples returns the example cap for this rule: the per-rule
// "max_examples" option when set, otherwise the global configuration value,
// otherwise the package default.
func (rc *RuleContext) MaxExamples() int {
	fallback := config.DefaultMaxExamples
	if rc.Config != nil && rc.Config.MaxExamples > 0 {
		fallback = rc.Config.MaxExamples
	}
	return rc.OptionInt("max_examples", fallback)
}
