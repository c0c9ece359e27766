package check

// BaseRule provides the descriptive half of the Rule interface.
// Embed this in rule implementations; only Apply remains to be written.
type BaseRule struct {
	id          string
	name        string
	description string
	tags        []string
}

// NewBaseRule creates a BaseRule with the given metadata.
func NewBaseRule(id, name, description string, tags []string) BaseRule {
	return BaseRule{
		id:          id,
		name:        name,
		description: description,
		tags:        tags,
	}
}

// ID returns the rule identifier.
func (b BaseRule) ID() string { return b.id }

// Name returns the rule name.
func (b BaseRule) Name() string { return b.name }

// Description returns the rule description.
func (b BaseRule) Description() string { return b.description }

// Tags returns the rule tags.
func (b BaseRule) Tags() []string { return b.tags }

// Pass builds a passing Result for this rule.
func (b BaseRule) Pass() Result {
	return Result{
		RuleID:      b.id,
		RuleName:    b.name,
		Description: b.description,
		Passed:      true,
	}
}

// Fail builds a failing Result with the given diagnostic and examples.
func (b BaseRule) Fail(diagnostic string, examples ...Example) Result {
	return Result{
		RuleID:      b.id,
		RuleName:    b.name,
		Description: b.description,
		Diagnostic:  diagnostic,
		Examples:    examples,
	}
}
