// Package config defines core configuration types for htmlvet.
// These types are pure data structures with no dependency on how they are
// discovered or loaded.
package config

// DefaultMaxExamples is the number of failure examples retained per check
// when no override is configured.
const DefaultMaxExamples = 5

// OutputFormat specifies the output format for reports.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// IsValid returns true if the output format is supported.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

// RuleConfig holds per-rule configuration options.
type RuleConfig struct {
	Enabled *bool          `yaml:"enabled"`
	Options map[string]any `yaml:"options"`
}

// Config is the root configuration structure for htmlvet.
type Config struct {
	// Format selects the report format ("text" or "json").
	Format OutputFormat `yaml:"format"`

	// MaxExamples caps the failure examples retained per check.
	MaxExamples int `yaml:"max_examples"`

	// EnableRules limits the run to the listed rule IDs or names.
	EnableRules []string `yaml:"enable"`

	// DisableRules excludes the listed rule IDs or names from the run.
	DisableRules []string `yaml:"disable"`

	// Rules contains per-rule configuration keyed by rule ID or name.
	Rules map[string]RuleConfig `yaml:"rules"`
}

// NewConfig returns a Config with defaults applied.
func NewConfig() *Config {
	return &Config{
		Format:      FormatText,
		MaxExamples: DefaultMaxExamples,
		Rules:       make(map[string]RuleConfig),
	}
}

// RuleConfigFor returns the configuration for a rule, looked up by ID first
// and then by name. Returns nil when the rule has no configuration.
func (c *Config) RuleConfigFor(id, name string) *RuleConfig {
	if c == nil || c.Rules == nil {
		return nil
	}
	if rc, ok := c.Rules[id]; ok {
		return &rc
	}
	if rc, ok := c.Rules[name]; ok {
		return &rc
	}
	return nil
}

// RuleEnabled reports whether a rule should run under this configuration.
// Precedence: explicit per-rule enabled flag, then disable list, then enable
// list (which, when non-empty, acts as an allow list).
func (c *Config) RuleEnabled(id, name string) bool {
	if c == nil {
		return true
	}

	if rc := c.RuleConfigFor(id, name); rc != nil && rc.Enabled != nil {
		return *rc.Enabled
	}

	for _, key := range c.DisableRules {
		if key == id || key == name {
			return false
		}
	}

	if len(c.EnableRules) > 0 {
		for _, key := range c.EnableRules {
			if key == id || key == name {
				return true
			}
		}
		return false
	}

	return true
}
