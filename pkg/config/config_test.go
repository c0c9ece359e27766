package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool { return &b }

func TestRuleEnabled(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  *Config
		id   string
		want bool
	}{
		{
			name: "nil config enables everything",
			cfg:  nil,
			id:   "HV001",
			want: true,
		},
		{
			name: "default config enables everything",
			cfg:  NewConfig(),
			id:   "HV001",
			want: true,
		},
		{
			name: "disable list",
			cfg:  &Config{DisableRules: []string{"HV001"}},
			id:   "HV001",
			want: false,
		},
		{
			name: "disable list by name",
			cfg:  &Config{DisableRules: []string{"doctype-present"}},
			id:   "HV001",
			want: false,
		},
		{
			name: "enable list acts as allow list",
			cfg:  &Config{EnableRules: []string{"HV002"}},
			id:   "HV001",
			want: false,
		},
		{
			name: "enable list includes rule",
			cfg:  &Config{EnableRules: []string{"HV001"}},
			id:   "HV001",
			want: true,
		},
		{
			name: "per-rule enabled flag wins over disable list",
			cfg: &Config{
				DisableRules: []string{"HV001"},
				Rules: map[string]RuleConfig{
					"HV001": {Enabled: boolPtr(true)},
				},
			},
			id:   "HV001",
			want: true,
		},
		{
			name: "per-rule disabled flag",
			cfg: &Config{
				Rules: map[string]RuleConfig{
					"HV001": {Enabled: boolPtr(false)},
				},
			},
			id:   "HV001",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.cfg.RuleEnabled(tt.id, "doctype-present"))
		})
	}
}

func TestRuleConfigFor(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		Rules: map[string]RuleConfig{
			"HV007":              {Options: map[string]any{"max_examples": 1}},
			"no-bare-ampersands": {Options: map[string]any{"max_examples": 2}},
		},
	}

	byID := cfg.RuleConfigFor("HV007", "link-attrs")
	assert.NotNil(t, byID)
	assert.Equal(t, 1, byID.Options["max_examples"])

	byName := cfg.RuleConfigFor("HV008", "no-bare-ampersands")
	assert.NotNil(t, byName)
	assert.Equal(t, 2, byName.Options["max_examples"])

	assert.Nil(t, cfg.RuleConfigFor("HV001", "doctype-present"))
}

func TestOutputFormatIsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, FormatText.IsValid())
	assert.True(t, FormatJSON.IsValid())
	assert.False(t, OutputFormat("xml").IsValid())
	assert.False(t, OutputFormat("").IsValid())
}
