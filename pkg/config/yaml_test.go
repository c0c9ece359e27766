package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromYAML(t *testing.T) {
	t.Parallel()

	yamlData := `
format: json
max_examples: 3
disable:
  - no-bare-ampersands
rules:
  link-attrs:
    options:
      max_examples: 10
`

	cfg, err := FromYAML([]byte(yamlData))
	require.NoError(t, err)

	assert.Equal(t, FormatJSON, cfg.Format)
	assert.Equal(t, 3, cfg.MaxExamples)
	assert.Equal(t, []string{"no-bare-ampersands"}, cfg.DisableRules)

	rc, ok := cfg.Rules["link-attrs"]
	require.True(t, ok)
	assert.Equal(t, 10, rc.Options["max_examples"])
}

func TestFromYAMLEmpty(t *testing.T) {
	t.Parallel()

	cfg, err := FromYAML([]byte(""))
	require.NoError(t, err)
	assert.NotNil(t, cfg.Rules)
	assert.Empty(t, cfg.Format)
}

func TestFromYAMLInvalidFormat(t *testing.T) {
	t.Parallel()

	_, err := FromYAML([]byte("format: xml\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestFromYAMLMalformed(t *testing.T) {
	t.Parallel()

	_, err := FromYAML([]byte("format: [unclosed\n"))
	require.Error(t, err)
}

func TestToYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	cfg.Format = FormatJSON
	cfg.MaxExamples = 2
	cfg.DisableRules = []string{"HV007"}

	data, err := cfg.ToYAML()
	require.NoError(t, err)

	parsed, err := FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, cfg.Format, parsed.Format)
	assert.Equal(t, cfg.MaxExamples, parsed.MaxExamples)
	assert.Equal(t, cfg.DisableRules, parsed.DisableRules)
}

func TestDefaultTemplateParses(t *testing.T) {
	t.Parallel()

	cfg, err := FromYAML([]byte(DefaultTemplate))
	require.NoError(t, err)
	assert.Equal(t, FormatText, cfg.Format)
	assert.Equal(t, DefaultMaxExamples, cfg.MaxExamples)
}
