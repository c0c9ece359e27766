package config

// DefaultTemplate is the starter configuration written by `htmlvet init`.
const DefaultTemplate = `# htmlvet configuration
# See 'htmlvet rules' for the full list of checks.

# Report format: text or json.
format: text

# Maximum failure examples shown per check.
max_examples: 5

# Rule IDs or names to skip, e.g.:
# disable:
#   - no-bare-ampersands

# Per-rule configuration:
# rules:
#   link-attrs:
#     options:
#       max_examples: 10
`
