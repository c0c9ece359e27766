package reporter

import "fmt"

// Format identifies a report output format.
type Format string

const (
	// FormatText is styled terminal output, one line per check.
	FormatText Format = "text"

	// FormatJSON is machine-readable output for CI.
	FormatJSON Format = "json"
)

// IsValid returns true if the format is supported.
func (f Format) IsValid() bool {
	switch f {
	case FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

// ParseFormat converts a string to a Format.
// An empty string defaults to text.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatText, nil
	}
	f := Format(s)
	if !f.IsValid() {
		return "", fmt.Errorf("unknown format %q (want text or json)", s)
	}
	return f, nil
}
