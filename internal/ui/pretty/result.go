package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/htmlvet/pkg/check"
)

// FormatHeader formats the report header line for a document path.
func (s *Styles) FormatHeader(path string) string {
	return fmt.Sprintf("Checking: %s\n", s.FilePath.Render(path))
}

// FormatResult formats one check result as report lines.
// Failures get an indented diagnostic plus any retained examples; the
// maxWidth clamp (0 = unlimited) keeps long example lines on one row.
func (s *Styles) FormatResult(res *check.Result, maxWidth int) string {
	var builder strings.Builder

	if res.Passed {
		builder.WriteString(fmt.Sprintf("%s: %s\n", s.Pass.Render(), res.Description))
		return builder.String()
	}

	builder.WriteString(fmt.Sprintf("%s: %s\n", s.Fail.Render(), res.Description))
	if res.Diagnostic != "" {
		builder.WriteString(fmt.Sprintf("  -> %s\n", s.Diagnostic.Render(res.Diagnostic)))
	}

	for _, example := range res.Examples {
		text := clamp(example.Text, maxWidth)
		if example.Line > 0 {
			builder.WriteString(fmt.Sprintf("  %s %s\n",
				s.Location.Render(fmt.Sprintf("Line %d:", example.Line)),
				s.Example.Render(text),
			))
		} else {
			builder.WriteString(fmt.Sprintf("  %s\n", s.Example.Render(text)))
		}
	}

	return builder.String()
}

// FormatOverall formats the final verdict line.
func (s *Styles) FormatOverall(passed bool, failed int) string {
	if passed {
		return fmt.Sprintf("Overall: %s\n", s.Success.Render("PASS"))
	}

	suffix := ""
	if failed > 0 {
		word := "checks"
		if failed == 1 {
			word = "check"
		}
		suffix = s.Dim.Render(fmt.Sprintf(" (%d %s failed)", failed, word))
	}
	return fmt.Sprintf("Overall: %s%s\n", s.Failure.Render("FAIL"), suffix)
}

// clamp truncates text to max runes, appending an ellipsis.
// max <= 0 disables clamping.
func clamp(text string, max int) string {
	if max <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
