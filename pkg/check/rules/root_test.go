package rules

import (
	"strings"
	"testing"
)

func TestSingleRootRule(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantPass bool
		wantDiag string
	}{
		{
			name:     "single pair",
			input:    "<html><body>hi</body></html>",
			wantPass: true,
		},
		{
			name:     "single pair with attributes",
			input:    `<html lang="en"></html>`,
			wantPass: true,
		},
		{
			name:     "case insensitive pair",
			input:    "<HTML></HTML>",
			wantPass: true,
		},
		{
			name:     "missing both",
			input:    "<body>hi</body>",
			wantPass: false,
			wantDiag: "opens: 0, closes: 0",
		},
		{
			name:     "duplicate opening tag",
			input:    "<html><html></html>",
			wantPass: false,
			wantDiag: "opens: 2, closes: 1",
		},
		{
			name:     "missing closing tag",
			input:    "<html>",
			wantPass: false,
			wantDiag: "opens: 1, closes: 0",
		},
		{
			name:     "htmlx tag does not count as open",
			input:    "<htmlx></html>",
			wantPass: false,
			wantDiag: "opens: 0, closes: 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := applyRule(t, NewSingleRootRule(), tt.input)
			if result.Passed != tt.wantPass {
				t.Errorf("Passed = %v, want %v", result.Passed, tt.wantPass)
			}
			if tt.wantDiag != "" && !strings.Contains(result.Diagnostic, tt.wantDiag) {
				t.Errorf("Diagnostic = %q, want it to contain %q", result.Diagnostic, tt.wantDiag)
			}
		})
	}
}

func TestLangRule(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantPass bool
	}{
		{
			name:     "lang attribute present",
			input:    `<html lang="en">`,
			wantPass: true,
		},
		{
			name:     "lang after other attributes",
			input:    `<html class="no-js" lang="de">`,
			wantPass: true,
		},
		{
			name:     "uppercase LANG",
			input:    `<HTML LANG="fr">`,
			wantPass: true,
		},
		{
			name:     "no lang token",
			input:    `<html class="no-js">`,
			wantPass: false,
		},
		{
			// ASCII word boundaries treat '-' as a non-word character, so
			// a hyphenated prefix still satisfies the token match. This
			// mirrors the original heuristic and is pinned deliberately.
			name:     "data-lang attribute satisfies the token match",
			input:    `<html data-lang="x">`,
			wantPass: true,
		},
		{
			name:     "language as longer token does not match",
			input:    `<html language="en">`,
			wantPass: false,
		},
		{
			name:     "lang outside the html tag region",
			input:    `<html><p lang="en"></p>`,
			wantPass: false,
		},
		{
			name:     "no html tag at all",
			input:    `lang="en"`,
			wantPass: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := applyRule(t, NewLangRule(), tt.input)
			if result.Passed != tt.wantPass {
				t.Errorf("Passed = %v, want %v", result.Passed, tt.wantPass)
			}
		})
	}
}
