package rules

import (
	"strings"
	"testing"
)

func TestHeadRule(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantPass bool
	}{
		{
			name:     "empty head block",
			input:    "<head></head>",
			wantPass: true,
		},
		{
			name:     "head with attributes and content",
			input:    `<head profile="x"><title>T</title></head>`,
			wantPass: true,
		},
		{
			name:     "case insensitive",
			input:    "<HEAD></HEAD>",
			wantPass: true,
		},
		{
			name:     "open without close",
			input:    "<head><title>T</title>",
			wantPass: false,
		},
		{
			name:     "close without open",
			input:    "</head>",
			wantPass: false,
		},
		{
			name:     "header element does not count as head",
			input:    "<header></header>",
			wantPass: false,
		},
		{
			name:     "duplicate heads still pass presence check",
			input:    "<head></head><head></head>",
			wantPass: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := applyRule(t, NewHeadRule(), tt.input)
			if result.Passed != tt.wantPass {
				t.Errorf("Passed = %v, want %v", result.Passed, tt.wantPass)
			}
		})
	}
}

func TestBodyRule(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantPass bool
		wantDiag string
	}{
		{
			name:     "single body pair",
			input:    "<body>hi</body>",
			wantPass: true,
		},
		{
			name:     "body with attributes",
			input:    `<body class="page">hi</body>`,
			wantPass: true,
		},
		{
			name:     "duplicate body tags",
			input:    "<body><body>hi</body>",
			wantPass: false,
			wantDiag: "opens: 2",
		},
		{
			name:     "missing close",
			input:    "<body>hi",
			wantPass: false,
			wantDiag: "opens: 1, closes: 0",
		},
		{
			name:     "missing entirely",
			input:    "<html></html>",
			wantPass: false,
			wantDiag: "opens: 0, closes: 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := applyRule(t, NewBodyRule(), tt.input)
			if result.Passed != tt.wantPass {
				t.Errorf("Passed = %v, want %v", result.Passed, tt.wantPass)
			}
			if tt.wantDiag != "" && !strings.Contains(result.Diagnostic, tt.wantDiag) {
				t.Errorf("Diagnostic = %q, want it to contain %q", result.Diagnostic, tt.wantDiag)
			}
		})
	}
}

func TestTitleRule(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantPass bool
	}{
		{
			name:     "title inside head",
			input:    "<head><title>Hi</title></head>",
			wantPass: true,
		},
		{
			name:     "title after head across lines",
			input:    "<head>\n  <meta charset=\"utf-8\">\n  <title>Hi</title>\n</head>",
			wantPass: true,
		},
		{
			name:     "title before any head fails",
			input:    "<title>Hi</title><head></head>",
			wantPass: false,
		},
		{
			name:     "no title",
			input:    "<head></head>",
			wantPass: false,
		},
		{
			// Proximity heuristic, not nesting: a title after an unclosed
			// head-opening substring still passes.
			name:     "title outside a closed head still passes",
			input:    "<head></head><title>Hi</title>",
			wantPass: true,
		},
		{
			name:     "title split across lines fails",
			input:    "<head><title>Hi\n</title></head>",
			wantPass: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := applyRule(t, NewTitleRule(), tt.input)
			if result.Passed != tt.wantPass {
				t.Errorf("Passed = %v, want %v", result.Passed, tt.wantPass)
			}
		})
	}
}
