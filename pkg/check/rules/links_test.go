package rules

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/yaklabco/htmlvet/pkg/check"
	"github.com/yaklabco/htmlvet/pkg/config"
	"github.com/yaklabco/htmlvet/pkg/htmldoc"
)

func TestLinkAttrsRule(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantPass     bool
		wantExamples int
	}{
		{
			name:     "no link tags",
			input:    "<html><head></head></html>",
			wantPass: true,
		},
		{
			name:     "complete link",
			input:    `<link href="a.css" rel="stylesheet">`,
			wantPass: true,
		},
		{
			name:     "attribute order does not matter",
			input:    `<link rel="icon" type="image/png" href="i.png">`,
			wantPass: true,
		},
		{
			name:         "missing href",
			input:        `<link rel="stylesheet">`,
			wantPass:     false,
			wantExamples: 1,
		},
		{
			name:         "missing rel",
			input:        `<link href="a.css">`,
			wantPass:     false,
			wantExamples: 1,
		},
		{
			name:         "one good one bad",
			input:        `<link href="a.css" rel="stylesheet"><link href="b.css">`,
			wantPass:     false,
			wantExamples: 1,
		},
		{
			name:     "whitespace around equals",
			input:    `<link href = "a.css" rel = "stylesheet">`,
			wantPass: true,
		},
		{
			name:     "bare link tag without attributes is not scanned",
			input:    `<link>`,
			wantPass: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := applyRule(t, NewLinkAttrsRule(), tt.input)
			if result.Passed != tt.wantPass {
				t.Errorf("Passed = %v, want %v", result.Passed, tt.wantPass)
			}
			if len(result.Examples) != tt.wantExamples {
				t.Errorf("len(Examples) = %d, want %d", len(result.Examples), tt.wantExamples)
			}
		})
	}
}

func TestLinkAttrsRuleExampleCap(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 8; i++ {
		fmt.Fprintf(&sb, "<link rel=\"stylesheet-%d\">\n", i)
	}

	result := applyRule(t, NewLinkAttrsRule(), sb.String())
	if result.Passed {
		t.Fatal("expected failure")
	}
	if len(result.Examples) != config.DefaultMaxExamples {
		t.Errorf("len(Examples) = %d, want %d", len(result.Examples), config.DefaultMaxExamples)
	}
	if !strings.Contains(result.Diagnostic, "8") {
		t.Errorf("Diagnostic = %q, want the full bad count", result.Diagnostic)
	}
}

func TestLinkAttrsRuleMaxExamplesOption(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 4; i++ {
		fmt.Fprintf(&sb, "<link rel=\"r%d\">", i)
	}

	doc := htmldoc.New("test.html", []byte(sb.String()))
	ruleCfg := &config.RuleConfig{Options: map[string]any{"max_examples": 2}}
	ctx := check.NewRuleContext(context.Background(), doc, config.NewConfig(), ruleCfg)

	result, err := NewLinkAttrsRule().Apply(ctx)
	if err != nil {
		t.Fatalf("apply error: %v", err)
	}
	if len(result.Examples) != 2 {
		t.Errorf("len(Examples) = %d, want 2", len(result.Examples))
	}
}
