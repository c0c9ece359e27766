package check

import "testing"

// stubRule is a minimal rule for registry tests.
type stubRule struct {
	BaseRule
}

func newStubRule(id, name string) *stubRule {
	return &stubRule{BaseRule: NewBaseRule(id, name, "stub "+name, nil)}
}

func (r *stubRule) Apply(_ *RuleContext) (Result, error) {
	return r.Pass(), nil
}

func TestRegistryGet(t *testing.T) {
	registry := NewRegistry()
	registry.Register(newStubRule("T001", "first"))
	registry.Register(newStubRule("T002", "second"))

	tests := []struct {
		name   string
		key    string
		wantID string
		wantOK bool
	}{
		{"lookup by ID", "T001", "T001", true},
		{"lookup by name", "second", "T002", true},
		{"unknown key", "T999", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, ok := registry.Get(tt.key)
			if ok != tt.wantOK {
				t.Fatalf("Get(%q) ok = %v, want %v", tt.key, ok, tt.wantOK)
			}
			if ok && rule.ID() != tt.wantID {
				t.Errorf("Get(%q).ID() = %s, want %s", tt.key, rule.ID(), tt.wantID)
			}
		})
	}
}

func TestRegistryRulesSorted(t *testing.T) {
	registry := NewRegistry()
	registry.Register(newStubRule("T003", "c"))
	registry.Register(newStubRule("T001", "a"))
	registry.Register(newStubRule("T002", "b"))

	rules := registry.Rules()
	want := []string{"T001", "T002", "T003"}
	if len(rules) != len(want) {
		t.Fatalf("len(Rules()) = %d, want %d", len(rules), len(want))
	}
	for i, id := range want {
		if rules[i].ID() != id {
			t.Errorf("Rules()[%d].ID() = %s, want %s", i, rules[i].ID(), id)
		}
	}
}

func TestRegistryReplace(t *testing.T) {
	registry := NewRegistry()
	registry.Register(newStubRule("T001", "old"))
	registry.Register(newStubRule("T001", "new"))

	rule, ok := registry.Get("T001")
	if !ok {
		t.Fatal("rule not found after replacement")
	}
	if rule.Name() != "new" {
		t.Errorf("Name() = %s, want new", rule.Name())
	}
}

func TestBaseRuleResults(t *testing.T) {
	base := NewBaseRule("T001", "stub", "Stub description", []string{"test"})

	pass := base.Pass()
	if !pass.Passed || pass.RuleID != "T001" || pass.Description != "Stub description" {
		t.Errorf("Pass() = %+v", pass)
	}

	fail := base.Fail("broken", Example{Line: 3, Text: "x"})
	if fail.Passed {
		t.Error("Fail() produced a passing result")
	}
	if fail.Diagnostic != "broken" || len(fail.Examples) != 1 {
		t.Errorf("Fail() = %+v", fail)
	}
}
