package rules

import "github.com/yaklabco/htmlvet/pkg/check"

// init registers all built-in rules with the default registry.
func init() {
	RegisterAll(check.DefaultRegistry)
}

// RegisterAll registers the built-in rules with the given registry.
// Exposed so tests and embedders can populate a private registry.
func RegisterAll(registry *check.Registry) {
	registry.Register(NewDoctypeRule())
	registry.Register(NewSingleRootRule())
	registry.Register(NewLangRule())
	registry.Register(NewHeadRule())
	registry.Register(NewBodyRule())
	registry.Register(NewTitleRule())
	registry.Register(NewLinkAttrsRule())
	registry.Register(NewAmpersandRule())
}
