package configloader

import "github.com/yaklabco/htmlvet/pkg/config"

// Merge overlays src onto dst. Only fields set in src (non-zero) are copied;
// rule maps are merged key-by-key with src winning.
func Merge(dst, src *config.Config) {
	if dst == nil || src == nil {
		return
	}

	if src.Format != "" {
		dst.Format = src.Format
	}
	if src.MaxExamples > 0 {
		dst.MaxExamples = src.MaxExamples
	}
	if len(src.EnableRules) > 0 {
		dst.EnableRules = src.EnableRules
	}
	if len(src.DisableRules) > 0 {
		dst.DisableRules = src.DisableRules
	}

	if len(src.Rules) > 0 {
		if dst.Rules == nil {
			dst.Rules = make(map[string]config.RuleConfig, len(src.Rules))
		}
		for key, rc := range src.Rules {
			dst.Rules[key] = rc
		}
	}
}
