// Package rules implements the built-in htmlvet document checks.
//
// Every check is an independent pattern scan over the raw document text (or
// its line split). None of them parse HTML: the heuristics are the contract,
// including their known blind spots, and a real parser would change behavior
// on malformed input. Rules register themselves in check.DefaultRegistry via
// init() and run in ID order (HV001-HV008).
package rules
