// Package chain parses rule-chain specifications and runs the resulting
// chains.
//
// The grammar is
//
//	chain   := segment ('|' segment)*
//	segment := name (':' parameter)?
//
// Build resolves every name through a rules.Resolver and records, for each
// rule, the kinds attached before it (rules.Seen). Unknown names and bad
// parameters are reported as *ConfigError at build time, never while a value
// is checked.
//
// Run executes all steps of a chain in order and collects every failure; a
// failing rule does not stop the rules after it.
package chain
