// Package cascade merges global packager settings into per-distribution
// overrides at field granularity.
//
// Merge functions are pure: their results never share mutable state with
// their inputs, so resolving the same model twice yields equal output.
package cascade
