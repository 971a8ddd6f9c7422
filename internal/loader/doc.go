// Package loader reads release configuration documents in YAML, JSON or
// TOML, checks their structure against an embedded JSON Schema and decodes
// them into a raw.Tree.
package loader
