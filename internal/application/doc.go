// Package application wires configuration, logging, the resolution engine
// and the HTTP lint service together so the main package only deals with
// CLI parsing and orchestration.
package application
