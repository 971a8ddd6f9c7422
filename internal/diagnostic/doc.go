// Package diagnostic renders a redacted, ordered view of a release model
// for logs and reports.
//
// Disabled tools produce an empty Map and are dropped from their parent.
// Credential fields never show their value: a resolvable secret renders as
// Hide and a missing one as Unset.
package diagnostic
