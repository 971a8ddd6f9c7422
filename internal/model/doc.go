// Package model holds the canonical release configuration graph: project
// metadata, the release hosting service, packagers, announcers, signing,
// distributions and their artifacts. It is built once per run by the
// converter and treated as read-only once validated.
package model
