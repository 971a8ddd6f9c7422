// Package convert maps a raw configuration tree onto the canonical model.
// Conversion is pure: the input is never mutated and equal inputs always
// produce equal models. Tool, announcer and override nodes whose fields are
// all empty are left out of the model entirely.
package convert
