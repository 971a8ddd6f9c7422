package engine

import "errors"

// ErrNotConfigured is returned by Context.Err when validation reported
// configuration errors.
var ErrNotConfigured = errors.New("release configuration is not valid")
