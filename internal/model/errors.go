package model

import "errors"

var (
	// ErrUnknownDistributionType is returned when a distribution type does not match a known kind.
	ErrUnknownDistributionType = errors.New("unknown distribution type")
	// ErrUnknownChangelogSort is returned when a changelog sort order is neither ASC nor DESC.
	ErrUnknownChangelogSort = errors.New("unknown changelog sort")
	// ErrUnknownAuthorization is returned when an HTTP authorization scheme is not supported.
	ErrUnknownAuthorization = errors.New("unknown authorization")
)
