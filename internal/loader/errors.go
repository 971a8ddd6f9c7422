package loader

import "errors"

var (
	// ErrMalformed marks documents that cannot be mapped onto the raw tree.
	ErrMalformed = errors.New("malformed release configuration")
	// ErrUnsupportedFormat is returned for unknown extensions or media types.
	ErrUnsupportedFormat = errors.New("unsupported configuration format")
)
