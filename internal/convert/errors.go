package convert

import "errors"

// ErrMalformed wraps every structural problem that stops conversion.
var ErrMalformed = errors.New("malformed release configuration")
