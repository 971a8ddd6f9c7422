package validate

import (
	"fmt"
	"strings"
)

type report struct {
	errs []string
}

func (r *report) addf(format string, args ...any) {
	r.errs = append(r.errs, fmt.Sprintf(format, args...))
}

func (r *report) required(path, value string) {
	if isBlank(value) {
		r.addf("%s must not be blank", path)
	}
}

func (r *report) oneOf(path, value string, allowed ...string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	r.addf("%s must be one of %s, got %q", path, strings.Join(allowed, ", "), value)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
