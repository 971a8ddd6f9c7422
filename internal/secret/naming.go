package secret

import (
	"strings"
	"unicode"
)

// Kind is the fixed prefix of a secret variable.
type Kind string

const (
	KindHTTP     Kind = "HTTP"
	KindRelease  Kind = "RELEASE"
	KindAnnounce Kind = "ANNOUNCE"
	KindPackager Kind = "PACKAGER"
	KindSigning  Kind = "SIGNING"
)

// VarName derives the environment variable consulted for a secret. A blank
// service is left out entirely.
func VarName(kind Kind, service, field string) string {
	segments := make([]string, 0, 3)
	for _, s := range []string{string(kind), normalize(service), normalize(splitCamel(field))} {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return strings.Join(segments, "_")
}

func normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToUpper(s) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// splitCamel inserts '_' at lower-to-upper boundaries: apiKey -> api_Key.
func splitCamel(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	var prev rune
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)) {
			b.WriteByte('_')
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}
