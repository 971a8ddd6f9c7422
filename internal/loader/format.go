package loader

import (
	"fmt"
	"mime"
	"path/filepath"
	"strings"
)

// Format names a document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// ParseFormat accepts a format name, a file extension or a media type.
func ParseFormat(s string) (Format, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if mediaType, _, err := mime.ParseMediaType(v); err == nil {
		v = mediaType
	}
	v = strings.TrimPrefix(v, ".")
	v = strings.TrimPrefix(v, "application/")
	v = strings.TrimPrefix(v, "text/")
	v = strings.TrimPrefix(v, "x-")

	switch v {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnsupportedFormat, path)
	}
	return ParseFormat(ext)
}
