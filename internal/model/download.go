package model

import (
	"fmt"
	"strings"
)

// HTTPType identifies HTTP downloaders.
const HTTPType = "http"

// Authorization is the scheme an HTTP downloader authenticates with.
type Authorization string

const (
	AuthNone   Authorization = "NONE"
	AuthBasic  Authorization = "BASIC"
	AuthBearer Authorization = "BEARER"
)

// ParseAuthorization accepts NONE, BASIC or BEARER in any case; blank means NONE.
func ParseAuthorization(s string) (Authorization, error) {
	switch a := Authorization(strings.ToUpper(strings.TrimSpace(s))); a {
	case "":
		return AuthNone, nil
	case AuthNone, AuthBasic, AuthBearer:
		return a, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAuthorization, s)
	}
}

// HTTPDownloader fetches remote assets over HTTP. Its Name is the
// user-chosen identifier that secrets are looked up by.
type HTTPDownloader struct {
	ToolBase
	Username       string
	Password       string
	Authorization  Authorization
	Headers        Properties
	ConnectTimeout int
	ReadTimeout    int
}

func NewHTTPDownloader(name string) *HTTPDownloader {
	return &HTTPDownloader{ToolBase: newToolBase(name), Authorization: AuthNone}
}

// Type returns the downloader kind.
func (h *HTTPDownloader) Type() string { return HTTPType }

// Download groups the configured downloaders.
type Download struct {
	HTTP []*HTTPDownloader
}
