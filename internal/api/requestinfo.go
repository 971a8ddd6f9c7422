package api

import (
	"context"

	"go.uber.org/zap"

	"github.com/eugenenazirov/releasecfg/internal/loader"
)

// Outcomes recorded by handleValidate.
const (
	outcomeValid     = "valid"
	outcomeInvalid   = "invalid"
	outcomeMalformed = "malformed"
	outcomeRejected  = "rejected"
)

type requestInfoKey struct{}

// requestInfo is created per request by the router. Handlers fill in what
// they learned so the access log can report it.
type requestInfo struct {
	id      string
	format  loader.Format
	outcome string
	errors  int
}

func withRequestInfo(ctx context.Context, info *requestInfo) context.Context {
	return context.WithValue(ctx, requestInfoKey{}, info)
}

// requestInfoFrom never returns nil, so handlers work without the router.
func requestInfoFrom(ctx context.Context) *requestInfo {
	if info, ok := ctx.Value(requestInfoKey{}).(*requestInfo); ok && info != nil {
		return info
	}
	return &requestInfo{}
}

func requestIDFromContext(ctx context.Context) string {
	return requestInfoFrom(ctx).id
}

// fields lists the validation details worth logging; empty for other routes.
func (i *requestInfo) fields() []zap.Field {
	if i.outcome == "" {
		return nil
	}
	fields := []zap.Field{zap.String("outcome", i.outcome)}
	if i.format != "" {
		fields = append(fields, zap.String("format", string(i.format)))
	}
	if i.outcome == outcomeInvalid {
		fields = append(fields, zap.Int("config_errors", i.errors))
	}
	return fields
}
