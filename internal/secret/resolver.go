package secret

import (
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/eugenenazirov/releasecfg/internal/model"
)

// Precedence decides which source wins when both an environment variable
// and an explicit configuration value are present.
type Precedence int

const (
	// PrecedenceEnvFirst uses a defined, non-empty environment variable
	// over the configured value. This is the default.
	PrecedenceEnvFirst Precedence = iota
	// PrecedenceExplicitFirst only falls back to the environment when the
	// configured value is blank.
	PrecedenceExplicitFirst
)

// LookupFunc reads a single environment variable.
type LookupFunc func(key string) (string, bool)

// Resolver resolves secrets on demand.
type Resolver struct {
	lookup     LookupFunc
	precedence Precedence
	logger     *zap.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLookup replaces os.LookupEnv, mainly for tests and the HTTP service.
func WithLookup(lookup LookupFunc) Option {
	return func(r *Resolver) {
		if lookup != nil {
			r.lookup = lookup
		}
	}
}

// WithPrecedence overrides PrecedenceEnvFirst.
func WithPrecedence(p Precedence) Option {
	return func(r *Resolver) {
		r.precedence = p
	}
}

// WithLogger enables debug logging of which variables were consulted.
// Values are never logged.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New builds a Resolver reading the process environment.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		lookup:     os.LookupEnv,
		precedence: PrecedenceEnvFirst,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Precedence reports the active precedence rule.
func (r *Resolver) Precedence() Precedence {
	return r.precedence
}

// Resolve returns the effective value of a secret. A variable that is
// unset or blank counts as missing, in which case explicit is returned
// unchanged, even when it is itself blank. Callers decide what blank means.
func (r *Resolver) Resolve(kind Kind, service, field, explicit string) string {
	name := VarName(kind, service, field)
	env, ok := r.lookup(name)
	fromEnv := ok && strings.TrimSpace(env) != ""

	if r.precedence == PrecedenceExplicitFirst && strings.TrimSpace(explicit) != "" {
		return explicit
	}
	if fromEnv {
		r.logger.Debug("secret resolved from environment", zap.String("variable", name))
		return env
	}
	return explicit
}

// GitServicePassword resolves RELEASE_<SERVICE>_PASSWORD.
func (r *Resolver) GitServicePassword(svc model.HostingService) string {
	if svc == nil {
		return ""
	}
	return r.Resolve(KindRelease, svc.ServiceName(), "password", svc.Base().Password)
}

// HTTPUsername resolves HTTP_<NAME>_USERNAME.
func (r *Resolver) HTTPUsername(d *model.HTTPDownloader) string {
	return r.Resolve(KindHTTP, d.Name(), "username", d.Username)
}

// HTTPPassword resolves HTTP_<NAME>_PASSWORD.
func (r *Resolver) HTTPPassword(d *model.HTTPDownloader) string {
	return r.Resolve(KindHTTP, d.Name(), "password", d.Password)
}

// Packager resolves PACKAGER_<TOOL>_<FIELD>.
func (r *Resolver) Packager(tool, field, explicit string) string {
	return r.Resolve(KindPackager, tool, field, explicit)
}

// Announcer resolves ANNOUNCE_<TOOL>_<FIELD>.
func (r *Resolver) Announcer(tool, field, explicit string) string {
	return r.Resolve(KindAnnounce, tool, field, explicit)
}

// SigningPassphrase resolves SIGNING_PASSPHRASE.
func (r *Resolver) SigningPassphrase(s *model.Signing) string {
	return r.Resolve(KindSigning, "", "passphrase", s.Passphrase)
}
