package engine

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/eugenenazirov/releasecfg/internal/cascade"
	"github.com/eugenenazirov/releasecfg/internal/convert"
	"github.com/eugenenazirov/releasecfg/internal/diagnostic"
	"github.com/eugenenazirov/releasecfg/internal/model"
	"github.com/eugenenazirov/releasecfg/internal/raw"
	"github.com/eugenenazirov/releasecfg/internal/secret"
	"github.com/eugenenazirov/releasecfg/internal/validate"
)

// Context is what downstream publishers receive. It is built once and must
// be treated as read-only afterwards.
type Context struct {
	Logger    *zap.Logger
	Model     *model.Model
	Secrets   *secret.Resolver
	Errors    []string
	BaseDir   string
	OutputDir string
	DryRun    bool
}

// Option configures Build.
type Option func(*options)

type options struct {
	logger    *zap.Logger
	secrets   *secret.Resolver
	baseDir   string
	outputDir string
	dryRun    bool
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithSecrets sets the secret resolver; the default reads the process
// environment.
func WithSecrets(r *secret.Resolver) Option {
	return func(o *options) {
		if r != nil {
			o.secrets = r
		}
	}
}

// WithBaseDir sets the directory relative paths are resolved against.
func WithBaseDir(dir string) Option {
	return func(o *options) { o.baseDir = dir }
}

// WithOutputDir sets the directory publishers write to.
func WithOutputDir(dir string) Option {
	return func(o *options) { o.outputDir = dir }
}

// WithDryRun marks the context as a dry run.
func WithDryRun(dryRun bool) Option {
	return func(o *options) { o.dryRun = dryRun }
}

// Build converts, resolves and validates tree. A conversion failure is
// returned as an error with no context; validation problems are collected
// in Context.Errors.
func Build(tree *raw.Tree, opts ...Option) (*Context, error) {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.secrets == nil {
		o.secrets = secret.New(secret.WithLogger(o.logger))
	}

	m, err := convert.Convert(tree)
	if err != nil {
		o.logger.Error("release configuration could not be converted", zap.Error(err))
		return nil, fmt.Errorf("convert release configuration: %w", err)
	}

	cascade.Resolve(m)
	errs := validate.New(o.secrets, o.logger).Validate(m)

	ctx := &Context{
		Logger:    o.logger,
		Model:     m,
		Secrets:   o.secrets,
		Errors:    errs,
		BaseDir:   o.baseDir,
		OutputDir: o.outputDir,
		DryRun:    o.dryRun,
	}

	if len(errs) > 0 {
		for _, e := range errs {
			o.logger.Error(e)
		}
	} else {
		o.logger.Info("release configuration is valid",
			zap.String("project", m.Project.Name),
			zap.Strings("distributions", m.DistributionNames()),
			zap.Bool("dryRun", o.dryRun),
		)
	}
	if ce := o.logger.Check(zap.DebugLevel, "resolved release configuration"); ce != nil {
		ce.Write(zap.Object("config", ctx.Diagnostics()))
	}

	return ctx, nil
}

// Err returns nil when the model is valid.
func (c *Context) Err() error {
	if len(c.Errors) == 0 {
		return nil
	}
	return fmt.Errorf("%w:\n%s", ErrNotConfigured, strings.Join(c.Errors, "\n"))
}

// Diagnostics returns the redacted projection of the model.
func (c *Context) Diagnostics() diagnostic.Map {
	return diagnostic.NewProjector(c.Secrets).Model(c.Model)
}
