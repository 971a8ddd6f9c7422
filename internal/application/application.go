package application

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/releasecfg/internal/api"
	"github.com/eugenenazirov/releasecfg/internal/config"
	"github.com/eugenenazirov/releasecfg/internal/engine"
	"github.com/eugenenazirov/releasecfg/internal/loader"
	"github.com/eugenenazirov/releasecfg/internal/secret"
)

// configBaseName is the file name probed with every supported extension
// when the configured release file does not exist.
const configBaseName = "releasecfg"

var configExtensions = []string{".yml", ".yaml", ".toml", ".json"}

// App encapsulates the application dependencies and HTTP server.
type App struct {
	cfg     config.Config
	handler *api.Handler
	router  http.Handler
	logger  *zap.Logger
	server  *http.Server
}

// New initializes the application with all dependencies from the provided configuration.
func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	handler := api.NewHandler(logger, api.WithMaxBodyBytes(cfg.MaxBodyBytes))
	apiRouter := api.NewRouter(handler, logger,
		api.WithLogging(cfg.EnableRequestLogging),
		api.WithRateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)

	return &App{
		cfg:     cfg,
		handler: handler,
		router:  apiRouter,
		logger:  logger,
		server:  NewServer(cfg, BuildRootHandler(apiRouter)),
	}, nil
}

// BuildRootHandler mounts the API under /api/ and answers everything else
// with 404.
func BuildRootHandler(apiHandler http.Handler) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/api/", apiHandler)
	mux.Handle("/", http.NotFoundHandler())
	return mux
}

// NewServer creates and configures an HTTP server from the provided configuration.
func NewServer(cfg config.Config, handler http.Handler) *http.Server {
	addr := cfg.Port
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

// Start starts the HTTP server in a goroutine and logs the listening address.
func (a *App) Start() error {
	go func() {
		a.logger.Info("server listening", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Fatal("server error", zap.Error(err))
		}
	}()
	return nil
}

// Server returns the HTTP server instance for shutdown handling.
func (a *App) Server() *http.Server {
	return a.server
}

// Check loads the configured release file, builds the execution context and
// writes the redacted projection to out as YAML. The returned context is
// nil when the file could not be loaded or converted.
func (a *App) Check(out io.Writer) (*engine.Context, error) {
	path, err := resolveReleaseConfig(a.cfg.BaseDir, a.cfg.ReleaseConfig)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("loading release configuration", zap.String("path", path))

	tree, err := loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load release configuration: %w", err)
	}

	ctx, err := engine.Build(tree,
		engine.WithLogger(a.logger),
		engine.WithSecrets(secret.New(secret.WithLogger(a.logger))),
		engine.WithBaseDir(a.cfg.BaseDir),
		engine.WithOutputDir(a.cfg.OutputDir),
		engine.WithDryRun(a.cfg.DryRun),
	)
	if err != nil {
		return nil, err
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(ctx.Diagnostics()); err != nil {
		return ctx, fmt.Errorf("write diagnostics: %w", err)
	}
	if err := enc.Close(); err != nil {
		return ctx, fmt.Errorf("write diagnostics: %w", err)
	}
	return ctx, ctx.Err()
}

// resolveReleaseConfig returns the release file to load. When the
// configured file is missing, releasecfg.{yml,yaml,toml,json} are probed in
// baseDir in that order.
func resolveReleaseConfig(baseDir, configured string) (string, error) {
	if baseDir == "" {
		baseDir = "."
	}
	path := configured
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	for _, ext := range configExtensions {
		candidate := filepath.Join(baseDir, configBaseName+ext)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("unable to locate release configuration %s: %w", path, os.ErrNotExist)
}
