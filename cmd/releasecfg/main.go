package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/releasecfg/internal/application"
	"github.com/eugenenazirov/releasecfg/internal/config"
	"github.com/eugenenazirov/releasecfg/internal/logging"
)

var signalNotify = signal.Notify

type cli struct {
	app       *kingpin.Application
	check     *kingpin.CmdClause
	serve     *kingpin.CmdClause
	overrides *config.CLIOverrides

	releaseConfig  *string
	baseDir        *string
	outputDir      *string
	logLevel       *string
	dryRun         *bool
	port           *string
	rateLimitRPS   *float64
	rateLimitBurst *int
}

func newCLI() *cli {
	c := &cli{
		app:       kingpin.New("releasecfg", "Resolves, validates and inspects release configurations"),
		overrides: &config.CLIOverrides{},
	}
	c.app.Flag("config", "Path to YAML runtime configuration file").StringVar(&c.overrides.ConfigFile)
	c.releaseConfig = c.app.Flag("file", "Release configuration to load (yml, yaml, toml or json)").Short('f').String()
	c.baseDir = c.app.Flag("basedir", "Directory relative paths are resolved against").String()
	c.outputDir = c.app.Flag("output-directory", "Directory publishers write to").String()
	c.logLevel = c.app.Flag("log-level", "Log level (debug, info, warn, error)").String()
	c.dryRun = c.app.Flag("dry-run", "Skip remote operations").Bool()

	c.check = c.app.Command("check", "Validate the release configuration and print its redacted projection").Default()
	c.serve = c.app.Command("serve", "Expose the validation API over HTTP")
	c.port = c.serve.Flag("port", "HTTP port exposed by the service").String()
	c.rateLimitRPS = c.serve.Flag("rate-limit-rps", "Requests per second allowed per client (set 0 to disable)").Default("-1").Float64()
	c.rateLimitBurst = c.serve.Flag("rate-limit-burst", "Burst capacity per client (set 0 to disable)").Default("-1").Int()
	return c
}

// parse returns the selected command and fills the overrides with every
// flag the user actually passed.
func (c *cli) parse(args []string) (string, error) {
	cmd, err := c.app.Parse(args)
	if err != nil {
		return "", err
	}

	if *c.releaseConfig != "" {
		c.overrides.ReleaseConfig = c.releaseConfig
	}
	if *c.baseDir != "" {
		c.overrides.BaseDir = c.baseDir
	}
	if *c.outputDir != "" {
		c.overrides.OutputDir = c.outputDir
	}
	if *c.logLevel != "" {
		c.overrides.LogLevel = c.logLevel
	}
	if *c.dryRun {
		c.overrides.DryRun = c.dryRun
	}
	if *c.port != "" {
		c.overrides.Port = c.port
	}
	if *c.rateLimitRPS >= 0 {
		c.overrides.RateLimitRPS = c.rateLimitRPS
	}
	if *c.rateLimitBurst >= 0 {
		c.overrides.RateLimitBurst = c.rateLimitBurst
	}
	return cmd, nil
}

func main() {
	c := newCLI()
	cmd, err := c.parse(os.Args[1:])
	c.app.FatalIfError(err, "")

	cfg, err := config.Load(c.overrides)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogEncoding)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	app, err := application.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize application", zap.Error(err))
	}

	switch cmd {
	case c.check.FullCommand():
		os.Exit(runCheck(app, os.Stdout, os.Stderr))
	case c.serve.FullCommand():
		if err := app.Start(); err != nil {
			logger.Fatal("failed to start server", zap.Error(err))
		}
		shutdown(app.Server(), cfg.ShutdownGracePeriod, logger)
	}
}

// runCheck prints the projection to stdout and any failure to stderr,
// returning the process exit code.
func runCheck(app *application.App, stdout, stderr io.Writer) int {
	if _, err := app.Check(stdout); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func shutdown(server *http.Server, timeout time.Duration, logger *zap.Logger) {
	quit := make(chan os.Signal, 1)
	signalNotify(quit, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Warn("graceful shutdown failed", zap.Error(err))
		if closeErr := server.Close(); closeErr != nil {
			logger.Error("forced close failed", zap.Error(closeErr))
		}
	}
}
