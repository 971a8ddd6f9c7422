package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	envPrefix = "RELEASECFG_"

	defaultReleaseConfig  = "releasecfg.yml"
	defaultOutputDir      = "out/releasecfg"
	defaultPort           = "8080"
	defaultLogLevel       = "info"
	defaultLogEncoding    = "json"
	defaultRateLimitRPS   = 25.0
	defaultRateLimitBurst = 50
	defaultMaxBodyBytes   = 1 << 20
)

// ErrInvalid wraps every rejected setting.
var ErrInvalid = errors.New("invalid configuration")

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
type Config struct {
	ReleaseConfig        string
	BaseDir              string
	OutputDir            string
	DryRun               bool
	LogLevel             string
	LogEncoding          string
	Port                 string
	ShutdownGracePeriod  time.Duration
	ReadHeaderTimeout    time.Duration
	WriteTimeout         time.Duration
	IdleTimeout          time.Duration
	EnableRequestLogging bool
	RateLimitRPS         float64
	RateLimitBurst       int
	MaxBodyBytes         int64
}

// yamlConfig represents the YAML configuration file structure.
type yamlConfig struct {
	ReleaseConfig        string        `yaml:"release_config"`
	BaseDir              string        `yaml:"base_dir"`
	OutputDir            string        `yaml:"output_dir"`
	DryRun               *bool         `yaml:"dry_run"`
	Log                  yamlLog       `yaml:"log"`
	Port                 string        `yaml:"port"`
	ShutdownGracePeriod  string        `yaml:"shutdown_grace_period"`
	ReadHeaderTimeout    string        `yaml:"read_header_timeout"`
	WriteTimeout         string        `yaml:"write_timeout"`
	IdleTimeout          string        `yaml:"idle_timeout"`
	EnableRequestLogging *bool         `yaml:"enable_request_logging"`
	RateLimit            yamlRateLimit `yaml:"rate_limit"`
	MaxBodyBytes         int64         `yaml:"max_body_bytes"`
}

type yamlLog struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

// yamlRateLimit represents the rate limit section in YAML.
type yamlRateLimit struct {
	RPS   *float64 `yaml:"rps"`
	Burst *int     `yaml:"burst"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile     string
	ReleaseConfig  *string
	BaseDir        *string
	OutputDir      *string
	DryRun         *bool
	LogLevel       *string
	Port           *string
	RateLimitRPS   *float64
	RateLimitBurst *int
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > YAML config > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	applyEnvConfig(&cfg)

	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		if err := applyYAMLConfig(&cfg, yamlCfg); err != nil {
			return Config{}, err
		}
	}

	if overrides != nil {
		applyCLIOverrides(&cfg, overrides)
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		ReleaseConfig:        defaultReleaseConfig,
		BaseDir:              ".",
		OutputDir:            defaultOutputDir,
		LogLevel:             defaultLogLevel,
		LogEncoding:          defaultLogEncoding,
		Port:                 defaultPort,
		ShutdownGracePeriod:  10 * time.Second,
		ReadHeaderTimeout:    5 * time.Second,
		WriteTimeout:         15 * time.Second,
		IdleTimeout:          60 * time.Second,
		EnableRequestLogging: true,
		RateLimitRPS:         defaultRateLimitRPS,
		RateLimitBurst:       defaultRateLimitBurst,
		MaxBodyBytes:         defaultMaxBodyBytes,
	}
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML configuration to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) error {
	setString(&cfg.ReleaseConfig, yamlCfg.ReleaseConfig)
	setString(&cfg.BaseDir, yamlCfg.BaseDir)
	setString(&cfg.OutputDir, yamlCfg.OutputDir)
	setString(&cfg.LogLevel, yamlCfg.Log.Level)
	setString(&cfg.LogEncoding, yamlCfg.Log.Encoding)
	setString(&cfg.Port, yamlCfg.Port)

	if yamlCfg.DryRun != nil {
		cfg.DryRun = *yamlCfg.DryRun
	}
	if yamlCfg.EnableRequestLogging != nil {
		cfg.EnableRequestLogging = *yamlCfg.EnableRequestLogging
	}

	durations := []struct {
		name  string
		value string
		dst   *time.Duration
	}{
		{"shutdown_grace_period", yamlCfg.ShutdownGracePeriod, &cfg.ShutdownGracePeriod},
		{"read_header_timeout", yamlCfg.ReadHeaderTimeout, &cfg.ReadHeaderTimeout},
		{"write_timeout", yamlCfg.WriteTimeout, &cfg.WriteTimeout},
		{"idle_timeout", yamlCfg.IdleTimeout, &cfg.IdleTimeout},
	}
	for _, d := range durations {
		if d.value == "" {
			continue
		}
		parsed, err := time.ParseDuration(d.value)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalid, d.name, err)
		}
		*d.dst = parsed
	}

	if yamlCfg.RateLimit.RPS != nil {
		cfg.RateLimitRPS = *yamlCfg.RateLimit.RPS
	}
	if yamlCfg.RateLimit.Burst != nil {
		cfg.RateLimitBurst = *yamlCfg.RateLimit.Burst
	}
	if yamlCfg.MaxBodyBytes != 0 {
		cfg.MaxBodyBytes = yamlCfg.MaxBodyBytes
	}
	return nil
}

// applyEnvConfig applies RELEASECFG_* environment variables. Unparseable
// values are ignored.
func applyEnvConfig(cfg *Config) {
	setString(&cfg.ReleaseConfig, getenv("FILE"))
	setString(&cfg.BaseDir, getenv("BASE_DIR"))
	setString(&cfg.OutputDir, getenv("OUTPUT_DIR"))
	setString(&cfg.LogLevel, getenv("LOG_LEVEL"))
	setString(&cfg.LogEncoding, getenv("LOG_ENCODING"))
	setString(&cfg.Port, getenv("PORT"))

	if v := getenv("DRY_RUN"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.DryRun = b
		}
	}
	if v := getenv("RATE_LIMIT_RPS"); v != "" {
		if value, err := strconv.ParseFloat(v, 64); err == nil && value >= 0 {
			cfg.RateLimitRPS = value
		}
	}
	if v := getenv("RATE_LIMIT_BURST"); v != "" {
		if value, err := strconv.Atoi(v); err == nil && value >= 0 {
			cfg.RateLimitBurst = value
		}
	}
	if v := getenv("MAX_BODY_BYTES"); v != "" {
		if value, err := strconv.ParseInt(v, 10, 64); err == nil && value > 0 {
			cfg.MaxBodyBytes = value
		}
	}
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) {
	if overrides.ReleaseConfig != nil {
		setString(&cfg.ReleaseConfig, *overrides.ReleaseConfig)
	}
	if overrides.BaseDir != nil {
		setString(&cfg.BaseDir, *overrides.BaseDir)
	}
	if overrides.OutputDir != nil {
		setString(&cfg.OutputDir, *overrides.OutputDir)
	}
	if overrides.LogLevel != nil {
		setString(&cfg.LogLevel, *overrides.LogLevel)
	}
	if overrides.Port != nil {
		setString(&cfg.Port, *overrides.Port)
	}
	if overrides.DryRun != nil {
		cfg.DryRun = *overrides.DryRun
	}
	if overrides.RateLimitRPS != nil && *overrides.RateLimitRPS >= 0 {
		cfg.RateLimitRPS = *overrides.RateLimitRPS
	}
	if overrides.RateLimitBurst != nil && *overrides.RateLimitBurst >= 0 {
		cfg.RateLimitBurst = *overrides.RateLimitBurst
	}
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("%w: log level: %w", ErrInvalid, err)
	}
	if cfg.LogEncoding != "json" && cfg.LogEncoding != "console" {
		return fmt.Errorf("%w: log encoding must be json or console, got %q", ErrInvalid, cfg.LogEncoding)
	}
	if cfg.RateLimitRPS < 0 {
		return fmt.Errorf("%w: rate limit rps must be >= 0", ErrInvalid)
	}
	if cfg.RateLimitBurst < 0 {
		return fmt.Errorf("%w: rate limit burst must be >= 0", ErrInvalid)
	}
	if cfg.MaxBodyBytes <= 0 {
		return fmt.Errorf("%w: max body bytes must be positive", ErrInvalid)
	}
	return nil
}

func getenv(name string) string {
	return strings.TrimSpace(os.Getenv(envPrefix + name))
}

func setString(dst *string, value string) {
	if value = strings.TrimSpace(value); value != "" {
		*dst = value
	}
}
