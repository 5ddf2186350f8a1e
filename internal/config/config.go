// Package config loads mdxtidy settings from defaults, an optional YAML file
// and the environment.
package config

import (
	stdErrors "errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/mdxtidy/internal/errors"
	"git.home.luguber.info/inful/mdxtidy/internal/intro"
	"git.home.luguber.info/inful/mdxtidy/internal/transforms"
)

// DefaultFilename is read from the working directory when no config path is given.
const DefaultFilename = "mdxtidy.yaml"

// Defaults.
const (
	DefaultContentDir = "src/data/blog/content"
	DefaultPattern    = "*.mdx"
)

// Config represents the application configuration.
type Config struct {
	ContentDir string        `yaml:"content_dir"`
	Pattern    string        `yaml:"pattern"`
	DryRun     bool          `yaml:"dry_run"`
	Transforms []string      `yaml:"transforms"`
	Intro      IntroConfig   `yaml:"intro"`
	Logging    LoggingConfig `yaml:"logging"`
	Metrics    MetricsConfig `yaml:"metrics"`
}

// IntroConfig configures the intro rewriter.
type IntroConfig struct {
	Selector string `yaml:"selector"` // md5 | blake3
}

// LoggingConfig configures the slog handler.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// MetricsConfig configures metrics output.
type MetricsConfig struct {
	// Textfile is a Prometheus textfile collector path; empty disables metrics.
	Textfile string `yaml:"textfile,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		ContentDir: DefaultContentDir,
		Pattern:    DefaultPattern,
		Transforms: transforms.Names(),
		Intro:      IntroConfig{Selector: intro.SelectorMD5},
		Logging:    LoggingConfig{Level: LogLevelInfo, Format: LogFormatText},
	}
}

// Load builds the configuration from defaults, the YAML file at configPath
// and the environment, in increasing precedence.
//
// An empty configPath reads DefaultFilename when it exists. A configPath that
// was named explicitly must exist. .env and .env.local are loaded first and
// never override variables that are already set.
func Load(configPath string) (*Config, error) {
	if err := LoadEnvFiles(".env", ".env.local"); err != nil {
		return nil, err
	}

	cfg := Default()

	path, explicit := configPath, configPath != ""
	if !explicit {
		path = DefaultFilename
	}
	if err := cfg.mergeFile(path, explicit); err != nil {
		return nil, err
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	cfg.Normalize()
	return cfg, nil
}

func (c *Config) mergeFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if stdErrors.Is(err, fs.ErrNotExist) {
			if required {
				return errors.ConfigNotFound(path)
			}
			return nil
		}
		return errors.ConfigInvalid(path, fmt.Errorf("read config: %w", err))
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return errors.ConfigInvalid(path, fmt.Errorf("unmarshal config: %w", err))
	}
	return nil
}

// Normalize canonicalizes enum-like values and fills blanks with defaults.
func (c *Config) Normalize() {
	if c.ContentDir == "" {
		c.ContentDir = DefaultContentDir
	}
	if c.Pattern == "" {
		c.Pattern = DefaultPattern
	}
	c.Intro.Selector = strings.ToLower(strings.TrimSpace(c.Intro.Selector))
	if c.Intro.Selector == "" {
		c.Intro.Selector = intro.SelectorMD5
	}
	c.Logging.Level = NormalizeLogLevel(string(c.Logging.Level))
	c.Logging.Format = NormalizeLogFormat(string(c.Logging.Format))
}
