package config

import (
	stdErrors "errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"git.home.luguber.info/inful/mdxtidy/internal/errors"
)

// Environment variables that override file settings.
const (
	EnvContentDir      = "MDXTIDY_CONTENT_DIR"
	EnvDryRun          = "MDXTIDY_DRY_RUN"
	EnvTransforms      = "MDXTIDY_TRANSFORMS"
	EnvIntroSelector   = "MDXTIDY_INTRO_SELECTOR"
	EnvLogLevel        = "MDXTIDY_LOG_LEVEL"
	EnvLogFormat       = "MDXTIDY_LOG_FORMAT"
	EnvMetricsTextfile = "MDXTIDY_METRICS_TEXTFILE"
)

// LoadEnvFiles loads KEY=VALUE files into the process environment. Missing
// files are ignored and variables that are already set win.
func LoadEnvFiles(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); stdErrors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return errors.ConfigInvalid(p, fmt.Errorf("load env file: %w", err))
		}
	}
	return nil
}

// ApplyEnv overrides fields from environment variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvContentDir); ok && v != "" {
		c.ContentDir = v
	}
	if v, ok := lookup(EnvDryRun); ok && v != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return errors.ValidationFailed(EnvDryRun, fmt.Sprintf("not a boolean: %q", v))
		}
		c.DryRun = b
	}
	if v, ok := lookup(EnvTransforms); ok && strings.TrimSpace(v) != "" {
		c.Transforms = splitList(v)
	}
	if v, ok := lookup(EnvIntroSelector); ok && v != "" {
		c.Intro.Selector = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Logging.Level = LogLevel(v)
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		c.Logging.Format = LogFormat(v)
	}
	if v, ok := lookup(EnvMetricsTextfile); ok && v != "" {
		c.Metrics.Textfile = v
	}
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
