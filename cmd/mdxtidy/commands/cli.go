// Package commands implements the mdxtidy command-line interface.
package commands

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/mdxtidy/internal/config"
	"git.home.luguber.info/inful/mdxtidy/internal/version"
)

// Global is bound into every command.
type Global struct {
	Ctx    context.Context
	Logger *slog.Logger
	Stdout io.Writer
	Stderr io.Writer
}

// CLI definition & global flags.
type CLI struct {
	Config     string           `short:"c" help:"Configuration file path (default: ./mdxtidy.yaml when present)" type:"path"`
	Verbose    bool             `short:"v" help:"Enable verbose logging"`
	ContentDir string           `name:"content-dir" help:"Directory containing the .mdx files (overrides config)" type:"path"`
	DryRun     bool             `name:"dry-run" help:"Report what would change without writing files"`
	Format     string           `help:"Summary output format" enum:"text,json" default:"text"`
	Version    kong.VersionFlag `name:"version" help:"Show version and exit"`

	FixHeadings   FixHeadingsCmd   `cmd:"" name:"fix-headings" help:"Put H2 headings glued to a sentence on their own line"`
	StripMarkers  StripMarkersCmd  `cmd:"" name:"strip-markers" help:"Remove (Eslatma: N) annotation markers"`
	RewriteIntros RewriteIntrosCmd `cmd:"" name:"rewrite-intros" help:"Replace boilerplate intros with generated ones"`
	Run           RunCmd           `cmd:"" help:"Apply the configured transforms"`
	Intro         IntroCmd         `cmd:"" help:"Print the intro generated for a slug without touching files"`
	Watch         WatchCmd         `cmd:"" help:"Apply the configured transforms whenever content changes"`
	Init          InitCmd          `cmd:"" help:"Write an example configuration file"`
}

// NewParser builds the kong parser for cli with global bound into commands.
func NewParser(cli *CLI, global *Global, options ...kong.Option) (*kong.Kong, error) {
	if global.Ctx == nil {
		global.Ctx = context.Background()
	}
	if global.Stdout == nil {
		global.Stdout = os.Stdout
	}
	if global.Stderr == nil {
		global.Stderr = os.Stderr
	}
	opts := append([]kong.Option{
		kong.Name("mdxtidy"),
		kong.Description("Regex-based cleanup and deterministic intro rewriting for MDX blog content."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
		kong.Bind(global),
	}, options...)
	return kong.New(cli, opts...)
}

// AfterApply runs after flag parsing; sets up the bootstrap logger. The
// logger is replaced once the configuration is loaded.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply(g *Global) error {
	level := config.LogLevelInfo
	if c.Verbose {
		level = config.LogLevelDebug
	}
	g.Logger = newLogger(g.Stderr, level, config.LogFormatText)
	slog.SetDefault(g.Logger)
	return nil
}

// loadConfig loads the configuration, applies global flag overrides and
// reconfigures logging. The result is not validated.
func (c *CLI) loadConfig(g *Global) (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, err
	}
	if c.ContentDir != "" {
		cfg.ContentDir = c.ContentDir
	}
	if c.DryRun {
		cfg.DryRun = true
	}

	level := cfg.Logging.Level
	if c.Verbose {
		level = config.LogLevelDebug
	}
	g.Logger = newLogger(g.Stderr, level, cfg.Logging.Format)
	slog.SetDefault(g.Logger)
	return cfg, nil
}

func newLogger(w io.Writer, level config.LogLevel, format config.LogFormat) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level.SlogLevel()}
	if format == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
