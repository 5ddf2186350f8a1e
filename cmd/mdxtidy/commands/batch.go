package commands

import (
	"context"
	"log/slog"

	"git.home.luguber.info/inful/mdxtidy/internal/config"
	"git.home.luguber.info/inful/mdxtidy/internal/intro"
	"git.home.luguber.info/inful/mdxtidy/internal/logfields"
	"git.home.luguber.info/inful/mdxtidy/internal/metrics"
	"git.home.luguber.info/inful/mdxtidy/internal/runner"
	"git.home.luguber.info/inful/mdxtidy/internal/transforms"
)

// FixHeadingsCmd implements the 'fix-headings' command.
type FixHeadingsCmd struct{}

func (f *FixHeadingsCmd) Run(g *Global, root *CLI) error {
	return runBatch(g, root, batchOverrides{transforms: []string{transforms.NameHeadingSpacing}})
}

// StripMarkersCmd implements the 'strip-markers' command.
type StripMarkersCmd struct{}

func (s *StripMarkersCmd) Run(g *Global, root *CLI) error {
	return runBatch(g, root, batchOverrides{transforms: []string{transforms.NameMarkerRemoval}})
}

// RewriteIntrosCmd implements the 'rewrite-intros' command.
type RewriteIntrosCmd struct {
	Selector string `help:"Fragment selector (md5|blake3); overrides intro.selector"`
}

func (r *RewriteIntrosCmd) Run(g *Global, root *CLI) error {
	return runBatch(g, root, batchOverrides{
		transforms: []string{transforms.NameIntroRewrite},
		selector:   r.Selector,
	})
}

// RunCmd implements the 'run' command.
type RunCmd struct {
	Transforms []string `help:"Transforms to apply (comma separated); overrides the config list" sep:","`
	Selector   string   `help:"Fragment selector (md5|blake3); overrides intro.selector"`
}

func (r *RunCmd) Run(g *Global, root *CLI) error {
	return runBatch(g, root, batchOverrides{transforms: r.Transforms, selector: r.Selector})
}

type batchOverrides struct {
	transforms []string
	selector   string
}

func (o batchOverrides) apply(cfg *config.Config) {
	if len(o.transforms) > 0 {
		cfg.Transforms = o.transforms
	}
	if o.selector != "" {
		cfg.Intro.Selector = o.selector
	}
}

func runBatch(g *Global, root *CLI, o batchOverrides) error {
	b, err := newBatch(g, root, o)
	if err != nil {
		return err
	}
	return b.run(g.Ctx)
}

// batch is one configured runner plus its metrics and output settings.
type batch struct {
	g        *Global
	cfg      *config.Config
	format   string
	runner   *runner.Runner
	recorder *metrics.PrometheusRecorder
}

func newBatch(g *Global, root *CLI, o batchOverrides) (*batch, error) {
	cfg, err := root.loadConfig(g)
	if err != nil {
		return nil, err
	}
	o.apply(cfg)
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	selector, err := intro.NewSelector(cfg.Intro.Selector)
	if err != nil {
		return nil, err
	}
	pipeline, err := transforms.NewPipeline(cfg.Transforms, transforms.Options{IntroSelector: selector}, g.Logger)
	if err != nil {
		return nil, err
	}

	b := &batch{
		g:      g,
		cfg:    cfg,
		format: root.Format,
		runner: runner.New(runner.Options{
			ContentDir: cfg.ContentDir,
			Pattern:    cfg.Pattern,
			DryRun:     cfg.DryRun,
		}, pipeline, g.Logger),
	}
	if cfg.Metrics.Textfile != "" {
		b.recorder = metrics.NewPrometheusRecorder(nil)
		b.runner.WithRecorder(b.recorder)
	}

	g.Logger.Debug("Configuration loaded",
		logfields.Dir(cfg.ContentDir),
		slog.Any("transforms", pipeline.Names()),
		logfields.Selector(selector.Name()),
		logfields.DryRun(cfg.DryRun))
	return b, nil
}

func (b *batch) run(ctx context.Context) error {
	sum, runErr := b.runner.Run(ctx)
	if sum != nil {
		var err error
		if b.format == "json" {
			err = sum.WriteJSON(b.g.Stdout)
		} else {
			err = sum.WriteText(b.g.Stdout)
		}
		if err != nil {
			b.g.Logger.Warn("Failed to write summary", logfields.Error(err))
		}
	}
	if b.recorder != nil {
		if err := b.recorder.WriteTextfile(b.cfg.Metrics.Textfile); err != nil {
			b.g.Logger.Warn("Failed to write metrics", logfields.Error(err))
		}
	}
	return runErr
}
