// Package runner applies a transform pipeline to every matching document in
// a content directory.
package runner

import (
	"context"
	stdErrors "errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/goliatone/go-slug"
	"github.com/google/uuid"

	"git.home.luguber.info/inful/mdxtidy/internal/docmodel"
	"git.home.luguber.info/inful/mdxtidy/internal/errors"
	"git.home.luguber.info/inful/mdxtidy/internal/logfields"
	"git.home.luguber.info/inful/mdxtidy/internal/metrics"
	"git.home.luguber.info/inful/mdxtidy/internal/transforms"
)

// Options selects the documents a Runner processes.
type Options struct {
	ContentDir string
	Pattern    string
	DryRun     bool
}

// Runner processes the documents of one content directory sequentially.
type Runner struct {
	opts     Options
	pipeline *transforms.Pipeline
	logger   *slog.Logger
	recorder metrics.Recorder
	now      func() time.Time
}

// New returns a Runner. A nil logger uses slog.Default.
func New(opts Options, pipeline *transforms.Pipeline, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Pattern == "" {
		opts.Pattern = "*.mdx"
	}
	return &Runner{
		opts:     opts,
		pipeline: pipeline,
		logger:   logger,
		recorder: metrics.NoopRecorder{},
		now:      time.Now,
	}
}

// WithRecorder sets the metrics recorder.
func (r *Runner) WithRecorder(rec metrics.Recorder) *Runner {
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}
	r.recorder = rec
	return r
}

// Files returns the matching documents in sorted order. Only the top level of
// the content directory is searched and directories are ignored; entries that
// cannot be stat'ed are kept so the run reports them as failures.
func (r *Runner) Files() ([]string, error) {
	info, err := os.Stat(r.opts.ContentDir)
	if err != nil {
		return nil, errors.ContentDirError(r.opts.ContentDir, err)
	}
	if !info.IsDir() {
		return nil, errors.ContentDirError(r.opts.ContentDir, fmt.Errorf("not a directory"))
	}

	matches, err := filepath.Glob(filepath.Join(r.opts.ContentDir, r.opts.Pattern))
	if err != nil {
		return nil, errors.ValidationFailed("pattern", err.Error())
	}

	files := matches[:0]
	for _, m := range matches {
		if fi, statErr := os.Stat(m); statErr == nil && fi.IsDir() {
			continue
		}
		files = append(files, m)
	}
	sort.Strings(files)
	return files, nil
}

// Run processes every matching document once.
//
// A document that cannot be read, transformed or written is logged and
// counted as failed; the remaining documents are still processed. The
// returned error is non-nil when the file list could not be built, the
// context was canceled, or at least one document failed. The summary is
// returned in every case where files were listed.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	start := r.now()
	sum := &Summary{
		RunID:         uuid.NewString(),
		ContentDir:    r.opts.ContentDir,
		DryRun:        r.opts.DryRun,
		Transforms:    r.pipeline.Names(),
		ReportSkipped: r.pipeline.RequiresFrontmatter(),
	}
	logger := r.logger.With(logfields.RunID(sum.RunID))

	files, err := r.Files()
	if err != nil {
		return nil, err
	}
	logger.Debug("Starting run", logfields.Dir(r.opts.ContentDir),
		slog.Int("files", len(files)), logfields.DryRun(r.opts.DryRun))

	var failures []error
	for _, path := range files {
		if ctxErr := ctx.Err(); ctxErr != nil {
			failures = append(failures, ctxErr)
			break
		}

		sum.Scanned++
		fileStart := r.now()
		change, skipped, fileErr := r.processFile(logger, path)
		r.recorder.ObserveFileDuration(r.now().Sub(fileStart))

		if skipped {
			sum.SkippedNoFrontmatter++
		}
		switch {
		case fileErr != nil:
			sum.Failed++
			sum.Failures = append(sum.Failures, FileFailure{Path: path, Error: fileErr.Error()})
			failures = append(failures, fileErr)
			r.recorder.IncFileOutcome(metrics.FileFailed)
			logger.Error("Failed to process file", logfields.File(path), logfields.Error(fileErr))
		case change != nil:
			sum.Changed++
			sum.Changes = append(sum.Changes, *change)
			r.recorder.IncFileOutcome(metrics.FileChanged)
			for _, name := range change.Transforms {
				r.recorder.IncTransformApplied(name)
			}
		case skipped:
			r.recorder.IncFileOutcome(metrics.FileSkipped)
		default:
			r.recorder.IncFileOutcome(metrics.FileUnchanged)
		}
	}

	finished := r.now()
	sum.Duration = finished.Sub(start)
	r.recorder.ObserveRunDuration(sum.Duration)
	r.recorder.SetLastRun(metrics.RunStats{
		Scanned:              sum.Scanned,
		Changed:              sum.Changed,
		SkippedNoFrontmatter: sum.SkippedNoFrontmatter,
		Failed:               sum.Failed,
	}, finished)

	logger.Info("Run complete",
		slog.Int("scanned", sum.Scanned),
		slog.Int("changed", sum.Changed),
		slog.Int("skipped_no_frontmatter", sum.SkippedNoFrontmatter),
		slog.Int("failed", sum.Failed),
		logfields.DryRun(r.opts.DryRun),
		logfields.DurationMS(float64(sum.Duration.Microseconds())/1000))

	if len(failures) > 0 {
		r.recorder.IncRunOutcome(metrics.RunFailed)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return sum, errors.Wrap(ctxErr, errors.CategoryRuntime, errors.SeverityError, "run interrupted")
		}
		return sum, errors.BatchFailed(sum.Failed, stdErrors.Join(failures...))
	}
	r.recorder.IncRunOutcome(metrics.RunSuccess)
	return sum, nil
}

// processFile reads, transforms and (unless dry-run) writes one document.
// It returns a non-nil change when the content differs.
func (r *Runner) processFile(logger *slog.Logger, path string) (*FileChange, bool, error) {
	doc, err := docmodel.ParseFile(path)
	if err != nil {
		return nil, false, err
	}
	r.checkSlug(logger, doc)

	res, err := r.pipeline.Apply(doc)
	if err != nil {
		return nil, false, err
	}
	if !res.Changed {
		return nil, res.SkippedNoFrontmatter, nil
	}

	after := doc.WithContent(res.Content)
	change := &FileChange{
		Path:       path,
		Transforms: res.Applied,
		Before:     doc.Fingerprint(),
		After:      after.Fingerprint(),
	}

	if r.opts.DryRun {
		logger.Info("Would update file", logfields.File(path), slog.Any("transforms", res.Applied))
		return change, res.SkippedNoFrontmatter, nil
	}

	if err := writePreservingMode(path, res.Content); err != nil {
		return nil, res.SkippedNoFrontmatter, err
	}
	logger.Info("Updated file", logfields.File(path), slog.Any("transforms", res.Applied))
	return change, res.SkippedNoFrontmatter, nil
}

// checkSlug warns when the file stem is not a canonical slug. The stem is
// still used as-is for intro selection.
func (r *Runner) checkSlug(logger *slog.Logger, doc *docmodel.Document) {
	if slug.IsValid(doc.Slug()) {
		return
	}
	attrs := []any{logfields.File(doc.Path()), logfields.Slug(doc.Slug())}
	if normalized, err := slug.Normalize(doc.Slug()); err == nil && normalized != "" {
		attrs = append(attrs, slog.String("suggested", normalized))
	}
	logger.Warn("File name is not a canonical slug", attrs...)
}

func writePreservingMode(path string, content []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.FileError("stat", path, err)
	}
	if err := os.WriteFile(path, content, info.Mode().Perm()); err != nil {
		return errors.FileError("write", path, err)
	}
	return nil
}
