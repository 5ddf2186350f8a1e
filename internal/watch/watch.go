// Package watch re-runs a batch whenever matching documents change.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/mdxtidy/internal/logfields"
)

// DefaultDebounce is the quiet period after the last event before a run.
const DefaultDebounce = 300 * time.Millisecond

// RunFunc performs one batch run.
type RunFunc func(ctx context.Context) error

// Watcher watches the top level of a content directory.
type Watcher struct {
	dir      string
	pattern  string
	debounce time.Duration
	run      RunFunc
	logger   *slog.Logger
}

// New returns a Watcher that calls run for changes to files in dir whose base
// name matches pattern.
func New(dir, pattern string, run RunFunc, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{dir: dir, pattern: pattern, debounce: DefaultDebounce, run: run, logger: logger}
}

// WithDebounce overrides the debounce interval.
func (w *Watcher) WithDebounce(d time.Duration) *Watcher {
	if d > 0 {
		w.debounce = d
	}
	return w
}

// Run performs an initial run, then re-runs after changes until ctx is done.
// Runs never overlap. Run errors are logged and watching continues.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify: %w", err)
	}
	defer func() { _ = fw.Close() }()

	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}

	w.runOnce(ctx, "initial")

	runReq, trigger, stop := newDebouncer(w.debounce)
	defer stop()

	w.logger.Info("Watching for changes", logfields.Dir(w.dir), slog.String("pattern", w.pattern))
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Watcher stopped", logfields.Dir(w.dir))
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if w.relevant(ev) {
				w.logger.Debug("File change detected", logfields.File(ev.Name), logfields.Event(ev.Op.String()))
				trigger()
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("Watcher error", logfields.Error(err))
		case <-runReq:
			w.runOnce(ctx, "change")
		}
	}
}

func (w *Watcher) runOnce(ctx context.Context, reason string) {
	if ctx.Err() != nil {
		return
	}
	if err := w.run(ctx); err != nil {
		w.logger.Warn("Run failed", slog.String("reason", reason), logfields.Error(err))
	}
}

// relevant reports whether ev should schedule a run.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Rename) {
		return false
	}
	base := filepath.Base(ev.Name)
	if shouldIgnore(base) {
		return false
	}
	ok, err := filepath.Match(w.pattern, base)
	return err == nil && ok
}

// shouldIgnore returns true for hidden, editor swap and backup files.
func shouldIgnore(base string) bool {
	return strings.HasPrefix(base, ".") ||
		strings.HasSuffix(base, "~") ||
		strings.HasSuffix(base, ".swp") ||
		strings.HasSuffix(base, ".swx") ||
		(strings.HasPrefix(base, "#") && strings.HasSuffix(base, "#"))
}

// newDebouncer returns a request channel that receives once per burst of
// trigger calls, after interval has passed without another call.
func newDebouncer(interval time.Duration) (<-chan struct{}, func(), func()) {
	var mu sync.Mutex
	var timer *time.Timer
	req := make(chan struct{}, 1)

	trigger := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(interval, func() {
			select {
			case req <- struct{}{}:
			default:
			}
		})
	}
	stop := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
	}
	return req, trigger, stop
}
