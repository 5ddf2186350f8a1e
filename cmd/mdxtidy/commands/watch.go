package commands

import (
	"context"
	"time"

	"git.home.luguber.info/inful/mdxtidy/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Debounce time.Duration `help:"Quiet period after the last change before re-running" default:"300ms"`
}

func (w *WatchCmd) Run(g *Global, root *CLI) error {
	b, err := newBatch(g, root, batchOverrides{})
	if err != nil {
		return err
	}
	watcher := watch.New(b.cfg.ContentDir, b.cfg.Pattern, func(ctx context.Context) error {
		return b.run(ctx)
	}, g.Logger).WithDebounce(w.Debounce)
	return watcher.Run(g.Ctx)
}
