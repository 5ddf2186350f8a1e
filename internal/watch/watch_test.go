package watch

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func waitRun(t *testing.T, runs <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-runs:
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for %s run", what)
	}
}

func TestWatcher_RunsInitiallyAndOnChange(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	runs := make(chan struct{}, 10)
	w := New(dir, "*.mdx", func(context.Context) error {
		runs <- struct{}{}
		return nil
	}, slog.New(slog.DiscardHandler)).WithDebounce(20 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	waitRun(t, runs, "initial")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "post.mdx"), []byte("# T\n"), 0o600))
	waitRun(t, runs, "change")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))
	select {
	case <-runs:
		t.Fatal("unexpected run for non-matching file")
	case <-time.After(150 * time.Millisecond):
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcher_MissingDir(t *testing.T) {
	defer goleak.VerifyNone(t)

	w := New(filepath.Join(t.TempDir(), "missing"), "*.mdx", func(context.Context) error { return nil }, nil)
	require.Error(t, w.Run(context.Background()))
}

func TestDebouncer_CoalescesBurst(t *testing.T) {
	defer goleak.VerifyNone(t)

	req, trigger, stop := newDebouncer(30 * time.Millisecond)
	defer stop()

	for range 5 {
		trigger()
	}
	select {
	case <-req:
	case <-time.After(time.Second):
		t.Fatal("no request after burst")
	}
	select {
	case <-req:
		t.Fatal("burst produced more than one request")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestRelevant(t *testing.T) {
	w := New("/content", "*.mdx", nil, nil)

	cases := []struct {
		ev   fsnotify.Event
		want bool
	}{
		{fsnotify.Event{Name: "/content/a.mdx", Op: fsnotify.Write}, true},
		{fsnotify.Event{Name: "/content/a.mdx", Op: fsnotify.Create}, true},
		{fsnotify.Event{Name: "/content/a.mdx", Op: fsnotify.Rename}, true},
		{fsnotify.Event{Name: "/content/a.mdx", Op: fsnotify.Remove}, false},
		{fsnotify.Event{Name: "/content/a.mdx", Op: fsnotify.Chmod}, false},
		{fsnotify.Event{Name: "/content/a.md", Op: fsnotify.Write}, false},
		{fsnotify.Event{Name: "/content/.a.mdx", Op: fsnotify.Write}, false},
		{fsnotify.Event{Name: "/content/a.mdx~", Op: fsnotify.Write}, false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, w.relevant(tc.ev), tc.ev.String())
	}
}
