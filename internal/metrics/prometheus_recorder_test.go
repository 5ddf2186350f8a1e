package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)

	pr.IncFileOutcome(FileChanged)
	pr.IncFileOutcome(FileChanged)
	pr.IncFileOutcome(FileUnchanged)
	pr.IncTransformApplied("heading-spacing")
	pr.ObserveFileDuration(2 * time.Millisecond)
	pr.ObserveRunDuration(150 * time.Millisecond)
	pr.IncRunOutcome(RunSuccess)
	pr.SetLastRun(RunStats{Scanned: 3, Changed: 2}, time.Unix(1700000000, 0))

	path := filepath.Join(t.TempDir(), "run.prom")
	require.NoError(t, pr.WriteTextfile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	require.Contains(t, text, `mdxtidy_files_total{outcome="changed"} 2`)
	require.Contains(t, text, `mdxtidy_transform_changes_total{transform="heading-spacing"} 1`)
	require.Contains(t, text, `mdxtidy_last_run_files{kind="scanned"} 3`)
	require.Contains(t, text, `mdxtidy_last_run_timestamp_seconds 1.7e+09`)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, mfs)
}

func TestPrometheusRecorder_WriteTextfile(t *testing.T) {
	pr := NewPrometheusRecorder(nil)
	pr.IncRunOutcome(RunFailed)

	path := filepath.Join(t.TempDir(), "mdxtidy.prom")
	require.NoError(t, pr.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `mdxtidy_runs_total{outcome="failed"} 1`)
}

func TestPrometheusRecorder_WriteTextfileBadDir(t *testing.T) {
	pr := NewPrometheusRecorder(nil)
	err := pr.WriteTextfile(filepath.Join(t.TempDir(), "missing", "x.prom"))
	require.Error(t, err)
}

func TestCountingRecorder(t *testing.T) {
	c := &countingRecorder{files: map[FileOutcome]int{}, runs: map[RunOutcome]int{}}
	var r Recorder = c
	r.IncFileOutcome(FileFailed)
	r.IncRunOutcome(RunFailed)
	r.ObserveRunDuration(time.Second)
	require.Equal(t, 1, c.files[FileFailed])
	require.Equal(t, 1, c.runs[RunFailed])
	require.Equal(t, 1, c.durations)
}
