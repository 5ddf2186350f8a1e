package metrics

import "time"

// FileOutcome labels what happened to a single document during a run.
type FileOutcome string

const (
	FileChanged   FileOutcome = "changed"
	FileUnchanged FileOutcome = "unchanged"
	FileSkipped   FileOutcome = "skipped_no_frontmatter"
	FileFailed    FileOutcome = "failed"
)

// RunOutcome labels the final status of a batch run.
type RunOutcome string

const (
	RunSuccess RunOutcome = "success"
	RunFailed  RunOutcome = "failed"
)

// RunStats is the per-run snapshot exported as gauges.
type RunStats struct {
	Scanned              int
	Changed              int
	SkippedNoFrontmatter int
	Failed               int
}

// Recorder defines the observability hooks used by the runner.
type Recorder interface {
	IncFileOutcome(outcome FileOutcome)
	IncTransformApplied(transform string)
	ObserveFileDuration(d time.Duration)
	ObserveRunDuration(d time.Duration)
	IncRunOutcome(outcome RunOutcome)
	SetLastRun(stats RunStats, finished time.Time)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncFileOutcome(FileOutcome)        {}
func (NoopRecorder) IncTransformApplied(string)        {}
func (NoopRecorder) ObserveFileDuration(time.Duration) {}
func (NoopRecorder) ObserveRunDuration(time.Duration)  {}
func (NoopRecorder) IncRunOutcome(RunOutcome)          {}
func (NoopRecorder) SetLastRun(RunStats, time.Time)    {}
