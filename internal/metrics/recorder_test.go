package metrics

import "time"

// Compile-time checks.
var (
	_ Recorder = NoopRecorder{}
	_ Recorder = (*PrometheusRecorder)(nil)
	_ Recorder = (*countingRecorder)(nil)
)

type countingRecorder struct {
	files     map[FileOutcome]int
	runs      map[RunOutcome]int
	durations int
}

func (c *countingRecorder) IncFileOutcome(o FileOutcome)      { c.files[o]++ }
func (c *countingRecorder) IncTransformApplied(string)        {}
func (c *countingRecorder) ObserveFileDuration(time.Duration) {}
func (c *countingRecorder) ObserveRunDuration(time.Duration)  { c.durations++ }
func (c *countingRecorder) IncRunOutcome(o RunOutcome)        { c.runs[o]++ }
func (c *countingRecorder) SetLastRun(RunStats, time.Time)    {}
