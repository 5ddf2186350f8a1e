// Package metrics records run and per-file counters for mdxtidy.
//
// Components receive a Recorder and default to NoopRecorder, so call sites
// never check for nil:
//
//	r := runner.New(cfg, pipeline, logger) // NoopRecorder
//	r.WithRecorder(metrics.NewPrometheusRecorder(reg))
//
// The Prometheus implementation owns its registry and can dump it in the
// node_exporter textfile collector format after each run (WriteTextfile), which
// suits a CLI that exits before anything could scrape it.
package metrics
