package metrics

import (
	"fmt"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "mdxtidy"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	reg              *prom.Registry
	fileOutcomes     *prom.CounterVec
	transforms       *prom.CounterVec
	fileDuration     prom.Histogram
	runDuration      prom.Histogram
	runOutcomes      *prom.CounterVec
	lastRunFiles     *prom.GaugeVec
	lastRunTimestamp prom.Gauge
}

// NewPrometheusRecorder constructs the metrics and registers them on reg
// (a fresh registry when nil).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		reg: reg,
		fileOutcomes: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "files_total",
			Help:      "Processed documents by outcome",
		}, []string{"outcome"}),
		transforms: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "transform_changes_total",
			Help:      "Documents changed by each transform",
		}, []string{"transform"}),
		fileDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "file_duration_seconds",
			Help:      "Time spent reading, transforming and writing one document",
			Buckets:   prom.ExponentialBuckets(0.0005, 4, 8),
		}),
		runDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Total batch run duration",
			Buckets:   prom.DefBuckets,
		}),
		runOutcomes: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Batch runs by final status",
		}, []string{"outcome"}),
		lastRunFiles: prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_files",
			Help:      "Document counts of the most recent run",
		}, []string{"kind"}),
		lastRunTimestamp: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time the most recent run finished",
		}),
	}
	reg.MustRegister(pr.fileOutcomes, pr.transforms, pr.fileDuration, pr.runDuration,
		pr.runOutcomes, pr.lastRunFiles, pr.lastRunTimestamp)
	return pr
}

// Registry returns the registry the metrics are registered on.
func (p *PrometheusRecorder) Registry() *prom.Registry { return p.reg }

func (p *PrometheusRecorder) IncFileOutcome(outcome FileOutcome) {
	p.fileOutcomes.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) IncTransformApplied(transform string) {
	p.transforms.WithLabelValues(transform).Inc()
}

func (p *PrometheusRecorder) ObserveFileDuration(d time.Duration) {
	p.fileDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) ObserveRunDuration(d time.Duration) {
	p.runDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncRunOutcome(outcome RunOutcome) {
	p.runOutcomes.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) SetLastRun(stats RunStats, finished time.Time) {
	p.lastRunFiles.WithLabelValues("scanned").Set(float64(stats.Scanned))
	p.lastRunFiles.WithLabelValues("changed").Set(float64(stats.Changed))
	p.lastRunFiles.WithLabelValues("skipped_no_frontmatter").Set(float64(stats.SkippedNoFrontmatter))
	p.lastRunFiles.WithLabelValues("failed").Set(float64(stats.Failed))
	p.lastRunTimestamp.Set(float64(finished.Unix()))
}

// WriteTextfile writes the registry to path in the text exposition format.
// The file is replaced atomically.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	if err := prom.WriteToTextfile(path, p.reg); err != nil {
		return fmt.Errorf("write metrics textfile %s: %w", path, err)
	}
	return nil
}
