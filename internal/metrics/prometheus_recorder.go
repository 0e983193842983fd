package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "sitegen"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	stageDuration     *prom.HistogramVec
	buildDuration     *prom.HistogramVec
	stageResults      *prom.CounterVec
	buildOutcome      *prom.CounterVec
	pages             *prom.CounterVec
	cities            prom.Gauge
	canonicalFallback *prom.CounterVec
}

// NewPrometheusRecorder constructs the collectors and registers them on reg.
// A nil registry gets a fresh private one.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		stageDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Duration of individual build stages",
			Buckets:   prom.DefBuckets,
		}, []string{"stage"}),
		buildDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "build_duration_seconds",
			Help:      "Total build duration",
			Buckets:   prom.DefBuckets,
		}, []string{"mode"}),
		stageResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "stage_results_total",
			Help:      "Stage result counts by outcome",
		}, []string{"stage", "result"}),
		buildOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "build_outcomes_total",
			Help:      "Build outcomes by final status",
		}, []string{"mode", "outcome"}),
		pages: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "pages_emitted_total",
			Help:      "Pages written, by mode and page kind",
		}, []string{"mode", "kind"}),
		cities: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "city_records",
			Help:      "City records loaded for the last build",
		}),
		canonicalFallback: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "canonical_fallbacks_total",
			Help:      "Canonical URLs that degraded to root-relative paths",
		}, []string{"mode"}),
	}
	reg.MustRegister(pr.stageDuration, pr.buildDuration, pr.stageResults, pr.buildOutcome, pr.pages, pr.cities, pr.canonicalFallback)
	return pr
}

func (p *PrometheusRecorder) ObserveStageDuration(stage string, d time.Duration) {
	if p == nil {
		return
	}
	p.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (p *PrometheusRecorder) ObserveBuildDuration(mode string, d time.Duration) {
	if p == nil {
		return
	}
	p.buildDuration.WithLabelValues(mode).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncStageResult(stage string, result ResultLabel) {
	if p == nil {
		return
	}
	p.stageResults.WithLabelValues(stage, string(result)).Inc()
}

func (p *PrometheusRecorder) IncBuildOutcome(mode string, outcome BuildOutcomeLabel) {
	if p == nil {
		return
	}
	p.buildOutcome.WithLabelValues(mode, string(outcome)).Inc()
}

func (p *PrometheusRecorder) AddPages(mode, kind string, n int) {
	if p == nil || n <= 0 {
		return
	}
	p.pages.WithLabelValues(mode, kind).Add(float64(n))
}

func (p *PrometheusRecorder) SetCities(n int) {
	if p == nil {
		return
	}
	p.cities.Set(float64(n))
}

func (p *PrometheusRecorder) IncCanonicalFallback(mode string) {
	if p == nil {
		return
	}
	p.canonicalFallback.WithLabelValues(mode).Inc()
}
