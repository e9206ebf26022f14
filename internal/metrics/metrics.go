// SPDX-License-Identifier: MIT

// Package metrics exposes analysis counters and timings to Prometheus.
//
// Components depend on the Recorder interface; NewPrometheus backs it with a
// private registry served by Handler, and Nop discards everything.
package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ErrNamespace is returned when Config.Namespace is empty.
var ErrNamespace = errors.New("metrics: namespace is required")

// Recorder receives analysis events.
type Recorder interface {
	// AnalysisFinished counts one analysis by status and observes its
	// duration.
	AnalysisFinished(status string, took time.Duration)
	// ConstraintOutcome counts one constraint examination of the ray
	// enumerator (applied, deferred, trivial, forced).
	ConstraintOutcome(outcome string)
	// Enumerated records the passes and final ray count of one enumeration.
	Enumerated(passes, rays int)
	// CacheAccess counts a conservation-law cache lookup.
	CacheAccess(hit bool)
	// JobsActive moves the running-jobs gauge by delta.
	JobsActive(delta int)
}

// Config configures the Prometheus recorder.
type Config struct {
	Namespace      string `mapstructure:"namespace" yaml:"namespace" json:"namespace"`
	RuntimeMetrics bool   `mapstructure:"runtime" yaml:"runtime" json:"runtime"`
}

// Prometheus implements Recorder on a private registry.
type Prometheus struct {
	registry *prometheus.Registry

	analyses    *prometheus.CounterVec
	duration    prometheus.Histogram
	constraints *prometheus.CounterVec
	passes      prometheus.Histogram
	rays        prometheus.Histogram
	cache       *prometheus.CounterVec
	jobs        prometheus.Gauge
}

// NewPrometheus registers the crntk metrics under cfg.Namespace.
func NewPrometheus(cfg Config) (*Prometheus, error) {
	if cfg.Namespace == "" {
		return nil, ErrNamespace
	}
	reg := prometheus.NewRegistry()
	if cfg.RuntimeMetrics {
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{Namespace: cfg.Namespace}),
		)
	}

	ns := cfg.Namespace
	p := &Prometheus{
		registry: reg,
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns, Name: "analyses_total",
			Help: "Analyses by final status.",
		}, []string{"status"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: ns, Name: "analysis_duration_seconds",
			Help:    "Wall time of one analysis.",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
		constraints: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns, Subsystem: "ddm", Name: "constraints_total",
			Help: "Constraint examinations by outcome.",
		}, []string{"outcome"}),
		passes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: ns, Subsystem: "ddm", Name: "passes",
			Help:    "Outer passes per enumeration.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}),
		rays: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: ns, Subsystem: "ddm", Name: "rays",
			Help:    "Extreme rays per enumeration.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}),
		cache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns, Subsystem: "cache", Name: "requests_total",
			Help: "Conservation-law cache lookups by result.",
		}, []string{"result"}),
		jobs: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns, Name: "jobs_active",
			Help: "Background analyses currently running.",
		}),
	}
	reg.MustRegister(p.analyses, p.duration, p.constraints, p.passes, p.rays, p.cache, p.jobs)

	return p, nil
}

// Handler serves the registry in the Prometheus exposition format.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}

// Gatherer exposes the registry for tests and custom exporters.
func (p *Prometheus) Gatherer() prometheus.Gatherer { return p.registry }

func (p *Prometheus) AnalysisFinished(status string, took time.Duration) {
	p.analyses.WithLabelValues(status).Inc()
	p.duration.Observe(took.Seconds())
}

func (p *Prometheus) ConstraintOutcome(outcome string) {
	p.constraints.WithLabelValues(outcome).Inc()
}

func (p *Prometheus) Enumerated(passes, rays int) {
	p.passes.Observe(float64(passes))
	p.rays.Observe(float64(rays))
}

func (p *Prometheus) CacheAccess(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	p.cache.WithLabelValues(result).Inc()
}

func (p *Prometheus) JobsActive(delta int) { p.jobs.Add(float64(delta)) }

type nop struct{}

func (nop) AnalysisFinished(string, time.Duration) {}
func (nop) ConstraintOutcome(string)               {}
func (nop) Enumerated(int, int)                    {}
func (nop) CacheAccess(bool)                       {}
func (nop) JobsActive(int)                         {}

// Nop returns a Recorder that discards everything.
func Nop() Recorder { return nop{} }
