// Package metrics records overlay engine counters with Prometheus.
package metrics

import (
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"go.trai.ch/brandlay/internal/core/ports"
)

const namespace = "brandlay"

var _ ports.Metrics = (*Recorder)(nil)

// Recorder implements ports.Metrics on a private Prometheus registry, so that
// concurrent sessions never share counters.
type Recorder struct {
	registry      *prometheus.Registry
	cacheLookups  *prometheus.CounterVec
	invalidations prometheus.Counter
	redirects     *prometheus.CounterVec
}

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		cacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_lookups_total",
				Help:      "Number of cache lookups by cache and result.",
			},
			[]string{"cache", "result"},
		),
		invalidations: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_invalidations_total",
				Help:      "Number of times the brand and path caches were dropped.",
			},
		),
		redirects: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "resolve_outcomes_total",
				Help:      "Number of brand-governed resolutions by outcome.",
			},
			[]string{"kind"},
		),
	}
}

// Registry exposes the underlying registry for scraping.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// CacheLookup records a hit or a miss on the named cache.
func (r *Recorder) CacheLookup(cache string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	r.cacheLookups.WithLabelValues(cache, result).Inc()
}

// Invalidation records a wholesale cache invalidation.
func (r *Recorder) Invalidation() {
	r.invalidations.Inc()
}

// Redirect records the outcome of a brand-governed resolution.
func (r *Recorder) Redirect(kind string) {
	r.redirects.WithLabelValues(kind).Inc()
}

// Sample is one counter value with its labels flattened into the name.
type Sample struct {
	Name  string
	Value float64
}

// Summary returns every non-zero counter, sorted by name.
func (r *Recorder) Summary() ([]Sample, error) {
	families, err := r.registry.Gather()
	if err != nil {
		return nil, err
	}

	var samples []Sample
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			value := metric.GetCounter().GetValue()
			if value == 0 {
				continue
			}
			name := family.GetName()
			for _, label := range metric.GetLabel() {
				name += "{" + label.GetName() + "=" + label.GetValue() + "}"
			}
			samples = append(samples, Sample{Name: name, Value: value})
		}
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i].Name < samples[j].Name })
	return samples, nil
}
