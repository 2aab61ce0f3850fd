// Package metrics exposes prometheus collectors for level loading.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "dungeon"

// Collectors groups the level loading metrics.
// A nil *Collectors is valid and records nothing.
type Collectors struct {
	levelsLoaded    prometheus.Counter
	loadFailures    *prometheus.CounterVec
	entitiesCreated *prometheus.CounterVec
	loadDuration    prometheus.Histogram
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) (*Collectors, error) {
	c := &Collectors{
		levelsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "levels_loaded_total",
			Help:      "Levels loaded successfully.",
		}),
		loadFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "level_load_failures_total",
			Help:      "Rejected level loads by reason.",
		}, []string{"reason"}),
		entitiesCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entities_created_total",
			Help:      "Entities created by the loader, by variant.",
		}, []string{"variant"}),
		loadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "level_load_duration_seconds",
			Help:      "Time spent turning a description into a dungeon.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
	}

	for _, col := range []prometheus.Collector{c.levelsLoaded, c.loadFailures, c.entitiesCreated, c.loadDuration} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// LevelLoaded records a successful load and its duration.
func (c *Collectors) LevelLoaded(elapsed time.Duration) {
	if c == nil {
		return
	}
	c.levelsLoaded.Inc()
	c.loadDuration.Observe(elapsed.Seconds())
}

// LoadFailed records a rejected load.
func (c *Collectors) LoadFailed(reason string) {
	if c == nil {
		return
	}
	c.loadFailures.WithLabelValues(reason).Inc()
}

// EntityCreated records one created entity of the given variant.
func (c *Collectors) EntityCreated(variant string) {
	if c == nil {
		return
	}
	c.entitiesCreated.WithLabelValues(variant).Inc()
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
