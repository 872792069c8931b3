package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Option applies a configuration option to the Collector.
type Option func(*Collector)

// WithNamespace sets the namespace for all metrics.
func WithNamespace(namespace string) Option {
	return func(c *Collector) {
		if namespace != "" {
			c.namespace = namespace
		}
	}
}

// WithSubsystem sets the subsystem for all metrics.
func WithSubsystem(subsystem string) Option {
	return func(c *Collector) {
		if subsystem != "" {
			c.subsystem = subsystem
		}
	}
}

// WithDurationBuckets sets the swipe duration histogram buckets, in seconds.
func WithDurationBuckets(buckets []float64) Option {
	return func(c *Collector) {
		if len(buckets) > 0 {
			c.durationBuckets = buckets
		}
	}
}

// WithDistanceBuckets sets the swipe distance histogram buckets, in pixels.
func WithDistanceBuckets(buckets []float64) Option {
	return func(c *Collector) {
		if len(buckets) > 0 {
			c.distanceBuckets = buckets
		}
	}
}

// WithScaleBuckets sets the pinch scale histogram buckets.
func WithScaleBuckets(buckets []float64) Option {
	return func(c *Collector) {
		if len(buckets) > 0 {
			c.scaleBuckets = buckets
		}
	}
}

// WithConstLabels adds constant labels to all metrics.
func WithConstLabels(labels map[string]string) Option {
	return func(c *Collector) {
		if labels != nil {
			c.constLabels = labels
		}
	}
}

// WithPrometheusRegistry sets a custom Prometheus registry.
func WithPrometheusRegistry(registry prometheus.Registerer) Option {
	return func(c *Collector) {
		if registry != nil {
			c.registry = registry
		}
	}
}
