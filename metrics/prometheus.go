// Package metrics counts recognized gestures with Prometheus.
package metrics

import (
	"github.com/google/uuid"
	"github.com/phanxgames/gesture"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default histogram buckets.
var (
	defaultDurationBuckets = []float64{0.025, 0.05, 0.1, 0.15, 0.2, 0.3, 0.5}   //nolint:gochecknoglobals // read-only defaults
	defaultDistanceBuckets = []float64{25, 50, 75, 100, 150, 200, 300, 500}     //nolint:gochecknoglobals // read-only defaults
	defaultScaleBuckets    = []float64{0.25, 0.5, 0.75, 0.9, 1.1, 1.5, 2, 3, 4} //nolint:gochecknoglobals // read-only defaults
)

// Collector is a gesture.EventSink that records every gesture a binding
// fires.
//
// Metrics:
//   - gestures_total{kind, direction}: every emitted gesture; direction is
//     "none" except for swipes
//   - sessions_total: distinct gesture sessions that emitted anything
//   - swipe_duration_seconds, swipe_distance_pixels: swipe histograms
//   - pinch_scale: scale of every pinch update
//   - refreshes_in_flight: refreshes started and not yet done
type Collector struct {
	namespace       string
	subsystem       string
	durationBuckets []float64
	distanceBuckets []float64
	scaleBuckets    []float64
	constLabels     map[string]string
	registry        prometheus.Registerer

	gestures      *prometheus.CounterVec
	sessions      prometheus.Counter
	swipeDuration prometheus.Histogram
	swipeDistance prometheus.Histogram
	pinchScale    prometheus.Histogram
	refreshing    prometheus.Gauge

	lastSession uuid.UUID
}

var _ gesture.EventSink = (*Collector)(nil)

// NewCollector creates a Collector and registers its metrics.
func NewCollector(opts ...Option) *Collector {
	c := &Collector{
		namespace:       "gesture",
		durationBuckets: defaultDurationBuckets,
		distanceBuckets: defaultDistanceBuckets,
		scaleBuckets:    defaultScaleBuckets,
		constLabels:     make(map[string]string),
		registry:        prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.initializeMetrics()

	return c
}

func (c *Collector) initializeMetrics() {
	auto := promauto.With(c.registry)

	c.gestures = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   c.namespace,
		Subsystem:   c.subsystem,
		Name:        "gestures_total",
		Help:        "Total number of recognized gestures by kind and swipe direction",
		ConstLabels: c.constLabels,
	}, []string{"kind", "direction"})

	c.sessions = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   c.namespace,
		Subsystem:   c.subsystem,
		Name:        "sessions_total",
		Help:        "Total number of gesture sessions that produced at least one gesture",
		ConstLabels: c.constLabels,
	})

	c.swipeDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   c.namespace,
		Subsystem:   c.subsystem,
		Name:        "swipe_duration_seconds",
		Help:        "Histogram of swipe durations from press to release",
		Buckets:     c.durationBuckets,
		ConstLabels: c.constLabels,
	})

	c.swipeDistance = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   c.namespace,
		Subsystem:   c.subsystem,
		Name:        "swipe_distance_pixels",
		Help:        "Histogram of swipe travel in pixels",
		Buckets:     c.distanceBuckets,
		ConstLabels: c.constLabels,
	})

	c.pinchScale = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   c.namespace,
		Subsystem:   c.subsystem,
		Name:        "pinch_scale",
		Help:        "Histogram of reported pinch scales",
		Buckets:     c.scaleBuckets,
		ConstLabels: c.constLabels,
	})

	c.refreshing = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   c.namespace,
		Subsystem:   c.subsystem,
		Name:        "refreshes_in_flight",
		Help:        "Pull-to-refresh operations started and not yet completed",
		ConstLabels: c.constLabels,
	})
}

// EmitGesture implements gesture.EventSink.
func (c *Collector) EmitGesture(e gesture.Event) {
	if e.SessionID != c.lastSession {
		c.lastSession = e.SessionID
		c.sessions.Inc()
	}
	c.gestures.WithLabelValues(e.Kind.String(), e.Direction.String()).Inc()

	switch e.Kind {
	case gesture.KindSwipe:
		c.swipeDuration.Observe(e.Elapsed.Seconds())
		c.swipeDistance.Observe(e.Distance)
	case gesture.KindPinch:
		c.pinchScale.Observe(e.Scale)
	case gesture.KindRefresh:
		c.refreshing.Inc()
	}
}

// RefreshDone marks one refresh as finished. Call it alongside
// gesture.Refresh.Done.
func (c *Collector) RefreshDone() {
	c.refreshing.Dec()
}
