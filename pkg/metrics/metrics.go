// Package metrics exports Prometheus counters for observable geometry values.
//
// A Recorder attaches to any observe.Observable and counts its
// notifications under a source label:
//
//	rec := metrics.NewRecorder(metrics.WithRegistry(reg))
//	rec.Watch("outline", points)
//	rec.WatchSize("outline", points)
//
// Metrics collected:
//   - geom_notifications_total: Counter of change notifications by source
//   - geom_collection_size: Gauge of element count by source
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"

	"github.com/vango-dev/geom/pkg/observe"
)

// Config configures a Recorder.
type Config struct {
	// Namespace is the metrics namespace (default: "geom").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures a Recorder.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "geom",
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Sized is an observable with an element count, such as a collection.
type Sized interface {
	observe.Observable
	Len() int
}

// Recorder holds the notification metrics.
type Recorder struct {
	notifications *prometheus.CounterVec
	sizes         *prometheus.GaugeVec
}

// NewRecorder registers the metrics with the configured registry.
// Registering twice on the same registry panics, as with promauto.
func NewRecorder(opts ...Option) *Recorder {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if config.Registry == nil {
		config.Registry = prometheus.DefaultRegisterer
	}

	factory := promauto.With(config.Registry)

	return &Recorder{
		notifications: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "notifications_total",
			Help:        "Total number of change notifications by source",
			ConstLabels: config.ConstLabels,
		}, []string{"source"}),

		sizes: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "collection_size",
			Help:        "Number of elements held by a collection",
			ConstLabels: config.ConstLabels,
		}, []string{"source"}),
	}
}

// Watch counts every notification of o under source.
func (r *Recorder) Watch(source string, o observe.Observable) observe.Revoke {
	counter := r.notifications.WithLabelValues(source)
	return o.Subscribe(counter.Inc)
}

// WatchSize keeps the size gauge of source in step with s.
func (r *Recorder) WatchSize(source string, s Sized) observe.Revoke {
	gauge := r.sizes.WithLabelValues(source)
	gauge.Set(float64(s.Len()))
	return s.Subscribe(func() {
		gauge.Set(float64(s.Len()))
	})
}

// Notifications returns the current notification count for source.
func (r *Recorder) Notifications(source string) float64 {
	var m dto.Metric
	if err := r.notifications.WithLabelValues(source).Write(&m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}
