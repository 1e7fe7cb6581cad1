// Package metrics exposes container mutation activity as Prometheus
// metrics. A Collector subscribes to a container's change channel and
// counts events by kind, alongside a gauge of the container's current size.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vireo-dev/vireo/pkg/change"
)

// Config configures a Collector.
type Config struct {
	// Namespace is the metrics namespace (default: "vireo").
	Namespace string

	// Subsystem is the metrics subsystem (default: "collections").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures the Collector.
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
		Namespace: "vireo",
		Subsystem: "collections",
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Collector holds the Prometheus metrics for a set of observed containers.
type Collector struct {
	changesTotal *prometheus.CounterVec
	size         *prometheus.GaugeVec
}

// NewCollector creates a Collector and registers its metrics.
func NewCollector(opts ...Option) *Collector {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	factory := promauto.With(cfg.Registry)

	return &Collector{
		changesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "changes_total",
			Help:        "Total change events emitted, by container and kind.",
			ConstLabels: cfg.ConstLabels,
		}, []string{"container", "kind"}),
		size: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "size",
			Help:        "Current element count, by container.",
			ConstLabels: cfg.ConstLabels,
		}, []string{"container"}),
	}
}

// Observable is the container surface a Collector needs: a change channel
// and a current element count. Every container in the collections,
// concurrent, and view packages satisfies it.
type Observable[T any] interface {
	OnCollectionChanged(fn func(change.Change[T])) *change.Subscription
	Len() int
}

// Observe wires src into the collector under the given container name.
// Cancel the returned subscription to stop observing.
func Observe[T any](c *Collector, name string, src Observable[T]) *change.Subscription {
	c.size.WithLabelValues(name).Set(float64(src.Len()))
	return src.OnCollectionChanged(func(ev change.Change[T]) {
		c.changesTotal.WithLabelValues(name, ev.Kind.String()).Inc()
		c.size.WithLabelValues(name).Set(float64(src.Len()))
	})
}
