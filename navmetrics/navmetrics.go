// Package navmetrics exports navigation diagnostics as Prometheus
// metrics.
//
//	collector := navmetrics.New(navmetrics.WithRegistry(reg))
//	engine, err := navi.New(
//	    navi.WithViewLookup(views),
//	    navi.WithDiagnostics(collector),
//	)
//
// Metrics collected:
//   - navi_activations_total: activations by engine id and route
//   - navi_unmatched_total: paths with no route, by engine id
//   - navi_view_missing_total: routes whose view could not be found, by engine id and view
//   - navi_routes_registered: registered routes, by engine id
package navmetrics

import (
	"fmt"

	"github.com/lestrrat-go/navi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Config configures the collector.
type Config struct {
	// Namespace is the metrics namespace (default: "navi").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

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
		Namespace: "navi",
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Collector is a navi.DiagnosticHandler that counts diagnostic events.
type Collector struct {
	activations *prometheus.CounterVec
	unmatched   *prometheus.CounterVec
	viewMissing *prometheus.CounterVec
	registered  *prometheus.GaugeVec
}

// New creates a Collector and registers its metrics.
func New(options ...Option) *Collector {
	config := defaultConfig()
	for _, option := range options {
		option(&config)
	}
	factory := promauto.With(config.Registry)

	return &Collector{
		activations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "activations_total",
			Help:        "Total number of successful route activations",
			ConstLabels: config.ConstLabels,
		}, []string{"id", "route"}),

		unmatched: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "unmatched_total",
			Help:        "Total number of paths that matched no route",
			ConstLabels: config.ConstLabels,
		}, []string{"id"}),

		viewMissing: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "view_missing_total",
			Help:        "Total number of activations aborted because the view was not found",
			ConstLabels: config.ConstLabels,
		}, []string{"id", "view"}),

		registered: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "routes_registered",
			Help:        "Number of registered routes",
			ConstLabels: config.ConstLabels,
		}, []string{"id"}),
	}
}

func (c *Collector) HandleDiagnostic(ev navi.DiagnosticEvent) {
	id := field(ev, "id")
	switch ev.Kind {
	case navi.DiagActivated:
		c.activations.WithLabelValues(id, field(ev, "route")).Inc()
	case navi.DiagNoRoute:
		c.unmatched.WithLabelValues(id).Inc()
	case navi.DiagViewMissing:
		c.viewMissing.WithLabelValues(id, field(ev, "viewId")).Inc()
	case navi.DiagRouteRegistered:
		c.registered.WithLabelValues(id).Inc()
	}
}

func field(ev navi.DiagnosticEvent, key string) string {
	v, ok := ev.Fields[key]
	if !ok {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
