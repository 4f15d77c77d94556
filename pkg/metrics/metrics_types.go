package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// MetricFamily and Metric alias the exposition types returned by Gather.
type (
	MetricFamily = dto.MetricFamily
	Metric       = dto.Metric
)

// Registry holds all metrics for the routing parser.
type Registry struct {
	// Document-level metrics
	DocumentsParsed *prometheus.CounterVec
	ParseDuration   prometheus.Histogram

	// Line-level metrics
	NetsParsed      prometheus.Counter
	NodeLinesParsed prometheus.Counter
	MalformedLines  prometheus.Counter

	// Tree reconstruction metrics
	MissingRoots        prometheus.Counter
	BranchMarkers       prometheus.Counter
	AdjacencyReattaches prometheus.Counter
	RootFallbacks       prometheus.Counter

	registry *prometheus.Registry
}

// NewRegistry creates a Registry with all metrics registered against a
// dedicated prometheus registry.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}
	r.initParseMetrics()
	r.initTreeMetrics()
	return r
}

// Gather exposes the collected metric families, e.g. for export or
// assertions in tests.
func (r *Registry) Gather() ([]*MetricFamily, error) {
	return r.registry.Gather()
}

// PrometheusRegistry returns the underlying registry for callers that
// want to mount an exposition handler.
func (r *Registry) PrometheusRegistry() *prometheus.Registry {
	return r.registry
}
