package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initParseMetrics() {
	r.DocumentsParsed = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "routeparse_documents_total",
			Help: "Total number of routing documents parsed",
		},
		[]string{"status"},
	)

	r.ParseDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "routeparse_duration_seconds",
			Help:    "Full document parse duration in seconds",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 10.0},
		},
	)

	r.NetsParsed = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "routeparse_nets_total",
			Help: "Total number of nets delimited",
		},
	)

	r.NodeLinesParsed = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "routeparse_node_lines_total",
			Help: "Total number of node lines parsed successfully",
		},
	)

	r.MalformedLines = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "routeparse_malformed_lines_total",
			Help: "Total number of node lines skipped as malformed",
		},
	)
}

func (r *Registry) initTreeMetrics() {
	r.MissingRoots = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "routeparse_missing_roots_total",
			Help: "Total number of nets without a SOURCE record",
		},
	)

	r.BranchMarkers = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "routeparse_branch_markers_total",
			Help: "Total number of repeated-id branch markers honored",
		},
	)

	r.AdjacencyReattaches = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "routeparse_adjacency_reattaches_total",
			Help: "Total number of sub-paths reattached via grid adjacency",
		},
	)

	r.RootFallbacks = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "routeparse_root_fallbacks_total",
			Help: "Total number of sub-paths reattached at the root for lack of evidence",
		},
	)
}
