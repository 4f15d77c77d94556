package metrics

import (
	"time"
)

// RecordDocument records the outcome and duration of one document parse.
func (r *Registry) RecordDocument(status string, duration time.Duration) {
	r.DocumentsParsed.WithLabelValues(status).Inc()
	r.ParseDuration.Observe(duration.Seconds())
}

// RecordNet records one delimited net and its tree builder outcome.
func (r *Registry) RecordNet(hasRoot bool, branchMarkers, adjacencyReattaches, rootFallbacks int) {
	r.NetsParsed.Inc()
	if !hasRoot {
		r.MissingRoots.Inc()
	}
	r.BranchMarkers.Add(float64(branchMarkers))
	r.AdjacencyReattaches.Add(float64(adjacencyReattaches))
	r.RootFallbacks.Add(float64(rootFallbacks))
}
