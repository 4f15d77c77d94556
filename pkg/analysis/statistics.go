package analysis

import (
	"sort"

	"github.com/CelIsDividing/FPGA-Visualizer/pkg/routing"
)

// RouteStats aggregates tree-level figures over a parsed document.
type RouteStats struct {
	TotalNets        int
	TotalRecords     int
	NetsWithTrees    int
	NetsWithBranches int
	MaxFanout        int
	TotalPaths       int
	AvgPathLength    float64
	TotalWireLength  int
}

// CalculateRouteStats walks every net's tree once. Nets without a tree
// contribute records but no paths.
func CalculateRouteStats(doc *routing.Document) RouteStats {
	stats := RouteStats{
		TotalNets:       len(doc.Nets),
		TotalWireLength: doc.TotalWireLength,
	}

	totalPathLength := 0
	for _, net := range doc.Nets {
		stats.TotalRecords += len(net.Records)
		if net.Tree == nil {
			continue
		}
		stats.NetsWithTrees++

		fanout := 0
		for path := range net.Tree.Paths() {
			fanout++
			totalPathLength += len(path)
		}
		if fanout > 1 {
			stats.NetsWithBranches++
		}
		if fanout > stats.MaxFanout {
			stats.MaxFanout = fanout
		}
		stats.TotalPaths += fanout
	}

	if stats.TotalPaths > 0 {
		stats.AvgPathLength = float64(totalPathLength) / float64(stats.TotalPaths)
	}
	return stats
}

// CongestionThreshold is the intensity above which a segment counts as
// congested.
const CongestionThreshold = 0.8

// CongestionStats summarizes a normalized congestion map.
type CongestionStats struct {
	Max               float64
	Min               float64
	Avg               float64
	CongestedSegments int
	TotalSegments     int
}

// CalculateCongestionStats summarizes the map; an empty map yields the
// zero value.
func CalculateCongestionStats(m routing.CongestionMap) CongestionStats {
	stats := CongestionStats{TotalSegments: len(m)}
	if len(m) == 0 {
		return stats
	}

	sum := 0.0
	first := true
	for _, v := range m {
		sum += v
		if first || v > stats.Max {
			stats.Max = v
		}
		if first || v < stats.Min {
			stats.Min = v
		}
		first = false
		if v > CongestionThreshold {
			stats.CongestedSegments++
		}
	}
	stats.Avg = sum / float64(len(m))
	return stats
}

// HighCongestionSegments returns the boundary-form keys of segments
// whose intensity exceeds the threshold, sorted for stable output.
func HighCongestionSegments(m routing.CongestionMap, threshold float64) []string {
	var out []string
	for key, v := range m {
		if v > threshold {
			out = append(out, key.String())
		}
	}
	sort.Strings(out)
	return out
}
