package visualization

import (
	"sort"

	"golang.org/x/exp/maps"

	"github.com/CelIsDividing/FPGA-Visualizer/pkg/routing"
)

// ExportCongestion renders a congestion map with string keys in the
// boundary form consumed by chart frontends, e.g. "CHANX_4_0_2".
// Values stay in [0, 1].
func ExportCongestion(m routing.CongestionMap) map[string]float64 {
	out := make(map[string]float64, len(m))
	for key, v := range m {
		out[key.String()] = v
	}
	return out
}

// SortedKeys returns the exported keys in lexical order, for stable
// serialization and reporting.
func SortedKeys(m map[string]float64) []string {
	keys := maps.Keys(m)
	sort.Strings(keys)
	return keys
}

// Grid projects a congestion map onto a width x height intensity grid.
// A cell holds the maximum intensity among the channel-track entries at
// its coordinates; entries outside the grid are dropped.
func Grid(m routing.CongestionMap, width, height int) [][]float64 {
	grid := make([][]float64, height)
	for y := range grid {
		grid[y] = make([]float64, width)
	}
	for key, v := range m {
		if key.X < 0 || key.X >= width || key.Y < 0 || key.Y >= height {
			continue
		}
		if v > grid[key.Y][key.X] {
			grid[key.Y][key.X] = v
		}
	}
	return grid
}
