package visualization

import (
	"testing"

	"github.com/CelIsDividing/FPGA-Visualizer/pkg/routing"
)

func TestExportCongestion(t *testing.T) {
	m := routing.CongestionMap{
		{Kind: routing.KindChanx, X: 4, Y: 0, Track: 2}: 1.0,
		{Kind: routing.KindChany, X: 1, Y: 3, Track: 0}: 0.5,
	}

	export := ExportCongestion(m)
	if len(export) != 2 {
		t.Fatalf("Expected 2 keys, got %d", len(export))
	}
	if export["CHANX_4_0_2"] != 1.0 {
		t.Errorf("CHANX_4_0_2 = %f, want 1.0", export["CHANX_4_0_2"])
	}
	if export["CHANY_1_3_0"] != 0.5 {
		t.Errorf("CHANY_1_3_0 = %f, want 0.5", export["CHANY_1_3_0"])
	}
}

func TestSortedKeys(t *testing.T) {
	keys := SortedKeys(map[string]float64{
		"CHANY_1_3_0": 0.5,
		"CHANX_4_0_2": 1.0,
		"CHANX_0_0_1": 0.2,
	})
	want := []string{"CHANX_0_0_1", "CHANX_4_0_2", "CHANY_1_3_0"}
	for i, k := range want {
		if keys[i] != k {
			t.Fatalf("Keys not sorted: got %v", keys)
		}
	}
}

func TestGrid(t *testing.T) {
	m := routing.CongestionMap{
		{Kind: routing.KindChanx, X: 1, Y: 0, Track: 0}: 0.4,
		{Kind: routing.KindChany, X: 1, Y: 0, Track: 2}: 0.9, // same cell, higher
		{Kind: routing.KindChanx, X: 9, Y: 9, Track: 0}: 1.0, // out of range
	}

	grid := Grid(m, 3, 2)
	if len(grid) != 2 || len(grid[0]) != 3 {
		t.Fatalf("Expected 2x3 grid, got %dx%d", len(grid), len(grid[0]))
	}
	if grid[0][1] != 0.9 {
		t.Errorf("Cell (1,0) = %f, want the max intensity 0.9", grid[0][1])
	}
	if grid[1][2] != 0 {
		t.Errorf("Untouched cell must stay 0, got %f", grid[1][2])
	}
}
