package metrics

import (
	"testing"
	"time"
)

func gatherCounter(t *testing.T, r *Registry, name string) float64 {
	t.Helper()
	families, err := r.Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		total := 0.0
		for _, m := range family.GetMetric() {
			total += m.GetCounter().GetValue()
		}
		return total
	}
	t.Fatalf("Metric %s not registered", name)
	return 0
}

func TestRecordDocument(t *testing.T) {
	r := NewRegistry()

	r.RecordDocument("success", 50*time.Millisecond)
	r.RecordDocument("success", 10*time.Millisecond)
	r.RecordDocument("error", time.Millisecond)

	if got := gatherCounter(t, r, "routeparse_documents_total"); got != 3 {
		t.Errorf("documents_total = %f, want 3", got)
	}

	families, err := r.Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}
	for _, family := range families {
		if family.GetName() != "routeparse_parse_duration_seconds" {
			continue
		}
		if count := family.GetMetric()[0].GetHistogram().GetSampleCount(); count != 3 {
			t.Errorf("Histogram sample count = %d, want 3", count)
		}
		return
	}
	t.Fatal("Duration histogram not registered")
}

func TestRecordDocument_StatusLabels(t *testing.T) {
	r := NewRegistry()
	r.RecordDocument("success", time.Millisecond)
	r.RecordDocument("error", time.Millisecond)

	families, err := r.Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}
	for _, family := range families {
		if family.GetName() != "routeparse_documents_total" {
			continue
		}
		if len(family.GetMetric()) != 2 {
			t.Errorf("Expected 2 status series, got %d", len(family.GetMetric()))
		}
		return
	}
	t.Fatal("documents_total not registered")
}

func TestRecordNet(t *testing.T) {
	r := NewRegistry()

	r.RecordNet(true, 2, 1, 0)
	r.RecordNet(false, 0, 0, 1)

	checks := map[string]float64{
		"routeparse_nets_total":                 2,
		"routeparse_missing_roots_total":        1,
		"routeparse_branch_markers_total":       2,
		"routeparse_adjacency_reattaches_total": 1,
		"routeparse_root_fallbacks_total":       1,
	}
	for name, want := range checks {
		if got := gatherCounter(t, r, name); got != want {
			t.Errorf("%s = %f, want %f", name, got, want)
		}
	}
}

func TestRegistriesAreIndependent(t *testing.T) {
	a := NewRegistry()
	b := NewRegistry()

	a.NetsParsed.Inc()

	if got := gatherCounter(t, b, "routeparse_nets_total"); got != 0 {
		t.Errorf("Registry b saw registry a's increments: %f", got)
	}
	if a.PrometheusRegistry() == b.PrometheusRegistry() {
		t.Error("Registries must not share state")
	}
}
