package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/CelIsDividing/FPGA-Visualizer/pkg/analysis"
	"github.com/CelIsDividing/FPGA-Visualizer/pkg/logging"
	"github.com/CelIsDividing/FPGA-Visualizer/pkg/metrics"
	"github.com/CelIsDividing/FPGA-Visualizer/pkg/parser"
	"github.com/CelIsDividing/FPGA-Visualizer/pkg/routing"
	"github.com/CelIsDividing/FPGA-Visualizer/pkg/visualization"
)

func main() {
	input := flag.String("input", "", "Routing file to parse (.route, .route.sz)")
	configPath := flag.String("config", "", "Optional YAML config file")
	workers := flag.Int("workers", 0, "Tree reconstruction workers (overrides config)")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	treesOut := flag.String("trees-out", "", "Write routing trees JSON to this path")
	congestionOut := flag.String("congestion-out", "", "Write congestion JSON to this path")
	showStats := flag.Bool("stats", false, "Print routing tree statistics")
	showConflicts := flag.Bool("conflicts", false, "Print conflict graph summary")
	showMetrics := flag.Bool("metrics", false, "Print parse metrics")
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "usage: routeparse -input design.route [flags]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	cfg.ShowStats = cfg.ShowStats || *showStats
	cfg.ShowConflicts = cfg.ShowConflicts || *showConflicts
	cfg.ShowMetrics = cfg.ShowMetrics || *showMetrics
	if *treesOut != "" {
		cfg.TreesOut = *treesOut
	}
	if *congestionOut != "" {
		cfg.CongestionOut = *congestionOut
	}

	logger := logging.NewJSONLogger(os.Stderr, logging.ParseLevel(cfg.LogLevel))
	registry := metrics.NewRegistry()

	p := parser.New(
		parser.WithLogger(logger),
		parser.WithMetrics(registry),
		parser.WithWorkers(cfg.Workers),
	)

	fmt.Printf("📂 Parsing %s...\n", *input)
	doc, err := p.ParseFile(*input)
	if err != nil {
		log.Fatalf("❌ Failed to parse routing file: %v", err)
	}

	fmt.Printf("✅ Parsed %d nets (document %s)\n", len(doc.Nets), doc.DocumentID)
	fmt.Printf("   Wire length (approx): %d\n", doc.TotalWireLength)
	fmt.Printf("   Congested segments:   %d\n", len(doc.Congestion))
	fmt.Printf("   Diagnostics:          %d\n", len(doc.Diagnostics))

	if cfg.ShowStats {
		printStats(doc)
	}
	if cfg.ShowConflicts {
		printConflicts(doc)
	}
	if cfg.TreesOut != "" {
		if err := writeTrees(cfg.TreesOut, doc); err != nil {
			log.Fatalf("❌ Failed to write trees: %v", err)
		}
		fmt.Printf("🌳 Routing trees written to %s\n", cfg.TreesOut)
	}
	if cfg.CongestionOut != "" {
		if err := writeCongestion(cfg.CongestionOut, doc); err != nil {
			log.Fatalf("❌ Failed to write congestion: %v", err)
		}
		fmt.Printf("🔥 Congestion map written to %s\n", cfg.CongestionOut)
	}
	if cfg.ShowMetrics {
		printMetrics(registry)
	}
}

func printStats(doc *routing.Document) {
	stats := analysis.CalculateRouteStats(doc)
	fmt.Printf("\n📊 Routing tree statistics\n")
	fmt.Printf("   Nets with trees:    %d/%d\n", stats.NetsWithTrees, stats.TotalNets)
	fmt.Printf("   Nets with branches: %d\n", stats.NetsWithBranches)
	fmt.Printf("   Max fanout:         %d\n", stats.MaxFanout)
	fmt.Printf("   Avg path length:    %.2f\n", stats.AvgPathLength)

	cong := analysis.CalculateCongestionStats(doc.Congestion)
	if cong.TotalSegments > 0 {
		fmt.Printf("   Congestion max/avg: %.2f/%.2f (%d segments > %.1f)\n",
			cong.Max, cong.Avg, cong.CongestedSegments, analysis.CongestionThreshold)
	}
}

func printConflicts(doc *routing.Document) {
	graph := analysis.BuildConflictGraph(doc)
	edges := graph.Edges()
	fmt.Printf("\n⚔️  Conflict graph: %d nets, %d conflicts\n", len(graph.Nets()), len(edges))
	for _, e := range edges {
		fmt.Printf("   %s ↔ %s %v\n", e.NetA, e.NetB, e.Kinds)
	}
}

func writeTrees(path string, doc *routing.Document) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return visualization.WriteJSON(f, doc)
}

func writeCongestion(path string, doc *routing.Document) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	export := visualization.ExportCongestion(doc.Congestion)
	fmt.Fprintln(f, "{")
	keys := visualization.SortedKeys(export)
	for i, key := range keys {
		comma := ","
		if i == len(keys)-1 {
			comma = ""
		}
		fmt.Fprintf(f, "  %q: %.6f%s\n", key, export[key], comma)
	}
	fmt.Fprintln(f, "}")
	return nil
}

func printMetrics(registry *metrics.Registry) {
	families, err := registry.Gather()
	if err != nil {
		log.Fatalf("❌ Failed to gather metrics: %v", err)
	}
	fmt.Printf("\n📈 Parse metrics\n")
	for _, family := range families {
		for _, m := range family.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				fmt.Printf("   %s%s = %.0f\n", family.GetName(), labelSuffix(m), m.GetCounter().GetValue())
			case m.GetHistogram() != nil:
				h := m.GetHistogram()
				fmt.Printf("   %s count=%d sum=%.4fs\n", family.GetName(), h.GetSampleCount(), h.GetSampleSum())
			}
		}
	}
}

func labelSuffix(m *metrics.Metric) string {
	if len(m.GetLabel()) == 0 {
		return ""
	}
	out := "{"
	for i, l := range m.GetLabel() {
		if i > 0 {
			out += ","
		}
		out += l.GetName() + "=" + l.GetValue()
	}
	return out + "}"
}
