package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/CelIsDividing/FPGA-Visualizer/pkg/parser"
)

func main() {
	nets := flag.Int("nets", 5000, "Number of synthetic nets to generate")
	branches := flag.Int("branches", 3, "Branches per net")
	trunk := flag.Int("trunk", 20, "Channel nodes per trunk")
	workers := flag.Int("workers", 8, "Workers for the parallel run")
	seed := flag.Int64("seed", 42, "Generator seed")
	flag.Parse()

	fmt.Printf("🔥 Routing Parser Benchmark\n")
	fmt.Printf("===========================\n\n")
	fmt.Printf("Configuration:\n")
	fmt.Printf("  Nets:     %d\n", *nets)
	fmt.Printf("  Branches: %d\n", *branches)
	fmt.Printf("  Trunk:    %d\n", *trunk)
	fmt.Printf("  Workers:  %d\n\n", *workers)

	fmt.Printf("📝 Generating synthetic routing document...\n")
	doc := generateDocument(rand.New(rand.NewSource(*seed)), *nets, *branches, *trunk)
	fmt.Printf("  ✅ %d bytes\n\n", len(doc))

	// Benchmark 1: sequential reconstruction
	fmt.Printf("🐢 Benchmark 1: Sequential parse\n")
	seqDuration := run(parser.New(), doc, *nets)

	// Benchmark 2: parallel reconstruction
	fmt.Printf("\n🚀 Benchmark 2: Parallel parse (%d workers)\n", *workers)
	parDuration := run(parser.New(parser.WithWorkers(*workers)), doc, *nets)

	if parDuration > 0 {
		fmt.Printf("\n⚡ Speedup: %.2fx\n", float64(seqDuration)/float64(parDuration))
	}
}

func run(p *parser.Parser, doc string, nets int) time.Duration {
	start := time.Now()
	parsed, err := p.Parse(strings.NewReader(doc))
	if err != nil {
		log.Fatalf("Failed to parse: %v", err)
	}
	duration := time.Since(start)

	if len(parsed.Nets) != nets {
		log.Fatalf("Expected %d nets, got %d", nets, len(parsed.Nets))
	}
	fmt.Printf("  ✅ Parsed %d nets in %v\n", len(parsed.Nets), duration)
	fmt.Printf("  ⚡ Average: %.2fμs per net\n", float64(duration.Microseconds())/float64(nets))
	fmt.Printf("  📏 Wire length: %d, congested segments: %d\n",
		parsed.TotalWireLength, len(parsed.Congestion))
	return duration
}

// generateDocument emits nets with a trunk of channel nodes and a few
// branch-marker sub-paths, matching the shape of real router output.
func generateDocument(rng *rand.Rand, nets, branches, trunk int) string {
	var b strings.Builder
	b.WriteString("Placement_File: bench.place\n")
	b.WriteString("Array size: 100 x 100 logic blocks\n\nRouting:\n\n")

	nodeID := 1
	for n := 0; n < nets; n++ {
		fmt.Fprintf(&b, "Net %d (net_%d)\n", n, n)

		x, y := rng.Intn(90)+1, rng.Intn(90)+1
		fmt.Fprintf(&b, "Node:\t%d\tSOURCE (%d,%d)  Pad: %d\n", nodeID, x, y, rng.Intn(8))
		nodeID++
		fmt.Fprintf(&b, "Node:\t%d\tOPIN (%d,%d)  Switch: 1\n", nodeID, x, y)
		nodeID++

		trunkIDs := make([]int, 0, trunk)
		for t := 0; t < trunk; t++ {
			kind := "CHANX"
			if t%2 == 1 {
				kind = "CHANY"
				y++
			} else {
				x++
			}
			fmt.Fprintf(&b, "Node:\t%d\t%s (%d,%d)  Track: %d  Switch: 2\n",
				nodeID, kind, x, y, rng.Intn(8))
			trunkIDs = append(trunkIDs, nodeID)
			nodeID++
		}

		fmt.Fprintf(&b, "Node:\t%d\tIPIN (%d,%d)  Switch: 0\n", nodeID, x, y)
		nodeID++
		fmt.Fprintf(&b, "Node:\t%d\tSINK (%d,%d)\n", nodeID, x, y)
		nodeID++

		for br := 0; br < branches; br++ {
			// Repeat a trunk node to mark the branch point.
			at := trunkIDs[rng.Intn(len(trunkIDs))]
			fmt.Fprintf(&b, "Node:\t%d\tCHANX (%d,%d)\n", at, x, y)
			fmt.Fprintf(&b, "Node:\t%d\tCHANY (%d,%d)  Track: %d\n", nodeID, x, y+1, rng.Intn(8))
			nodeID++
			fmt.Fprintf(&b, "Node:\t%d\tSINK (%d,%d)\n", nodeID, x, y+1)
			nodeID++
		}
		b.WriteString("\n")
	}
	return b.String()
}
