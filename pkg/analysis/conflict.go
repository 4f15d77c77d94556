package analysis

import (
	"sort"

	"github.com/CelIsDividing/FPGA-Visualizer/pkg/routing"
)

// ConflictKind classifies why two nets conflict.
type ConflictKind string

const (
	// ConflictBBoxOverlap marks nets whose coordinate extents overlap.
	ConflictBBoxOverlap ConflictKind = "bbox_overlap"
	// ConflictSharedSegment marks nets touching the same routing
	// resource location.
	ConflictSharedSegment ConflictKind = "shared_segment"
)

// Conflict is one undirected edge of the conflict graph. NetA sorts
// before NetB.
type Conflict struct {
	NetA  string
	NetB  string
	Kinds []ConflictKind
}

// ConflictGraph relates nets that compete for the same area or routing
// resources. Vertices are net names; edges carry the conflict kinds
// observed for the pair.
type ConflictGraph struct {
	nets  []string
	edges map[[2]string]map[ConflictKind]bool
}

// segmentKey identifies a shared routing resource. Track participates
// only for channel segments.
type segmentKey struct {
	kind     routing.NodeKind
	x, y     int
	track    int
	hasTrack bool
}

// BuildConflictGraph derives the conflict graph of a parsed document.
// Two nets conflict when their bounding boxes overlap, or when they
// touch the same (x, y, kind) location; for channel segments the track
// index is part of the location. The graph only reads the document.
func BuildConflictGraph(doc *routing.Document) *ConflictGraph {
	g := &ConflictGraph{
		nets:  make([]string, 0, len(doc.Nets)),
		edges: make(map[[2]string]map[ConflictKind]bool),
	}
	for _, net := range doc.Nets {
		g.nets = append(g.nets, net.Name)
	}

	g.detectBBoxOverlaps(doc)
	g.detectSharedSegments(doc)
	return g
}

type bbox struct {
	minX, minY, maxX, maxY int
}

func (b bbox) overlaps(o bbox) bool {
	return !(b.maxX < o.minX || b.minX > o.maxX || b.maxY < o.minY || b.minY > o.maxY)
}

func (g *ConflictGraph) detectBBoxOverlaps(doc *routing.Document) {
	boxes := make([]bbox, 0, len(doc.Nets))
	names := make([]string, 0, len(doc.Nets))
	for _, net := range doc.Nets {
		minX, minY, maxX, maxY, ok := net.BoundingBox()
		if !ok {
			continue
		}
		boxes = append(boxes, bbox{minX, minY, maxX, maxY})
		names = append(names, net.Name)
	}

	for i := 0; i < len(boxes); i++ {
		for j := i + 1; j < len(boxes); j++ {
			if boxes[i].overlaps(boxes[j]) {
				g.addEdge(names[i], names[j], ConflictBBoxOverlap)
			}
		}
	}
}

func (g *ConflictGraph) detectSharedSegments(doc *routing.Document) {
	usage := make(map[segmentKey][]string)
	for _, net := range doc.Nets {
		seen := make(map[segmentKey]bool)
		for _, rec := range net.Records {
			if !rec.HasCoords() {
				continue
			}
			key := segmentKey{kind: rec.Kind, x: rec.X, y: rec.Y}
			if rec.Kind.IsChannel() {
				key.track = rec.Track
				key.hasTrack = true
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			usage[key] = append(usage[key], net.Name)
		}
	}

	for _, nets := range usage {
		for i := 0; i < len(nets); i++ {
			for j := i + 1; j < len(nets); j++ {
				g.addEdge(nets[i], nets[j], ConflictSharedSegment)
			}
		}
	}
}

func (g *ConflictGraph) addEdge(a, b string, kind ConflictKind) {
	if a == b {
		return
	}
	if b < a {
		a, b = b, a
	}
	key := [2]string{a, b}
	if g.edges[key] == nil {
		g.edges[key] = make(map[ConflictKind]bool)
	}
	g.edges[key][kind] = true
}

// Nets returns the vertices in document order.
func (g *ConflictGraph) Nets() []string {
	return g.nets
}

// HasConflict reports whether two nets share an edge.
func (g *ConflictGraph) HasConflict(a, b string) bool {
	if b < a {
		a, b = b, a
	}
	return len(g.edges[[2]string{a, b}]) > 0
}

// Degree counts the conflicts a net participates in.
func (g *ConflictGraph) Degree(net string) int {
	degree := 0
	for key := range g.edges {
		if key[0] == net || key[1] == net {
			degree++
		}
	}
	return degree
}

// Edges lists all conflicts, sorted by net pair, kinds sorted within
// each edge.
func (g *ConflictGraph) Edges() []Conflict {
	out := make([]Conflict, 0, len(g.edges))
	for key, kinds := range g.edges {
		c := Conflict{NetA: key[0], NetB: key[1]}
		for kind := range kinds {
			c.Kinds = append(c.Kinds, kind)
		}
		sort.Slice(c.Kinds, func(i, j int) bool { return c.Kinds[i] < c.Kinds[j] })
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].NetA != out[j].NetA {
			return out[i].NetA < out[j].NetA
		}
		return out[i].NetB < out[j].NetB
	})
	return out
}
