package routing

// NetRoute aggregates everything reconstructed for one net. The flat
// record list is kept as encountered so consumers can fall back to
// non-tree analysis when the reconstruction is suspect.
type NetRoute struct {
	Name    string
	Records []NodeRecord

	// Tree is the reconstructed routing tree, nil when the record group
	// contained no SOURCE node. Consumers must then treat the net as
	// "flat record list only".
	Tree *Tree

	// BuildStats is the tree builder's account of branch markers and
	// reattachment decisions for this net.
	BuildStats BuildStats
}

// HasTree reports whether tree reconstruction succeeded.
func (n *NetRoute) HasTree() bool {
	return n.Tree != nil
}

// Fanout returns the number of distinct root-to-sink paths, 0 when no
// tree is available.
func (n *NetRoute) Fanout() int {
	if n.Tree == nil {
		return 0
	}
	return n.Tree.Fanout()
}

// BoundingBox returns the net's coordinate extents over records with
// known coordinates. ok is false when no record has usable coordinates.
func (n *NetRoute) BoundingBox() (minX, minY, maxX, maxY int, ok bool) {
	for _, rec := range n.Records {
		if rec.X < 0 || rec.Y < 0 {
			continue
		}
		if !ok {
			minX, maxX, minY, maxY = rec.X, rec.X, rec.Y, rec.Y
			ok = true
			continue
		}
		if rec.X < minX {
			minX = rec.X
		}
		if rec.X > maxX {
			maxX = rec.X
		}
		if rec.Y < minY {
			minY = rec.Y
		}
		if rec.Y > maxY {
			maxY = rec.Y
		}
	}
	return minX, minY, maxX, maxY, ok
}

// DiagnosticKind classifies recoverable parse findings.
type DiagnosticKind string

const (
	// DiagMalformedLine marks a node line that could not be parsed and
	// was skipped.
	DiagMalformedLine DiagnosticKind = "malformed_line"
	// DiagMissingRoot marks a net whose record group had no SOURCE node.
	DiagMissingRoot DiagnosticKind = "missing_root"
	// DiagSuspectReattach marks a net whose tree builder fell back to
	// the root for at least one sub-path.
	DiagSuspectReattach DiagnosticKind = "suspect_reattach"
)

// Diagnostic is one recoverable finding recorded during a parse.
// Diagnostics never alter the output shape; they only annotate it.
type Diagnostic struct {
	Kind    DiagnosticKind
	Line    int    // 1-based input line number, 0 when not line-scoped
	Net     string // net name, empty when not net-scoped
	Message string
}

// Document is the result of parsing one .route file. All fields are
// populated in a single streaming pass and immutable afterwards.
type Document struct {
	// DocumentID uniquely identifies this parse result.
	DocumentID string

	Nets       []*NetRoute
	Congestion CongestionMap

	// TotalWireLength approximates wire length as the sum of per-net
	// record counts. It is a proxy, not a geometric length.
	TotalWireLength int

	Diagnostics []Diagnostic
}

// Net returns the route for the given net name, nil when absent.
func (d *Document) Net(name string) *NetRoute {
	for _, n := range d.Nets {
		if n.Name == name {
			return n
		}
	}
	return nil
}
