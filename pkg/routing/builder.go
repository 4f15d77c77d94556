package routing

// BuildStats describes what the tree builder observed while
// reconstructing one net.
type BuildStats struct {
	// BranchMarkers counts repeated-ID lines that repositioned the
	// attachment point.
	BranchMarkers int
	// AdjacencyReattaches counts sub-paths reattached through the grid
	// adjacency search after a SINK terminated the previous path.
	AdjacencyReattaches int
	// RootFallbacks counts sub-paths that were reattached at the root
	// because no plausible attachment point existed. A non-zero value
	// means the reconstruction is suspect.
	RootFallbacks int
}

// Suspect reports whether the builder had to guess an attachment point
// with no supporting evidence.
func (s BuildStats) Suspect() bool {
	return s.RootFallbacks > 0
}

// BuildTree reconstructs a rooted routing tree from one net's ordered
// record stream. The stream encodes branching implicitly: a node ID that
// reappears marks a return to the already-placed node, not a new node.
//
// The walk keeps a current attachment point, initially the root (the
// first SOURCE record). Each unseen record is attached there. Non-SINK
// records advance the attachment point; a SINK terminates the path, and
// the next sub-path is located either by an explicit repeated-ID marker,
// by searching placed CHANX/CHANY/OPIN nodes adjacent to the upcoming
// record's grid position, or as a last resort at the root.
//
// Returns a nil tree when the stream contains no SOURCE record.
func BuildTree(records []NodeRecord) (*Tree, BuildStats) {
	var stats BuildStats

	rootIdx := -1
	for i, rec := range records {
		if rec.Kind == KindSource {
			rootIdx = i
			break
		}
	}
	if rootIdx < 0 {
		return nil, stats
	}

	tree := NewTree(records[rootIdx])
	placed := map[int]struct{}{records[rootIdx].ID: {}}
	parent := 0

	for i := rootIdx + 1; i < len(records); i++ {
		rec := records[i]

		if _, seen := placed[rec.ID]; seen {
			// Branch marker: reposition, never re-attach.
			if at := tree.FindByID(rec.ID); at >= 0 {
				parent = at
				stats.BranchMarkers++
			}
			continue
		}

		at := tree.Attach(parent, rec)
		placed[rec.ID] = struct{}{}

		if rec.Kind != KindSink {
			parent = at
			continue
		}

		// The path ended here. Decide where the next sub-path attaches.
		if i+1 >= len(records) {
			continue
		}
		next := records[i+1]
		if _, seen := placed[next.ID]; seen {
			// The upcoming branch marker repositions on its own.
			continue
		}
		if cand := tree.FindAdjacent(next.X, next.Y); cand >= 0 {
			parent = cand
			stats.AdjacencyReattaches++
		} else {
			parent = 0
			stats.RootFallbacks++
		}
	}

	return tree, stats
}
