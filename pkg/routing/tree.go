package routing

import "iter"

// NoParent is the parent index of the root node.
const NoParent = -1

// TreeNode is one placed record in a net's routing tree. Nodes live in a
// Tree's arena and reference each other by index, so the structure has no
// cyclic pointers.
type TreeNode struct {
	Record   NodeRecord
	Parent   int   // arena index, NoParent for the root
	Children []int // arena indexes in discovery order
}

// Tree is an arena-backed rooted tree of routing-resource nodes. Index 0
// is always the root. Each record ID occupies at most one node even when
// the raw stream repeats it.
type Tree struct {
	nodes []TreeNode
}

// NewTree creates a tree whose root holds the given record.
func NewTree(root NodeRecord) *Tree {
	return &Tree{nodes: []TreeNode{{Record: root, Parent: NoParent}}}
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Root returns the root node.
func (t *Tree) Root() *TreeNode {
	return &t.nodes[0]
}

// Node returns the node at the given arena index.
func (t *Tree) Node(i int) *TreeNode {
	return &t.nodes[i]
}

// Attach appends a new node holding rec as the last child of parent and
// returns its arena index.
func (t *Tree) Attach(parent int, rec NodeRecord) int {
	idx := len(t.nodes)
	t.nodes = append(t.nodes, TreeNode{Record: rec, Parent: parent})
	t.nodes[parent].Children = append(t.nodes[parent].Children, idx)
	return idx
}

// FindByID walks the tree depth-first from the root, children in
// discovery order, and returns the arena index of the first node whose
// record carries the given ID, or -1.
func (t *Tree) FindByID(id int) int {
	return t.findByID(0, id)
}

func (t *Tree) findByID(idx, id int) int {
	if t.nodes[idx].Record.ID == id {
		return idx
	}
	for _, c := range t.nodes[idx].Children {
		if found := t.findByID(c, id); found >= 0 {
			return found
		}
	}
	return -1
}

// FindAdjacent returns the arena index of the first node, in depth-first
// discovery order, whose kind is CHANX, CHANY or OPIN and whose grid
// position is within Chebyshev distance 1 of (x, y), or -1.
func (t *Tree) FindAdjacent(x, y int) int {
	return t.findAdjacent(0, x, y)
}

func (t *Tree) findAdjacent(idx, x, y int) int {
	rec := t.nodes[idx].Record
	if (rec.Kind.IsChannel() || rec.Kind == KindOpin) && rec.Adjacent(x, y) {
		return idx
	}
	for _, c := range t.nodes[idx].Children {
		if found := t.findAdjacent(c, x, y); found >= 0 {
			return found
		}
	}
	return -1
}

// Paths enumerates every root-to-sink path as a slice of arena indexes.
// A path terminates at a childless SINK node; childless nodes of other
// kinds are dangling branches and contribute no path. The sequence is
// lazy and may be restarted or abandoned at any point; each yielded
// slice is freshly allocated.
func (t *Tree) Paths() iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		stack := make([]int, 0, 16)
		t.walkPaths(0, stack, yield)
	}
}

func (t *Tree) walkPaths(idx int, stack []int, yield func([]int) bool) bool {
	stack = append(stack, idx)
	n := &t.nodes[idx]
	if len(n.Children) == 0 {
		if n.Record.Kind != KindSink {
			return true
		}
		path := make([]int, len(stack))
		copy(path, stack)
		return yield(path)
	}
	for _, c := range n.Children {
		if !t.walkPaths(c, stack, yield) {
			return false
		}
	}
	return true
}

// Fanout counts the root-to-sink paths in the tree.
func (t *Tree) Fanout() int {
	count := 0
	for range t.Paths() {
		count++
	}
	return count
}

// LeafSinkCount counts childless SINK nodes.
func (t *Tree) LeafSinkCount() int {
	count := 0
	for i := range t.nodes {
		n := &t.nodes[i]
		if len(n.Children) == 0 && n.Record.Kind == KindSink {
			count++
		}
	}
	return count
}

// PathRecords resolves a path of arena indexes into its records.
func (t *Tree) PathRecords(path []int) []NodeRecord {
	recs := make([]NodeRecord, len(path))
	for i, idx := range path {
		recs[i] = t.nodes[idx].Record
	}
	return recs
}
