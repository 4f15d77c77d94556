package visualization

import (
	"encoding/json"
	"io"

	"github.com/CelIsDividing/FPGA-Visualizer/pkg/routing"
)

// Coord is one grid position on an exported path.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// TreeNodeJSON is the serialized form of one routing tree node.
type TreeNodeJSON struct {
	ID       int             `json:"node_id"`
	Kind     string          `json:"node_type"`
	X        int             `json:"x"`
	Y        int             `json:"y"`
	Track    int             `json:"track"`
	SwitchID int             `json:"switch_id"`
	Pad      int             `json:"pad"`
	Extra    map[string]any  `json:"extra,omitempty"`
	Children []*TreeNodeJSON `json:"children,omitempty"`
}

// NetJSON is the serialized form of one net's reconstruction.
type NetJSON struct {
	Name        string        `json:"net_name"`
	RecordCount int           `json:"segment_count"`
	Fanout      int           `json:"fanout"`
	Suspect     bool          `json:"suspect"`
	Tree        *TreeNodeJSON `json:"tree,omitempty"`
	Paths       [][]Coord     `json:"paths,omitempty"`
}

// DocumentJSON is the full export consumed by chart frontends.
type DocumentJSON struct {
	DocumentID      string             `json:"document_id"`
	Nets            []NetJSON          `json:"nets"`
	TotalWireLength int                `json:"total_wire_length"`
	Congestion      map[string]float64 `json:"congestion"`
}

// ExportDocument converts a parsed document into its serialized form.
func ExportDocument(doc *routing.Document) DocumentJSON {
	out := DocumentJSON{
		DocumentID:      doc.DocumentID,
		Nets:            make([]NetJSON, 0, len(doc.Nets)),
		TotalWireLength: doc.TotalWireLength,
		Congestion:      ExportCongestion(doc.Congestion),
	}
	for _, net := range doc.Nets {
		out.Nets = append(out.Nets, ExportNet(net))
	}
	return out
}

// ExportNet converts one net, including its tree and root-to-sink path
// coordinates when a tree was reconstructed.
func ExportNet(net *routing.NetRoute) NetJSON {
	out := NetJSON{
		Name:        net.Name,
		RecordCount: len(net.Records),
		Suspect:     net.BuildStats.Suspect(),
	}
	if net.Tree == nil {
		return out
	}

	out.Tree = exportTreeNode(net.Tree, 0)
	for path := range net.Tree.Paths() {
		coords := make([]Coord, len(path))
		for i, rec := range net.Tree.PathRecords(path) {
			coords[i] = Coord{X: rec.X, Y: rec.Y}
		}
		out.Paths = append(out.Paths, coords)
	}
	out.Fanout = len(out.Paths)
	return out
}

func exportTreeNode(tree *routing.Tree, idx int) *TreeNodeJSON {
	node := tree.Node(idx)
	rec := node.Record
	out := &TreeNodeJSON{
		ID:       rec.ID,
		Kind:     string(rec.Kind),
		X:        rec.X,
		Y:        rec.Y,
		Track:    rec.Track,
		SwitchID: rec.SwitchID,
		Pad:      rec.Pad,
		Extra:    rec.Extra,
	}
	for _, c := range node.Children {
		out.Children = append(out.Children, exportTreeNode(tree, c))
	}
	return out
}

// WriteJSON serializes the export with indentation, for files meant to
// be inspected by hand.
func WriteJSON(w io.Writer, doc *routing.Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ExportDocument(doc))
}
