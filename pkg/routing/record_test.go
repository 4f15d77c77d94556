package routing

import "testing"

func TestNodeRecord_EqualIgnoresExtra(t *testing.T) {
	a := trackRec(1, KindChanx, 4, 0, 2)
	b := trackRec(1, KindChanx, 4, 0, 2)
	a.Extra = map[string]any{"layer": int64(3)}
	b.Extra = map[string]any{"layer": int64(7), "pin": "clk"}

	if !a.Equal(b) {
		t.Error("Extra attributes must not participate in record equality")
	}

	b.Track = 3
	if a.Equal(b) {
		t.Error("Fixed fields must participate in record equality")
	}
}

func TestNodeRecord_IsIOPad(t *testing.T) {
	r := rec(1, KindSource, 4, 0)
	if r.IsIOPad() {
		t.Error("Default pad sentinel must not mark an I/O pad")
	}
	r.Pad = 0
	if !r.IsIOPad() {
		t.Error("Pad 0 is a valid I/O pad")
	}
}

func TestNodeRecord_Adjacent(t *testing.T) {
	r := rec(1, KindChanx, 5, 5)
	cases := []struct {
		x, y int
		want bool
	}{
		{5, 5, true},
		{4, 6, true},
		{6, 4, true},
		{7, 5, false},
		{5, 3, false},
	}
	for _, tc := range cases {
		if got := r.Adjacent(tc.x, tc.y); got != tc.want {
			t.Errorf("Adjacent(%d,%d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestNetRoute_BoundingBox(t *testing.T) {
	net := &NetRoute{
		Name: "n",
		Records: []NodeRecord{
			rec(1, KindSource, 2, 3),
			rec(2, KindChanx, 5, 1),
			{ID: 3, Kind: KindIpin, X: UnknownCoord, Y: UnknownCoord, Pad: NoPad},
		},
	}

	minX, minY, maxX, maxY, ok := net.BoundingBox()
	if !ok {
		t.Fatal("Expected a bounding box")
	}
	if minX != 2 || maxX != 5 || minY != 1 || maxY != 3 {
		t.Errorf("Unexpected bbox (%d,%d)-(%d,%d)", minX, minY, maxX, maxY)
	}

	empty := &NetRoute{Name: "e", Records: []NodeRecord{
		{ID: 1, Kind: KindSink, X: UnknownCoord, Y: UnknownCoord, Pad: NoPad},
	}}
	if _, _, _, _, ok := empty.BoundingBox(); ok {
		t.Error("Records without coordinates must yield no bounding box")
	}
}

func TestParseNodeKind(t *testing.T) {
	if ParseNodeKind("chanx") != KindChanx {
		t.Error("Kind parsing must be case-insensitive")
	}
	unknown := ParseNodeKind("mux")
	if unknown != "MUX" {
		t.Errorf("Unknown kinds are kept upper-cased, got %s", unknown)
	}
	if unknown.IsKnown() {
		t.Error("MUX must not report as a known kind")
	}
	if !KindChany.IsChannel() || KindOpin.IsChannel() {
		t.Error("IsChannel misclassified")
	}
}
