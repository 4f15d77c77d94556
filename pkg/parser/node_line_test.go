package parser

import (
	"errors"
	"testing"

	"github.com/CelIsDividing/FPGA-Visualizer/pkg/routing"
)

func TestParseNodeLine_Source(t *testing.T) {
	rec, err := ParseNodeLine("Node:\t547\tSOURCE (4,0,0)  Pad: 7  Switch: 0")
	if err != nil {
		t.Fatalf("ParseNodeLine failed: %v", err)
	}
	if rec.ID != 547 {
		t.Errorf("Expected ID 547, got %d", rec.ID)
	}
	if rec.Kind != routing.KindSource {
		t.Errorf("Expected SOURCE, got %s", rec.Kind)
	}
	if rec.X != 4 || rec.Y != 0 {
		t.Errorf("Expected (4,0), got (%d,%d)", rec.X, rec.Y)
	}
	if rec.Pad != 7 {
		t.Errorf("Expected pad 7, got %d", rec.Pad)
	}
	if rec.SwitchID != 0 {
		t.Errorf("Expected switch 0, got %d", rec.SwitchID)
	}
	if !rec.IsIOPad() {
		t.Error("Pad 7 must mark an I/O pad")
	}
}

func TestParseNodeLine_Channel(t *testing.T) {
	rec, err := ParseNodeLine("Node:\t1108\t CHANX (4,0,0)  Track: 4  Switch: 2")
	if err != nil {
		t.Fatalf("ParseNodeLine failed: %v", err)
	}
	if rec.Kind != routing.KindChanx {
		t.Errorf("Expected CHANX, got %s", rec.Kind)
	}
	if rec.Track != 4 || rec.SwitchID != 2 {
		t.Errorf("Expected track 4 switch 2, got %d/%d", rec.Track, rec.SwitchID)
	}
	if rec.Pad != routing.NoPad {
		t.Errorf("Expected pad sentinel, got %d", rec.Pad)
	}
}

func TestParseNodeLine_Defaults(t *testing.T) {
	rec, err := ParseNodeLine("Node:\t12\tIPIN (1,2)")
	if err != nil {
		t.Fatalf("ParseNodeLine failed: %v", err)
	}
	if rec.Track != 0 || rec.SwitchID != 0 {
		t.Errorf("Track and switch must default to 0, got %d/%d", rec.Track, rec.SwitchID)
	}
}

func TestParseNodeLine_DoubleColonKeywords(t *testing.T) {
	rec, err := ParseNodeLine("Node:\t9\tCHANY (2,3,0)  Track:: 6  Switch:: 1  Pad:: 3")
	if err != nil {
		t.Fatalf("ParseNodeLine failed: %v", err)
	}
	if rec.Track != 6 || rec.SwitchID != 1 || rec.Pad != 3 {
		t.Errorf("Double-colon keywords mishandled: track=%d switch=%d pad=%d",
			rec.Track, rec.SwitchID, rec.Pad)
	}
}

func TestParseNodeLine_CaseInsensitiveKind(t *testing.T) {
	rec, err := ParseNodeLine("Node:\t3\tchanx (0,0)  Track: 1")
	if err != nil {
		t.Fatalf("ParseNodeLine failed: %v", err)
	}
	if rec.Kind != routing.KindChanx {
		t.Errorf("Kind must be stored upper-cased, got %s", rec.Kind)
	}
}

func TestParseNodeLine_ExtensionAttributes(t *testing.T) {
	rec, err := ParseNodeLine("Node:\t7\tOPIN (1,1)  Switch: 2  Layer: 3  Pin: clk_in")
	if err != nil {
		t.Fatalf("ParseNodeLine failed: %v", err)
	}
	if rec.SwitchID != 2 {
		t.Errorf("Expected switch 2, got %d", rec.SwitchID)
	}
	if got, ok := rec.Extra["layer"].(int64); !ok || got != 3 {
		t.Errorf("Expected int64 layer 3, got %v", rec.Extra["layer"])
	}
	if got, ok := rec.Extra["pin"].(string); !ok || got != "clk_in" {
		t.Errorf("Expected string pin clk_in, got %v", rec.Extra["pin"])
	}
	if _, present := rec.Extra["switch"]; present {
		t.Error("Recognized keywords must not leak into Extra")
	}
}

func TestParseNodeLine_TrailingNoiseTolerated(t *testing.T) {
	rec, err := ParseNodeLine("Node:\t7\tSINK (1,1)  stray tokens here")
	if err != nil {
		t.Fatalf("Unknown trailing tokens must not reject the line: %v", err)
	}
	if rec.Kind != routing.KindSink {
		t.Errorf("Expected SINK, got %s", rec.Kind)
	}
}

func TestParseNodeLine_SingleCoordinate(t *testing.T) {
	rec, err := ParseNodeLine("Node:\t7\tSINK (4)")
	if err != nil {
		t.Fatalf("ParseNodeLine failed: %v", err)
	}
	if rec.X != 4 || rec.Y != routing.UnknownCoord {
		t.Errorf("Expected x=4 and y sentinel, got (%d,%d)", rec.X, rec.Y)
	}
}

func TestParseNodeLine_Malformed(t *testing.T) {
	cases := []struct {
		name string
		line string
	}{
		{"too few tokens", "Node:\t42\tSOURCE"},
		{"missing everything", "Node:"},
		{"non-numeric id", "Node:\tabc\tSOURCE (0,0)"},
		{"non-numeric x", "Node:\t1\tSOURCE (a,0)"},
		{"non-numeric y", "Node:\t1\tSOURCE (0,b)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseNodeLine(tc.line)
			if err == nil {
				t.Fatalf("Expected error for %q", tc.line)
			}
			if !errors.Is(err, ErrMalformedLine) {
				t.Errorf("Expected ErrMalformedLine, got %v", err)
			}
		})
	}
}
