package parser

import "testing"

func TestMatchNetDelimiter(t *testing.T) {
	id, name, ok := matchNetDelimiter("Net 0 (c0)")
	if !ok {
		t.Fatal("Expected a net delimiter match")
	}
	if id != 0 || name != "c0" {
		t.Errorf("Expected net 0 (c0), got %d (%s)", id, name)
	}

	id, name, ok = matchNetDelimiter("Net 17 (top^clk[3])")
	if !ok {
		t.Fatal("Expected a match for punctuated net names")
	}
	if id != 17 || name != "top^clk[3]" {
		t.Errorf("Unexpected capture: %d (%s)", id, name)
	}

	for _, line := range []string{
		"Node:\t1\tSOURCE (0,0)",
		"Network 3 (x)",
		"Net (c0)",
		"Net x (c0)",
		"",
	} {
		if _, _, ok := matchNetDelimiter(line); ok {
			t.Errorf("Unexpected delimiter match for %q", line)
		}
	}
}

func TestIsIgnoredLine(t *testing.T) {
	ignored := []string{
		"",
		"# a comment",
		"Placement_File: circuit.place",
		"Array size: 10 x 10 logic blocks",
		"Routing:",
	}
	for _, line := range ignored {
		if !isIgnoredLine(line) {
			t.Errorf("Expected %q to be ignored", line)
		}
	}

	kept := []string{
		"Net 0 (c0)",
		"Node:\t1\tSOURCE (0,0)",
		"Routing: extra", // only the bare marker is ignored
	}
	for _, line := range kept {
		if isIgnoredLine(line) {
			t.Errorf("Expected %q to be kept", line)
		}
	}
}

func TestIsNodeLine(t *testing.T) {
	if !isNodeLine("Node:\t1\tSOURCE (0,0)") {
		t.Error("Expected node line")
	}
	if isNodeLine("Net 0 (c0)") {
		t.Error("Net delimiter is not a node line")
	}
}
