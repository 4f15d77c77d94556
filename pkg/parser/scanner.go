package parser

import (
	"regexp"
	"strconv"
	"strings"
)

// netPattern matches a net delimiter line: Net <id> (<name>).
var netPattern = regexp.MustCompile(`^Net\s+(\d+)\s+\((.+?)\)`)

// matchNetDelimiter recognizes a net-start line and extracts its id and
// name. ok is false for every other line.
func matchNetDelimiter(line string) (id int, name string, ok bool) {
	m := netPattern.FindStringSubmatch(line)
	if m == nil {
		return 0, "", false
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, "", false
	}
	return id, m[2], true
}

// isIgnoredLine reports whether a trimmed line carries no routing data:
// blanks, comments and the known non-data banners. Ignored lines never
// affect net boundaries.
func isIgnoredLine(line string) bool {
	switch {
	case line == "":
		return true
	case strings.HasPrefix(line, "#"):
		return true
	case strings.HasPrefix(line, "Placement_File:"):
		return true
	case strings.HasPrefix(line, "Array size:"):
		return true
	case line == "Routing:":
		return true
	}
	return false
}

// isNodeLine reports whether the line starts a node record.
func isNodeLine(line string) bool {
	return strings.HasPrefix(line, nodeMarker)
}
