package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/CelIsDividing/FPGA-Visualizer/pkg/routing"
)

// nodeMarker prefixes every node line in a .route file.
const nodeMarker = "Node:"

// Some router builds emit a trailing double colon on keyword fields.
var keywordNormalizer = strings.NewReplacer(
	"Track::", "Track:",
	"Switch::", "Switch:",
	"Pad::", "Pad:",
)

// ParseNodeLine parses one trimmed node line into a NodeRecord. The line
// must start with the "Node:" marker. The expected shape is
//
//	Node:	547	SOURCE (4,0,0)  Pad: 7  Switch: 0
//
// Coordinates accept the (x,y) and (x,y,z) forms; only the first two
// components are used. Track, Switch and Pad are recognized keyword
// fields; any other "Key: Value" pair is kept as a free-form extension
// attribute, coerced to int64 when the value parses as an integer.
//
// A line with fewer than three tokens after the marker, or with a
// non-numeric ID or coordinate, fails with ErrMalformedLine.
func ParseNodeLine(line string) (routing.NodeRecord, error) {
	rec := routing.NodeRecord{
		X:   routing.UnknownCoord,
		Y:   routing.UnknownCoord,
		Pad: routing.NoPad,
	}

	normalized := keywordNormalizer.Replace(line)
	fields := strings.Fields(strings.TrimPrefix(normalized, nodeMarker))
	if len(fields) < 3 {
		return rec, malformed(line, "expected at least id, kind and coordinates")
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return rec, malformed(line, "non-numeric node id")
	}
	rec.ID = id
	rec.Kind = routing.ParseNodeKind(fields[1])

	if err := parseCoords(fields[2], &rec); err != nil {
		return rec, malformed(line, err.Error())
	}

	parseKeywords(fields[3:], &rec)
	return rec, nil
}

func malformed(line, detail string) error {
	return &ParseError{
		Op:    "parse node line",
		Text:  truncate(line),
		Cause: fmt.Errorf("%w: %s", ErrMalformedLine, detail),
	}
}

// parseCoords handles the "(x,y)" and "(x,y,z)" parentheticals. A lone
// component leaves Y at the unknown sentinel.
func parseCoords(token string, rec *routing.NodeRecord) error {
	parts := strings.Split(strings.Trim(token, "()"), ",")
	if len(parts) > 0 && parts[0] != "" {
		x, err := strconv.Atoi(parts[0])
		if err != nil {
			return fmt.Errorf("non-numeric x coordinate %q", parts[0])
		}
		rec.X = x
	}
	if len(parts) > 1 {
		y, err := strconv.Atoi(parts[1])
		if err != nil {
			return fmt.Errorf("non-numeric y coordinate %q", parts[1])
		}
		rec.Y = y
	}
	return nil
}

// parseKeywords walks the trailing "Key: Value" pairs. Track, Switch and
// Pad populate their fixed fields; everything else lands in Extra.
// Tokens that do not look like a keyword are skipped, which keeps the
// parser forgiving of unknown trailing noise.
func parseKeywords(fields []string, rec *routing.NodeRecord) {
	for i := 0; i < len(fields); {
		key, isKeyword := strings.CutSuffix(fields[i], ":")
		if !isKeyword || key == "" || i+1 >= len(fields) {
			i++
			continue
		}
		value := fields[i+1]
		switch strings.ToLower(key) {
		case "track":
			if n, err := strconv.Atoi(value); err == nil {
				rec.Track = n
			}
		case "switch":
			if n, err := strconv.Atoi(value); err == nil {
				rec.SwitchID = n
			}
		case "pad":
			if n, err := strconv.Atoi(value); err == nil {
				rec.Pad = n
			}
		default:
			if rec.Extra == nil {
				rec.Extra = make(map[string]any)
			}
			if n, err := strconv.ParseInt(value, 10, 64); err == nil {
				rec.Extra[strings.ToLower(key)] = n
			} else {
				rec.Extra[strings.ToLower(key)] = value
			}
		}
		i += 2
	}
}
