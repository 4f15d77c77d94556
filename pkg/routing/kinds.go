package routing

import "strings"

// NodeKind identifies the routing-resource-graph node category.
// Values mirror the upper-cased tokens found in VPR .route files.
type NodeKind string

const (
	KindSource NodeKind = "SOURCE"
	KindOpin   NodeKind = "OPIN"
	KindChanx  NodeKind = "CHANX"
	KindChany  NodeKind = "CHANY"
	KindIpin   NodeKind = "IPIN"
	KindSink   NodeKind = "SINK"
)

// ParseNodeKind normalizes a raw kind token. Unknown tokens are kept
// upper-cased so that newer router output does not break parsing.
func ParseNodeKind(s string) NodeKind {
	return NodeKind(strings.ToUpper(s))
}

// IsChannel reports whether the kind is a routing channel segment.
func (k NodeKind) IsChannel() bool {
	return k == KindChanx || k == KindChany
}

// IsEndpoint reports whether the kind is a logical net endpoint.
func (k NodeKind) IsEndpoint() bool {
	return k == KindSource || k == KindSink
}

// IsKnown reports whether the kind is one of the six documented categories.
func (k NodeKind) IsKnown() bool {
	switch k {
	case KindSource, KindOpin, KindChanx, KindChany, KindIpin, KindSink:
		return true
	}
	return false
}
