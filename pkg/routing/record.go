package routing

// UnknownCoord is the sentinel for a missing grid coordinate.
const UnknownCoord = -1

// NoPad marks a record that is not bound to an I/O pad.
const NoPad = -1

// NodeRecord is one routing-resource node occurrence from a .route file.
// The ID is not unique within a net's record stream: the router repeats
// an ID to mark a branch point, so two records may carry the same ID.
// Records are immutable once parsed.
type NodeRecord struct {
	ID       int
	Kind     NodeKind
	X        int
	Y        int
	Track    int // meaningful only for CHANX/CHANY
	SwitchID int
	Pad      int // >= 0 marks an I/O pad

	// Extra holds unrecognized "Key: Value" pairs, coerced to int64 when
	// the value parses as an integer. It carries forward-compatible
	// attributes only and is excluded from record equality.
	Extra map[string]any
}

// IsIOPad reports whether the record is bound to an I/O pad.
func (r NodeRecord) IsIOPad() bool {
	return r.Pad >= 0
}

// HasCoords reports whether both grid coordinates are known.
func (r NodeRecord) HasCoords() bool {
	return r.X != UnknownCoord && r.Y != UnknownCoord
}

// Equal compares the fixed fields of two records. Extra attributes never
// participate in identity.
func (r NodeRecord) Equal(o NodeRecord) bool {
	return r.ID == o.ID &&
		r.Kind == o.Kind &&
		r.X == o.X &&
		r.Y == o.Y &&
		r.Track == o.Track &&
		r.SwitchID == o.SwitchID &&
		r.Pad == o.Pad
}

// Adjacent reports whether the record's grid position is within Chebyshev
// distance 1 of (x, y) on both axes.
func (r NodeRecord) Adjacent(x, y int) bool {
	dx := r.X - x
	if dx < 0 {
		dx = -dx
	}
	dy := r.Y - y
	if dy < 0 {
		dy = -dy
	}
	return dx <= 1 && dy <= 1
}
