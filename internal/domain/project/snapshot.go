package project

import "slices"

// Snapshot is an ordered, independently owned copy of the board's project
// list at a point in time. Projects are plain values, so cloning the slice
// yields a snapshot that shares no mutable state with its source.
type Snapshot []Project

// Clone returns a copy of the snapshot that can be mutated freely.
func (s Snapshot) Clone() Snapshot {
	return slices.Clone(s)
}

// Filter returns a new snapshot containing the projects matched by f,
// preserving order.
func (s Snapshot) Filter(f Filter) Snapshot {
	out := make(Snapshot, 0, len(s))
	for _, p := range s {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}
