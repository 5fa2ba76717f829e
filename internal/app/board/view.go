package board

import (
	"github.com/jsamuelsen11/taskboard/internal/domain/project"
	"github.com/jsamuelsen11/taskboard/internal/ports"
)

// ListView renders one side of the board. It carries a fixed status affinity
// chosen at construction time and, on every snapshot, rebuilds its visible
// list from scratch: filter, then full replace. It never diffs against the
// previous render, so its contents depend only on the latest snapshot.
//
// A ListView holds no reference to the store; wire it up with Subscribe.
type ListView struct {
	status   project.Status
	rendered *SafeRef[project.Snapshot]
}

var _ ports.BoardSubscriber = (*ListView)(nil)

// NewListView creates a view that renders projects with the given status.
func NewListView(status project.Status) *ListView {
	return &ListView{
		status:   status,
		rendered: NewRef(project.Snapshot{}),
	}
}

// Status returns the view's fixed status affinity.
func (v *ListView) Status() project.Status {
	return v.status
}

// OnSnapshot replaces the rendered list with the snapshot's projects that
// match the view's status, preserving their relative order.
func (v *ListView) OnSnapshot(snapshot project.Snapshot) {
	v.rendered.Set(snapshot.Filter(project.Filter{Status: v.status}))
}

// Projects returns an independent copy of the currently rendered list.
func (v *ListView) Projects() project.Snapshot {
	return v.rendered.Get().Clone()
}

// Len returns the number of projects currently rendered.
func (v *ListView) Len() int {
	return len(v.rendered.Get())
}
