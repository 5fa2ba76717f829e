package ports

import (
	"context"

	"github.com/jsamuelsen11/taskboard/internal/domain/project"
)

// BoardService defines the service port for board operations.
// Implemented by the application layer; called by inbound adapters (handlers,
// the seed loader, the CLI). Mutations never fail: adding always succeeds and
// moving is a silent no-op when it cannot apply, mirroring the board's
// tolerance contract.
type BoardService interface {
	// AddProject creates a project with Active status and a fresh unique id,
	// appends it to the board, and returns the created record. Subscribers
	// are notified before the call returns. The caller is responsible for
	// validating input first; the board itself accepts anything well-typed.
	AddProject(ctx context.Context, title, description string, people int) (project.Project, error)

	// MoveProject transitions the project with the given id to the requested
	// status. Unknown ids and same-status requests are silent no-ops with no
	// notification, which makes the operation idempotent.
	MoveProject(ctx context.Context, id string, status project.Status) error

	// Project returns a single project by id.
	// Returns domain.ErrNotFound if no project has that id.
	Project(ctx context.Context, id string) (project.Project, error)

	// Board returns a snapshot of the projects matched by the filter, in
	// creation order. A zero-value filter returns the whole board.
	Board(ctx context.Context, filter project.Filter) (project.Snapshot, error)

	// Subscribe registers a subscriber for board snapshots and returns its
	// subscription handle.
	Subscribe(sub BoardSubscriber) Subscription
}
