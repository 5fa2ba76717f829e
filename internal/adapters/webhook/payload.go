package webhook

import (
	"time"

	"github.com/jsamuelsen11/taskboard/internal/domain/project"
)

// EventBoardUpdated is the event name carried by every delivery; the board
// publishes full snapshots, not per-field deltas.
const EventBoardUpdated = "board.updated"

// Payload is the JSON envelope posted to each webhook endpoint.
type Payload struct {
	Event      string   `json:"event"`
	OccurredAt string   `json:"occurred_at"`
	Board      BoardDTO `json:"board"`
}

// BoardDTO is the wire representation of a board snapshot.
type BoardDTO struct {
	Projects []ProjectDTO `json:"projects"`
	Count    int          `json:"count"`
}

// ProjectDTO is the wire representation of a single project.
type ProjectDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	People      int    `json:"people"`
	Status      string `json:"status"`
}

// NewPayload translates a domain snapshot into the delivery envelope,
// preserving the snapshot's insertion order.
func NewPayload(snapshot project.Snapshot, occurredAt time.Time) Payload {
	projects := make([]ProjectDTO, len(snapshot))
	for i, p := range snapshot {
		projects[i] = ProjectDTO{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			People:      p.People,
			Status:      p.Status.String(),
		}
	}
	return Payload{
		Event:      EventBoardUpdated,
		OccurredAt: occurredAt.Format(time.RFC3339),
		Board: BoardDTO{
			Projects: projects,
			Count:    len(projects),
		},
	}
}
