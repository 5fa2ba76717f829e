package boardapi

import (
	"net/url"

	"github.com/jsamuelsen11/taskboard/internal/domain/project"
)

// projectDTO matches the board API's project representation.
type projectDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	People      int    `json:"people"`
	Status      string `json:"status"`
}

// boardDTO matches the board API's board response (REST and stream frames
// share this shape).
type boardDTO struct {
	Projects []projectDTO `json:"projects"`
	Count    int          `json:"count"`
}

// createProjectDTO matches the board API's create request schema.
type createProjectDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	People      int    `json:"people"`
}

// moveProjectDTO matches the board API's move request schema.
type moveProjectDTO struct {
	Status string `json:"status"`
}

// toDomainProject converts a wire project to a domain Project.
func toDomainProject(dto projectDTO) project.Project {
	status, _ := project.ParseStatus(dto.Status)

	return project.Project{
		ID:          dto.ID,
		Title:       dto.Title,
		Description: dto.Description,
		People:      dto.People,
		Status:      status,
	}
}

// toDomainSnapshot converts a wire board to a domain Snapshot, preserving
// board order.
func toDomainSnapshot(dto boardDTO) project.Snapshot {
	snapshot := make(project.Snapshot, len(dto.Projects))
	for i := range dto.Projects {
		snapshot[i] = toDomainProject(dto.Projects[i])
	}
	return snapshot
}

// filterQuery converts a [project.Filter] to a URL query string (including
// the leading "?"). Returns an empty string for a zero filter.
func filterQuery(f project.Filter) string {
	v := url.Values{}
	if f.Status != "" {
		v.Set("status", f.Status.String())
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}
