// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/taskboard/internal/domain/project"
)

// ProjectResponse represents a single project in HTTP responses.
type ProjectResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	People      int    `json:"people"`
	Status      string `json:"status"`
}

// BoardResponse represents an ordered board snapshot in HTTP responses.
// The same shape is pushed over the board stream, so REST and WebSocket
// consumers decode one wire format.
type BoardResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Count    int               `json:"count"`
}

// ToProjectResponse converts a domain Project to an HTTP response DTO.
func ToProjectResponse(p project.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		People:      p.People,
		Status:      p.Status.String(),
	}
}

// ToBoardResponse converts a board snapshot to an HTTP response DTO,
// preserving the snapshot's insertion order.
func ToBoardResponse(s project.Snapshot) BoardResponse {
	items := make([]ProjectResponse, len(s))
	for i := range s {
		items[i] = ToProjectResponse(s[i])
	}
	return BoardResponse{
		Projects: items,
		Count:    len(items),
	}
}
