// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/taskboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskboard/internal/domain/project"
	"github.com/jsamuelsen11/taskboard/internal/ports"
)

// BoardHandler handles HTTP requests for the project board.
type BoardHandler struct {
	svc ports.BoardService
}

// NewBoardHandler creates a new BoardHandler with the given service port.
func NewBoardHandler(svc ports.BoardService) *BoardHandler {
	return &BoardHandler{svc: svc}
}

// GetBoard handles GET /api/v1/board. An optional status query parameter
// narrows the snapshot to a single board column.
func (h *BoardHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	var filter project.Filter
	if raw := r.URL.Query().Get("status"); raw != "" {
		status, err := project.ParseStatus(raw)
		if err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
		filter.Status = status
	}

	snapshot, err := h.svc.Board(r.Context(), filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBoardResponse(snapshot))
}

// GetProject handles GET /api/v1/projects/{id}.
func (h *BoardHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := h.svc.Project(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProjectResponse(p))
}

// CreateProject handles POST /api/v1/projects. The request body is checked
// against the form constraints; the board itself never rejects a project.
func (h *BoardHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProjectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.AddProject(r.Context(), req.Title, req.Description, req.People)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToProjectResponse(created))
}

// MoveProject handles POST /api/v1/projects/{id}/move. A well-formed request
// always yields 204: moving an unknown project or re-asserting the current
// status is a silent no-op.
func (h *BoardHandler) MoveProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.MoveProjectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	// Validate has already vetted the status string.
	status, err := project.ParseStatus(req.Status)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.MoveProject(r.Context(), id, status); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
