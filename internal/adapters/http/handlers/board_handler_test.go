package handlers_test

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/taskboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskboard/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/taskboard/internal/domain"
	"github.com/jsamuelsen11/taskboard/internal/domain/project"
	"github.com/jsamuelsen11/taskboard/mocks"
)

func newBoardHandler(t *testing.T) (*handlers.BoardHandler, *mocks.MockBoardService) {
	t.Helper()
	svc := mocks.NewMockBoardService(t)
	return handlers.NewBoardHandler(svc), svc
}

// --- GetBoard ---

func TestGetBoard_Success(t *testing.T) {
	t.Parallel()
	h, svc := newBoardHandler(t)

	snapshot := project.Snapshot{validProject(), validProject()}
	svc.EXPECT().Board(mock.Anything, project.Filter{}).Return(snapshot, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/board", nil)
	h.GetBoard(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.BoardResponse](t, rec)
	if resp.Count != 2 {
		t.Errorf("Count = %d, want 2", resp.Count)
	}
}

func TestGetBoard_StatusFilter(t *testing.T) {
	t.Parallel()
	h, svc := newBoardHandler(t)

	finished := validProject()
	finished.Status = project.StatusFinished
	svc.EXPECT().Board(mock.Anything, project.Filter{Status: project.StatusFinished}).
		Return(project.Snapshot{finished}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/board?status=finished", nil)
	h.GetBoard(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.BoardResponse](t, rec)
	if resp.Count != 1 {
		t.Errorf("Count = %d, want 1", resp.Count)
	}
	if resp.Projects[0].Status != "finished" {
		t.Errorf("Projects[0].Status = %q, want %q", resp.Projects[0].Status, "finished")
	}
}

func TestGetBoard_InvalidStatus(t *testing.T) {
	t.Parallel()
	h, _ := newBoardHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/board?status=bogus", nil)
	h.GetBoard(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestGetBoard_ServiceError(t *testing.T) {
	t.Parallel()
	h, svc := newBoardHandler(t)

	svc.EXPECT().Board(mock.Anything, project.Filter{}).Return(nil, domain.ErrUnavailable)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/board", nil)
	h.GetBoard(rec, req)

	requireStatus(t, rec, http.StatusBadGateway)
}

// --- GetProject ---

func TestGetProject_Success(t *testing.T) {
	t.Parallel()
	h, svc := newBoardHandler(t)

	p := validProject()
	svc.EXPECT().Project(mock.Anything, testProjectID).Return(p, nil)

	rec := httptest.NewRecorder()
	req := withChiParams(
		httptest.NewRequest(http.MethodGet, "/api/v1/projects/"+testProjectID, nil),
		map[string]string{"id": testProjectID},
	)
	h.GetProject(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.ProjectResponse](t, rec)
	if resp.ID != testProjectID {
		t.Errorf("ID = %q, want %q", resp.ID, testProjectID)
	}
}

func TestGetProject_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newBoardHandler(t)

	svc.EXPECT().Project(mock.Anything, "nonexistent-id").
		Return(project.Project{}, fmt.Errorf("project nonexistent-id: %w", domain.ErrNotFound))

	rec := httptest.NewRecorder()
	req := withChiParams(
		httptest.NewRequest(http.MethodGet, "/api/v1/projects/nonexistent-id", nil),
		map[string]string{"id": "nonexistent-id"},
	)
	h.GetProject(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

// --- CreateProject ---

func TestCreateProject_Success(t *testing.T) {
	t.Parallel()
	h, svc := newBoardHandler(t)

	created := validProject()
	svc.EXPECT().AddProject(mock.Anything, "Build API", "Create a REST API", 3).
		Return(created, nil)

	body := jsonBody(t, dto.CreateProjectRequest{Title: "Build API", Description: "Create a REST API", People: 3})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects", body)
	req.Header.Set("Content-Type", "application/json")
	h.CreateProject(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.ProjectResponse](t, rec)
	if resp.Title != "Build API" {
		t.Errorf("Title = %q, want %q", resp.Title, "Build API")
	}
	if resp.Status != "active" {
		t.Errorf("Status = %q, want %q", resp.Status, "active")
	}
}

func TestCreateProject_InvalidJSON(t *testing.T) {
	t.Parallel()
	h, _ := newBoardHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects", bytes.NewBufferString("{bad"))
	req.Header.Set("Content-Type", "application/json")
	h.CreateProject(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestCreateProject_ValidationError(t *testing.T) {
	t.Parallel()
	h, _ := newBoardHandler(t)

	body := jsonBody(t, dto.CreateProjectRequest{Title: "", Description: "abc", People: 0})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects", body)
	req.Header.Set("Content-Type", "application/json")
	h.CreateProject(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestCreateProject_PeopleOutOfRange(t *testing.T) {
	t.Parallel()
	h, _ := newBoardHandler(t)

	body := jsonBody(t, dto.CreateProjectRequest{Title: "Big push", Description: "All hands on deck", People: 12})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects", body)
	req.Header.Set("Content-Type", "application/json")
	h.CreateProject(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- MoveProject ---

func TestMoveProject_Success(t *testing.T) {
	t.Parallel()
	h, svc := newBoardHandler(t)

	svc.EXPECT().MoveProject(mock.Anything, testProjectID, project.StatusFinished).Return(nil)

	body := jsonBody(t, dto.MoveProjectRequest{Status: "finished"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects/"+testProjectID+"/move", body)
	req.Header.Set("Content-Type", "application/json")
	req = withChiParams(req, map[string]string{"id": testProjectID})
	h.MoveProject(rec, req)

	requireStatus(t, rec, http.StatusNoContent)
}

func TestMoveProject_UnknownIDStillNoContent(t *testing.T) {
	t.Parallel()
	h, svc := newBoardHandler(t)

	svc.EXPECT().MoveProject(mock.Anything, "nonexistent-id", project.StatusFinished).Return(nil)

	body := jsonBody(t, dto.MoveProjectRequest{Status: "finished"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects/nonexistent-id/move", body)
	req.Header.Set("Content-Type", "application/json")
	req = withChiParams(req, map[string]string{"id": "nonexistent-id"})
	h.MoveProject(rec, req)

	requireStatus(t, rec, http.StatusNoContent)
}

func TestMoveProject_InvalidJSON(t *testing.T) {
	t.Parallel()
	h, _ := newBoardHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects/"+testProjectID+"/move", bytes.NewBufferString("{bad"))
	req.Header.Set("Content-Type", "application/json")
	req = withChiParams(req, map[string]string{"id": testProjectID})
	h.MoveProject(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestMoveProject_UnknownStatus(t *testing.T) {
	t.Parallel()
	h, _ := newBoardHandler(t)

	body := jsonBody(t, dto.MoveProjectRequest{Status: "archived"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects/"+testProjectID+"/move", body)
	req.Header.Set("Content-Type", "application/json")
	req = withChiParams(req, map[string]string{"id": testProjectID})
	h.MoveProject(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- Error propagation ---

func TestBoardHandler_ErrorPropagation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", domain.ErrNotFound, http.StatusNotFound},
		{"validation", &domain.ValidationError{Fields: map[string]string{"x": "bad"}}, http.StatusBadRequest},
		{"conflict", domain.ErrConflict, http.StatusConflict},
		{"unavailable", domain.ErrUnavailable, http.StatusBadGateway},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newBoardHandler(t)

			svc.EXPECT().Project(mock.Anything, testProjectID).Return(project.Project{}, tt.err)

			rec := httptest.NewRecorder()
			req := withChiParams(
				httptest.NewRequest(http.MethodGet, "/api/v1/projects/"+testProjectID, nil),
				map[string]string{"id": testProjectID},
			)
			h.GetProject(rec, req)

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}
