package boardapi

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/taskboard/internal/domain/project"
	"github.com/jsamuelsen11/taskboard/internal/platform/httpclient"
)

// Client is the outbound adapter for the board service's HTTP API.
//
// All methods translate between domain types and the API's wire
// representations. HTTP errors are mapped to domain errors (ErrNotFound,
// ErrValidation, etc.) by [TranslateHTTPError].
//
// The underlying [httpclient.Client] provides circuit breaking, retry with
// exponential backoff, and OpenTelemetry tracing for every outbound call.
type Client struct {
	req    *Requester
	logger *slog.Logger
}

// NewClient creates a Client that sends requests through the given
// [httpclient.Client]. The client's BaseURL should point to the board
// service root (e.g. "http://localhost:8080"). The logger is used for
// error-level diagnostics on failed or unexpected responses.
func NewClient(client *httpclient.Client, logger *slog.Logger) *Client {
	return &Client{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// Board fetches the board from GET /api/v1/board, optionally filtered by
// status. Projects come back in creation order.
func (c *Client) Board(ctx context.Context, filter project.Filter) (project.Snapshot, error) {
	path := "/api/v1/board" + filterQuery(filter)

	var dto boardDTO
	if err := c.req.Do(ctx, http.MethodGet, path, http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	return toDomainSnapshot(dto), nil
}

// GetProject fetches a single project by id from GET /api/v1/projects/{id}.
// Returns [domain.ErrNotFound] if no project has that id.
func (c *Client) GetProject(ctx context.Context, id string) (project.Project, error) {
	path := "/api/v1/projects/" + url.PathEscape(id)

	var dto projectDTO
	if err := c.req.Do(ctx, http.MethodGet, path, http.StatusOK, nil, &dto); err != nil {
		return project.Project{}, err
	}
	return toDomainProject(dto), nil
}

// CreateProject sends a POST /api/v1/projects and returns the created
// project with its server-assigned id and Active status. Returns
// [domain.ErrValidation] if the service rejects the payload.
func (c *Client) CreateProject(ctx context.Context, title, description string, people int) (project.Project, error) {
	reqDTO := createProjectDTO{
		Title:       title,
		Description: description,
		People:      people,
	}

	var respDTO projectDTO
	if err := c.req.Do(ctx, http.MethodPost, "/api/v1/projects", http.StatusCreated, reqDTO, &respDTO); err != nil {
		return project.Project{}, err
	}
	return toDomainProject(respDTO), nil
}

// MoveProject sends a POST /api/v1/projects/{id}/move. The service answers
// 204 even for unknown ids and same-status moves, so a nil return does not
// imply the board changed.
func (c *Client) MoveProject(ctx context.Context, id string, status project.Status) error {
	path := "/api/v1/projects/" + url.PathEscape(id) + "/move"
	return c.req.Do(ctx, http.MethodPost, path, http.StatusNoContent, moveProjectDTO{Status: status.String()}, nil)
}
