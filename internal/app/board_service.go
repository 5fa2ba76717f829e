// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/taskboard/internal/app/board"
	"github.com/jsamuelsen11/taskboard/internal/domain/project"
	"github.com/jsamuelsen11/taskboard/internal/platform/telemetry"
	"github.com/jsamuelsen11/taskboard/internal/ports"
)

// Compile-time check that BoardService implements ports.BoardService.
var _ ports.BoardService = (*BoardService)(nil)

// BoardService implements ports.BoardService on top of the in-memory store.
// It adds structured logging and mutation metrics around the store's
// operations but contains no board logic of its own; ordering, fan-out, and
// silent-no-op semantics all live in the store.
type BoardService struct {
	store   *board.Store
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// NewBoardService creates a BoardService. metrics may be nil, in which case
// mutation metrics are skipped. A nil logger is replaced with a no-op logger.
func NewBoardService(store *board.Store, metrics *telemetry.Metrics, logger *slog.Logger) *BoardService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &BoardService{
		store:   store,
		metrics: metrics,
		logger:  logger,
	}
}

// AddProject appends a new Active project to the board. It stores the
// arguments verbatim and never fails; content checks belong to the callers
// at the transport edge.
func (s *BoardService) AddProject(ctx context.Context, title, description string, people int) (project.Project, error) {
	start := time.Now()

	created := s.store.Add(title, description, people)

	s.logger.InfoContext(ctx, "project added",
		slog.String("operation", "AddProject"),
		slog.String("id", created.ID),
		slog.String("title", created.Title),
	)
	s.recordMutation(ctx, "add", string(created.Status), start)

	return created, nil
}

// MoveProject transitions a project to the given status. Unknown ids and
// same-status moves are tolerated silently, so MoveProject never fails.
func (s *BoardService) MoveProject(ctx context.Context, id string, status project.Status) error {
	start := time.Now()

	s.store.Move(id, status)

	s.logger.InfoContext(ctx, "project moved",
		slog.String("operation", "MoveProject"),
		slog.String("id", id),
		slog.String("status", string(status)),
	)
	s.recordMutation(ctx, "move", string(status), start)

	return nil
}

// Project returns a single project by id.
// Returns domain.ErrNotFound if no project has that id.
func (s *BoardService) Project(ctx context.Context, id string) (project.Project, error) {
	p, err := s.store.Get(id)
	if err != nil {
		s.logger.WarnContext(ctx, "project lookup failed",
			slog.String("operation", "Project"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return project.Project{}, err
	}

	return p, nil
}

// Board returns a snapshot of the board narrowed by filter, in creation
// order. The zero filter returns every project.
func (s *BoardService) Board(ctx context.Context, filter project.Filter) (project.Snapshot, error) {
	s.logger.InfoContext(ctx, "listing board",
		slog.String("operation", "Board"),
		slog.String("status", string(filter.Status)),
	)

	return s.store.Snapshot().Filter(filter), nil
}

// Subscribe registers sub for snapshot notifications and returns its handle.
func (s *BoardService) Subscribe(sub ports.BoardSubscriber) ports.Subscription {
	return s.store.Subscribe(sub)
}

// recordMutation records mutation duration and count metrics.
// Safe to call with nil metrics.
func (s *BoardService) recordMutation(ctx context.Context, operation, status string, start time.Time) {
	if s.metrics == nil {
		return
	}

	attrs := metric.WithAttributes(
		telemetry.AttrOperation.String(operation),
		telemetry.AttrBoardStatus.String(status),
	)

	s.metrics.BoardMutationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	s.metrics.BoardMutationTotal.Add(ctx, 1, attrs)
}
