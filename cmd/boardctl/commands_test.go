package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	adapthttp "github.com/jsamuelsen11/taskboard/internal/adapters/http"
	"github.com/jsamuelsen11/taskboard/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/taskboard/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/taskboard/internal/adapters/stream"
	"github.com/jsamuelsen11/taskboard/internal/app"
	"github.com/jsamuelsen11/taskboard/internal/app/board"
	"github.com/jsamuelsen11/taskboard/internal/domain"
	"github.com/jsamuelsen11/taskboard/internal/domain/project"
	"github.com/jsamuelsen11/taskboard/internal/platform/health"
	"github.com/jsamuelsen11/taskboard/internal/ports"
)

// startTestServer runs the full HTTP API against an in-memory board and
// points the --server flag at it. The returned service manipulates the same
// board the commands talk to.
func startTestServer(t *testing.T) ports.BoardService {
	t.Helper()

	svc := app.NewBoardService(board.New(), nil, nil)
	hub := stream.NewHub(svc, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)
	sub := svc.Subscribe(hub)
	t.Cleanup(sub.Unsubscribe)

	handler := adapthttp.NewRouter(
		handlers.NewBoardHandler(svc),
		handlers.NewHealthHandler(health.New()),
		hub,
		middleware.Timeout(5*time.Second),
	)

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	serverURL = ts.URL

	// Calling run functions directly skips Execute, which normally seeds the
	// command context; without one cmd.Context() is nil.
	for _, cmd := range []*cobra.Command{addCmd, listCmd, moveCmd, showCmd, watchCmd} {
		cmd.SetContext(context.Background())
	}

	return svc
}

// captureStdout runs fn while collecting everything it writes to stdout.
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("creating pipe: %v", err)
	}
	os.Stdout = w

	runErr := fn()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = old

	return buf.String(), runErr
}

func TestAddCommand(t *testing.T) {
	svc := startTestServer(t)

	addDescription = "Move the docs site to the new CMS"
	addPeople = 2

	out, err := captureStdout(t, func() error {
		return runAdd(addCmd, []string{"Website relaunch"})
	})
	if err != nil {
		t.Fatalf("runAdd() error = %v", err)
	}

	snapshot, err := svc.Board(context.Background(), project.Filter{})
	if err != nil {
		t.Fatalf("Board() error = %v", err)
	}
	if len(snapshot) != 1 {
		t.Fatalf("len(snapshot) = %d, want 1", len(snapshot))
	}
	if snapshot[0].Title != "Website relaunch" {
		t.Errorf("Title = %q, want %q", snapshot[0].Title, "Website relaunch")
	}
	if snapshot[0].People != 2 {
		t.Errorf("People = %d, want 2", snapshot[0].People)
	}
	if !strings.Contains(out, snapshot[0].ID) {
		t.Errorf("output %q does not contain the new project id", out)
	}
	if !strings.Contains(out, "Website relaunch") {
		t.Errorf("output %q does not contain the project title", out)
	}
}

func TestAddCommand_ValidationError(t *testing.T) {
	startTestServer(t)

	addDescription = "abc"
	addPeople = 1

	_, err := captureStdout(t, func() error {
		return runAdd(addCmd, []string{"Website relaunch"})
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("runAdd() error = %v, want ErrValidation", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("runAdd() error = %T, want *domain.ValidationError", err)
	}
	if verr.Fields["description"] == "" {
		t.Errorf("Fields = %v, want a description entry", verr.Fields)
	}
}

func TestListCommand(t *testing.T) {
	svc := startTestServer(t)

	ctx := context.Background()
	first, err := svc.AddProject(ctx, "Website relaunch", "Move the docs site to the new CMS", 2)
	if err != nil {
		t.Fatalf("AddProject() error = %v", err)
	}
	second, err := svc.AddProject(ctx, "Data migration", "Shift the reporting tables", 3)
	if err != nil {
		t.Fatalf("AddProject() error = %v", err)
	}
	if err := svc.MoveProject(ctx, second.ID, project.StatusFinished); err != nil {
		t.Fatalf("MoveProject() error = %v", err)
	}

	tests := []struct {
		name     string
		status   string
		contains []string
		excludes []string
	}{
		{
			name:     "default lists both columns",
			contains: []string{first.ID, "Website relaunch", second.ID, "Data migration"},
		},
		{
			name:     "active filter",
			status:   "active",
			contains: []string{first.ID},
			excludes: []string{second.ID},
		},
		{
			name:     "finished filter",
			status:   "finished",
			contains: []string{second.ID},
			excludes: []string{first.ID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listStatus = tt.status

			out, err := captureStdout(t, func() error {
				return runList(listCmd, nil)
			})
			if err != nil {
				t.Fatalf("runList() error = %v", err)
			}
			for _, s := range tt.contains {
				if !strings.Contains(out, s) {
					t.Errorf("output %q does not contain %q", out, s)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(out, s) {
					t.Errorf("output %q contains %q", out, s)
				}
			}
		})
	}
}

func TestListCommand_EmptyBoard(t *testing.T) {
	startTestServer(t)

	listStatus = ""

	out, err := captureStdout(t, func() error {
		return runList(listCmd, nil)
	})
	if err != nil {
		t.Fatalf("runList() error = %v", err)
	}
	if !strings.Contains(out, "No projects found.") {
		t.Errorf("output = %q, want the empty board message", out)
	}
}

func TestListCommand_InvalidStatus(t *testing.T) {
	startTestServer(t)

	listStatus = "archived"

	_, err := captureStdout(t, func() error {
		return runList(listCmd, nil)
	})
	if err == nil || !strings.Contains(err.Error(), "invalid status") {
		t.Errorf("runList() error = %v, want invalid status error", err)
	}
}

func TestMoveCommand(t *testing.T) {
	svc := startTestServer(t)

	ctx := context.Background()
	created, err := svc.AddProject(ctx, "Website relaunch", "Move the docs site to the new CMS", 2)
	if err != nil {
		t.Fatalf("AddProject() error = %v", err)
	}

	out, err := captureStdout(t, func() error {
		return runMove(moveCmd, []string{created.ID, "finished"})
	})
	if err != nil {
		t.Fatalf("runMove() error = %v", err)
	}
	if !strings.Contains(out, "moved to finished.") {
		t.Errorf("output = %q, want a moved confirmation", out)
	}

	moved, err := svc.Project(ctx, created.ID)
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}
	if moved.Status != project.StatusFinished {
		t.Errorf("Status = %q, want %q", moved.Status, project.StatusFinished)
	}
}

func TestMoveCommand_InvalidStatus(t *testing.T) {
	startTestServer(t)

	_, err := captureStdout(t, func() error {
		return runMove(moveCmd, []string{"2f6c9a0e-6c1f-4ad5-9d0a-1f1a2b3c4d5e", "archived"})
	})
	if err == nil || !strings.Contains(err.Error(), "invalid status") {
		t.Errorf("runMove() error = %v, want invalid status error", err)
	}
}

func TestMoveCommand_UnknownIDSucceeds(t *testing.T) {
	startTestServer(t)

	// Moving an id that is not on the board is a no-op, not a failure.
	out, err := captureStdout(t, func() error {
		return runMove(moveCmd, []string{"2f6c9a0e-6c1f-4ad5-9d0a-1f1a2b3c4d5e", "finished"})
	})
	if err != nil {
		t.Fatalf("runMove() error = %v", err)
	}
	if !strings.Contains(out, "moved to finished.") {
		t.Errorf("output = %q, want a moved confirmation", out)
	}
}

func TestShowCommand(t *testing.T) {
	svc := startTestServer(t)

	created, err := svc.AddProject(context.Background(), "Website relaunch", "Move the docs site to the new CMS", 2)
	if err != nil {
		t.Fatalf("AddProject() error = %v", err)
	}

	out, err := captureStdout(t, func() error {
		return runShow(showCmd, []string{created.ID})
	})
	if err != nil {
		t.Fatalf("runShow() error = %v", err)
	}

	for _, want := range []string{created.ID, "Website relaunch", "Status: active", "People: 2", "Move the docs site to the new CMS"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}
}

func TestShowCommand_NotFound(t *testing.T) {
	startTestServer(t)

	_, err := captureStdout(t, func() error {
		return runShow(showCmd, []string{"2f6c9a0e-6c1f-4ad5-9d0a-1f1a2b3c4d5e"})
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("runShow() error = %v, want ErrNotFound", err)
	}
}

func TestWatchCommand(t *testing.T) {
	svc := startTestServer(t)

	ctx := context.Background()
	seeded, err := svc.AddProject(ctx, "Initial project", "Already on the board", 1)
	if err != nil {
		t.Fatalf("AddProject() error = %v", err)
	}

	watchStatus = ""

	watchCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	watchCmd.SetContext(watchCtx)

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("creating pipe: %v", err)
	}
	os.Stdout = w
	defer func() { os.Stdout = old }()

	errCh := make(chan error, 1)
	go func() { errCh <- runWatch(watchCmd, nil) }()

	lines := make(chan string, 64)
	go func() {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	// The hub sends the current board on connect.
	waitForLine(t, lines, seeded.Title)

	// A mutation after connect produces a fresh frame.
	added, err := svc.AddProject(ctx, "Second project", "Added while watching", 1)
	if err != nil {
		t.Fatalf("AddProject() error = %v", err)
	}
	waitForLine(t, lines, added.Title)

	cancel()
	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("runWatch() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("runWatch did not return after cancel")
	}
	w.Close()
}

// waitForLine consumes lines until one contains want.
func waitForLine(t *testing.T, lines <-chan string, want string) {
	t.Helper()

	deadline := time.After(5 * time.Second)
	for {
		select {
		case line, ok := <-lines:
			if !ok {
				t.Fatalf("output ended before a line containing %q", want)
			}
			if strings.Contains(line, want) {
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for a line containing %q", want)
		}
	}
}
