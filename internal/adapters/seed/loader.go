// Package seed loads an initial set of projects onto the board at startup.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen11/taskboard/internal/domain/project"
	"github.com/jsamuelsen11/taskboard/internal/ports"
)

// file is the YAML document shape of a seed file.
type file struct {
	Projects []entry `yaml:"projects"`
}

// entry is one project in a seed file. Status is optional and defaults to
// active.
type entry struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	People      int    `yaml:"people"`
	Status      string `yaml:"status"`
}

// Load reads the seed file at path and adds its projects to the board in
// file order. Entries that fail entity validation are skipped with a warning
// rather than aborting the load: a bad line in a seed file should not keep
// the service from starting. Entries marked finished are added and then
// moved, so subscribers observe the same transitions a live client would
// produce.
//
// Returns the number of projects added. Fails only when the file cannot be
// read or parsed.
func Load(ctx context.Context, path string, svc ports.BoardService, logger *slog.Logger) (int, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading seed file %s: %w", path, err)
	}

	var doc file
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return 0, fmt.Errorf("parsing seed file %s: %w", path, err)
	}

	added := 0
	for i, e := range doc.Projects {
		status := project.StatusActive
		if e.Status != "" {
			status, err = project.ParseStatus(e.Status)
			if err != nil {
				logger.WarnContext(ctx, "skipping seed entry",
					slog.Int("index", i),
					slog.String("title", e.Title),
					slog.Any("error", err),
				)
				continue
			}
		}

		candidate := project.Project{
			Title:       e.Title,
			Description: e.Description,
			People:      e.People,
			Status:      status,
		}
		if err := candidate.Validate(); err != nil {
			logger.WarnContext(ctx, "skipping seed entry",
				slog.Int("index", i),
				slog.String("title", e.Title),
				slog.Any("error", err),
			)
			continue
		}

		created, err := svc.AddProject(ctx, e.Title, e.Description, e.People)
		if err != nil {
			return added, fmt.Errorf("seeding project %q: %w", e.Title, err)
		}
		added++

		if status != project.StatusActive {
			if err := svc.MoveProject(ctx, created.ID, status); err != nil {
				return added, fmt.Errorf("moving seeded project %q: %w", e.Title, err)
			}
		}
	}

	logger.InfoContext(ctx, "board seeded",
		slog.String("path", path),
		slog.Int("projects", added),
		slog.Int("skipped", len(doc.Projects)-added),
	)
	return added, nil
}
