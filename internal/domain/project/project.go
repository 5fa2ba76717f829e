package project

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/taskboard/internal/domain"
)

// Project represents a single proposal on the board. It is a plain value:
// copying a Project yields a fully independent record, which is what makes
// snapshots cheap to hand out.
type Project struct {
	ID          string
	Title       string
	Description string
	People      int
	Status      Status
}

// New constructs a Project with a freshly generated unique id and Active
// status. The id is a random UUID, immutable for the lifetime of the record.
func New(title, description string, people int) Project {
	return Project{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		People:      people,
		Status:      StatusActive,
	}
}

// Validate checks business rules for the Project entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (p *Project) Validate() error {
	fields := make(map[string]string)

	if !domain.Validate(p.Title, domain.Constraints{Required: true}) {
		fields["title"] = domain.MsgRequired
	}
	if p.People < 1 {
		fields["people"] = fmt.Sprintf("must be positive, got %d", p.People)
	}
	if !p.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", p.Status)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
