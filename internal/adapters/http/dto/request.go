package dto

import (
	"github.com/jsamuelsen11/taskboard/internal/domain"
	"github.com/jsamuelsen11/taskboard/internal/domain/project"
)

// Form constraints for the create-project form. The board itself accepts
// anything; these checks gate what comes in over HTTP.
var (
	titleConstraints       = domain.Constraints{Required: true}
	descriptionConstraints = domain.Constraints{Required: true, MinLength: 5}
	peopleConstraints      = domain.Constraints{Required: true, Min: domain.Float(1), Max: domain.Float(5)}
)

const (
	msgDescription = "is required and must be at least 5 characters"
	msgPeople      = "must be between 1 and 5"
	msgStatus      = "must be one of: active, finished"
)

// CreateProjectRequest represents the JSON body for adding a project to the
// board.
type CreateProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	People      int    `json:"people"`
}

// Validate checks the request against the form constraints.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateProjectRequest) Validate() error {
	fields := make(map[string]string)

	if !domain.Validate(r.Title, titleConstraints) {
		fields["title"] = domain.MsgRequired
	}
	if !domain.Validate(r.Description, descriptionConstraints) {
		fields["description"] = msgDescription
	}
	if !domain.Validate(r.People, peopleConstraints) {
		fields["people"] = msgPeople
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// MoveProjectRequest represents the JSON body for moving a project to another
// board column.
type MoveProjectRequest struct {
	Status string `json:"status"`
}

// Validate checks that the target status names a board column.
// Returns a *domain.ValidationError if it does not.
func (r *MoveProjectRequest) Validate() error {
	if _, err := project.ParseStatus(r.Status); err != nil {
		return &domain.ValidationError{Fields: map[string]string{"status": msgStatus}}
	}
	return nil
}
