package project

import (
	"fmt"

	"github.com/jsamuelsen11/taskboard/internal/domain"
)

// Status represents which board list a Project is on. The enum is closed:
// no other states and no sub-statuses exist.
type Status string

const (
	StatusActive   Status = "active"
	StatusFinished Status = "finished"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusFinished:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// ParseStatus converts a raw string into a Status. Unknown values yield an
// error wrapping domain.ErrValidation.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("%w: unknown status %q", domain.ErrValidation, raw)
	}
	return s, nil
}
