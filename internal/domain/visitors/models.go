package visitors

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrNameRequired         = errors.New("name is required")
	ErrFavoriteTeamRequired = errors.New("favorite team is required")
)

// Registration is the welcome form as submitted.
type Registration struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	FavoriteTeam string `json:"favoriteTeam"`
}

// Visitor is one visitor log row.
type Visitor struct {
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	FavoriteTeam string    `json:"favoriteTeam"`
	LoggedAt     time.Time `json:"loggedAt"`
}

// ValidationError lists every missing required field of a registration.
type ValidationError struct {
	Problems []error
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		msgs = append(msgs, p.Error())
	}
	return fmt.Sprintf("invalid registration: %s", strings.Join(msgs, "; "))
}

// Unwrap exposes the individual problems to errors.Is.
func (e *ValidationError) Unwrap() []error {
	return e.Problems
}

// AsValidationError attempts to unwrap an error into a ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}

// Normalize trims every field of the registration.
func (r Registration) Normalize() Registration {
	return Registration{
		Name:         strings.TrimSpace(r.Name),
		Email:        strings.TrimSpace(r.Email),
		FavoriteTeam: strings.TrimSpace(r.FavoriteTeam),
	}
}

// Validate checks the required fields of a normalized registration.
// Email is optional.
func (r Registration) Validate() error {
	var problems []error
	if r.Name == "" {
		problems = append(problems, ErrNameRequired)
	}
	if r.FavoriteTeam == "" {
		problems = append(problems, ErrFavoriteTeamRequired)
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
