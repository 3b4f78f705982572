package project

import (
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/cocodas/prier-backend/internal/domain"
)

const (
	maxTitleLength = 100
	maxTextLength  = 2000
)

// ProjectFields are the owner-editable attributes of a project.
type ProjectFields struct {
	Title           string
	Introduce       string
	Goal            string
	StartDate       time.Time
	EndDate         time.Time
	TeamName        string
	TeamDescription string
	TeamMate        string
	Link            string
}

func (f *ProjectFields) normalize() {
	f.Title = strings.TrimSpace(f.Title)
	f.Introduce = strings.TrimSpace(f.Introduce)
	f.Goal = strings.TrimSpace(f.Goal)
	f.TeamName = strings.TrimSpace(f.TeamName)
	f.TeamDescription = strings.TrimSpace(f.TeamDescription)
	f.TeamMate = strings.TrimSpace(f.TeamMate)
	f.Link = strings.TrimSpace(f.Link)
}

func (f *ProjectFields) validate(errs []domain.FieldError) []domain.FieldError {
	switch n := utf8.RuneCountInString(strings.TrimSpace(f.Title)); {
	case n == 0:
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	case n > maxTitleLength:
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 100 characters"})
	}
	if strings.TrimSpace(f.TeamName) == "" {
		errs = append(errs, domain.FieldError{Field: "team_name", Message: "required"})
	}
	if utf8.RuneCountInString(f.Introduce) > maxTextLength {
		errs = append(errs, domain.FieldError{Field: "introduce", Message: "max 2000 characters"})
	}
	if utf8.RuneCountInString(f.Goal) > maxTextLength {
		errs = append(errs, domain.FieldError{Field: "goal", Message: "max 2000 characters"})
	}

	if f.StartDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "start_date", Message: "required"})
	}
	if f.EndDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "end_date", Message: "required"})
	}
	if !f.StartDate.IsZero() && !f.EndDate.IsZero() && f.EndDate.Before(f.StartDate) {
		errs = append(errs, domain.FieldError{Field: "end_date", Message: "must not be before start_date"})
	}

	if link := strings.TrimSpace(f.Link); link != "" {
		u, err := url.Parse(link)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, domain.FieldError{Field: "link", Message: "must be an http(s) URL"})
		}
	}
	return errs
}

// CreateProjectInput holds the parameters for publishing a project.
type CreateProjectInput struct {
	ProjectFields
}

// Validate checks all fields and collects all errors.
func (i *CreateProjectInput) Validate() error {
	if errs := i.validate(nil); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateProjectInput holds the parameters for editing a project.
type UpdateProjectInput struct {
	ProjectID uuid.UUID
	ProjectFields
}

// Validate checks all fields and collects all errors.
func (i *UpdateProjectInput) Validate() error {
	var errs []domain.FieldError
	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	errs = i.validate(errs)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SearchInput holds the parameters of the public project listing.
type SearchInput struct {
	Keyword string
	Status  *domain.ProjectStatus
	Page    int
}

// Validate checks all fields and collects all errors.
func (i *SearchInput) Validate() error {
	var errs []domain.FieldError

	if i.Page < 0 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must be non-negative"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be PREPARING, IN_PROGRESS, or COMPLETED"})
	}
	if utf8.RuneCountInString(i.Keyword) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "search", Message: "max 100 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListInput holds the parameters of a per-user project listing.
type ListInput struct {
	Status *domain.ProjectStatus
	Page   int
}

// Validate checks all fields and collects all errors.
func (i *ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Page < 0 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must be non-negative"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be PREPARING, IN_PROGRESS, or COMPLETED"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
