package comment

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/cocodas/prier-backend/internal/config"
	"github.com/cocodas/prier-backend/internal/domain"
)

// CreateCommentInput holds the parameters for leaving a comment on a project.
type CreateCommentInput struct {
	ProjectID uuid.UUID
	Content   string
	Score     float64
}

// Validate checks all fields and collects all errors.
func (i *CreateCommentInput) Validate(cfg config.ScoringConfig) error {
	var errs []domain.FieldError

	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	errs = validateBody(errs, i.Content, i.Score, cfg)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateCommentInput holds the parameters for editing a comment.
type UpdateCommentInput struct {
	ProjectID uuid.UUID
	CommentID uuid.UUID
	Content   string
	Score     float64
}

// Validate checks all fields and collects all errors.
func (i *UpdateCommentInput) Validate(cfg config.ScoringConfig) error {
	var errs []domain.FieldError

	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	if i.CommentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "comment_id", Message: "required"})
	}
	errs = validateBody(errs, i.Content, i.Score, cfg)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// DeleteCommentInput identifies the comment to remove.
type DeleteCommentInput struct {
	ProjectID uuid.UUID
	CommentID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *DeleteCommentInput) Validate() error {
	var errs []domain.FieldError

	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	if i.CommentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "comment_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateBody(errs []domain.FieldError, content string, score float64, cfg config.ScoringConfig) []domain.FieldError {
	content = strings.TrimSpace(content)
	if content == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	} else if utf8.RuneCountInString(content) > cfg.MaxContentLength {
		errs = append(errs, domain.FieldError{
			Field:   "content",
			Message: fmt.Sprintf("max %d characters", cfg.MaxContentLength),
		})
	}

	if score < cfg.MinScore || score > cfg.MaxScore {
		errs = append(errs, domain.FieldError{
			Field:   "score",
			Message: fmt.Sprintf("must be between %g and %g", cfg.MinScore, cfg.MaxScore),
		})
	} else if !domain.OnScoreGrid(score) {
		errs = append(errs, domain.FieldError{Field: "score", Message: "at most one decimal place"})
	}
	return errs
}
