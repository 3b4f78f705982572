package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProjectComment is a scored piece of feedback on a project.
type ProjectComment struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	UserID    uuid.UUID
	Content   string
	Score     float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAuthoredBy reports whether userID wrote the comment.
func (c *ProjectComment) IsAuthoredBy(userID uuid.UUID) bool {
	return c.UserID == userID
}

// BelongsTo reports whether the comment was left on projectID.
func (c *ProjectComment) BelongsTo(projectID uuid.UUID) bool {
	return c.ProjectID == projectID
}

// CommentWithAuthor is a comment joined with the author's display data.
type CommentWithAuthor struct {
	Comment         ProjectComment
	AuthorNickname  string
	AuthorAvatarKey *string
}

// CommentWithProject is a comment joined with the project it was left on.
type CommentWithProject struct {
	Comment      ProjectComment
	ProjectTitle string
	TeamName     string
}
