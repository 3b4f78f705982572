package comment

import (
	"github.com/google/uuid"

	"github.com/cocodas/prier-backend/internal/domain"
)

// CommentResult is returned by create and update.
type CommentResult struct {
	Comment  domain.ProjectComment
	Nickname string
	Profile  domain.ProfileSummary
	IsMine   bool
}

// CommentWithProfile is one entry of a project's comment list.
type CommentWithProfile struct {
	Comment   domain.ProjectComment
	Nickname  string
	AvatarURL string
	Tier      string
	IsMine    bool
}

// MyPageComment is a comment shown on its author's page together with the
// project it was left on.
type MyPageComment struct {
	Comment      domain.ProjectComment
	ProjectID    uuid.UUID
	ProjectTitle string
	TeamName     string
}
