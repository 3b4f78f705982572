package comment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/cocodas/prier-backend/internal/domain"
	"github.com/cocodas/prier-backend/pkg/ctxutil"
)

// Mutation names used for metrics.
const (
	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"
)

// CreateComment stores a comment by the authenticated user and adds its score
// to the project aggregate in the same transaction.
func (s *Service) CreateComment(ctx context.Context, input CreateCommentInput) (_ *CommentResult, err error) {
	defer func() { s.observe(opCreate, err) }()

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(s.cfg); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	c := &domain.ProjectComment{
		ID:        uuid.New(),
		ProjectID: input.ProjectID,
		UserID:    userID,
		Content:   strings.TrimSpace(input.Content),
		Score:     input.Score,
		CreatedAt: now,
		UpdatedAt: now,
	}

	var (
		project *domain.Project
		author  *domain.ProfileSummary
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := s.projects.GetByIDForUpdate(txCtx, input.ProjectID)
		if err != nil {
			return fmt.Errorf("get project: %w", err)
		}

		// The project is resolved first: a missing project is not_found even
		// for a caller whose account is gone.
		if author, err = s.resolveAuthor(txCtx, userID); err != nil {
			return err
		}

		if err := s.comments.Create(txCtx, c); err != nil {
			return fmt.Errorf("create comment: %w", err)
		}

		p.ApplyScoreDelta(domain.AddComment(c.Score), s.calc)
		if err := s.projects.UpdateScore(txCtx, p); err != nil {
			return fmt.Errorf("update project score: %w", err)
		}

		project = p
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("comment.CreateComment: %w", err)
	}

	s.log.InfoContext(ctx, "comment created",
		slog.String("user_id", userID.String()),
		slog.String("project_id", project.ID.String()),
		slog.String("comment_id", c.ID.String()),
		slog.Float64("project_score", project.Score),
	)

	return &CommentResult{
		Comment:  *c,
		Nickname: author.Nickname,
		Profile:  *author,
		IsMine:   true,
	}, nil
}

// UpdateComment edits a comment. Only the author may edit, and the comment
// must belong to the given project; otherwise nothing is written.
func (s *Service) UpdateComment(ctx context.Context, input UpdateCommentInput) (_ *CommentResult, err error) {
	defer func() { s.observe(opUpdate, err) }()

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(s.cfg); err != nil {
		return nil, err
	}

	author, err := s.resolveAuthor(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("comment.UpdateComment: %w", err)
	}

	var (
		updated  domain.ProjectComment
		project  *domain.Project
		oldScore float64
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, c, err := s.loadForMutation(txCtx, userID, input.ProjectID, input.CommentID)
		if err != nil {
			return err
		}

		oldScore = c.Score
		c.Content = strings.TrimSpace(input.Content)
		c.Score = input.Score
		c.UpdatedAt = s.now().UTC()

		if err := s.comments.Update(txCtx, c); err != nil {
			return fmt.Errorf("update comment: %w", err)
		}

		p.ApplyScoreDelta(domain.ChangeComment(oldScore, c.Score), s.calc)
		if err := s.projects.UpdateScore(txCtx, p); err != nil {
			return fmt.Errorf("update project score: %w", err)
		}

		updated = *c
		project = p
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("comment.UpdateComment: %w", err)
	}

	s.log.InfoContext(ctx, "comment updated",
		slog.String("user_id", userID.String()),
		slog.String("project_id", project.ID.String()),
		slog.String("comment_id", updated.ID.String()),
		slog.Float64("old_score", oldScore),
		slog.Float64("new_score", updated.Score),
	)

	return &CommentResult{
		Comment:  updated,
		Nickname: author.Nickname,
		Profile:  *author,
		IsMine:   true,
	}, nil
}

// DeleteComment removes a comment and subtracts its score from the project
// aggregate. Only the author may delete.
func (s *Service) DeleteComment(ctx context.Context, input DeleteCommentInput) (err error) {
	defer func() { s.observe(opDelete, err) }()

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return err
	}

	var project *domain.Project
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, c, err := s.loadForMutation(txCtx, userID, input.ProjectID, input.CommentID)
		if err != nil {
			return err
		}

		if err := s.comments.Delete(txCtx, c.ID); err != nil {
			return fmt.Errorf("delete comment: %w", err)
		}

		p.ApplyScoreDelta(domain.RemoveComment(c.Score), s.calc)
		if err := s.projects.UpdateScore(txCtx, p); err != nil {
			return fmt.Errorf("update project score: %w", err)
		}

		project = p
		return nil
	})
	if err != nil {
		return fmt.Errorf("comment.DeleteComment: %w", err)
	}

	s.log.InfoContext(ctx, "comment deleted",
		slog.String("user_id", userID.String()),
		slog.String("project_id", project.ID.String()),
		slog.String("comment_id", input.CommentID.String()),
		slog.Float64("project_score", project.Score),
	)
	return nil
}

// loadForMutation locks the project and checks that the comment belongs to
// it and was written by userID.
func (s *Service) loadForMutation(ctx context.Context, userID, projectID, commentID uuid.UUID) (*domain.Project, *domain.ProjectComment, error) {
	p, err := s.projects.GetByIDForUpdate(ctx, projectID)
	if err != nil {
		return nil, nil, fmt.Errorf("get project: %w", err)
	}

	c, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return nil, nil, fmt.Errorf("get comment: %w", err)
	}

	if !c.BelongsTo(projectID) {
		return nil, nil, domain.ErrProjectMismatch
	}
	if !c.IsAuthoredBy(userID) {
		return nil, nil, domain.ErrForbidden
	}
	return p, c, nil
}

// resolveAuthor returns the caller's profile. A caller whose account no
// longer exists is treated as unauthenticated.
func (s *Service) resolveAuthor(ctx context.Context, userID uuid.UUID) (*domain.ProfileSummary, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("get author profile: %w", err)
	}
	return profile, nil
}
