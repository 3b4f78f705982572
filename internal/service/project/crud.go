package project

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/cocodas/prier-backend/internal/domain"
	"github.com/cocodas/prier-backend/pkg/ctxutil"
)

// CreateProject publishes a project owned by the caller. Its status follows
// from the feedback window; the score aggregate starts empty.
func (s *Service) CreateProject(ctx context.Context, input CreateProjectInput) (*domain.Project, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	input.normalize()

	now := s.now().UTC()
	p := &domain.Project{
		ID:              uuid.New(),
		UserID:          userID,
		Title:           input.Title,
		Introduce:       input.Introduce,
		Goal:            input.Goal,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		Status:          domain.StatusForPeriod(input.StartDate, input.EndDate, now),
		TeamName:        input.TeamName,
		TeamDescription: input.TeamDescription,
		TeamMate:        input.TeamMate,
		Link:            input.Link,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	p.Recalculate(s.calc)

	if err := s.projects.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("project.CreateProject: %w", err)
	}

	s.log.InfoContext(ctx, "project created",
		slog.String("user_id", userID.String()),
		slog.String("project_id", p.ID.String()),
		slog.String("status", p.Status.String()),
	)
	return p, nil
}

// UpdateProject edits the owner-editable fields of a project. The score
// aggregate is left untouched.
func (s *Service) UpdateProject(ctx context.Context, input UpdateProjectInput) (*domain.Project, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	input.normalize()

	var updated *domain.Project
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := s.ownedForUpdate(txCtx, userID, input.ProjectID)
		if err != nil {
			return err
		}

		now := s.now().UTC()
		p.Title = input.Title
		p.Introduce = input.Introduce
		p.Goal = input.Goal
		p.StartDate = input.StartDate
		p.EndDate = input.EndDate
		p.Status = domain.StatusForPeriod(p.StartDate, p.EndDate, now)
		p.TeamName = input.TeamName
		p.TeamDescription = input.TeamDescription
		p.TeamMate = input.TeamMate
		p.Link = input.Link
		p.UpdatedAt = now

		if err := s.projects.Update(txCtx, p); err != nil {
			return fmt.Errorf("update project: %w", err)
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("project.UpdateProject: %w", err)
	}

	s.log.InfoContext(ctx, "project updated",
		slog.String("user_id", userID.String()),
		slog.String("project_id", updated.ID.String()),
	)
	return updated, nil
}

// DeleteProject removes a project and, through the foreign key, its comments.
func (s *Service) DeleteProject(ctx context.Context, projectID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.ownedForUpdate(txCtx, userID, projectID); err != nil {
			return err
		}
		if err := s.projects.Delete(txCtx, projectID); err != nil {
			return fmt.Errorf("delete project: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("project.DeleteProject: %w", err)
	}

	s.log.InfoContext(ctx, "project deleted",
		slog.String("user_id", userID.String()),
		slog.String("project_id", projectID.String()),
	)
	return nil
}

// GetProject returns a project with its current score.
func (s *Service) GetProject(ctx context.Context, projectID uuid.UUID) (*domain.Project, error) {
	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("project.GetProject: %w", err)
	}
	return p, nil
}

// ExtendFeedback moves the end of the feedback window forward by whole
// weeks. A completed project whose new end lies in the future reopens.
func (s *Service) ExtendFeedback(ctx context.Context, projectID uuid.UUID, weeks int) (*domain.Project, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if weeks < 1 || weeks > s.pages.MaxExtendWeeks {
		return nil, domain.NewValidationError("weeks", fmt.Sprintf("must be between 1 and %d", s.pages.MaxExtendWeeks))
	}

	var updated *domain.Project
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := s.ownedForUpdate(txCtx, userID, projectID)
		if err != nil {
			return err
		}

		now := s.now().UTC()
		p.ExtendFeedback(weeks, now)
		p.UpdatedAt = now

		if err := s.projects.Update(txCtx, p); err != nil {
			return fmt.Errorf("update project: %w", err)
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("project.ExtendFeedback: %w", err)
	}

	s.log.InfoContext(ctx, "feedback window extended",
		slog.String("project_id", projectID.String()),
		slog.Int("weeks", weeks),
		slog.Time("end_date", updated.EndDate),
	)
	return updated, nil
}

func (s *Service) ownedForUpdate(ctx context.Context, userID, projectID uuid.UUID) (*domain.Project, error) {
	p, err := s.projects.GetByIDForUpdate(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	if !p.IsOwnedBy(userID) {
		return nil, domain.ErrForbidden
	}
	return p, nil
}
