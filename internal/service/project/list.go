package project

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/cocodas/prier-backend/internal/domain"
	"github.com/cocodas/prier-backend/pkg/ctxutil"
)

// SearchProjects returns one page of projects, newest first. The keyword
// matches title, introduction and team name case-insensitively; an empty
// keyword lists every project.
func (s *Service) SearchProjects(ctx context.Context, input SearchInput) (*domain.Page[domain.Project], error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	f := domain.ProjectFilter{Status: input.Status}
	if kw := strings.TrimSpace(input.Keyword); kw != "" {
		f.Keyword = &kw
	}

	page, err := s.list(ctx, f, input.Page, s.pages.SearchPageSize)
	if err != nil {
		return nil, fmt.Errorf("project.SearchProjects: %w", err)
	}
	return page, nil
}

// ListMyProjects returns the caller's projects.
func (s *Service) ListMyProjects(ctx context.Context, input ListInput) (*domain.Page[domain.Project], error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	page, err := s.list(ctx, domain.ProjectFilter{OwnerID: &userID, Status: input.Status}, input.Page, s.pages.UserPageSize)
	if err != nil {
		return nil, fmt.Errorf("project.ListMyProjects: %w", err)
	}
	return page, nil
}

// ListUserProjects returns the projects of another user.
func (s *Service) ListUserProjects(ctx context.Context, userID uuid.UUID, input ListInput) (*domain.Page[domain.Project], error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	page, err := s.list(ctx, domain.ProjectFilter{OwnerID: &userID, Status: input.Status}, input.Page, s.pages.UserPageSize)
	if err != nil {
		return nil, fmt.Errorf("project.ListUserProjects: %w", err)
	}
	return page, nil
}

func (s *Service) list(ctx context.Context, f domain.ProjectFilter, page, size int) (*domain.Page[domain.Project], error) {
	f.Limit = size
	f.Offset = page * size

	items, total, err := s.projects.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return &domain.Page[domain.Project]{
		Items:    items,
		Page:     page,
		PageSize: size,
		Total:    total,
	}, nil
}

// GetRecentProject returns the newest project of userID with the number of
// comments it has received.
func (s *Service) GetRecentProject(ctx context.Context, userID uuid.UUID) (*domain.RecentProject, error) {
	p, err := s.projects.GetLatestByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("project.GetRecentProject: %w", err)
	}

	n, err := s.comments.CountByProject(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("project.GetRecentProject: %w", err)
	}

	return &domain.RecentProject{Project: *p, FeedbackCount: n}, nil
}
