// Package project implements project publishing, listings and score
// maintenance.
package project

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/cocodas/prier-backend/internal/config"
	"github.com/cocodas/prier-backend/internal/domain"
)

type projectRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	Create(ctx context.Context, p *domain.Project) error
	Update(ctx context.Context, p *domain.Project) error
	UpdateScore(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, f domain.ProjectFilter) ([]domain.Project, int, error)
	GetLatestByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.Project, error)
	RecountAggregates(ctx context.Context) ([]domain.Project, error)
}

type commentCounter interface {
	CountByProject(ctx context.Context, projectID uuid.UUID) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements project operations.
type Service struct {
	log      *slog.Logger
	tx       txManager
	projects projectRepo
	comments commentCounter
	calc     domain.ScoreCalculator
	pages    config.PaginationConfig
	now      func() time.Time
}

// NewService creates a new project service.
func NewService(
	log *slog.Logger,
	tx txManager,
	projects projectRepo,
	comments commentCounter,
	calc domain.ScoreCalculator,
	pages config.PaginationConfig,
) *Service {
	return &Service{
		log:      log.With("service", "project"),
		tx:       tx,
		projects: projects,
		comments: comments,
		calc:     calc,
		pages:    pages,
		now:      time.Now,
	}
}
