package project

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/cocodas/prier-backend/internal/domain"
)

// RecalculateScore re-derives the displayed score from the stored aggregate.
// Running it twice leaves the project unchanged.
func (s *Service) RecalculateScore(ctx context.Context, projectID uuid.UUID) (*domain.Project, error) {
	var result *domain.Project
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := s.projects.GetByIDForUpdate(txCtx, projectID)
		if err != nil {
			return fmt.Errorf("get project: %w", err)
		}

		beforeSum, beforeScore := p.ScoreSum, p.Score
		p.Recalculate(s.calc)
		if p.ScoreSum != beforeSum || p.Score != beforeScore {
			if err := s.projects.UpdateScore(txCtx, p); err != nil {
				return fmt.Errorf("update project score: %w", err)
			}
		}
		result = p
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("project.RecalculateScore: %w", err)
	}
	return result, nil
}

// RebuildAggregates recomputes every project's aggregate from its live
// comment rows and re-derives the displayed score. It returns the number of
// projects processed.
func (s *Service) RebuildAggregates(ctx context.Context) (int, error) {
	var rebuilt int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		projects, err := s.projects.RecountAggregates(txCtx)
		if err != nil {
			return fmt.Errorf("recount aggregates: %w", err)
		}

		for i := range projects {
			p := &projects[i]
			p.Recalculate(s.calc)
			if err := s.projects.UpdateScore(txCtx, p); err != nil {
				return fmt.Errorf("update score of project %s: %w", p.ID, err)
			}
		}
		rebuilt = len(projects)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("project.RebuildAggregates: %w", err)
	}

	s.log.InfoContext(ctx, "project aggregates rebuilt", slog.Int("projects", rebuilt))
	return rebuilt, nil
}
