package profile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/cocodas/prier-backend/internal/domain"
)

// GetProfile returns the public profile of userID. Reads go through the
// cache; a failing cache is logged and bypassed.
func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.ProfileSummary, error) {
	user, hit, err := s.cache.Get(ctx, userID)
	if err != nil {
		s.log.WarnContext(ctx, "profile cache read failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		hit = false
	}

	if !hit {
		user, err = s.users.GetByID(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("profile.GetProfile: %w", err)
		}
		if err := s.cache.Set(ctx, user); err != nil {
			s.log.WarnContext(ctx, "profile cache write failed",
				slog.String("user_id", userID.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	summary, err := s.summarize(user)
	if err != nil {
		return nil, fmt.Errorf("profile.GetProfile: %w", err)
	}
	return &summary, nil
}

// Forget drops the cached profile of userID.
func (s *Service) Forget(ctx context.Context, userID uuid.UUID) {
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		s.log.WarnContext(ctx, "profile cache invalidate failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
	}
}
