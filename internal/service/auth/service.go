// Package auth resolves access tokens to members and records their session
// boundaries.
package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/cocodas/prier-backend/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	TouchLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	TouchLogout(ctx context.Context, id uuid.UUID, at time.Time) error
}

type profileForgetter interface {
	Forget(ctx context.Context, userID uuid.UUID)
}

type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, nickname string) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, error)
}

// Service implements identity resolution and session bookkeeping.
type Service struct {
	log      *slog.Logger
	users    userRepo
	jwt      jwtManager
	profiles profileForgetter
	now      func() time.Time
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, users userRepo, jwt jwtManager, profiles profileForgetter) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		users:    users,
		jwt:      jwt,
		profiles: profiles,
		now:      time.Now,
	}
}
