package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/cocodas/prier-backend/internal/domain"
)

// ValidateToken checks an access token and returns the user ID it was issued
// for. It does not touch the database.
func (s *Service) ValidateToken(ctx context.Context, token string) (uuid.UUID, error) {
	userID, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		s.log.DebugContext(ctx, "access token rejected", "error", err)
		return uuid.Nil, domain.ErrUnauthorized
	}
	return userID, nil
}

// ResolveUser maps a token to an existing member. A token that cannot be
// decoded, or that names a member who no longer exists, is unauthorized.
// User state is never modified.
func (s *Service) ResolveUser(ctx context.Context, token string) (*domain.User, error) {
	userID, err := s.ValidateToken(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.ResolveUser: %w", err)
	}

	return user, nil
}
