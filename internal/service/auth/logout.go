package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/cocodas/prier-backend/internal/domain"
	"github.com/cocodas/prier-backend/pkg/ctxutil"
)

// Logout stamps the authenticated user's last logout time. Comments left on
// their projects after this instant feed the notification badge.
func (s *Service) Logout(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.users.TouchLogout(ctx, userID, s.now().UTC()); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrUnauthorized
		}
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "user logged out", slog.String("user_id", userID.String()))
	return nil
}

// IssueToken creates an access token for an existing member, records the
// sign-in and drops the member's cached profile. The OAuth sign-in flow that normally calls this lives outside the
// API; operators use it through cmd/issue-token.
func (s *Service) IssueToken(ctx context.Context, userID uuid.UUID) (string, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("auth.IssueToken: %w", err)
	}

	token, err := s.jwt.GenerateAccessToken(user.ID, user.Nickname)
	if err != nil {
		return "", fmt.Errorf("auth.IssueToken: %w", err)
	}

	if err := s.users.TouchLogin(ctx, user.ID, s.now().UTC()); err != nil {
		return "", fmt.Errorf("auth.IssueToken: %w", err)
	}

	// Sign-in refreshes nickname and avatar upstream.
	s.profiles.Forget(ctx, user.ID)

	s.log.InfoContext(ctx, "access token issued", slog.String("user_id", user.ID.String()))
	return token, nil
}
