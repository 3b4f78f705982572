// Package profile resolves public member profiles for display next to
// projects and comments.
package profile

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/cocodas/prier-backend/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
}

type profileCache interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.User, bool, error)
	Set(ctx context.Context, u *domain.User) error
	Invalidate(ctx context.Context, id uuid.UUID) error
}

type mediaURLs interface {
	AvatarURL(key *string) (string, error)
}

// Service builds ProfileSummary values from user records.
type Service struct {
	log   *slog.Logger
	users userRepo
	cache profileCache
	media mediaURLs
}

// NewService creates a new profile service.
func NewService(logger *slog.Logger, users userRepo, cache profileCache, media mediaURLs) *Service {
	return &Service{
		log:   logger.With("service", "profile"),
		users: users,
		cache: cache,
		media: media,
	}
}

func (s *Service) summarize(u *domain.User) (domain.ProfileSummary, error) {
	avatar, err := s.media.AvatarURL(u.AvatarKey)
	if err != nil {
		return domain.ProfileSummary{}, err
	}
	return domain.ProfileSummary{
		UserID:    u.ID,
		Nickname:  u.Nickname,
		Intro:     u.Intro,
		Belonging: u.Belonging,
		Tier:      u.Tier,
		AvatarURL: avatar,
		BlogURL:   u.BlogURL,
		GithubURL: u.GithubURL,
		FigmaURL:  u.FigmaURL,
		NotionURL: u.NotionURL,
	}, nil
}
