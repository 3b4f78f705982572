// Package comment implements the scored comment lifecycle and keeps each
// project's score aggregate consistent with its live comments.
package comment

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/cocodas/prier-backend/internal/config"
	"github.com/cocodas/prier-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type projectRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	UpdateScore(ctx context.Context, p *domain.Project) error
}

type commentRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ProjectComment, error)
	Create(ctx context.Context, c *domain.ProjectComment) error
	Update(ctx context.Context, c *domain.ProjectComment) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.CommentWithAuthor, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.CommentWithProject, error)
	CountForOwnerSince(ctx context.Context, ownerID uuid.UUID, since *time.Time) (int, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type profileResolver interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.ProfileSummary, error)
	LoadProfiles(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.ProfileSummary, error)
}

type mediaURLs interface {
	AvatarURL(key *string) (string, error)
}

type mutationRecorder interface {
	ObserveCommentMutation(op string, err error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements comment operations.
type Service struct {
	log      *slog.Logger
	tx       txManager
	projects projectRepo
	comments commentRepo
	users    userRepo
	profiles profileResolver
	media    mediaURLs
	recorder mutationRecorder
	calc     domain.ScoreCalculator
	cfg      config.ScoringConfig
	now      func() time.Time
}

// NewService creates a new comment service. recorder may be nil.
func NewService(
	log *slog.Logger,
	tx txManager,
	projects projectRepo,
	comments commentRepo,
	users userRepo,
	profiles profileResolver,
	media mediaURLs,
	recorder mutationRecorder,
	calc domain.ScoreCalculator,
	cfg config.ScoringConfig,
) *Service {
	return &Service{
		log:      log.With("service", "comment"),
		tx:       tx,
		projects: projects,
		comments: comments,
		users:    users,
		profiles: profiles,
		media:    media,
		recorder: recorder,
		calc:     calc,
		cfg:      cfg,
		now:      time.Now,
	}
}

func (s *Service) observe(op string, err error) {
	if s.recorder != nil {
		s.recorder.ObserveCommentMutation(op, err)
	}
}
