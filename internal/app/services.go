package app

import (
	"log/slog"

	goredis "github.com/redis/go-redis/v9"

	"github.com/cocodas/prier-backend/internal/adapter/cache/redis"
	"github.com/cocodas/prier-backend/internal/adapter/postgres"
	commentrepo "github.com/cocodas/prier-backend/internal/adapter/postgres/comment"
	projectrepo "github.com/cocodas/prier-backend/internal/adapter/postgres/project"
	userrepo "github.com/cocodas/prier-backend/internal/adapter/postgres/user"
	"github.com/cocodas/prier-backend/internal/adapter/storage/gcs"
	"github.com/cocodas/prier-backend/internal/auth"
	"github.com/cocodas/prier-backend/internal/config"
	"github.com/cocodas/prier-backend/internal/domain"
	authsvc "github.com/cocodas/prier-backend/internal/service/auth"
	"github.com/cocodas/prier-backend/internal/service/comment"
	"github.com/cocodas/prier-backend/internal/service/profile"
	"github.com/cocodas/prier-backend/internal/service/project"
)

// Services is the wired service layer shared by the server and the
// command-line tools.
type Services struct {
	Auth    *authsvc.Service
	Profile *profile.Service
	Project *project.Service
	Comment *comment.Service

	ProfileCache *redis.ProfileCache
}

// NewServices wires repositories and adapters into the services. rdb may be
// nil, in which case profiles are always read from the database. recorder
// may be nil.
func NewServices(
	logger *slog.Logger,
	cfg *config.Config,
	db postgres.DB,
	rdb *goredis.Client,
	recorder interface{ ObserveCommentMutation(op string, err error) },
) (*Services, error) {
	calc, err := domain.NewScoreCalculator(cfg.Scoring.Strategy)
	if err != nil {
		return nil, err
	}

	tx := postgres.NewTxManager(db)
	users := userrepo.New(db)
	projects := projectrepo.New(db)
	comments := commentrepo.New(db)

	media := gcs.NewMediaURLs(cfg.Storage)
	cache := redis.NewProfileCache(rdb, cfg.Cache.ProfileTTL)
	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	profiles := profile.NewService(logger, users, cache, media)

	return &Services{
		Auth:    authsvc.NewService(logger, users, jwt, profiles),
		Profile: profiles,
		Project: project.NewService(logger, tx, projects, comments, calc, cfg.Pagination),
		Comment: comment.NewService(
			logger, tx, projects, comments, users, profiles, media, recorder, calc, cfg.Scoring,
		),
		ProfileCache: cache,
	}, nil
}
