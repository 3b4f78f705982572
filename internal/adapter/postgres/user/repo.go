// Package user implements read access to members and their session
// timestamps using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/cocodas/prier-backend/internal/adapter/postgres"
	"github.com/cocodas/prier-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const userColumns = `id, email, nickname, intro, belonging, tier,
	blog_url, github_url, figma_url, notion_url, avatar_key,
	last_login_at, last_logout_at, created_at, updated_at`

const (
	getByIDSQL = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	getByIDsSQL = `SELECT ` + userColumns + ` FROM users WHERE id = ANY($1)`

	touchLoginSQL = `UPDATE users SET last_login_at = $2, updated_at = $2 WHERE id = $1`

	touchLogoutSQL = `UPDATE users SET last_logout_at = $2, updated_at = $2 WHERE id = $1`
)

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByIDs returns the users with the given ids in no particular order.
// Unknown ids are silently skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, getByIDsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("query users by ids: %w", err)
	}
	defer rows.Close()

	users := make([]domain.User, 0, len(ids))
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}

// TouchLogin records a successful sign-in.
func (r *Repo) TouchLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.touch(ctx, touchLoginSQL, id, at)
}

// TouchLogout records the moment the user signed out. Comments created after
// this instant count as unread notifications.
func (r *Repo) TouchLogout(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.touch(ctx, touchLogoutSQL, id, at)
}

func (r *Repo) touch(ctx context.Context, sql string, id uuid.UUID, at time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, sql, id, at)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "user", id)
	}
	return nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Email, &u.Nickname, &u.Intro, &u.Belonging, &u.Tier,
		&u.BlogURL, &u.GithubURL, &u.FigmaURL, &u.NotionURL, &u.AvatarKey,
		&u.LastLoginAt, &u.LastLogoutAt, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
