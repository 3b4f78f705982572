// Package comment implements the ProjectComment repository using PostgreSQL.
package comment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/cocodas/prier-backend/internal/adapter/postgres"
	"github.com/cocodas/prier-backend/internal/domain"
)

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new comment repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const (
	commentColumns = `c.id, c.project_id, c.user_id, c.content, c.score, c.created_at, c.updated_at`

	createSQL = `
INSERT INTO project_comments (id, project_id, user_id, content, score, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	getByIDSQL = `SELECT ` + commentColumns + ` FROM project_comments c WHERE c.id = $1`

	updateSQL = `
UPDATE project_comments
SET content = $2, score = $3, updated_at = $4
WHERE id = $1`

	deleteSQL = `DELETE FROM project_comments WHERE id = $1`

	listByProjectSQL = `
SELECT ` + commentColumns + `, u.nickname, u.avatar_key
FROM project_comments c
JOIN users u ON u.id = c.user_id
WHERE c.project_id = $1
ORDER BY c.created_at, c.id`

	listByUserSQL = `
SELECT ` + commentColumns + `, p.title, p.team_name
FROM project_comments c
JOIN projects p ON p.id = c.project_id
WHERE c.user_id = $1
ORDER BY c.created_at DESC, c.id DESC`

	countForOwnerSinceSQL = `
SELECT count(*)
FROM project_comments c
JOIN projects p ON p.id = c.project_id
WHERE p.user_id = $1
  AND ($2::timestamptz IS NULL OR c.created_at > $2)`

	countByProjectSQL = `SELECT count(*) FROM project_comments WHERE project_id = $1`
)

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts a new comment.
func (r *Repo) Create(ctx context.Context, c *domain.ProjectComment) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	_, err := q.Exec(ctx, createSQL,
		c.ID, c.ProjectID, c.UserID, c.Content, c.Score, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "comment", c.ID)
	}
	return nil
}

// Update persists the content, score and timestamp of c.
func (r *Repo) Update(ctx context.Context, c *domain.ProjectComment) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, updateSQL, c.ID, c.Content, c.Score, c.UpdatedAt)
	if err != nil {
		return postgres.MapError(err, "comment", c.ID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "comment", c.ID)
	}
	return nil
}

// Delete removes a comment by id.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "comment", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "comment", id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns a comment by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ProjectComment, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var c domain.ProjectComment
	err := q.QueryRow(ctx, getByIDSQL, id).Scan(
		&c.ID, &c.ProjectID, &c.UserID, &c.Content, &c.Score, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "comment", id)
	}
	return &c, nil
}

// ListByProject returns the comments of a project in insertion order,
// each joined with its author's nickname and avatar key.
func (r *Repo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.CommentWithAuthor, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, listByProjectSQL, projectID)
	if err != nil {
		return nil, fmt.Errorf("query comments of project %s: %w", projectID, err)
	}
	defer rows.Close()

	result := make([]domain.CommentWithAuthor, 0)
	for rows.Next() {
		var item domain.CommentWithAuthor
		c := &item.Comment
		if err := rows.Scan(
			&c.ID, &c.ProjectID, &c.UserID, &c.Content, &c.Score, &c.CreatedAt, &c.UpdatedAt,
			&item.AuthorNickname, &item.AuthorAvatarKey,
		); err != nil {
			return nil, fmt.Errorf("scan project comment: %w", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate project comments: %w", err)
	}

	return result, nil
}

// ListByUser returns the comments written by userID, newest first, each
// joined with the project it was left on.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.CommentWithProject, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, listByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("query comments of user %s: %w", userID, err)
	}
	defer rows.Close()

	result := make([]domain.CommentWithProject, 0)
	for rows.Next() {
		var item domain.CommentWithProject
		c := &item.Comment
		if err := rows.Scan(
			&c.ID, &c.ProjectID, &c.UserID, &c.Content, &c.Score, &c.CreatedAt, &c.UpdatedAt,
			&item.ProjectTitle, &item.TeamName,
		); err != nil {
			return nil, fmt.Errorf("scan user comment: %w", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user comments: %w", err)
	}

	return result, nil
}

// CountForOwnerSince counts comments on projects owned by ownerID created
// strictly after since. A nil since counts every comment.
func (r *Repo) CountForOwnerSince(ctx context.Context, ownerID uuid.UUID, since *time.Time) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var n int
	if err := q.QueryRow(ctx, countForOwnerSinceSQL, ownerID, since).Scan(&n); err != nil {
		return 0, fmt.Errorf("count comments for owner %s: %w", ownerID, err)
	}
	return n, nil
}

// CountByProject returns the number of live comments on a project.
func (r *Repo) CountByProject(ctx context.Context, projectID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var n int
	if err := q.QueryRow(ctx, countByProjectSQL, projectID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count comments of project %s: %w", projectID, err)
	}
	return n, nil
}
