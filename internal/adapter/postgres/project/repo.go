// Package project implements the Project repository using PostgreSQL.
package project

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/cocodas/prier-backend/internal/adapter/postgres"
	"github.com/cocodas/prier-backend/internal/domain"
)

const table = "projects"

var columns = []string{
	"id", "user_id", "title", "introduce", "goal", "start_date", "end_date", "status",
	"team_name", "team_description", "team_mate", "link",
	"score_sum", "comment_count", "score", "created_at", "updated_at",
}

// Repo provides project persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new project repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type projectRow struct {
	ID              uuid.UUID `db:"id"`
	UserID          uuid.UUID `db:"user_id"`
	Title           string    `db:"title"`
	Introduce       string    `db:"introduce"`
	Goal            string    `db:"goal"`
	StartDate       time.Time `db:"start_date"`
	EndDate         time.Time `db:"end_date"`
	Status          string    `db:"status"`
	TeamName        string    `db:"team_name"`
	TeamDescription string    `db:"team_description"`
	TeamMate        string    `db:"team_mate"`
	Link            string    `db:"link"`
	ScoreSum        float64   `db:"score_sum"`
	CommentCount    int       `db:"comment_count"`
	Score           float64   `db:"score"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func (r projectRow) toDomain() domain.Project {
	return domain.Project{
		ID:              r.ID,
		UserID:          r.UserID,
		Title:           r.Title,
		Introduce:       r.Introduce,
		Goal:            r.Goal,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		Status:          domain.ProjectStatus(r.Status),
		TeamName:        r.TeamName,
		TeamDescription: r.TeamDescription,
		TeamMate:        r.TeamMate,
		Link:            r.Link,
		ScoreSum:        r.ScoreSum,
		CommentCount:    r.CommentCount,
		Score:           r.Score,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Single-row operations
// ---------------------------------------------------------------------------

// GetByID returns a project by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	return r.get(ctx, id, "")
}

// GetByIDForUpdate returns a project and locks its row until the surrounding
// transaction ends. Callers must be inside TxManager.RunInTx.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	return r.get(ctx, id, "FOR UPDATE")
}

func (r *Repo) get(ctx context.Context, id uuid.UUID, suffix string) (*domain.Project, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})
	if suffix != "" {
		query = query.Suffix(suffix)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get project: %w", err)
	}

	var row projectRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "project", id)
	}

	p := row.toDomain()
	return &p, nil
}

// Create inserts a new project.
func (r *Repo) Create(ctx context.Context, p *domain.Project) error {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			p.ID, p.UserID, p.Title, p.Introduce, p.Goal, p.StartDate, p.EndDate, string(p.Status),
			p.TeamName, p.TeamDescription, p.TeamMate, p.Link,
			p.ScoreSum, p.CommentCount, p.Score, p.CreatedAt, p.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert project: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "project", p.ID)
	}
	return nil
}

// Update persists the descriptive fields and the feedback window of p.
// The score aggregate is written only by UpdateScore.
func (r *Repo) Update(ctx context.Context, p *domain.Project) error {
	sql, args, err := postgres.Builder().
		Update(table).
		SetMap(map[string]any{
			"title":            p.Title,
			"introduce":        p.Introduce,
			"goal":             p.Goal,
			"start_date":       p.StartDate,
			"end_date":         p.EndDate,
			"status":           string(p.Status),
			"team_name":        p.TeamName,
			"team_description": p.TeamDescription,
			"team_mate":        p.TeamMate,
			"link":             p.Link,
			"updated_at":       p.UpdatedAt,
		}).
		Where(squirrel.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update project: %w", err)
	}

	return r.execOne(ctx, p.ID, sql, args)
}

// UpdateScore writes the aggregate and displayed score of p.
func (r *Repo) UpdateScore(ctx context.Context, p *domain.Project) error {
	sql, args, err := postgres.Builder().
		Update(table).
		Set("score_sum", p.ScoreSum).
		Set("comment_count", p.CommentCount).
		Set("score", p.Score).
		Where(squirrel.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update score: %w", err)
	}

	return r.execOne(ctx, p.ID, sql, args)
}

// Delete removes a project. Its comments are removed by the foreign key cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete project: %w", err)
	}

	return r.execOne(ctx, id, sql, args)
}

func (r *Repo) execOne(ctx context.Context, id uuid.UUID, sql string, args []any) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "project", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "project", id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Listings
// ---------------------------------------------------------------------------

// List returns one page of projects matching f, newest first, together with
// the total number of matches.
func (r *Repo) List(ctx context.Context, f domain.ProjectFilter) ([]domain.Project, int, error) {
	where := filterPredicate(f)
	q := postgres.QuerierFromCtx(ctx, r.db)

	countSQL, countArgs, err := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count projects: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count projects: %w", err)
	}
	if total == 0 {
		return []domain.Project{}, 0, nil
	}

	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("created_at DESC", "id DESC")
	if f.Limit > 0 {
		query = query.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		query = query.Offset(uint64(f.Offset))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list projects: %w", err)
	}

	var rows []projectRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, 0, fmt.Errorf("list projects: %w", err)
	}

	projects := make([]domain.Project, len(rows))
	for i, row := range rows {
		projects[i] = row.toDomain()
	}
	return projects, total, nil
}

// Backslash is the default LIKE escape character in PostgreSQL.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func filterPredicate(f domain.ProjectFilter) squirrel.And {
	where := squirrel.And{}
	if f.OwnerID != nil {
		where = append(where, squirrel.Eq{"user_id": *f.OwnerID})
	}
	if f.Status != nil {
		where = append(where, squirrel.Eq{"status": string(*f.Status)})
	}
	if f.Keyword != nil && *f.Keyword != "" {
		pattern := "%" + likeEscaper.Replace(*f.Keyword) + "%"
		where = append(where, squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"introduce": pattern},
			squirrel.ILike{"team_name": pattern},
		})
	}
	return where
}

// GetLatestByOwner returns the most recently created project of ownerID.
func (r *Repo) GetLatestByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.Project, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": ownerID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build latest project: %w", err)
	}

	var row projectRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "project of user", ownerID)
	}

	p := row.toDomain()
	return &p, nil
}

// ---------------------------------------------------------------------------
// Maintenance
// ---------------------------------------------------------------------------

const recountSQL = `
UPDATE projects p
SET score_sum     = COALESCE(agg.total, 0),
    comment_count = agg.cnt
FROM (
    SELECT pr.id, SUM(c.score) AS total, COUNT(c.id) AS cnt
    FROM projects pr
    LEFT JOIN project_comments c ON c.project_id = pr.id
    GROUP BY pr.id
) agg
WHERE p.id = agg.id
RETURNING p.id, p.user_id, p.title, p.introduce, p.goal, p.start_date, p.end_date, p.status,
    p.team_name, p.team_description, p.team_mate, p.link,
    p.score_sum, p.comment_count, p.score, p.created_at, p.updated_at`

// RecountAggregates recomputes score_sum and comment_count of every project
// from its live comment rows and returns the updated projects. The displayed
// score is left to the caller.
func (r *Repo) RecountAggregates(ctx context.Context) ([]domain.Project, error) {
	var rows []projectRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, recountSQL); err != nil {
		return nil, fmt.Errorf("recount project aggregates: %w", err)
	}

	projects := make([]domain.Project, len(rows))
	for i, row := range rows {
		projects[i] = row.toDomain()
	}
	return projects, nil
}
