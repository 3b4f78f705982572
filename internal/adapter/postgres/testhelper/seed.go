package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cocodas/prier-backend/internal/domain"
)

func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with a unique email and nickname.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Email:     "user-" + suffix + "@prier.dev",
		Nickname:  "user-" + suffix,
		Belonging: "prier",
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, nickname, belonging, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Nickname, user.Belonging, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedProject inserts an in-progress project owned by ownerID with an empty aggregate.
func SeedProject(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID) domain.Project {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	p := domain.Project{
		ID:        uuid.New(),
		UserID:    ownerID,
		Title:     "project-" + uniqueSuffix(),
		Introduce: "seeded project",
		StartDate: now.AddDate(0, 0, -1),
		EndDate:   now.AddDate(0, 0, 14),
		Status:    domain.ProjectStatusInProgress,
		TeamName:  "team",
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO projects (id, user_id, title, introduce, start_date, end_date, status, team_name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		p.ID, p.UserID, p.Title, p.Introduce, p.StartDate, p.EndDate, string(p.Status), p.TeamName, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProject: %v", err)
	}

	return p
}

// SeedComment inserts a comment row directly, without touching the project aggregate.
func SeedComment(t *testing.T, pool *pgxpool.Pool, projectID, authorID uuid.UUID, score float64, createdAt time.Time) domain.ProjectComment {
	t.Helper()

	c := domain.ProjectComment{
		ID:        uuid.New(),
		ProjectID: projectID,
		UserID:    authorID,
		Content:   "seeded comment",
		Score:     score,
		CreatedAt: createdAt.UTC().Truncate(time.Microsecond),
		UpdatedAt: createdAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO project_comments (id, project_id, user_id, content, score, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.ProjectID, c.UserID, c.Content, c.Score, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedComment: %v", err)
	}

	return c
}
