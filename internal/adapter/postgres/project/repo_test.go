package project

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cocodas/prier-backend/internal/domain"
)

func newRepo(t *testing.T) (*Repo, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return New(mock), mock
}

func projectRows(projects ...domain.Project) *pgxmock.Rows {
	rows := pgxmock.NewRows(columns)
	for _, p := range projects {
		rows.AddRow(
			p.ID, p.UserID, p.Title, p.Introduce, p.Goal, p.StartDate, p.EndDate, string(p.Status),
			p.TeamName, p.TeamDescription, p.TeamMate, p.Link,
			p.ScoreSum, p.CommentCount, p.Score, p.CreatedAt, p.UpdatedAt,
		)
	}
	return rows
}

func sampleProject() domain.Project {
	now := time.Now().UTC()
	return domain.Project{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		Title:        "prier",
		StartDate:    now.AddDate(0, 0, -1),
		EndDate:      now.AddDate(0, 0, 7),
		Status:       domain.ProjectStatusInProgress,
		TeamName:     "cocodas",
		ScoreSum:     7,
		CommentCount: 2,
		Score:        3.5,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestRepo_GetByIDForUpdate(t *testing.T) {
	t.Parallel()

	p := sampleProject()

	tests := []struct {
		name    string
		setup   func(mock pgxmock.PgxPoolIface)
		wantErr error
	}{
		{
			name: "locks row",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT .* FROM projects WHERE id = \$1 FOR UPDATE`).
					WithArgs(p.ID.String()).
					WillReturnRows(projectRows(p))
			},
		},
		{
			name: "not found",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FOR UPDATE`).WithArgs(p.ID.String()).WillReturnError(pgx.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo, mock := newRepo(t)
			tt.setup(mock)

			got, err := repo.GetByIDForUpdate(context.Background(), p.ID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, p.ID, got.ID)
				assert.Equal(t, 7.0, got.ScoreSum)
				assert.Equal(t, 2, got.CommentCount)
				assert.Equal(t, domain.ProjectStatusInProgress, got.Status)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepo_UpdateScore(t *testing.T) {
	t.Parallel()

	p := sampleProject()

	t.Run("written", func(t *testing.T) {
		t.Parallel()
		repo, mock := newRepo(t)
		mock.ExpectExec(`UPDATE projects SET score_sum = \$1, comment_count = \$2, score = \$3 WHERE id = \$4`).
			WithArgs(p.ScoreSum, p.CommentCount, p.Score, p.ID.String()).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		require.NoError(t, repo.UpdateScore(context.Background(), &p))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing project", func(t *testing.T) {
		t.Parallel()
		repo, mock := newRepo(t)
		mock.ExpectExec(`UPDATE projects`).
			WithArgs(p.ScoreSum, p.CommentCount, p.Score, p.ID.String()).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		require.ErrorIs(t, repo.UpdateScore(context.Background(), &p), domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepo_List(t *testing.T) {
	t.Parallel()

	p := sampleProject()
	keyword := "pri"
	status := domain.ProjectStatusInProgress

	repo, mock := newRepo(t)
	mock.ExpectQuery(`SELECT count\(\*\) FROM projects WHERE \(status = \$1 AND \(title ILIKE \$2 OR introduce ILIKE \$3 OR team_name ILIKE \$4\)\)`).
		WithArgs("IN_PROGRESS", "%pri%", "%pri%", "%pri%").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(9))
	mock.ExpectQuery(`ORDER BY created_at DESC, id DESC LIMIT 8 OFFSET 8`).
		WithArgs("IN_PROGRESS", "%pri%", "%pri%", "%pri%").
		WillReturnRows(projectRows(p))

	got, total, err := repo.List(context.Background(), domain.ProjectFilter{
		Keyword: &keyword,
		Status:  &status,
		Limit:   8,
		Offset:  8,
	})

	require.NoError(t, err)
	assert.Equal(t, 9, total)
	require.Len(t, got, 1)
	assert.Equal(t, p.Title, got[0].Title)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_List_KeywordWildcardsAreLiteral(t *testing.T) {
	t.Parallel()

	keyword := `50%_off\`
	want := `%50\%\_off\\%`

	repo, mock := newRepo(t)
	mock.ExpectQuery(`SELECT count\(\*\) FROM projects`).
		WithArgs(want, want, want).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))

	_, total, err := repo.List(context.Background(), domain.ProjectFilter{Keyword: &keyword, Limit: 8})

	require.NoError(t, err)
	assert.Zero(t, total)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_List_EmptySkipsSelect(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	repo, mock := newRepo(t)
	mock.ExpectQuery(`SELECT count\(\*\) FROM projects WHERE \(user_id = \$1\)`).
		WithArgs(owner.String()).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))

	got, total, err := repo.List(context.Background(), domain.ProjectFilter{OwnerID: &owner, Limit: 5})

	require.NoError(t, err)
	assert.Zero(t, total)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_Delete_NotFound(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	repo, mock := newRepo(t)
	mock.ExpectExec(`DELETE FROM projects WHERE id = \$1`).
		WithArgs(id.String()).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	require.ErrorIs(t, repo.Delete(context.Background(), id), domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
