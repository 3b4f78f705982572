package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/cocodas/prier-backend/internal/domain"
)

// Foreign keys of the schema, keyed by constraint name, resolved to the
// entity the failing row pointed at.
var referencedBy = map[string]string{
	"projects_user_id_fkey":            "owner",
	"project_comments_project_id_fkey": "project",
	"project_comments_user_id_fkey":    "author",
}

// CHECK constraints of the schema, keyed by constraint name, resolved to the
// field reported back to the client.
var checkedField = map[string]string{
	"projects_status_check":        "status",
	"projects_comment_count_check": "comment_count",
	"projects_period_check":        "end_date",
}

// MapError converts pgx/pgconn errors to domain errors, prefixed with the
// entity and id. Context errors pass through unmapped.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	switch pgErr.Code {
	case "23505": // unique_violation
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
	case "23503": // foreign_key_violation
		if ref, ok := referencedBy[pgErr.ConstraintName]; ok {
			return fmt.Errorf("%s %s: %s: %w", entity, id, ref, domain.ErrNotFound)
		}
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	case "23514": // check_violation
		field, ok := checkedField[pgErr.ConstraintName]
		if !ok {
			field = entity
		}
		return fmt.Errorf("%s %s: %w", entity, id,
			domain.NewValidationError(field, "violates "+pgErr.ConstraintName))
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
