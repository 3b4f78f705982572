package testhelper

import (
	"context"
	"testing"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	user := SeedUser(t, pool)
	project := SeedProject(t, pool, user.ID)

	var owner string
	err := pool.QueryRow(context.Background(),
		`SELECT u.email FROM projects p JOIN users u ON u.id = p.user_id WHERE p.id = $1`,
		project.ID,
	).Scan(&owner)
	if err != nil {
		t.Fatalf("expected project in DB, got error: %v", err)
	}
	if owner != user.Email {
		t.Fatalf("expected owner %q, got %q", user.Email, owner)
	}
}
