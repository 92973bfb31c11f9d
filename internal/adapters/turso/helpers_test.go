package turso_test

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/tursodatabase/go-libsql"

	"github.com/emiliopalmerini/tempo/internal/adapters/turso"
	"github.com/emiliopalmerini/tempo/internal/domain"
	"github.com/emiliopalmerini/tempo/internal/migrate"
)

var dbCounter atomic.Int64

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	// A named in-memory database per test keeps the single-running-timer
	// invariant from leaking between tests.
	name := fmt.Sprintf("file:test%d?mode=memory&cache=shared", dbCounter.Add(1))
	db, err := sql.Open("libsql", name)
	if err != nil {
		t.Fatalf("Failed to open in-memory database: %v", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	ctx := context.Background()
	if err := migrate.RunAll(ctx, db); err != nil {
		_ = db.Close()
		t.Fatalf("Failed to run migrations: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })
	return db
}

func seedUser(t *testing.T, db *sql.DB) string {
	t.Helper()

	id := uuid.NewString()
	_, err := db.Exec(`
		INSERT INTO users (id, email, password_hash, created_at)
		VALUES (?, ?, 'x', ?)
	`, id, id+"@example.com", time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}
	return id
}

func seedProject(t *testing.T, db *sql.DB, userID, name string) string {
	t.Helper()

	repo := turso.NewProjectRepository(db)
	project := &domain.Project{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if err := repo.Create(context.Background(), project); err != nil {
		t.Fatalf("Failed to seed project: %v", err)
	}
	return project.ID
}
