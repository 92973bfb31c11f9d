package turso

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/emiliopalmerini/tempo/internal/domain"
)

const searchLimit = 5

type ProjectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	var description sql.NullString
	if project.Description != nil {
		description = sql.NullString{String: *project.Description, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO projects (id, user_id, name, description, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, project.ID, project.UserID, project.Name, description, project.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, name, description, created_at
		FROM projects WHERE id = ?
	`, id)

	project, err := scanProject(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

func (r *ProjectRepository) List(ctx context.Context, userID string) ([]*domain.Project, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, name, description, created_at
		FROM projects WHERE user_id = ?
		ORDER BY created_at DESC, rowid DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	return collectProjects(rows)
}

// SearchByName matches the query against project names, capped at 5
// results. A query that matches nothing (a blank query matches nothing by
// definition) falls back to the full newest-first list: the UI prefers
// showing everything over showing an empty search result.
func (r *ProjectRepository) SearchByName(ctx context.Context, userID, query string) ([]*domain.Project, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return r.List(ctx, userID)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, name, description, created_at
		FROM projects
		WHERE user_id = ? AND name LIKE '%' || ? || '%'
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, userID, query, searchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to search projects: %w", err)
	}
	defer rows.Close()

	projects, err := collectProjects(rows)
	if err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return r.List(ctx, userID)
	}
	return projects, nil
}

// Delete removes the project's time entries and then the project itself.
// The whole cascade runs in one transaction so a failure partway through
// leaves nothing orphaned.
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM time_entries WHERE project_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete time entries: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var p domain.Project
	var description sql.NullString
	var createdAt string

	if err := row.Scan(&p.ID, &p.UserID, &p.Name, &description, &createdAt); err != nil {
		return nil, err
	}
	if description.Valid {
		p.Description = &description.String
	}
	p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &p, nil
}

func collectProjects(rows *sql.Rows) ([]*domain.Project, error) {
	var projects []*domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read projects: %w", err)
	}
	return projects, nil
}
