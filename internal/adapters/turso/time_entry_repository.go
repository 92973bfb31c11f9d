package turso

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/emiliopalmerini/tempo/internal/domain"
)

type TimeEntryRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewTimeEntryRepository(db *sql.DB) *TimeEntryRepository {
	return &TimeEntryRepository{db: db, now: time.Now}
}

// StartWork inserts a running entry only if no entry anywhere in the store
// is currently running. The uniqueness of the running flag is enforced by
// the conditional insert itself rather than a separate read, so two
// concurrent calls cannot both succeed.
func (r *TimeEntryRepository) StartWork(ctx context.Context, projectID string) (string, error) {
	id := uuid.NewString()
	now := r.now()

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO time_entries (id, project_id, start_time, end_time, running, created_at)
		SELECT ?, ?, ?, NULL, 1, ?
		WHERE NOT EXISTS (SELECT 1 FROM time_entries WHERE running = 1)
	`, id, projectID, now.UnixMilli(), now.UTC().Format(time.RFC3339))
	if err != nil {
		return "", fmt.Errorf("failed to start work: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return "", fmt.Errorf("failed to start work: %w", err)
	}
	if n == 0 {
		// Another timer is running; no-op sentinel.
		return "", nil
	}
	return id, nil
}

// CreateManual inserts a completed entry. end before start is stored
// as given.
func (r *TimeEntryRepository) CreateManual(ctx context.Context, projectID string, start, end int64) (string, error) {
	id := uuid.NewString()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO time_entries (id, project_id, start_time, end_time, running, created_at)
		VALUES (?, ?, ?, ?, 0, ?)
	`, id, projectID, start, end, r.now().UTC().Format(time.RFC3339))
	if err != nil {
		return "", fmt.Errorf("failed to create time entry: %w", err)
	}
	return id, nil
}

// EndWork stamps the entry with now as end time and clears the running
// flag. Calling it on an already ended entry just overwrites the end time.
func (r *TimeEntryRepository) EndWork(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE time_entries SET end_time = ?, running = 0 WHERE id = ?
	`, r.now().UnixMilli(), id)
	if err != nil {
		return fmt.Errorf("failed to end work: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to end work: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *TimeEntryRepository) DeleteByID(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM time_entries WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete time entry: %w", err)
	}
	return nil
}

// Patch overwrites only the interval fields the patch marks as set; a set
// field carrying nil clears the column. Unset fields are left untouched,
// so callers never lose data by omitting a field.
func (r *TimeEntryRepository) Patch(ctx context.Context, id string, patch domain.TimeEntryPatch) error {
	if patch.Empty() {
		return nil
	}

	set := ""
	args := []any{}
	if patch.StartTime.Set {
		set += "start_time = ?"
		args = append(args, nullInt64(patch.StartTime.Value))
	}
	if patch.EndTime.Set {
		if set != "" {
			set += ", "
		}
		set += "end_time = ?"
		args = append(args, nullInt64(patch.EndTime.Value))
	}
	args = append(args, id)

	res, err := r.db.ExecContext(ctx, `UPDATE time_entries SET `+set+` WHERE id = ?`, args...)
	if err != nil {
		return fmt.Errorf("failed to patch time entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to patch time entry: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *TimeEntryRepository) ListByProject(ctx context.Context, projectID string) ([]*domain.TimeEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, project_id, start_time, end_time, running, created_at
		FROM time_entries WHERE project_id = ?
		ORDER BY created_at DESC, rowid DESC
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}
	defer rows.Close()

	return collectTimeEntries(rows)
}

// TotalWorkedByProject sums end-start in milliseconds over the project's
// completed entries. Entries still running contribute nothing.
func (r *TimeEntryRepository) TotalWorkedByProject(ctx context.Context, projectID string) (int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(end_time - start_time), 0)
		FROM time_entries
		WHERE project_id = ? AND end_time IS NOT NULL
	`, projectID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum working time: %w", err)
	}
	return total, nil
}

// RunningByProject returns the project's running entry. Because at most
// one entry is running store-wide, this only yields a result when the
// global timer belongs to this project.
func (r *TimeEntryRepository) RunningByProject(ctx context.Context, projectID string) (*domain.TimeEntry, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, project_id, start_time, end_time, running, created_at
		FROM time_entries
		WHERE project_id = ? AND running = 1 AND end_time IS NULL
		LIMIT 1
	`, projectID)

	entry, err := scanTimeEntry(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get running time entry: %w", err)
	}
	return entry, nil
}

// WorktimeByID returns end-start for one entry with absent values treated
// as 0. An unknown id reports 0 rather than an error.
func (r *TimeEntryRepository) WorktimeByID(ctx context.Context, id string) (int64, error) {
	entry, err := r.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	return entry.Worktime(), nil
}

func (r *TimeEntryRepository) GetByID(ctx context.Context, id string) (*domain.TimeEntry, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, project_id, start_time, end_time, running, created_at
		FROM time_entries WHERE id = ?
	`, id)

	entry, err := scanTimeEntry(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get time entry: %w", err)
	}
	return entry, nil
}

// Combine merges the given entries into one spanning interval in a single
// transaction. Ids that no longer resolve are skipped; the first entry
// that does resolve survives with the combined bounds and the rest are
// deleted. Fetch order, not chronological order, picks the survivor.
func (r *TimeEntryRepository) Combine(ctx context.Context, ids []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var entries []*domain.TimeEntry
	for _, id := range ids {
		row := tx.QueryRowContext(ctx, `
			SELECT id, project_id, start_time, end_time, running, created_at
			FROM time_entries WHERE id = ?
		`, id)
		entry, err := scanTimeEntry(row)
		if err != nil {
			if err == sql.ErrNoRows {
				continue
			}
			return fmt.Errorf("failed to get time entry: %w", err)
		}
		entries = append(entries, entry)
	}

	start, end, ok := domain.CombineBounds(entries)
	if !ok {
		return nil
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE time_entries SET start_time = ?, end_time = ? WHERE id = ?
	`, start, end, entries[0].ID); err != nil {
		return fmt.Errorf("failed to update combined entry: %w", err)
	}

	for _, entry := range entries[1:] {
		if _, err := tx.ExecContext(ctx, `DELETE FROM time_entries WHERE id = ?`, entry.ID); err != nil {
			return fmt.Errorf("failed to delete absorbed entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

func scanTimeEntry(row rowScanner) (*domain.TimeEntry, error) {
	var e domain.TimeEntry
	var endTime sql.NullInt64
	var running int
	var createdAt string

	if err := row.Scan(&e.ID, &e.ProjectID, &e.StartTime, &endTime, &running, &createdAt); err != nil {
		return nil, err
	}
	if endTime.Valid {
		e.EndTime = &endTime.Int64
	}
	e.Running = running == 1
	e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &e, nil
}

func collectTimeEntries(rows *sql.Rows) ([]*domain.TimeEntry, error) {
	var entries []*domain.TimeEntry
	for rows.Next() {
		e, err := scanTimeEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read time entries: %w", err)
	}
	return entries, nil
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}
