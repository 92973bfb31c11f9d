package ports

import (
	"context"

	"github.com/emiliopalmerini/tempo/internal/domain"
)

type TimeEntryRepository interface {
	// StartWork opens a running entry for the project with the current
	// time as start. If any entry in the store is already running the
	// call is a no-op and returns an empty id.
	StartWork(ctx context.Context, projectID string) (string, error)
	// CreateManual inserts a completed entry with the given interval.
	// end < start is accepted as-is.
	CreateManual(ctx context.Context, projectID string, start, end int64) (string, error)
	// EndWork stamps the entry with the current time as end and clears
	// the running flag, regardless of the entry's prior state.
	EndWork(ctx context.Context, id string) error
	DeleteByID(ctx context.Context, id string) error
	// Patch overwrites only the fields the patch marks as set.
	Patch(ctx context.Context, id string, patch domain.TimeEntryPatch) error
	// ListByProject returns the project's entries newest-first.
	ListByProject(ctx context.Context, projectID string) ([]*domain.TimeEntry, error)
	// TotalWorkedByProject sums end-start in milliseconds over the
	// project's completed entries. Running entries contribute 0.
	TotalWorkedByProject(ctx context.Context, projectID string) (int64, error)
	// RunningByProject returns the project's running entry, or nil when
	// the globally running entry (if any) belongs to another project.
	RunningByProject(ctx context.Context, projectID string) (*domain.TimeEntry, error)
	// WorktimeByID returns end-start for one entry with absent values
	// treated as 0. An unknown id reports 0.
	WorktimeByID(ctx context.Context, id string) (int64, error)
	GetByID(ctx context.Context, id string) (*domain.TimeEntry, error)
	// Combine merges the entries into one spanning interval: the first
	// resolvable id survives with the combined bounds, the rest are
	// deleted. Ids that no longer exist are skipped silently.
	Combine(ctx context.Context, ids []string) error
}
