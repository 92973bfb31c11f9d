package ports

import (
	"context"

	"github.com/emiliopalmerini/tempo/internal/domain"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	// List returns the user's projects newest-first.
	List(ctx context.Context, userID string) ([]*domain.Project, error)
	// SearchByName returns up to 5 of the user's projects matching the
	// query. When the search matches nothing (including a blank query)
	// it falls back to the full newest-first list instead of an empty
	// result.
	SearchByName(ctx context.Context, userID, query string) ([]*domain.Project, error)
	// Delete removes the project and all of its time entries in one
	// transaction.
	Delete(ctx context.Context, id string) error
}
