package projects

import (
	"context"

	"github.com/emiliopalmerini/tempo/internal/domain"
)

type MockProjectRepository struct {
	CreateFunc       func(ctx context.Context, project *domain.Project) error
	GetByIDFunc      func(ctx context.Context, id string) (*domain.Project, error)
	ListFunc         func(ctx context.Context, userID string) ([]*domain.Project, error)
	SearchByNameFunc func(ctx context.Context, userID, query string) ([]*domain.Project, error)
	DeleteFunc       func(ctx context.Context, id string) error
}

func (m *MockProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	return m.CreateFunc(ctx, project)
}

func (m *MockProjectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *MockProjectRepository) List(ctx context.Context, userID string) ([]*domain.Project, error) {
	return m.ListFunc(ctx, userID)
}

func (m *MockProjectRepository) SearchByName(ctx context.Context, userID, query string) ([]*domain.Project, error) {
	return m.SearchByNameFunc(ctx, userID, query)
}

func (m *MockProjectRepository) Delete(ctx context.Context, id string) error {
	return m.DeleteFunc(ctx, id)
}
