package timeentries

import (
	"context"

	"github.com/emiliopalmerini/tempo/internal/domain"
)

type MockTimeEntryRepository struct {
	StartWorkFunc            func(ctx context.Context, projectID string) (string, error)
	CreateManualFunc         func(ctx context.Context, projectID string, start, end int64) (string, error)
	EndWorkFunc              func(ctx context.Context, id string) error
	DeleteByIDFunc           func(ctx context.Context, id string) error
	PatchFunc                func(ctx context.Context, id string, patch domain.TimeEntryPatch) error
	ListByProjectFunc        func(ctx context.Context, projectID string) ([]*domain.TimeEntry, error)
	TotalWorkedByProjectFunc func(ctx context.Context, projectID string) (int64, error)
	RunningByProjectFunc     func(ctx context.Context, projectID string) (*domain.TimeEntry, error)
	WorktimeByIDFunc         func(ctx context.Context, id string) (int64, error)
	GetByIDFunc              func(ctx context.Context, id string) (*domain.TimeEntry, error)
	CombineFunc              func(ctx context.Context, ids []string) error
}

func (m *MockTimeEntryRepository) StartWork(ctx context.Context, projectID string) (string, error) {
	return m.StartWorkFunc(ctx, projectID)
}

func (m *MockTimeEntryRepository) CreateManual(ctx context.Context, projectID string, start, end int64) (string, error) {
	return m.CreateManualFunc(ctx, projectID, start, end)
}

func (m *MockTimeEntryRepository) EndWork(ctx context.Context, id string) error {
	return m.EndWorkFunc(ctx, id)
}

func (m *MockTimeEntryRepository) DeleteByID(ctx context.Context, id string) error {
	return m.DeleteByIDFunc(ctx, id)
}

func (m *MockTimeEntryRepository) Patch(ctx context.Context, id string, patch domain.TimeEntryPatch) error {
	return m.PatchFunc(ctx, id, patch)
}

func (m *MockTimeEntryRepository) ListByProject(ctx context.Context, projectID string) ([]*domain.TimeEntry, error) {
	return m.ListByProjectFunc(ctx, projectID)
}

func (m *MockTimeEntryRepository) TotalWorkedByProject(ctx context.Context, projectID string) (int64, error) {
	return m.TotalWorkedByProjectFunc(ctx, projectID)
}

func (m *MockTimeEntryRepository) RunningByProject(ctx context.Context, projectID string) (*domain.TimeEntry, error) {
	return m.RunningByProjectFunc(ctx, projectID)
}

func (m *MockTimeEntryRepository) WorktimeByID(ctx context.Context, id string) (int64, error) {
	return m.WorktimeByIDFunc(ctx, id)
}

func (m *MockTimeEntryRepository) GetByID(ctx context.Context, id string) (*domain.TimeEntry, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *MockTimeEntryRepository) Combine(ctx context.Context, ids []string) error {
	return m.CombineFunc(ctx, ids)
}

type MockProjectRepository struct {
	GetByIDFunc func(ctx context.Context, id string) (*domain.Project, error)
}

func (m *MockProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	panic("not implemented")
}

func (m *MockProjectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *MockProjectRepository) List(ctx context.Context, userID string) ([]*domain.Project, error) {
	panic("not implemented")
}

func (m *MockProjectRepository) SearchByName(ctx context.Context, userID, query string) ([]*domain.Project, error) {
	panic("not implemented")
}

func (m *MockProjectRepository) Delete(ctx context.Context, id string) error {
	panic("not implemented")
}
