package rest

import (
	"context"

	"github.com/google/uuid"

	"github.com/cocodas/prier-backend/internal/domain"
	"github.com/cocodas/prier-backend/internal/service/project"
)

var _ projectService = &projectServiceMock{}

// projectServiceMock stubs only what a test sets; unset methods panic.
type projectServiceMock struct {
	CreateProjectFunc    func(ctx context.Context, input project.CreateProjectInput) (*domain.Project, error)
	UpdateProjectFunc    func(ctx context.Context, input project.UpdateProjectInput) (*domain.Project, error)
	DeleteProjectFunc    func(ctx context.Context, projectID uuid.UUID) error
	GetProjectFunc       func(ctx context.Context, projectID uuid.UUID) (*domain.Project, error)
	ExtendFeedbackFunc   func(ctx context.Context, projectID uuid.UUID, weeks int) (*domain.Project, error)
	SearchProjectsFunc   func(ctx context.Context, input project.SearchInput) (*domain.Page[domain.Project], error)
	ListMyProjectsFunc   func(ctx context.Context, input project.ListInput) (*domain.Page[domain.Project], error)
	ListUserProjectsFunc func(ctx context.Context, userID uuid.UUID, input project.ListInput) (*domain.Page[domain.Project], error)
	GetRecentProjectFunc func(ctx context.Context, userID uuid.UUID) (*domain.RecentProject, error)
}

func (m *projectServiceMock) CreateProject(ctx context.Context, input project.CreateProjectInput) (*domain.Project, error) {
	if m.CreateProjectFunc == nil {
		panic("projectServiceMock.CreateProjectFunc: method is nil")
	}
	return m.CreateProjectFunc(ctx, input)
}

func (m *projectServiceMock) UpdateProject(ctx context.Context, input project.UpdateProjectInput) (*domain.Project, error) {
	if m.UpdateProjectFunc == nil {
		panic("projectServiceMock.UpdateProjectFunc: method is nil")
	}
	return m.UpdateProjectFunc(ctx, input)
}

func (m *projectServiceMock) DeleteProject(ctx context.Context, projectID uuid.UUID) error {
	if m.DeleteProjectFunc == nil {
		panic("projectServiceMock.DeleteProjectFunc: method is nil")
	}
	return m.DeleteProjectFunc(ctx, projectID)
}

func (m *projectServiceMock) GetProject(ctx context.Context, projectID uuid.UUID) (*domain.Project, error) {
	if m.GetProjectFunc == nil {
		panic("projectServiceMock.GetProjectFunc: method is nil")
	}
	return m.GetProjectFunc(ctx, projectID)
}

func (m *projectServiceMock) ExtendFeedback(ctx context.Context, projectID uuid.UUID, weeks int) (*domain.Project, error) {
	if m.ExtendFeedbackFunc == nil {
		panic("projectServiceMock.ExtendFeedbackFunc: method is nil")
	}
	return m.ExtendFeedbackFunc(ctx, projectID, weeks)
}

func (m *projectServiceMock) SearchProjects(ctx context.Context, input project.SearchInput) (*domain.Page[domain.Project], error) {
	if m.SearchProjectsFunc == nil {
		panic("projectServiceMock.SearchProjectsFunc: method is nil")
	}
	return m.SearchProjectsFunc(ctx, input)
}

func (m *projectServiceMock) ListMyProjects(ctx context.Context, input project.ListInput) (*domain.Page[domain.Project], error) {
	if m.ListMyProjectsFunc == nil {
		panic("projectServiceMock.ListMyProjectsFunc: method is nil")
	}
	return m.ListMyProjectsFunc(ctx, input)
}

func (m *projectServiceMock) ListUserProjects(ctx context.Context, userID uuid.UUID, input project.ListInput) (*domain.Page[domain.Project], error) {
	if m.ListUserProjectsFunc == nil {
		panic("projectServiceMock.ListUserProjectsFunc: method is nil")
	}
	return m.ListUserProjectsFunc(ctx, userID, input)
}

func (m *projectServiceMock) GetRecentProject(ctx context.Context, userID uuid.UUID) (*domain.RecentProject, error) {
	if m.GetRecentProjectFunc == nil {
		panic("projectServiceMock.GetRecentProjectFunc: method is nil")
	}
	return m.GetRecentProjectFunc(ctx, userID)
}
