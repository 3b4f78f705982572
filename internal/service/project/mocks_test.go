package project

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/cocodas/prier-backend/internal/domain"
)

var (
	_ projectRepo    = &projectRepoMock{}
	_ commentCounter = &commentCounterMock{}
	_ txManager      = &txManagerMock{}
)

type projectRepoMock struct {
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	GetByIDForUpdateFunc  func(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	CreateFunc            func(ctx context.Context, p *domain.Project) error
	UpdateFunc            func(ctx context.Context, p *domain.Project) error
	UpdateScoreFunc       func(ctx context.Context, p *domain.Project) error
	DeleteFunc            func(ctx context.Context, id uuid.UUID) error
	ListFunc              func(ctx context.Context, f domain.ProjectFilter) ([]domain.Project, int, error)
	GetLatestByOwnerFunc  func(ctx context.Context, ownerID uuid.UUID) (*domain.Project, error)
	RecountAggregatesFunc func(ctx context.Context) ([]domain.Project, error)

	calls struct {
		Create      []domain.Project
		Update      []domain.Project
		UpdateScore []domain.Project
		Delete      []uuid.UUID
		List        []domain.ProjectFilter
	}
	lock sync.RWMutex
}

func (mock *projectRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	if mock.GetByIDFunc == nil {
		panic("projectRepoMock.GetByIDFunc: method is nil but projectRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *projectRepoMock) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("projectRepoMock.GetByIDForUpdateFunc: method is nil but projectRepo.GetByIDForUpdate was just called")
	}
	return mock.GetByIDForUpdateFunc(ctx, id)
}

func (mock *projectRepoMock) Create(ctx context.Context, p *domain.Project) error {
	if mock.CreateFunc == nil {
		panic("projectRepoMock.CreateFunc: method is nil but projectRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, *p)
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *projectRepoMock) Update(ctx context.Context, p *domain.Project) error {
	if mock.UpdateFunc == nil {
		panic("projectRepoMock.UpdateFunc: method is nil but projectRepo.Update was just called")
	}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, *p)
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, p)
}

func (mock *projectRepoMock) UpdateScore(ctx context.Context, p *domain.Project) error {
	if mock.UpdateScoreFunc == nil {
		panic("projectRepoMock.UpdateScoreFunc: method is nil but projectRepo.UpdateScore was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateScore = append(mock.calls.UpdateScore, *p)
	mock.lock.Unlock()
	return mock.UpdateScoreFunc(ctx, p)
}

func (mock *projectRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("projectRepoMock.DeleteFunc: method is nil but projectRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, id)
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *projectRepoMock) List(ctx context.Context, f domain.ProjectFilter) ([]domain.Project, int, error) {
	if mock.ListFunc == nil {
		panic("projectRepoMock.ListFunc: method is nil but projectRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, f)
	mock.lock.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *projectRepoMock) GetLatestByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.Project, error) {
	if mock.GetLatestByOwnerFunc == nil {
		panic("projectRepoMock.GetLatestByOwnerFunc: method is nil but projectRepo.GetLatestByOwner was just called")
	}
	return mock.GetLatestByOwnerFunc(ctx, ownerID)
}

func (mock *projectRepoMock) RecountAggregates(ctx context.Context) ([]domain.Project, error) {
	if mock.RecountAggregatesFunc == nil {
		panic("projectRepoMock.RecountAggregatesFunc: method is nil but projectRepo.RecountAggregates was just called")
	}
	return mock.RecountAggregatesFunc(ctx)
}

func (mock *projectRepoMock) CreateCalls() []domain.Project {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *projectRepoMock) UpdateCalls() []domain.Project {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Update
}

func (mock *projectRepoMock) UpdateScoreCalls() []domain.Project {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdateScore
}

func (mock *projectRepoMock) DeleteCalls() []uuid.UUID {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}

func (mock *projectRepoMock) ListCalls() []domain.ProjectFilter {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.List
}

type commentCounterMock struct {
	CountByProjectFunc func(ctx context.Context, projectID uuid.UUID) (int, error)
}

func (mock *commentCounterMock) CountByProject(ctx context.Context, projectID uuid.UUID) (int, error) {
	if mock.CountByProjectFunc == nil {
		panic("commentCounterMock.CountByProjectFunc: method is nil but commentCounter.CountByProject was just called")
	}
	return mock.CountByProjectFunc(ctx, projectID)
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx int
	}
	lock sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lock.Lock()
	mock.calls.RunInTx++
	mock.lock.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() int {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.RunInTx
}

func defaultTxMock() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	}
}
