package auth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cocodas/prier-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type touchCall struct {
	ID uuid.UUID
	At time.Time
}

type userRepoMock struct {
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	TouchLoginFunc  func(ctx context.Context, id uuid.UUID, at time.Time) error
	TouchLogoutFunc func(ctx context.Context, id uuid.UUID, at time.Time) error

	calls struct {
		GetByID     []uuid.UUID
		TouchLogin  []touchCall
		TouchLogout []touchCall
	}
	lock sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, id)
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) TouchLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	if mock.TouchLoginFunc == nil {
		panic("userRepoMock.TouchLoginFunc: method is nil but userRepo.TouchLogin was just called")
	}
	mock.lock.Lock()
	mock.calls.TouchLogin = append(mock.calls.TouchLogin, touchCall{ID: id, At: at})
	mock.lock.Unlock()
	return mock.TouchLoginFunc(ctx, id, at)
}

func (mock *userRepoMock) TouchLogout(ctx context.Context, id uuid.UUID, at time.Time) error {
	if mock.TouchLogoutFunc == nil {
		panic("userRepoMock.TouchLogoutFunc: method is nil but userRepo.TouchLogout was just called")
	}
	mock.lock.Lock()
	mock.calls.TouchLogout = append(mock.calls.TouchLogout, touchCall{ID: id, At: at})
	mock.lock.Unlock()
	return mock.TouchLogoutFunc(ctx, id, at)
}

func (mock *userRepoMock) TouchLogoutCalls() []touchCall {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.TouchLogout
}

func (mock *userRepoMock) TouchLoginCalls() []touchCall {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.TouchLogin
}
