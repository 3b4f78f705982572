package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/cocodas/prier-backend/internal/service/comment"
)

var _ commentService = &commentServiceMock{}

type commentServiceMock struct {
	CreateCommentFunc        func(ctx context.Context, input comment.CreateCommentInput) (*comment.CommentResult, error)
	UpdateCommentFunc        func(ctx context.Context, input comment.UpdateCommentInput) (*comment.CommentResult, error)
	DeleteCommentFunc        func(ctx context.Context, input comment.DeleteCommentInput) error
	ListProjectCommentsFunc  func(ctx context.Context, projectID, viewerID uuid.UUID) ([]comment.CommentWithProfile, error)
	ListUserCommentsFunc     func(ctx context.Context, userID uuid.UUID) ([]comment.MyPageComment, error)
	CountSinceLastLogoutFunc func(ctx context.Context, userID uuid.UUID) (int, error)

	calls struct {
		CreateComment []comment.CreateCommentInput
		UpdateComment []comment.UpdateCommentInput
		DeleteComment []comment.DeleteCommentInput
	}
	lock sync.RWMutex
}

func (mock *commentServiceMock) CreateComment(ctx context.Context, input comment.CreateCommentInput) (*comment.CommentResult, error) {
	if mock.CreateCommentFunc == nil {
		panic("commentServiceMock.CreateCommentFunc: method is nil but commentService.CreateComment was just called")
	}
	mock.lock.Lock()
	mock.calls.CreateComment = append(mock.calls.CreateComment, input)
	mock.lock.Unlock()
	return mock.CreateCommentFunc(ctx, input)
}

func (mock *commentServiceMock) CreateCommentCalls() []comment.CreateCommentInput {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CreateComment
}

func (mock *commentServiceMock) UpdateComment(ctx context.Context, input comment.UpdateCommentInput) (*comment.CommentResult, error) {
	if mock.UpdateCommentFunc == nil {
		panic("commentServiceMock.UpdateCommentFunc: method is nil but commentService.UpdateComment was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateComment = append(mock.calls.UpdateComment, input)
	mock.lock.Unlock()
	return mock.UpdateCommentFunc(ctx, input)
}

func (mock *commentServiceMock) UpdateCommentCalls() []comment.UpdateCommentInput {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdateComment
}

func (mock *commentServiceMock) DeleteComment(ctx context.Context, input comment.DeleteCommentInput) error {
	if mock.DeleteCommentFunc == nil {
		panic("commentServiceMock.DeleteCommentFunc: method is nil but commentService.DeleteComment was just called")
	}
	mock.lock.Lock()
	mock.calls.DeleteComment = append(mock.calls.DeleteComment, input)
	mock.lock.Unlock()
	return mock.DeleteCommentFunc(ctx, input)
}

func (mock *commentServiceMock) DeleteCommentCalls() []comment.DeleteCommentInput {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.DeleteComment
}

func (mock *commentServiceMock) ListProjectComments(ctx context.Context, projectID, viewerID uuid.UUID) ([]comment.CommentWithProfile, error) {
	if mock.ListProjectCommentsFunc == nil {
		panic("commentServiceMock.ListProjectCommentsFunc: method is nil but commentService.ListProjectComments was just called")
	}
	return mock.ListProjectCommentsFunc(ctx, projectID, viewerID)
}

func (mock *commentServiceMock) ListUserComments(ctx context.Context, userID uuid.UUID) ([]comment.MyPageComment, error) {
	if mock.ListUserCommentsFunc == nil {
		panic("commentServiceMock.ListUserCommentsFunc: method is nil but commentService.ListUserComments was just called")
	}
	return mock.ListUserCommentsFunc(ctx, userID)
}

func (mock *commentServiceMock) CountSinceLastLogout(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.CountSinceLastLogoutFunc == nil {
		panic("commentServiceMock.CountSinceLastLogoutFunc: method is nil but commentService.CountSinceLastLogout was just called")
	}
	return mock.CountSinceLastLogoutFunc(ctx, userID)
}
