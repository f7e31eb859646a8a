package mocks

import (
	"context"

	"CommentCase/models"

	"github.com/stretchr/testify/mock"
)

// CommentServiceMock is a testify/mock for services.CommentService.
// Used to test the HTTP handlers without real business logic.
type CommentServiceMock struct{ mock.Mock }

func (m *CommentServiceMock) ListComments(ctx context.Context) ([]models.Comment, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.Comment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CommentServiceMock) CreateComment(ctx context.Context, req models.CreateCommentRequest) (*models.Comment, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*models.Comment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CommentServiceMock) DeleteComment(ctx context.Context, id string) (*models.Comment, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.Comment), args.Error(1)
	}
	return nil, args.Error(1)
}
