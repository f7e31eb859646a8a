package mocks

import (
	"context"

	"CommentCase/models"

	"github.com/stretchr/testify/mock"
)

// CommentRepositoryMock is a testify/mock for repositories.CommentRepository.
// Used to unit-test the service layer without a Mongo or SQL store.
type CommentRepositoryMock struct{ mock.Mock }

func (m *CommentRepositoryMock) FindAll(ctx context.Context) ([]models.Comment, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.Comment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CommentRepositoryMock) Create(ctx context.Context, c *models.Comment) error {
	return m.Called(ctx, c).Error(0)
}

func (m *CommentRepositoryMock) DeleteByID(ctx context.Context, id string) (*models.Comment, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.Comment), args.Error(1)
	}
	return nil, args.Error(1)
}
