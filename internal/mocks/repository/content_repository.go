package repository

import (
	"context"

	"learnhub/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockDocumentRepository is a mock for repository.DocumentRepository.
type MockDocumentRepository struct {
	mock.Mock
}

// NewMockDocumentRepository creates the mock and registers cleanup assertions.
func NewMockDocumentRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDocumentRepository {
	m := &MockDocumentRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockDocumentRepository) Create(ctx context.Context, doc *entity.Document) error {
	return m.Called(ctx, doc).Error(0)
}

func (m *MockDocumentRepository) List(ctx context.Context) ([]*entity.Document, error) {
	args := m.Called(ctx)
	if docs, ok := args.Get(0).([]*entity.Document); ok {
		return docs, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockVideoRepository is a mock for repository.VideoRepository.
type MockVideoRepository struct {
	mock.Mock
}

// NewMockVideoRepository creates the mock and registers cleanup assertions.
func NewMockVideoRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockVideoRepository {
	m := &MockVideoRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockVideoRepository) Create(ctx context.Context, video *entity.Video) error {
	return m.Called(ctx, video).Error(0)
}

func (m *MockVideoRepository) List(ctx context.Context) ([]*entity.Video, error) {
	args := m.Called(ctx)
	if videos, ok := args.Get(0).([]*entity.Video); ok {
		return videos, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockVideoRepository) FindByURL(ctx context.Context, url string) (*entity.Video, error) {
	args := m.Called(ctx, url)
	if video, ok := args.Get(0).(*entity.Video); ok {
		return video, args.Error(1)
	}

	return nil, args.Error(1)
}
