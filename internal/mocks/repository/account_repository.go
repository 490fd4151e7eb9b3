// Package repository contains hand-written test doubles for the persistence
// interfaces, in the style of generated testify mocks.
package repository

import (
	"context"

	"learnhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock for repository.AccountRepository.
type MockAccountRepository struct {
	mock.Mock
}

// NewMockAccountRepository creates the mock and registers cleanup assertions.
func NewMockAccountRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccountRepository {
	m := &MockAccountRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	args := m.Called(ctx, id)
	if account, ok := args.Get(0).(*entity.Account); ok {
		return account, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	args := m.Called(ctx, email)
	if account, ok := args.Get(0).(*entity.Account); ok {
		return account, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAccountRepository) Create(ctx context.Context, account *entity.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepository) Update(ctx context.Context, account *entity.Account) error {
	return m.Called(ctx, account).Error(0)
}
