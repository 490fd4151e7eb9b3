// Package service contains hand-written test doubles for the domain service
// interfaces, in the style of generated testify mocks.
package service

import (
	"context"
	"io"
	"time"

	"learnhub/internal/domain/entity"
	domainservice "learnhub/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

type cleanupT interface {
	mock.TestingT
	Cleanup(func())
}

// MockPasswordHasher is a mock for service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

// NewMockPasswordHasher creates the mock and registers cleanup assertions.
func NewMockPasswordHasher(t cleanupT) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

func (m *MockPasswordHasher) UnusablePassword() (string, error) {
	args := m.Called()

	return args.String(0), args.Error(1)
}

// MockTokenService is a mock for service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates the mock and registers cleanup assertions.
func NewMockTokenService(t cleanupT) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) Generate(account *entity.Account) (string, error) {
	args := m.Called(account)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Validate(tokenString string) (*domainservice.SessionClaims, error) {
	args := m.Called(tokenString)
	if claims, ok := args.Get(0).(*domainservice.SessionClaims); ok {
		return claims, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockTokenService) SessionDuration() time.Duration {
	return m.Called().Get(0).(time.Duration)
}

// MockOAuthService is a mock for service.OAuthService.
type MockOAuthService struct {
	mock.Mock
}

// NewMockOAuthService creates the mock and registers cleanup assertions.
func NewMockOAuthService(t cleanupT) *MockOAuthService {
	m := &MockOAuthService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOAuthService) BuildAuthorizationURL() (string, string) {
	args := m.Called()

	return args.String(0), args.String(1)
}

func (m *MockOAuthService) ValidateState(state string) bool {
	return m.Called(state).Bool(0)
}

func (m *MockOAuthService) ResolveUser(ctx context.Context, code string) (*domainservice.OAuthUser, error) {
	args := m.Called(ctx, code)
	if user, ok := args.Get(0).(*domainservice.OAuthUser); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockMediaStorage is a mock for service.MediaStorage.
type MockMediaStorage struct {
	mock.Mock
}

// NewMockMediaStorage creates the mock and registers cleanup assertions.
func NewMockMediaStorage(t cleanupT) *MockMediaStorage {
	m := &MockMediaStorage{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockMediaStorage) Upload(ctx context.Context, r io.Reader, filename string, kind domainservice.MediaKind) (*domainservice.UploadResult, error) {
	args := m.Called(ctx, r, filename, kind)
	if result, ok := args.Get(0).(*domainservice.UploadResult); ok {
		return result, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockEventPublisher is a mock for service.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

// NewMockEventPublisher creates the mock and registers cleanup assertions.
func NewMockEventPublisher(t cleanupT) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockEventPublisher) PublishContentUploaded(ctx context.Context, event *domainservice.ContentUploadedEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockEventPublisher) Close(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockQRCodeService is a mock for service.QRCodeService.
type MockQRCodeService struct {
	mock.Mock
}

// NewMockQRCodeService creates the mock and registers cleanup assertions.
func NewMockQRCodeService(t cleanupT) *MockQRCodeService {
	m := &MockQRCodeService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockQRCodeService) GenerateShareQR(url string) ([]byte, error) {
	args := m.Called(url)
	if png, ok := args.Get(0).([]byte); ok {
		return png, args.Error(1)
	}

	return nil, args.Error(1)
}
