package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"learnhub/internal/domain/entity"
	domainerrors "learnhub/internal/domain/errors"
	"learnhub/internal/domain/repository"
	"learnhub/internal/domain/service"
	mockRepo "learnhub/internal/mocks/repository"
	mockSvc "learnhub/internal/mocks/service"
	"learnhub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// contentServiceFixtures holds all test dependencies for content service tests.
type contentServiceFixtures struct {
	service      usecase.ContentUsecase
	documentRepo *mockRepo.MockDocumentRepository
	videoRepo    *mockRepo.MockVideoRepository
	storage      *mockSvc.MockMediaStorage
	publisher    *mockSvc.MockEventPublisher
	qrcode       *mockSvc.MockQRCodeService
}

func createTestContentService(t *testing.T) contentServiceFixtures {
	documentRepo := mockRepo.NewMockDocumentRepository(t)
	videoRepo := mockRepo.NewMockVideoRepository(t)
	storage := mockSvc.NewMockMediaStorage(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	qrcode := mockSvc.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewContentService(ContentServiceParams{
		DocumentRepo: documentRepo,
		VideoRepo:    videoRepo,
		Storage:      storage,
		Publisher:    publisher,
		QRCode:       qrcode,
		Logger:       logger,
	})

	return contentServiceFixtures{
		service:      svc,
		documentRepo: documentRepo,
		videoRepo:    videoRepo,
		storage:      storage,
		publisher:    publisher,
		qrcode:       qrcode,
	}
}

func TestContentService_UploadDocument_Success(t *testing.T) {
	fx := createTestContentService(t)
	ctx := context.Background()

	file := strings.NewReader("%PDF-1.7 fake document body")
	input := &usecase.UploadDocumentInput{
		Title:       "Week 3 lecture notes",
		Description: "Pointers and slices",
		Filename:    "week3.pdf",
		File:        file,
		Uploader:    "Test Member",
	}

	fx.storage.On("Upload", ctx, file, "week3.pdf", service.MediaKindDocument).
		Return(&service.UploadResult{URL: "https://cdn.example.com/documents/week3.pdf", Size: 2 * 1024 * 1024}, nil).Once()
	fx.documentRepo.On("Create", ctx, mock.MatchedBy(func(doc *entity.Document) bool {
		return doc.Title == input.Title &&
			doc.URL == "https://cdn.example.com/documents/week3.pdf" &&
			doc.Uploader == input.Uploader &&
			doc.SizeMB == 2.0
	})).Return(nil).Once()
	fx.publisher.On("PublishContentUploaded", ctx, mock.MatchedBy(func(event *service.ContentUploadedEvent) bool {
		return event.Kind == service.MediaKindDocument && event.Title == input.Title
	})).Return(nil).Once()

	doc, err := fx.service.UploadDocument(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/documents/week3.pdf", doc.URL)
}

func TestContentService_UploadDocument_StorageFailureLeavesNoRecord(t *testing.T) {
	fx := createTestContentService(t)
	ctx := context.Background()

	fx.storage.On("Upload", ctx, mock.Anything, "week3.pdf", service.MediaKindDocument).
		Return(nil, errors.New("bucket unavailable")).Once()

	doc, err := fx.service.UploadDocument(ctx, &usecase.UploadDocumentInput{
		Title:    "Week 3 lecture notes",
		Filename: "week3.pdf",
		File:     strings.NewReader("body"),
		Uploader: "Test Member",
	})
	require.Error(t, err)
	assert.Nil(t, doc)
	fx.documentRepo.AssertNotCalled(t, "Create")
	fx.publisher.AssertNotCalled(t, "PublishContentUploaded")
}

func TestContentService_UploadVideo_PublishFailureIsSwallowed(t *testing.T) {
	fx := createTestContentService(t)
	ctx := context.Background()

	fx.storage.On("Upload", ctx, mock.Anything, "intro.mp4", service.MediaKindVideo).
		Return(&service.UploadResult{URL: "https://cdn.example.com/videos/intro.mp4", Size: 1024}, nil).Once()
	fx.videoRepo.On("Create", ctx, mock.Anything).Return(nil).Once()
	fx.publisher.On("PublishContentUploaded", ctx, mock.Anything).
		Return(errors.New("broker down")).Once()

	video, err := fx.service.UploadVideo(ctx, &usecase.UploadVideoInput{
		Title:    "Course intro",
		Filename: "intro.mp4",
		File:     strings.NewReader("bytes"),
		Duration: 95.5,
		Uploader: "Test Member",
	})

	// The upload succeeds even when the event bus is down.
	require.NoError(t, err)
	assert.Equal(t, 95.5, video.Duration)
}

func TestContentService_ListDocuments(t *testing.T) {
	fx := createTestContentService(t)
	ctx := context.Background()

	expected := []*entity.Document{
		{Title: "Newest"},
		{Title: "Oldest"},
	}
	fx.documentRepo.On("List", ctx).Return(expected, nil).Once()

	docs, err := fx.service.ListDocuments(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, docs)
}

func TestContentService_GetVideoByURL_NotFound(t *testing.T) {
	fx := createTestContentService(t)
	ctx := context.Background()

	fx.videoRepo.On("FindByURL", ctx, "https://cdn.example.com/videos/missing.mp4").
		Return(nil, repository.ErrContentNotFound).Once()

	video, err := fx.service.GetVideoByURL(ctx, "https://cdn.example.com/videos/missing.mp4")
	require.Error(t, err)
	assert.Nil(t, video)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestContentService_ShareQR(t *testing.T) {
	fx := createTestContentService(t)

	fx.qrcode.On("GenerateShareQR", "https://cdn.example.com/videos/intro.mp4").
		Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil).Once()

	png, err := fx.service.ShareQR("https://cdn.example.com/videos/intro.mp4")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestRoundMB(t *testing.T) {
	tests := []struct {
		name     string
		bytes    int64
		expected float64
	}{
		{"zero", 0, 0},
		{"one mebibyte", 1024 * 1024, 1.0},
		{"half mebibyte", 512 * 1024, 0.5},
		{"rounded to two decimals", 1234567, 1.18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, roundMB(tt.bytes))
		})
	}
}
