package usecase

import (
	"context"
	"io"

	"learnhub/internal/domain/entity"
)

// UploadDocumentInput carries a document upload. Reader is consumed once.
type UploadDocumentInput struct {
	Title       string
	Description string
	Filename    string
	File        io.Reader
	Uploader    string
}

// UploadVideoInput carries a video upload.
type UploadVideoInput struct {
	Title       string
	Description string
	Filename    string
	File        io.Reader
	Duration    float64
	Uploader    string
}

// ContentUsecase defines the content operations behind the resource guard.
// Authorization happens in the delivery layer before these are invoked; the
// implementations perform no auth checks of their own.
type ContentUsecase interface {
	// UploadDocument stores the file bytes and persists the metadata record.
	UploadDocument(ctx context.Context, input *UploadDocumentInput) (*entity.Document, error)

	// UploadVideo stores the file bytes and persists the metadata record.
	UploadVideo(ctx context.Context, input *UploadVideoInput) (*entity.Video, error)

	// ListDocuments returns all document records, newest first.
	ListDocuments(ctx context.Context) ([]*entity.Document, error)

	// ListVideos returns all video records, newest first.
	ListVideos(ctx context.Context) ([]*entity.Video, error)

	// GetVideoByURL resolves a single video for the watch page.
	GetVideoByURL(ctx context.Context, url string) (*entity.Video, error)

	// ShareQR renders a QR code PNG for a share link.
	ShareQR(url string) ([]byte, error)
}
