package service

import (
	"context"
	"io"
)

// MediaKind selects the storage folder and content handling for an upload.
type MediaKind string

const (
	// MediaKindDocument stores PDF documents.
	MediaKindDocument MediaKind = "document"
	// MediaKindVideo stores video files.
	MediaKindVideo MediaKind = "video"
)

// UploadResult describes a completed blob write.
type UploadResult struct {
	URL  string // Public URL of the stored object.
	Size int64  // Stored size in bytes.
}

// MediaStorage defines the interface for the blob/media host. Implementations
// are only invoked after the resource guard has authorized the write.
type MediaStorage interface {
	// Upload streams the file bytes to the media host and returns its public URL.
	Upload(ctx context.Context, r io.Reader, filename string, kind MediaKind) (*UploadResult, error)
}
