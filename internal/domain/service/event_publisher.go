package service

import (
	"context"
	"time"
)

// ContentUploadedEvent is published after a successful upload so downstream
// consumers (feeds, notifications) can react without coupling to the portal.
type ContentUploadedEvent struct {
	Kind       MediaKind `json:"kind"`
	Title      string    `json:"title"`
	URL        string    `json:"url"`
	Uploader   string    `json:"uploader"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// EventPublisher defines the interface for publishing domain events.
type EventPublisher interface {
	// PublishContentUploaded emits a content.uploaded event. Failures are
	// logged by callers, never surfaced to the uploading user.
	PublishContentUploaded(ctx context.Context, event *ContentUploadedEvent) error

	// Close releases the underlying transport.
	Close(ctx context.Context) error
}
