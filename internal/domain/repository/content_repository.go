// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"learnhub/internal/domain/entity"
)

// ErrContentNotFound is returned when no document or video matches the lookup.
var ErrContentNotFound = errors.New("content not found")

// DocumentRepository defines the operations for document metadata persistence.
type DocumentRepository interface {
	// Create persists a new document record.
	Create(ctx context.Context, doc *entity.Document) error

	// List retrieves all document records, newest first.
	List(ctx context.Context) ([]*entity.Document, error)
}

// VideoRepository defines the operations for video metadata persistence.
type VideoRepository interface {
	// Create persists a new video record.
	Create(ctx context.Context, video *entity.Video) error

	// List retrieves all video records, newest first.
	List(ctx context.Context) ([]*entity.Video, error)

	// FindByURL retrieves a single video by its public URL.
	FindByURL(ctx context.Context, url string) (*entity.Video, error)
}
