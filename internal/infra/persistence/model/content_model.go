package model

import (
	"time"

	"learnhub/internal/domain/entity"

	"github.com/google/uuid"
)

// DocumentModel is the bson shape of a Document record.
type DocumentModel struct {
	ID          string    `bson:"_id"`
	Title       string    `bson:"title"`
	Description string    `bson:"description,omitempty"`
	URL         string    `bson:"url"`
	Uploader    string    `bson:"uploader"`
	SizeMB      float64   `bson:"size"`
	CreatedAt   time.Time `bson:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt"`
}

// VideoModel is the bson shape of a Video record.
type VideoModel struct {
	ID          string    `bson:"_id"`
	Title       string    `bson:"title"`
	Description string    `bson:"description,omitempty"`
	URL         string    `bson:"url"`
	Duration    float64   `bson:"duration"`
	Uploader    string    `bson:"uploader"`
	CreatedAt   time.Time `bson:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt"`
}

// FromDocumentDomain maps a domain entity to its persistence model.
func FromDocumentDomain(doc *entity.Document) *DocumentModel {
	return &DocumentModel{
		ID:          doc.ID.String(),
		Title:       doc.Title,
		Description: doc.Description,
		URL:         doc.URL,
		Uploader:    doc.Uploader,
		SizeMB:      doc.SizeMB,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
}

// ToDocumentDomain maps a persistence model back to a pure domain entity.
func ToDocumentDomain(m *DocumentModel) *entity.Document {
	id, _ := uuid.Parse(m.ID)

	return &entity.Document{
		ID:          id,
		Title:       m.Title,
		Description: m.Description,
		URL:         m.URL,
		Uploader:    m.Uploader,
		SizeMB:      m.SizeMB,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromVideoDomain maps a domain entity to its persistence model.
func FromVideoDomain(video *entity.Video) *VideoModel {
	return &VideoModel{
		ID:          video.ID.String(),
		Title:       video.Title,
		Description: video.Description,
		URL:         video.URL,
		Duration:    video.Duration,
		Uploader:    video.Uploader,
		CreatedAt:   video.CreatedAt,
		UpdatedAt:   video.UpdatedAt,
	}
}

// ToVideoDomain maps a persistence model back to a pure domain entity.
func ToVideoDomain(m *VideoModel) *entity.Video {
	id, _ := uuid.Parse(m.ID)

	return &entity.Video{
		ID:          id,
		Title:       m.Title,
		Description: m.Description,
		URL:         m.URL,
		Duration:    m.Duration,
		Uploader:    m.Uploader,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
