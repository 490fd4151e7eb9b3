// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Document represents an uploaded PDF document. The bytes live in blob
// storage; this record only carries metadata and the public URL.
type Document struct {
	ID          uuid.UUID // The unique ID for this document record.
	Title       string    // Display title supplied by the uploader.
	Description string    // Optional free-form description.
	URL         string    // Public URL of the stored file.
	Uploader    string    // Display name of the account that uploaded it.
	SizeMB      float64   // File size in mebibytes, rounded to two decimals.
	CreatedAt   time.Time // Timestamp of when this document was uploaded.
	UpdatedAt   time.Time // Timestamp of the last modification to this record.
}

// Video represents an uploaded video.
type Video struct {
	ID          uuid.UUID // The unique ID for this video record.
	Title       string    // Display title supplied by the uploader.
	Description string    // Optional free-form description.
	URL         string    // Public URL of the stored file.
	Duration    float64   // Playback duration in seconds, zero when unknown.
	Uploader    string    // Display name of the account that uploaded it.
	CreatedAt   time.Time // Timestamp of when this video was uploaded.
	UpdatedAt   time.Time // Timestamp of the last modification to this record.
}
