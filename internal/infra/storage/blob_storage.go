// Package storage implements the media host on top of gocloud.dev blob
// buckets, so deployments can switch between S3, GCS and local disk by URL.
package storage

import (
	"context"
	"io"
	"log/slog"
	"mime"
	"path"
	"strings"

	"learnhub/config"
	"learnhub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers are selected by the configured URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// blobStorage implements the service.MediaStorage interface.
type blobStorage struct {
	bucket         *blob.Bucket
	documentFolder string
	videoFolder    string
	publicBaseURL  string
	logger         *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewBlobStorage opens the configured bucket and owns its lifetime.
func NewBlobStorage(params Params) (service.MediaStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage bucket url must be provided")
	}

	bucket, err := blob.OpenBucket(context.Background(), cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open storage bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	documentFolder := cfg.DocumentFolder
	if documentFolder == "" {
		documentFolder = "documents"
	}
	videoFolder := cfg.VideoFolder
	if videoFolder == "" {
		videoFolder = "videos"
	}

	return &blobStorage{
		bucket:         bucket,
		documentFolder: documentFolder,
		videoFolder:    videoFolder,
		publicBaseURL:  strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:         params.Logger,
	}, nil
}

// Upload streams the file bytes into the bucket under a collision-free key
// and returns the public URL of the stored object.
func (s *blobStorage) Upload(ctx context.Context, r io.Reader, filename string, kind service.MediaKind) (*service.UploadResult, error) {
	key := s.objectKey(filename, kind)

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentTypeFor(filename),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open bucket writer")
	}

	size, err := io.Copy(writer, r)
	if err != nil {
		writer.Close()

		return nil, errors.Wrap(err, "failed to write file to bucket")
	}

	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to finalize bucket write")
	}

	s.logger.Debug("Stored media object", slog.String("key", key), slog.Int64("size", size))

	return &service.UploadResult{
		URL:  s.publicBaseURL + "/" + key,
		Size: size,
	}, nil
}

// objectKey builds folder/uuid-suffixed keys so concurrent uploads of the
// same filename never overwrite each other.
func (s *blobStorage) objectKey(filename string, kind service.MediaKind) string {
	folder := s.documentFolder
	if kind == service.MediaKindVideo {
		folder = s.videoFolder
	}

	base := path.Base(filename)
	if base == "." || base == "/" {
		base = "upload"
	}

	return folder + "/" + uuid.New().String() + "-" + base
}

func contentTypeFor(filename string) string {
	if ct := mime.TypeByExtension(path.Ext(filename)); ct != "" {
		return ct
	}

	return "application/octet-stream"
}
