package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"learnhub/config"
	"learnhub/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

// nopLifecycle satisfies fx.Lifecycle without an fx app.
type nopLifecycle struct{}

func (nopLifecycle) Append(fx.Hook) {}

func newTestStorage(t *testing.T) service.MediaStorage {
	storage, err := NewBlobStorage(Params{
		Lifecycle: nopLifecycle{},
		Config: &config.Config{
			Storage: &config.StorageConfig{
				BucketURL:     "mem://",
				PublicBaseURL: "https://cdn.example.com/",
			},
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	return storage
}

func TestNewBlobStorage_MissingBucketURL(t *testing.T) {
	storage, err := NewBlobStorage(Params{
		Lifecycle: nopLifecycle{},
		Config:    &config.Config{},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	assert.Error(t, err)
	assert.Nil(t, storage)
}

func TestBlobStorage_UploadDocument(t *testing.T) {
	storage := newTestStorage(t)

	body := "%PDF-1.7 fake document body"
	result, err := storage.Upload(context.Background(), strings.NewReader(body), "week3.pdf", service.MediaKindDocument)
	require.NoError(t, err)

	assert.Equal(t, int64(len(body)), result.Size)
	assert.True(t, strings.HasPrefix(result.URL, "https://cdn.example.com/documents/"))
	assert.True(t, strings.HasSuffix(result.URL, "-week3.pdf"))
}

func TestBlobStorage_UploadVideoUsesVideoFolder(t *testing.T) {
	storage := newTestStorage(t)

	result, err := storage.Upload(context.Background(), strings.NewReader("bytes"), "intro.mp4", service.MediaKindVideo)
	require.NoError(t, err)
	assert.Contains(t, result.URL, "/videos/")
}

func TestBlobStorage_UploadStripsPathTraversal(t *testing.T) {
	storage := newTestStorage(t)

	result, err := storage.Upload(context.Background(), strings.NewReader("bytes"), "../../etc/passwd.pdf", service.MediaKindDocument)
	require.NoError(t, err)
	assert.NotContains(t, result.URL, "..")
	assert.True(t, strings.HasSuffix(result.URL, "-passwd.pdf"))
}

func TestBlobStorage_SameFilenameNeverCollides(t *testing.T) {
	storage := newTestStorage(t)

	first, err := storage.Upload(context.Background(), strings.NewReader("one"), "week3.pdf", service.MediaKindDocument)
	require.NoError(t, err)
	second, err := storage.Upload(context.Background(), strings.NewReader("two"), "week3.pdf", service.MediaKindDocument)
	require.NoError(t, err)

	assert.NotEqual(t, first.URL, second.URL)
}

func TestContentTypeFor(t *testing.T) {
	assert.Equal(t, "application/pdf", contentTypeFor("week3.pdf"))
	assert.Equal(t, "application/octet-stream", contentTypeFor("noextension"))
}
