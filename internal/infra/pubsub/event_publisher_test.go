package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"learnhub/config"
	"learnhub/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	gcpubsub "gocloud.dev/pubsub"
)

type nopLifecycle struct{}

func (nopLifecycle) Append(fx.Hook) {}

func newTestPublisher(t *testing.T, topicURL string) service.EventPublisher {
	publisher, err := NewTopicPublisher(Params{
		Lifecycle: nopLifecycle{},
		Config: &config.Config{
			PubSub: &config.PubSubConfig{TopicURL: topicURL},
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	return publisher
}

func TestNewTopicPublisher_MissingTopicURL(t *testing.T) {
	publisher, err := NewTopicPublisher(Params{
		Lifecycle: nopLifecycle{},
		Config:    &config.Config{},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	assert.Error(t, err)
	assert.Nil(t, publisher)
}

func TestTopicPublisher_PublishContentUploaded(t *testing.T) {
	ctx := context.Background()

	publisher := newTestPublisher(t, "mem://uploads")
	defer publisher.Close(ctx)

	subscription, err := gcpubsub.OpenSubscription(ctx, "mem://uploads")
	require.NoError(t, err)
	defer subscription.Shutdown(ctx)

	event := &service.ContentUploadedEvent{
		Kind:       service.MediaKindDocument,
		Title:      "Week 3 lecture notes",
		URL:        "https://cdn.example.com/documents/week3.pdf",
		Uploader:   "Test Member",
		UploadedAt: time.Now().UTC(),
	}
	require.NoError(t, publisher.PublishContentUploaded(ctx, event))

	receiveCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	msg, err := subscription.Receive(receiveCtx)
	require.NoError(t, err)
	defer msg.Ack()

	assert.Equal(t, "document", msg.Metadata["kind"])

	var received service.ContentUploadedEvent
	require.NoError(t, json.Unmarshal(msg.Body, &received))
	assert.Equal(t, event.Title, received.Title)
	assert.Equal(t, event.URL, received.URL)
}
