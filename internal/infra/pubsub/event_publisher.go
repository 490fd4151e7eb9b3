// Package pubsub publishes upload notifications through gocloud.dev topics.
package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"learnhub/config"
	"learnhub/internal/domain/lifecycle"
	"learnhub/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/pubsub"

	// Topic drivers are selected by the configured URL scheme.
	_ "gocloud.dev/pubsub/gcppubsub"
	_ "gocloud.dev/pubsub/mempubsub"
)

// topicPublisher implements the service.EventPublisher interface.
type topicPublisher struct {
	topic  *pubsub.Topic
	logger *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewTopicPublisher opens the configured topic and shuts it down with the app.
func NewTopicPublisher(params Params) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.TopicURL == "" {
		return nil, errors.New("pubsub topic url must be provided")
	}

	topic, err := pubsub.OpenTopic(context.Background(), cfg.TopicURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open pubsub topic")
	}

	publisher := &topicPublisher{
		topic:  topic,
		logger: params.Logger,
	}

	params.Append(fx.Hook{
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return publisher.topic.Shutdown(ctx)
		},
	})

	return publisher, nil
}

// PublishContentUploaded sends the event as a JSON message with the content
// kind duplicated in the metadata for subscriber-side filtering.
func (p *topicPublisher) PublishContentUploaded(ctx context.Context, event *service.ContentUploadedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to encode upload event")
	}

	if err := p.topic.Send(ctx, &pubsub.Message{
		Body: body,
		Metadata: map[string]string{
			"kind": string(event.Kind),
		},
	}); err != nil {
		return errors.Wrap(err, "failed to publish upload event")
	}

	p.logger.Debug("Published upload event",
		slog.String("kind", string(event.Kind)),
		slog.String("url", event.URL))

	return nil
}

// Close releases the underlying topic outside the fx lifecycle, mainly for tests.
func (p *topicPublisher) Close(ctx context.Context) error {
	return p.topic.Shutdown(ctx)
}
