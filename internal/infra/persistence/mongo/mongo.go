// Package mongo contains the concrete implementation of the persistence layer
// using the official MongoDB driver.
package mongo

import (
	"context"
	"log/slog"
	"time"

	"learnhub/config"
	"learnhub/internal/domain/lifecycle"
	"learnhub/internal/errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/fx"
)

const (
	accountsCollection  = "accounts"
	documentsCollection = "documents"
	videosCollection    = "videos"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB database handle. The connection is established
// once at process start and owned here; repositories receive the handle
// rather than reaching for global state.
func New(params Params) (*mongo.Database, error) {
	cfg := params.Config.Mongo
	if cfg == nil || cfg.URI == "" {
		return nil, errors.New("mongo connection settings must be provided")
	}

	database := cfg.Database
	if database == "" {
		database = "learnhub"
	}

	client, err := connect(cfg)
	if err != nil {
		return nil, err
	}

	db := client.Database(database)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, nil); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			return ensureIndexes(ctx, db)
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return client.Disconnect(ctx)
		},
	})

	return db, nil
}

// connect dials the server, retrying a few times so a cold-started database
// container does not fail the whole process.
func connect(cfg *config.MongoConfig) (*mongo.Client, error) {
	attempts := cfg.RetryAttempts
	if attempts <= 0 {
		attempts = 3
	}
	interval := cfg.RetryInterval
	if interval <= 0 {
		interval = 5 * time.Second
	}

	opts := options.Client().ApplyURI(cfg.URI)
	if cfg.ConnectTimeout > 0 {
		opts = opts.SetConnectTimeout(cfg.ConnectTimeout)
	}
	if cfg.MaxPoolSize > 0 {
		opts = opts.SetMaxPoolSize(cfg.MaxPoolSize)
	}
	if cfg.MinPoolSize > 0 {
		opts = opts.SetMinPoolSize(cfg.MinPoolSize)
	}
	if cfg.MaxConnIdleTime > 0 {
		opts = opts.SetMaxConnIdleTime(cfg.MaxConnIdleTime)
	}

	var lastErr error
	for range attempts {
		client, err := mongo.Connect(opts)
		if err == nil {
			return client, nil
		}
		lastErr = err

		time.Sleep(interval)
	}

	return nil, errors.Wrap(lastErr, "failed to connect to MongoDB")
}

// ensureIndexes creates the indexes the domain invariants depend on. The
// unique email index is what resolves the provisioner's create race.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(accountsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create unique email index")
	}

	_, err = db.Collection(videosCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "url", Value: 1}},
	})
	if err != nil {
		return errors.Wrap(err, "failed to create video url index")
	}

	return nil
}
