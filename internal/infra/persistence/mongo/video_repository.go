package mongo

import (
	"context"
	"time"

	"learnhub/internal/domain/entity"
	"learnhub/internal/domain/repository"
	"learnhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// videoRepository implements the repository.VideoRepository interface.
type videoRepository struct {
	col *mongo.Collection
}

// NewVideoRepository is the constructor for videoRepository.
func NewVideoRepository(db *mongo.Database) repository.VideoRepository {
	return &videoRepository{
		col: db.Collection(videosCollection),
	}
}

// Create persists a new video record.
func (repo *videoRepository) Create(ctx context.Context, video *entity.Video) error {
	if video.ID == uuid.Nil {
		video.ID = uuid.New()
	}
	now := time.Now()
	video.CreatedAt = now
	video.UpdatedAt = now

	if _, err := repo.col.InsertOne(ctx, model.FromVideoDomain(video)); err != nil {
		return errors.Wrap(err, "failed to create video record")
	}

	return nil
}

// List retrieves all video records, newest first.
func (repo *videoRepository) List(ctx context.Context) ([]*entity.Video, error) {
	cursor, err := repo.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list videos")
	}

	var models []*model.VideoModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, errors.Wrap(err, "failed to decode video records")
	}

	videos := make([]*entity.Video, 0, len(models))
	for _, m := range models {
		videos = append(videos, model.ToVideoDomain(m))
	}

	return videos, nil
}

// FindByURL retrieves a single video by its public URL.
func (repo *videoRepository) FindByURL(ctx context.Context, url string) (*entity.Video, error) {
	var m model.VideoModel
	if err := repo.col.FindOne(ctx, bson.M{"url": url}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrContentNotFound
		}

		return nil, errors.Wrap(err, "failed to find video by url")
	}

	return model.ToVideoDomain(&m), nil
}
