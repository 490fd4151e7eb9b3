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

// documentRepository implements the repository.DocumentRepository interface.
type documentRepository struct {
	col *mongo.Collection
}

// NewDocumentRepository is the constructor for documentRepository.
func NewDocumentRepository(db *mongo.Database) repository.DocumentRepository {
	return &documentRepository{
		col: db.Collection(documentsCollection),
	}
}

// Create persists a new document record.
func (repo *documentRepository) Create(ctx context.Context, doc *entity.Document) error {
	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	now := time.Now()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	if _, err := repo.col.InsertOne(ctx, model.FromDocumentDomain(doc)); err != nil {
		return errors.Wrap(err, "failed to create document record")
	}

	return nil
}

// List retrieves all document records, newest first.
func (repo *documentRepository) List(ctx context.Context) ([]*entity.Document, error) {
	cursor, err := repo.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list documents")
	}

	var models []*model.DocumentModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, errors.Wrap(err, "failed to decode document records")
	}

	docs := make([]*entity.Document, 0, len(models))
	for _, m := range models {
		docs = append(docs, model.ToDocumentDomain(m))
	}

	return docs, nil
}
