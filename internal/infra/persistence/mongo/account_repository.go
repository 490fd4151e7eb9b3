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
)

// accountRepository implements the repository.AccountRepository interface.
type accountRepository struct {
	col *mongo.Collection
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewAccountRepository(db *mongo.Database) repository.AccountRepository {
	return &accountRepository{
		col: db.Collection(accountsCollection),
	}
}

// FindByID retrieves a single account by its unique ID.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var m model.AccountModel
	if err := repo.col.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return model.ToAccountDomain(&m), nil
}

// FindByEmail retrieves a single account by its email address.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var m model.AccountModel
	if err := repo.col.FindOne(ctx, bson.M{"email": email}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return model.ToAccountDomain(&m), nil
}

// Create persists a new account. The unique email index rejects a duplicate
// insert; that outcome is surfaced as repository.ErrDuplicateEmail so the
// caller can treat a lost provisioning race as benign.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	now := time.Now()
	account.CreatedAt = now
	account.UpdatedAt = now

	if _, err := repo.col.InsertOne(ctx, model.FromAccountDomain(account)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateEmail
		}

		return errors.Wrap(err, "failed to create account")
	}

	return nil
}

// Update modifies an existing account.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	account.UpdatedAt = time.Now()

	result, err := repo.col.ReplaceOne(ctx, bson.M{"_id": account.ID.String()}, model.FromAccountDomain(account))
	if err != nil {
		return errors.Wrap(err, "failed to update account")
	}
	if result.MatchedCount == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}
