// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"learnhub/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for account persistence. The application layer
// handles these outcomes without depending on database-specific errors.
var (
	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("account not found")

	// ErrDuplicateEmail is returned when a create collides with the unique
	// email index. Callers racing on first federated login treat this as
	// "account already exists, fetch and use it".
	ErrDuplicateEmail = errors.New("email already registered")
)

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account. Returns ErrDuplicateEmail when the
	// unique email index rejects the write.
	Create(ctx context.Context, account *entity.Account) error

	// Update modifies an existing account.
	Update(ctx context.Context, account *entity.Account) error
}
