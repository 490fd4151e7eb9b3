// Package model contains the persistence representations of the domain
// entities, kept separate so bson concerns never leak into the domain.
package model

import (
	"time"

	"learnhub/internal/domain/entity"

	"github.com/google/uuid"
)

// AccountModel is the bson shape of an Account. The email field carries a
// unique index; the store rejecting a duplicate insert is what resolves the
// provisioner's lookup-then-create race.
type AccountModel struct {
	ID            string    `bson:"_id"`
	FullName      string    `bson:"fullName"`
	Email         string    `bson:"email"`
	PasswordHash  string    `bson:"passwordHash"`
	Role          string    `bson:"role"`
	FederatedOnly bool      `bson:"federatedOnly,omitempty"`
	CreatedAt     time.Time `bson:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt"`
}

// FromAccountDomain maps a domain entity to its persistence model.
func FromAccountDomain(account *entity.Account) *AccountModel {
	return &AccountModel{
		ID:            account.ID.String(),
		FullName:      account.FullName,
		Email:         account.Email,
		PasswordHash:  account.PasswordHash,
		Role:          account.Role.String(),
		FederatedOnly: account.FederatedOnly,
		CreatedAt:     account.CreatedAt,
		UpdatedAt:     account.UpdatedAt,
	}
}

// ToAccountDomain maps a persistence model back to a pure domain entity.
func ToAccountDomain(m *AccountModel) *entity.Account {
	id, _ := uuid.Parse(m.ID)

	return &entity.Account{
		ID:            id,
		FullName:      m.FullName,
		Email:         m.Email,
		PasswordHash:  m.PasswordHash,
		Role:          entity.RoleFromString(m.Role),
		FederatedOnly: m.FederatedOnly,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
