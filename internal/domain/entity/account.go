// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the core identity record in the system, representing a registered
// person. Exactly one Account exists per email address; the persistence layer
// enforces this with a unique index.
type Account struct {
	ID            uuid.UUID // The Global Unique Identifier (GUID) for the account.
	FullName      string    // The account holder's display name.
	Email         string    // The account's primary email, used as the login identifier.
	PasswordHash  string    // Stores the bcrypt-hashed password. Never plaintext.
	Role          Role      // The account's role, carried into the session claim.
	FederatedOnly bool      // True when the account was provisioned by a federated login and holds an unusable password hash.
	CreatedAt     time.Time // Timestamp of when this account was created.
	UpdatedAt     time.Time // Timestamp of the last modification to this account.
}
