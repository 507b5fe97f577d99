// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is a registered user's identity and credential record.
type Account struct {
	ID           uuid.UUID // Store-assigned unique identifier.
	FullName     string    // Display name.
	Email        string    // Unique login key, matched case-sensitively.
	PasswordHash string    // bcrypt hash of the password. Never leaves the process except as input to Check.
	CreatedAt    time.Time // Timestamp of registration.
}

// Identity is the non-secret subset of an Account carried inside a session token.
type Identity struct {
	AccountID uuid.UUID
	FullName  string
	Email     string
}

// Identity returns the token-safe view of the account.
func (a *Account) Identity() Identity {
	return Identity{
		AccountID: a.ID,
		FullName:  a.FullName,
		Email:     a.Email,
	}
}
