// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"notes/internal/domain/entity"
	"notes/internal/errors"

	"github.com/google/uuid"
)

// ErrAccountNotFound is returned when no account matches the lookup key.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the persistence operations for accounts.
type AccountRepository interface {
	// FindByEmail retrieves an account by exact (case-sensitive) email.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindByID retrieves an account by its identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// Create persists a new account and fills in the store-assigned ID and CreatedAt.
	// A unique email violation is reported as domainerrors.ErrDuplicateAccount.
	Create(ctx context.Context, account *entity.Account) error
}
