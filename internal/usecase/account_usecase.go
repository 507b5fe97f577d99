// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"notes/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// The delivery layer validates it before it reaches the usecase.
type RegisterInput struct {
	FullName string
	Email    string
	Password string
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account and its first session token.
type RegisterOutput struct {
	Account *entity.Account
	Token   string
}

// LoginOutput returns the authenticated account and a fresh session token.
type LoginOutput struct {
	Account *entity.Account
	Token   string
}

// AccountUsecase is the credential manager: registration, login and profile lookup.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	GetProfile(ctx context.Context, accountID uuid.UUID) (*entity.Account, error)
}
