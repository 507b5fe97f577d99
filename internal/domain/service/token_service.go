package service

import (
	"notes/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for session tokens.
// Only non-secret identity fields are carried; the password hash never is.
type Claims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues and validates signed session tokens.
type TokenService interface {
	// IssueToken signs a token asserting the account identity, expiring after the configured TTL.
	IssueToken(account *entity.Account) (string, error)

	// ValidateToken verifies signature and expiry and returns the embedded identity.
	// It fails with domainerrors.ErrExpiredToken or domainerrors.ErrInvalidToken.
	ValidateToken(tokenString string) (*entity.Identity, error)
}
