package auth

import (
	"time"

	"notes/config"
	"notes/internal/domain/entity"
	domainerrors "notes/internal/domain/errors"
	"notes/internal/domain/service"
	"notes/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte           // Process-wide signing secret; read-only after construction.
	ttl    time.Duration    // Lifetime of an issued token.
	now    func() time.Time // Clock used for iat/exp and for validation.
	parser *jwt.Parser
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	ttl := config.DefaultTokenTTL
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return newJWTService(cfg.SecretKey.Access, ttl, time.Now)
}

func newJWTService(secret string, ttl time.Duration, now func() time.Time) (*jwtService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    now,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithStrictDecoding(),
			jwt.WithTimeFunc(now),
		),
	}, nil
}

// IssueToken creates a signed token carrying the account's non-secret identity.
func (s *jwtService) IssueToken(account *entity.Account) (string, error) {
	if account == nil || account.ID == uuid.Nil {
		return "", errors.Wrap(domainerrors.ErrTokenIssueFailed, "account id is required")
	}

	tokenID, err := uuid.NewV7()
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	identity := account.Identity()
	issuedAt := s.now()
	claims := service.Claims{
		Name:  identity.FullName,
		Email: identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID.String(),
			Subject:   identity.AccountID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	return signed, nil
}

// ValidateToken checks the signature first and the expiry second, then returns the identity.
func (s *jwtService) ValidateToken(tokenString string) (*entity.Identity, error) {
	claims := &service.Claims{}
	_, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.Wrap(domainerrors.ErrExpiredToken, "validate token")
		}

		return nil, errors.Wrap(domainerrors.ErrInvalidToken, err.Error())
	}

	accountID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "subject is not an account id")
	}

	return &entity.Identity{
		AccountID: accountID,
		FullName:  claims.Name,
		Email:     claims.Email,
	}, nil
}
