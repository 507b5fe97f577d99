// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"

	"notes/config"
	"notes/internal/domain/service"
	"notes/internal/errors"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

// maxPasswordBytes is the most input bcrypt reads. Longer passwords are cut to
// this length for both hashing and comparison.
const maxPasswordBytes = 72

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
// A weighted semaphore caps how many hashes run at once so a burst of logins
// cannot occupy every CPU; waiting callers block on their own context.
type bcryptHasher struct {
	cost  int
	slots *semaphore.Weighted
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) (service.PasswordHasher, error) {
	cost, slots := config.DefaultBcryptCost, 1
	if cfg != nil && cfg.Auth != nil {
		if cfg.Auth.BcryptCost != 0 {
			cost = cfg.Auth.BcryptCost
		}
		if cfg.Auth.MaxConcurrentHashes > 0 {
			slots = cfg.Auth.MaxConcurrentHashes
		}
	}

	return NewBcryptHasherWithCost(cost, slots)
}

// NewBcryptHasherWithCost builds a hasher with an explicit cost and concurrency limit.
func NewBcryptHasherWithCost(cost, maxConcurrent int) (service.PasswordHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, errors.Errorf("bcrypt cost %d out of range [%d,%d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	return &bcryptHasher{
		cost:  cost,
		slots: semaphore.NewWeighted(int64(maxConcurrent)),
	}, nil
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(ctx context.Context, password string) (string, error) {
	if err := h.slots.Acquire(ctx, 1); err != nil {
		return "", errors.Wrap(err, "waiting for hash slot")
	}
	defer h.slots.Release(1)

	bytes, err := bcrypt.GenerateFromPassword(passwordInput(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt generate")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(ctx context.Context, password, hash string) (bool, error) {
	if err := h.slots.Acquire(ctx, 1); err != nil {
		return false, errors.Wrap(err, "waiting for hash slot")
	}
	defer h.slots.Release(1)

	// err is nil only if the password and hash match.
	return bcrypt.CompareHashAndPassword([]byte(hash), passwordInput(password)) == nil, nil
}

// passwordInput returns the bytes bcrypt actually sees. Multi-byte characters
// let a password that is short in characters exceed bcrypt's byte limit.
func passwordInput(password string) []byte {
	input := []byte(password)
	if len(input) > maxPasswordBytes {
		input = input[:maxPasswordBytes]
	}

	return input
}
