// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "context"

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
// Both methods are CPU-bound; implementations may queue callers and must honour ctx while queued.
type PasswordHasher interface {
	// Hash generates a salted one-way hash from a plaintext password.
	Hash(ctx context.Context, password string) (string, error)

	// Check compares a plaintext password with a hash in constant time.
	// It returns (false, nil) on mismatch and a non-nil error only when ctx ends first.
	Check(ctx context.Context, password, hash string) (bool, error)
}
