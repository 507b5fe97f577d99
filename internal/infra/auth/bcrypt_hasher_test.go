package auth

import (
	"context"
	"strings"
	"testing"

	"notes/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher, err := NewBcryptHasherWithCost(bcrypt.MinCost, 2)
	require.NoError(t, err)
	ctx := context.Background()

	hash, err := hasher.Hash(ctx, "pass1")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "pass1", hash)

	ok, err := hasher.Check(ctx, "pass1", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBcryptHasher_SaltsEveryHash(t *testing.T) {
	hasher, err := NewBcryptHasherWithCost(bcrypt.MinCost, 1)
	require.NoError(t, err)
	ctx := context.Background()

	first, err := hasher.Hash(ctx, "same-password")
	require.NoError(t, err)
	second, err := hasher.Hash(ctx, "same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher, err := NewBcryptHasherWithCost(bcrypt.MinCost, 1)
	require.NoError(t, err)
	ctx := context.Background()

	hash, err := hasher.Hash(ctx, "pass1")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
	}{
		{name: "correct", password: "pass1", hash: hash, want: true},
		{name: "wrong", password: "wrong", hash: hash},
		{name: "empty", password: "", hash: hash},
		{name: "invalid hash", password: "pass1", hash: "invalid_hash"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := hasher.Check(ctx, tt.password, tt.hash)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBcryptHasher_MultiBytePassword(t *testing.T) {
	hasher, err := NewBcryptHasherWithCost(bcrypt.MinCost, 1)
	require.NoError(t, err)
	ctx := context.Background()

	// 25 characters, 75 bytes.
	password := strings.Repeat("密", 25)
	require.Greater(t, len(password), maxPasswordBytes)

	hash, err := hasher.Hash(ctx, password)
	require.NoError(t, err)

	ok, err := hasher.Check(ctx, password, hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Check(ctx, strings.Repeat("密", 23), hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_ComparesFirst72Bytes(t *testing.T) {
	hasher, err := NewBcryptHasherWithCost(bcrypt.MinCost, 1)
	require.NoError(t, err)
	ctx := context.Background()

	prefix := strings.Repeat("a", maxPasswordBytes)
	hash, err := hasher.Hash(ctx, prefix+"x")
	require.NoError(t, err)

	ok, err := hasher.Check(ctx, prefix+"y", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Check(ctx, prefix[1:], hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPasswordInput(t *testing.T) {
	assert.Equal(t, []byte("pass1"), passwordInput("pass1"))
	assert.Len(t, passwordInput(strings.Repeat("密", 25)), maxPasswordBytes)
}

func TestBcryptHasher_UsesConfiguredCost(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 6, MaxConcurrentHashes: 1}}
	hasher, err := NewBcryptHasher(cfg)
	require.NoError(t, err)

	hash, err := hasher.Hash(context.Background(), "pass1")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 6, cost)
}

func TestBcryptHasher_DefaultCost(t *testing.T) {
	hasher, err := NewBcryptHasher(&config.Config{})
	require.NoError(t, err)

	assert.Equal(t, config.DefaultBcryptCost, hasher.(*bcryptHasher).cost)
}

func TestBcryptHasher_InvalidCost(t *testing.T) {
	_, err := NewBcryptHasherWithCost(bcrypt.MaxCost+1, 1)
	assert.Error(t, err)
}

func TestBcryptHasher_CanceledWhileQueued(t *testing.T) {
	hasher, err := NewBcryptHasherWithCost(bcrypt.MinCost, 1)
	require.NoError(t, err)
	impl := hasher.(*bcryptHasher)

	// Occupy the only slot so the next caller has to wait.
	require.NoError(t, impl.slots.Acquire(context.Background(), 1))
	defer impl.slots.Release(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = hasher.Hash(ctx, "pass1")
	assert.ErrorIs(t, err, context.Canceled)

	ok, err := hasher.Check(ctx, "pass1", "irrelevant")
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ok)
}
