package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAccount_Identity(t *testing.T) {
	account := &Account{
		ID:           uuid.New(),
		FullName:     "Alice A",
		Email:        "alice@x.com",
		PasswordHash: "$2a$10$hash",
	}

	assert.Equal(t, Identity{
		AccountID: account.ID,
		FullName:  "Alice A",
		Email:     "alice@x.com",
	}, account.Identity())
}
