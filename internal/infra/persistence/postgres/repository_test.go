package postgres

import (
	"context"
	"testing"
	"time"

	"notes/internal/domain/entity"
	"notes/internal/domain/repository"
	"notes/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAccountMappers(t *testing.T) {
	account := &entity.Account{
		ID:           uuid.New(),
		FullName:     "Alice Smith",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$hash",
		CreatedAt:    time.Now().UTC(),
	}

	assert.Equal(t, account, toAccountDomain(fromAccountDomain(account)))
}

func TestNoteMappers(t *testing.T) {
	now := time.Now().UTC()
	note := &entity.Note{
		ID:        uuid.New(),
		OwnerID:   uuid.New(),
		Title:     "groceries",
		Content:   "milk",
		Pinned:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	m := fromNoteDomain(note)
	assert.IsType(t, &model.NoteModel{}, m)
	assert.Equal(t, note, toNoteDomain(m))
}

func TestLikeEscaper(t *testing.T) {
	assert.Equal(t, `50\% off\_now \\o/`, likeEscaper.Replace(`50% off_now \o/`))
}

// A nil db proves the owner check runs before any store access.
func TestNoteRepository_RejectsUnscopedFilters(t *testing.T) {
	repo := NewNoteRepository(nil)
	ctx := context.Background()

	_, err := repo.FindOne(ctx, repository.NoteFilter{})
	assert.ErrorIs(t, err, repository.ErrMissingOwner)

	_, err = repo.FindMany(ctx, repository.NoteFilter{})
	assert.ErrorIs(t, err, repository.ErrMissingOwner)

	assert.ErrorIs(t, repo.Create(ctx, &entity.Note{Title: "x"}), repository.ErrMissingOwner)
	assert.ErrorIs(t, repo.Save(ctx, &entity.Note{ID: uuid.New()}), repository.ErrMissingOwner)

	noteID := uuid.New()
	assert.ErrorIs(t, repo.DeleteOne(ctx, repository.NoteFilter{NoteID: &noteID}), repository.ErrMissingOwner)
	assert.ErrorIs(t, repo.DeleteOne(ctx, repository.NoteFilter{OwnerID: uuid.New()}), errDeleteWithoutNoteID)
}
