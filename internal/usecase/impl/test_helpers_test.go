package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"notes/config"
	"notes/internal/domain/repository"
	mockRepo "notes/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxListSize int) *config.Config {
	return &config.Config{
		Notes: &config.NotesConfig{MaxListSize: maxListSize},
	}
}

// expectTransaction makes txManager run the callback against factory and return its result.
func expectTransaction(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func newAccountFactory(t *testing.T, accountRepo repository.AccountRepository) *mockRepo.MockRepositoryFactory {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().AccountRepo().Return(accountRepo)

	return factory
}

func newNoteFactory(t *testing.T, noteRepo repository.NoteRepository) *mockRepo.MockRepositoryFactory {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NoteRepo().Return(noteRepo)

	return factory
}
