package impl

import (
	"context"
	"testing"
	"time"

	"notes/internal/domain/entity"
	domainerrors "notes/internal/domain/errors"
	"notes/internal/domain/repository"
	mockRepo "notes/internal/mocks/repository"
	"notes/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type noteServiceFixtures struct {
	service   usecase.NoteUsecase
	txManager *mockRepo.MockTransactionManager
	noteRepo  *mockRepo.MockNoteRepository
}

func createTestNoteService(t *testing.T) noteServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	noteRepo := mockRepo.NewMockNoteRepository(t)

	service := NewNoteService(NoteServiceParams{
		TxManager: txManager,
		NoteRepo:  noteRepo,
		Config:    newTestConfig(50),
		Logger:    newDiscardLogger(),
	})

	return noteServiceFixtures{service: service, txManager: txManager, noteRepo: noteRepo}
}

func newStoredNote(ownerID uuid.UUID) *entity.Note {
	now := time.Now()

	return &entity.Note{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Title:     "groceries",
		Content:   "milk, eggs",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestNoteService_Create(t *testing.T) {
	fx := createTestNoteService(t)
	ctx := context.Background()
	owner := uuid.New()

	fx.noteRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(n *entity.Note) bool {
			return n.OwnerID == owner && n.Title == "groceries" && n.Pinned
		})).
		Run(func(_ context.Context, n *entity.Note) { n.ID = uuid.New() }).
		Return(nil)

	note, err := fx.service.Create(ctx, owner, &usecase.CreateNoteInput{Title: "groceries", Pinned: true})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, note.ID)
	assert.Equal(t, owner, note.OwnerID)
}

func TestNoteService_Get_ScopesByOwner(t *testing.T) {
	fx := createTestNoteService(t)
	ctx := context.Background()
	owner, noteID := uuid.New(), uuid.New()

	fx.noteRepo.EXPECT().FindOne(ctx, repository.ByID(owner, noteID)).Return(nil, repository.ErrNoteNotFound)

	_, err := fx.service.Get(ctx, owner, noteID)

	assert.ErrorIs(t, err, domainerrors.ErrNoteNotFound)
}

func TestNoteService_List(t *testing.T) {
	fx := createTestNoteService(t)
	ctx := context.Background()
	owner := uuid.New()
	pinned := true
	stored := []*entity.Note{newStoredNote(owner)}

	fx.noteRepo.EXPECT().
		FindMany(ctx, repository.NoteFilter{OwnerID: owner, Pinned: &pinned, Query: "milk", Limit: 50}).
		Return(stored, nil)

	notes, err := fx.service.List(ctx, owner, &usecase.ListNotesInput{Pinned: &pinned, Query: "  milk "})

	require.NoError(t, err)
	assert.Equal(t, stored, notes)
}

func TestNoteService_Search(t *testing.T) {
	fx := createTestNoteService(t)
	ctx := context.Background()
	owner := uuid.New()

	_, err := fx.service.Search(ctx, owner, "   ")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	fx.noteRepo.EXPECT().
		FindMany(ctx, repository.NoteFilter{OwnerID: owner, Query: "eggs", Limit: 50}).
		Return([]*entity.Note{}, nil)

	notes, err := fx.service.Search(ctx, owner, "eggs")
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestNoteService_Update_Partial(t *testing.T) {
	fx := createTestNoteService(t)
	ctx := context.Background()
	owner := uuid.New()
	stored := newStoredNote(owner)

	txRepo := mockRepo.NewMockNoteRepository(t)
	expectTransaction(fx.txManager, newNoteFactory(t, txRepo))
	txRepo.EXPECT().FindOne(ctx, repository.ByID(owner, stored.ID)).Return(stored, nil)
	txRepo.EXPECT().
		Save(ctx, mock.MatchedBy(func(n *entity.Note) bool {
			return n.Title == "shopping" && n.Content == "milk, eggs" && !n.Pinned
		})).
		Return(nil)

	title := "shopping"
	note, err := fx.service.Update(ctx, owner, stored.ID, &usecase.UpdateNoteInput{Title: &title})

	require.NoError(t, err)
	assert.Equal(t, "shopping", note.Title)
	assert.Equal(t, "milk, eggs", note.Content)
}

func TestNoteService_Update_OtherOwnersNote(t *testing.T) {
	fx := createTestNoteService(t)
	ctx := context.Background()
	intruder, noteID := uuid.New(), uuid.New()

	txRepo := mockRepo.NewMockNoteRepository(t)
	expectTransaction(fx.txManager, newNoteFactory(t, txRepo))
	txRepo.EXPECT().FindOne(ctx, repository.ByID(intruder, noteID)).Return(nil, repository.ErrNoteNotFound)

	title := "hijacked"
	_, err := fx.service.Update(ctx, intruder, noteID, &usecase.UpdateNoteInput{Title: &title})

	assert.ErrorIs(t, err, domainerrors.ErrNoteNotFound)
}

func TestNoteService_SetPinned(t *testing.T) {
	fx := createTestNoteService(t)
	ctx := context.Background()
	owner := uuid.New()
	stored := newStoredNote(owner)

	txRepo := mockRepo.NewMockNoteRepository(t)
	expectTransaction(fx.txManager, newNoteFactory(t, txRepo))
	txRepo.EXPECT().FindOne(ctx, repository.ByID(owner, stored.ID)).Return(stored, nil)
	txRepo.EXPECT().Save(ctx, mock.MatchedBy(func(n *entity.Note) bool { return n.Pinned })).Return(nil)

	note, err := fx.service.SetPinned(ctx, owner, stored.ID, true)

	require.NoError(t, err)
	assert.True(t, note.Pinned)
}

func TestNoteService_Delete(t *testing.T) {
	fx := createTestNoteService(t)
	ctx := context.Background()
	owner, noteID, missing := uuid.New(), uuid.New(), uuid.New()

	fx.noteRepo.EXPECT().DeleteOne(ctx, repository.ByID(owner, noteID)).Return(nil)
	fx.noteRepo.EXPECT().DeleteOne(ctx, repository.ByID(owner, missing)).Return(repository.ErrNoteNotFound)

	require.NoError(t, fx.service.Delete(ctx, owner, noteID))
	assert.ErrorIs(t, fx.service.Delete(ctx, owner, missing), domainerrors.ErrNoteNotFound)
}

func TestNoteService_MissingOwnerIsUnauthenticated(t *testing.T) {
	fx := createTestNoteService(t)
	ctx := context.Background()

	fx.noteRepo.EXPECT().FindMany(ctx, mock.Anything).Return(nil, repository.ErrMissingOwner)

	_, err := fx.service.List(ctx, uuid.Nil, nil)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestNoteService_StoreUnavailable(t *testing.T) {
	fx := createTestNoteService(t)
	ctx := context.Background()
	owner := uuid.New()

	fx.noteRepo.EXPECT().
		FindOne(ctx, mock.Anything).
		Return(nil, domainerrors.NewDatabaseExecuteError(assert.AnError, "failed to find note"))

	_, err := fx.service.Get(ctx, owner, uuid.New())

	assert.ErrorIs(t, err, domainerrors.ErrStoreUnavailable)
}
