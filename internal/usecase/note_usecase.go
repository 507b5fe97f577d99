package usecase

import (
	"context"

	"notes/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateNoteInput defines the fields of a new note.
type CreateNoteInput struct {
	Title   string
	Content string
	Pinned  bool
}

// UpdateNoteInput carries a partial update; nil fields are left unchanged.
type UpdateNoteInput struct {
	Title   *string
	Content *string
	Pinned  *bool
}

// ListNotesInput narrows a listing. Zero values mean "no restriction".
type ListNotesInput struct {
	Pinned *bool
	Query  string
}

// NoteUsecase defines note operations. Every method is scoped to ownerID,
// the account id recovered from the session token.
type NoteUsecase interface {
	Create(ctx context.Context, ownerID uuid.UUID, input *CreateNoteInput) (*entity.Note, error)
	Get(ctx context.Context, ownerID, noteID uuid.UUID) (*entity.Note, error)
	List(ctx context.Context, ownerID uuid.UUID, input *ListNotesInput) ([]*entity.Note, error)
	Search(ctx context.Context, ownerID uuid.UUID, query string) ([]*entity.Note, error)
	Update(ctx context.Context, ownerID, noteID uuid.UUID, input *UpdateNoteInput) (*entity.Note, error)
	SetPinned(ctx context.Context, ownerID, noteID uuid.UUID, pinned bool) (*entity.Note, error)
	Delete(ctx context.Context, ownerID, noteID uuid.UUID) error
}
