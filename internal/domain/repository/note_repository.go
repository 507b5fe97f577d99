package repository

import (
	"context"

	"notes/internal/domain/entity"
	"notes/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrNoteNotFound is returned when no note matches the filter.
	ErrNoteNotFound = errors.New("note not found")
	// ErrMissingOwner is returned when a filter or note carries no owner id.
	ErrMissingOwner = errors.New("note filter must include an owner id")
)

// NoteFilter is an owner-scoped predicate. OwnerID is mandatory; the zero UUID is rejected.
type NoteFilter struct {
	OwnerID uuid.UUID
	NoteID  *uuid.UUID // restricts to a single note
	Pinned  *bool      // restricts to pinned or unpinned notes
	Query   string     // case-insensitive substring match on title or content
	Limit   int        // maximum rows returned by FindMany; 0 means no limit
}

// Validate rejects filters that are not scoped to an owner.
func (f NoteFilter) Validate() error {
	if f.OwnerID == uuid.Nil {
		return ErrMissingOwner
	}

	return nil
}

// ByID returns a filter matching a single note of the given owner.
func ByID(ownerID, noteID uuid.UUID) NoteFilter {
	return NoteFilter{OwnerID: ownerID, NoteID: &noteID}
}

// NoteRepository defines the persistence operations for notes.
// Every method requires the owner id and never touches another owner's rows.
type NoteRepository interface {
	// FindOne returns the first note matching the filter or ErrNoteNotFound.
	FindOne(ctx context.Context, filter NoteFilter) (*entity.Note, error)

	// FindMany returns notes matching the filter, pinned first then most recently updated.
	FindMany(ctx context.Context, filter NoteFilter) ([]*entity.Note, error)

	// Create persists a new note and fills in ID and timestamps.
	Create(ctx context.Context, note *entity.Note) error

	// Save writes an existing note back, scoped by (note.ID, note.OwnerID).
	// It returns ErrNoteNotFound when no row with that pair exists.
	Save(ctx context.Context, note *entity.Note) error

	// DeleteOne removes the note matching the filter or returns ErrNoteNotFound.
	DeleteOne(ctx context.Context, filter NoteFilter) error
}
