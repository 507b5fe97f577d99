package impl

import (
	"context"
	"log/slog"
	"strings"

	"notes/config"
	deliverycontext "notes/internal/delivery/context"
	"notes/internal/domain/entity"
	domainerrors "notes/internal/domain/errors"
	"notes/internal/domain/repository"
	"notes/internal/errors"
	"notes/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// noteService implements the NoteUsecase interface. The owner id always comes
// from the validated session token, never from the request body.
type noteService struct {
	txManager   repository.TransactionManager
	noteRepo    repository.NoteRepository
	maxListSize int
	logger      *slog.Logger
}

// NoteServiceParams holds dependencies for NoteService, injected by Fx.
type NoteServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	NoteRepo  repository.NoteRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewNoteService is the constructor for noteService.
func NewNoteService(params NoteServiceParams) usecase.NoteUsecase {
	maxListSize := 0
	if params.Config != nil && params.Config.Notes != nil {
		maxListSize = params.Config.Notes.MaxListSize
	}

	return &noteService{
		txManager:   params.TxManager,
		noteRepo:    params.NoteRepo,
		maxListSize: maxListSize,
		logger:      params.Logger,
	}
}

func (srv *noteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create stores a new note owned by ownerID.
func (srv *noteService) Create(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateNoteInput) (*entity.Note, error) {
	note := &entity.Note{
		OwnerID: ownerID,
		Title:   input.Title,
		Content: input.Content,
		Pinned:  input.Pinned,
	}
	if err := srv.noteRepo.Create(ctx, note); err != nil {
		return nil, errors.Wrap(mapNoteError(err), "failed to create note")
	}

	srv.log(ctx).Debug("Note created", slog.Any("noteID", note.ID), slog.Any("ownerID", ownerID))

	return note, nil
}

// Get returns one of the owner's notes.
func (srv *noteService) Get(ctx context.Context, ownerID, noteID uuid.UUID) (*entity.Note, error) {
	note, err := srv.noteRepo.FindOne(ctx, repository.ByID(ownerID, noteID))
	if err != nil {
		return nil, errors.Wrap(mapNoteError(err), "failed to get note")
	}

	return note, nil
}

// List returns the owner's notes, pinned first then most recently updated.
func (srv *noteService) List(ctx context.Context, ownerID uuid.UUID, input *usecase.ListNotesInput) ([]*entity.Note, error) {
	filter := repository.NoteFilter{OwnerID: ownerID, Limit: srv.maxListSize}
	if input != nil {
		filter.Pinned = input.Pinned
		filter.Query = strings.TrimSpace(input.Query)
	}

	notes, err := srv.noteRepo.FindMany(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(mapNoteError(err), "failed to list notes")
	}

	return notes, nil
}

// Search matches query case-insensitively against the title and content of the owner's notes.
func (srv *noteService) Search(ctx context.Context, ownerID uuid.UUID, query string) ([]*entity.Note, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("search query is required")
	}

	return srv.List(ctx, ownerID, &usecase.ListNotesInput{Query: query})
}

// Update applies the non-nil fields of input to the owner's note.
func (srv *noteService) Update(ctx context.Context, ownerID, noteID uuid.UUID, input *usecase.UpdateNoteInput) (*entity.Note, error) {
	var updated *entity.Note
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		noteRepo := repoFactory.NoteRepo()

		note, err := noteRepo.FindOne(ctx, repository.ByID(ownerID, noteID))
		if err != nil {
			return err
		}

		applyNoteUpdate(note, input)
		if err := noteRepo.Save(ctx, note); err != nil {
			return err
		}
		updated = note

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(mapNoteError(err), "failed to update note")
	}

	srv.log(ctx).Debug("Note updated", slog.Any("noteID", noteID), slog.Any("ownerID", ownerID))

	return updated, nil
}

// SetPinned pins or unpins the owner's note.
func (srv *noteService) SetPinned(ctx context.Context, ownerID, noteID uuid.UUID, pinned bool) (*entity.Note, error) {
	return srv.Update(ctx, ownerID, noteID, &usecase.UpdateNoteInput{Pinned: &pinned})
}

// Delete removes the owner's note.
func (srv *noteService) Delete(ctx context.Context, ownerID, noteID uuid.UUID) error {
	if err := srv.noteRepo.DeleteOne(ctx, repository.ByID(ownerID, noteID)); err != nil {
		return errors.Wrap(mapNoteError(err), "failed to delete note")
	}

	srv.log(ctx).Debug("Note deleted", slog.Any("noteID", noteID), slog.Any("ownerID", ownerID))

	return nil
}

func applyNoteUpdate(note *entity.Note, input *usecase.UpdateNoteInput) {
	if input == nil {
		return
	}
	if input.Title != nil {
		note.Title = *input.Title
	}
	if input.Content != nil {
		note.Content = *input.Content
	}
	if input.Pinned != nil {
		note.Pinned = *input.Pinned
	}
}

// mapNoteError translates repository sentinels into domain errors. A note of
// another owner is indistinguishable from a missing one.
func mapNoteError(err error) error {
	switch {
	case errors.Is(err, repository.ErrNoteNotFound):
		return domainerrors.ErrNoteNotFound
	case errors.Is(err, repository.ErrMissingOwner):
		return domainerrors.ErrUnauthenticated
	default:
		return err
	}
}
