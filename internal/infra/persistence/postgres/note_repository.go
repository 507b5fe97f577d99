package postgres

import (
	"context"
	"strings"
	"time"

	"notes/internal/domain/entity"
	domainerrors "notes/internal/domain/errors"
	"notes/internal/domain/repository"
	"notes/internal/errors"
	"notes/internal/infra/persistence/model"

	"gorm.io/gorm"
)

var errDeleteWithoutNoteID = errors.New("delete requires a note id")

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// noteRepository implements repository.NoteRepository using GORM.
type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository is the constructor for noteRepository.
func NewNoteRepository(db *gorm.DB) repository.NoteRepository {
	return &noteRepository{db: db}
}

// scoped builds the owner-restricted query for a filter. It fails before
// touching the store when the filter has no owner.
func (repo *noteRepository) scoped(ctx context.Context, filter repository.NoteFilter) (*gorm.DB, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	tx := repo.db.WithContext(ctx).Model(&model.NoteModel{}).Where("owner_id = ?", filter.OwnerID)
	if filter.NoteID != nil {
		tx = tx.Where("id = ?", *filter.NoteID)
	}
	if filter.Pinned != nil {
		tx = tx.Where("pinned = ?", *filter.Pinned)
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + likeEscaper.Replace(q) + "%"
		tx = tx.Where("(title ILIKE ? OR content ILIKE ?)", pattern, pattern)
	}

	return tx, nil
}

// FindOne returns the first note matching the filter.
func (repo *noteRepository) FindOne(ctx context.Context, filter repository.NoteFilter) (*entity.Note, error) {
	tx, err := repo.scoped(ctx, filter)
	if err != nil {
		return nil, err
	}

	var noteM model.NoteModel
	if err := tx.Take(&noteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNoteNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find note")
	}

	return toNoteDomain(&noteM), nil
}

// FindMany lists notes matching the filter, pinned first then by most recent update.
func (repo *noteRepository) FindMany(ctx context.Context, filter repository.NoteFilter) ([]*entity.Note, error) {
	tx, err := repo.scoped(ctx, filter)
	if err != nil {
		return nil, err
	}

	tx = tx.Order("pinned DESC").Order("updated_at DESC")
	if filter.Limit > 0 {
		tx = tx.Limit(filter.Limit)
	}

	var noteMs []model.NoteModel
	if err := tx.Find(&noteMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list notes")
	}

	notes := make([]*entity.Note, 0, len(noteMs))
	for i := range noteMs {
		notes = append(notes, toNoteDomain(&noteMs[i]))
	}

	return notes, nil
}

// Create persists a new note and copies back the generated id and timestamps.
func (repo *noteRepository) Create(ctx context.Context, note *entity.Note) error {
	if err := (repository.NoteFilter{OwnerID: note.OwnerID}).Validate(); err != nil {
		return err
	}

	noteM := fromNoteDomain(note)
	if err := repo.db.WithContext(ctx).Create(noteM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("note owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create note")
	}

	note.ID = noteM.ID
	note.CreatedAt = noteM.CreatedAt
	note.UpdatedAt = noteM.UpdatedAt

	return nil
}

// Save writes title, content and pinned back to the row identified by (ID, OwnerID).
// A map is used so false and empty values are written too.
func (repo *noteRepository) Save(ctx context.Context, note *entity.Note) error {
	tx, err := repo.scoped(ctx, repository.ByID(note.OwnerID, note.ID))
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	result := tx.Updates(map[string]any{
		"title":      note.Title,
		"content":    note.Content,
		"pinned":     note.Pinned,
		"updated_at": now,
	})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to save note")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNoteNotFound
	}

	note.UpdatedAt = now

	return nil
}

// DeleteOne removes the single note named by the filter.
func (repo *noteRepository) DeleteOne(ctx context.Context, filter repository.NoteFilter) error {
	if filter.NoteID == nil {
		return errDeleteWithoutNoteID
	}

	tx, err := repo.scoped(ctx, filter)
	if err != nil {
		return err
	}

	result := tx.Delete(&model.NoteModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete note")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNoteNotFound
	}

	return nil
}

func toNoteDomain(m *model.NoteModel) *entity.Note {
	return &entity.Note{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		Title:     m.Title,
		Content:   m.Content,
		Pinned:    m.Pinned,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromNoteDomain(n *entity.Note) *model.NoteModel {
	return &model.NoteModel{
		ID:        n.ID,
		OwnerID:   n.OwnerID,
		Title:     n.Title,
		Content:   n.Content,
		Pinned:    n.Pinned,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
