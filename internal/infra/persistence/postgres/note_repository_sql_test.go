package postgres

import (
	"context"
	"testing"
	"time"

	"notes/internal/domain/entity"
	"notes/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqlRecorder captures the last statement and its bound vars as gorm builds them.
type sqlRecorder struct {
	logger.Interface
	sql  string
	vars []any
}

func (r *sqlRecorder) ParamsFilter(_ context.Context, sql string, params ...any) (string, []any) {
	r.sql, r.vars = sql, params

	return sql, params
}

func (r *sqlRecorder) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	fc()
}

// newDryRunNoteRepository builds SQL with the postgres dialect without connecting.
func newDryRunNoteRepository(t *testing.T) (repository.NoteRepository, *sqlRecorder) {
	t.Helper()

	rec := &sqlRecorder{Interface: logger.Discard}
	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		DSN: "host=localhost user=notes dbname=notes sslmode=disable",
	}), &gorm.Config{
		DryRun:                 true,
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 rec,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return NewNoteRepository(db), rec
}

func TestNoteRepository_FindOneScopesByOwnerAndID(t *testing.T) {
	repo, rec := newDryRunNoteRepository(t)
	ownerID, noteID := uuid.New(), uuid.New()

	_, err := repo.FindOne(context.Background(), repository.ByID(ownerID, noteID))
	require.NoError(t, err)

	assert.Equal(t, `SELECT * FROM "notes" WHERE owner_id = $1 AND id = $2 LIMIT $3`, rec.sql)
	assert.Equal(t, []any{ownerID, noteID, 1}, rec.vars)
}

func TestNoteRepository_FindManyFiltersAndOrders(t *testing.T) {
	repo, rec := newDryRunNoteRepository(t)
	ownerID := uuid.New()
	pinned := true

	_, err := repo.FindMany(context.Background(), repository.NoteFilter{
		OwnerID: ownerID,
		Pinned:  &pinned,
		Query:   " 50%_off ",
		Limit:   20,
	})
	require.NoError(t, err)

	assert.Contains(t, rec.sql, `SELECT * FROM "notes" WHERE owner_id = $1 AND pinned = $2 AND `)
	assert.Contains(t, rec.sql, `(title ILIKE $3 OR content ILIKE $4)`)
	assert.Contains(t, rec.sql, ` ORDER BY pinned DESC,updated_at DESC LIMIT $5`)
	assert.Equal(t, []any{ownerID, true, `%50\%\_off%`, `%50\%\_off%`, 20}, rec.vars)
}

func TestNoteRepository_FindManyWithoutLimit(t *testing.T) {
	repo, rec := newDryRunNoteRepository(t)
	ownerID := uuid.New()

	_, err := repo.FindMany(context.Background(), repository.NoteFilter{OwnerID: ownerID})
	require.NoError(t, err)

	assert.Equal(t, `SELECT * FROM "notes" WHERE owner_id = $1 ORDER BY pinned DESC,updated_at DESC`, rec.sql)
	assert.Equal(t, []any{ownerID}, rec.vars)
}

// Dry runs affect no rows, so Save and DeleteOne report not found after building their SQL.
func TestNoteRepository_SaveScopesByOwnerAndID(t *testing.T) {
	repo, rec := newDryRunNoteRepository(t)
	note := &entity.Note{ID: uuid.New(), OwnerID: uuid.New(), Title: "t", Content: "c"}

	err := repo.Save(context.Background(), note)
	assert.ErrorIs(t, err, repository.ErrNoteNotFound)

	assert.Contains(t, rec.sql, `UPDATE "notes" SET `)
	assert.Contains(t, rec.sql, `"pinned"=`)
	assert.Contains(t, rec.sql, ` WHERE owner_id = $5 AND id = $6`)
	require.Len(t, rec.vars, 6)
	assert.Equal(t, []any{note.OwnerID, note.ID}, rec.vars[4:])
}

func TestNoteRepository_DeleteOneScopesByOwnerAndID(t *testing.T) {
	repo, rec := newDryRunNoteRepository(t)
	ownerID, noteID := uuid.New(), uuid.New()

	err := repo.DeleteOne(context.Background(), repository.ByID(ownerID, noteID))
	assert.ErrorIs(t, err, repository.ErrNoteNotFound)

	assert.Equal(t, `DELETE FROM "notes" WHERE owner_id = $1 AND id = $2`, rec.sql)
	assert.Equal(t, []any{ownerID, noteID}, rec.vars)
}
