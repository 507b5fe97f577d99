package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNoteFilter_Validate(t *testing.T) {
	assert.ErrorIs(t, NoteFilter{}.Validate(), ErrMissingOwner)
	assert.NoError(t, NoteFilter{OwnerID: uuid.New()}.Validate())
}

func TestByID(t *testing.T) {
	owner, note := uuid.New(), uuid.New()

	filter := ByID(owner, note)

	assert.Equal(t, owner, filter.OwnerID)
	if assert.NotNil(t, filter.NoteID) {
		assert.Equal(t, note, *filter.NoteID)
	}
	assert.Nil(t, filter.Pinned)
}
