package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NoteModel mirrors the 'notes' table. Every query is scoped by owner_id.
type NoteModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index:idx_notes_owner_pinned_updated,priority:1"`
	Title     string    `gorm:"type:varchar(200);not null;default:''"`
	Content   string    `gorm:"type:text;not null;default:''"`
	Pinned    bool      `gorm:"not null;default:false;index:idx_notes_owner_pinned_updated,priority:2"`
	CreatedAt time.Time
	UpdatedAt time.Time `gorm:"index:idx_notes_owner_pinned_updated,priority:3"`
}

// TableName explicitly sets the table name for GORM.
func (NoteModel) TableName() string {
	return "notes"
}

// BeforeCreate assigns a time-ordered UUID when the caller did not supply one.
func (m *NoteModel) BeforeCreate(*gorm.DB) error {
	return assignID(&m.ID)
}

// Models lists every table managed by AutoMigrate, parents first.
func Models() []any {
	return []any{&AccountModel{}, &NoteModel{}}
}
