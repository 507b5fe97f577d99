package entity

import (
	"time"

	"github.com/google/uuid"
)

// Note is a personal text note. OwnerID always refers to the Account that created it.
type Note struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Title     string
	Content   string
	Pinned    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
