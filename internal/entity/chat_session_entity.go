package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatSession groups a session's transcript. Its id equals the in-memory
// assistant session id so transcript and form state share one key.
type ChatSession struct {
	Id        uuid.UUID
	Title     string
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}
