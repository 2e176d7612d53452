package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is one transcript entry. The transcript is append-only:
// messages are never edited or removed, only soft-deleted with the session.
type ChatMessage struct {
	Id            uuid.UUID
	Chat          string
	Role          string
	ChatSessionId uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     *time.Time
	DeletedAt     *time.Time
	IsDeleted     bool
}
