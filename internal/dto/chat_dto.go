package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendChatRequest struct {
	Chat string `json:"chat" validate:"required"`
}

type ChatMessageDTO struct {
	Id        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Chat      string    `json:"chat"`
	CreatedAt time.Time `json:"created_at"`
}

type SendChatResponse struct {
	Sent  *ChatMessageDTO `json:"sent"`
	Reply *ChatMessageDTO `json:"reply"`
}

type GetChatHistoryResponse struct {
	Messages []*ChatMessageDTO `json:"messages"`
}

type UploadChatDocumentResponse struct {
	// Preview is the first part of the extracted text shown back to the user.
	Preview string `json:"preview"`
	Chars   int    `json:"chars"`
}
