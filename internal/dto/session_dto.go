package dto

import "github.com/google/uuid"

type CreateSessionResponse struct {
	SessionId uuid.UUID `json:"session_id"`
	Token     string    `json:"token"`
	Page      string    `json:"page"`
}

type UpdatePageRequest struct {
	Page string `json:"page" validate:"required,oneof=food_input upload_reports chatbot"`
}

type GetPageResponse struct {
	Page string `json:"page"`
}
