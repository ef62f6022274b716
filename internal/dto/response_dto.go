package dto

import (
	"time"

	"github.com/google/uuid"
)

// QuestionResponse is the list shape: no answers inline.
type QuestionResponse struct {
	ID        uint      `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type QuestionDetailResponse struct {
	ID        uint             `json:"id"`
	Text      string           `json:"text"`
	CreatedAt time.Time        `json:"created_at"`
	Answers   []AnswerResponse `json:"answers"`
}

type AnswerResponse struct {
	ID         uint      `json:"id"`
	QuestionID uint      `json:"question_id"`
	UserID     uuid.UUID `json:"user_id"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreatedResponse struct {
	Message string `json:"message"`
	ID      uint   `json:"id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Detail string   `json:"detail"`
	Errors []string `json:"errors,omitempty"`
}
