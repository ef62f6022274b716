package model

import (
	"time"

	"github.com/google/uuid"
)

type Answer struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	QuestionID uint      `json:"question_id" gorm:"not null;index"`
	UserID     uuid.UUID `json:"user_id" gorm:"type:uuid;not null"`
	Text       string    `json:"text" gorm:"size:255;not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"not null;autoCreateTime"`
}

// TableName keeps the singular table name the schema was first created with.
func (Answer) TableName() string {
	return "answer"
}
