package model

import (
	"time"
)

type Question struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Text      string    `json:"text" gorm:"size:255;not null"`
	Answers   []Answer  `json:"answers,omitempty" gorm:"foreignKey:QuestionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;autoCreateTime"`
}

func (Question) TableName() string {
	return "questions"
}
