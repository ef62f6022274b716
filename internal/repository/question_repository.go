package repository

import (
	"context"

	"github.com/lshigami/qa-service/internal/errorz"
	"github.com/lshigami/qa-service/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(ctx context.Context, question *model.Question) error
	FindAll(ctx context.Context) ([]model.Question, error)
	FindByIDWithAnswers(ctx context.Context, id uint) (*model.Question, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Delete(ctx context.Context, id uint) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(ctx context.Context, question *model.Question) error {
	if err := r.db.WithContext(ctx).Create(question).Error; err != nil {
		log.Error().Err(err).Str("text", question.Text).Msg("Failed to insert question")
		return translateError("create question", err)
	}
	return nil
}

// FindAll returns questions in insertion order. Answers are not loaded.
func (r *questionRepository) FindAll(ctx context.Context) ([]model.Question, error) {
	questions := make([]model.Question, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&questions).Error; err != nil {
		log.Error().Err(err).Msg("Failed to list questions")
		return nil, translateError("list questions", err)
	}
	return questions, nil
}

func (r *questionRepository) FindByIDWithAnswers(ctx context.Context, id uint) (*model.Question, error) {
	var question model.Question
	err := r.db.WithContext(ctx).
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answer.id ASC")
		}).
		First(&question, id).Error
	if err != nil {
		if !isNotFound(err) {
			log.Error().Err(err).Uint("questionID", id).Msg("Failed to load question with answers")
		}
		return nil, translateError("get question", err)
	}
	if question.Answers == nil {
		question.Answers = []model.Answer{}
	}
	return &question, nil
}

func (r *questionRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Question{}).Where("id = ?", id).Count(&count).Error; err != nil {
		log.Error().Err(err).Uint("questionID", id).Msg("Failed to check question existence")
		return false, translateError("check question", err)
	}
	return count > 0, nil
}

// Delete removes the question row; its answers go with it through the
// ON DELETE CASCADE foreign key.
func (r *questionRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.Question{}, id)
		if res.Error != nil {
			log.Error().Err(res.Error).Uint("questionID", id).Msg("Failed to delete question")
			return translateError("delete question", res.Error)
		}
		if res.RowsAffected == 0 {
			return errorz.ErrNotFound
		}
		return nil
	})
}
