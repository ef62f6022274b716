package repository

import (
	"context"
	"errors"

	"github.com/lshigami/qa-service/internal/errorz"
	"github.com/lshigami/qa-service/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type AnswerRepository interface {
	Create(ctx context.Context, answer *model.Answer) error
	FindByID(ctx context.Context, id uint) (*model.Answer, error)
	Delete(ctx context.Context, id uint) error
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

// Create inserts the answer. A question_id without a matching question is
// rejected by the foreign key and reported as errorz.ErrConstraintViolation.
func (r *answerRepository) Create(ctx context.Context, answer *model.Answer) error {
	if err := r.db.WithContext(ctx).Create(answer).Error; err != nil {
		err = translateError("create answer", err)
		if errors.Is(err, errorz.ErrConstraintViolation) {
			log.Warn().Err(err).Uint("questionID", answer.QuestionID).Msg("Answer rejected by foreign key")
		} else {
			log.Error().Err(err).Uint("questionID", answer.QuestionID).Msg("Failed to insert answer")
		}
		return err
	}
	return nil
}

func (r *answerRepository) FindByID(ctx context.Context, id uint) (*model.Answer, error) {
	var answer model.Answer
	if err := r.db.WithContext(ctx).First(&answer, id).Error; err != nil {
		if !isNotFound(err) {
			log.Error().Err(err).Uint("answerID", id).Msg("Failed to load answer")
		}
		return nil, translateError("get answer", err)
	}
	return &answer, nil
}

func (r *answerRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.Answer{}, id)
		if res.Error != nil {
			log.Error().Err(res.Error).Uint("answerID", id).Msg("Failed to delete answer")
			return translateError("delete answer", res.Error)
		}
		if res.RowsAffected == 0 {
			return errorz.ErrNotFound
		}
		return nil
	})
}
