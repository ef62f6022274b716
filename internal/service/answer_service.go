package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/qa-service/internal/dto"
	"github.com/lshigami/qa-service/internal/errorz"
	"github.com/lshigami/qa-service/internal/model"
	"github.com/lshigami/qa-service/internal/repository"
	"github.com/rs/zerolog/log"
)

type AnswerService interface {
	CreateAnswer(ctx context.Context, questionID uint, text string, userID *uuid.UUID) (*dto.CreatedResponse, error)
	GetAnswer(ctx context.Context, id uint) (*dto.AnswerResponse, error)
	DeleteAnswer(ctx context.Context, id uint) (*dto.MessageResponse, error)
}

type answerService struct {
	repo         repository.AnswerRepository
	questionRepo repository.QuestionRepository
	newUserID    func() uuid.UUID
}

func NewAnswerService(repo repository.AnswerRepository, questionRepo repository.QuestionRepository) AnswerService {
	return &answerService{repo: repo, questionRepo: questionRepo, newUserID: uuid.New}
}

// CreateAnswer attaches an answer to an existing question. When userID is nil
// a random one is generated.
func (s *answerService) CreateAnswer(ctx context.Context, questionID uint, text string, userID *uuid.UUID) (*dto.CreatedResponse, error) {
	exists, err := s.questionRepo.Exists(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if !exists {
		log.Warn().Uint("questionID", questionID).Msg("Answer submitted for a missing question")
		return nil, fmt.Errorf("question %d: %w", questionID, errorz.ErrNotFound)
	}

	answer := model.Answer{
		QuestionID: questionID,
		Text:       text,
		UserID:     s.resolveUserID(userID),
	}
	if err := s.repo.Create(ctx, &answer); err != nil {
		// The question was deleted after the existence check.
		if errors.Is(err, errorz.ErrConstraintViolation) {
			return nil, fmt.Errorf("question %d: %w", questionID, errorz.ErrNotFound)
		}
		return nil, err
	}
	log.Info().Uint("answerID", answer.ID).Uint("questionID", questionID).Str("userID", answer.UserID.String()).Msg("Answer created")
	return &dto.CreatedResponse{Message: MsgAnswerCreated, ID: answer.ID}, nil
}

func (s *answerService) resolveUserID(userID *uuid.UUID) uuid.UUID {
	if userID != nil && *userID != uuid.Nil {
		return *userID
	}
	return s.newUserID()
}

func (s *answerService) GetAnswer(ctx context.Context, id uint) (*dto.AnswerResponse, error) {
	answer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorz.ErrNotFound) {
			log.Warn().Uint("answerID", id).Msg("Answer not found")
		}
		return nil, err
	}
	var resp dto.AnswerResponse
	if err := copier.Copy(&resp, answer); err != nil {
		log.Error().Err(err).Uint("answerID", id).Msg("Failed to copy Answer model to AnswerResponse")
		return nil, fmt.Errorf("preparing answer response: %w", errorz.ErrServer)
	}
	return &resp, nil
}

func (s *answerService) DeleteAnswer(ctx context.Context, id uint) (*dto.MessageResponse, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, errorz.ErrNotFound) {
			log.Warn().Uint("answerID", id).Msg("Delete requested for a missing answer")
		}
		return nil, err
	}
	log.Info().Uint("answerID", id).Msg("Answer deleted")
	return &dto.MessageResponse{Message: answerDeletedMessage(id)}, nil
}
