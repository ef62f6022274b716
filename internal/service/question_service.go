package service

import (
	"context"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/qa-service/internal/dto"
	"github.com/lshigami/qa-service/internal/errorz"
	"github.com/lshigami/qa-service/internal/model"
	"github.com/lshigami/qa-service/internal/repository"
	"github.com/rs/zerolog/log"
)

type QuestionService interface {
	CreateQuestion(ctx context.Context, req dto.CreateQuestionRequest) (*dto.CreatedResponse, error)
	GetQuestion(ctx context.Context, id uint) (*dto.QuestionDetailResponse, error)
	ListQuestions(ctx context.Context) ([]dto.QuestionResponse, error)
	DeleteQuestion(ctx context.Context, id uint) (*dto.MessageResponse, error)
}

type questionService struct {
	repo repository.QuestionRepository
}

func NewQuestionService(repo repository.QuestionRepository) QuestionService {
	return &questionService{repo: repo}
}

func (s *questionService) CreateQuestion(ctx context.Context, req dto.CreateQuestionRequest) (*dto.CreatedResponse, error) {
	question := model.Question{Text: req.Text}
	if err := s.repo.Create(ctx, &question); err != nil {
		return nil, err
	}
	log.Info().Uint("questionID", question.ID).Msg("Question created")
	return &dto.CreatedResponse{Message: MsgQuestionCreated, ID: question.ID}, nil
}

func (s *questionService) GetQuestion(ctx context.Context, id uint) (*dto.QuestionDetailResponse, error) {
	question, err := s.repo.FindByIDWithAnswers(ctx, id)
	if err != nil {
		return nil, err
	}

	var resp dto.QuestionDetailResponse
	if err := copier.Copy(&resp, question); err != nil {
		log.Error().Err(err).Uint("questionID", id).Msg("Failed to copy Question model to QuestionDetailResponse")
		return nil, fmt.Errorf("preparing question response: %w", errorz.ErrServer)
	}
	if resp.Answers == nil {
		resp.Answers = []dto.AnswerResponse{}
	}
	log.Debug().Uint("questionID", id).Int("answers", len(resp.Answers)).Msg("Question loaded")
	return &resp, nil
}

func (s *questionService) ListQuestions(ctx context.Context) ([]dto.QuestionResponse, error) {
	questions, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.QuestionResponse, 0, len(questions))
	if err := copier.Copy(&resp, &questions); err != nil {
		log.Error().Err(err).Msg("Failed to copy Question models to QuestionResponse list")
		return nil, fmt.Errorf("preparing question list: %w", errorz.ErrServer)
	}
	return resp, nil
}

func (s *questionService) DeleteQuestion(ctx context.Context, id uint) (*dto.MessageResponse, error) {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		log.Warn().Uint("questionID", id).Msg("Delete requested for a missing question")
		return nil, fmt.Errorf("question %d: %w", id, errorz.ErrNotFound)
	}
	// A concurrent delete between the check and here still surfaces as ErrNotFound.
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	log.Info().Uint("questionID", id).Msg("Question deleted together with its answers")
	return &dto.MessageResponse{Message: MsgQuestionDeleted}, nil
}
