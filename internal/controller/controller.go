package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lshigami/qa-service/internal/dto"
	"github.com/lshigami/qa-service/internal/service"
	"github.com/rs/zerolog/log"
)

type Controller struct {
	questionSvc service.QuestionService
	answerSvc   service.AnswerService
	db          *gorm.DB // health probe only
}

func NewController(qSvc service.QuestionService, aSvc service.AnswerService, db *gorm.DB) *Controller {
	return &Controller{
		questionSvc: qSvc,
		answerSvc:   aSvc,
		db:          db,
	}
}

func (ctrl *Controller) RegisterRoutes(router *gin.Engine) {
	router.GET("/healthz", ctrl.HealthHandler)

	questions := router.Group("/questions")
	{
		questions.GET("/", ctrl.GetAllQuestionsHandler)
		questions.POST("/", ctrl.CreateQuestionHandler)
		questions.GET("/:id", ctrl.GetQuestionHandler)
		questions.DELETE("/:id", ctrl.DeleteQuestionHandler)
		questions.POST("/:id/answers/", ctrl.CreateAnswerHandler)
	}

	answers := router.Group("/answers")
	{
		answers.GET("/:id", ctrl.GetAnswerHandler)
		answers.DELETE("/:id", ctrl.DeleteAnswerHandler)
	}
}

// --- Question Handlers ---

// GetAllQuestionsHandler godoc
// @Summary List all questions
// @Description Returns every question in creation order, without answers.
// @Tags Questions
// @Produce json
// @Success 200 {array} dto.QuestionResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /questions/ [get]
func (ctrl *Controller) GetAllQuestionsHandler(c *gin.Context) {
	questions, err := ctrl.questionSvc.ListQuestions(c.Request.Context())
	if err != nil {
		respondError(c, err, service.MsgQuestionNotFound)
		return
	}
	c.JSON(http.StatusOK, questions)
}

// CreateQuestionHandler godoc
// @Summary Create a question
// @Description Adds a new question. The text may also be passed as the "text" query parameter.
// @Tags Questions
// @Accept json
// @Produce json
// @Param question body dto.CreateQuestionRequest true "Question text (max 255 characters)"
// @Success 201 {object} dto.CreatedResponse
// @Failure 422 {object} dto.ErrorResponse "Validation error"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /questions/ [post]
func (ctrl *Controller) CreateQuestionHandler(c *gin.Context) {
	var req dto.CreateQuestionRequest
	if !bindRequest(c, &req) {
		return
	}

	resp, err := ctrl.questionSvc.CreateQuestion(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, service.MsgQuestionNotFound)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetQuestionHandler godoc
// @Summary Get a question with its answers
// @Tags Questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.QuestionDetailResponse
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 422 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /questions/{id} [get]
func (ctrl *Controller) GetQuestionHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	resp, err := ctrl.questionSvc.GetQuestion(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, service.MsgQuestionNotFound)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteQuestionHandler godoc
// @Summary Delete a question
// @Description Deletes the question together with all of its answers.
// @Tags Questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 422 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /questions/{id} [delete]
func (ctrl *Controller) DeleteQuestionHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	resp, err := ctrl.questionSvc.DeleteQuestion(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, service.MsgQuestionNotFound)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// --- Answer Handlers ---

// CreateAnswerHandler godoc
// @Summary Add an answer to a question
// @Description user_id is optional; a random UUID is assigned when it is omitted.
// @Tags Answers
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param answer body dto.CreateAnswerRequest true "Answer text and optional user UUID"
// @Success 200 {object} dto.CreatedResponse
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 422 {object} dto.ErrorResponse "Validation error"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /questions/{id}/answers/ [post]
func (ctrl *Controller) CreateAnswerHandler(c *gin.Context) {
	questionID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.CreateAnswerRequest
	if !bindRequest(c, &req) {
		return
	}

	var userID *uuid.UUID
	if req.UserID != nil && *req.UserID != "" {
		parsed, err := uuid.Parse(*req.UserID)
		if err != nil {
			log.Warn().Err(err).Str("user_id", *req.UserID).Msg("CreateAnswer: invalid user_id")
			c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Detail: msgValidation, Errors: []string{"UserID: must be a valid UUID"}})
			return
		}
		userID = &parsed
	}

	resp, err := ctrl.answerSvc.CreateAnswer(c.Request.Context(), questionID, req.Text, userID)
	if err != nil {
		respondError(c, err, service.MsgQuestionNotFound)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetAnswerHandler godoc
// @Summary Get an answer
// @Tags Answers
// @Produce json
// @Param id path int true "Answer ID"
// @Success 200 {object} dto.AnswerResponse
// @Failure 404 {object} dto.ErrorResponse "Answer not found"
// @Failure 422 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /answers/{id} [get]
func (ctrl *Controller) GetAnswerHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	resp, err := ctrl.answerSvc.GetAnswer(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, service.MsgAnswerNotFound)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteAnswerHandler godoc
// @Summary Delete an answer
// @Tags Answers
// @Produce json
// @Param id path int true "Answer ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Answer not found"
// @Failure 422 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /answers/{id} [delete]
func (ctrl *Controller) DeleteAnswerHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	resp, err := ctrl.answerSvc.DeleteAnswer(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, service.MsgAnswerNotFound)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HealthHandler godoc
// @Summary Liveness and database check
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.ErrorResponse "Database unavailable"
// @Router /healthz [get]
func (ctrl *Controller) HealthHandler(c *gin.Context) {
	sqlDB, err := ctrl.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		log.Error().Err(err).Msg("Health check: database unreachable")
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Detail: "database unavailable"})
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
