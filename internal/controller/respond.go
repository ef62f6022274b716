package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/lshigami/qa-service/internal/dto"
	"github.com/lshigami/qa-service/internal/errorz"
	"github.com/rs/zerolog/log"
)

const (
	msgValidation  = "Некорректные данные запроса"
	msgInvalidID   = "Некорректный идентификатор"
	msgServerError = "Ошибка сервера"
)

// parseID reads a positive integer path parameter within the BIGSERIAL range.
// On failure it writes a 422 response and returns false.
func parseID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 63)
	if err != nil || id == 0 {
		log.Warn().Str("param", name).Str("value", raw).Msg("Invalid path id")
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Detail: msgInvalidID,
			Errors: []string{fmt.Sprintf("%s: must be a positive integer", name)},
		})
		return 0, false
	}
	return uint(id), true
}

// bindRequest binds JSON bodies, or query/form values for other content
// types, and validates the result. On failure it writes a 422 response.
func bindRequest(c *gin.Context, req any) bool {
	if err := c.ShouldBind(req); err != nil {
		log.Warn().Err(err).Str("path", c.FullPath()).Msg("Failed to bind request")
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Detail: msgValidation,
			Errors: validationDetails(err),
		})
		return false
	}
	return true
}

func validationDetails(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			details = append(details, fmt.Sprintf("%s: field required", fe.Field()))
		case "max":
			details = append(details, fmt.Sprintf("%s: must be at most %s characters", fe.Field(), fe.Param()))
		default:
			details = append(details, fmt.Sprintf("%s: failed %s validation", fe.Field(), fe.Tag()))
		}
	}
	return details
}

// respondError maps service errors onto HTTP responses. notFound is the
// detail used for errorz.ErrNotFound.
func respondError(c *gin.Context, err error, notFound string) {
	switch {
	case errors.Is(err, errorz.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Detail: notFound})
	default:
		log.Error().Err(err).Str("method", c.Request.Method).Str("path", c.Request.URL.Path).Msg("Request failed")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: msgServerError})
	}
}
