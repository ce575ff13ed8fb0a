package controller

import (
	"errors"
	"net/http"

	"github.com/Nurlanbcg/quiz/internal/apperr"
	"github.com/Nurlanbcg/quiz/internal/dto"
	"github.com/gin-gonic/gin"
)

// RespondError maps the service error taxonomy onto HTTP statuses. Inactive
// quizzes deliberately answer like missing ones so a disabled shared link
// reads as "not found" rather than leaking that the quiz still exists.
func RespondError(c *gin.Context, err error) {
	if ve, ok := apperr.AsValidation(err); ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "validation failed", Fields: ve.Fields})
		return
	}

	switch {
	case errors.Is(err, apperr.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: apperr.ErrInvalidCredentials.Error()})
	case errors.Is(err, apperr.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: apperr.ErrEmailTaken.Error()})
	case errors.Is(err, apperr.ErrNotEntitled):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: apperr.ErrNotEntitled.Error()})
	case errors.Is(err, apperr.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: apperr.ErrForbidden.Error()})
	case errors.Is(err, apperr.ErrNotFound),
		errors.Is(err, apperr.ErrQuizInactive),
		errors.Is(err, apperr.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "not found"})
	case errors.Is(err, apperr.ErrAlreadySubmitted):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: apperr.ErrAlreadySubmitted.Error()})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
