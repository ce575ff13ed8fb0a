package admin

import (
	"net/http"

	"github.com/Nurlanbcg/quiz/internal/controller"
	"github.com/Nurlanbcg/quiz/internal/dto"
	"github.com/Nurlanbcg/quiz/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type AdminQuizController struct {
	quizSvc service.AdminQuizService
}

func NewAdminQuizController(quizSvc service.AdminQuizService) *AdminQuizController {
	return &AdminQuizController{quizSvc: quizSvc}
}

// CreateQuiz godoc
// @Summary Create a quiz with its full question list
// @Description Rejects malformed authoring input with field-level messages
// @Tags admin
// @Accept json
// @Produce json
// @Param quiz body dto.QuizCreateDTO true "Quiz data"
// @Success 201 {object} dto.AdminQuizDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Security BearerAuth
// @Router /admin/quizzes [post]
func (ctrl *AdminQuizController) CreateQuiz(c *gin.Context) {
	var req dto.QuizCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind QuizCreateDTO")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	quiz, err := ctrl.quizSvc.CreateQuiz(req)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, quiz)
}

// GetQuiz godoc
// @Summary Full quiz detail including the answer key
// @Tags admin
// @Produce json
// @Param quiz_id path string true "Quiz ID"
// @Success 200 {object} dto.AdminQuizDetailDTO
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/quizzes/{quiz_id} [get]
func (ctrl *AdminQuizController) GetQuiz(c *gin.Context) {
	quizID, ok := pathID(c, "quiz_id")
	if !ok {
		return
	}
	quiz, err := ctrl.quizSvc.GetQuiz(quizID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quiz)
}

// ListQuizzes godoc
// @Summary List all quizzes with question counts
// @Tags admin
// @Produce json
// @Success 200 {array} dto.AdminQuizSummaryDTO
// @Security BearerAuth
// @Router /admin/quizzes [get]
func (ctrl *AdminQuizController) ListQuizzes(c *gin.Context) {
	quizzes, err := ctrl.quizSvc.ListQuizzes()
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quizzes)
}

// DeleteQuiz godoc
// @Summary Delete a quiz
// @Description Already-submitted results keep their snapshots and survive the deletion
// @Tags admin
// @Produce json
// @Param quiz_id path string true "Quiz ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/quizzes/{quiz_id} [delete]
func (ctrl *AdminQuizController) DeleteQuiz(c *gin.Context) {
	quizID, ok := pathID(c, "quiz_id")
	if !ok {
		return
	}
	if err := ctrl.quizSvc.DeleteQuiz(quizID); err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "quiz deleted"})
}

// SetActive godoc
// @Summary Toggle quiz visibility for students
// @Tags admin
// @Accept json
// @Produce json
// @Param quiz_id path string true "Quiz ID"
// @Param body body dto.QuizSetActiveDTO true "Active flag"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/quizzes/{quiz_id}/active [patch]
func (ctrl *AdminQuizController) SetActive(c *gin.Context) {
	quizID, ok := pathID(c, "quiz_id")
	if !ok {
		return
	}

	var req dto.QuizSetActiveDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := ctrl.quizSvc.SetActive(quizID, *req.IsActive); err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "quiz updated"})
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}
