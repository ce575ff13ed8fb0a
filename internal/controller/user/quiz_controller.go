package user

import (
	"net/http"

	"github.com/Nurlanbcg/quiz/internal/controller"
	"github.com/Nurlanbcg/quiz/internal/dto"
	"github.com/Nurlanbcg/quiz/internal/middleware"
	"github.com/Nurlanbcg/quiz/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StudentQuizController struct {
	quizSvc service.StudentQuizService
}

func NewStudentQuizController(quizSvc service.StudentQuizService) *StudentQuizController {
	return &StudentQuizController{quizSvc: quizSvc}
}

// ListQuizzes godoc
// @Summary List active quizzes
// @Tags quizzes
// @Produce json
// @Success 200 {array} dto.QuizSummaryDTO
// @Router /quizzes [get]
func (ctrl *StudentQuizController) ListQuizzes(c *gin.Context) {
	quizzes, err := ctrl.quizSvc.ListActiveQuizzes()
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quizzes)
}

// GetQuiz godoc
// @Summary Exam gate details for a quiz
// @Description Backs the shared exam link page: price, duration and whether the caller already purchased
// @Tags quizzes
// @Produce json
// @Param quiz_id path string true "Quiz ID"
// @Success 200 {object} dto.QuizGateDTO
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /quizzes/{quiz_id} [get]
func (ctrl *StudentQuizController) GetQuiz(c *gin.Context) {
	quizID, err := uuid.Parse(c.Param("quiz_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid quiz id"})
		return
	}
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthenticated"})
		return
	}

	gate, err := ctrl.quizSvc.GetQuizGate(quizID, userID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gate)
}

// PurchaseQuiz godoc
// @Summary Unlock a quiz for the caller
// @Description Idempotent: purchasing an already-purchased quiz is a no-op
// @Tags quizzes
// @Produce json
// @Param quiz_id path string true "Quiz ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /quizzes/{quiz_id}/purchase [post]
func (ctrl *StudentQuizController) PurchaseQuiz(c *gin.Context) {
	quizID, err := uuid.Parse(c.Param("quiz_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid quiz id"})
		return
	}
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthenticated"})
		return
	}

	if err := ctrl.quizSvc.PurchaseQuiz(userID, quizID); err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "quiz unlocked"})
}
