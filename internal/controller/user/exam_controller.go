package user

import (
	"net/http"

	"github.com/Nurlanbcg/quiz/internal/controller"
	"github.com/Nurlanbcg/quiz/internal/dto"
	"github.com/Nurlanbcg/quiz/internal/middleware"
	"github.com/Nurlanbcg/quiz/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type ExamController struct {
	examSvc service.ExamService
}

func NewExamController(examSvc service.ExamService) *ExamController {
	return &ExamController{examSvc: examSvc}
}

// StartExam godoc
// @Summary Start an exam session for a purchased, active quiz
// @Tags exam
// @Produce json
// @Param quiz_id path string true "Quiz ID"
// @Success 201 {object} dto.SessionViewDTO
// @Failure 403 {object} dto.ErrorResponse "Quiz not purchased"
// @Failure 404 {object} dto.ErrorResponse "Quiz missing or inactive"
// @Security BearerAuth
// @Router /quizzes/{quiz_id}/start [post]
func (ctrl *ExamController) StartExam(c *gin.Context) {
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

	view, err := ctrl.examSvc.Start(quizID, userID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// GetSession godoc
// @Summary Current view of an exam session
// @Tags exam
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.SessionViewDTO
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /sessions/{session_id} [get]
func (ctrl *ExamController) GetSession(c *gin.Context) {
	sessionID, userID, ok := ctrl.sessionCall(c)
	if !ok {
		return
	}

	view, err := ctrl.examSvc.View(sessionID, userID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SelectAnswer godoc
// @Summary Select or toggle an option for a question
// @Description Single-choice questions replace the selection; multiple-choice toggle membership
// @Tags exam
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param body body dto.SelectAnswerDTO true "Answer selection"
// @Success 200 {object} dto.SessionViewDTO
// @Failure 409 {object} dto.ErrorResponse "Session already submitted"
// @Security BearerAuth
// @Router /sessions/{session_id}/answers [post]
func (ctrl *ExamController) SelectAnswer(c *gin.Context) {
	sessionID, userID, ok := ctrl.sessionCall(c)
	if !ok {
		return
	}

	var req dto.SelectAnswerDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind SelectAnswerDTO")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	view, err := ctrl.examSvc.SelectAnswer(sessionID, userID, req)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Navigate godoc
// @Summary Move the current question pointer
// @Description Out-of-range targets are clamped no-ops; answering is never required to move
// @Tags exam
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param body body dto.NavigateDTO true "Navigation target"
// @Success 200 {object} dto.SessionViewDTO
// @Security BearerAuth
// @Router /sessions/{session_id}/navigate [post]
func (ctrl *ExamController) Navigate(c *gin.Context) {
	sessionID, userID, ok := ctrl.sessionCall(c)
	if !ok {
		return
	}

	var req dto.NavigateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	view, err := ctrl.examSvc.Navigate(sessionID, userID, req)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SubmitExam godoc
// @Summary Submit the session and freeze it into a result
// @Tags exam
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 201 {object} dto.ResultSummaryDTO
// @Failure 409 {object} dto.ErrorResponse "Already submitted"
// @Security BearerAuth
// @Router /sessions/{session_id}/submit [post]
func (ctrl *ExamController) SubmitExam(c *gin.Context) {
	sessionID, userID, ok := ctrl.sessionCall(c)
	if !ok {
		return
	}

	result, err := ctrl.examSvc.Submit(sessionID, userID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// ForfeitExam godoc
// @Summary Abandon the session without persisting anything
// @Tags exam
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.MessageResponse
// @Security BearerAuth
// @Router /sessions/{session_id} [delete]
func (ctrl *ExamController) ForfeitExam(c *gin.Context) {
	sessionID, userID, ok := ctrl.sessionCall(c)
	if !ok {
		return
	}

	if err := ctrl.examSvc.Forfeit(sessionID, userID); err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "session discarded"})
}

func (ctrl *ExamController) sessionCall(c *gin.Context) (sessionID, userID uuid.UUID, ok bool) {
	sessionID, err := uuid.Parse(c.Param("session_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid session id"})
		return uuid.Nil, uuid.Nil, false
	}
	userID, found := middleware.CurrentUserID(c)
	if !found {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthenticated"})
		return uuid.Nil, uuid.Nil, false
	}
	return sessionID, userID, true
}
