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

type ResultController struct {
	resultSvc service.ResultService
}

func NewResultController(resultSvc service.ResultService) *ResultController {
	return &ResultController{resultSvc: resultSvc}
}

// GetResult godoc
// @Summary Review a submitted result
// @Description Students see their own results; admins see any. Score comes from the frozen snapshot.
// @Tags results
// @Produce json
// @Param result_id path string true "Result ID"
// @Success 200 {object} dto.ResultDetailDTO
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /results/{result_id} [get]
func (ctrl *ResultController) GetResult(c *gin.Context) {
	resultID, err := uuid.Parse(c.Param("result_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid result id"})
		return
	}
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthenticated"})
		return
	}

	detail, err := ctrl.resultSvc.GetResult(resultID, userID, middleware.IsAdmin(c))
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// MyResults godoc
// @Summary List the caller's results
// @Tags results
// @Produce json
// @Success 200 {array} dto.ResultSummaryDTO
// @Security BearerAuth
// @Router /my/results [get]
func (ctrl *ResultController) MyResults(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthenticated"})
		return
	}

	results, err := ctrl.resultSvc.ListForStudent(userID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}
