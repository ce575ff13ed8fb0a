package admin

import (
	"net/http"

	"github.com/Nurlanbcg/quiz/internal/controller"
	"github.com/Nurlanbcg/quiz/internal/dto"
	"github.com/Nurlanbcg/quiz/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminResultController struct {
	resultSvc service.ResultService
}

func NewAdminResultController(resultSvc service.ResultService) *AdminResultController {
	return &AdminResultController{resultSvc: resultSvc}
}

// ListResults godoc
// @Summary All submissions with aggregate stats
// @Description Optionally filtered to a single quiz via ?quiz_id=
// @Tags admin
// @Produce json
// @Param quiz_id query string false "Quiz ID filter"
// @Success 200 {object} dto.AdminResultListDTO
// @Security BearerAuth
// @Router /admin/results [get]
func (ctrl *AdminResultController) ListResults(c *gin.Context) {
	var quizID *uuid.UUID
	if raw := c.Query("quiz_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid quiz_id"})
			return
		}
		quizID = &id
	}

	list, err := ctrl.resultSvc.ListAll(quizID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
