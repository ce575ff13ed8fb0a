package admin

import (
	"net/http"

	"github.com/Nurlanbcg/quiz/internal/controller"
	"github.com/Nurlanbcg/quiz/internal/dto"
	"github.com/Nurlanbcg/quiz/internal/service"
	"github.com/gin-gonic/gin"
)

type AdminUserController struct {
	userSvc service.AdminUserService
}

func NewAdminUserController(userSvc service.AdminUserService) *AdminUserController {
	return &AdminUserController{userSvc: userSvc}
}

// ListUsers godoc
// @Summary List all registered users
// @Tags admin
// @Produce json
// @Success 200 {array} dto.UserDTO
// @Security BearerAuth
// @Router /admin/users [get]
func (ctrl *AdminUserController) ListUsers(c *gin.Context) {
	users, err := ctrl.userSvc.ListUsers()
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// DeleteUser godoc
// @Summary Delete a user account
// @Tags admin
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/users/{user_id} [delete]
func (ctrl *AdminUserController) DeleteUser(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	if err := ctrl.userSvc.DeleteUser(userID); err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "user deleted"})
}

// ListRegistrations godoc
// @Summary List registration requests newest first
// @Tags admin
// @Produce json
// @Success 200 {array} dto.RegistrationRequestDTO
// @Security BearerAuth
// @Router /admin/registrations [get]
func (ctrl *AdminUserController) ListRegistrations(c *gin.Context) {
	requests, err := ctrl.userSvc.ListRegistrations()
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}
