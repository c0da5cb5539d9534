package handler

import (
	"net/http"
	"strconv"

	"syscall-optimizer-backend/internal/service"
	"syscall-optimizer-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	userService *service.UserService
}

func NewAdminHandler(userService *service.UserService) *AdminHandler {
	return &AdminHandler{
		userService: userService,
	}
}

// ListUsers returns all user accounts
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to list users")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"users": users,
		"count": len(users),
	})
}

type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=admin staff user"`
}

// ChangeRole updates a user's role
func (h *AdminHandler) ChangeRole(c *gin.Context) {
	adminID, ok := currentUserID(c)
	if !ok {
		return
	}

	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request. Role must be 'admin', 'staff', or 'user'")
		return
	}

	if err := h.userService.ChangeRole(uint(targetID), req.Role, adminID, requestMeta(c)); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to change role")
		return
	}

	utils.MessageResponse(c, "Role updated successfully")
}

type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// SetActive soft-deactivates or reactivates an account
func (h *AdminHandler) SetActive(c *gin.Context) {
	adminID, ok := currentUserID(c)
	if !ok {
		return
	}

	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request. 'active' is required")
		return
	}

	if err := h.userService.SetActive(uint(targetID), *req.Active, adminID, requestMeta(c)); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to update account state")
		return
	}

	utils.MessageResponse(c, "Account state updated successfully")
}
