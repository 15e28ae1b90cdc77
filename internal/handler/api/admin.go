package api

import (
	"errors"
	"net/http"
	"strconv"

	"guideway/internal/handler/dto/request"
	"guideway/internal/handler/dto/response"
	"guideway/internal/handler/middleware"
	"guideway/internal/pkg/errs"
	"guideway/internal/usecase/commands"
	"guideway/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	userCommands commands.UserCommands
	userQueries  queries.UserQueries
}

func NewAdminHandler(userCommands commands.UserCommands, userQueries queries.UserQueries) *AdminHandler {
	return &AdminHandler{
		userCommands: userCommands,
		userQueries:  userQueries,
	}
}

// @Summary List users
// @Description List all accounts, optionally filtered by role or status
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param role query string false "Filter by role"
// @Param status query string false "Filter by status"
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size (max 200)"
// @Success 200 {object} response.UserListResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	role := optionalString(c, "role")
	status := optionalString(c, "status")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	items, total, err := h.userQueries.ListUsers(c.Request.Context(), role, status, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, response.UserListResponse{
		Items: items,
		Total: total,
		Page:  page,
		Limit: queries.ValidateLimit(limit),
	})
}

// @Summary Update user status
// @Description Approve, block or reactivate an account
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body request.UpdateUserStatusRequest true "New status"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/users/{id}/status [post]
func (h *AdminHandler) UpdateUserStatus(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid user ID format",
		})
		return
	}

	var req request.UpdateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.userCommands.UpdateStatus(c.Request.Context(), targetID, req.Status, actor); err != nil {
		h.respondUserMutationError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete user
// @Description Remove an account and its dependent records
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid user ID format",
		})
		return
	}

	if err := h.userCommands.Delete(c.Request.Context(), targetID, actor); err != nil {
		h.respondUserMutationError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) respondUserMutationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "User not found",
		})
	case errors.Is(err, errs.ErrSelfModification):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Admins cannot modify their own account",
		})
	case errors.Is(err, errs.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Insufficient permissions",
		})
	case errors.Is(err, errs.ErrDomainValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid status value",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
