package api

import (
	"errors"
	"net/http"

	"guideway/internal/handler/dto/request"
	"guideway/internal/handler/middleware"
	"guideway/internal/pkg/errs"
	"guideway/internal/usecase/commands"
	"guideway/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availabilityCommands commands.AvailabilityCommands
	availabilityQueries  queries.AvailabilityQueries
}

func NewAvailabilityHandler(
	availabilityCommands commands.AvailabilityCommands,
	availabilityQueries queries.AvailabilityQueries,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityCommands: availabilityCommands,
		availabilityQueries:  availabilityQueries,
	}
}

// @Summary List own availability
// @Description List the caller's weekly availability windows
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.AvailabilityView
// @Failure 401 {object} map[string]string
// @Router /guide/availability [get]
func (h *AvailabilityHandler) List(c *gin.Context) {
	guideID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.availabilityQueries.ListByGuide(c.Request.Context(), guideID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Upsert availability window
// @Description Create or replace the caller's window for one weekday
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.UpsertAvailabilityRequest true "Availability window"
// @Success 200 {object} queries.AvailabilityView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /guide/availability [put]
func (h *AvailabilityHandler) Upsert(c *gin.Context) {
	guideID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req request.UpsertAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.availabilityCommands.Upsert(c.Request.Context(), guideID, req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid availability window",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Delete availability window
// @Description Remove one of the caller's weekly windows
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param id path string true "Window ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /guide/availability/{id} [delete]
func (h *AvailabilityHandler) Delete(c *gin.Context) {
	guideID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	windowID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid window ID format",
		})
		return
	}

	if err := h.availabilityCommands.Delete(c.Request.Context(), windowID, guideID); err != nil {
		switch {
		case errors.Is(err, errs.ErrAvailabilityNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Availability window not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
