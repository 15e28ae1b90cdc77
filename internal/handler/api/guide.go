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

type GuideHandler struct {
	guideQueries  queries.GuideQueries
	reviewQueries queries.ReviewQueries
	userCommands  commands.UserCommands
}

func NewGuideHandler(
	guideQueries queries.GuideQueries,
	reviewQueries queries.ReviewQueries,
	userCommands commands.UserCommands,
) *GuideHandler {
	return &GuideHandler{
		guideQueries:  guideQueries,
		reviewQueries: reviewQueries,
		userCommands:  userCommands,
	}
}

// @Summary Search guides
// @Description Search active guides by name, location, language, specialty, rate and experience
// @Tags guides
// @Produce json
// @Param q query string false "Name search; prefix with # for exact ID"
// @Param location query string false "Location substring"
// @Param language query string false "Spoken language"
// @Param specialty query string false "Specialty tag"
// @Param min_rate_cents query int false "Minimum hourly rate in cents"
// @Param max_rate_cents query int false "Maximum hourly rate in cents"
// @Param min_experience_years query int false "Minimum years of experience"
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size (max 200)"
// @Success 200 {object} response.GuideSearchResponse
// @Router /guides [get]
func (h *GuideHandler) Search(c *gin.Context) {
	filters := queries.GuideSearchFilters{
		Query:     optionalString(c, "q"),
		Location:  optionalString(c, "location"),
		Language:  optionalString(c, "language"),
		Specialty: optionalString(c, "specialty"),
	}
	if v, err := optionalInt64(c, "min_rate_cents"); err == nil {
		filters.MinRateCents = v
	}
	if v, err := optionalInt64(c, "max_rate_cents"); err == nil {
		filters.MaxRateCents = v
	}
	if v, err := optionalInt(c, "min_experience_years"); err == nil {
		filters.MinExperienceYears = v
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	items, total, err := h.guideQueries.Search(c.Request.Context(), filters, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, response.GuideSearchResponse{
		Items: items,
		Total: total,
		Page:  page,
		Limit: queries.ValidateLimit(limit),
	})
}

// @Summary Get guide detail
// @Description Public guide page with profile, rating aggregate and weekly availability
// @Tags guides
// @Produce json
// @Param id path string true "Guide ID"
// @Success 200 {object} queries.GuideDetailView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /guides/{id} [get]
func (h *GuideHandler) GetDetail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid guide ID format",
		})
		return
	}

	view, err := h.guideQueries.GetDetail(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrGuideNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Guide not found",
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

// @Summary List guide reviews
// @Description Public reviews for a guide, newest first
// @Tags guides
// @Produce json
// @Param id path string true "Guide ID"
// @Param cursor query string false "Pagination cursor"
// @Param limit query int false "Page size (max 200)"
// @Success 200 {object} response.ReviewListResponse
// @Failure 400 {object} map[string]string
// @Router /guides/{id}/reviews [get]
func (h *GuideHandler) ListReviews(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid guide ID format",
		})
		return
	}

	var cursor *queries.Cursor
	if after := c.Query("cursor"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	items, next, err := h.reviewQueries.ListByGuide(c.Request.Context(), id, cursor, limit)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidCursor):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid cursor",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	var nextCursor *string
	if next != nil {
		nextCursor = &next.After
	}
	c.JSON(http.StatusOK, response.ReviewListResponse{Items: items, NextCursor: nextCursor})
}

// @Summary Update guide profile
// @Description Replace the caller's guide profile
// @Tags guides
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.UpdateGuideProfileRequest true "Profile update"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /guide/profile [put]
func (h *GuideHandler) UpdateProfile(c *gin.Context) {
	guideID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req request.UpdateGuideProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.userCommands.UpdateGuideProfile(c.Request.Context(), guideID, req); err != nil {
		switch {
		case errors.Is(err, errs.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Guide profile not found",
			})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid profile data",
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

func optionalString(c *gin.Context, key string) *string {
	if v := c.Query(key); v != "" {
		return &v
	}
	return nil
}

func optionalInt64(c *gin.Context, key string) (*int64, error) {
	v := c.Query(key)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func optionalInt(c *gin.Context, key string) (*int, error) {
	v := c.Query(key)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
