package lessons_filtering

import (
	"net/http"

	users_middleware "lessonbook/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
)

type FilterController struct {
	filterService *FilterService
}

func (c *FilterController) RegisterRoutes(router *gin.RouterGroup) {
	lessonRoutes := router.Group("/lessons")

	lessonRoutes.GET("", c.GetLessons)
	lessonRoutes.GET("/filter-options", c.GetFilterOptions)
}

// GetLessons
// @Summary List lessons
// @Description List visible lessons, optionally narrowed by filter criteria
// @Tags lessons
// @Produce json
// @Security BearerAuth
// @Param projectId query string false "Project ID"
// @Param categoryId query string false "Category ID"
// @Param status query string false "Lesson status"
// @Param impact query string false "Lesson impact"
// @Param submittedBy query string false "Submitter user ID"
// @Param search query string false "Title substring, case-insensitive"
// @Param fromDate query string false "Earliest date identified (YYYY-MM-DD)"
// @Param toDate query string false "Latest date identified (YYYY-MM-DD)"
// @Param starred query bool false "Only lessons starred by the current user"
// @Success 200 {object} lessons_core.ListLessonsResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /lessons [get]
func (c *FilterController) GetLessons(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var criteria FilterCriteriaDTO
	if err := ctx.ShouldBindQuery(&criteria); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filter parameters"})
		return
	}

	response, err := c.filterService.GetLessons(&criteria, user)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetFilterOptions
// @Summary Get filter options
// @Description Get the selectable filter values scoped to the current user
// @Tags lessons
// @Produce json
// @Security BearerAuth
// @Success 200 {object} FilterOptionsResponseDTO
// @Failure 401 {object} map[string]string
// @Router /lessons/filter-options [get]
func (c *FilterController) GetFilterOptions(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	response, err := c.filterService.GetFilterOptions(user)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}
