package lessons_exporting

import (
	"log/slog"
	"net/http"
	"strconv"

	lessons_filtering "lessonbook/internal/features/lessons/filtering"
	users_middleware "lessonbook/internal/features/users/middleware"
	"lessonbook/internal/util/rate_limit"

	"github.com/gin-gonic/gin"
)

// Report generation is expensive compared to the rest of the API, so
// exports get their own per-user token bucket.
const (
	exportRPSLimit   = 1
	exportBurstLimit = 5
)

type ExportController struct {
	exportService *ExportService
	rateLimiter   *rate_limit.RateLimiter
}

func (c *ExportController) RegisterRoutes(router *gin.RouterGroup) {
	lessonRoutes := router.Group("/lessons")

	lessonRoutes.GET("/export", c.ExportLessons)
}

// ExportLessons
// @Summary Export lessons
// @Description Export visible lessons as CSV, a printable report or a PDF
// @Tags lessons
// @Security BearerAuth
// @Param format query string true "Export format: csv, printable or pdf"
// @Param projectId query string false "Project ID"
// @Param categoryId query string false "Category ID"
// @Param status query string false "Lesson status"
// @Param impact query string false "Lesson impact"
// @Param submittedBy query string false "Submitter user ID"
// @Param search query string false "Title substring, case-insensitive"
// @Param fromDate query string false "Earliest date identified (YYYY-MM-DD)"
// @Param toDate query string false "Latest date identified (YYYY-MM-DD)"
// @Param starred query bool false "Only lessons starred by the current user"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /lessons/export [get]
func (c *ExportController) ExportLessons(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	result, err := c.rateLimiter.CheckRateLimit(user.ID, exportRPSLimit, exportBurstLimit)
	if err != nil {
		slog.Error("Failed to check export rate limit", "error", err, "user_id", user.ID)
	} else if !result.Allowed {
		ctx.Header("Retry-After", strconv.Itoa(result.RetryAfterSec))
		ctx.JSON(http.StatusTooManyRequests, gin.H{"error": "Export rate limit exceeded"})
		return
	}

	format := ExportFormat(ctx.Query("format"))
	if !format.IsValid() {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid export format"})
		return
	}

	var criteria lessons_filtering.FilterCriteriaDTO
	if err := ctx.ShouldBindQuery(&criteria); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filter parameters"})
		return
	}

	report, err := c.exportService.ExportLessons(&criteria, format, user)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+report.FileName+`"`)
	ctx.Data(http.StatusOK, report.ContentType, report.Data)
}
