package lessons_dashboard

import (
	"net/http"

	users_middleware "lessonbook/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	dashboardService *DashboardService
}

func (c *DashboardController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/dashboard", c.GetDashboard)
}

// GetDashboard
// @Summary Get dashboard
// @Description Get lesson summaries scoped to the current user's visible projects
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DashboardResponseDTO
// @Failure 401 {object} map[string]string
// @Router /dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	response, err := c.dashboardService.GetDashboard(user)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}
