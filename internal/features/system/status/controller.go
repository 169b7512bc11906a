package system_status

import (
	"net/http"
	"strings"

	users_middleware "lessonbook/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
)

type SystemStatusController struct {
	systemStatusService *SystemStatusService
}

func (c *SystemStatusController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/system/status", c.GetSystemStatus)
}

// GetSystemStatus
// @Summary Get system status
// @Description Get host disk and memory usage (administrators only)
// @Tags system
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SystemStatusResponseDTO
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /system/status [get]
func (c *SystemStatusController) GetSystemStatus(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	response, err := c.systemStatusService.GetSystemStatus(user)
	if err != nil {
		if strings.HasPrefix(err.Error(), "only administrators") {
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}
