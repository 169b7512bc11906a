package system_healthcheck

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthcheckController struct {
	healthcheckService *HealthcheckService
}

func (c *HealthcheckController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/health", c.CheckHealth)
}

// CheckHealth
// @Summary Healthcheck
// @Description Report database and cache connectivity
// @Tags system
// @Produce json
// @Success 200 {object} HealthcheckResponseDTO
// @Failure 503 {object} HealthcheckResponseDTO
// @Router /health [get]
func (c *HealthcheckController) CheckHealth(ctx *gin.Context) {
	response := c.healthcheckService.CheckHealth()

	status := http.StatusOK
	if !response.Healthy {
		status = http.StatusServiceUnavailable
	}

	ctx.JSON(status, response)
}
