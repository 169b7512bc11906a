package system_healthcheck_test

import (
	"net/http"
	"testing"

	system_healthcheck "lessonbook/internal/features/system/healthcheck"
	test_utils "lessonbook/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func createHealthcheckTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/api/v1")
	system_healthcheck.GetHealthcheckController().RegisterRoutes(v1)

	return router
}

func Test_CheckHealth_WithRunningDependencies_ReturnsHealthy(t *testing.T) {
	router := createHealthcheckTestRouter()

	var response system_healthcheck.HealthcheckResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(t, router, "/api/v1/health", "", http.StatusOK, &response)

	assert.True(t, response.Healthy)
	assert.True(t, response.Database.Healthy)
	assert.True(t, response.Cache.Healthy)
}
