package system_status_test

import (
	"net/http"
	"testing"

	projects_testing "lessonbook/internal/features/projects/testing"
	system_status "lessonbook/internal/features/system/status"
	users_enums "lessonbook/internal/features/users/enums"
	users_testing "lessonbook/internal/features/users/testing"
	test_utils "lessonbook/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func createStatusTestRouter() *gin.Engine {
	return projects_testing.CreateTestRouter(system_status.GetSystemStatusController())
}

func Test_GetSystemStatus_AsAdmin_ReturnsDiskAndMemoryFigures(t *testing.T) {
	router := createStatusTestRouter()
	admin := users_testing.CreateTestUser(users_enums.UserRoleAdmin)

	var response system_status.SystemStatusResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, "/api/v1/system/status", "Bearer "+admin.Token, http.StatusOK, &response)

	assert.Greater(t, response.Disk.TotalBytes, uint64(0))
	assert.Greater(t, response.Memory.TotalBytes, uint64(0))
}

func Test_GetSystemStatus_AsMember_ReturnsForbidden(t *testing.T) {
	router := createStatusTestRouter()
	member := users_testing.CreateTestUser(users_enums.UserRoleMember)

	resp := test_utils.MakeGetRequest(
		t, router, "/api/v1/system/status", "Bearer "+member.Token, http.StatusForbidden)
	assert.Contains(t, string(resp.Body), "only administrators")
}

func Test_GetSystemStatus_WithoutAuth_ReturnsUnauthorized(t *testing.T) {
	router := createStatusTestRouter()

	test_utils.MakeGetRequest(t, router, "/api/v1/system/status", "", http.StatusUnauthorized)
}
