package users_controllers

import (
	"net/http"
	"testing"

	users_enums "lessonbook/internal/features/users/enums"
	users_models "lessonbook/internal/features/users/models"
	users_testing "lessonbook/internal/features/users/testing"
	test_utils "lessonbook/internal/util/testing"

	"github.com/stretchr/testify/assert"
)

func Test_GetUsersSettings_AsMember_ReturnsSettings(t *testing.T) {
	router := createSettingsTestRouter()
	users_testing.ResetSettingsToDefaults()

	member := users_testing.CreateTestUser(users_enums.UserRoleMember)

	var settings users_models.UsersSettings
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, "/api/v1/users/settings", "Bearer "+member.Token, http.StatusOK, &settings)

	assert.True(t, settings.IsAllowExternalRegistrations)
	assert.True(t, settings.IsAllowMemberInvitations)
}

func Test_GetUsersSettings_WithoutAuth_ReturnsUnauthorized(t *testing.T) {
	router := createSettingsTestRouter()

	test_utils.MakeGetRequest(t, router, "/api/v1/users/settings", "", http.StatusUnauthorized)
}

func Test_UpdateUsersSettings_AsAdmin_SettingsUpdated(t *testing.T) {
	router := createSettingsTestRouter()
	defer users_testing.ResetSettingsToDefaults()

	admin := users_testing.CreateTestUser(users_enums.UserRoleAdmin)

	var current users_models.UsersSettings
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, "/api/v1/users/settings", "Bearer "+admin.Token, http.StatusOK, &current)

	current.IsAllowExternalRegistrations = false
	current.AllowedEmailDomainsRaw = "corp.example.com"

	var updated users_models.UsersSettings
	resp := test_utils.MakePutRequest(
		t, router, "/api/v1/users/settings", "Bearer "+admin.Token, current, http.StatusOK)
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, "/api/v1/users/settings", "Bearer "+admin.Token, http.StatusOK, &updated)

	assert.NotEmpty(t, resp.Body)
	assert.False(t, updated.IsAllowExternalRegistrations)
	assert.Equal(t, "corp.example.com", updated.AllowedEmailDomainsRaw)
}

func Test_UpdateUsersSettings_AsMember_ReturnsForbidden(t *testing.T) {
	router := createSettingsTestRouter()
	users_testing.ResetSettingsToDefaults()

	member := users_testing.CreateTestUser(users_enums.UserRoleMember)

	var current users_models.UsersSettings
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, "/api/v1/users/settings", "Bearer "+member.Token, http.StatusOK, &current)

	current.IsAllowMemberInvitations = false

	test_utils.MakePutRequest(
		t, router, "/api/v1/users/settings", "Bearer "+member.Token, current, http.StatusForbidden)
}
