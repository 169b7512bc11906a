package users_controllers

import (
	"net/http"
	"testing"

	users_dto "lessonbook/internal/features/users/dto"
	users_enums "lessonbook/internal/features/users/enums"
	users_testing "lessonbook/internal/features/users/testing"
	test_utils "lessonbook/internal/util/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_GetUsers_AsAdmin_ReturnsUserList(t *testing.T) {
	router := createManagementTestRouter()
	admin := users_testing.CreateTestUser(users_enums.UserRoleAdmin)
	users_testing.CreateTestUser(users_enums.UserRoleMember)

	var response users_dto.ListUsersResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, "/api/v1/users", "Bearer "+admin.Token, http.StatusOK, &response)

	assert.GreaterOrEqual(t, response.Total, int64(2))
	assert.NotEmpty(t, response.Users)
}

func Test_GetUsers_AsMember_ReturnsForbidden(t *testing.T) {
	router := createManagementTestRouter()
	member := users_testing.CreateTestUser(users_enums.UserRoleMember)

	test_utils.MakeGetRequest(t, router, "/api/v1/users", "Bearer "+member.Token, http.StatusForbidden)
}

func Test_GetUserProfile_OwnProfile_ReturnsProfile(t *testing.T) {
	router := createManagementTestRouter()
	member := users_testing.CreateTestUser(users_enums.UserRoleMember)

	var profile users_dto.UserProfileResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/users/"+member.UserID.String(),
		"Bearer "+member.Token,
		http.StatusOK,
		&profile,
	)

	assert.Equal(t, member.UserID, profile.ID)
	assert.Equal(t, member.Username, profile.Username)
}

func Test_GetUserProfile_OtherUserAsMember_ReturnsForbidden(t *testing.T) {
	router := createManagementTestRouter()
	member := users_testing.CreateTestUser(users_enums.UserRoleMember)
	other := users_testing.CreateTestUser(users_enums.UserRoleMember)

	test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/users/"+other.UserID.String(),
		"Bearer "+member.Token,
		http.StatusForbidden,
	)
}

func Test_DeactivateUser_AsAdmin_UserDeactivated(t *testing.T) {
	router := createManagementTestRouter()
	admin := users_testing.CreateTestUser(users_enums.UserRoleAdmin)
	member := users_testing.CreateTestUser(users_enums.UserRoleMember)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/users/"+member.UserID.String()+"/deactivate",
		"Bearer "+admin.Token,
		nil,
		http.StatusOK,
	)

	// Deactivated users cannot use their token anymore
	test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/users/"+member.UserID.String(),
		"Bearer "+member.Token,
		http.StatusUnauthorized,
	)
}

func Test_DeactivateUser_OwnAccount_ReturnsBadRequest(t *testing.T) {
	router := createManagementTestRouter()
	admin := users_testing.CreateTestUser(users_enums.UserRoleAdmin)

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/users/"+admin.UserID.String()+"/deactivate",
		"Bearer "+admin.Token,
		nil,
		http.StatusBadRequest,
	)
	assert.Contains(t, string(resp.Body), "cannot deactivate your own account")
}

func Test_ActivateUser_AfterDeactivation_RestoresAccess(t *testing.T) {
	router := createManagementTestRouter()
	admin := users_testing.CreateTestUser(users_enums.UserRoleAdmin)
	member := users_testing.CreateTestUser(users_enums.UserRoleMember)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/users/"+member.UserID.String()+"/deactivate",
		"Bearer "+admin.Token,
		nil,
		http.StatusOK,
	)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/users/"+member.UserID.String()+"/activate",
		"Bearer "+admin.Token,
		nil,
		http.StatusOK,
	)

	var profile users_dto.UserProfileResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/users/"+member.UserID.String(),
		"Bearer "+member.Token,
		http.StatusOK,
		&profile,
	)
	require.True(t, profile.IsActive)
}

func Test_ChangeUserRole_AsAdmin_RoleChanged(t *testing.T) {
	router := createManagementTestRouter()
	admin := users_testing.CreateTestUser(users_enums.UserRoleAdmin)
	member := users_testing.CreateTestUser(users_enums.UserRoleMember)

	request := users_dto.ChangeUserRoleRequestDTO{Role: users_enums.UserRoleMember}

	test_utils.MakePutRequest(
		t,
		router,
		"/api/v1/users/"+member.UserID.String()+"/role",
		"Bearer "+admin.Token,
		request,
		http.StatusOK,
	)
}

func Test_ChangeUserRole_OwnRole_ReturnsBadRequest(t *testing.T) {
	router := createManagementTestRouter()
	admin := users_testing.CreateTestUser(users_enums.UserRoleAdmin)

	request := users_dto.ChangeUserRoleRequestDTO{Role: users_enums.UserRoleMember}

	resp := test_utils.MakePutRequest(
		t,
		router,
		"/api/v1/users/"+admin.UserID.String()+"/role",
		"Bearer "+admin.Token,
		request,
		http.StatusBadRequest,
	)
	assert.Contains(t, string(resp.Body), "cannot change your own role")
}

func Test_ChangeUserRole_AsMember_ReturnsForbidden(t *testing.T) {
	router := createManagementTestRouter()
	member := users_testing.CreateTestUser(users_enums.UserRoleMember)
	other := users_testing.CreateTestUser(users_enums.UserRoleMember)

	request := users_dto.ChangeUserRoleRequestDTO{Role: users_enums.UserRoleAdmin}

	test_utils.MakePutRequest(
		t,
		router,
		"/api/v1/users/"+other.UserID.String()+"/role",
		"Bearer "+member.Token,
		request,
		http.StatusForbidden,
	)
}
