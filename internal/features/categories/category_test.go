package categories_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"lessonbook/internal/features/categories"
	projects_testing "lessonbook/internal/features/projects/testing"
	users_enums "lessonbook/internal/features/users/enums"
	users_testing "lessonbook/internal/features/users/testing"
	test_utils "lessonbook/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createCategoriesTestRouter() *gin.Engine {
	return projects_testing.CreateTestRouter(categories.GetCategoryController())
}

func createCategoryViaAPI(
	t *testing.T,
	router *gin.Engine,
	token string,
	request categories.CreateCategoryRequestDTO,
) *categories.Category {
	t.Helper()

	resp := test_utils.MakePostRequest(t, router, "/api/v1/categories", "Bearer "+token, request, http.StatusOK)

	var category categories.Category
	require.NoError(t, json.Unmarshal(resp.Body, &category))
	return &category
}

func Test_CreateCategory_WithNewName_CategoryCreated(t *testing.T) {
	router := createCategoriesTestRouter()
	user := users_testing.CreateTestUser(users_enums.UserRoleMember)

	name := "Process " + uuid.New().String()[:8]
	category := createCategoryViaAPI(t, router, user.Token, categories.CreateCategoryRequestDTO{
		Name:        name,
		Description: "Process improvements",
	})

	assert.Equal(t, name, category.Name)
	assert.NotEqual(t, uuid.Nil, category.ID)
}

func Test_CreateCategory_WithSameNameDifferentCase_ReturnsExistingCategory(t *testing.T) {
	router := createCategoriesTestRouter()
	user := users_testing.CreateTestUser(users_enums.UserRoleMember)

	name := "Quality " + uuid.New().String()[:8]
	first := createCategoryViaAPI(t, router, user.Token, categories.CreateCategoryRequestDTO{Name: name})
	second := createCategoryViaAPI(t, router, user.Token, categories.CreateCategoryRequestDTO{
		Name: strings.ToUpper(name),
	})

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, name, second.Name)
}

func Test_GetCategories_ReturnsCreatedCategories(t *testing.T) {
	router := createCategoriesTestRouter()
	user := users_testing.CreateTestUser(users_enums.UserRoleMember)

	name := "Safety " + uuid.New().String()[:8]
	created := createCategoryViaAPI(t, router, user.Token, categories.CreateCategoryRequestDTO{Name: name})

	var response categories.ListCategoriesResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, "/api/v1/categories", "Bearer "+user.Token, http.StatusOK, &response)

	found := false
	for _, category := range response.Categories {
		if category.ID == created.ID {
			found = true
		}
	}
	assert.True(t, found)
}

func Test_CreateCategory_WithMissingName_ReturnsBadRequest(t *testing.T) {
	router := createCategoriesTestRouter()
	user := users_testing.CreateTestUser(users_enums.UserRoleMember)

	test_utils.MakePostRequest(
		t, router, "/api/v1/categories", "Bearer "+user.Token,
		categories.CreateCategoryRequestDTO{}, http.StatusBadRequest)
}

func Test_CreateCategory_WithWhitespaceOnlyName_ReturnsBadRequest(t *testing.T) {
	router := createCategoriesTestRouter()
	user := users_testing.CreateTestUser(users_enums.UserRoleMember)

	resp := test_utils.MakePostRequest(
		t, router, "/api/v1/categories", "Bearer "+user.Token,
		categories.CreateCategoryRequestDTO{Name: "   "}, http.StatusBadRequest)

	assert.Contains(t, string(resp.Body), "category name is required")
}

func Test_DeleteCategory_ByAdmin_CategoryRemoved(t *testing.T) {
	router := createCategoriesTestRouter()
	admin := users_testing.CreateTestUser(users_enums.UserRoleAdmin)

	name := "Temporary " + uuid.New().String()[:8]
	created := createCategoryViaAPI(t, router, admin.Token, categories.CreateCategoryRequestDTO{Name: name})

	test_utils.MakeRequest(t, router, test_utils.RequestOptions{
		Method:         "DELETE",
		URL:            "/api/v1/categories/" + created.ID.String(),
		AuthToken:      "Bearer " + admin.Token,
		ExpectedStatus: http.StatusOK,
	})

	var response categories.ListCategoriesResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, "/api/v1/categories", "Bearer "+admin.Token, http.StatusOK, &response)

	for _, category := range response.Categories {
		assert.NotEqual(t, created.ID, category.ID)
	}
}

func Test_DeleteCategory_ByMember_ReturnsForbidden(t *testing.T) {
	router := createCategoriesTestRouter()
	member := users_testing.CreateTestUser(users_enums.UserRoleMember)

	name := "Protected " + uuid.New().String()[:8]
	created := createCategoryViaAPI(t, router, member.Token, categories.CreateCategoryRequestDTO{Name: name})

	resp := test_utils.MakeRequest(t, router, test_utils.RequestOptions{
		Method:         "DELETE",
		URL:            "/api/v1/categories/" + created.ID.String(),
		AuthToken:      "Bearer " + member.Token,
		ExpectedStatus: http.StatusForbidden,
	})

	assert.Contains(t, string(resp.Body), "only administrators")
}

func Test_DeleteCategory_WithUnknownID_ReturnsNotFound(t *testing.T) {
	router := createCategoriesTestRouter()
	admin := users_testing.CreateTestUser(users_enums.UserRoleAdmin)

	test_utils.MakeRequest(t, router, test_utils.RequestOptions{
		Method:         "DELETE",
		URL:            "/api/v1/categories/" + uuid.New().String(),
		AuthToken:      "Bearer " + admin.Token,
		ExpectedStatus: http.StatusNotFound,
	})
}
