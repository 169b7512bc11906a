package users_controllers

import (
	"net/http"
	"testing"

	users_dto "lessonbook/internal/features/users/dto"
	users_enums "lessonbook/internal/features/users/enums"
	users_middleware "lessonbook/internal/features/users/middleware"
	users_services "lessonbook/internal/features/users/services"
	users_testing "lessonbook/internal/features/users/testing"
	test_utils "lessonbook/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func Test_UserLifecycleE2E_CompletesSuccessfully(t *testing.T) {
	router := createE2ETestRouter()
	users_testing.ResetSettingsToDefaults()

	// 1. User registers
	suffix := uuid.New().String()[:8]
	userEmail := "lifecycle-" + suffix + "@example.com"
	signupRequest := users_dto.SignUpRequestDTO{
		Username: "lifecycle-" + suffix,
		Email:    userEmail,
		Password: "userpassword123",
	}

	test_utils.MakePostRequest(t, router, "/api/v1/users/signup", "", signupRequest, http.StatusOK)

	// 2. User signs in
	signinRequest := users_dto.SignInRequestDTO{
		Email:    userEmail,
		Password: "userpassword123",
	}

	var signinResponse users_dto.SignInResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/users/signin",
		"",
		signinRequest,
		http.StatusOK,
		&signinResponse,
	)
	assert.NotEmpty(t, signinResponse.Token)

	// 3. User loads their profile
	var profile users_dto.UserProfileResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/users/me",
		"Bearer "+signinResponse.Token,
		http.StatusOK,
		&profile,
	)
	assert.Equal(t, signupRequest.Username, profile.Username)
	assert.Equal(t, users_enums.UserRoleMember, profile.Role)
	assert.True(t, profile.IsActive)

	// 4. User invites a colleague
	invitedEmail := "invited-" + uuid.New().String()[:8] + "@example.com"
	inviteRequest := users_dto.InviteUserRequestDTO{Email: invitedEmail}

	var inviteResponse users_dto.InviteUserResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/users/invite",
		"Bearer "+signinResponse.Token,
		inviteRequest,
		http.StatusOK,
		&inviteResponse,
	)
	assert.Equal(t, invitedEmail, inviteResponse.Email)

	// 5. Invited colleague completes registration with their own username
	invitedSignup := users_dto.SignUpRequestDTO{
		Username: "colleague-" + uuid.New().String()[:8],
		Email:    invitedEmail,
		Password: "colleaguepass123",
	}
	test_utils.MakePostRequest(t, router, "/api/v1/users/signup", "", invitedSignup, http.StatusOK)

	// 6. Colleague signs in with their chosen password
	test_utils.MakePostRequest(t, router, "/api/v1/users/signin", "",
		users_dto.SignInRequestDTO{Email: invitedEmail, Password: "colleaguepass123"}, http.StatusOK)
}

func createUserTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/api/v1")

	// Register public routes
	GetUserController().RegisterRoutes(v1)

	// Register protected routes with auth middleware
	protected := v1.Group("").Use(users_middleware.AuthMiddleware(users_services.GetUserService()))
	GetUserController().RegisterProtectedRoutes(protected.(*gin.RouterGroup))
	GetUserController().SetSignInLimiter(rate.NewLimiter(rate.Limit(100), 100))

	// Setup audit log service
	users_services.GetUserService().SetAuditLogWriter(&AuditLogWriterStub{})

	return router
}

func createSettingsTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/api/v1")

	// Register protected routes with auth middleware
	protected := v1.Group("").Use(users_middleware.AuthMiddleware(users_services.GetUserService()))
	GetSettingsController().RegisterRoutes(protected.(*gin.RouterGroup))

	// Setup audit log service
	users_services.GetUserService().SetAuditLogWriter(&AuditLogWriterStub{})
	users_services.GetSettingsService().SetAuditLogWriter(&AuditLogWriterStub{})
	users_services.GetManagementService().SetAuditLogWriter(&AuditLogWriterStub{})

	return router
}

func createManagementTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/api/v1")

	protected := v1.Group("").Use(users_middleware.AuthMiddleware(users_services.GetUserService()))
	GetManagementController().RegisterRoutes(protected.(*gin.RouterGroup))

	users_services.GetUserService().SetAuditLogWriter(&AuditLogWriterStub{})
	users_services.GetManagementService().SetAuditLogWriter(&AuditLogWriterStub{})

	return router
}

func createE2ETestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/api/v1")

	// Register all routes
	GetUserController().RegisterRoutes(v1)

	// Register protected routes with auth middleware
	protected := v1.Group("").Use(users_middleware.AuthMiddleware(users_services.GetUserService()))
	GetUserController().RegisterProtectedRoutes(protected.(*gin.RouterGroup))
	GetSettingsController().RegisterRoutes(protected.(*gin.RouterGroup))
	GetManagementController().RegisterRoutes(protected.(*gin.RouterGroup))
	GetUserController().SetSignInLimiter(rate.NewLimiter(rate.Limit(100), 100))

	// Setup audit log service
	users_services.GetUserService().SetAuditLogWriter(&AuditLogWriterStub{})
	users_services.GetSettingsService().SetAuditLogWriter(&AuditLogWriterStub{})
	users_services.GetManagementService().SetAuditLogWriter(&AuditLogWriterStub{})

	return router
}

type AuditLogWriterStub struct{}

func (a *AuditLogWriterStub) WriteAuditLog(message string, userID *uuid.UUID, projectID *uuid.UUID) {
	// do nothing
}
