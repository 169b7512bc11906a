package notifications_tests

import (
	"net/http"
	"testing"

	lessons_core "lessonbook/internal/features/lessons/core"
	lessons_core_tests "lessonbook/internal/features/lessons/core/tests"
	"lessonbook/internal/features/notifications"
	projects_controllers "lessonbook/internal/features/projects/controllers"
	projects_testing "lessonbook/internal/features/projects/testing"
	users_enums "lessonbook/internal/features/users/enums"
	users_testing "lessonbook/internal/features/users/testing"
	test_utils "lessonbook/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createNotificationsTestRouter() *gin.Engine {
	router := projects_testing.CreateTestRouter(
		projects_controllers.GetProjectController(),
		projects_controllers.GetMembershipController(),
		lessons_core.GetLessonController(),
		notifications.GetNotificationController(),
	)
	notifications.SetupDependencies()
	return router
}

func getNotifications(
	t *testing.T,
	router *gin.Engine,
	token string,
) *notifications.ListNotificationsResponseDTO {
	t.Helper()

	var response notifications.ListNotificationsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, "/api/v1/notifications", "Bearer "+token, http.StatusOK, &response)
	return &response
}

func Test_CreateLessonWithTags_NotifiesTaggedUsers(t *testing.T) {
	router := createNotificationsTestRouter()
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	tagged := users_testing.CreateTestUser(users_enums.UserRoleMember)
	project := projects_testing.CreateTestProject("Notify Tagged", owner, router)
	projects_testing.AddMemberToProject(project, tagged, users_enums.ProjectRoleMember, owner.Token, router)

	lesson := lessons_core_tests.CreateTestLesson(t, router, owner, project.ID,
		func(request *lessons_core.CreateLessonRequestDTO) {
			request.Title = "Tagged lesson " + uuid.New().String()[:8]
			request.TaggedUserIDs = []uuid.UUID{tagged.UserID}
		})

	notifications.GetNotificationWorker().ProcessQueuedNotificationsForTest()

	response := getNotifications(t, router, tagged.Token)

	require.NotEmpty(t, response.Notifications)
	latest := response.Notifications[0]
	assert.Equal(t, tagged.UserID, latest.UserID)
	assert.Equal(t, lesson.ID, latest.LessonID)
	assert.Contains(t, latest.Message, lesson.Title)
	assert.False(t, latest.IsRead)
	assert.GreaterOrEqual(t, response.UnreadCount, int64(1))
}

func Test_CreateLessonWithTags_DoesNotNotifyActor(t *testing.T) {
	router := createNotificationsTestRouter()
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	project := projects_testing.CreateTestProject("Notify Actor", owner, router)

	lessons_core_tests.CreateTestLesson(t, router, owner, project.ID, nil)

	notifications.GetNotificationWorker().ProcessQueuedNotificationsForTest()

	response := getNotifications(t, router, owner.Token)
	assert.Empty(t, response.Notifications)
}

func Test_AddComment_NotifiesLessonSubmitter(t *testing.T) {
	router := createNotificationsTestRouter()
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	commenter := users_testing.CreateTestUser(users_enums.UserRoleMember)
	project := projects_testing.CreateTestProject("Notify Comment", owner, router)
	projects_testing.AddMemberToProject(project, commenter, users_enums.ProjectRoleMember, owner.Token, router)

	lesson := lessons_core_tests.CreateTestLesson(t, router, owner, project.ID, nil)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/lessons/"+lesson.ID.String()+"/comments",
		"Bearer "+commenter.Token,
		lessons_core.AddCommentRequestDTO{Body: "agreed, we should fix this"},
		http.StatusOK,
	)

	notifications.GetNotificationWorker().ProcessQueuedNotificationsForTest()

	response := getNotifications(t, router, owner.Token)

	require.NotEmpty(t, response.Notifications)
	assert.Equal(t, lesson.ID, response.Notifications[0].LessonID)
	assert.Contains(t, response.Notifications[0].Message, lesson.Title)
}

func Test_MarkAsRead_DecrementsUnreadCount(t *testing.T) {
	router := createNotificationsTestRouter()
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	tagged := users_testing.CreateTestUser(users_enums.UserRoleMember)
	project := projects_testing.CreateTestProject("Notify Read", owner, router)
	projects_testing.AddMemberToProject(project, tagged, users_enums.ProjectRoleMember, owner.Token, router)

	lessons_core_tests.CreateTestLesson(t, router, owner, project.ID,
		func(request *lessons_core.CreateLessonRequestDTO) {
			request.TaggedUserIDs = []uuid.UUID{tagged.UserID}
		})

	notifications.GetNotificationWorker().ProcessQueuedNotificationsForTest()

	before := getNotifications(t, router, tagged.Token)
	require.NotEmpty(t, before.Notifications)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/notifications/"+before.Notifications[0].ID.String()+"/read",
		"Bearer "+tagged.Token,
		nil,
		http.StatusOK,
	)

	after := getNotifications(t, router, tagged.Token)
	assert.Equal(t, before.UnreadCount-1, after.UnreadCount)
}

func Test_MarkAsRead_OnAnotherUsersNotification_ReturnsNotFound(t *testing.T) {
	router := createNotificationsTestRouter()
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	tagged := users_testing.CreateTestUser(users_enums.UserRoleMember)
	intruder := users_testing.CreateTestUser(users_enums.UserRoleMember)
	project := projects_testing.CreateTestProject("Notify Scope", owner, router)
	projects_testing.AddMemberToProject(project, tagged, users_enums.ProjectRoleMember, owner.Token, router)

	lessons_core_tests.CreateTestLesson(t, router, owner, project.ID,
		func(request *lessons_core.CreateLessonRequestDTO) {
			request.TaggedUserIDs = []uuid.UUID{tagged.UserID}
		})

	notifications.GetNotificationWorker().ProcessQueuedNotificationsForTest()

	response := getNotifications(t, router, tagged.Token)
	require.NotEmpty(t, response.Notifications)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/notifications/"+response.Notifications[0].ID.String()+"/read",
		"Bearer "+intruder.Token,
		nil,
		http.StatusNotFound,
	)
}
