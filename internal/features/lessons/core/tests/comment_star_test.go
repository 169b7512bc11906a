package lessons_core_tests

import (
	"net/http"
	"testing"

	lessons_core "lessonbook/internal/features/lessons/core"
	projects_testing "lessonbook/internal/features/projects/testing"
	users_enums "lessonbook/internal/features/users/enums"
	users_testing "lessonbook/internal/features/users/testing"
	test_utils "lessonbook/internal/util/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ToggleStar_Twice_RestoresOriginalState(t *testing.T) {
	router := CreateLessonsTestRouter()
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	project := projects_testing.CreateTestProject("Lessons Star Toggle", owner, router)
	lesson := CreateTestLesson(t, router, owner, project.ID, nil)

	starURL := "/api/v1/lessons/" + lesson.ID.String() + "/star"

	var starred lessons_core.ToggleStarResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t, router, starURL, "Bearer "+owner.Token, nil, http.StatusOK, &starred)
	assert.True(t, starred.IsStarred)
	assert.Equal(t, int64(1), starred.StarCount)

	var unstarred lessons_core.ToggleStarResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t, router, starURL, "Bearer "+owner.Token, nil, http.StatusOK, &unstarred)
	assert.False(t, unstarred.IsStarred)
	assert.Equal(t, int64(0), unstarred.StarCount)
}

func Test_ToggleStar_ByTwoUsers_CountsBoth(t *testing.T) {
	router := CreateLessonsTestRouter()
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	member := users_testing.CreateTestUser(users_enums.UserRoleMember)
	project := projects_testing.CreateTestProject("Lessons Star Count", owner, router)
	projects_testing.AddMemberToProject(project, member, users_enums.ProjectRoleMember, owner.Token, router)
	lesson := CreateTestLesson(t, router, owner, project.ID, nil)

	starURL := "/api/v1/lessons/" + lesson.ID.String() + "/star"

	test_utils.MakePostRequest(t, router, starURL, "Bearer "+owner.Token, nil, http.StatusOK)

	var second lessons_core.ToggleStarResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t, router, starURL, "Bearer "+member.Token, nil, http.StatusOK, &second)
	assert.True(t, second.IsStarred)
	assert.Equal(t, int64(2), second.StarCount)
}

func Test_ToggleStar_ByNonMember_ReturnsForbidden(t *testing.T) {
	router := CreateLessonsTestRouter()
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	outsider := users_testing.CreateTestUser(users_enums.UserRoleMember)
	project := projects_testing.CreateTestProject("Lessons Star Outsider", owner, router)
	lesson := CreateTestLesson(t, router, owner, project.ID, nil)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/lessons/"+lesson.ID.String()+"/star",
		"Bearer "+outsider.Token,
		nil,
		http.StatusForbidden,
	)
}

func Test_AddComment_ByProjectMember_ReturnsComment(t *testing.T) {
	router := CreateLessonsTestRouter()
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	member := users_testing.CreateTestUser(users_enums.UserRoleMember)
	project := projects_testing.CreateTestProject("Lessons Comment Add", owner, router)
	projects_testing.AddMemberToProject(project, member, users_enums.ProjectRoleMember, owner.Token, router)
	lesson := CreateTestLesson(t, router, owner, project.ID, nil)

	request := lessons_core.AddCommentRequestDTO{Body: "We hit the same thing last quarter"}

	var comment lessons_core.CommentResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/lessons/"+lesson.ID.String()+"/comments",
		"Bearer "+member.Token,
		request,
		http.StatusOK,
		&comment,
	)

	assert.Equal(t, lesson.ID, comment.LessonID)
	assert.Equal(t, member.UserID, comment.AuthorID)
	assert.Equal(t, member.Username, comment.AuthorUsername)
	assert.Equal(t, request.Body, comment.Body)
}

func Test_ListComments_ReturnsNewestFirst(t *testing.T) {
	router := CreateLessonsTestRouter()
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	project := projects_testing.CreateTestProject("Lessons Comment Order", owner, router)
	lesson := CreateTestLesson(t, router, owner, project.ID, nil)

	commentsURL := "/api/v1/lessons/" + lesson.ID.String() + "/comments"

	for _, body := range []string{"first", "second", "third"} {
		test_utils.MakePostRequest(
			t, router, commentsURL, "Bearer "+owner.Token,
			lessons_core.AddCommentRequestDTO{Body: body}, http.StatusOK)
	}

	var response lessons_core.ListCommentsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, commentsURL, "Bearer "+owner.Token, http.StatusOK, &response)

	require.Len(t, response.Comments, 3)
	assert.Equal(t, "third", response.Comments[0].Body)
	assert.Equal(t, "first", response.Comments[2].Body)
}

func Test_AddComment_ByNonMember_ReturnsForbidden(t *testing.T) {
	router := CreateLessonsTestRouter()
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	outsider := users_testing.CreateTestUser(users_enums.UserRoleMember)
	project := projects_testing.CreateTestProject("Lessons Comment Outsider", owner, router)
	lesson := CreateTestLesson(t, router, owner, project.ID, nil)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/lessons/"+lesson.ID.String()+"/comments",
		"Bearer "+outsider.Token,
		lessons_core.AddCommentRequestDTO{Body: "should bounce"},
		http.StatusForbidden,
	)
}

func Test_AddComment_WithEmptyBody_ReturnsBadRequest(t *testing.T) {
	router := CreateLessonsTestRouter()
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	project := projects_testing.CreateTestProject("Lessons Comment Empty", owner, router)
	lesson := CreateTestLesson(t, router, owner, project.ID, nil)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/lessons/"+lesson.ID.String()+"/comments",
		"Bearer "+owner.Token,
		lessons_core.AddCommentRequestDTO{},
		http.StatusBadRequest,
	)
}
