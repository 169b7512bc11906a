package lessons_core_tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	lessons_core "lessonbook/internal/features/lessons/core"
	projects_controllers "lessonbook/internal/features/projects/controllers"
	projects_testing "lessonbook/internal/features/projects/testing"
	users_dto "lessonbook/internal/features/users/dto"
	test_utils "lessonbook/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func CreateLessonsTestRouter() *gin.Engine {
	return projects_testing.CreateTestRouter(
		projects_controllers.GetProjectController(),
		projects_controllers.GetMembershipController(),
		lessons_core.GetLessonController(),
	)
}

func CreateTestLesson(
	t *testing.T,
	router *gin.Engine,
	user *users_dto.SignInResponseDTO,
	projectID uuid.UUID,
	mutate func(request *lessons_core.CreateLessonRequestDTO),
) *lessons_core.LessonResponseDTO {
	t.Helper()

	request := lessons_core.CreateLessonRequestDTO{
		ProjectID:      projectID,
		Title:          fmt.Sprintf("Lesson %s", uuid.New().String()[:8]),
		Description:    "Something went sideways",
		DateIdentified: "2024-06-01",
		Impact:         lessons_core.LessonImpactMedium,
	}

	if mutate != nil {
		mutate(&request)
	}

	var response lessons_core.LessonResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/lessons",
		"Bearer "+user.Token,
		request,
		http.StatusOK,
		&response,
	)

	return &response
}

func UploadTestAttachment(
	t *testing.T,
	router *gin.Engine,
	token string,
	lessonID uuid.UUID,
	fileName string,
	description string,
	content []byte,
	expectedStatus int,
) *lessons_core.AttachmentResponseDTO {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	if description != "" {
		require.NoError(t, writer.WriteField("description", description))
	}
	require.NoError(t, writer.Close())

	req, err := http.NewRequest("POST", "/api/v1/lessons/"+lessonID.String()+"/attachments", &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, expectedStatus, w.Code, "unexpected upload status: %s", w.Body.String())

	if expectedStatus != http.StatusOK {
		return nil
	}

	var response lessons_core.AttachmentResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return &response
}
