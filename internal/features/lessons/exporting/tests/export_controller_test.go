package lessons_exporting_tests

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strings"
	"testing"

	lessons_core "lessonbook/internal/features/lessons/core"
	lessons_core_tests "lessonbook/internal/features/lessons/core/tests"
	lessons_exporting "lessonbook/internal/features/lessons/exporting"
	projects_controllers "lessonbook/internal/features/projects/controllers"
	projects_testing "lessonbook/internal/features/projects/testing"
	users_enums "lessonbook/internal/features/users/enums"
	users_testing "lessonbook/internal/features/users/testing"
	test_utils "lessonbook/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createExportTestRouter() *gin.Engine {
	return projects_testing.CreateTestRouter(
		projects_controllers.GetProjectController(),
		projects_controllers.GetMembershipController(),
		lessons_core.GetLessonController(),
		lessons_exporting.GetExportController(),
	)
}

func Test_ExportLessons_AsCSV_ReturnsExactHeaderAndLabels(t *testing.T) {
	router := createExportTestRouter()
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	project := projects_testing.CreateTestProject("Export CSV", owner, router)

	lessons_core_tests.CreateTestLesson(t, router, owner, project.ID,
		func(request *lessons_core.CreateLessonRequestDTO) {
			request.Title = "Handover gaps"
			request.Impact = lessons_core.LessonImpactHigh
			request.Status = lessons_core.LessonStatusInProgress
		})

	resp := test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/lessons/export?format=csv&projectId="+project.ID.String(),
		"Bearer "+owner.Token,
		http.StatusOK,
	)

	records, err := csv.NewReader(bytes.NewReader(resp.Body)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, []string{
		"Project", "Title", "Category", "Date Identified", "Status",
		"Impact", "Description", "Recommendations", "Submitted By",
	}, records[0])

	row := records[1]
	assert.Equal(t, project.Name, row[0])
	assert.Equal(t, "Handover gaps", row[1])
	assert.Equal(t, "In Progress", row[4])
	assert.Equal(t, "High", row[5])
	assert.Equal(t, owner.Username, row[8])
}

func Test_ExportLessons_AsPrintable_ReturnsHTMLWithPrintDirective(t *testing.T) {
	router := createExportTestRouter()
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	project := projects_testing.CreateTestProject("Export Printable", owner, router)

	lessons_core_tests.CreateTestLesson(t, router, owner, project.ID,
		func(request *lessons_core.CreateLessonRequestDTO) {
			request.Title = "Printable lesson"
		})

	resp := test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/lessons/export?format=printable&projectId="+project.ID.String(),
		"Bearer "+owner.Token,
		http.StatusOK,
	)

	body := string(resp.Body)
	assert.Contains(t, body, "window.print()")
	assert.Contains(t, body, "Printable lesson")
}

func Test_ExportLessons_AsPDF_ReturnsPDFDocument(t *testing.T) {
	router := createExportTestRouter()
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	project := projects_testing.CreateTestProject("Export PDF", owner, router)

	lessons_core_tests.CreateTestLesson(t, router, owner, project.ID, nil)

	resp := test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/lessons/export?format=pdf&projectId="+project.ID.String(),
		"Bearer "+owner.Token,
		http.StatusOK,
	)

	assert.True(t, strings.HasPrefix(string(resp.Body), "%PDF"))
}

func Test_ExportLessons_WithUnknownFormat_ReturnsBadRequest(t *testing.T) {
	router := createExportTestRouter()
	user := users_testing.CreateTestUser(users_enums.UserRoleMember)

	test_utils.MakeGetRequest(
		t, router, "/api/v1/lessons/export?format=docx", "Bearer "+user.Token, http.StatusBadRequest)
}

func Test_ExportLessons_ForNonVisibleProject_ReturnsOnlyHeader(t *testing.T) {
	router := createExportTestRouter()
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	other := users_testing.CreateTestUser(users_enums.UserRoleMember)
	hidden := projects_testing.CreateTestProject("Export Hidden", other, router)
	lessons_core_tests.CreateTestLesson(t, router, other, hidden.ID, nil)

	resp := test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/lessons/export?format=csv&projectId="+hidden.ID.String(),
		"Bearer "+owner.Token,
		http.StatusOK,
	)

	records, err := csv.NewReader(bytes.NewReader(resp.Body)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
}
