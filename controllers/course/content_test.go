package courseController_test

import (
	"academy/config"
	"academy/database"
	"academy/middleware"
	"academy/models"
	courseRoutes "academy/routers/courseRoutes"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:    "testSecret",
		SaltRound: 4,
	}
	database.ConnectTestDb()

	app := fiber.New()
	courseRoutes.SetupCourseRoutes(app)
	return app
}

// seedPaidCourse creates a course with one module and the given number of
// lessons, plus a student holding a PAID enrollment for it.
func seedPaidCourse(t *testing.T, lessonCount int) (models.Course, []models.Lesson, string) {
	t.Helper()
	db := database.Database.Db

	course := models.Course{Title: "Backend Bootcamp", Description: "desc", Price: 500, Duration: "6 months"}
	require.NoError(t, db.Create(&course).Error)

	module := models.Module{CourseID: course.ID, Title: "Month 1", MonthNumber: 1, IsUnlocked: true}
	require.NoError(t, db.Create(&module).Error)

	lessons := make([]models.Lesson, 0, lessonCount)
	for i := 1; i <= lessonCount; i++ {
		lesson := models.Lesson{
			CourseID: course.ID,
			ModuleID: module.ID,
			Title:    fmt.Sprintf("Lesson %d", i),
			Type:     models.LessonTypeRecorded,
			Week:     i,
		}
		require.NoError(t, db.Create(&lesson).Error)
		lessons = append(lessons, lesson)
	}

	user := models.User{Name: "Student", Email: "student@x.com", Password: "hashed", Role: models.RoleStudent}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&models.Enrollment{
		UserID:        user.ID,
		CourseID:      course.ID,
		Status:        models.EnrollmentActive,
		PaymentStatus: models.PaymentPaid,
	}).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Role)
	require.NoError(t, err)
	return course, lessons, token
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body map[string]interface{}, token string) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &decoded)
	}
	return resp, decoded
}

func TestGetCourseContentRequiresPaidEnrollment(t *testing.T) {
	app := setupApp(t)
	course, _, _ := seedPaidCourse(t, 2)

	// A user whose enrollment is still UNPAID is locked out
	unpaid := models.User{Name: "Freeloader", Email: "unpaid@x.com", Password: "hashed", Role: models.RoleStudent}
	require.NoError(t, database.Database.Db.Create(&unpaid).Error)
	require.NoError(t, database.Database.Db.Create(&models.Enrollment{
		UserID:        unpaid.ID,
		CourseID:      course.ID,
		Status:        models.EnrollmentPending,
		PaymentStatus: models.PaymentUnpaid,
	}).Error)
	token, err := middleware.GenerateJWT(unpaid.ID, unpaid.Role)
	require.NoError(t, err)

	resp, body := doJSON(t, app, "GET", fmt.Sprintf("/course-content/%d", course.ID), nil, token)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Access denied", body["message"])
}

func TestGetCourseContentCreatesZeroedProgress(t *testing.T) {
	app := setupApp(t)
	course, _, token := seedPaidCourse(t, 2)

	resp, body := doJSON(t, app, "GET", fmt.Sprintf("/course-content/%d", course.ID), nil, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	modules := body["modules"].([]interface{})
	require.Len(t, modules, 1)
	lessons := modules[0].(map[string]interface{})["lessons"].([]interface{})
	assert.Len(t, lessons, 2)

	progress := body["progress"].(map[string]interface{})
	assert.Equal(t, float64(0), progress["progressPercentage"])

	var count int64
	database.Database.Db.Model(&models.Progress{}).Where("course_id = ?", course.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestMarkLessonCompleteIsIdempotent(t *testing.T) {
	app := setupApp(t)
	course, lessons, token := seedPaidCourse(t, 4)

	payload := map[string]interface{}{
		"courseId": course.ID,
		"lessonId": lessons[0].ID,
	}

	resp, body := doJSON(t, app, "POST", "/course-content/complete", payload, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(25), body["progressPercentage"])

	// Completing the same lesson again changes nothing
	resp, body = doJSON(t, app, "POST", "/course-content/complete", payload, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(25), body["progressPercentage"])

	var progress models.Progress
	require.NoError(t, database.Database.Db.Where("course_id = ?", course.ID).First(&progress).Error)
	assert.Equal(t, []uint{lessons[0].ID}, progress.CompletedList())
	assert.Equal(t, lessons[0].ID, progress.LastAccessedLesson)
}

func TestMarkLessonCompleteAccumulates(t *testing.T) {
	app := setupApp(t)
	course, lessons, token := seedPaidCourse(t, 4)

	for i, lesson := range lessons[:3] {
		resp, body := doJSON(t, app, "POST", "/course-content/complete", map[string]interface{}{
			"courseId": course.ID,
			"lessonId": lesson.ID,
		}, token)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, float64((i+1)*25), body["progressPercentage"])
	}
}

func TestMarkLessonCompletePreservesEarlierCompletions(t *testing.T) {
	app := setupApp(t)
	course, lessons, token := seedPaidCourse(t, 4)

	for _, lesson := range lessons[:2] {
		resp, _ := doJSON(t, app, "POST", "/course-content/complete", map[string]interface{}{
			"courseId": course.ID,
			"lessonId": lesson.ID,
		}, token)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	// Completing a second lesson must not drop the first from the set
	var progress models.Progress
	require.NoError(t, database.Database.Db.Where("course_id = ?", course.ID).First(&progress).Error)
	assert.ElementsMatch(t, []uint{lessons[0].ID, lessons[1].ID}, progress.CompletedList())
}

func TestMarkLessonCompleteZeroLessonCourse(t *testing.T) {
	app := setupApp(t)
	course, _, token := seedPaidCourse(t, 0)

	resp, body := doJSON(t, app, "POST", "/course-content/complete", map[string]interface{}{
		"courseId": course.ID,
		"lessonId": 999,
	}, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(0), body["progressPercentage"])
}

func TestMarkLessonCompleteRequiresPaidEnrollment(t *testing.T) {
	app := setupApp(t)
	course, lessons, _ := seedPaidCourse(t, 2)

	outsider := models.User{Name: "Outsider", Email: "outsider@x.com", Password: "hashed", Role: models.RoleStudent}
	require.NoError(t, database.Database.Db.Create(&outsider).Error)
	token, err := middleware.GenerateJWT(outsider.ID, outsider.Role)
	require.NoError(t, err)

	resp, _ := doJSON(t, app, "POST", "/course-content/complete", map[string]interface{}{
		"courseId": course.ID,
		"lessonId": lessons[0].ID,
	}, token)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestGetCourseContentInvalidCourseID(t *testing.T) {
	app := setupApp(t)
	_, _, token := seedPaidCourse(t, 1)

	resp, body := doJSON(t, app, "GET", "/course-content/abc", nil, token)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid Course ID", body["message"])
}

func TestGetAllCoursesIsPublic(t *testing.T) {
	app := setupApp(t)
	seedPaidCourse(t, 1)

	req := httptest.NewRequest("GET", "/courses/", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var list []map[string]interface{}
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Backend Bootcamp", list[0]["title"])
}
