package courseController_test

import (
	"academy/config"
	"academy/database"
	"academy/middleware"
	"academy/models"
	adminRoutes "academy/routers/adminRoutes"
	courseRoutes "academy/routers/courseRoutes"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAdminApp(t *testing.T) (*fiber.App, string) {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:    "testSecret",
		SaltRound: 4,
	}
	database.ConnectTestDb()

	admin := models.User{Name: "Admin", Email: "admin@x.com", Password: "hashed", Role: models.RoleAdmin}
	require.NoError(t, database.Database.Db.Create(&admin).Error)
	token, err := middleware.GenerateJWT(admin.ID, admin.Role)
	require.NoError(t, err)

	app := fiber.New()
	courseRoutes.SetupCourseRoutes(app)
	adminRoutes.SetupAdminRoutes(app)
	return app, token
}

func TestCreateCourse(t *testing.T) {
	app, token := setupAdminApp(t)

	resp, body := doJSON(t, app, "POST", "/courses/", map[string]interface{}{
		"title":       "Backend Bootcamp",
		"description": "6-month backend program",
		"price":       500,
		"duration":    "6 months",
	}, token)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Backend Bootcamp", body["title"])
	assert.Equal(t, float64(500), body["price"])
}

func TestCreateCourseValidation(t *testing.T) {
	app, token := setupAdminApp(t)

	// Missing price and description
	resp, body := doJSON(t, app, "POST", "/courses/", map[string]interface{}{
		"title": "Backend Bootcamp",
	}, token)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	errs := body["errors"].(map[string]interface{})
	assert.Contains(t, errs, "price")
	assert.Contains(t, errs, "description")

	// Zero price is a legitimate free course
	resp, _ = doJSON(t, app, "POST", "/courses/", map[string]interface{}{
		"title":       "Free Intro",
		"description": "taster",
		"price":       0,
	}, token)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Negative price is not
	resp, _ = doJSON(t, app, "POST", "/courses/", map[string]interface{}{
		"title":       "Broken",
		"description": "broken",
		"price":       -1,
	}, token)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateCourseStudentForbidden(t *testing.T) {
	app, _ := setupAdminApp(t)

	student := models.User{Name: "S", Email: "s@x.com", Password: "hashed", Role: models.RoleStudent}
	require.NoError(t, database.Database.Db.Create(&student).Error)
	token, err := middleware.GenerateJWT(student.ID, student.Role)
	require.NoError(t, err)

	resp, body := doJSON(t, app, "POST", "/courses/", map[string]interface{}{
		"title": "X", "description": "X", "price": 1,
	}, token)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Admin access only", body["message"])
}

func TestCreateModuleAndLesson(t *testing.T) {
	app, token := setupAdminApp(t)

	course := models.Course{Title: "Backend Bootcamp", Description: "d", Price: 500}
	require.NoError(t, database.Database.Db.Create(&course).Error)

	resp, body := doJSON(t, app, "POST", "/admin/content/module", map[string]interface{}{
		"courseId":    course.ID,
		"title":       "Month 1",
		"monthNumber": 1,
		"description": "basics",
	}, token)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	moduleID := uint(body["id"].(float64))

	scheduledAt := time.Now().Add(24 * time.Hour).Format(time.RFC3339)
	resp, body = doJSON(t, app, "POST", "/admin/content/lesson", map[string]interface{}{
		"courseId":        course.ID,
		"moduleId":        moduleID,
		"title":           "Kickoff",
		"type":            models.LessonTypeLive,
		"week":            1,
		"scheduledAt":     scheduledAt,
		"durationMinutes": 90,
		"liveLink":        "https://meet.example.com/kickoff",
	}, token)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, models.LessonTypeLive, body["type"])

	var lesson models.Lesson
	require.NoError(t, database.Database.Db.First(&lesson, uint(body["id"].(float64))).Error)
	require.NotNil(t, lesson.ScheduledAt)
	assert.Equal(t, models.LessonStatusUpcoming, lesson.Status)
}

func TestCreateModuleCourseNotFound(t *testing.T) {
	app, token := setupAdminApp(t)

	resp, _ := doJSON(t, app, "POST", "/admin/content/module", map[string]interface{}{
		"courseId": 77, "title": "Month 1", "monthNumber": 1,
	}, token)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCreateLessonRejectsBadSchedule(t *testing.T) {
	app, token := setupAdminApp(t)

	course := models.Course{Title: "Backend Bootcamp", Description: "d", Price: 500}
	require.NoError(t, database.Database.Db.Create(&course).Error)
	module := models.Module{CourseID: course.ID, Title: "Month 1", MonthNumber: 1}
	require.NoError(t, database.Database.Db.Create(&module).Error)

	resp, body := doJSON(t, app, "POST", "/admin/content/lesson", map[string]interface{}{
		"courseId":    course.ID,
		"moduleId":    module.ID,
		"title":       "Kickoff",
		"scheduledAt": "next tuesday",
	}, token)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "scheduledAt must be RFC3339", body["message"])
}
