package announcementController_test

import (
	"academy/config"
	"academy/database"
	"academy/middleware"
	"academy/models"
	announcementRoutes "academy/routers/announcementRoutes"
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
	announcementRoutes.SetupAnnouncementRoutes(app)
	return app
}

func seedUser(t *testing.T, email, role string) (models.User, string) {
	t.Helper()

	user := models.User{Name: "U", Email: email, Password: "hashed", Role: role}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Role)
	require.NoError(t, err)
	return user, token
}

func seedAnnouncement(t *testing.T, title string, courseID *uint, createdBy uint) models.Announcement {
	t.Helper()

	announcement := models.Announcement{Title: title, Message: "msg", CourseID: courseID, CreatedBy: createdBy, IsActive: true}
	announcement.SetReaders([]uint{})
	require.NoError(t, database.Database.Db.Create(&announcement).Error)
	return announcement
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body map[string]interface{}, token string) (*http.Response, []byte) {
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

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func TestCreateAnnouncementAdminOnly(t *testing.T) {
	app := setupApp(t)
	_, studentToken := seedUser(t, "student@x.com", models.RoleStudent)
	_, adminToken := seedUser(t, "admin@x.com", models.RoleAdmin)

	payload := map[string]interface{}{"title": "Welcome", "message": "Batch starts Monday"}

	resp, _ := doJSON(t, app, "POST", "/announcements/", payload, studentToken)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, raw := doJSON(t, app, "POST", "/announcements/", payload, adminToken)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created models.Announcement
	require.NoError(t, json.Unmarshal(raw, &created))
	assert.Equal(t, "Welcome", created.Title)
	assert.Nil(t, created.CourseID)
}

func TestGetMyAnnouncementsScoping(t *testing.T) {
	app := setupApp(t)
	admin, _ := seedUser(t, "admin@x.com", models.RoleAdmin)
	student, token := seedUser(t, "student@x.com", models.RoleStudent)

	db := database.Database.Db

	courseA := models.Course{Title: "Course A", Price: 100}
	courseB := models.Course{Title: "Course B", Price: 100}
	require.NoError(t, db.Create(&courseA).Error)
	require.NoError(t, db.Create(&courseB).Error)

	require.NoError(t, db.Create(&models.Enrollment{UserID: student.ID, CourseID: courseA.ID,
		Status: models.EnrollmentActive, PaymentStatus: models.PaymentPaid}).Error)

	seedAnnouncement(t, "Global", nil, admin.ID)
	seedAnnouncement(t, "For A", &courseA.ID, admin.ID)
	seedAnnouncement(t, "For B", &courseB.ID, admin.ID)

	resp, raw := doJSON(t, app, "GET", "/announcements/my", nil, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var list []models.Announcement
	require.NoError(t, json.Unmarshal(raw, &list))

	titles := make([]string, 0, len(list))
	for _, a := range list {
		titles = append(titles, a.Title)
	}
	assert.ElementsMatch(t, []string{"Global", "For A"}, titles)
}

func TestGetMyAnnouncementsUnenrolledSeesOnlyGlobal(t *testing.T) {
	app := setupApp(t)
	admin, _ := seedUser(t, "admin@x.com", models.RoleAdmin)
	_, token := seedUser(t, "student@x.com", models.RoleStudent)

	course := models.Course{Title: "Course A", Price: 100}
	require.NoError(t, database.Database.Db.Create(&course).Error)

	seedAnnouncement(t, "Global", nil, admin.ID)
	seedAnnouncement(t, "Scoped", &course.ID, admin.ID)

	resp, raw := doJSON(t, app, "GET", "/announcements/my", nil, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var list []models.Announcement
	require.NoError(t, json.Unmarshal(raw, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Global", list[0].Title)
}

func TestMarkAnnouncementReadIsIdempotent(t *testing.T) {
	app := setupApp(t)
	admin, _ := seedUser(t, "admin@x.com", models.RoleAdmin)
	student, token := seedUser(t, "student@x.com", models.RoleStudent)

	announcement := seedAnnouncement(t, "Global", nil, admin.ID)
	path := fmt.Sprintf("/announcements/read/%d", announcement.ID)

	resp, _ := doJSON(t, app, "PUT", path, nil, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp, _ = doJSON(t, app, "PUT", path, nil, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var fresh models.Announcement
	require.NoError(t, database.Database.Db.First(&fresh, announcement.ID).Error)
	assert.Equal(t, []uint{student.ID}, fresh.Readers())
}

func TestMarkAnnouncementReadAccumulatesReaders(t *testing.T) {
	app := setupApp(t)
	admin, _ := seedUser(t, "admin@x.com", models.RoleAdmin)
	first, firstToken := seedUser(t, "first@x.com", models.RoleStudent)
	second, secondToken := seedUser(t, "second@x.com", models.RoleStudent)

	announcement := seedAnnouncement(t, "Global", nil, admin.ID)
	path := fmt.Sprintf("/announcements/read/%d", announcement.ID)

	resp, _ := doJSON(t, app, "PUT", path, nil, firstToken)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp, _ = doJSON(t, app, "PUT", path, nil, secondToken)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// The second reader must not drop the first from the set
	var fresh models.Announcement
	require.NoError(t, database.Database.Db.First(&fresh, announcement.ID).Error)
	assert.ElementsMatch(t, []uint{first.ID, second.ID}, fresh.Readers())
}

func TestMarkAnnouncementReadNotFound(t *testing.T) {
	app := setupApp(t)
	_, token := seedUser(t, "student@x.com", models.RoleStudent)

	resp, _ := doJSON(t, app, "PUT", "/announcements/read/9999", nil, token)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestNotificationInbox(t *testing.T) {
	app := setupApp(t)
	admin, _ := seedUser(t, "admin@x.com", models.RoleAdmin)
	student, token := seedUser(t, "student@x.com", models.RoleStudent)
	other, _ := seedUser(t, "other@x.com", models.RoleStudent)

	announcement := seedAnnouncement(t, "Global", nil, admin.ID)

	db := database.Database.Db
	mine := models.Notification{UserID: student.ID, AnnouncementID: announcement.ID}
	theirs := models.Notification{UserID: other.ID, AnnouncementID: announcement.ID}
	require.NoError(t, db.Create(&mine).Error)
	require.NoError(t, db.Create(&theirs).Error)

	resp, raw := doJSON(t, app, "GET", "/notifications/", nil, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var list []models.Notification
	require.NoError(t, json.Unmarshal(raw, &list))
	require.Len(t, list, 1)
	assert.Equal(t, mine.ID, list[0].ID)
	assert.False(t, list[0].IsRead)
	assert.Equal(t, "Global", list[0].Announcement.Title)

	// Mark read only touches the caller's own row
	resp, _ = doJSON(t, app, "POST", fmt.Sprintf("/notifications/read/%d", mine.ID), nil, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var fresh models.Notification
	require.NoError(t, db.First(&fresh, mine.ID).Error)
	assert.True(t, fresh.IsRead)

	// Another user's notification id is rejected
	resp, _ = doJSON(t, app, "POST", fmt.Sprintf("/notifications/read/%d", theirs.ID), nil, token)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
