package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"amashuri/gateway"
	"amashuri/seed"
	"amashuri/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	app     *fiber.App
	session *store.Session
	catalog *store.Catalog
	gw      *gateway.Memory
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gw := gateway.NewMemory()
	session := store.NewSession(gw, store.TestIdentities(), nil)
	catalog := store.NewCatalog(store.CatalogConfig{Gateway: gw, Seed: seed.Courses()})
	require.NoError(t, catalog.FetchCourses(context.Background()))

	app := fiber.New()
	SetupRoutes(app, Deps{Session: session, Catalog: catalog, Gateway: gw})

	return &testEnv{app: app, session: session, catalog: catalog, gw: gw}
}

func (e *testEnv) request(t *testing.T, method, path string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := e.app.Test(req)
	require.NoError(t, err)
	return resp
}

func (e *testEnv) login(t *testing.T, email, password string) {
	t.Helper()
	resp := e.request(t, "POST", "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func decode(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

func TestLoginWithTestCredentials(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, "POST", "/api/auth/login", map[string]string{
		"email":    "student@test.com",
		"password": "test123",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decode(t, resp)
	user := result["data"].(map[string]interface{})["user"].(map[string]interface{})
	assert.Equal(t, "student", user["role"])

	// The demo login resolves locally.
	assert.Empty(t, env.gw.Calls())
}

func TestLoginRejectsUnknownCredentials(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, "POST", "/api/auth/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "wrong",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Nil(t, env.session.User())
}

func TestRegisterEstablishesSession(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, "POST", "/api/auth/register", map[string]string{
		"email":     "new@example.com",
		"password":  "pw123456",
		"full_name": "New User",
		"role":      "student",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	user := env.session.User()
	require.NotNil(t, user)
	assert.Equal(t, "new@example.com", user.Email)
}

func TestRegisterRejectsBadRole(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, "POST", "/api/auth/register", map[string]string{
		"email":    "new@example.com",
		"password": "pw123456",
		"role":     "admin",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLogoutClearsSession(t *testing.T) {
	env := newTestEnv(t)
	env.login(t, "student@test.com", "test123")

	resp := env.request(t, "POST", "/api/auth/logout", nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Nil(t, env.session.User())
}

func TestCoursesRequireAuth(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, "GET", "/api/courses/", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestGetCourses(t *testing.T) {
	env := newTestEnv(t)
	env.login(t, "student@test.com", "test123")

	resp := env.request(t, "GET", "/api/courses/", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decode(t, resp)
	courses := result["data"].(map[string]interface{})["courses"].([]interface{})
	assert.Len(t, courses, 3)
}

func TestGetCoursesWithSearchFilter(t *testing.T) {
	env := newTestEnv(t)
	env.login(t, "student@test.com", "test123")

	resp := env.request(t, "GET", "/api/courses/?search=kinyarwanda", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decode(t, resp)
	courses := result["data"].(map[string]interface{})["courses"].([]interface{})
	require.Len(t, courses, 1)
	course := courses[0].(map[string]interface{})
	assert.Equal(t, "course-1", course["id"])

	// Reset restores the full set.
	resp = env.request(t, "POST", "/api/filters/reset", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = env.request(t, "GET", "/api/courses/", nil)
	result = decode(t, resp)
	courses = result["data"].(map[string]interface{})["courses"].([]interface{})
	assert.Len(t, courses, 3)
}

func TestGetCourseDetails(t *testing.T) {
	env := newTestEnv(t)
	env.login(t, "student@test.com", "test123")

	resp := env.request(t, "GET", "/api/courses/course-1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decode(t, resp)
	course := result["data"].(map[string]interface{})["course"].(map[string]interface{})
	assert.Equal(t, "Kinyarwanda for Beginners", course["title"])

	resp = env.request(t, "GET", "/api/courses/no-such-course", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCompleteLessonEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.login(t, "student@test.com", "test123")

	resp := env.request(t, "POST", "/api/courses/course-1/lessons/lesson-1-5/complete", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decode(t, resp)
	data := result["data"].(map[string]interface{})
	assert.Equal(t, float64(5), data["completed_lessons"])
	assert.Equal(t, float64(42), data["progress"]) // round(100*5/12)

	// The progress write reached the gateway for the signed-in user.
	progress := env.gw.Progress()
	require.Len(t, progress, 1)
	assert.Equal(t, "test-student-id", progress[0].UserID)
}

func TestSubmitQuizEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.login(t, "student@test.com", "test123")

	resp := env.request(t, "POST", "/api/courses/course-1/quizzes/quiz-1-1/submit", map[string]interface{}{
		"answers": map[string]string{
			"q1-1": "Muraho",
			"q1-2": "Murakoze",
			"q1-3": "I like John",
		},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decode(t, resp)
	data := result["data"].(map[string]interface{})
	assert.Equal(t, float64(67), data["score"])

	attempts := env.gw.Attempts()
	require.Len(t, attempts, 1)
	assert.Equal(t, "quiz-1-1", attempts[0].QuizID)
	assert.Equal(t, 67, attempts[0].Score)
}

func TestSubmitQuizUnknownQuiz(t *testing.T) {
	env := newTestEnv(t)
	env.login(t, "student@test.com", "test123")

	resp := env.request(t, "POST", "/api/courses/course-1/quizzes/no-such-quiz/submit", map[string]interface{}{
		"answers": map[string]string{},
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestEnrollEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.login(t, "student@test.com", "test123")

	resp := env.request(t, "POST", "/api/courses/course-2/enroll", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, env.gw.Calls(), "enroll")
}

func TestFilterOptionsEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.login(t, "student@test.com", "test123")

	resp := env.request(t, "GET", "/api/filters", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decode(t, resp)
	options := result["data"].(map[string]interface{})["options"].(map[string]interface{})
	categories := options["category"].([]interface{})
	assert.Equal(t, "All", categories[0])
}

func TestAnalyticsOverview(t *testing.T) {
	env := newTestEnv(t)
	env.login(t, "student@test.com", "test123")

	resp := env.request(t, "GET", "/api/analytics/overview", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decode(t, resp)
	data := result["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["total_courses"])
	assert.Equal(t, float64(30), data["total_lessons"])     // 12+10+8
	assert.Equal(t, float64(11), data["completed_lessons"]) // 4+6+1
}

func TestTeacherAnalyticsRequiresTeacherRole(t *testing.T) {
	env := newTestEnv(t)
	env.login(t, "student@test.com", "test123")

	resp := env.request(t, "GET", "/api/teacher/analytics/overview", nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	env.login(t, "teacher@test.com", "test123")
	resp = env.request(t, "GET", "/api/teacher/analytics/overview", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestSessionEndpoint(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, "GET", "/api/auth/session", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	env.login(t, "teacher@test.com", "test123")
	resp = env.request(t, "GET", "/api/auth/session", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decode(t, resp)
	user := result["data"].(map[string]interface{})["user"].(map[string]interface{})
	assert.Equal(t, "teacher", user["role"])
}
