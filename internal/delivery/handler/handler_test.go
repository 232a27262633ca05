package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"branding-agent/internal/application/services"
	"branding-agent/internal/infrastructure"
	"branding-agent/internal/infrastructure/db/postgres"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A pooled second connection to :memory: would see a separate empty
	// database; pin the pool to one.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, postgres.Migrate(db))

	userRepo := postgres.NewUserRepository(db)
	postRepo := postgres.NewPostRepository(db)
	draftRepo := postgres.NewDraftRepository(db)

	jwtService := infrastructure.NewJWTService("test-secret")
	userService := services.NewUserService(userRepo, jwtService, nil, nil)
	contentService := services.NewContentService(userRepo, nil)
	postService := services.NewPostService(userRepo, postRepo, draftRepo)
	limiter := infrastructure.NewRateLimiter(60, 2)

	e := echo.New()
	h := NewHandler(userService, contentService, postService, jwtService, limiter)
	h.RegisterRoutes(e)
	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path, token, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var parsed map[string]interface{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parsed))
	}
	return rec, parsed
}

func signupAndLogin(t *testing.T, e *echo.Echo) string {
	t.Helper()

	rec, _ := doJSON(t, e, http.MethodPost, "/api/auth/signup", "", `{"name":"Jane","email":"jane@example.com","password":"secret123"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, body := doJSON(t, e, http.MethodPost, "/api/auth/login", "", `{"email":"jane@example.com","password":"secret123"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	data := body["data"].(map[string]interface{})
	return data["token"].(string)
}

func TestSignupValidationAndConflict(t *testing.T) {
	e := newTestServer(t)

	rec, body := doJSON(t, e, http.MethodPost, "/api/auth/signup", "", `{"name":"Jane","email":"bad-email","password":"secret123"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body["message"], "email")

	rec, _ = doJSON(t, e, http.MethodPost, "/api/auth/signup", "", `{"name":"Jane","email":"jane@example.com","password":"secret123"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec, _ = doJSON(t, e, http.MethodPost, "/api/auth/signup", "", `{"name":"Jane","email":"jane@example.com","password":"secret123"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	e := newTestServer(t)
	signupAndLogin(t, e)

	rec, _ := doJSON(t, e, http.MethodPost, "/api/auth/login", "", `{"email":"jane@example.com","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	e := newTestServer(t)

	rec, _ := doJSON(t, e, http.MethodGet, "/api/posts", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = doJSON(t, e, http.MethodGet, "/api/posts", "garbage-token", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGenerateGatedOnProfile(t *testing.T) {
	e := newTestServer(t)
	token := signupAndLogin(t, e)

	// Industry and interests are still empty right after signup.
	rec, body := doJSON(t, e, http.MethodPost, "/api/generate", token, "{}")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body["message"], "profile")
}

func TestGenerateFallbackFlow(t *testing.T) {
	e := newTestServer(t)
	token := signupAndLogin(t, e)

	rec, _ := doJSON(t, e, http.MethodPut, "/api/profile", token, `{"role":"AI Intern","industry":"EdTech","interests":"ml, careers"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, body := doJSON(t, e, http.MethodPost, "/api/generate", token, "{}")
	require.Equal(t, http.StatusOK, rec.Code)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "fallback", data["source"])
	assert.NotEmpty(t, data["warning"])
	assert.NotEmpty(t, data["content"])
	assert.Equal(t, "#career #learning #coding", data["hashtags"])
}

func TestGenerateRateLimited(t *testing.T) {
	e := newTestServer(t)
	token := signupAndLogin(t, e)

	rec, _ := doJSON(t, e, http.MethodPut, "/api/profile", token, `{"role":"AI Intern","industry":"EdTech","interests":"ml"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	// Burst of 2, third request in the same instant is refused.
	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec, _ := doJSON(t, e, http.MethodPost, "/api/generate", token, "{}")
		statuses = append(statuses, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, statuses)
}

func TestPostAndDraftLifecycle(t *testing.T) {
	e := newTestServer(t)
	token := signupAndLogin(t, e)

	rec, _ := doJSON(t, e, http.MethodPut, "/api/profile", token, `{"role":"AI Intern","industry":"EdTech","interests":"ml"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	// Blank content refused on both save paths.
	rec, _ = doJSON(t, e, http.MethodPost, "/api/posts", token, `{"content":"   "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec, _ = doJSON(t, e, http.MethodPost, "/api/drafts", token, `{"content":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, body := doJSON(t, e, http.MethodPost, "/api/drafts", token, `{"content":"X","hashtags":"#a #b"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	draftID := body["data"].(map[string]interface{})["id"].(string)

	rec, body = doJSON(t, e, http.MethodPost, fmt.Sprintf("/api/drafts/%s/publish", draftID), token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	published := body["data"].(map[string]interface{})
	assert.Equal(t, "X", published["content"])
	assert.Equal(t, "#a #b", published["hashtags"])

	// The draft no longer exists; publishing again is a 404.
	rec, _ = doJSON(t, e, http.MethodPost, fmt.Sprintf("/api/drafts/%s/publish", draftID), token, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, body = doJSON(t, e, http.MethodGet, "/api/stats", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	stats := body["data"].(map[string]interface{})
	assert.EqualValues(t, 1, stats["posts"])
	assert.EqualValues(t, 0, stats["drafts"])
}
