package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"inventory_api/internal/middleware"
	"inventory_api/internal/repository"
	"inventory_api/internal/response"
	"inventory_api/internal/service"
	"inventory_api/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const findByUsernameSQL = `SELECT id, username, password_hash, role, created_at FROM users WHERE username = $1`
const listUsersSQL = `SELECT id, username, role, created_at FROM users ORDER BY id DESC`

// setupAPI builds a router with the auth and user routes wired the same
// way main does, backed by a mocked pool.
func setupAPI(t *testing.T) (*gin.Engine, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	jwtUtil := utils.NewJWTUtil("test-secret", 1)
	userRepo := repository.NewUserRepository(mock)
	authHandler := NewAuthHandler(service.NewAuthService(userRepo, jwtUtil))
	userHandler := NewUserHandler(service.NewUserService(userRepo))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	authMW := middleware.JWTAuthMiddleware(jwtUtil)
	adminMW := middleware.AdminMiddleware()
	RegisterAuthRoutes(api, authHandler, authMW)
	RegisterUserRoutes(api, userHandler, authMW, adminMW)
	return router, mock
}

func envelope(t *testing.T, w *httptest.ResponseRecorder) response.StandardResponse {
	t.Helper()
	var env response.StandardResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

// Full round trip: login yields a token that opens the admin-only user list
func TestAPI_LoginThenListUsers(t *testing.T) {
	router, mock := setupAPI(t)

	hash, err := utils.HashPassword("s3cret")
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(findByUsernameSQL)).
		WithArgs("admin").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "password_hash", "role", "created_at"}).
			AddRow(1, "admin", hash, "admin", time.Now()))

	loginBody := `{"username":"admin","password":"s3cret"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(loginBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	env := envelope(t, w)
	assert.True(t, env.OK)
	data := env.Data.(map[string]any)
	token := data["token"].(string)
	assert.NotEmpty(t, token)

	mock.ExpectQuery(regexp.QuoteMeta(listUsersSQL)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "role", "created_at"}).
			AddRow(1, "admin", "admin", time.Now()))

	req = httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	env = envelope(t, w)
	assert.True(t, env.OK)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAPI_ListUsersWithoutToken(t *testing.T) {
	router, _ := setupAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	env := envelope(t, w)
	assert.False(t, env.OK)
	assert.Equal(t, response.CodeUnauthorized, env.Code)
}

func TestAPI_ListUsersAsNonAdmin(t *testing.T) {
	router, _ := setupAPI(t)

	token, _ := utils.NewJWTUtil("test-secret", 1).IssueToken(2, "user")
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	env := envelope(t, w)
	assert.Equal(t, response.CodeForbidden, env.Code)
}

func TestAPI_LoginBadCredentials(t *testing.T) {
	router, mock := setupAPI(t)

	mock.ExpectQuery(regexp.QuoteMeta(findByUsernameSQL)).
		WithArgs("admin").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "password_hash", "role", "created_at"}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"username":"admin","password":"nope"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	env := envelope(t, w)
	assert.False(t, env.OK)
	assert.Equal(t, response.CodeAuthError, env.Code)
}

func TestAPI_LoginMissingFields(t *testing.T) {
	router, _ := setupAPI(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"username":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := envelope(t, w)
	assert.Equal(t, response.CodeValidation, env.Code)
}

func TestAPI_ValidateEchoesIdentity(t *testing.T) {
	router, _ := setupAPI(t)

	token, _ := utils.NewJWTUtil("test-secret", 1).IssueToken(7, "admin")
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/validate", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	env := envelope(t, w)
	assert.True(t, env.OK)
	data := env.Data.(map[string]any)
	assert.Equal(t, float64(7), data["user_id"])
	assert.Equal(t, "admin", data["role"])
}
