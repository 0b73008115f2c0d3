package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"inventory_api/internal/response"
	"inventory_api/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupAdminRouter(jwtUtil *utils.JWTUtil) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/admin-only", JWTAuthMiddleware(jwtUtil), AdminMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "welcome"})
	})
	return router
}

func TestAdminMiddleware_AdminAllowed(t *testing.T) {
	jwtUtil := utils.NewJWTUtil("secret", 1)
	token, _ := jwtUtil.IssueToken(1, "admin")

	router := setupAdminRouter(jwtUtil)
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

// Authorization failure is 403, distinct from the 401s of the
// authentication gate.
func TestAdminMiddleware_UserForbidden(t *testing.T) {
	jwtUtil := utils.NewJWTUtil("secret", 1)
	token, _ := jwtUtil.IssueToken(2, "user")

	router := setupAdminRouter(jwtUtil)
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	var env response.StandardResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.False(t, env.OK)
	assert.Equal(t, response.CodeForbidden, env.Code)
}

func TestRoleMiddleware_MissingIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	// RoleMiddleware without the auth middleware in front of it
	router.GET("/broken", RoleMiddleware("admin"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/broken", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
