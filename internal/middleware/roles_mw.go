package middleware

import (
	"net/http"

	"inventory_api/internal/model"
	"inventory_api/internal/response"

	"github.com/gin-gonic/gin"
)

// RoleMiddleware creates a middleware to check for specific user roles.
// It must run after JWTAuthMiddleware. Authorization failure is 403,
// distinct from the 401s of the authentication gate.
func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get(AuthRoleKey)
		if !exists {
			response.AbortFail(c, http.StatusForbidden, response.CodeForbidden, "Role not found in token, ensure JWT middleware runs first")
			return
		}

		userRole, ok := roleVal.(string)
		if !ok {
			response.AbortFail(c, http.StatusForbidden, response.CodeForbidden, "Invalid role type in token")
			return
		}

		for _, allowedRole := range allowedRoles {
			if userRole == allowedRole {
				c.Next()
				return
			}
		}

		response.AbortFail(c, http.StatusForbidden, response.CodeForbidden, "You do not have permission to access this resource")
	}
}

// AdminMiddleware checks if the user is an admin
func AdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware(model.RoleAdmin)
}
