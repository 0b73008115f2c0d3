package middleware

import (
	"errors"
	"net/http"
	"strings"

	"inventory_api/internal/response"
	"inventory_api/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	AuthUserKey = "authUser"
	AuthRoleKey = "authRole"
)

// JWTAuthMiddleware gates a route on a valid bearer token. On success the
// decoded identity is placed into the request context; handlers never see
// the raw token.
func JWTAuthMiddleware(jwtUtil *utils.JWTUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.AbortFail(c, http.StatusUnauthorized, response.CodeUnauthorized, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			response.AbortFail(c, http.StatusUnauthorized, response.CodeUnauthorized, "Invalid authorization header format")
			return
		}

		ident, err := jwtUtil.DecodeToken(parts[1])
		if err != nil {
			switch {
			case errors.Is(err, utils.ErrTokenExpired):
				response.AbortFail(c, http.StatusUnauthorized, response.CodeTokenExpired, "Token has expired")
			case errors.Is(err, utils.ErrTokenMalformed):
				response.AbortFail(c, http.StatusUnauthorized, response.CodeUnauthorized, "Token payload not recognized")
			default:
				response.AbortFail(c, http.StatusUnauthorized, response.CodeInvalidToken, "Invalid token")
			}
			return
		}

		c.Set(AuthUserKey, ident.UserID)
		c.Set(AuthRoleKey, ident.Role)

		c.Next()
	}
}
