package middleware

import (
	"log"
	"net/http"

	"inventory_api/internal/response"

	"github.com/gin-gonic/gin"
)

// RecoveryMiddleware converts any panic escaping a handler into the
// standard envelope instead of an unstructured 500.
func RecoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("panic recovered: %v", recovered)
		response.AbortFail(c, http.StatusInternalServerError, response.CodeInternal, "Internal server error")
	})
}
