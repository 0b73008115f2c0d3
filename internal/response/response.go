package response

import "github.com/gin-gonic/gin"

// Error codes carried in the envelope. Stable, machine-readable.
const (
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeInvalidToken   = "INVALID_TOKEN"
	CodeTokenExpired   = "TOKEN_EXPIRED"
	CodeTokenRevoked   = "TOKEN_REVOKED" // reserved: no revocation list exists yet
	CodeForbidden      = "FORBIDDEN"
	CodeAuthError      = "AUTH_ERROR"
	CodeValidation     = "VALIDATION_ERROR"
	CodeNotFound       = "NOT_FOUND"
	CodeConflict       = "CONFLICT"
	CodeDBError        = "DB_ERROR"
	CodeInternal       = "INTERNAL_ERROR"
	CodePDFUnavailable = "PDF_DEPENDENCY_MISSING"
)

// StandardResponse is the envelope every endpoint returns.
// Success responses never carry error/code; failures never carry data.
type StandardResponse struct {
	OK      bool           `json:"ok"`
	Data    any            `json:"data,omitempty"`
	Error   string         `json:"error,omitempty"`
	Code    string         `json:"code,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// OK writes a success envelope. Pass nil data to omit the data key.
func OK(c *gin.Context, status int, data any) {
	c.JSON(status, StandardResponse{OK: true, Data: data})
}

// Fail writes a failure envelope.
func Fail(c *gin.Context, status int, code, message string) {
	c.JSON(status, StandardResponse{OK: false, Error: message, Code: code})
}

// FailDetails writes a failure envelope with collaborator-supplied detail.
func FailDetails(c *gin.Context, status int, code, message string, details map[string]any) {
	c.JSON(status, StandardResponse{OK: false, Error: message, Code: code, Details: details})
}

// AbortFail ends a middleware chain with a failure envelope.
func AbortFail(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, StandardResponse{OK: false, Error: message, Code: code})
}
