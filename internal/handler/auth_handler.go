package handler

import (
	"net/http"

	"inventory_api/internal/middleware"
	"inventory_api/internal/response"
	"inventory_api/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes registration, login and token validation
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// RegisterAuthRoutes wires the auth endpoints onto the router group
func RegisterAuthRoutes(rg *gin.RouterGroup, h *AuthHandler, authMW gin.HandlerFunc) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.GET("/validate", authMW, h.Validate)
	}
}

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates an account. Role defaults to "user" when omitted.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, response.CodeValidation, "username and password are required")
		return
	}
	if req.Role == "" {
		req.Role = "user"
	}

	result, err := h.service.Register(c.Request.Context(), req.Username, req.Password, req.Role)
	if err != nil {
		respondServiceError(c, err, "registering user")
		return
	}
	response.OK(c, http.StatusCreated, result)
}

// Login verifies credentials and returns a signed token
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, response.CodeValidation, "username and password are required")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondServiceError(c, err, "logging in user")
		return
	}
	response.OK(c, http.StatusOK, result)
}

// Validate echoes the identity the auth middleware decoded. Reaching this
// handler at all means the token was accepted.
func (h *AuthHandler) Validate(c *gin.Context) {
	userID := c.GetInt(middleware.AuthUserKey)
	role := c.GetString(middleware.AuthRoleKey)
	response.OK(c, http.StatusOK, gin.H{"user_id": userID, "role": role})
}
