package handler

import (
	"net/http"
	"strconv"

	"inventory_api/internal/model"
	"inventory_api/internal/response"
	"inventory_api/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes the admin account-management endpoints
type UserHandler struct {
	service service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// RegisterUserRoutes wires the user endpoints onto the router group.
// Every route here is admin-only.
func RegisterUserRoutes(rg *gin.RouterGroup, h *UserHandler, authMW, adminMW gin.HandlerFunc) {
	users := rg.Group("/users", authMW, adminMW)
	{
		users.GET("", h.List)
		users.POST("", h.Create)
		users.PUT("/:id", h.Update)
		users.DELETE("/:id", h.Delete)
	}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "listing users")
		return
	}
	if users == nil {
		users = []model.User{}
	}
	response.OK(c, http.StatusOK, users)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req model.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, response.CodeValidation, "username, password and role are required")
		return
	}

	user, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "creating user")
		return
	}
	response.OK(c, http.StatusCreated, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.CodeValidation, "Invalid user ID")
		return
	}

	var req model.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}

	if err := h.service.Update(c.Request.Context(), id, req); err != nil {
		respondServiceError(c, err, "updating user")
		return
	}
	response.OK(c, http.StatusOK, gin.H{"message": "User updated successfully"})
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.CodeValidation, "Invalid user ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "deleting user")
		return
	}
	response.OK(c, http.StatusOK, gin.H{"message": "User deleted successfully"})
}
