package api

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserHandler holds the user directory dependency.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUserRequest accepts either a urlencoded form or JSON.
type CreateUserRequest struct {
	Username string `form:"username" json:"username"`
}

// UserResponse is the public projection of a user.
type UserResponse struct {
	Username string `json:"username"`
	ID       string `json:"_id"`
}

// MapUserToResponse converts a domain.User to UserResponse DTO.
func MapUserToResponse(u *domain.User) UserResponse {
	return UserResponse{Username: u.Username, ID: u.ID.Hex()}
}

// CreateUser handles POST /api/users.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req.Username)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// ListUsers handles GET /api/users.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = MapUserToResponse(&users[i])
	}
	c.JSON(http.StatusOK, responses)
}
