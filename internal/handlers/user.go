package handlers

import (
	"net/http"

	"github.com/anonto42/picgram/internal/models"
	"github.com/anonto42/picgram/internal/repositories"
	"github.com/labstack/echo/v4"
)

// UserHandler handles HTTP requests related to users
type UserHandler struct {
	userRepository repositories.UserRepository
	postRepository repositories.PostRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository, postRepo repositories.PostRepository) *UserHandler {
	return &UserHandler{
		userRepository: userRepo,
		postRepository: postRepo,
	}
}

// RegisterUserRoutes registers user profile-related routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.POST("/users", h.CreateUser)
	g.GET("/users/:id", h.GetUser)
	g.PUT("/users/:id", h.UpdateUser)
	g.GET("/users/:id/posts", h.GetUserPosts)
}

// CreateUser registers a new user
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req models.CreateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userRepository.CreateUser(req)
	if err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusCreated, user)
}

// GetUser returns a user's profile with follower, following and post counts
func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.userRepository.GetProfile(c.Param("id"))
	if err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateUser applies the provided profile fields
func (h *UserHandler) UpdateUser(c echo.Context) error {
	var req models.UpdateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userRepository.UpdateUser(c.Param("id"), req)
	if err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// GetUserPosts lists a user's posts, newest first
func (h *UserHandler) GetUserPosts(c echo.Context) error {
	posts, err := h.postRepository.GetPostsByUserID(c.Param("id"))
	if err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, posts)
}
