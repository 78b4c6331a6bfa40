package handlers

import (
	"net/http"

	"github.com/anonto42/picgram/internal/models"
	"github.com/anonto42/picgram/internal/repositories"
	"github.com/labstack/echo/v4"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postRepository repositories.PostRepository
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository) *PostHandler {
	return &PostHandler{postRepository: postRepo}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts/:id", h.GetPost)
	g.DELETE("/posts/:id", h.DeletePost)
}

// CreatePost creates a new post; hashtags are pulled out of the caption by the store
func (h *PostHandler) CreatePost(c echo.Context) error {
	var req models.CreatePostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	post, err := h.postRepository.CreatePost(req)
	if err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusCreated, post)
}

// GetPost retrieves a post by ID
func (h *PostHandler) GetPost(c echo.Context) error {
	post, err := h.postRepository.GetPost(c.Param("id"))
	if err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, post)
}

// DeletePost deletes a post together with its likes, comments and hashtag entries
func (h *PostHandler) DeletePost(c echo.Context) error {
	if err := h.postRepository.DeletePost(c.Param("id")); err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, detail("Post deleted"))
}
