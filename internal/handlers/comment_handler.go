package handlers

import (
	"net/http"

	"github.com/anonto42/picgram/internal/models"
	"github.com/anonto42/picgram/internal/repositories"
	"github.com/labstack/echo/v4"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	commentRepository repositories.CommentRepository
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentRepo repositories.CommentRepository) *CommentHandler {
	return &CommentHandler{commentRepository: commentRepo}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/posts/:id/comments", h.CreateComment)
	g.GET("/posts/:id/comments", h.GetCommentsByPostID)
	g.GET("/comments/:id", h.GetComment)
	g.DELETE("/comments/:id", h.DeleteComment)
}

// CreateComment creates a new comment on a post
func (h *CommentHandler) CreateComment(c echo.Context) error {
	var req models.CreateCommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	comment, err := h.commentRepository.CreateComment(c.Param("id"), req)
	if err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusCreated, comment)
}

// GetCommentsByPostID retrieves all comments for a specific post, oldest first
func (h *CommentHandler) GetCommentsByPostID(c echo.Context) error {
	comments, err := h.commentRepository.GetCommentsByPostID(c.Param("id"))
	if err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, comments)
}

func (h *CommentHandler) GetComment(c echo.Context) error {
	comment, err := h.commentRepository.GetComment(c.Param("id"))
	if err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, comment)
}

// DeleteComment deletes a comment
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	if err := h.commentRepository.DeleteComment(c.Param("id")); err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, detail("Comment deleted"))
}
