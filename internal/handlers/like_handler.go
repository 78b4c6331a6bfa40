package handlers

import (
	"net/http"

	"github.com/anonto42/picgram/internal/models"
	"github.com/anonto42/picgram/internal/repositories"
	"github.com/labstack/echo/v4"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	likeRepository repositories.LikeRepository
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeRepo repositories.LikeRepository) *LikeHandler {
	return &LikeHandler{likeRepository: likeRepo}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/posts/:id/like", h.LikePost)
	g.DELETE("/posts/:id/like", h.UnlikePost)
	g.GET("/posts/:id/likes", h.GetLikers)
}

// LikePost handles liking a post
func (h *LikeHandler) LikePost(c echo.Context) error {
	var req models.LikeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.likeRepository.Like(c.Param("id"), req.UserID); err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusCreated, detail("Post liked"))
}

// UnlikePost handles unliking a post; the user comes from the user_id query parameter
func (h *LikeHandler) UnlikePost(c echo.Context) error {
	userID := c.QueryParam("user_id")
	if userID == "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "Query parameter 'user_id' is required")
	}

	if err := h.likeRepository.Unlike(c.Param("id"), userID); err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, detail("Post unliked"))
}

// GetLikers lists the users who liked a post
func (h *LikeHandler) GetLikers(c echo.Context) error {
	users, err := h.likeRepository.GetLikers(c.Param("id"))
	if err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, users)
}
