package handlers

import (
	"net/http"

	"github.com/anonto42/picgram/internal/repositories"
	"github.com/labstack/echo/v4"
)

// FollowHandler handles follow/unfollow HTTP requests
type FollowHandler struct {
	followRepository repositories.FollowRepository
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followRepo repositories.FollowRepository) *FollowHandler {
	return &FollowHandler{followRepository: followRepo}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/users/:id/follow/:target_id", h.FollowUser)
	g.DELETE("/users/:id/follow/:target_id", h.UnfollowUser)
	g.GET("/users/:id/followers", h.GetFollowers)
	g.GET("/users/:id/following", h.GetFollowing)
}

// FollowUser makes :id follow :target_id
func (h *FollowHandler) FollowUser(c echo.Context) error {
	if err := h.followRepository.Follow(c.Param("id"), c.Param("target_id")); err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusCreated, detail("Followed successfully"))
}

// UnfollowUser removes the :id -> :target_id edge
func (h *FollowHandler) UnfollowUser(c echo.Context) error {
	if err := h.followRepository.Unfollow(c.Param("id"), c.Param("target_id")); err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, detail("Unfollowed successfully"))
}

func (h *FollowHandler) GetFollowers(c echo.Context) error {
	users, err := h.followRepository.GetFollowers(c.Param("id"))
	if err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *FollowHandler) GetFollowing(c echo.Context) error {
	users, err := h.followRepository.GetFollowing(c.Param("id"))
	if err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, users)
}
