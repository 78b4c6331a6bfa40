package handlers

import (
	"net/http"
	"strconv"

	"github.com/anonto42/picgram/internal/repositories"
	"github.com/labstack/echo/v4"
)

// FeedHandler serves the personal feed and the explore views
type FeedHandler struct {
	exploreRepository repositories.ExploreRepository
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(exploreRepo repositories.ExploreRepository) *FeedHandler {
	return &FeedHandler{exploreRepository: exploreRepo}
}

// RegisterFeedRoutes registers feed and explore routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/feed/:user_id", h.GetFeed)
	g.GET("/explore", h.Explore)
	g.GET("/explore/trending", h.Trending)
	g.GET("/explore/hashtag/:tag", h.ExploreByHashtag)
}

// GetFeed returns posts from the users :user_id follows, newest first
func (h *FeedHandler) GetFeed(c echo.Context) error {
	posts, err := h.exploreRepository.Feed(c.Param("user_id"))
	if err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, posts)
}

// Explore returns the most recent posts from everyone. ?limit=N is optional; the store
// applies the default and the ceiling.
func (h *FeedHandler) Explore(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid limit")
		}
		limit = n
	}
	return c.JSON(http.StatusOK, h.exploreRepository.Explore(limit))
}

func (h *FeedHandler) Trending(c echo.Context) error {
	return c.JSON(http.StatusOK, h.exploreRepository.TrendingHashtags())
}

// ExploreByHashtag matches the tag exactly as written in the path
func (h *FeedHandler) ExploreByHashtag(c echo.Context) error {
	return c.JSON(http.StatusOK, h.exploreRepository.ExploreByHashtag(c.Param("tag")))
}
