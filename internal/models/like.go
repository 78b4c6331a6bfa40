package models

// LikeRequest defines the request body for liking a post
type LikeRequest struct {
	UserID string `json:"user_id" validate:"required"`
}
