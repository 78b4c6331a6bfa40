package models

import "time"

// MediaType discriminates the media attached to a post
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// Valid reports whether m is one of the supported media types.
func (m MediaType) Valid() bool {
	return m == MediaImage || m == MediaVideo
}

// Post is the stored post record. Hashtags are extracted from the caption once, at creation.
type Post struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	MediaURL  string    `json:"media_url"`
	MediaType MediaType `json:"media_type"`
	Caption   string    `json:"caption"`
	Hashtags  []string  `json:"hashtags"`
	CreatedAt time.Time `json:"created_at"`
	Seq       uint64    `json:"-"`
}

// PostView is a post with its like and comment counts resolved at read time.
type PostView struct {
	Post
	LikeCount    int `json:"like_count"`
	CommentCount int `json:"comment_count"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	UserID    string    `json:"user_id" validate:"required"`
	MediaURL  string    `json:"media_url" validate:"required,min=1"`
	MediaType MediaType `json:"media_type" validate:"required,oneof=image video"`
	Caption   string    `json:"caption"`
}
