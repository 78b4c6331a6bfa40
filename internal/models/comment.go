package models

import "time"

// Comment represents a comment on a post
type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	PostID    string    `json:"post_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	Seq       uint64    `json:"-"`
}

// CreateCommentRequest defines the request body for creating a new comment.
// Blank text is rejected by the store, not here, so whitespace-only input still reaches it.
type CreateCommentRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Text   string `json:"text" validate:"required"`
}
