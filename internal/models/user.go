package models

import "time"

// User is the stored user record. Username and ID never change after creation.
type User struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	DisplayName   string    `json:"display_name"`
	Bio           string    `json:"bio"`
	ProfilePicURL string    `json:"profile_pic_url"`
	CreatedAt     time.Time `json:"created_at"`
	Seq           uint64    `json:"-"`
}

// UserProfile is a user together with the counts derived from the follow and post indices.
type UserProfile struct {
	User
	FollowerCount  int `json:"follower_count"`
	FollowingCount int `json:"following_count"`
	PostCount      int `json:"post_count"`
}

type CreateUserRequest struct {
	Username      string `json:"username" validate:"required,min=1"`
	DisplayName   string `json:"display_name" validate:"required,min=1"`
	Bio           string `json:"bio"`
	ProfilePicURL string `json:"profile_pic_url"`
}

// UpdateUserRequest carries optional profile changes; nil fields are left untouched.
type UpdateUserRequest struct {
	DisplayName   *string `json:"display_name,omitempty" validate:"omitempty,min=1"`
	Bio           *string `json:"bio,omitempty"`
	ProfilePicURL *string `json:"profile_pic_url,omitempty"`
}
