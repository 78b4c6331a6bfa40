package repositories

import "github.com/anonto42/picgram/internal/models"

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	Like(postID, userID string) error
	Unlike(postID, userID string) error
	HasUserLikedPost(postID, userID string) (bool, error)
	GetLikers(postID string) ([]models.UserProfile, error)
}

func (s *MemoryStore) Like(postID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[postID]; !ok {
		return notFound("post", postID)
	}
	if _, ok := s.users[userID]; !ok {
		return notFound("user", userID)
	}
	if s.likes[postID].has(userID) {
		return conflict("like", postID, "post already liked by this user")
	}
	addTo(s.likes, postID, userID, s.nextSeq())
	return nil
}

// Unlike fails with ErrNotFound when the post is gone or the user never liked it.
func (s *MemoryStore) Unlike(postID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[postID]; !ok {
		return notFound("post", postID)
	}
	if !s.likes[postID].has(userID) {
		return &StoreError{Kind: ErrNotFound, Entity: "like", ID: postID, Message: "like not found"}
	}
	removeFrom(s.likes, postID, userID)
	return nil
}

func (s *MemoryStore) HasUserLikedPost(postID, userID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.posts[postID]; !ok {
		return false, notFound("post", postID)
	}
	return s.likes[postID].has(userID), nil
}

// GetLikers lists the users who liked the post, earliest like first.
func (s *MemoryStore) GetLikers(postID string) ([]models.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.posts[postID]; !ok {
		return nil, notFound("post", postID)
	}
	return s.profilesLocked(s.likes[postID].ordered()), nil
}
