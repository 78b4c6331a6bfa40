package repositories

import "github.com/anonto42/picgram/internal/models"

// FollowRepository defines the interface for follow data operations
type FollowRepository interface {
	Follow(followerID, followingID string) error
	Unfollow(followerID, followingID string) error
	IsFollowing(followerID, followingID string) (bool, error)
	GetFollowers(userID string) ([]models.UserProfile, error)
	GetFollowing(userID string) ([]models.UserProfile, error)
}

// Follow records followerID -> followingID in both the forward and reverse index.
func (s *MemoryStore) Follow(followerID, followingID string) error {
	if followerID == followingID {
		return &StoreError{Kind: ErrSelfFollow, Entity: "follow", ID: followerID, Message: "cannot follow yourself"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[followerID]; !ok {
		return notFound("user", followerID)
	}
	if _, ok := s.users[followingID]; !ok {
		return notFound("user", followingID)
	}
	if s.following[followerID].has(followingID) {
		return conflict("follow", followingID, "already following this user")
	}

	stamp := s.nextSeq()
	addTo(s.following, followerID, followingID, stamp)
	addTo(s.followers, followingID, followerID, stamp)
	return nil
}

// Unfollow removes the edge from both indices.
func (s *MemoryStore) Unfollow(followerID, followingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[followerID]; !ok {
		return notFound("user", followerID)
	}
	if _, ok := s.users[followingID]; !ok {
		return notFound("user", followingID)
	}
	if !s.following[followerID].has(followingID) {
		return &StoreError{Kind: ErrNotFound, Entity: "follow", ID: followingID, Message: "not following this user"}
	}

	removeFrom(s.following, followerID, followingID)
	removeFrom(s.followers, followingID, followerID)
	return nil
}

func (s *MemoryStore) IsFollowing(followerID, followingID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.users[followerID]; !ok {
		return false, notFound("user", followerID)
	}
	return s.following[followerID].has(followingID), nil
}

// GetFollowers lists the users following userID, earliest follower first.
func (s *MemoryStore) GetFollowers(userID string) ([]models.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.users[userID]; !ok {
		return nil, notFound("user", userID)
	}
	return s.profilesLocked(s.followers[userID].ordered()), nil
}

// GetFollowing lists the users userID follows, in the order they were followed.
func (s *MemoryStore) GetFollowing(userID string) ([]models.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.users[userID]; !ok {
		return nil, notFound("user", userID)
	}
	return s.profilesLocked(s.following[userID].ordered()), nil
}
